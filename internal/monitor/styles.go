package monitor

import "github.com/charmbracelet/lipgloss"

// Divider sizing: the dim rule between device entries tracks the terminal
// width within these bounds.
const (
	minDividerWidth = 20
	maxDividerWidth = 100
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	deviceStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)
