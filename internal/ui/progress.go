// Package ui provides shared terminal rendering helpers: colorized
// utilization bars and the color palette used by the dashboard.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Utilization color palette (256-color codes).
const (
	ColorGood = lipgloss.Color("40")  // green
	ColorWarn = lipgloss.Color("214") // amber
	ColorHot  = lipgloss.Color("203") // red
)

// Severity thresholds for utilization coloring. Boundaries are inclusive:
// exactly 85% is hot, exactly 60% is warn.
const (
	WarnThreshold = 60.0
	HotThreshold  = 85.0
)

// Bar block character. Empty cells render the same block dimmed.
const BarBlock = '█'

// DimStyle renders dimmed/faint text (empty bar cells, dividers).
var DimStyle = lipgloss.NewStyle().Faint(true)

// ColorForPercent returns the severity color for a utilization percentage.
func ColorForPercent(percent float64) lipgloss.Color {
	switch {
	case percent >= HotThreshold:
		return ColorHot
	case percent >= WarnThreshold:
		return ColorWarn
	default:
		return ColorGood
	}
}

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// CalculateBarCounts returns the number of filled and empty cells for a bar.
// Percent must already be clamped to 0-100; the filled count truncates.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	filled = int((percent / 100.0) * float64(width))
	empty = width - filled
	return
}

// RenderBar renders a colorized utilization bar followed by the percentage
// formatted to one decimal place. Out-of-range percentages are clamped
// before the filled count is computed.
func RenderBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}

	percent = ClampPercent(percent)
	filled, empty := CalculateBarCounts(percent, width)

	var sb strings.Builder
	style := lipgloss.NewStyle().Foreground(ColorForPercent(percent))
	sb.WriteString(style.Render(strings.Repeat(string(BarBlock), filled)))
	if empty > 0 {
		sb.WriteString(DimStyle.Render(strings.Repeat(string(BarBlock), empty)))
	}
	sb.WriteString(fmt.Sprintf(" %5.1f%%", percent))
	return sb.String()
}
