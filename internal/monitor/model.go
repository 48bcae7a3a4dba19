package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/xpumon/internal/config"
	"github.com/rileyhilliard/xpumon/internal/xpum"
)

// Model is the Bubble Tea model for the dashboard. It holds the per-device
// sample store and the discovery metadata; the two are joined only at render
// time by device id.
type Model struct {
	store    *Store
	metadata map[int]*xpum.DeviceMetadata
	keys     keyMap

	barOverride int // explicit --bar-width; 0 means auto
	barWidth    int
	width       int // terminal columns
	quitting    bool
}

// NewModel creates a dashboard model. barOverride, when positive, pins the
// gauge width; otherwise it tracks the terminal width.
func NewModel(metadata map[int]*xpum.DeviceMetadata, barOverride int) Model {
	if metadata == nil {
		metadata = make(map[int]*xpum.DeviceMetadata)
	}
	width := config.TerminalWidth()
	return Model{
		store:       NewStore(),
		metadata:    metadata,
		keys:        defaultKeys,
		barOverride: barOverride,
		barWidth:    config.ResolveBarWidth(barOverride, width),
		width:       width,
	}
}

// Init implements tea.Model. The stream reader is driven externally via
// Program.Send, so there is no initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.barWidth = config.ResolveBarWidth(m.barOverride, msg.Width)

	case SampleMsg:
		m.store.Put(msg.DeviceID, msg.Sample)

	case StreamClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case QuitRequestMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model, rendering the full dashboard frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderDashboard(m.store, m.metadata, m.barWidth, m.width)
}
