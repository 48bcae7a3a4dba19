package monitor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/xpumon/internal/xpum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelSampleMsgUpdatesStore(t *testing.T) {
	m := NewModel(nil, 30)

	updated, cmd := m.Update(SampleMsg{
		DeviceID: 2,
		Sample:   &xpum.DeviceSample{Timestamp: "13:42:01.000"},
	})

	assert.Nil(t, cmd)
	model := updated.(Model)
	require.NotNil(t, model.store.Get(2))
	assert.Contains(t, model.View(), "(ID 2)")
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(nil, 30)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", updated.(Model).View(), "quitting model renders an empty frame")
}

func TestModelCtrlC(t *testing.T) {
	m := NewModel(nil, 30)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelStreamClosedQuits(t *testing.T) {
	m := NewModel(nil, 30)

	_, cmd := m.Update(StreamClosedMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelQuitRequestQuits(t *testing.T) {
	m := NewModel(nil, 30)

	_, cmd := m.Update(QuitRequestMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelResizeRecomputesBarWidth(t *testing.T) {
	m := NewModel(nil, 0)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 50, updated.(Model).barWidth)

	updated, _ = updated.(Model).Update(tea.WindowSizeMsg{Width: 40, Height: 30})
	assert.Equal(t, 20, updated.(Model).barWidth)
}

func TestModelBarWidthOverrideSticksThroughResize(t *testing.T) {
	m := NewModel(nil, 42)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 300, Height: 30})
	assert.Equal(t, 42, updated.(Model).barWidth)
}
