package tui_test

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/adapters/tui"
	"go.trai.ch/cook/internal/core/domain"
)

func TestModel_Events(t *testing.T) {
	model := tui.NewModel(io.Discard)
	m := &model

	running := domain.Progress{Session: "book_1", Phase: domain.BulkRunning, Total: 4, Pending: 4}
	m.Update(tui.MsgProgress{Progress: running})
	running.Cooked, running.Failed, running.Pending = 2, 1, 2
	m.Update(tui.MsgProgress{Progress: running})
	running.State = domain.StateGCPause
	m.Update(tui.MsgProgress{Progress: running})
	running.Children = 2
	m.Update(tui.MsgProgress{Progress: running})

	assert.Equal(t, []string{
		"book_1: running",
		"1 packages failed",
		"paused for garbage collection",
		"2 child cookers running",
	}, m.Events)
	assert.Equal(t, 2, m.Progress.Cooked)
}

func TestModel_EventsSlidingWindow(t *testing.T) {
	model := tui.NewModel(io.Discard)
	m := &model
	m.MaxEvents = 2

	for i := 1; i <= 3; i++ {
		m.Update(tui.MsgProgress{Progress: domain.Progress{Session: "book_1", Phase: domain.BulkRunning, Children: i}})
	}

	require.Len(t, m.Events, 2)
	assert.Equal(t, []string{"2 child cookers running", "3 child cookers running"}, m.Events)
}

func TestModel_ReportQuits(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	model := tui.NewModel(io.Discard)
	m := &model
	m.Now = func() time.Time { return now }
	m.Init()
	now = now.Add(5 * time.Second)

	_, cmd := m.Update(tui.MsgReport{Report: domain.CookReport{Session: "book_1"}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	require.NotNil(t, m.Report)
	assert.Equal(t, 5*time.Second, m.Elapsed)
}

func TestModel_Keys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		quit bool
	}{
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, true},
		{"other keys are ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := tui.NewModel(io.Discard)
			_, cmd := model.Update(tt.key)
			if tt.quit {
				require.NotNil(t, cmd)
				assert.IsType(t, tea.QuitMsg{}, cmd())
				return
			}
			assert.Nil(t, cmd)
		})
	}
}

func TestModel_WindowSize(t *testing.T) {
	model := tui.NewModel(io.Discard)
	model.Update(tea.WindowSizeMsg{Width: 42, Height: 10})
	assert.Equal(t, 42, model.Width)
}
