package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.trai.ch/cook/internal/core/domain"
)

const (
	defaultMaxEvents = 8
	defaultWidth     = 80
)

// Model is the bubbletea model of a cook session.
type Model struct {
	Output    *termenv.Output
	Progress  domain.Progress
	Report    *domain.CookReport
	Events    []string
	MaxEvents int
	Width     int
	Started   time.Time
	Elapsed   time.Duration
	Now       func() time.Time
}

// Init records the start time.
func (m *Model) Init() tea.Cmd {
	if m.Now == nil {
		m.Now = time.Now
	}
	m.Started = m.Now()
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case MsgProgress:
		m.applyProgress(msg.Progress)

	case MsgReport:
		rep := msg.Report
		m.Report = &rep
		if !m.Started.IsZero() && m.Now != nil {
			m.Elapsed = m.Now().Sub(m.Started)
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) applyProgress(p domain.Progress) {
	prev := m.Progress
	m.Progress = p
	if p.Session == "" {
		return
	}
	if p.Session != prev.Session || p.Phase != prev.Phase {
		m.addEvent(fmt.Sprintf("%s: %s", p.Session, p.Phase))
	}
	if p.State == domain.StateGCPause && prev.State != domain.StateGCPause {
		m.addEvent("paused for garbage collection")
	}
	if p.Session == prev.Session && p.Failed > prev.Failed {
		m.addEvent(fmt.Sprintf("%d packages failed", p.Failed))
	}
	if p.Children != prev.Children {
		m.addEvent(fmt.Sprintf("%d child cookers running", p.Children))
	}
}

// addEvent appends to the sliding window of recent events.
func (m *Model) addEvent(e string) {
	m.Events = append(m.Events, e)
	limit := m.MaxEvents
	if limit <= 0 {
		limit = defaultMaxEvents
	}
	if over := len(m.Events) - limit; over > 0 {
		m.Events = m.Events[over:]
	}
}
