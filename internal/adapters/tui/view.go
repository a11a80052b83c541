package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/ui/report"
	"go.trai.ch/cook/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.Report != nil {
		return m.reportView()
	}
	if m.Progress.Session == "" {
		return "Waiting for a cook session..."
	}

	p := m.Progress
	title := titleStyle
	if p.Failed > 0 {
		title = failureTitleStyle
	}
	header := title.Render(fmt.Sprintf("COOK %s", strings.ToUpper(p.Session))) + " " + p.Phase.String()
	if p.State == domain.StateGCPause {
		header += " " + pauseStyle.Render(style.Pause+" gc")
	}

	parts := []string{header, "", m.bar(), m.counts()}
	if len(m.Events) > 0 {
		parts = append(parts, "")
		for _, e := range m.Events {
			parts = append(parts, eventStyle.Render(style.Next+" "+e))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m *Model) bar() string {
	width := m.Width
	if width <= 0 || width > defaultWidth {
		width = defaultWidth
	}
	width -= 2

	p := m.Progress
	if p.Total <= 0 {
		return "[" + barTodoStyle.Render(strings.Repeat(style.BarPending, width)) + "]"
	}
	failed := min(p.Failed*width/p.Total, width)
	done := min(p.Cooked*width/p.Total, width)
	ok := max(done-failed, 0)
	todo := max(width-ok-failed, 0)

	return "[" +
		barDoneStyle.Render(strings.Repeat(style.BarCooked, ok)) +
		barFailedStyle.Render(strings.Repeat(style.BarCooked, failed)) +
		barTodoStyle.Render(strings.Repeat(style.BarPending, todo)) +
		"]"
}

func (m *Model) counts() string {
	p := m.Progress
	line := fmt.Sprintf("%s/%s cooked  %s failed  %s pending",
		countStyle.Render(humanize.Comma(int64(p.Cooked))),
		humanize.Comma(int64(p.Total)),
		countStyle.Render(humanize.Comma(int64(p.Failed))),
		humanize.Comma(int64(p.Pending)))
	if p.Children > 0 {
		line += fmt.Sprintf("  %d children", p.Children)
	}
	return line
}

func (m *Model) reportView() string {
	var b strings.Builder
	profile := termenv.Ascii
	if m.Output != nil {
		profile = m.Output.Profile
	}
	out := termenv.NewOutput(&b, termenv.WithProfile(profile), termenv.WithTTY(true))
	if err := report.Write(out, *m.Report, m.Elapsed); err != nil {
		return err.Error()
	}
	return b.String()
}
