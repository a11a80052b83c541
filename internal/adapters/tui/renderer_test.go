package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/adapters/tui"
	"go.trai.ch/cook/internal/core/domain"
)

func newTestRenderer(model *tui.Model) *tui.Renderer {
	return tui.NewRenderer(
		model,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestRenderer_Lifecycle(t *testing.T) {
	model := tui.NewModel(io.Discard)
	renderer := newTestRenderer(&model)

	require.NoError(t, renderer.Start(context.Background()))
	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())
}

func TestRenderer_ReportEndsProgram(t *testing.T) {
	model := tui.NewModel(io.Discard)
	renderer := newTestRenderer(&model)

	require.NoError(t, renderer.Start(context.Background()))
	renderer.OnProgress(domain.Progress{Session: "book_1", Phase: domain.BulkRunning, Total: 1})
	renderer.OnReport(domain.CookReport{Session: "book_1", Attempted: 1})
	require.NoError(t, renderer.Wait())

	require.NotNil(t, model.Report)
	require.Equal(t, "book_1", model.Progress.Session)
}
