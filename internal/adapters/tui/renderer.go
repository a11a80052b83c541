package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cook/internal/core/domain"
)

// Renderer wraps the bubbletea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnProgress forwards a progress snapshot to the TUI.
func (r *Renderer) OnProgress(p domain.Progress) {
	r.program.Send(MsgProgress{Progress: p})
}

// OnReport forwards the final report to the TUI, which then quits.
func (r *Renderer) OnReport(rep domain.CookReport) {
	r.program.Send(MsgReport{Report: rep})
}
