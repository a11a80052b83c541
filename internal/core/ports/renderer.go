package ports

import (
	"context"

	"go.trai.ch/cook/internal/core/domain"
)

// Renderer presents the progress of a book session.
// It decouples the scheduler loop from presentation, so the same progress
// stream can drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	Start(ctx context.Context) error
	// Stop signals the renderer to flush and shut down.
	Stop() error
	// Wait blocks until the renderer has fully terminated.
	Wait() error
	// OnProgress is called whenever the session progress changes.
	OnProgress(p domain.Progress)
	// OnReport is called once with the final session report.
	OnReport(r domain.CookReport)
}
