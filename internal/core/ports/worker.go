package ports

import (
	"context"

	"go.trai.ch/cook/internal/core/domain"
)

//go:generate mockgen -source=worker.go -destination=mocks/mock_worker.go -package=mocks

// WorkerLauncher starts child cookers.
type WorkerLauncher interface {
	// Launch starts a worker for the given partition. It must not block on the worker.
	Launch(ctx context.Context, spec domain.WorkerSpec) (Worker, error)
}

// Worker is a handle on one running child cooker. Every method is non-blocking.
type Worker interface {
	// Index returns the partition index of the worker.
	Index() int
	// Output returns the output lines captured since the previous call.
	Output() []string
	// Exited reports the exit code once the worker terminated.
	Exited() (code int, done bool)
	// Result returns the records reported by a terminated worker.
	Result() (*domain.WorkerResult, error)
	// Release frees process handles and temporary files. It is idempotent.
	Release() error
}
