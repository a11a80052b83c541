package childpool

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
)

// CookFunc cooks one partition and writes progress lines to out.
type CookFunc func(ctx context.Context, spec domain.WorkerSpec, out io.Writer) (*domain.WorkerResult, error)

// InProcessLauncher runs each partition in a goroutine of the current process.
type InProcessLauncher struct {
	cook CookFunc
}

var _ ports.WorkerLauncher = (*InProcessLauncher)(nil)

// NewInProcessLauncher creates a launcher calling cook for every partition.
func NewInProcessLauncher(cook CookFunc) *InProcessLauncher {
	return &InProcessLauncher{cook: cook}
}

// Launch starts cook in a goroutine and returns immediately.
func (l *InProcessLauncher) Launch(ctx context.Context, spec domain.WorkerSpec) (ports.Worker, error) {
	w := &inProcessWorker{index: spec.Index}
	go w.run(ctx, l.cook, spec)
	return w, nil
}

type inProcessWorker struct {
	index int

	mu      sync.Mutex
	pending bytes.Buffer
	lines   []string
	done    bool
	code    int
	result  *domain.WorkerResult
	err     error
}

func (w *inProcessWorker) run(ctx context.Context, cook CookFunc, spec domain.WorkerSpec) {
	res, err := cook(ctx, spec, w)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.flushLocked()
	w.result = res
	w.err = err
	w.done = true
	if err != nil {
		w.code = 1
	}
}

// Write buffers output and splits it into complete lines.
func (w *inProcessWorker) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending.Write(p)
	for {
		line, err := w.pending.ReadString('\n')
		if err != nil {
			// Keep the partial line for the next write.
			w.pending.Reset()
			w.pending.WriteString(line)
			break
		}
		w.lines = append(w.lines, strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

func (w *inProcessWorker) flushLocked() {
	if w.pending.Len() > 0 {
		w.lines = append(w.lines, w.pending.String())
		w.pending.Reset()
	}
}

func (w *inProcessWorker) Index() int {
	return w.index
}

func (w *inProcessWorker) Output() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := w.lines
	w.lines = nil
	return out
}

func (w *inProcessWorker) Exited() (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.code, w.done
}

func (w *inProcessWorker) Result() (*domain.WorkerResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.done {
		return nil, domain.ErrWorkerResultReadFailed
	}
	if w.err != nil {
		return w.result, errors.Join(domain.ErrWorkerResultReadFailed, w.err)
	}
	if w.result == nil {
		return nil, domain.ErrWorkerResultReadFailed
	}
	return w.result, nil
}

func (w *inProcessWorker) Release() error {
	return nil
}
