// Package process launches child cookers as separate processes of the cook
// binary and exchanges partitions and results with them through files.
package process

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/creack/pty"
	"github.com/google/uuid"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/zerr"
)

// ChildCommand is the subcommand a child cooker runs.
const ChildCommand = "child"

// Flags understood by the child subcommand.
const (
	ResponseFileFlag = "--response-file"
	ResultFileFlag   = "--result-file"
	RootFlag         = "--root"
)

var _ ports.WorkerLauncher = (*Launcher)(nil)

// Launcher starts child cookers with os/exec, optionally attached to a pty
// so that children keep line-buffered, colored output.
type Launcher struct {
	executable string
	root       string
	dir        string
	env        []string
	usePTY     bool
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithPTY attaches children to a pseudo terminal.
func WithPTY(enabled bool) Option {
	return func(l *Launcher) { l.usePTY = enabled }
}

// WithEnv appends environment variables to the child environment.
func WithEnv(env ...string) Option {
	return func(l *Launcher) { l.env = append(l.env, env...) }
}

// NewLauncher creates a launcher running executable for the project at root.
// Response and result files are written to dir.
func NewLauncher(executable, root, dir string, opts ...Option) *Launcher {
	l := &Launcher{executable: executable, root: root, dir: dir}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch writes the partition response file and starts the child process.
func (l *Launcher) Launch(ctx context.Context, spec domain.WorkerSpec) (ports.Worker, error) {
	if err := os.MkdirAll(l.dir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkerResponseWriteFailed.Error())
	}

	base := filepath.Join(l.dir, "child_"+strconv.Itoa(spec.Index)+"_"+uuid.NewString())
	responsePath := base + ".response.json"
	resultPath := base + ".result.json"

	platforms := spec.Platforms.Sorted()
	resp := domain.WorkerResponse{
		Packages:  spec.Packages,
		Platforms: make([]string, len(platforms)),
	}
	for i, p := range platforms {
		resp.Platforms[i] = p.String()
	}
	if err := WriteJSON(responsePath, resp); err != nil {
		return nil, errors.Join(domain.ErrWorkerResponseWriteFailed, err)
	}

	args := []string{
		ChildCommand,
		ResponseFileFlag, responsePath,
		ResultFileFlag, resultPath,
		RootFlag, l.root,
	}
	args = append(args, spec.ExtraArgs...)

	//nolint:gosec // G204: executable is the cook binary itself
	cmd := exec.CommandContext(ctx, l.executable, args...)
	cmd.Dir = l.root
	cmd.Env = append(os.Environ(), l.env...)

	w := &worker{
		index:        spec.Index,
		cmd:          cmd,
		responsePath: responsePath,
		resultPath:   resultPath,
		exited:       make(chan struct{}),
	}
	if err := w.start(l.usePTY); err != nil {
		_ = os.Remove(responsePath)
		return nil, zerr.With(zerr.Wrap(err, "failed to start child cooker"), "child", spec.Index)
	}
	return w, nil
}

type worker struct {
	index        int
	cmd          *exec.Cmd
	responsePath string
	resultPath   string
	exited       chan struct{}

	mu       sync.Mutex
	lines    []string
	done     bool
	code     int
	released bool
}

func (w *worker) start(usePTY bool) error {
	var out io.ReadCloser
	if usePTY {
		ptmx, err := pty.Start(w.cmd)
		if err != nil {
			return err
		}
		out = ptmx
	} else {
		pr, pw, err := os.Pipe()
		if err != nil {
			return err
		}
		w.cmd.Stdout = pw
		w.cmd.Stderr = pw
		if err := w.cmd.Start(); err != nil {
			_ = pr.Close()
			_ = pw.Close()
			return err
		}
		// The child holds its own copy of the write end.
		_ = pw.Close()
		out = pr
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer out.Close() //nolint:errcheck // Read side only
		w.readLines(out)
	}()

	go func() {
		err := w.cmd.Wait()
		<-ioDone

		w.mu.Lock()
		defer w.mu.Unlock()
		w.done = true
		w.code = exitCode(err)
		close(w.exited)
	}()
	return nil
}

func (w *worker) readLines(r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		w.mu.Lock()
		w.lines = append(w.lines, line)
		w.mu.Unlock()
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code != 0 {
			return code
		}
	}
	return -1
}

func (w *worker) Index() int {
	return w.index
}

func (w *worker) Output() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.lines
	w.lines = nil
	return out
}

func (w *worker) Exited() (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.code, w.done
}

func (w *worker) Result() (*domain.WorkerResult, error) {
	if _, done := w.Exited(); !done {
		return nil, zerr.With(domain.ErrWorkerResultReadFailed, "child", w.index)
	}
	var res domain.WorkerResult
	if err := ReadJSON(w.resultPath, &res); err != nil {
		return nil, errors.Join(domain.ErrWorkerResultReadFailed, err)
	}
	return &res, nil
}

// Release kills a child that is still running, waits for it and removes its
// files. It is idempotent.
func (w *worker) Release() error {
	w.mu.Lock()
	if w.released {
		w.mu.Unlock()
		return nil
	}
	w.released = true
	running := !w.done
	w.mu.Unlock()

	if running && w.cmd.Process != nil {
		_ = w.cmd.Process.Kill()
	}
	<-w.exited

	var errs error
	for _, p := range []string{w.responsePath, w.resultPath} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
