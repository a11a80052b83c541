// Package app implements the application layer for cook.
package app

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cook/internal/adapters/fs"
	"go.trai.ch/cook/internal/adapters/metrics"
	"go.trai.ch/cook/internal/core/ports"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	walker       *fs.Walker
	serializer   ports.PlatformSerializer
	probe        ports.MemoryProbe
	metrics      *metrics.Recorder
	watcher      WatcherFactory

	stdout     io.Writer
	stderr     io.Writer
	executable string
	teaOptions []tea.ProgramOption
}

// WatcherFactory creates the source watcher of `cook serve`.
type WatcherFactory func() (ports.Watcher, error)

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	walker *fs.Walker,
	serializer ports.PlatformSerializer,
	probe ports.MemoryProbe,
	rec *metrics.Recorder,
	watcher WatcherFactory,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		walker:       walker,
		serializer:   serializer,
		probe:        probe,
		metrics:      rec,
		watcher:      watcher,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects the report and progress streams.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithExecutable sets the binary launched for child cookers.
// It defaults to the running executable.
func (a *App) WithExecutable(path string) *App {
	a.executable = path
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}
