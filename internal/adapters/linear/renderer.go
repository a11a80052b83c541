// Package linear provides a line-oriented progress renderer for CI logs.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/ui/output"
	"go.trai.ch/cook/internal/ui/report"
	"go.trai.ch/cook/internal/ui/style"
)

// progressSteps is the number of progress lines printed over a session.
const progressSteps = 10

// Renderer implements ports.Renderer by printing one line per notable change.
type Renderer struct {
	stdout io.Writer
	output *termenv.Output
	now    func() time.Time

	stopOnce sync.Once
	done     chan struct{}

	mu      sync.Mutex
	started time.Time
	last    domain.Progress
	step    int
}

// NewRenderer creates a renderer printing progress to stderr and the report to stdout.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Renderer{
		stdout: stdout,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
		now:    time.Now,
		done:   make(chan struct{}),
	}
}

// WithClock replaces the clock used to time the session.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

// Start records the session start time.
func (r *Renderer) Start(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = r.now()
	return nil
}

// Stop ends the renderer. Every line is written synchronously, so there is
// nothing to flush.
func (r *Renderer) Stop() error {
	r.stopOnce.Do(func() { close(r.done) })
	return nil
}

// Wait blocks until Stop is called.
func (r *Renderer) Wait() error {
	<-r.done
	return nil
}

// OnProgress prints phase and state changes, failures and every tenth of the work.
func (r *Renderer) OnProgress(p domain.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.last
	r.last = p
	if p.Session == "" {
		return
	}
	prefix := r.output.String(fmt.Sprintf("[%s]", p.Session)).Faint().String()

	if p.Session != prev.Session || p.Phase != prev.Phase {
		r.step = 0
		r.printf("%s phase: %s (%d packages)\n", prefix, p.Phase, p.Total)
	}
	if p.State == domain.StateGCPause && prev.State != domain.StateGCPause {
		r.printf("%s %s paused for garbage collection\n", prefix, r.paint(style.Pause, style.Simmer))
	}
	if p.Children != prev.Children && p.Children > 0 {
		r.printf("%s %d child cookers running\n", prefix, p.Children)
	}

	step := 0
	if p.Total > 0 {
		step = p.Cooked * progressSteps / p.Total
	}
	failed := p.Failed > prev.Failed && p.Session == prev.Session
	if step > r.step || failed {
		r.step = max(r.step, step)
		icon := r.paint(style.Progress, style.Ember)
		if p.Failed > 0 {
			icon = r.paint(style.Failed, style.Burnt)
		}
		r.printf("%s %s %d/%d cooked, %d failed, %d pending\n",
			prefix, icon, p.Cooked, p.Total, p.Failed, p.Pending)
	}
}

// OnReport prints the final report to stdout.
func (r *Renderer) OnReport(rep domain.CookReport) {
	r.mu.Lock()
	elapsed := time.Duration(0)
	if !r.started.IsZero() {
		elapsed = r.now().Sub(r.started)
	}
	r.mu.Unlock()

	out := output.NewWithProfile(r.stdout, output.ColorProfileANSI)
	_ = report.Write(out, rep, elapsed)
}

func (r *Renderer) paint(s string, c lipgloss.Color) string {
	return r.output.String(s).Foreground(termenv.RGBColor(string(c))).String()
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = r.output.WriteString(fmt.Sprintf(format, args...))
}
