package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cook/internal/adapters/detector"
	"go.trai.ch/cook/internal/adapters/linear"
	"go.trai.ch/cook/internal/adapters/tui"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/cook/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// progressInterval is how often the renderer receives a progress snapshot.
const progressInterval = 100 * time.Millisecond

// BookOptions configures the Book method.
type BookOptions struct {
	Root       string
	OutputMode string
	// Children overrides the configured number of child cookers when not negative.
	Children int
	ChildPTY bool
	Book     domain.BookOptions
}

// Book runs a cook-by-the-book session in process and renders its progress.
// An interrupt cancels the session; the report is still rendered.
func (a *App) Book(ctx context.Context, opts BookOptions) error {
	mode, err := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	if err != nil {
		return err
	}

	rt, err := a.open(ctx, opts.Root, runtimeOptions{childPTY: opts.ChildPTY})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rt.Close(ctx); cerr != nil {
			a.logger.Warn(cerr.Error())
		}
	}()

	book := opts.Book
	book.Children = opts.Children
	if book.Children < 0 {
		book.Children = rt.cfg.Children
	}

	// The session outlives an interrupt long enough to tear down and report.
	runCtx, stopRun := context.WithCancel(context.WithoutCancel(ctx))
	defer stopRun()

	sched := scheduler.New(rt.host)
	id, err := sched.StartCookByTheBook(runCtx, book)
	if err != nil {
		return err
	}

	runDone := make(chan struct{})
	go func() {
		defer close(runDone)
		_ = sched.Run(runCtx)
	}()

	report, err := a.render(ctx, a.newRenderer(mode), sched, id)
	stopRun()
	<-runDone
	if err != nil {
		return err
	}

	if !report.Succeeded() {
		return zerr.With(domain.ErrCookSessionFailed, "session", id)
	}
	return nil
}

func (a *App) newRenderer(mode detector.OutputMode) ports.Renderer {
	if mode == detector.ModeTUI {
		model := tui.NewModel(a.stderr)
		opts := append([]tea.ProgramOption{tea.WithOutput(a.stderr)}, a.teaOptions...)
		return tui.NewRenderer(&model, opts...)
	}
	return linear.NewRenderer(a.stdout, a.stderr)
}

// render streams progress of session id to renderer until the session
// finishes. The session is cancelled when ctx is done or the renderer quits.
func (a *App) render(
	ctx context.Context,
	renderer ports.Renderer,
	sched *scheduler.Scheduler,
	id string,
) (domain.CookReport, error) {
	if err := renderer.Start(ctx); err != nil {
		return domain.CookReport{}, err
	}
	rendererDone := make(chan error, 1)
	go func() { rendererDone <- renderer.Wait() }()

	type waitResult struct {
		report domain.CookReport
		err    error
	}
	finished := make(chan waitResult, 1)
	go func() {
		r, err := sched.Wait(context.WithoutCancel(ctx), id)
		finished <- waitResult{r, err}
	}()

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	interrupted := ctx.Done()
	rendering := true
	var rendererErr error
	cancel := func() {
		if err := sched.Cancel(id); err == nil {
			a.logger.Warn(fmt.Sprintf("cancelling %s", id))
		}
	}

	for {
		select {
		case <-ticker.C:
			if rendering {
				renderer.OnProgress(sched.Progress())
			}

		case <-interrupted:
			interrupted = nil
			cancel()

		case rendererErr = <-rendererDone:
			rendering = false
			rendererDone = nil
			cancel()

		case res := <-finished:
			if res.err != nil {
				return domain.CookReport{}, res.err
			}
			if !rendering {
				linear.NewRenderer(a.stdout, a.stderr).OnReport(res.report)
				return res.report, rendererErr
			}
			renderer.OnReport(res.report)
			_ = renderer.Stop()
			return res.report, <-rendererDone
		}
	}
}
