package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// CleanOptions configures the Clean method.
type CleanOptions struct {
	Root      string
	Platforms []domain.PlatformID
	// State also removes the internal state directory (manifests, logs, child files).
	State bool
}

// Clean wipes the sandbox and the manifests of the given platforms, or of the
// configured platforms when none are given.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	rt, err := a.open(ctx, opts.Root, runtimeOptions{})
	if err != nil {
		return err
	}

	platforms := domain.NewPlatformSet(opts.Platforms...)
	if platforms.Len() == 0 {
		platforms = rt.cfg.PlatformSet()
	}

	var errs error
	if platforms.Len() > 0 {
		sched := scheduler.New(rt.host)
		if _, err := sched.CleanSandbox(ctx, platforms, false, ""); err != nil {
			errs = errors.Join(errs, err)
		}
		for _, p := range platforms.Sorted() {
			if err := rt.manifests.Delete(ctx, domain.ManifestKey{Platform: p}); err != nil {
				errs = errors.Join(errs, err)
			}
			a.logger.Info(fmt.Sprintf("cleaned %s", p))
		}
	}
	errs = errors.Join(errs, rt.Close(ctx))

	if opts.State {
		path := domain.DefaultCookPath(rt.cfg.Root)
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove state directory"), "path", path))
		} else {
			a.logger.Info(fmt.Sprintf("removed %s", path))
		}
	}
	return errs
}
