package app

import (
	"context"
	"fmt"

	"go.trai.ch/cook/internal/adapters/server"
	"go.trai.ch/cook/internal/adapters/watcher"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/engine/scheduler"
	"golang.org/x/sync/errgroup"
)

// ServeOptions configures the Serve method.
type ServeOptions struct {
	Root string
	// Addr overrides the configured listen address.
	Addr  string
	Watch bool
}

// Serve runs the scheduler behind the network file server until ctx is done.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	rt, err := a.open(ctx, opts.Root, runtimeOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rt.Close(ctx); cerr != nil {
			a.logger.Warn(cerr.Error())
		}
	}()

	sched := scheduler.New(rt.host)

	accessPath := rt.cfg.Server.AccessLog
	if accessPath == "" {
		accessPath = domain.DefaultAccessLogPath(rt.cfg.Root)
	}
	accessLog, closer, err := server.OpenAccessLog(accessPath)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	handler := server.NewRouter(sched, server.Options{
		AccessLog:   &accessLog,
		CORSOrigins: rt.cfg.Server.CORSOrigins,
		Metrics:     a.metrics.Handler(),
		Instrument:  a.metrics.Middleware,
	})

	addr := opts.Addr
	if addr == "" {
		addr = rt.cfg.Server.Addr
	}
	srv := server.New(handler, domain.DefaultServerAddrPath(rt.cfg.Root))
	if err := srv.Listen(addr); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("serving cooked packages on http://%s", srv.Addr()))

	g, ctx := errgroup.WithContext(ctx)

	if opts.Watch {
		if err := a.watch(ctx, g, rt, sched); err != nil {
			return err
		}
	}

	g.Go(func() error {
		return sched.Run(ctx)
	})
	g.Go(func() error {
		return srv.Serve(ctx)
	})
	return g.Wait()
}

// watch marks packages dirty when their sources change.
func (a *App) watch(ctx context.Context, g *errgroup.Group, rt *runtime, sched *scheduler.Scheduler) error {
	w, err := a.watcher()
	if err != nil {
		return err
	}
	for _, dir := range rt.index.Dirs() {
		if err := w.Start(ctx, dir); err != nil {
			_ = w.Stop()
			return err
		}
	}

	inv := watcher.NewInvalidator(rt.index, rt.hasher, sched, a.logger, watcher.DefaultDebounceWindow)
	g.Go(func() error {
		inv.Run(ctx, w)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return w.Stop()
	})
	return nil
}
