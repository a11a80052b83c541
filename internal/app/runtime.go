package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/cook/internal/adapters/content"
	"go.trai.ch/cook/internal/adapters/fs"
	"go.trai.ch/cook/internal/adapters/gc"
	"go.trai.ch/cook/internal/adapters/manifest"
	"go.trai.ch/cook/internal/adapters/process"
	"go.trai.ch/cook/internal/adapters/sandbox"
	"go.trai.ch/cook/internal/adapters/telemetry"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/cook/internal/engine/childpool"
	"go.trai.ch/cook/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// runtime holds the collaborators of one scheduler built for a project.
type runtime struct {
	cfg       *domain.Config
	index     *content.Index
	hasher    *fs.Hasher
	manifests manifest.Store
	host      scheduler.Host
	shutdown  telemetry.ShutdownFunc
}

type runtimeOptions struct {
	childPTY bool
}

// open loads the configuration at root and builds the scheduler host.
func (a *App) open(ctx context.Context, root string, opts runtimeOptions) (*runtime, error) {
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	index := content.NewIndex(a.walker, content.MountsFor(cfg)...)
	registry := content.NewAssetRegistry(index, a.logger)
	loader := content.NewLoader(index, a.logger)
	hasher := fs.NewHasher(index, registry)

	store, err := manifest.Open(ctx, cfg.ManifestBackend, cfg.Root)
	if err != nil {
		return nil, err
	}

	tracer, shutdown, err := telemetry.New(cfg.Telemetry, a.metrics)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	rt := &runtime{
		cfg:       cfg,
		index:     index,
		hasher:    hasher,
		manifests: store,
		shutdown:  shutdown,
		host: scheduler.Host{
			Loader:     loader,
			Serializer: a.serializer,
			Resolver:   registry,
			Enumerator: registry,
			Hasher:     hasher,
			Sandbox:    sandbox.New(cfg.SandboxDir),
			Collector:  gc.NewCollector(loader, a.logger),
			Probe:      a.probe,
			Manifests:  store,
			Tracer:     tracer,
			Logger:     a.logger,
			Metrics:    a.metrics,
			Config:     *cfg,
		},
	}

	launcher, err := a.launcher(rt, opts)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, err
	}
	rt.host.Launcher = launcher
	return rt, nil
}

// launcher returns the child cooker launcher selected by the configuration.
// In-process children cook their partition with a copy of the host.
func (a *App) launcher(rt *runtime, opts runtimeOptions) (ports.WorkerLauncher, error) {
	if rt.cfg.ChildMode == domain.ChildModeInProcess {
		host := rt.host
		return childpool.NewInProcessLauncher(
			func(ctx context.Context, spec domain.WorkerSpec, out io.Writer) (*domain.WorkerResult, error) {
				return scheduler.CookPartition(ctx, host, spec, out)
			},
		), nil
	}

	executable := a.executable
	if executable == "" {
		var err error
		executable, err = os.Executable()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to locate the cook executable")
		}
	}
	return process.NewLauncher(
		executable,
		rt.cfg.Root,
		domain.DefaultChildrenPath(rt.cfg.Root),
		process.WithPTY(opts.childPTY),
	), nil
}

// Close flushes telemetry and closes the manifest store.
func (rt *runtime) Close(ctx context.Context) error {
	return errors.Join(
		rt.shutdown(context.WithoutCancel(ctx)),
		rt.manifests.Close(),
	)
}

func absRoot(root string) string {
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}
