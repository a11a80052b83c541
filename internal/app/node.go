package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cook/internal/adapters/config"
	"go.trai.ch/cook/internal/adapters/fs"
	"go.trai.ch/cook/internal/adapters/gc"
	"go.trai.ch/cook/internal/adapters/logger"
	"go.trai.ch/cook/internal/adapters/metrics"
	"go.trai.ch/cook/internal/adapters/sandbox"
	"go.trai.ch/cook/internal/adapters/watcher"
	"go.trai.ch/cook/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.WalkerNodeID,
			sandbox.SerializerNodeID,
			gc.ProbeNodeID,
			metrics.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}
	serializer, err := graft.Dep[ports.PlatformSerializer](ctx)
	if err != nil {
		return nil, err
	}
	probe, err := graft.Dep[ports.MemoryProbe](ctx)
	if err != nil {
		return nil, err
	}
	rec, err := graft.Dep[*metrics.Recorder](ctx)
	if err != nil {
		return nil, err
	}

	// Only `cook serve` watches sources.
	newWatcher := func() (ports.Watcher, error) {
		return watcher.NewWatcher(log)
	}
	return New(loader, log, walker, serializer, probe, rec, newWatcher), nil
}
