package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of change seen on a content file.
type WatchOp uint8

const (
	OpCreate WatchOp = iota
	OpWrite
	OpRemove
	OpRename
)

// WatchEvent is a change to a file under a content mount.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher reports changes to content files so cooked packages can be
// invalidated while the server runs.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start watches dir and its subdirectories. It may be called once per
	// content mount.
	Start(ctx context.Context, dir string) error
	Stop() error
	// Events yields changes until Stop is called.
	Events() iter.Seq[WatchEvent]
}
