package watcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
)

// PackageMapper maps source files to packages and forgets its file listing
// when the tree changes.
type PackageMapper interface {
	PackageForPath(path string) (domain.PackageID, bool)
	Invalidate()
}

// HashCache drops cached file hashes.
type HashCache interface {
	Invalidate(paths []string)
}

// DirtyMarker forgets the cooked state of changed packages.
type DirtyMarker interface {
	MarkPackageDirty(ctx context.Context, pkgs ...domain.PackageID)
}

// Invalidator feeds watcher events into the content index, the hash cache and
// the scheduler.
type Invalidator struct {
	mapper PackageMapper
	hashes HashCache
	marker DirtyMarker
	logger ports.Logger
	window time.Duration
}

// NewInvalidator creates an invalidator batching events over window.
func NewInvalidator(
	mapper PackageMapper,
	hashes HashCache,
	marker DirtyMarker,
	logger ports.Logger,
	window time.Duration,
) *Invalidator {
	return &Invalidator{
		mapper: mapper,
		hashes: hashes,
		marker: marker,
		logger: logger,
		window: window,
	}
}

// Run consumes events until the event stream ends, then flushes the last batch.
func (inv *Invalidator) Run(ctx context.Context, events ports.Watcher) {
	d := NewDebouncer(inv.window, func(paths []string) { inv.Apply(ctx, paths) })
	for ev := range events.Events() {
		d.Add(ev.Path)
	}
	d.Flush()
}

// Apply invalidates the packages behind paths. Paths outside the content
// mounts only refresh the file listing.
func (inv *Invalidator) Apply(ctx context.Context, paths []string) {
	inv.mapper.Invalidate()
	inv.hashes.Invalidate(paths)

	seen := make(map[domain.PackageID]struct{}, len(paths))
	var pkgs []domain.PackageID
	for _, p := range paths {
		pkg, ok := inv.mapper.PackageForPath(p)
		if !ok {
			continue
		}
		if _, dup := seen[pkg]; dup {
			continue
		}
		seen[pkg] = struct{}{}
		pkgs = append(pkgs, pkg)
	}
	if len(pkgs) == 0 {
		return
	}

	names := make([]string, len(pkgs))
	for i, pkg := range pkgs {
		names[i] = pkg.String()
	}
	inv.logger.Info(fmt.Sprintf("source changed: %s", strings.Join(names, ", ")))
	inv.marker.MarkPackageDirty(ctx, pkgs...)
}
