// Package gc releases resident packages and reports process memory usage.
package gc

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/dustin/go-humanize"
	"go.trai.ch/cook/internal/core/ports"
)

var (
	_ ports.GarbageCollector = (*Collector)(nil)
	_ ports.MemoryProbe      = (*Probe)(nil)
)

// Cache holds loaded packages that a collection releases.
type Cache interface {
	Resident() (count int, bytes uint64)
	Evict() int
}

// Collector evicts the package cache and returns the freed memory to the OS.
type Collector struct {
	cache  Cache
	logger ports.Logger
}

// NewCollector creates a collector over cache.
func NewCollector(cache Cache, logger ports.Logger) *Collector {
	return &Collector{cache: cache, logger: logger}
}

// Collect implements ports.GarbageCollector. It always completes unless ctx
// is already done.
func (c *Collector) Collect(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	_, payload := c.cache.Resident()
	evicted := c.cache.Evict()
	debug.FreeOSMemory()

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	freed := uint64(0)
	if before.HeapAlloc > after.HeapAlloc {
		freed = before.HeapAlloc - after.HeapAlloc
	}
	c.logger.Info(fmt.Sprintf("released %d packages (%s payload), heap %s -> %s, freed %s",
		evicted,
		humanize.IBytes(payload),
		humanize.IBytes(before.HeapAlloc),
		humanize.IBytes(after.HeapAlloc),
		humanize.IBytes(freed),
	))
	return true
}

// Probe reports the heap in use plus an optional fixed baseline, so tests and
// embedders can simulate memory pressure.
type Probe struct {
	baseline uint64
}

// NewProbe creates a probe adding baseline bytes to every reading.
func NewProbe(baseline uint64) *Probe {
	return &Probe{baseline: baseline}
}

// Usage implements ports.MemoryProbe.
func (p *Probe) Usage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc + p.baseline
}
