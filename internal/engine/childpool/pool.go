// Package childpool fans a bulk cook out to child cookers and merges their results.
package childpool

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// launchConcurrency bounds the number of workers started in parallel.
const launchConcurrency = 4

// PoolResult is the merged outcome of every child cooker.
type PoolResult struct {
	Records []domain.WorkerRecord
	// FailedChildren holds the indices of workers that failed to launch,
	// exited non-zero or reported no result.
	FailedChildren []int
}

type child struct {
	index     int
	packages  []domain.PackageID
	worker    ports.Worker
	span      ports.Span
	launchErr error
	done      bool
	code      int
}

// Pool drives a set of child cookers for one book session.
type Pool struct {
	launcher ports.WorkerLauncher
	tracer   ports.Tracer
	logger   ports.Logger
	metrics  ports.Metrics

	mu        sync.Mutex
	children  []*child
	platforms domain.PlatformSet
	released  bool
}

// New creates a pool launching workers through launcher.
func New(launcher ports.WorkerLauncher, tracer ports.Tracer, logger ports.Logger, metrics ports.Metrics) *Pool {
	return &Pool{
		launcher: launcher,
		tracer:   tracer,
		logger:   logger,
		metrics:  metrics,
	}
}

// Start partitions packages across n workers and launches them.
// It fails with ErrChildSpawnFailed only when no worker could be launched.
func (p *Pool) Start(
	ctx context.Context,
	n int,
	packages []domain.PackageID,
	platforms domain.PlatformSet,
	extraArgs []string,
) error {
	parts := Partition(packages, n)

	children := make([]*child, len(parts))
	g := new(errgroup.Group)
	g.SetLimit(launchConcurrency)

	for i, part := range parts {
		c := &child{index: i, packages: part}
		children[i] = c
		g.Go(func() error {
			spanCtx, span := p.tracer.Start(ctx, "child cooker "+strconv.Itoa(c.index))
			span.SetAttribute("cook.child.packages", len(c.packages))
			c.span = span

			w, err := p.launcher.Launch(spanCtx, domain.WorkerSpec{
				Index:     c.index,
				Packages:  c.packages,
				Platforms: platforms.Clone(),
				ExtraArgs: extraArgs,
			})
			if err != nil {
				c.launchErr = zerr.With(err, "child", c.index)
				span.RecordError(err)
				span.End()
				c.done = true
				c.code = -1
				return nil
			}
			c.worker = w
			return nil
		})
	}
	_ = g.Wait()

	var errs error
	launched := 0
	for _, c := range children {
		if c.launchErr != nil {
			errs = errors.Join(errs, c.launchErr)
			p.logger.Warn(fmt.Sprintf("child cooker %d failed to start: %v", c.index, c.launchErr))
			continue
		}
		launched++
	}

	p.mu.Lock()
	p.children = children
	p.platforms = platforms.Clone()
	p.released = false
	p.mu.Unlock()

	if len(parts) > 0 && launched == 0 {
		return errors.Join(domain.ErrChildSpawnFailed, errs)
	}
	return nil
}

// Tick polls every worker without blocking, forwards new output lines to the
// logger and reports whether all workers terminated.
func (p *Pool) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	finished := true
	for _, c := range p.children {
		if c.done {
			continue
		}
		for _, line := range c.worker.Output() {
			p.logger.Info(fmt.Sprintf("[child %d] %s", c.index, line))
			_, _ = fmt.Fprintln(c.span, line)
		}
		code, done := c.worker.Exited()
		if !done {
			finished = false
			continue
		}
		c.done = true
		c.code = code
		p.metrics.ChildExited(code)
		c.span.SetAttribute("cook.child.exit_code", code)
		if code != 0 {
			err := zerr.With(domain.ErrChildProcessFailed, "exit_code", code)
			c.span.RecordError(err)
			p.logger.Warn(fmt.Sprintf("child cooker %d exited with code %d", c.index, code))
		}
		c.span.End()
	}
	return finished
}

// Running returns the number of workers that have not terminated yet.
func (p *Pool) Running() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, c := range p.children {
		if !c.done {
			n++
		}
	}
	return n
}

// Results merges the worker records. Every (package, platform) pair of a
// failed worker's partition that has no record is reported as failed.
func (p *Pool) Results() PoolResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	var res PoolResult
	platforms := p.platforms.Sorted()

	for _, c := range p.children {
		var records []domain.WorkerRecord
		failed := c.launchErr != nil || c.code != 0
		if c.worker != nil && c.done {
			wr, err := c.worker.Result()
			if err != nil {
				failed = true
				p.logger.Warn(fmt.Sprintf("child cooker %d reported no result: %v", c.index, err))
			}
			if wr != nil {
				records = wr.Records
			} else {
				failed = true
			}
		}

		res.Records = append(res.Records, records...)
		if !failed {
			continue
		}
		res.FailedChildren = append(res.FailedChildren, c.index)

		have := make(map[domain.PackageID]map[domain.PlatformID]struct{}, len(records))
		for _, r := range records {
			if have[r.Package] == nil {
				have[r.Package] = make(map[domain.PlatformID]struct{})
			}
			have[r.Package][r.Platform] = struct{}{}
		}
		for _, pkg := range c.packages {
			for _, platform := range platforms {
				if _, ok := have[pkg][platform]; ok {
					continue
				}
				res.Records = append(res.Records, domain.WorkerRecord{
					Package:  pkg,
					Platform: platform,
					Success:  false,
				})
			}
		}
	}
	slices.Sort(res.FailedChildren)
	return res
}

// Cleanup releases every worker. It is idempotent.
func (p *Pool) Cleanup() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.released {
		return nil
	}
	p.released = true

	var errs error
	for _, c := range p.children {
		if c.worker == nil {
			continue
		}
		if err := c.worker.Release(); err != nil {
			errs = errors.Join(errs, zerr.With(err, "child", c.index))
		}
	}
	return errs
}
