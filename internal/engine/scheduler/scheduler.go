// Package scheduler drives cooking: it drains the request queue one tick at a
// time, runs book sessions and serves network file requests.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/cook/internal/engine/childpool"
	"go.trai.ch/cook/internal/engine/memory"
	"go.trai.ch/cook/internal/engine/queue"
	"go.trai.ch/cook/internal/engine/registry"
	"go.trai.ch/cook/internal/engine/unsolicited"
)

// idlePollInterval is how often an idle Run loop re-evaluates the idle collection.
const idlePollInterval = time.Second

// Host carries every collaborator of a scheduler. It is owned by the process
// hosting the scheduler and replaces any ambient global state.
type Host struct {
	Loader     ports.PackageLoader
	Serializer ports.PlatformSerializer
	Resolver   ports.DependencyResolver
	Enumerator ports.AssetEnumerator
	Hasher     ports.PackageHasher
	Sandbox    ports.Sandbox
	Collector  ports.GarbageCollector
	Probe      ports.MemoryProbe
	Manifests  ports.ManifestStore
	// Launcher starts child cookers. Book sessions asking for children fail without it.
	Launcher ports.WorkerLauncher
	Tracer   ports.Tracer
	Logger   ports.Logger
	Metrics  ports.Metrics
	Config   domain.Config
}

// Scheduler owns the request queue, the cooked registry, the unsolicited
// collector and the memory monitor of one process.
type Scheduler struct {
	host        Host
	queue       *queue.Queue
	registry    *registry.Registry
	unsolicited *unsolicited.Collector
	monitor     *memory.Monitor

	wake chan struct{}

	// cookMu is held by Tick and by every operation that wipes the sandbox
	// or reseeds the queue, so no cook is in flight while they run.
	cookMu sync.Mutex

	mu       sync.Mutex
	state    domain.SchedulerState
	gcReason string
	session  *session
	previous []domain.FilePlatformRequest
	report   *domain.CookReport
}

// New creates a scheduler over host.
func New(host Host) *Scheduler {
	return &Scheduler{
		host:        host,
		queue:       queue.New(),
		registry:    registry.New(),
		unsolicited: unsolicited.New(),
		monitor:     memory.New(host.Config.Memory, host.Probe),
		wake:        make(chan struct{}, 1),
	}
}

// RequestCook queues pkg for platforms and wakes the run loop.
func (s *Scheduler) RequestCook(pkg domain.PackageID, platforms domain.PlatformSet, front bool) {
	s.queue.Enqueue(pkg, platforms, front)
	s.notify()
}

func (s *Scheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run ticks the scheduler until ctx is done. Between ticks it sleeps until new
// work arrives, child cookers need polling or the idle interval elapses.
func (s *Scheduler) Run(ctx context.Context) error {
	slice := s.host.Config.Tick.TimeSlice
	if slice <= 0 {
		slice = domain.DefaultTimeSlice
	}

	timer := time.NewTimer(idlePollInterval)
	defer timer.Stop()

	for {
		res := s.Tick(ctx, slice)
		if ctx.Err() != nil {
			return nil
		}

		wait := idlePollInterval
		switch {
		case s.queue.HasItems() || s.State() == domain.StateGCPause:
			continue
		case res.Flags.Has(domain.TickWaitingOnChildren):
			wait = slice
		}

		timer.Reset(wait)
		select {
		case <-ctx.Done():
			return nil
		case <-s.wake:
		case <-timer.C:
		}
	}
}

// State returns the coarse state of the control loop.
func (s *Scheduler) State() domain.SchedulerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scheduler) setState(state domain.SchedulerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// PendingCount returns the number of queued packages.
func (s *Scheduler) PendingCount() int {
	return s.queue.Len()
}

// Pending returns a snapshot of the queued requests in order.
func (s *Scheduler) Pending() []domain.FilePlatformRequest {
	return s.queue.Snapshot()
}

// HasErrors reports whether any recorded cook failed.
func (s *Scheduler) HasErrors() bool {
	return s.registry.HasFailures()
}

// CookedManifestFor returns the packages cooked successfully for platform, sorted.
func (s *Scheduler) CookedManifestFor(platform domain.PlatformID) []domain.PackageID {
	return s.registry.Successful(platform)
}

// Status returns the scheduler state reported to network clients.
func (s *Scheduler) Status() domain.Status {
	st := domain.Status{
		Pending:   s.queue.Len(),
		HasErrors: s.registry.HasFailures(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st.State = s.state
	if s.session != nil && !s.session.worker {
		st.Session = s.session.id
	}
	return st
}

// Record returns the cook record of pkg.
func (s *Scheduler) Record(pkg domain.PackageID) (domain.CookRecord, bool) {
	return s.registry.Record(pkg)
}

// Report returns the report of the last finished book session.
func (s *Scheduler) Report() (domain.CookReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.report == nil {
		return domain.CookReport{}, false
	}
	return *s.report, true
}

// Progress returns a view of the running book session for renderers.
func (s *Scheduler) Progress() domain.Progress {
	s.mu.Lock()
	sess := s.session
	p := domain.Progress{State: s.state}
	s.mu.Unlock()

	p.Pending = s.queue.Len()
	if sess == nil {
		return p
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	p.Session = sess.id
	p.Phase = sess.phase
	p.Total = sess.total
	p.Cooked = len(sess.attempted)
	for pkg := range sess.attempted {
		if !s.registry.IsCooked(pkg, sess.platforms, registry.SuccessfulOnly) {
			p.Failed++
		}
	}
	if sess.pool != nil {
		p.Children = sess.pool.Running()
	}
	return p
}

// MarkPackageDirty forgets the cooked state of the given packages and of every
// package that depends on them. While an in-process book session runs,
// forgotten packages are queued again for the platforms they had been cooked for.
func (s *Scheduler) MarkPackageDirty(ctx context.Context, pkgs ...domain.PackageID) {
	if len(pkgs) == 0 {
		return
	}
	s.cookMu.Lock()
	defer s.cookMu.Unlock()

	affected, err := s.host.Resolver.GetDependents(ctx, pkgs)
	if err != nil {
		s.host.Logger.Warn(fmt.Sprintf("failed to resolve dependents of dirty packages: %v", err))
		affected = pkgs
	}

	sess := s.currentSession()
	requeue := sess != nil && !sess.childMode()

	for _, dep := range affected {
		platforms := s.registry.PlatformsAttemptedFor(dep)
		if !s.registry.RemovePackage(dep) {
			continue
		}
		if requeue && platforms.Len() > 0 {
			s.queue.Enqueue(dep, platforms, false)
		}
	}
	s.notify()
}

// ClearAllCookedData forgets every cook result.
func (s *Scheduler) ClearAllCookedData() {
	s.registry.Clear()
	s.unsolicited.Clear()
}

// ClearPlatformCookedData forgets the cook results of one platform.
func (s *Scheduler) ClearPlatformCookedData(platform domain.PlatformID) {
	s.registry.RemovePlatform(platform)
	s.unsolicited.ClearPlatform(platform)
}

func (s *Scheduler) currentSession() *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// newChildPool creates the pool of a book session.
func (s *Scheduler) newChildPool() *childpool.Pool {
	return childpool.New(s.host.Launcher, s.host.Tracer, s.host.Logger, s.host.Metrics)
}
