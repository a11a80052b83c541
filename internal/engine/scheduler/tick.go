package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/cook/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Tick performs one bounded step of the control loop. It returns once the
// queue is empty, the time slice elapsed, the per-tick package budget is
// spent or a garbage collection has to run first. While child cookers own the
// book partitions, the queue only holds requests made outside the session and
// is served as usual.
func (s *Scheduler) Tick(ctx context.Context, slice time.Duration) domain.TickResult {
	s.cookMu.Lock()
	defer s.cookMu.Unlock()

	deadline := time.Now().Add(slice)
	var res domain.TickResult
	defer func() {
		s.host.Metrics.QueueDepth(s.queue.Len())
	}()

	if s.State() == domain.StateGCPause && !s.collectGarbage(ctx, &res) {
		return res
	}

	sess := s.currentSession()
	if sess != nil && !sess.worker {
		if sess.isCancelRequested() {
			s.teardown(ctx, sess)
			sess = nil
		} else if pool := sess.childPool(); pool != nil {
			if pool.Tick() {
				s.mergeChildResults(sess)
				s.finishSession(ctx, sess)
			} else {
				res.Flags |= domain.TickWaitingOnChildren
			}
			sess = nil
		}
	}

	budget := s.host.Config.Tick.MaxPackagesPerTick
	for {
		if !s.queue.HasItems() {
			s.setState(domain.StateIdle)
			if sess != nil && !sess.worker && sess.getPhase() == domain.BulkRunning {
				s.finishSession(ctx, sess)
				sess = nil
			}
			if state, reason := s.monitor.Evaluate(true); state != domain.MemoryNormal {
				s.enterGCPause(reason, &res)
			}
			return res
		}
		if time.Now().After(deadline) || (budget > 0 && res.Saved >= budget) {
			return res
		}

		req, ok := s.queue.Dequeue()
		if !ok {
			continue
		}
		s.setState(domain.StateCooking)
		s.cookRequest(ctx, sess, req, budget, &res)

		if state, reason := s.monitor.Evaluate(false); state != domain.MemoryNormal {
			s.enterGCPause(reason, &res)
			return res
		}
	}
}

func (s *Scheduler) enterGCPause(reason string, res *domain.TickResult) {
	s.mu.Lock()
	s.state = domain.StateGCPause
	s.gcReason = reason
	s.mu.Unlock()

	res.Flags |= domain.TickGCRequired
	res.GCReason = reason
}

// collectGarbage asks the collector to run and reports whether cooking may resume.
func (s *Scheduler) collectGarbage(ctx context.Context, res *domain.TickResult) bool {
	s.mu.Lock()
	reason := s.gcReason
	s.mu.Unlock()

	if !s.host.Collector.Collect(ctx) {
		res.Flags |= domain.TickGCRequired
		res.GCReason = reason
		return false
	}

	s.monitor.Reset()
	s.host.Metrics.GarbageCollected(reason)
	s.host.Logger.Info(fmt.Sprintf("garbage collected (%s)", reason))

	s.mu.Lock()
	s.state = domain.StateIdle
	s.gcReason = ""
	s.mu.Unlock()
	return true
}

// cookRequest loads the requested package once and saves it for every
// platform that has no terminal entry yet. Packages loaded as a side effect
// are saved inline while the tick budget allows, otherwise queued.
func (s *Scheduler) cookRequest(
	ctx context.Context,
	sess *session,
	req domain.FilePlatformRequest,
	budget int,
	res *domain.TickResult,
) {
	mode := registry.SuccessfulOnly
	if sess != nil {
		mode = registry.AnyAttempt
	}

	todo := s.uncooked(req.Package, req.Platforms, mode)
	if todo.Len() == 0 {
		if sess != nil {
			sess.noteSkipped(req.Package)
		}
		return
	}

	ctx, span := s.host.Tracer.Start(ctx, req.Package.String())
	defer span.End()
	span.SetAttribute("cook.platforms", todo.String())

	loaded, err := s.host.Loader.Load(ctx, req.Package)
	if err != nil || loaded.Root == nil {
		if err == nil {
			err = domain.ErrPackageNotFound
		}
		err = zerr.With(errors.Join(domain.ErrLoadFailed, err), "package", req.Package.String())
		span.RecordError(err)
		s.host.Logger.Warn(fmt.Sprintf("failed to load %s: %v", req.Package, err))
		if sess != nil {
			sess.noteAttempted(&domain.LoadedPackage{ID: req.Package})
		}
		for _, p := range todo.Sorted() {
			s.registry.MarkCooked(req.Package, p, false)
			s.host.Metrics.PackageCooked(p.String(), domain.SaveError.String())
		}
		res.Flags |= domain.TickLoadError
		return
	}

	root := loaded.Root
	s.monitor.NoteLoaded(loaded.ClassTags())

	results := s.savePackage(ctx, sess, span, root, todo)
	s.notePackageSaved(root, res)

	for _, dep := range loaded.Loaded {
		if dep == nil || dep.ID == root.ID || dep.ID == req.Package {
			continue
		}
		if s.queue.Exists(dep.ID, req.Platforms) {
			continue
		}
		need := s.uncooked(dep.ID, req.Platforms, mode)
		if need.Len() == 0 {
			continue
		}
		if budget > 0 && res.Saved >= budget {
			s.queue.Enqueue(dep.ID, need, false)
			continue
		}
		depResults := s.savePackage(ctx, sess, span, dep, need)
		s.notePackageSaved(dep, res)
		for p, status := range depResults {
			s.registry.MarkCooked(dep.ID, p, status.Succeeded())
			if status.Succeeded() {
				s.unsolicited.Add(p, dep.ID)
			}
		}
	}

	// The root is recorded last so that a waiting file request sees the
	// complete unsolicited list once its entry appears.
	for p, status := range results {
		s.registry.MarkCooked(root.ID, p, status.Succeeded())
		if root.ID != req.Package {
			s.registry.MarkCooked(req.Package, p, status.Succeeded())
		}
	}
}

// uncooked returns the platforms of platforms without an entry accepted by mode.
func (s *Scheduler) uncooked(pkg domain.PackageID, platforms domain.PlatformSet, mode registry.Mode) domain.PlatformSet {
	out := domain.NewPlatformSet()
	for p := range platforms {
		if !s.registry.IsCooked(pkg, domain.NewPlatformSet(p), mode) {
			out.Add(p)
		}
	}
	return out
}

func (s *Scheduler) notePackageSaved(pkg *domain.LoadedPackage, res *domain.TickResult) {
	res.Saved++
	if pkg.IsMap {
		res.Flags |= domain.TickCookedMap
	} else {
		res.Flags |= domain.TickCookedPackage
	}
	s.monitor.NotePackageSaved()
}

// savePackage runs the serializer for every platform in name order.
func (s *Scheduler) savePackage(
	ctx context.Context,
	sess *session,
	span ports.Span,
	pkg *domain.LoadedPackage,
	platforms domain.PlatformSet,
) map[domain.PlatformID]domain.SaveStatus {
	if sess != nil {
		sess.noteAttempted(pkg)
	}

	results := make(map[domain.PlatformID]domain.SaveStatus, platforms.Len())
	for _, p := range platforms.Sorted() {
		out := s.host.Sandbox.OutputPath(pkg.ID, p)
		status, err := s.host.Serializer.Save(ctx, pkg, p, out)
		if err != nil {
			status = domain.SaveError
			err = zerr.With(errors.Join(domain.ErrSaveFailed, err), "package", pkg.ID.String())
			err = zerr.With(err, "platform", p.String())
			span.RecordError(err)
			s.host.Logger.Warn(fmt.Sprintf("failed to save %s for %s: %v", pkg.ID, p, err))
		}
		if status == domain.SaveUpToDate && sess != nil {
			sess.noteUpToDate(pkg.ID, p)
		}
		s.host.Metrics.PackageCooked(p.String(), status.String())
		results[p] = status
	}
	return results
}
