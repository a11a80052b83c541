package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/engine/registry"
	"go.trai.ch/zerr"
)

// StartCookByTheBook prepares the sandbox, collects the packages to cook and
// queues them. Cooking happens on subsequent ticks. It waits for a tick in
// progress to end first. Only configuration-level failures are returned.
func (s *Scheduler) StartCookByTheBook(ctx context.Context, opts domain.BookOptions) (string, error) {
	platforms := domain.NewPlatformSet(opts.Platforms...)
	if platforms.Len() == 0 {
		platforms = s.host.Config.PlatformSet()
	}
	if platforms.Len() == 0 {
		return "", domain.ErrNoPlatforms
	}
	if opts.Children > 0 && s.host.Launcher == nil {
		return "", domain.ErrChildSpawnFailed
	}
	if opts.DLCName != "" {
		opts.Filter.DLC = opts.DLCName
	}

	sess := newSession("book_"+uuid.New().String(), opts, platforms)

	s.cookMu.Lock()
	defer s.cookMu.Unlock()

	s.mu.Lock()
	if s.session != nil {
		s.mu.Unlock()
		return "", domain.ErrSessionRunning
	}
	s.session = sess
	s.mu.Unlock()

	sessCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sess.ctx, sess.cancel = sessCtx, cancel
	sess.ctx, sess.span = s.host.Tracer.Start(sess.ctx, "cook by the book")
	sess.span.SetAttribute("cook.session", sess.id)
	sess.span.SetAttribute("cook.platforms", platforms.String())

	if err := s.startSession(sess); err != nil {
		sess.span.RecordError(err)
		sess.span.End()
		cancel()

		s.mu.Lock()
		s.session = nil
		s.mu.Unlock()
		close(sess.done)
		return "", err
	}

	s.notify()
	return sess.id, nil
}

func (s *Scheduler) startSession(sess *session) error {
	ctx := sess.ctx
	opts := sess.opts

	kept, err := s.cleanSandbox(ctx, sess.platforms, opts.Iterative, opts.DLCName)
	if err != nil {
		return err
	}
	sess.kept = kept

	for _, p := range sess.platforms.Sorted() {
		if err := s.host.Sandbox.Prepare(p); err != nil {
			return zerr.With(errors.Join(domain.ErrSandboxCreateFailed, err), "platform", p.String())
		}
	}

	var fromRelease []domain.PackageID
	if opts.BasedOnRelease != "" {
		fromRelease, err = s.applyRelease(ctx, sess)
		if err != nil {
			return err
		}
	}

	files, err := s.collectFilesToCook(ctx, opts.Filter)
	if err != nil {
		return err
	}
	files = append(fromRelease, files...)

	// Requests drained by a cancelled session go first.
	s.mu.Lock()
	previous := s.previous
	s.previous = nil
	s.mu.Unlock()
	for _, req := range previous {
		s.queue.EnqueueRequest(req, false)
	}

	planned := make([]string, 0, len(files))
	seen := make(map[domain.PackageID]struct{}, len(files))
	for _, pkg := range files {
		if _, ok := seen[pkg]; ok {
			continue
		}
		seen[pkg] = struct{}{}
		if s.registry.IsCooked(pkg, sess.platforms, registry.SuccessfulOnly) {
			sess.noteSkipped(pkg)
			continue
		}
		s.queue.Enqueue(pkg, sess.platforms, false)
		planned = append(planned, pkg.String())
	}

	sess.mu.Lock()
	sess.total = len(seen)
	sess.mu.Unlock()

	s.host.Tracer.EmitPlan(ctx, planned)
	s.host.Logger.Info(fmt.Sprintf("cook by the book: %d packages, %d queued, %d kept from previous cook",
		len(seen), s.queue.Len(), kept))

	if opts.Children > 0 {
		pending := s.queue.Drain()
		pkgs := make([]domain.PackageID, 0, len(pending))
		for _, req := range pending {
			pkgs = append(pkgs, req.Package)
		}
		pool := s.newChildPool()
		if err := pool.Start(ctx, opts.Children, pkgs, sess.platforms, opts.ChildArgs); err != nil {
			_ = pool.Cleanup()
			// Give the packages back so the next session can pick them up.
			for _, req := range pending {
				s.queue.EnqueueRequest(req, false)
			}
			return err
		}
		sess.mu.Lock()
		sess.pool = pool
		sess.mu.Unlock()
	}

	sess.setPhase(domain.BulkRunning)
	return nil
}

// applyRelease seeds the session from the manifests of a previous release.
// A DLC session treats every released package as cooked and never records it;
// a patch session queues every released package again.
func (s *Scheduler) applyRelease(ctx context.Context, sess *session) ([]domain.PackageID, error) {
	var out []domain.PackageID
	for _, p := range sess.platforms.Sorted() {
		m, err := s.host.Manifests.Get(ctx, domain.ManifestKey{Platform: p, Release: sess.opts.BasedOnRelease})
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, errors.Join(domain.ErrManifestReadFailed, fmt.Errorf("release %q has no manifest for %s", sess.opts.BasedOnRelease, p))
		}
		for _, pkg := range m.Packages() {
			if sess.opts.DLCName == "" {
				out = append(out, pkg)
				continue
			}
			s.registry.MarkCooked(pkg, p, true)
			sess.mu.Lock()
			sess.released[pkg] = struct{}{}
			sess.mu.Unlock()
		}
	}
	return out, nil
}

// collectFilesToCook enumerates the filter and expands every package with its
// transitive dependencies. Always-cook packages from the configuration are added.
func (s *Scheduler) collectFilesToCook(ctx context.Context, filter domain.AssetFilter) ([]domain.PackageID, error) {
	roots, err := s.host.Enumerator.Enumerate(ctx, filter)
	if err != nil {
		return nil, errors.Join(domain.ErrEnumerationFailed, err)
	}
	roots = append(roots, s.host.Config.AlwaysCook...)

	seen := make(map[domain.PackageID]struct{}, len(roots))
	var out []domain.PackageID
	add := func(pkg domain.PackageID) {
		if _, ok := seen[pkg]; ok || pkg.IsZero() {
			return
		}
		seen[pkg] = struct{}{}
		out = append(out, pkg)
	}

	for _, root := range roots {
		add(root)
		deps, err := s.host.Resolver.GetDependenciesOf(ctx, root)
		if err != nil {
			s.host.Logger.Warn(fmt.Sprintf("failed to resolve dependencies of %s: %v", root, err))
			continue
		}
		for _, dep := range deps {
			add(dep)
		}
	}
	return out, nil
}

// IsRunning reports whether id names the running session.
func (s *Scheduler) IsRunning(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil && s.session.id == id
}

// Cancel asks the running session to stop at the next tick boundary.
func (s *Scheduler) Cancel(id string) error {
	s.mu.Lock()
	sess := s.session
	s.mu.Unlock()

	if sess == nil || sess.id != id || sess.worker {
		return domain.ErrSessionNotFound
	}
	sess.requestCancel()
	s.notify()
	return nil
}

// Wait blocks until the session finishes and returns its report.
func (s *Scheduler) Wait(ctx context.Context, id string) (domain.CookReport, error) {
	s.mu.Lock()
	sess := s.session
	last := s.report
	s.mu.Unlock()

	if sess == nil || sess.id != id {
		if last != nil && last.Session == id {
			return *last, nil
		}
		return domain.CookReport{}, domain.ErrSessionNotFound
	}

	select {
	case <-sess.done:
		return sess.report, nil
	case <-ctx.Done():
		return domain.CookReport{}, ctx.Err()
	}
}

// teardown ends a cancelled session. Pending requests are kept for the next
// session, except for platforms a file request is still waiting on: those stay
// queued.
func (s *Scheduler) teardown(ctx context.Context, sess *session) {
	var drained []domain.FilePlatformRequest
	for _, req := range s.queue.Drain() {
		waiting := domain.NewPlatformSet()
		rest := domain.NewPlatformSet()
		for p := range req.Platforms {
			if s.registry.Watched(req.Package, p) {
				waiting.Add(p)
			} else {
				rest.Add(p)
			}
		}
		if waiting.Len() > 0 {
			s.queue.Enqueue(req.Package, waiting, false)
		}
		if rest.Len() > 0 {
			drained = append(drained, domain.FilePlatformRequest{Package: req.Package, Platforms: rest})
		}
	}

	s.mu.Lock()
	s.previous = append(s.previous, drained...)
	s.mu.Unlock()

	if pool := sess.childPool(); pool != nil {
		sess.cancel()
		if pool.Tick() {
			s.mergeChildResults(sess)
		}
		if err := pool.Cleanup(); err != nil {
			s.host.Logger.Warn(fmt.Sprintf("failed to clean up child cookers: %v", err))
		}
	}

	sess.span.RecordError(domain.ErrCancellationRequested)
	s.host.Logger.Info(fmt.Sprintf("cook by the book cancelled, %d requests kept for the next session", len(drained)))
	s.endSession(ctx, sess, true)
}

// mergeChildResults records every child cooker result in the registry.
func (s *Scheduler) mergeChildResults(sess *session) {
	pool := sess.childPool()
	res := pool.Results()
	for _, r := range res.Records {
		s.registry.MarkCooked(r.Package, r.Platform, r.Success)
		sess.noteRecord(r)
	}
	sess.mu.Lock()
	sess.childFailures = res.FailedChildren
	sess.mu.Unlock()

	if err := pool.Cleanup(); err != nil {
		s.host.Logger.Warn(fmt.Sprintf("failed to clean up child cookers: %v", err))
	}
}

// finishSession persists manifests and writes the report.
func (s *Scheduler) finishSession(ctx context.Context, sess *session) {
	sess.setPhase(domain.BulkFinishing)

	if err := s.saveManifests(sess.ctx, sess); err != nil {
		sess.span.RecordError(err)
		s.host.Logger.Error(err)
	}
	if sess.opts.MapDependencyGraph {
		if err := s.saveMapDependencyGraph(sess.ctx, sess); err != nil {
			sess.span.RecordError(err)
			s.host.Logger.Error(err)
		}
	}
	s.endSession(ctx, sess, false)
}

func (s *Scheduler) endSession(_ context.Context, sess *session, cancelled bool) {
	report := s.buildReport(sess, cancelled)

	sess.mu.Lock()
	sess.report = report
	sess.phase = domain.BulkNone
	sess.mu.Unlock()

	sess.span.SetAttribute("cook.attempted", report.Attempted)
	sess.span.SetAttribute("cook.failed", len(report.Failed))
	sess.span.End()
	sess.cancel()

	s.mu.Lock()
	s.session = nil
	s.report = &report
	s.mu.Unlock()

	close(sess.done)
}

func (s *Scheduler) buildReport(sess *session, cancelled bool) domain.CookReport {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	report := domain.CookReport{
		Session:              sess.id,
		KeptFromPreviousCook: sess.kept,
		ChildFailures:        sess.childFailures,
		Cancelled:            cancelled,
	}
	for pkg := range sess.attempted {
		if s.registry.IsCooked(pkg, sess.platforms, registry.SuccessfulOnly) {
			if sess.fullyUpToDate(pkg) {
				report.SkippedUpToDate++
				continue
			}
		} else {
			report.Failed = append(report.Failed, pkg)
		}
		report.Attempted++
	}
	report.SkippedUpToDate += len(sess.skipped)
	domain.SortPackages(report.Failed)
	return report
}

// saveManifests writes one manifest per platform, plus a release copy when asked.
func (s *Scheduler) saveManifests(ctx context.Context, sess *session) error {
	records := s.registry.Records()
	hashes := make(map[domain.PackageID]string)
	now := time.Now().UTC()

	var errs error
	for _, p := range sess.platforms.Sorted() {
		m := &domain.Manifest{
			Platform:        p,
			SettingsVersion: s.host.Config.SettingsVersion,
			DLC:             sess.opts.DLCName,
		}
		for _, rec := range records {
			if _, released := sess.released[rec.Package]; released {
				continue
			}
			if !rec.Attempted(p) {
				continue
			}
			entry := domain.ManifestEntry{Package: rec.Package, Success: rec.Succeeded(p), CookedAt: now}
			if entry.Success {
				entry.Hash = s.packageHash(ctx, sess, hashes, rec.Package)
			}
			m.Entries = append(m.Entries, entry)
		}

		if err := s.host.Manifests.Put(ctx, m); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if sess.opts.CreateRelease != "" {
			release := *m
			release.Release = sess.opts.CreateRelease
			if err := s.host.Manifests.Put(ctx, &release); err != nil {
				errs = errors.Join(errs, err)
			}
		}
	}
	return errs
}

func (s *Scheduler) packageHash(
	ctx context.Context,
	sess *session,
	memo map[domain.PackageID]string,
	pkg domain.PackageID,
) string {
	if h, ok := memo[pkg]; ok {
		return h
	}
	sess.mu.Lock()
	h, ok := sess.hashes[pkg]
	sess.mu.Unlock()
	if !ok {
		var err error
		h, err = s.host.Hasher.Hash(ctx, pkg, s.host.Config.SettingsVersion)
		if err != nil {
			s.host.Logger.Warn(fmt.Sprintf("failed to hash %s: %v", pkg, err))
			h = ""
		}
	}
	memo[pkg] = h
	return h
}

// saveMapDependencyGraph writes {map: [dependencies]} for every cooked map.
func (s *Scheduler) saveMapDependencyGraph(ctx context.Context, sess *session) error {
	sess.mu.Lock()
	mapIDs := make([]domain.PackageID, 0, len(sess.maps))
	for pkg := range sess.maps {
		mapIDs = append(mapIDs, pkg)
	}
	sess.mu.Unlock()
	domain.SortPackages(mapIDs)

	var errs error
	for _, p := range sess.platforms.Sorted() {
		graph := make(domain.DependencyGraph)
		for _, m := range mapIDs {
			if !s.registry.IsCooked(m, domain.NewPlatformSet(p), registry.SuccessfulOnly) {
				continue
			}
			deps, err := s.host.Resolver.GetDependenciesOf(ctx, m)
			if err != nil {
				errs = errors.Join(errs, errors.Join(domain.ErrDependencyResolutionFailed, err))
				continue
			}
			domain.SortPackages(deps)
			names := make([]string, len(deps))
			for i, d := range deps {
				names[i] = d.String()
			}
			graph[m.String()] = names
		}

		data, err := json.MarshalIndent(graph, "", "  ")
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if err := s.host.Sandbox.WriteFile(p, domain.DependencyGraphFile, data); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
