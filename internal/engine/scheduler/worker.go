package scheduler

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/cook/internal/core/domain"
)

// CookPartition cooks one partition of a book session in a private scheduler,
// the way a child cooker does, and returns a record for every terminal
// (package, platform) pair. Progress lines are written to out.
func CookPartition(
	ctx context.Context,
	host Host,
	spec domain.WorkerSpec,
	out io.Writer,
) (*domain.WorkerResult, error) {
	if spec.Platforms.Len() == 0 {
		return nil, domain.ErrNoPlatforms
	}

	s := New(host)
	sess := newSession(fmt.Sprintf("child_%d", spec.Index), domain.BookOptions{}, spec.Platforms)
	sess.worker = true
	sess.phase = domain.BulkRunning
	sess.ctx, sess.span = host.Tracer.Start(ctx, fmt.Sprintf("partition %d", spec.Index))
	defer sess.span.End()
	s.session = sess

	for _, pkg := range spec.Packages {
		s.queue.Enqueue(pkg, spec.Platforms, false)
	}
	_, _ = fmt.Fprintf(out, "cooking %d packages for %s\n", s.queue.Len(), spec.Platforms)

	slice := host.Config.Tick.TimeSlice
	if slice <= 0 {
		slice = domain.DefaultTimeSlice
	}

	for s.queue.HasItems() || s.State() == domain.StateGCPause {
		if err := ctx.Err(); err != nil {
			return s.partitionResult(sess), err
		}
		res := s.Tick(sess.ctx, slice)
		if res.Saved > 0 {
			_, _ = fmt.Fprintf(out, "saved %d packages, %d pending\n", res.Saved, s.queue.Len())
		}
		if res.Flags.Has(domain.TickGCRequired) {
			_, _ = fmt.Fprintf(out, "garbage collection: %s\n", res.GCReason)
		}
	}

	result := s.partitionResult(sess)
	s.hashRecords(sess.ctx, result)
	_, _ = fmt.Fprintf(out, "done, %d records\n", len(result.Records))
	return result, nil
}

func (s *Scheduler) partitionResult(sess *session) *domain.WorkerResult {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	result := &domain.WorkerResult{}
	for _, rec := range s.registry.Records() {
		_, isMap := sess.maps[rec.Package]
		for _, p := range sess.platforms.Sorted() {
			if !rec.Attempted(p) {
				continue
			}
			r := domain.WorkerRecord{
				Package:  rec.Package,
				Platform: p,
				Success:  rec.Succeeded(p),
				IsMap:    isMap,
			}
			if _, ok := sess.upToDate[recordKey{pkg: rec.Package, platform: p}]; ok {
				r.UpToDate = true
			}
			result.Records = append(result.Records, r)
		}
	}
	return result
}

// hashRecords fills the staleness hash of every successful record so the
// parent can write it into the manifest.
func (s *Scheduler) hashRecords(ctx context.Context, result *domain.WorkerResult) {
	hashes := make(map[domain.PackageID]string)
	for i := range result.Records {
		r := &result.Records[i]
		if !r.Success {
			continue
		}
		h, ok := hashes[r.Package]
		if !ok {
			var err error
			h, err = s.host.Hasher.Hash(ctx, r.Package, s.host.Config.SettingsVersion)
			if err != nil {
				s.host.Logger.Warn(fmt.Sprintf("failed to hash %s: %v", r.Package, err))
			}
			hashes[r.Package] = h
		}
		r.Hash = h
	}
}
