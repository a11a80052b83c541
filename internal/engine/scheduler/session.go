package scheduler

import (
	"context"
	"sync"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/cook/internal/engine/childpool"
)

type recordKey struct {
	pkg      domain.PackageID
	platform domain.PlatformID
}

// session is the state of one book session, or of the private partition cook
// of a child cooker when worker is set.
type session struct {
	id        string
	opts      domain.BookOptions
	platforms domain.PlatformSet
	worker    bool

	ctx    context.Context
	cancel context.CancelFunc
	span   ports.Span
	done   chan struct{}

	mu              sync.Mutex
	phase           domain.BulkPhase
	cancelRequested bool
	pool            *childpool.Pool
	total           int
	attempted       map[domain.PackageID]struct{}
	skipped         map[domain.PackageID]struct{}
	maps            map[domain.PackageID]struct{}
	upToDate        map[recordKey]struct{}
	hashes          map[domain.PackageID]string
	released        map[domain.PackageID]struct{}
	kept            int
	childFailures   []int
	report          domain.CookReport
}

func newSession(id string, opts domain.BookOptions, platforms domain.PlatformSet) *session {
	return &session{
		id:        id,
		opts:      opts,
		platforms: platforms,
		done:      make(chan struct{}),
		phase:     domain.BulkStarting,
		attempted: make(map[domain.PackageID]struct{}),
		skipped:   make(map[domain.PackageID]struct{}),
		maps:      make(map[domain.PackageID]struct{}),
		upToDate:  make(map[recordKey]struct{}),
		hashes:    make(map[domain.PackageID]string),
		released:  make(map[domain.PackageID]struct{}),
	}
}

func (sess *session) setPhase(phase domain.BulkPhase) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.phase = phase
}

func (sess *session) getPhase() domain.BulkPhase {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.phase
}

func (sess *session) childMode() bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.pool != nil
}

func (sess *session) childPool() *childpool.Pool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.pool
}

func (sess *session) requestCancel() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.cancelRequested = true
}

func (sess *session) isCancelRequested() bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.cancelRequested
}

func (sess *session) noteAttempted(pkg *domain.LoadedPackage) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.attempted[pkg.ID] = struct{}{}
	delete(sess.skipped, pkg.ID)
	if pkg.IsMap {
		sess.maps[pkg.ID] = struct{}{}
	}
}

func (sess *session) noteUpToDate(pkg domain.PackageID, platform domain.PlatformID) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.upToDate[recordKey{pkg: pkg, platform: platform}] = struct{}{}
}

func (sess *session) noteSkipped(pkg domain.PackageID) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if _, ok := sess.attempted[pkg]; !ok {
		sess.skipped[pkg] = struct{}{}
	}
}

// noteRecord folds a record reported by a child cooker into the session.
func (sess *session) noteRecord(r domain.WorkerRecord) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.attempted[r.Package] = struct{}{}
	if r.IsMap {
		sess.maps[r.Package] = struct{}{}
	}
	if r.UpToDate {
		sess.upToDate[recordKey{pkg: r.Package, platform: r.Platform}] = struct{}{}
	}
	if r.Hash != "" {
		sess.hashes[r.Package] = r.Hash
	}
}

// fullyUpToDate reports whether every save of pkg found its artifact current.
func (sess *session) fullyUpToDate(pkg domain.PackageID) bool {
	for p := range sess.platforms {
		if _, ok := sess.upToDate[recordKey{pkg: pkg, platform: p}]; !ok {
			return false
		}
	}
	return true
}
