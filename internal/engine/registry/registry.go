// Package registry tracks the terminal cook results per package and platform.
package registry

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/cook/internal/core/domain"
)

// Mode selects which terminal entries satisfy IsCooked.
type Mode uint8

const (
	// SuccessfulOnly accepts only successful entries.
	SuccessfulOnly Mode = iota
	// AnyAttempt accepts failed entries as well.
	AnyAttempt
)

type watchKey struct {
	pkg      domain.PackageID
	platform domain.PlatformID
}

// Registry maps packages to the platforms they were cooked for.
// It is safe for concurrent use and never touches disk.
type Registry struct {
	mu       sync.Mutex
	records  map[domain.PackageID]map[domain.PlatformID]bool
	watchers map[watchKey][]chan bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		records:  make(map[domain.PackageID]map[domain.PlatformID]bool),
		watchers: make(map[watchKey][]chan bool),
	}
}

// MarkCooked records the terminal result of cooking pkg for platform.
// Re-marking overwrites the previous flag.
func (r *Registry) MarkCooked(pkg domain.PackageID, platform domain.PlatformID, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[pkg]
	if !ok {
		rec = make(map[domain.PlatformID]bool)
		r.records[pkg] = rec
	}
	rec[platform] = success

	key := watchKey{pkg: pkg, platform: platform}
	for _, ch := range r.watchers[key] {
		ch <- success
	}
	delete(r.watchers, key)
}

// IsCooked reports whether every platform in platforms has an entry for pkg
// accepted by mode. An empty platform set is never cooked.
func (r *Registry) IsCooked(pkg domain.PackageID, platforms domain.PlatformSet, mode Mode) bool {
	if platforms.Len() == 0 {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[pkg]
	if !ok {
		return false
	}
	for p := range platforms {
		success, attempted := rec[p]
		if !attempted || (mode == SuccessfulOnly && !success) {
			return false
		}
	}
	return true
}

// PlatformsCookedFor returns the platforms with a successful entry for pkg.
func (r *Registry) PlatformsCookedFor(pkg domain.PackageID) domain.PlatformSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := domain.NewPlatformSet()
	for p, success := range r.records[pkg] {
		if success {
			out.Add(p)
		}
	}
	return out
}

// PlatformsAttemptedFor returns every platform with a terminal entry for pkg.
func (r *Registry) PlatformsAttemptedFor(pkg domain.PackageID) domain.PlatformSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := domain.NewPlatformSet()
	for p := range r.records[pkg] {
		out.Add(p)
	}
	return out
}

// Record returns a copy of the record of pkg.
func (r *Registry) Record(pkg domain.PackageID) (domain.CookRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[pkg]
	if !ok {
		return domain.CookRecord{}, false
	}
	return domain.CookRecord{Package: pkg, Platforms: maps.Clone(rec)}, true
}

// RemovePlatform strips platform from every record.
func (r *Registry) RemovePlatform(platform domain.PlatformID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for pkg, rec := range r.records {
		delete(rec, platform)
		if len(rec) == 0 {
			delete(r.records, pkg)
		}
	}
}

// Unmark drops the entry of pkg for platform so the pair can be cooked again.
func (r *Registry) Unmark(pkg domain.PackageID, platform domain.PlatformID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[pkg]
	if !ok {
		return
	}
	delete(rec, platform)
	if len(rec) == 0 {
		delete(r.records, pkg)
	}
}

// Records returns a copy of every record, sorted by package.
func (r *Registry) Records() []domain.CookRecord {
	r.mu.Lock()
	out := make([]domain.CookRecord, 0, len(r.records))
	for pkg, rec := range r.records {
		out = append(out, domain.CookRecord{Package: pkg, Platforms: maps.Clone(rec)})
	}
	r.mu.Unlock()

	slices.SortFunc(out, func(a, b domain.CookRecord) int {
		return strings.Compare(a.Package.String(), b.Package.String())
	})
	return out
}

// RemovePackage drops the record of pkg and reports whether one existed.
func (r *Registry) RemovePackage(pkg domain.PackageID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.records[pkg]
	delete(r.records, pkg)
	return ok
}

// Successful returns the packages cooked successfully for platform, sorted.
func (r *Registry) Successful(platform domain.PlatformID) []domain.PackageID {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.PackageID
	for pkg, rec := range r.records {
		if rec[platform] {
			out = append(out, pkg)
		}
	}
	domain.SortPackages(out)
	return out
}

// Failed returns the packages with at least one failed entry, sorted.
func (r *Registry) Failed() []domain.PackageID {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.PackageID
	for pkg, rec := range r.records {
		for _, success := range rec {
			if !success {
				out = append(out, pkg)
				break
			}
		}
	}
	domain.SortPackages(out)
	return out
}

// HasFailures reports whether any entry is a failure.
func (r *Registry) HasFailures() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		for _, success := range rec {
			if !success {
				return true
			}
		}
	}
	return false
}

// Len returns the number of packages with a record.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Clear drops every record. Pending watchers stay registered.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.records)
}

// Watch returns a channel that receives the success flag of the next terminal
// entry for (pkg, platform). If an entry already exists it is delivered at once.
// The channel is buffered and receives exactly one value. The returned stop
// func unregisters a watcher that is no longer waiting.
func (r *Registry) Watch(pkg domain.PackageID, platform domain.PlatformID) (<-chan bool, func()) {
	ch := make(chan bool, 1)

	r.mu.Lock()
	defer r.mu.Unlock()

	if success, ok := r.records[pkg][platform]; ok {
		ch <- success
		return ch, func() {}
	}
	key := watchKey{pkg: pkg, platform: platform}
	r.watchers[key] = append(r.watchers[key], ch)
	return ch, func() { r.unwatch(key, ch) }
}

func (r *Registry) unwatch(key watchKey, ch chan bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rest := slices.DeleteFunc(r.watchers[key], func(c chan bool) bool { return c == ch })
	if len(rest) == 0 {
		delete(r.watchers, key)
		return
	}
	r.watchers[key] = rest
}

// Watched reports whether someone waits for the result of (pkg, platform).
func (r *Registry) Watched(pkg domain.PackageID, platform domain.PlatformID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.watchers[watchKey{pkg: pkg, platform: platform}]) > 0
}
