// Package queue implements the de-duplicating FIFO of pending cook requests.
package queue

import (
	"container/list"
	"sync"

	"go.trai.ch/cook/internal/core/domain"
)

// Queue is a thread-safe FIFO holding at most one entry per package.
// Enqueuing a package that is already queued unions the platform sets.
type Queue struct {
	mu      sync.Mutex
	order   *list.List
	entries map[domain.PackageID]*list.Element
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{
		order:   list.New(),
		entries: make(map[domain.PackageID]*list.Element),
	}
}

// Enqueue adds pkg for the given platforms, merging into an existing entry.
// With front set, the entry moves to the head of the queue.
// Requests with an empty platform set are void and ignored.
func (q *Queue) Enqueue(pkg domain.PackageID, platforms domain.PlatformSet, front bool) {
	if pkg.IsZero() || platforms.Len() == 0 {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if el, ok := q.entries[pkg]; ok {
		req := el.Value.(*domain.FilePlatformRequest)
		req.Platforms = req.Platforms.Union(platforms)
		if front {
			q.order.MoveToFront(el)
		}
		return
	}

	req := &domain.FilePlatformRequest{Package: pkg, Platforms: platforms.Clone()}
	if front {
		q.entries[pkg] = q.order.PushFront(req)
	} else {
		q.entries[pkg] = q.order.PushBack(req)
	}
}

// EnqueueRequest is Enqueue for a request value.
func (q *Queue) EnqueueRequest(req domain.FilePlatformRequest, front bool) {
	q.Enqueue(req.Package, req.Platforms, front)
}

// Dequeue removes and returns the head entry.
func (q *Queue) Dequeue() (domain.FilePlatformRequest, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	el := q.order.Front()
	if el == nil {
		return domain.FilePlatformRequest{}, false
	}
	req := q.order.Remove(el).(*domain.FilePlatformRequest)
	delete(q.entries, req.Package)
	return *req, true
}

// Exists reports whether pkg is queued for a superset of platforms.
func (q *Queue) Exists(pkg domain.PackageID, platforms domain.PlatformSet) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	el, ok := q.entries[pkg]
	if !ok {
		return false
	}
	return el.Value.(*domain.FilePlatformRequest).Platforms.SupersetOf(platforms)
}

// Len returns the number of queued packages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.order.Len()
}

// HasItems reports whether anything is queued.
func (q *Queue) HasItems() bool {
	return q.Len() > 0
}

// Drain removes and returns every entry in queue order.
func (q *Queue) Drain() []domain.FilePlatformRequest {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]domain.FilePlatformRequest, 0, q.order.Len())
	for el := q.order.Front(); el != nil; el = el.Next() {
		out = append(out, *el.Value.(*domain.FilePlatformRequest))
	}
	q.order.Init()
	clear(q.entries)
	return out
}

// Snapshot returns a copy of the queued entries in order without removing them.
func (q *Queue) Snapshot() []domain.FilePlatformRequest {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]domain.FilePlatformRequest, 0, q.order.Len())
	for el := q.order.Front(); el != nil; el = el.Next() {
		req := el.Value.(*domain.FilePlatformRequest)
		out = append(out, domain.FilePlatformRequest{Package: req.Package, Platforms: req.Platforms.Clone()})
	}
	return out
}
