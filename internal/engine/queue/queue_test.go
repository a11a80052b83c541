package queue_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/engine/queue"
)

func TestQueue_MergesDuplicateRequests(t *testing.T) {
	q := queue.New()
	mapA := domain.NewPackageID("/Game/MapA")
	mapB := domain.NewPackageID("/Game/MapB")

	q.Enqueue(mapA, domain.ParsePlatformSet("PS_X"), false)
	q.Enqueue(mapB, domain.ParsePlatformSet("PS_X"), false)
	q.Enqueue(mapA, domain.ParsePlatformSet("PS_Y"), false)

	require.Equal(t, 2, q.Len())

	first, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, mapA, first.Package)
	assert.Equal(t, []string{"PS_X", "PS_Y"}, first.Platforms.Names())

	second, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, mapB, second.Package)
	assert.Equal(t, []string{"PS_X"}, second.Platforms.Names())

	_, ok = q.Dequeue()
	assert.False(t, ok)
	assert.False(t, q.HasItems())
}

func TestQueue_FrontPromotesExistingEntry(t *testing.T) {
	q := queue.New()
	a := domain.NewPackageID("/Game/A")
	b := domain.NewPackageID("/Game/B")
	c := domain.NewPackageID("/Game/C")
	win := domain.ParsePlatformSet("Win64")

	q.Enqueue(a, win, false)
	q.Enqueue(b, win, false)
	q.Enqueue(c, win, false)
	q.Enqueue(c, domain.ParsePlatformSet("Linux"), true)

	got := q.Snapshot()
	require.Len(t, got, 3)
	assert.Equal(t, c, got[0].Package)
	assert.Equal(t, []string{"Linux", "Win64"}, got[0].Platforms.Names())
	assert.Equal(t, a, got[1].Package)
	assert.Equal(t, b, got[2].Package)
}

func TestQueue_Exists(t *testing.T) {
	q := queue.New()
	a := domain.NewPackageID("/Game/A")
	q.Enqueue(a, domain.ParsePlatformSet("Win64", "Linux"), false)

	assert.True(t, q.Exists(a, domain.ParsePlatformSet("Win64")))
	assert.True(t, q.Exists(a, domain.ParsePlatformSet("Win64", "Linux")))
	assert.False(t, q.Exists(a, domain.ParsePlatformSet("Win64", "PS_X")))
	assert.False(t, q.Exists(domain.NewPackageID("/Game/B"), domain.ParsePlatformSet("Win64")))
}

func TestQueue_IgnoresVoidRequests(t *testing.T) {
	q := queue.New()
	q.Enqueue(domain.NewPackageID("/Game/A"), domain.NewPlatformSet(), false)
	q.Enqueue(domain.PackageID{}, domain.ParsePlatformSet("Win64"), false)

	assert.Equal(t, 0, q.Len())
}

func TestQueue_EnqueueDoesNotAliasCallerSet(t *testing.T) {
	q := queue.New()
	a := domain.NewPackageID("/Game/A")
	platforms := domain.ParsePlatformSet("Win64")

	q.Enqueue(a, platforms, false)
	platforms.Add(domain.NewPlatformID("Linux"))

	req, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, []string{"Win64"}, req.Platforms.Names())
}

func TestQueue_Drain(t *testing.T) {
	q := queue.New()
	win := domain.ParsePlatformSet("Win64")
	q.Enqueue(domain.NewPackageID("/Game/A"), win, false)
	q.Enqueue(domain.NewPackageID("/Game/B"), win, false)

	drained := q.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, "/game/a", drained[0].Package.String())
	assert.Equal(t, "/game/b", drained[1].Package.String())
	assert.Equal(t, 0, q.Len())

	q.Enqueue(domain.NewPackageID("/Game/A"), win, false)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_ConcurrentEnqueueDequeue(t *testing.T) {
	q := queue.New()
	win := domain.ParsePlatformSet("Win64")

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				// Every producer enqueues the same packages, so duplicates collapse.
				q.Enqueue(domain.NewPackageID(fmt.Sprintf("/Game/P%d", i)), win, p%2 == 0)
			}
		}()
	}
	wg.Wait()

	seen := make(map[domain.PackageID]bool)
	for {
		req, ok := q.Dequeue()
		if !ok {
			break
		}
		require.False(t, seen[req.Package], "package %s dequeued twice", req.Package)
		seen[req.Package] = true
	}
	assert.Len(t, seen, perProducer)
}
