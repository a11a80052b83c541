package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/engine/registry"
)

var (
	win = domain.NewPlatformID("Win64")
	psx = domain.NewPlatformID("PS_X")
)

func TestRegistry_PartialFailure(t *testing.T) {
	r := registry.New()
	p := domain.NewPackageID("/Game/P")

	r.MarkCooked(p, psx, false)
	r.MarkCooked(p, win, true)

	rec, ok := r.Record(p)
	require.True(t, ok)
	assert.Equal(t, map[domain.PlatformID]bool{psx: false, win: true}, rec.Platforms)

	both := domain.NewPlatformSet(win, psx)
	assert.False(t, r.IsCooked(p, both, registry.SuccessfulOnly))
	assert.True(t, r.IsCooked(p, both, registry.AnyAttempt))
	assert.True(t, r.IsCooked(p, domain.NewPlatformSet(win), registry.SuccessfulOnly))

	assert.Equal(t, []string{"Win64"}, r.PlatformsCookedFor(p).Names())
	assert.Equal(t, []string{"PS_X", "Win64"}, r.PlatformsAttemptedFor(p).Names())
	assert.True(t, r.HasFailures())
	assert.Equal(t, []domain.PackageID{p}, r.Failed())
}

func TestRegistry_MarkCookedOverwrites(t *testing.T) {
	r := registry.New()
	p := domain.NewPackageID("/Game/P")

	r.MarkCooked(p, win, false)
	r.MarkCooked(p, win, true)

	assert.True(t, r.IsCooked(p, domain.NewPlatformSet(win), registry.SuccessfulOnly))
	assert.False(t, r.HasFailures())
}

func TestRegistry_IsCookedRequiresEntries(t *testing.T) {
	r := registry.New()
	p := domain.NewPackageID("/Game/P")

	assert.False(t, r.IsCooked(p, domain.NewPlatformSet(win), registry.AnyAttempt))
	r.MarkCooked(p, win, true)
	assert.False(t, r.IsCooked(p, domain.NewPlatformSet(), registry.AnyAttempt))
	assert.False(t, r.IsCooked(p, domain.NewPlatformSet(win, psx), registry.AnyAttempt))
}

func TestRegistry_RemovePlatform(t *testing.T) {
	r := registry.New()
	a := domain.NewPackageID("/Game/A")
	b := domain.NewPackageID("/Game/B")

	r.MarkCooked(a, win, true)
	r.MarkCooked(a, psx, true)
	r.MarkCooked(b, win, true)

	r.RemovePlatform(win)

	assert.Empty(t, r.Successful(win))
	assert.Equal(t, []domain.PackageID{a}, r.Successful(psx))
	_, ok := r.Record(b)
	assert.False(t, ok, "records left without platforms are dropped")
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RemovePackage(t *testing.T) {
	r := registry.New()
	a := domain.NewPackageID("/Game/A")
	r.MarkCooked(a, win, true)

	assert.True(t, r.RemovePackage(a))
	assert.False(t, r.RemovePackage(a))
	assert.False(t, r.IsCooked(a, domain.NewPlatformSet(win), registry.AnyAttempt))
}

func TestRegistry_SuccessfulIsSorted(t *testing.T) {
	r := registry.New()
	for _, name := range []string{"/Game/C", "/Game/A", "/Game/B"} {
		r.MarkCooked(domain.NewPackageID(name), win, true)
	}
	r.MarkCooked(domain.NewPackageID("/Game/D"), win, false)

	got := r.Successful(win)
	require.Len(t, got, 3)
	assert.Equal(t, "/game/a", got[0].String())
	assert.Equal(t, "/game/b", got[1].String())
	assert.Equal(t, "/game/c", got[2].String())
}

func TestRegistry_Watch(t *testing.T) {
	t.Run("delivers existing entry", func(t *testing.T) {
		r := registry.New()
		p := domain.NewPackageID("/Game/P")
		r.MarkCooked(p, win, false)

		ch, stop := r.Watch(p, win)
		defer stop()
		assert.False(t, <-ch)
		assert.False(t, r.Watched(p, win))
	})

	t.Run("delivers future entry to every watcher", func(t *testing.T) {
		r := registry.New()
		p := domain.NewPackageID("/Game/P")
		first, _ := r.Watch(p, win)
		second, _ := r.Watch(p, win)
		other, _ := r.Watch(p, psx)

		r.MarkCooked(p, win, true)

		assert.True(t, <-first)
		assert.True(t, <-second)
		select {
		case <-other:
			t.Fatal("watcher for another platform must not fire")
		default:
		}
	})

	t.Run("clear keeps watchers", func(t *testing.T) {
		r := registry.New()
		p := domain.NewPackageID("/Game/P")
		ch, _ := r.Watch(p, win)

		r.Clear()
		r.MarkCooked(p, win, true)

		assert.True(t, <-ch)
	})

	t.Run("stop unregisters only its own watcher", func(t *testing.T) {
		r := registry.New()
		p := domain.NewPackageID("/Game/P")
		abandoned, stopAbandoned := r.Watch(p, win)
		kept, _ := r.Watch(p, win)

		stopAbandoned()
		assert.True(t, r.Watched(p, win))

		r.MarkCooked(p, win, true)
		assert.True(t, <-kept)
		select {
		case <-abandoned:
			t.Fatal("stopped watcher must not receive a result")
		default:
		}
		assert.False(t, r.Watched(p, win))
	})

	t.Run("stop of the last watcher forgets the key", func(t *testing.T) {
		r := registry.New()
		p := domain.NewPackageID("/Game/P")
		_, stop := r.Watch(p, win)
		require.True(t, r.Watched(p, win))

		stop()
		stop()
		assert.False(t, r.Watched(p, win))
	})
}

func TestRegistry_UnmarkAndRecords(t *testing.T) {
	r := registry.New()
	a := domain.NewPackageID("/Game/A")
	b := domain.NewPackageID("/Game/B")

	r.MarkCooked(b, win, true)
	r.MarkCooked(a, win, false)
	r.MarkCooked(a, psx, true)

	records := r.Records()
	require.Len(t, records, 2)
	assert.Equal(t, a, records[0].Package)
	assert.Equal(t, b, records[1].Package)

	r.Unmark(a, win)
	assert.False(t, r.IsCooked(a, domain.NewPlatformSet(win), registry.AnyAttempt))
	assert.True(t, r.IsCooked(a, domain.NewPlatformSet(psx), registry.SuccessfulOnly))

	r.Unmark(b, win)
	_, ok := r.Record(b)
	assert.False(t, ok)
}
