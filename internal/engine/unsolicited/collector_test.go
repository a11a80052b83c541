package unsolicited_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/engine/unsolicited"
)

func TestCollector(t *testing.T) {
	win := domain.NewPlatformID("Win64")
	psx := domain.NewPlatformID("PS_X")
	bar := domain.NewPackageID("/Game/Bar")
	baz := domain.NewPackageID("/Game/Baz")

	c := unsolicited.New()
	c.Add(win, bar)
	c.Add(win, baz)
	c.Add(win, bar)
	c.Add(psx, baz)

	assert.Equal(t, []domain.PackageID{bar, baz}, c.Take(win))
	assert.Empty(t, c.Take(win), "take removes the entries")

	c.Add(win, bar)
	assert.Equal(t, []domain.PackageID{bar}, c.Take(win), "a taken package can be collected again")

	c.ClearPlatform(psx)
	assert.Empty(t, c.Take(psx))

	c.Add(win, bar)
	c.Add(psx, bar)
	c.Clear()
	assert.Empty(t, c.Take(win))
	assert.Empty(t, c.Take(psx))
}
