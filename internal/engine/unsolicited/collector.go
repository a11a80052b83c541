// Package unsolicited collects packages cooked as a side effect of another cook.
package unsolicited

import (
	"sync"

	"go.trai.ch/cook/internal/core/domain"
)

// Collector holds, per platform, the packages cooked without being requested.
type Collector struct {
	mu       sync.Mutex
	packages map[domain.PlatformID][]domain.PackageID
	seen     map[domain.PlatformID]map[domain.PackageID]struct{}
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{
		packages: make(map[domain.PlatformID][]domain.PackageID),
		seen:     make(map[domain.PlatformID]map[domain.PackageID]struct{}),
	}
}

// Add appends pkg to the list of platform unless it is already listed.
func (c *Collector) Add(platform domain.PlatformID, pkg domain.PackageID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen, ok := c.seen[platform]
	if !ok {
		seen = make(map[domain.PackageID]struct{})
		c.seen[platform] = seen
	}
	if _, dup := seen[pkg]; dup {
		return
	}
	seen[pkg] = struct{}{}
	c.packages[platform] = append(c.packages[platform], pkg)
}

// Take returns the packages collected for platform in insertion order and forgets them.
func (c *Collector) Take(platform domain.PlatformID) []domain.PackageID {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.packages[platform]
	delete(c.packages, platform)
	delete(c.seen, platform)
	return out
}

// ClearPlatform forgets the packages collected for platform.
func (c *Collector) ClearPlatform(platform domain.PlatformID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.packages, platform)
	delete(c.seen, platform)
}

// Clear forgets everything.
func (c *Collector) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.packages)
	clear(c.seen)
}
