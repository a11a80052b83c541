// Package memory decides when the scheduler has to pause for a garbage collection.
package memory

import (
	"sync"
	"time"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
)

// Collection reasons reported by Evaluate.
const (
	ReasonMaxMemory     = "Exceeded Max Memory"
	ReasonPackagesPerGC = "Exceeded packages per GC"
	ReasonFullGCAsset   = "RequiresGC"
	ReasonIdle          = "Idle"
)

// Monitor is the Normal -> GCPending -> GCRequired state machine.
// It is advisory only and owns no scheduler data.
type Monitor struct {
	mu       sync.Mutex
	settings domain.MemorySettings
	probe    ports.MemoryProbe
	fullGC   map[string]struct{}

	packagesSinceGC int
	touched         map[string]struct{}
	lastGC          time.Time
}

// New creates a monitor. probe may be nil, which disables the memory ceiling.
func New(settings domain.MemorySettings, probe ports.MemoryProbe) *Monitor {
	fullGC := make(map[string]struct{}, len(settings.FullGCAssetTags))
	for _, tag := range settings.FullGCAssetTags {
		fullGC[tag] = struct{}{}
	}
	return &Monitor{
		settings: settings,
		probe:    probe,
		fullGC:   fullGC,
		touched:  make(map[string]struct{}),
		lastGC:   time.Now(),
	}
}

// NoteLoaded records the class tags of newly loaded packages.
// Only tags from the configured full-GC list are remembered.
func (m *Monitor) NoteLoaded(classTags []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, tag := range classTags {
		if _, ok := m.fullGC[tag]; ok {
			m.touched[tag] = struct{}{}
		}
	}
}

// NotePackageSaved counts one saved package.
func (m *Monitor) NotePackageSaved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.packagesSinceGC++
}

// PackagesSinceGC returns the number of packages saved since the last collection.
func (m *Monitor) PackagesSinceGC() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.packagesSinceGC
}

// Evaluate returns the current state and the reason for a collection.
func (m *Monitor) Evaluate(idle bool) (domain.MemoryState, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.settings
	if s.MaxMemoryAllowance > 0 && m.probe != nil && m.probe.Usage() > s.MaxMemoryAllowance {
		return domain.MemoryGCRequired, ReasonMaxMemory
	}
	if s.PackagesPerGC > 0 && m.packagesSinceGC >= s.PackagesPerGC {
		return domain.MemoryGCPending, ReasonPackagesPerGC
	}
	if len(m.touched) > 0 {
		return domain.MemoryGCPending, ReasonFullGCAsset
	}
	if idle && s.IdleTimeToGC > 0 && m.packagesSinceGC > 0 && time.Since(m.lastGC) >= s.IdleTimeToGC {
		return domain.MemoryGCPending, ReasonIdle
	}
	return domain.MemoryNormal, ""
}

// Reset clears the counters after a collection.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.packagesSinceGC = 0
	clear(m.touched)
	m.lastGC = time.Now()
}
