package domain

import "strings"

// TickFlags aggregates what happened during one scheduler tick.
type TickFlags uint8

const (
	// TickCookedMap is set when a map package was saved.
	TickCookedMap TickFlags = 1 << iota
	// TickCookedPackage is set when a non-map package was saved.
	TickCookedPackage
	// TickLoadError is set when a package failed to load.
	TickLoadError
	// TickGCRequired is set when the scheduler paused for a garbage collection.
	TickGCRequired
	// TickWaitingOnChildren is set while child cookers are still running.
	TickWaitingOnChildren
)

// Has reports whether every bit of f is set.
func (t TickFlags) Has(f TickFlags) bool {
	return t&f == f
}

// String lists the set flags.
func (t TickFlags) String() string {
	names := []struct {
		flag TickFlags
		name string
	}{
		{TickCookedMap, "cooked_map"},
		{TickCookedPackage, "cooked_package"},
		{TickLoadError, "load_error"},
		{TickGCRequired, "gc_required"},
		{TickWaitingOnChildren, "waiting_on_children"},
	}
	var parts []string
	for _, n := range names {
		if t.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "idle"
	}
	return strings.Join(parts, "|")
}

// TickResult is returned by every scheduler tick.
type TickResult struct {
	Flags TickFlags
	// Saved is the number of packages saved during the tick.
	Saved int
	// GCReason explains the pause when TickGCRequired is set.
	GCReason string
}

// SchedulerState is the coarse state of the scheduler control loop.
type SchedulerState uint8

const (
	// StateIdle means the queue is empty.
	StateIdle SchedulerState = iota
	// StateCooking means a request is being processed.
	StateCooking
	// StateGCPause means dequeuing is suspended until a collection completes.
	StateGCPause
)

// String returns the state name.
func (s SchedulerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCooking:
		return "cooking"
	case StateGCPause:
		return "gc_pause"
	default:
		return "unknown"
	}
}

// BulkPhase is the phase of a cook-by-the-book session.
type BulkPhase uint8

const (
	// BulkNone means no session is active.
	BulkNone BulkPhase = iota
	// BulkStarting covers sandbox preparation and package collection.
	BulkStarting
	// BulkRunning covers cooking, in process or through child cookers.
	BulkRunning
	// BulkFinishing covers manifest persistence and reporting.
	BulkFinishing
)

// String returns the phase name.
func (p BulkPhase) String() string {
	switch p {
	case BulkNone:
		return "none"
	case BulkStarting:
		return "starting"
	case BulkRunning:
		return "running"
	case BulkFinishing:
		return "finishing"
	default:
		return "unknown"
	}
}

// MemoryState is the state of the memory pressure monitor.
type MemoryState uint8

const (
	// MemoryNormal means no collection is needed.
	MemoryNormal MemoryState = iota
	// MemoryGCPending means a collection should run at the next tick boundary.
	MemoryGCPending
	// MemoryGCRequired means cooking must pause until a collection runs.
	MemoryGCRequired
)

// String returns the state name.
func (m MemoryState) String() string {
	switch m {
	case MemoryNormal:
		return "normal"
	case MemoryGCPending:
		return "gc_pending"
	case MemoryGCRequired:
		return "gc_required"
	default:
		return "unknown"
	}
}
