package ports

import "context"

//go:generate mockgen -source=memory.go -destination=mocks/mock_memory.go -package=mocks

// GarbageCollector releases memory held by loaded packages.
type GarbageCollector interface {
	// Collect runs a collection pass and reports whether it completed.
	// A false result means the scheduler keeps waiting and asks again next tick.
	Collect(ctx context.Context) bool
}

// MemoryProbe estimates the memory used by the process.
type MemoryProbe interface {
	// Usage returns the estimated number of bytes in use.
	Usage() uint64
}
