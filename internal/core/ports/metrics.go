package ports

// Metrics records scheduler counters.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// PackageCooked counts one terminal (package, platform) result.
	PackageCooked(platform, status string)
	// QueueDepth reports the number of pending requests.
	QueueDepth(n int)
	// GarbageCollected counts one collection pass.
	GarbageCollected(reason string)
	// ChildExited counts one child cooker termination.
	ChildExited(code int)
}
