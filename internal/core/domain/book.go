package domain

// BookOptions configures a cook-by-the-book session.
type BookOptions struct {
	// Platforms overrides the configured default targets.
	Platforms []PlatformID
	Filter    AssetFilter
	// DLCName narrows the session to one DLC and keys its manifests by name.
	DLCName string
	// BasedOnRelease names a release whose manifests seed the session.
	BasedOnRelease string
	// CreateRelease stores a copy of the final manifests under this release name.
	CreateRelease string
	// Iterative keeps artifacts whose staleness hash still matches.
	Iterative bool
	// Children cooks through that many child cookers instead of in process.
	Children  int
	ChildArgs []string
	// MapDependencyGraph persists the dependencies of every cooked map.
	MapDependencyGraph bool
}
