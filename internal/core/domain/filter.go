package domain

// AssetFilter selects the packages of a book session.
type AssetFilter struct {
	// Maps names map packages to cook. Empty with AllMaps unset means no maps.
	Maps []string
	// AllMaps selects every map package under the content root.
	AllMaps bool
	// Directories selects every package under the given package path prefixes.
	Directories []string
	// Packages names explicit packages.
	Packages []string
	// DLC restricts enumeration to the /<DLC>/ content root.
	DLC string
}

// IsEmpty reports whether the filter selects nothing.
func (f AssetFilter) IsEmpty() bool {
	return !f.AllMaps && len(f.Maps) == 0 && len(f.Directories) == 0 && len(f.Packages) == 0
}

// Progress is a point-in-time view of a book session for renderers.
type Progress struct {
	Session string
	Phase   BulkPhase
	State   SchedulerState
	Total   int
	Pending int
	Cooked  int
	Failed  int
	// Children is the number of child cookers still running.
	Children int
}
