package domain

// LoadedPackage is the in-memory form of a content package handed to serializers.
type LoadedPackage struct {
	ID PackageID
	// Class is the asset class tag of the package's primary object (e.g. "World").
	Class string
	// IsMap marks packages that hold a playable map.
	IsMap bool
	// Imports lists the packages this package references directly.
	Imports []PackageID
	// Payload is the opaque package body.
	Payload []byte
}

// LoadResult is returned by a package loader.
type LoadResult struct {
	// Root is the package that was asked for. Its ID may differ from the
	// requested one when the request was redirected.
	Root *LoadedPackage
	// Loaded lists packages that became loaded as a side effect of loading Root.
	Loaded []*LoadedPackage
}

// ClassTags returns the distinct class tags of every package in the result.
func (r LoadResult) ClassTags() []string {
	seen := make(map[string]struct{}, len(r.Loaded)+1)
	var tags []string
	add := func(p *LoadedPackage) {
		if p == nil || p.Class == "" {
			return
		}
		if _, ok := seen[p.Class]; ok {
			return
		}
		seen[p.Class] = struct{}{}
		tags = append(tags, p.Class)
	}
	add(r.Root)
	for _, p := range r.Loaded {
		add(p)
	}
	return tags
}
