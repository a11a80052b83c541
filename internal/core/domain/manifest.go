package domain

import (
	"time"
)

// ManifestKey identifies one persisted manifest.
// The zero Release and DLC address the live sandbox manifest of a platform.
type ManifestKey struct {
	Platform PlatformID
	Release  string
	DLC      string
}

// String renders the key as a slash separated path, used for storage naming.
func (k ManifestKey) String() string {
	s := k.Platform.String()
	if k.DLC != "" {
		s = "dlc/" + k.DLC + "/" + s
	}
	if k.Release != "" {
		s = "release/" + k.Release + "/" + s
	}
	return s
}

// ManifestEntry records what is known about one cooked package.
type ManifestEntry struct {
	Package  PackageID `json:"package"`
	Hash     string    `json:"hash"`
	Success  bool      `json:"success"`
	CookedAt time.Time `json:"cooked_at"`
}

// Manifest is the persisted per-platform record of cooked packages.
type Manifest struct {
	Platform        PlatformID      `json:"platform"`
	SettingsVersion string          `json:"settings_version"`
	Release         string          `json:"release,omitempty"`
	DLC             string          `json:"dlc,omitempty"`
	Entries         []ManifestEntry `json:"entries"`
}

// Key returns the storage key of the manifest.
func (m *Manifest) Key() ManifestKey {
	return ManifestKey{Platform: m.Platform, Release: m.Release, DLC: m.DLC}
}

// Lookup returns the entry of pkg, if present.
func (m *Manifest) Lookup(pkg PackageID) (ManifestEntry, bool) {
	for _, e := range m.Entries {
		if e.Package == pkg {
			return e, true
		}
	}
	return ManifestEntry{}, false
}

// Packages returns the packages with a successful entry, sorted.
func (m *Manifest) Packages() []PackageID {
	out := make([]PackageID, 0, len(m.Entries))
	for _, e := range m.Entries {
		if e.Success {
			out = append(out, e.Package)
		}
	}
	SortPackages(out)
	return out
}

// DependencyGraph maps each cooked map package to its transitive dependencies.
type DependencyGraph map[string][]string
