package domain

import (
	"path"
	"slices"
	"strings"
	"unique"
)

// packageExtensions are stripped when standardizing a package path.
var packageExtensions = []string{".uasset", ".umap"}

// PackageID is the standardized, case-insensitive identity of a content package.
// It wraps a unique.Handle[string] so identities are cheap to compare and to use as map keys.
type PackageID struct {
	h unique.Handle[string]
}

// NewPackageID standardizes s and interns it.
// Backslashes become slashes, a trailing slash and a known package extension are
// removed, a leading slash is enforced and the result is lower-cased.
func NewPackageID(s string) PackageID {
	return PackageID{h: unique.Make(StandardizePackagePath(s))}
}

// NewPackageIDs standardizes every entry of s.
func NewPackageIDs(s []string) []PackageID {
	res := make([]PackageID, len(s))
	for i, v := range s {
		res[i] = NewPackageID(v)
	}
	return res
}

// StandardizePackagePath returns the standardized form of a package path.
func StandardizePackagePath(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, `\`, "/"))
	s = strings.TrimRight(s, "/")
	if s == "" {
		return ""
	}
	ext := strings.ToLower(path.Ext(s))
	if slices.Contains(packageExtensions, ext) {
		s = s[:len(s)-len(ext)]
	}
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	return path.Clean(strings.ToLower(s))
}

// String returns the standardized path.
func (id PackageID) String() string {
	if id.h == (unique.Handle[string]{}) {
		return ""
	}
	return id.h.Value()
}

// IsZero reports whether the identity was never set.
func (id PackageID) IsZero() bool {
	return id.String() == ""
}

// MarshalText implements encoding.TextMarshaler.
func (id PackageID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *PackageID) UnmarshalText(text []byte) error {
	*id = NewPackageID(string(text))
	return nil
}

// PlatformID names one cook target. Platform names are compared verbatim.
type PlatformID struct {
	h unique.Handle[string]
}

// NewPlatformID interns a platform name.
func NewPlatformID(s string) PlatformID {
	return PlatformID{h: unique.Make(strings.TrimSpace(s))}
}

// String returns the platform name.
func (p PlatformID) String() string {
	if p.h == (unique.Handle[string]{}) {
		return ""
	}
	return p.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (p PlatformID) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PlatformID) UnmarshalText(text []byte) error {
	*p = NewPlatformID(string(text))
	return nil
}

// SortPackages sorts ids by their standardized path.
func SortPackages(ids []PackageID) {
	slices.SortFunc(ids, func(a, b PackageID) int {
		return strings.Compare(a.String(), b.String())
	})
}
