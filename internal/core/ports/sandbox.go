package ports

import "go.trai.ch/cook/internal/core/domain"

// Sandbox owns the on-disk layout of cooked artifacts.
//
//go:generate mockgen -source=sandbox.go -destination=mocks/mock_sandbox.go -package=mocks
type Sandbox interface {
	// Prepare creates the output directory of platform.
	Prepare(platform domain.PlatformID) error
	// Wipe removes every artifact of platform.
	Wipe(platform domain.PlatformID) error
	// OutputPath returns where the artifact of pkg for platform lives.
	OutputPath(pkg domain.PackageID, platform domain.PlatformID) string
	// Exists reports whether an artifact is present.
	Exists(pkg domain.PackageID, platform domain.PlatformID) bool
	// Read returns the artifact bytes.
	Read(pkg domain.PackageID, platform domain.PlatformID) ([]byte, error)
	// Remove deletes one artifact. Removing a missing artifact is not an error.
	Remove(pkg domain.PackageID, platform domain.PlatformID) error
	// WriteFile writes an auxiliary file into the platform directory.
	WriteFile(platform domain.PlatformID, name string, data []byte) error
}
