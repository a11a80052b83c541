// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cook/internal/core/domain"
)

//go:generate mockgen -source=content.go -destination=mocks/mock_content.go -package=mocks

// PackageLoader turns a package identity into its in-memory form.
type PackageLoader interface {
	// Load loads pkg and everything it imports that is not loaded yet.
	// The result lists the side-effect loads separately from the root.
	Load(ctx context.Context, pkg domain.PackageID) (domain.LoadResult, error)
}

// PlatformSerializer writes a loaded package as a platform-specific artifact.
type PlatformSerializer interface {
	// Save writes pkg for platform to outputPath.
	Save(
		ctx context.Context,
		pkg *domain.LoadedPackage,
		platform domain.PlatformID,
		outputPath string,
	) (domain.SaveStatus, error)
}

// DependencyResolver answers package dependency queries.
// Implementations must terminate on cyclic content graphs.
type DependencyResolver interface {
	// GetDependents returns roots plus every package that transitively depends on a root.
	GetDependents(ctx context.Context, roots []domain.PackageID) ([]domain.PackageID, error)
	// GetDependenciesOf returns the transitive imports of pkg, excluding pkg.
	GetDependenciesOf(ctx context.Context, pkg domain.PackageID) ([]domain.PackageID, error)
}

// AssetEnumerator lists the packages selected by a book session filter.
type AssetEnumerator interface {
	Enumerate(ctx context.Context, filter domain.AssetFilter) ([]domain.PackageID, error)
}

// PackageHasher computes the staleness basis of a package.
type PackageHasher interface {
	// Hash combines the package source, its transitive dependencies and the settings version.
	Hash(ctx context.Context, pkg domain.PackageID, settingsVersion string) (string, error)
}
