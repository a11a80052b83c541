package ports

import (
	"context"

	"go.trai.ch/cook/internal/core/domain"
)

// ManifestStore persists per-platform cook manifests.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestStore interface {
	// Get returns the manifest stored under key.
	// Returns nil, nil if not found.
	Get(ctx context.Context, key domain.ManifestKey) (*domain.Manifest, error)
	// Put stores the manifest under its own key, replacing any previous one.
	Put(ctx context.Context, manifest *domain.Manifest) error
	// Delete removes the manifest stored under key.
	Delete(ctx context.Context, key domain.ManifestKey) error
}
