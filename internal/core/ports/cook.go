package ports

import (
	"context"

	"go.trai.ch/cook/internal/core/domain"
)

//go:generate mockgen -source=cook.go -destination=mocks/mock_cook.go -package=mocks

// CookService is the scheduler surface exposed to network clients.
type CookService interface {
	// HandleFileRequest cooks path for platform and blocks until the cook terminates.
	HandleFileRequest(ctx context.Context, path string, platform domain.PlatformID) (*domain.FileResponse, error)
	// StartCookByTheBook starts a book session and returns its handle.
	StartCookByTheBook(ctx context.Context, opts domain.BookOptions) (string, error)
	// IsRunning reports whether id names the running session.
	IsRunning(id string) bool
	// Cancel asks the session id to stop.
	Cancel(id string) error
	// Status returns the current scheduler state.
	Status() domain.Status
	// CookedManifestFor returns the packages cooked successfully for platform.
	CookedManifestFor(platform domain.PlatformID) []domain.PackageID
	// MarkPackageDirty forgets the cooked state of pkgs and their dependents.
	MarkPackageDirty(ctx context.Context, pkgs ...domain.PackageID)
}
