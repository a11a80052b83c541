// Package manifest persists per-platform cook manifests, either as one JSON
// file per manifest key or in a SQLite database.
package manifest

import (
	"context"
	_ "crypto/sha256" // registers the digest algorithm
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store is a manifest store that holds resources until closed.
type Store interface {
	ports.ManifestStore
	io.Closer
}

var _ Store = (*JSONStore)(nil)

// JSONStore implements ports.ManifestStore using a file-per-key strategy.
type JSONStore struct {
	dir string
}

// NewJSONStore creates a store writing into dir.
func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: filepath.Clean(dir)}
}

// Open opens the manifest store selected by backend for the project at root.
func Open(ctx context.Context, backend, root string) (Store, error) {
	switch backend {
	case "", domain.ManifestBackendJSON:
		return NewJSONStore(domain.DefaultManifestsPath(root)), nil
	case domain.ManifestBackendSQLite:
		return NewSQLiteStore(ctx, domain.DefaultManifestsDBPath(root))
	default:
		return nil, zerr.With(domain.ErrInvalidConfig, "manifest_backend", backend)
	}
}

// Get retrieves the manifest stored under key.
func (s *JSONStore) Get(_ context.Context, key domain.ManifestKey) (*domain.Manifest, error) {
	filename := s.filename(key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestUnmarshalFailed.Error())
	}
	return &m, nil
}

// Put stores the manifest under its own key.
func (s *JSONStore) Put(_ context.Context, m *domain.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}

	filename := s.filename(m.Key())
	tmp := filename + ".tmp"
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	if err := os.Rename(tmp, filename); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	return nil
}

// Delete removes the manifest stored under key. A missing manifest is not an error.
func (s *JSONStore) Delete(_ context.Context, key domain.ManifestKey) error {
	if err := os.Remove(s.filename(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	return nil
}

// Close implements io.Closer.
func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) filename(key domain.ManifestKey) string {
	return filepath.Join(s.dir, digest.FromString(key.String()).Encoded()+".json")
}
