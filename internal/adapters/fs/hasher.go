package fs

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageHasher = (*Hasher)(nil)

// SourceLocator maps a package to its source file.
type SourceLocator interface {
	SourcePath(pkg domain.PackageID) (string, bool)
}

// fileStamp identifies one version of a file on disk.
type fileStamp struct {
	size    int64
	modTime int64
}

type cachedHash struct {
	stamp fileStamp
	sum   uint64
}

// Hasher computes the staleness hash of a package: the settings version, the
// package source and the sources of its transitive dependencies.
type Hasher struct {
	locator  SourceLocator
	resolver ports.DependencyResolver

	mu    sync.Mutex
	files map[string]cachedHash
}

// NewHasher creates a new Hasher.
func NewHasher(locator SourceLocator, resolver ports.DependencyResolver) *Hasher {
	return &Hasher{
		locator:  locator,
		resolver: resolver,
		files:    make(map[string]cachedHash),
	}
}

// Hash implements ports.PackageHasher.
func (h *Hasher) Hash(ctx context.Context, pkg domain.PackageID, settingsVersion string) (string, error) {
	src, ok := h.locator.SourcePath(pkg)
	if !ok {
		return "", zerr.With(errors.Join(domain.ErrHashFailed, domain.ErrPackageNotFound), "package", pkg.String())
	}

	deps, err := h.resolver.GetDependenciesOf(ctx, pkg)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrHashFailed, err), "package", pkg.String())
	}
	domain.SortPackages(deps)

	digest := xxhash.New()
	_, _ = digest.WriteString(settingsVersion)
	_, _ = digest.Write([]byte{0})

	if err := h.hashPackage(digest, pkg, src); err != nil {
		return "", err
	}

	for _, dep := range deps {
		path, ok := h.locator.SourcePath(dep)
		if !ok {
			// A dangling import still changes the hash when it appears.
			_, _ = digest.WriteString(dep.String())
			_, _ = digest.Write([]byte{0, 0})
			continue
		}
		if err := h.hashPackage(digest, dep, path); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (h *Hasher) hashPackage(w io.Writer, pkg domain.PackageID, path string) error {
	_, _ = w.Write([]byte(pkg.String()))
	_, _ = w.Write([]byte{0})

	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrHashFailed, err), "package", pkg.String())
	}
	if err := binary.Write(w, binary.LittleEndian, sum); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}

// ComputeFileHash computes the XXHash of a file's content. Results are cached
// until the size or modification time of the file changes.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	stamp := fileStamp{size: info.Size(), modTime: info.ModTime().UnixNano()}

	h.mu.Lock()
	cached, ok := h.files[path]
	h.mu.Unlock()
	if ok && cached.stamp == stamp {
		return cached.sum, nil
	}

	f, err := os.Open(path) //nolint:gosec // Path comes from the content index
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	sum := digest.Sum64()

	h.mu.Lock()
	h.files[path] = cachedHash{stamp: stamp, sum: sum}
	h.mu.Unlock()
	return sum, nil
}

// Invalidate drops the cached file hashes of paths.
func (h *Hasher) Invalidate(paths []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range paths {
		delete(h.files, p)
	}
}
