// Package sandbox owns the cooked output directory: one subdirectory per
// platform mirroring the package paths, plus the serializer writing into it.
package sandbox

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/zerr"
)

// ArtifactExt is the extension of cooked artifacts.
const ArtifactExt = ".cooked"

var _ ports.Sandbox = (*Sandbox)(nil)

// Sandbox implements ports.Sandbox on the local file system.
type Sandbox struct {
	dir string
}

// New creates a sandbox rooted at dir.
func New(dir string) *Sandbox {
	return &Sandbox{dir: filepath.Clean(dir)}
}

// Dir returns the sandbox root.
func (s *Sandbox) Dir() string {
	return s.dir
}

// PlatformDir returns the output directory of platform.
func (s *Sandbox) PlatformDir(platform domain.PlatformID) string {
	return filepath.Join(s.dir, platform.String())
}

// Prepare creates the output directory of platform.
func (s *Sandbox) Prepare(platform domain.PlatformID) error {
	if err := os.MkdirAll(s.PlatformDir(platform), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create platform directory"), "platform", platform.String())
	}
	return nil
}

// Wipe removes every artifact of platform.
func (s *Sandbox) Wipe(platform domain.PlatformID) error {
	if platform.String() == "" {
		return zerr.New("refusing to wipe the sandbox root")
	}
	if err := os.RemoveAll(s.PlatformDir(platform)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove platform directory"), "platform", platform.String())
	}
	return nil
}

// OutputPath returns where the artifact of pkg for platform lives.
func (s *Sandbox) OutputPath(pkg domain.PackageID, platform domain.PlatformID) string {
	rel := filepath.FromSlash(strings.TrimPrefix(pkg.String(), "/"))
	return filepath.Join(s.PlatformDir(platform), rel) + ArtifactExt
}

// Exists reports whether an artifact is present.
func (s *Sandbox) Exists(pkg domain.PackageID, platform domain.PlatformID) bool {
	info, err := os.Stat(s.OutputPath(pkg, platform))
	return err == nil && info.Mode().IsRegular()
}

// Read returns the artifact bytes after checking their checksum.
func (s *Sandbox) Read(pkg domain.PackageID, platform domain.PlatformID) ([]byte, error) {
	path := s.OutputPath(pkg, platform)
	//nolint:gosec // Path is derived from a standardized package path
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read artifact"), "path", path)
	}
	if err := Verify(data); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return data, nil
}

// Remove deletes one artifact. Removing a missing artifact is not an error.
func (s *Sandbox) Remove(pkg domain.PackageID, platform domain.PlatformID) error {
	path := s.OutputPath(pkg, platform)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove artifact"), "path", path)
	}
	return nil
}

// WriteFile writes an auxiliary file into the platform directory.
func (s *Sandbox) WriteFile(platform domain.PlatformID, name string, data []byte) error {
	if name == "" || filepath.Base(name) != name {
		return zerr.With(zerr.New("invalid sandbox file name"), "name", name)
	}
	return writeAtomic(filepath.Join(s.PlatformDir(platform), name), data)
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a partial artifact.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary file"), "path", dir)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", path)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set file mode"), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move file into place"), "path", path)
	}
	return nil
}
