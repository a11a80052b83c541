package content

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/cook/internal/adapters/fs"
	"go.trai.ch/cook/internal/core/domain"
)

// Mount maps a package path prefix onto a content directory.
type Mount struct {
	// Prefix is the standardized package path prefix, e.g. "/game".
	Prefix string
	// Dir is the absolute directory holding the source files.
	Dir string
}

// MountsFor returns the content mounts of cfg: the main content root and one
// mount per DLC directory found under the project root, mounted at "/<dlc>".
func MountsFor(cfg *domain.Config) []Mount {
	mounts := []Mount{{
		Prefix: domain.StandardizePackagePath(cfg.ContentMount),
		Dir:    cfg.ContentRoot,
	}}

	entries, err := os.ReadDir(filepath.Join(cfg.Root, domain.DLCDirName))
	if err != nil {
		return mounts
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		mounts = append(mounts, Mount{
			Prefix: domain.StandardizePackagePath(e.Name()),
			Dir:    domain.DLCContentPath(cfg.Root, e.Name()),
		})
	}
	return mounts
}

type indexEntry struct {
	path  string
	isMap bool
}

// Index maps package identities to source files. It is built lazily and
// rebuilt on the next lookup after Invalidate.
type Index struct {
	walker *fs.Walker
	mounts []Mount

	mu         sync.RWMutex
	entries    map[domain.PackageID]indexEntry
	stale      bool
	generation uint64
}

// NewIndex creates an index over mounts.
func NewIndex(walker *fs.Walker, mounts ...Mount) *Index {
	return &Index{
		walker: walker,
		mounts: mounts,
		stale:  true,
	}
}

// Invalidate marks the index for a rebuild.
func (i *Index) Invalidate() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stale = true
}

// Refresh rebuilds the index now.
func (i *Index) Refresh() {
	entries := make(map[domain.PackageID]indexEntry)
	for _, m := range i.mounts {
		for path := range i.walker.WalkFiles(m.Dir, AssetExt, MapExt) {
			pkg, ok := packageFor(m, path)
			if !ok {
				continue
			}
			entries[pkg] = indexEntry{
				path:  path,
				isMap: strings.EqualFold(filepath.Ext(path), MapExt),
			}
		}
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.entries = entries
	i.stale = false
	i.generation++
}

func (i *Index) ensure() {
	i.mu.RLock()
	stale := i.stale
	i.mu.RUnlock()
	if stale {
		i.Refresh()
	}
}

// Generation changes every time the index is rebuilt.
func (i *Index) Generation() uint64 {
	i.ensure()
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.generation
}

// SourcePath returns the source file of pkg.
func (i *Index) SourcePath(pkg domain.PackageID) (string, bool) {
	i.ensure()
	i.mu.RLock()
	defer i.mu.RUnlock()
	e, ok := i.entries[pkg]
	return e.path, ok
}

// IsMap reports whether pkg is an indexed map package.
func (i *Index) IsMap(pkg domain.PackageID) bool {
	i.ensure()
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.entries[pkg].isMap
}

// Packages returns every indexed package, sorted.
func (i *Index) Packages() []domain.PackageID {
	i.ensure()
	i.mu.RLock()
	out := make([]domain.PackageID, 0, len(i.entries))
	for pkg := range i.entries {
		out = append(out, pkg)
	}
	i.mu.RUnlock()
	domain.SortPackages(out)
	return out
}

// PackageForPath returns the package a source file maps to, whether or not
// the file is indexed yet.
func (i *Index) PackageForPath(path string) (domain.PackageID, bool) {
	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, AssetExt) && !strings.EqualFold(ext, MapExt) {
		return domain.PackageID{}, false
	}
	for _, m := range i.mounts {
		if pkg, ok := packageFor(m, path); ok {
			return pkg, true
		}
	}
	return domain.PackageID{}, false
}

// Dirs returns the content directories of every mount.
func (i *Index) Dirs() []string {
	dirs := make([]string, len(i.mounts))
	for n, m := range i.mounts {
		dirs[n] = m.Dir
	}
	return dirs
}

func packageFor(m Mount, path string) (domain.PackageID, bool) {
	rel, err := filepath.Rel(m.Dir, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return domain.PackageID{}, false
	}
	return domain.NewPackageID(m.Prefix + "/" + filepath.ToSlash(rel)), true
}
