package content

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageLoader = (*Loader)(nil)

// maxRedirects bounds redirector chains.
const maxRedirects = 16

// Loader keeps loaded packages resident until Evict is called, the way an
// editor keeps objects in memory between garbage collections.
type Loader struct {
	index  *Index
	logger ports.Logger

	mu     sync.Mutex
	loaded map[domain.PackageID]*domain.LoadedPackage
	bytes  uint64
}

// NewLoader creates a loader reading packages through index.
func NewLoader(index *Index, logger ports.Logger) *Loader {
	return &Loader{
		index:  index,
		logger: logger,
		loaded: make(map[domain.PackageID]*domain.LoadedPackage),
	}
}

// Load loads pkg, following redirectors, and then every transitive import
// that is not resident yet. Imports that cannot be read are skipped with a
// warning; only a failure on the root fails the load.
func (l *Loader) Load(ctx context.Context, pkg domain.PackageID) (domain.LoadResult, error) {
	rootID, err := l.resolveRedirects(pkg)
	if err != nil {
		return domain.LoadResult{}, err
	}

	l.mu.Lock()
	cached, ok := l.loaded[rootID]
	l.mu.Unlock()
	if ok {
		return domain.LoadResult{Root: cached}, nil
	}

	root, err := l.read(rootID)
	if err != nil {
		return domain.LoadResult{}, err
	}
	result := domain.LoadResult{Root: l.keep(root)}

	seen := map[domain.PackageID]struct{}{rootID: {}}
	pending := append([]domain.PackageID(nil), root.Imports...)
	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return domain.LoadResult{}, err
		}
		next := pending[0]
		pending = pending[1:]
		if _, ok := seen[next]; ok {
			continue
		}
		seen[next] = struct{}{}

		if l.isLoaded(next) {
			continue
		}
		dep, err := l.read(next)
		if err != nil {
			l.logger.Warn(fmt.Sprintf("skipping import %s of %s: %v", next, rootID, err))
			continue
		}
		result.Loaded = append(result.Loaded, l.keep(dep))
		pending = append(pending, dep.Imports...)
	}
	return result, nil
}

// resolveRedirects follows redirector packages to the package they point at.
func (l *Loader) resolveRedirects(pkg domain.PackageID) (domain.PackageID, error) {
	current := pkg
	for range maxRedirects {
		path, ok := l.index.SourcePath(current)
		if !ok {
			return domain.PackageID{}, notFound(current)
		}
		h, err := ReadHeader(path)
		if err != nil {
			return domain.PackageID{}, err
		}
		if h.Redirect == "" {
			return current, nil
		}
		current = domain.NewPackageID(h.Redirect)
	}
	return domain.PackageID{}, zerr.With(zerr.New("redirector chain too long"), "package", pkg.String())
}

func (l *Loader) read(pkg domain.PackageID) (*domain.LoadedPackage, error) {
	path, ok := l.index.SourcePath(pkg)
	if !ok {
		return nil, notFound(pkg)
	}
	h, err := ReadHeader(path)
	if err != nil {
		return nil, err
	}

	p := &domain.LoadedPackage{
		ID:      pkg,
		Class:   h.Class,
		IsMap:   l.index.IsMap(pkg),
		Imports: domain.NewPackageIDs(h.Imports),
		Payload: []byte(h.Payload),
	}
	if h.Redirect != "" {
		p.Imports = append(p.Imports, domain.NewPackageID(h.Redirect))
	}
	if p.IsMap && p.Class == "" {
		p.Class = mapClass
	}
	return p, nil
}

// keep makes p resident, returning the already resident copy on a race.
func (l *Loader) keep(p *domain.LoadedPackage) *domain.LoadedPackage {
	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.loaded[p.ID]; ok {
		return existing
	}
	l.loaded[p.ID] = p
	l.bytes += uint64(len(p.Payload))
	return p
}

func (l *Loader) isLoaded(pkg domain.PackageID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.loaded[pkg]
	return ok
}

// Resident returns the number of resident packages and their payload size.
func (l *Loader) Resident() (int, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.loaded), l.bytes
}

// Evict drops every resident package and returns how many were dropped.
func (l *Loader) Evict() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := len(l.loaded)
	l.loaded = make(map[domain.PackageID]*domain.LoadedPackage)
	l.bytes = 0
	return n
}

func notFound(pkg domain.PackageID) error {
	return zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "no source file"), "package", pkg.String())
}
