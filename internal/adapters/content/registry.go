package content

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
)

var (
	_ ports.DependencyResolver = (*AssetRegistry)(nil)
	_ ports.AssetEnumerator    = (*AssetRegistry)(nil)
)

// AssetRegistry answers dependency and enumeration queries from the import
// lists of every indexed package. The graph is rebuilt whenever the index is.
type AssetRegistry struct {
	index  *Index
	logger ports.Logger

	mu         sync.Mutex
	generation uint64
	forward    map[domain.PackageID][]domain.PackageID
	reverse    map[domain.PackageID][]domain.PackageID
}

// NewAssetRegistry creates a registry over index.
func NewAssetRegistry(index *Index, logger ports.Logger) *AssetRegistry {
	return &AssetRegistry{index: index, logger: logger}
}

type graph struct {
	forward map[domain.PackageID][]domain.PackageID
	reverse map[domain.PackageID][]domain.PackageID
}

func (r *AssetRegistry) graph() graph {
	gen := r.index.Generation()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forward != nil && r.generation == gen {
		return graph{forward: r.forward, reverse: r.reverse}
	}

	forward := make(map[domain.PackageID][]domain.PackageID)
	reverse := make(map[domain.PackageID][]domain.PackageID)
	for _, pkg := range r.index.Packages() {
		src, _ := r.index.SourcePath(pkg)
		h, err := ReadHeader(src)
		if err != nil {
			r.logger.Warn(fmt.Sprintf("asset registry skips %s: %v", pkg, err))
			continue
		}
		deps := domain.NewPackageIDs(h.Imports)
		if h.Redirect != "" {
			deps = append(deps, domain.NewPackageID(h.Redirect))
		}
		for _, dep := range deps {
			if dep.IsZero() || dep == pkg {
				continue
			}
			forward[pkg] = append(forward[pkg], dep)
			reverse[dep] = append(reverse[dep], pkg)
		}
	}

	r.forward, r.reverse, r.generation = forward, reverse, gen
	return graph{forward: forward, reverse: reverse}
}

// GetDependents returns roots followed by every package that transitively
// imports one of them, in discovery order.
func (r *AssetRegistry) GetDependents(ctx context.Context, roots []domain.PackageID) ([]domain.PackageID, error) {
	g := r.graph()
	out, err := walk(ctx, g.reverse, roots)
	if err != nil {
		return nil, errors.Join(domain.ErrDependencyResolutionFailed, err)
	}
	return out, nil
}

// GetDependenciesOf returns the transitive imports of pkg, sorted.
func (r *AssetRegistry) GetDependenciesOf(ctx context.Context, pkg domain.PackageID) ([]domain.PackageID, error) {
	g := r.graph()
	all, err := walk(ctx, g.forward, []domain.PackageID{pkg})
	if err != nil {
		return nil, errors.Join(domain.ErrDependencyResolutionFailed, err)
	}
	out := make([]domain.PackageID, 0, len(all))
	for _, dep := range all {
		if dep != pkg {
			out = append(out, dep)
		}
	}
	domain.SortPackages(out)
	return out, nil
}

// walk visits edges breadth first from roots. Every package is visited once,
// so cycles terminate.
func walk(
	ctx context.Context,
	edges map[domain.PackageID][]domain.PackageID,
	roots []domain.PackageID,
) ([]domain.PackageID, error) {
	seen := make(map[domain.PackageID]struct{}, len(roots))
	var out []domain.PackageID
	pending := make([]domain.PackageID, 0, len(roots))
	for _, root := range roots {
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		out = append(out, root)
		pending = append(pending, root)
	}

	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := pending[0]
		pending = pending[1:]
		for _, e := range edges[next] {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
			pending = append(pending, e)
		}
	}
	return out, nil
}

// Enumerate returns the packages selected by filter, sorted and without
// duplicates. Named maps and packages that do not exist are skipped with a
// warning.
func (r *AssetRegistry) Enumerate(ctx context.Context, filter domain.AssetFilter) ([]domain.PackageID, error) {
	scope := r.scope(filter.DLC)
	selected := make(map[domain.PackageID]struct{})

	if filter.AllMaps {
		for _, pkg := range scope {
			if r.index.IsMap(pkg) {
				selected[pkg] = struct{}{}
			}
		}
	}

	for _, name := range filter.Maps {
		matches := r.matchMaps(scope, name)
		if len(matches) == 0 {
			r.logger.Warn(fmt.Sprintf("map %q not found", name))
		}
		for _, pkg := range matches {
			selected[pkg] = struct{}{}
		}
	}

	for _, dir := range filter.Directories {
		prefix := domain.StandardizePackagePath(dir) + "/"
		for _, pkg := range scope {
			if strings.HasPrefix(pkg.String(), prefix) {
				selected[pkg] = struct{}{}
			}
		}
	}

	inScope := make(map[domain.PackageID]struct{}, len(scope))
	for _, pkg := range scope {
		inScope[pkg] = struct{}{}
	}
	for _, name := range filter.Packages {
		pkg := domain.NewPackageID(name)
		if _, ok := inScope[pkg]; !ok {
			r.logger.Warn(fmt.Sprintf("package %q not found", name))
			continue
		}
		selected[pkg] = struct{}{}
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Join(domain.ErrEnumerationFailed, err)
	}

	out := make([]domain.PackageID, 0, len(selected))
	for pkg := range selected {
		out = append(out, pkg)
	}
	domain.SortPackages(out)
	return out, nil
}

// scope returns the packages visible to a session: everything, or only the
// packages mounted under /<dlc>/.
func (r *AssetRegistry) scope(dlc string) []domain.PackageID {
	all := r.index.Packages()
	if dlc == "" {
		return all
	}
	prefix := domain.StandardizePackagePath(dlc) + "/"
	out := all[:0]
	for _, pkg := range all {
		if strings.HasPrefix(pkg.String(), prefix) {
			out = append(out, pkg)
		}
	}
	return out
}

// matchMaps resolves a map name given either as a package path or as the
// short name of a map package.
func (r *AssetRegistry) matchMaps(scope []domain.PackageID, name string) []domain.PackageID {
	want := domain.NewPackageID(name)
	short := strings.ToLower(path.Base(domain.StandardizePackagePath(name)))

	var out []domain.PackageID
	for _, pkg := range scope {
		if !r.index.IsMap(pkg) {
			continue
		}
		if pkg == want || path.Base(pkg.String()) == short {
			out = append(out, pkg)
		}
	}
	return out
}
