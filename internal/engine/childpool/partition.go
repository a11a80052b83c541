package childpool

import "go.trai.ch/cook/internal/core/domain"

// Partition splits packages round-robin into at most n partitions.
// Duplicates are dropped first, so the union of the partitions equals the
// distinct input exactly. The result is deterministic for a given input order.
func Partition(packages []domain.PackageID, n int) [][]domain.PackageID {
	if n < 1 {
		n = 1
	}

	seen := make(map[domain.PackageID]struct{}, len(packages))
	unique := make([]domain.PackageID, 0, len(packages))
	for _, pkg := range packages {
		if pkg.IsZero() {
			continue
		}
		if _, ok := seen[pkg]; ok {
			continue
		}
		seen[pkg] = struct{}{}
		unique = append(unique, pkg)
	}

	n = min(n, len(unique))
	if n == 0 {
		return nil
	}

	parts := make([][]domain.PackageID, n)
	for i, pkg := range unique {
		parts[i%n] = append(parts[i%n], pkg)
	}
	return parts
}
