package calculator

import "go.trai.ch/tally/internal/core/domain"

// InRequestOrder reorders packages to follow the first occurrence of each id
// in requested. Packages whose id is not requested are dropped.
func InRequestOrder(packages []domain.Package, requested []domain.PackageID) []domain.Package {
	byID := make(map[domain.PackageID]int, len(packages))
	for i := range packages {
		byID[packages[i].ID] = i
	}

	out := make([]domain.Package, 0, len(packages))
	for _, id := range requested {
		i, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, packages[i])
		delete(byID, id)
	}
	return out
}

// Replaced returns the ids of every comparison superseded by a comparison of
// the given packages. Only direct replacements count.
func Replaced(packages []domain.Package) domain.ComparisonSet {
	set := make(domain.ComparisonSet)
	for i := range packages {
		for j := range packages[i].Comparisons {
			for _, id := range packages[i].Comparisons[j].Replacing {
				set.Add(id)
			}
		}
	}
	return set
}

// InForce returns the comparisons of packages that are not replaced, in
// package order and then catalog order.
func InForce(packages []domain.Package, replaced domain.ComparisonSet) []domain.ComparisonID {
	var out []domain.ComparisonID
	for i := range packages {
		for j := range packages[i].Comparisons {
			if id := packages[i].Comparisons[j].ID; !replaced.Has(id) {
				out = append(out, id)
			}
		}
	}
	return out
}
