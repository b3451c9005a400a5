// Package domain contains the core catalog, geography and report models of the
// cost comparison.
package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// ReplacementGraph is the directed "replaces" relation between comparisons of
// a catalog. Calculations only ever take a single hop, so the graph exists to
// reject catalogs the one-hop rule cannot price correctly.
type ReplacementGraph struct {
	owners     map[ComparisonID]PackageID
	edges      map[ComparisonID][]ComparisonID
	replacedBy map[ComparisonID][]ComparisonID
	order      []ComparisonID
}

// NewReplacementGraph creates an empty ReplacementGraph.
func NewReplacementGraph() *ReplacementGraph {
	return &ReplacementGraph{
		owners:     make(map[ComparisonID]PackageID),
		edges:      make(map[ComparisonID][]ComparisonID),
		replacedBy: make(map[ComparisonID][]ComparisonID),
	}
}

// AddPackage adds every comparison of p and its replacement edges.
// It returns an error if a comparison id is already owned by another package.
func (g *ReplacementGraph) AddPackage(p *Package) error {
	for i := range p.Comparisons {
		c := &p.Comparisons[i]
		if owner, exists := g.owners[c.ID]; exists {
			err := zerr.With(zerr.Wrap(ErrInvalidCatalog, "duplicate comparison id"), "comparison_id", c.ID.String())
			return zerr.With(err, "package_id", owner.String())
		}
		g.owners[c.ID] = p.ID
		g.order = append(g.order, c.ID)
		g.edges[c.ID] = slices.Clone(c.Replacing)
	}
	return nil
}

// Validate checks that every replacement target exists in another package,
// that no comparison is replaced by more than one comparison and that the
// relation has no cycles.
func (g *ReplacementGraph) Validate() error {
	clear(g.replacedBy)
	for _, id := range g.order {
		for _, target := range g.edges[id] {
			owner, exists := g.owners[target]
			if !exists {
				err := zerr.With(zerr.Wrap(ErrInvalidCatalog, "replacement target not found"), "comparison_id", id.String())
				return zerr.With(err, "target", target.String())
			}
			if owner == g.owners[id] {
				err := zerr.With(zerr.Wrap(ErrInvalidCatalog, "comparison replaces a comparison of its own package"), "comparison_id", id.String())
				return zerr.With(err, "target", target.String())
			}
			g.replacedBy[target] = append(g.replacedBy[target], id)
			if len(g.replacedBy[target]) > 1 {
				err := zerr.With(zerr.Wrap(ErrInvalidCatalog, "comparison replaced by more than one comparison"), "comparison_id", target.String())
				return zerr.With(err, "replaced_by", joinIDs(g.replacedBy[target]))
			}
		}
	}

	visited := make(map[ComparisonID]int) // 0: unvisited, 1: visiting, 2: visited
	var path []ComparisonID

	var visit func(u ComparisonID) error
	visit = func(u ComparisonID) error {
		visited[u] = 1
		path = append(path, u)

		for _, target := range g.edges[u] {
			if visited[target] == 1 {
				return g.buildCycleError(path, target)
			}
			if visited[target] == 0 {
				if err := visit(target); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	for _, id := range g.order {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *ReplacementGraph) buildCycleError(path []ComparisonID, target ComparisonID) error {
	startIdx := slices.Index(path, target)
	cyclePath := ""
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += target.String()
	return zerr.With(zerr.Wrap(ErrInvalidCatalog, "replacement cycle detected"), "cycle", cyclePath)
}

// Chained yields comparisons that replace another comparison and are
// themselves replaced. A calculation activating the whole chain only removes
// one hop of it. Validate must have returned nil.
func (g *ReplacementGraph) Chained() iter.Seq[ComparisonID] {
	return func(yield func(ComparisonID) bool) {
		for _, id := range g.order {
			if len(g.edges[id]) > 0 && len(g.replacedBy[id]) > 0 {
				if !yield(id) {
					return
				}
			}
		}
	}
}

// ReplacedBy returns the comparison replacing id, if any.
// Validate must have returned nil.
func (g *ReplacementGraph) ReplacedBy(id ComparisonID) (ComparisonID, bool) {
	by := g.replacedBy[id]
	if len(by) == 0 {
		return ComparisonID{}, false
	}
	return by[0], true
}

func joinIDs(ids []ComparisonID) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ","
		}
		out += id.String()
	}
	return out
}
