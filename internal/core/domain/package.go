package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Category classifies a Component for city price multipliers.
type Category int

const (
	// CategoryDoor covers doors and door frames.
	CategoryDoor Category = iota + 1
	// CategoryWallTile covers wall tiling.
	CategoryWallTile
)

// Categories returns every category in declaration order.
// Geography completeness checks iterate this list, so a new category must be
// added here.
func Categories() []Category {
	return []Category{CategoryDoor, CategoryWallTile}
}

// String returns the canonical name used in reference data files.
func (c Category) String() string {
	switch c {
	case CategoryDoor:
		return "door"
	case CategoryWallTile:
		return "wall_tile"
	default:
		return "unknown"
	}
}

// ParseCategory resolves a canonical category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(c.String(), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownCategory, "unrecognised name"), "category", s)
}

// Component is a priced, categorized item shared by reference across options.
type Component struct {
	ID       ComponentID
	Price    float64
	Category Category
}

// ComponentRef points at a Component by id.
type ComponentRef struct {
	ComponentID ComponentID
}

// Option is one concrete choice of a Comparison.
type Option struct {
	ID    OptionID
	Title string
	// Existing marks the pre-existing baseline choice of the comparison.
	Existing      bool
	ComponentRefs []ComponentRef
}

// Comparison is a single decision point offering a set of options.
type Comparison struct {
	ID      ComparisonID
	Title   string
	Options []Option
	// Replacing lists comparisons of other packages superseded by this one
	// when both packages are active.
	Replacing []ComparisonID
}

// Option returns the option with the given id, if it belongs to c.
func (c *Comparison) Option(id OptionID) (*Option, bool) {
	for i := range c.Options {
		if c.Options[i].ID == id {
			return &c.Options[i], true
		}
	}
	return nil, false
}

// Baseline returns the option flagged as existing, or nil when the
// comparison introduces a choice with no prior baseline.
func (c *Comparison) Baseline() *Option {
	for i := range c.Options {
		if c.Options[i].Existing {
			return &c.Options[i]
		}
	}
	return nil
}

// Package is a bundle of comparisons a customer can opt into.
type Package struct {
	ID          PackageID
	Title       string
	Comparisons []Comparison
}
