package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ScopeKind is the granularity of a summary line.
type ScopeKind int

const (
	// ScopeGroup is the global total.
	ScopeGroup ScopeKind = iota
	// ScopeRegion is a single region.
	ScopeRegion
	// ScopeCity is a single city.
	ScopeCity
)

// Scope identifies what a SummaryLine totals. Region is set for region
// scopes, City for city scopes.
type Scope struct {
	Kind   ScopeKind
	Region Region
	City   City
}

// GroupScope returns the global scope.
func GroupScope() Scope { return Scope{Kind: ScopeGroup} }

// RegionScope returns the scope of a single region.
func RegionScope(r Region) Scope { return Scope{Kind: ScopeRegion, Region: r} }

// CityScope returns the scope of a single city.
func CityScope(c City) Scope { return Scope{Kind: ScopeCity, City: c} }

// String renders the scope as "group", "region:<name>" or "city:<name>".
func (s Scope) String() string {
	switch s.Kind {
	case ScopeRegion:
		return "region:" + s.Region.String()
	case ScopeCity:
		return "city:" + s.City.String()
	default:
		return "group"
	}
}

// SummaryLine is one row of the cost comparison report.
// Costs are truncated toward zero.
type SummaryLine struct {
	Scope        Scope
	ExistingCost int64
	SelectedCost int64
}

// OptionPair couples the baseline option of an in-force comparison with the
// option the version selected for it. Baseline is nil when the comparison has
// no existing option.
type OptionPair struct {
	PackageID    PackageID
	ComparisonID ComparisonID
	Baseline     *Option
	Selected     *Option
}

// RollupMode selects how city totals are aggregated into regions and the group.
type RollupMode int

const (
	// RollupWeighted multiplies truncated city totals by the city weight to
	// its region (for region lines) and to the group (for the group line).
	RollupWeighted RollupMode = iota
	// RollupSummed adds untruncated city totals into regions and regions into
	// the group without weights.
	RollupSummed
)

// String returns the flag value of the mode.
func (m RollupMode) String() string {
	if m == RollupSummed {
		return "summed"
	}
	return "weighted"
}

// ParseRollupMode resolves a mode flag value. The empty string selects the
// weighted default.
func ParseRollupMode(s string) (RollupMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "weighted":
		return RollupWeighted, nil
	case "summed":
		return RollupSummed, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrInvalidRollupMode, "unrecognised name"), "mode", s)
	}
}
