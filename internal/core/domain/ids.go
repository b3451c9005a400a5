package domain

import "slices"

// PackageID identifies a Package in the catalog.
type PackageID struct{ InternedString }

// ComparisonID identifies a Comparison. It is unique across all packages.
type ComparisonID struct{ InternedString }

// OptionID identifies an Option. It is unique across all comparisons.
type OptionID struct{ InternedString }

// ComponentID identifies a priced Component.
type ComponentID struct{ InternedString }

// VersionID identifies a customer Version.
type VersionID struct{ InternedString }

// NewPackageID creates a PackageID from its string form.
func NewPackageID(s string) PackageID { return PackageID{NewInternedString(s)} }

// NewComparisonID creates a ComparisonID from its string form.
func NewComparisonID(s string) ComparisonID { return ComparisonID{NewInternedString(s)} }

// NewOptionID creates an OptionID from its string form.
func NewOptionID(s string) OptionID { return OptionID{NewInternedString(s)} }

// NewComponentID creates a ComponentID from its string form.
func NewComponentID(s string) ComponentID { return ComponentID{NewInternedString(s)} }

// NewVersionID creates a VersionID from its string form.
func NewVersionID(s string) VersionID { return VersionID{NewInternedString(s)} }

// NewPackageIDs converts string ids to PackageIDs, preserving order.
func NewPackageIDs(strs []string) []PackageID {
	ids := make([]PackageID, len(strs))
	for i, s := range strs {
		ids[i] = NewPackageID(s)
	}
	return ids
}

// ComparisonSet is a set of comparison ids.
type ComparisonSet map[ComparisonID]struct{}

// Add inserts id into the set.
func (s ComparisonSet) Add(id ComparisonID) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s ComparisonSet) Has(id ComparisonID) bool {
	_, ok := s[id]
	return ok
}

// Strings returns the members as sorted strings.
func (s ComparisonSet) Strings() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id.String())
	}
	slices.Sort(out)
	return out
}
