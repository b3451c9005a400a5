package domain

// Selection records the option chosen for one comparison.
type Selection struct {
	PackageID    PackageID
	ComparisonID ComparisonID
	OptionID     OptionID
}

// Version is a customer's set of per-comparison selections.
type Version struct {
	ID         VersionID
	Selections []Selection
}

// SelectionsFor returns every selection recorded for the given comparison.
func (v *Version) SelectionsFor(id ComparisonID) []Selection {
	var out []Selection
	for _, s := range v.Selections {
		if s.ComparisonID == id {
			out = append(out, s)
		}
	}
	return out
}
