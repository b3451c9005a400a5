package calculator

import (
	"strconv"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
)

// Match pairs the baseline and selected option of every in-force comparison.
//
// The selection of a comparison is looked up by comparison id. A comparison
// with no selection, more than one selection or a selection naming an option
// of another comparison fails with domain.ErrInvalidVersion.
func Match(
	packages []domain.Package,
	replaced domain.ComparisonSet,
	version *domain.Version,
) ([]domain.OptionPair, error) {
	var pairs []domain.OptionPair
	for i := range packages {
		pkg := &packages[i]
		for j := range pkg.Comparisons {
			cmp := &pkg.Comparisons[j]
			if replaced.Has(cmp.ID) {
				continue
			}

			selected, err := selectedOption(cmp, version)
			if err != nil {
				return nil, zerr.With(err, "package_id", pkg.ID.String())
			}
			pairs = append(pairs, domain.OptionPair{
				PackageID:    pkg.ID,
				ComparisonID: cmp.ID,
				Baseline:     cmp.Baseline(),
				Selected:     selected,
			})
		}
	}
	return pairs, nil
}

func selectedOption(cmp *domain.Comparison, version *domain.Version) (*domain.Option, error) {
	selections := version.SelectionsFor(cmp.ID)
	switch len(selections) {
	case 0:
		err := zerr.With(zerr.Wrap(domain.ErrInvalidVersion, "no selection for comparison"), "comparison_id", cmp.ID.String())
		return nil, zerr.With(err, "version_id", version.ID.String())
	case 1:
	default:
		err := zerr.With(zerr.Wrap(domain.ErrInvalidVersion, "ambiguous selection for comparison"), "comparison_id", cmp.ID.String())
		return nil, zerr.With(err, "selections", strconv.Itoa(len(selections)))
	}

	opt, ok := cmp.Option(selections[0].OptionID)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidVersion, "selected option does not belong to comparison"), "comparison_id", cmp.ID.String())
		return nil, zerr.With(err, "option_id", selections[0].OptionID.String())
	}
	return opt, nil
}
