package calculator

import (
	"context"
	"math"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

type cityTotal struct {
	region   domain.Region
	city     domain.City
	existing float64
	selected float64
}

// layout returns every city in report order with its region.
func layout(geo ports.Geography) ([]cityTotal, error) {
	var out []cityTotal
	for _, r := range domain.Regions() {
		for _, c := range geo.CitiesOf(r) {
			owner, err := geo.RegionOf(c)
			if err != nil {
				return nil, err
			}
			if owner != r {
				err := zerr.With(zerr.Wrap(domain.ErrConfiguration, "city listed under a foreign region"), "city", c.String())
				return nil, zerr.With(err, "region", r.String())
			}
			out = append(out, cityTotal{region: r, city: c})
		}
	}
	return out, nil
}

// cityTotals prices every pair in every city. Cities are priced concurrently,
// at most parallelism at a time.
func cityTotals(
	ctx context.Context,
	pricer *Pricer,
	pairs []domain.OptionPair,
	totals []cityTotal,
	parallelism int,
) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i := range totals {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t := &totals[i]
			for _, pair := range pairs {
				if pair.Baseline != nil {
					v, err := pricer.Price(pair.Baseline, t.city)
					if err != nil {
						return err
					}
					t.existing += v
				}
				v, err := pricer.Price(pair.Selected, t.city)
				if err != nil {
					return err
				}
				t.selected += v
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func trunc(v float64) int64 {
	return int64(math.Trunc(v))
}

// aggregate turns city totals into the ordered report.
func aggregate(geo ports.Geography, totals []cityTotal, mode domain.RollupMode) ([]domain.SummaryLine, error) {
	switch mode {
	case domain.RollupWeighted:
		return aggregateWeighted(geo, totals)
	case domain.RollupSummed:
		return aggregateSummed(totals), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidRollupMode, "unsupported mode"), "mode", mode.String())
	}
}

func aggregateWeighted(geo ports.Geography, totals []cityTotal) ([]domain.SummaryLine, error) {
	var groupExisting, groupSelected float64
	regionExisting := make(map[domain.Region]float64)
	regionSelected := make(map[domain.Region]float64)

	for _, t := range totals {
		existing, selected := float64(trunc(t.existing)), float64(trunc(t.selected))

		toRegion, err := geo.WeightToRegion(t.city)
		if err != nil {
			return nil, err
		}
		toGroup, err := geo.WeightToGroup(t.city)
		if err != nil {
			return nil, err
		}

		regionExisting[t.region] += existing * toRegion
		regionSelected[t.region] += selected * toRegion
		groupExisting += existing * toGroup
		groupSelected += selected * toGroup
	}

	return assemble(totals, groupExisting, groupSelected, regionExisting, regionSelected), nil
}

func aggregateSummed(totals []cityTotal) []domain.SummaryLine {
	regionExisting := make(map[domain.Region]float64)
	regionSelected := make(map[domain.Region]float64)
	for _, t := range totals {
		regionExisting[t.region] += t.existing
		regionSelected[t.region] += t.selected
	}

	var groupExisting, groupSelected float64
	for _, r := range domain.Regions() {
		groupExisting += regionExisting[r]
		groupSelected += regionSelected[r]
	}

	return assemble(totals, groupExisting, groupSelected, regionExisting, regionSelected)
}

// assemble orders the lines: group, then every region followed by its cities.
func assemble(
	totals []cityTotal,
	groupExisting, groupSelected float64,
	regionExisting, regionSelected map[domain.Region]float64,
) []domain.SummaryLine {
	lines := make([]domain.SummaryLine, 0, 1+len(domain.Regions())+len(totals))
	lines = append(lines, domain.SummaryLine{
		Scope:        domain.GroupScope(),
		ExistingCost: trunc(groupExisting),
		SelectedCost: trunc(groupSelected),
	})

	for _, r := range domain.Regions() {
		lines = append(lines, domain.SummaryLine{
			Scope:        domain.RegionScope(r),
			ExistingCost: trunc(regionExisting[r]),
			SelectedCost: trunc(regionSelected[r]),
		})
		for _, t := range totals {
			if t.region != r {
				continue
			}
			lines = append(lines, domain.SummaryLine{
				Scope:        domain.CityScope(t.city),
				ExistingCost: trunc(t.existing),
				SelectedCost: trunc(t.selected),
			})
		}
	}
	return lines
}
