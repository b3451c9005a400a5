package ports

import "go.trai.ch/tally/internal/core/domain"

// Geography holds region containment, price multipliers and city weights.
//
// Lookups return domain.ErrConfiguration when the table has no value for the
// requested key. A table that passed loading never does.
//
//go:generate go run go.uber.org/mock/mockgen -source=geography.go -destination=mocks/mock_geography.go -package=mocks
type Geography interface {
	// Multiplier returns the price multiplier of a category in a city.
	Multiplier(category domain.Category, city domain.City) (float64, error)

	// RegionOf returns the region containing city.
	RegionOf(city domain.City) (domain.Region, error)

	// CitiesOf returns the member cities of region in report order.
	CitiesOf(region domain.Region) []domain.City

	// WeightToRegion returns the weight of city within its region.
	WeightToRegion(city domain.City) (float64, error)

	// WeightToGroup returns the weight of city within the group.
	WeightToGroup(city domain.City) (float64, error)
}
