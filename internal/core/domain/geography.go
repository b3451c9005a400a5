package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Region is a closed set of sales regions.
type Region int

const (
	// RegionScandinavia groups the Swedish cities.
	RegionScandinavia Region = iota + 1
	// RegionEurope groups the German cities.
	RegionEurope
)

// Regions returns every region in report order.
func Regions() []Region {
	return []Region{RegionScandinavia, RegionEurope}
}

// String returns the display name of the region.
func (r Region) String() string {
	switch r {
	case RegionScandinavia:
		return "Scandinavia"
	case RegionEurope:
		return "Europe"
	default:
		return "Unknown"
	}
}

// ParseRegion resolves a region name case-insensitively.
func ParseRegion(s string) (Region, error) {
	for _, r := range Regions() {
		if strings.EqualFold(r.String(), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownRegion, "unrecognised name"), "region", s)
}

// City is a closed set of cities priced by the geography reference.
type City int

const (
	// CityStockholm is in Scandinavia.
	CityStockholm City = iota + 1
	// CityMalmo is in Scandinavia.
	CityMalmo
	// CityBerlin is in Europe.
	CityBerlin
	// CityHamburg is in Europe.
	CityHamburg
	// CityMunich is in Europe.
	CityMunich
)

// Cities returns every city in declaration order.
func Cities() []City {
	return []City{CityStockholm, CityMalmo, CityBerlin, CityHamburg, CityMunich}
}

// String returns the display name of the city.
func (c City) String() string {
	switch c {
	case CityStockholm:
		return "Stockholm"
	case CityMalmo:
		return "Malmo"
	case CityBerlin:
		return "Berlin"
	case CityHamburg:
		return "Hamburg"
	case CityMunich:
		return "Munich"
	default:
		return "Unknown"
	}
}

// ParseCity resolves a city name case-insensitively.
func ParseCity(s string) (City, error) {
	for _, c := range Cities() {
		if strings.EqualFold(c.String(), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownCity, "unrecognised name"), "city", s)
}
