package geography

// File is the structure of a geography YAML document.
type File struct {
	Regions []RegionDTO `yaml:"regions" validate:"required,dive"`
	// Multipliers maps category name to city name to multiplier.
	Multipliers map[string]map[string]float64 `yaml:"multipliers" validate:"required,dive,dive,gte=0"`
}

// RegionDTO is a region and its member cities in report order.
type RegionDTO struct {
	Name   string    `yaml:"name" validate:"required"`
	Cities []CityDTO `yaml:"cities" validate:"required,min=1,dive"`
}

// CityDTO carries the rollup weights of a city.
type CityDTO struct {
	Name           string   `yaml:"name" validate:"required"`
	WeightToRegion *float64 `yaml:"weight_to_region" validate:"required,gte=0"`
	WeightToGroup  *float64 `yaml:"weight_to_group" validate:"required,gte=0"`
}
