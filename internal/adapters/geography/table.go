// Package geography provides the region, city weight and multiplier reference.
package geography

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type multiplierKey struct {
	category domain.Category
	city     domain.City
}

type weights struct {
	toRegion float64
	toGroup  float64
}

// Table is an immutable geography reference.
type Table struct {
	multipliers map[multiplierKey]float64
	regionOf    map[domain.City]domain.Region
	cities      map[domain.Region][]domain.City
	weights     map[domain.City]weights
}

var _ ports.Geography = (*Table)(nil)

// Builder assembles a Table. Build checks the table is complete.
type Builder struct {
	t *Table
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{t: &Table{
		multipliers: make(map[multiplierKey]float64),
		regionOf:    make(map[domain.City]domain.Region),
		cities:      make(map[domain.Region][]domain.City),
		weights:     make(map[domain.City]weights),
	}}
}

// AddCity appends city to region with its weights.
func (b *Builder) AddCity(region domain.Region, city domain.City, toRegion, toGroup float64) error {
	if owner, exists := b.t.regionOf[city]; exists {
		err := zerr.With(zerr.Wrap(domain.ErrConfiguration, "city belongs to more than one region"), "city", city.String())
		return zerr.With(err, "region", owner.String())
	}
	b.t.regionOf[city] = region
	b.t.cities[region] = append(b.t.cities[region], city)
	b.t.weights[city] = weights{toRegion: toRegion, toGroup: toGroup}
	return nil
}

// SetMultiplier sets the multiplier of category in city.
func (b *Builder) SetMultiplier(category domain.Category, city domain.City, m float64) {
	b.t.multipliers[multiplierKey{category, city}] = m
}

// Build returns the table, or domain.ErrConfiguration if a region has no
// cities, a city has no region or a (category, city) pair has no multiplier.
func (b *Builder) Build() (*Table, error) {
	for _, r := range domain.Regions() {
		if len(b.t.cities[r]) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, "region has no cities"), "region", r.String())
		}
	}
	for _, c := range domain.Cities() {
		if _, ok := b.t.regionOf[c]; !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, "city has no region"), "city", c.String())
		}
		for _, cat := range domain.Categories() {
			if _, ok := b.t.multipliers[multiplierKey{cat, c}]; !ok {
				err := zerr.With(zerr.Wrap(domain.ErrConfiguration, "missing multiplier"), "category", cat.String())
				return nil, zerr.With(err, "city", c.String())
			}
		}
	}
	return b.t, nil
}

// Parse decodes a geography document into a complete Table.
func Parse(data []byte) (*Table, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, zerr.Wrap(domain.ErrReferenceParseFailed, err.Error())
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, describeValidation(err)
	}

	b := NewBuilder()
	seenRegions := make(map[domain.Region]struct{}, len(file.Regions))
	for _, rdto := range file.Regions {
		region, err := domain.ParseRegion(rdto.Name)
		if err != nil {
			return nil, err
		}
		if _, dup := seenRegions[region]; dup {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, "region listed twice"), "region", region.String())
		}
		seenRegions[region] = struct{}{}

		for _, cdto := range rdto.Cities {
			city, err := domain.ParseCity(cdto.Name)
			if err != nil {
				return nil, err
			}
			if err := b.AddCity(region, city, *cdto.WeightToRegion, *cdto.WeightToGroup); err != nil {
				return nil, err
			}
		}
	}

	for catName, byCity := range file.Multipliers {
		category, err := domain.ParseCategory(catName)
		if err != nil {
			return nil, err
		}
		for cityName, m := range byCity {
			city, err := domain.ParseCity(cityName)
			if err != nil {
				return nil, err
			}
			b.SetMultiplier(category, city, m)
		}
	}

	return b.Build()
}

// Multiplier returns the price multiplier of category in city.
func (t *Table) Multiplier(category domain.Category, city domain.City) (float64, error) {
	m, ok := t.multipliers[multiplierKey{category, city}]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrConfiguration, "missing multiplier"), "category", category.String())
		return 0, zerr.With(err, "city", city.String())
	}
	return m, nil
}

// RegionOf returns the region containing city.
func (t *Table) RegionOf(city domain.City) (domain.Region, error) {
	r, ok := t.regionOf[city]
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrConfiguration, "city has no region"), "city", city.String())
	}
	return r, nil
}

// CitiesOf returns the member cities of region in report order.
func (t *Table) CitiesOf(region domain.Region) []domain.City {
	return append([]domain.City(nil), t.cities[region]...)
}

// WeightToRegion returns the weight of city within its region.
func (t *Table) WeightToRegion(city domain.City) (float64, error) {
	w, ok := t.weights[city]
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrConfiguration, "missing weight to region"), "city", city.String())
	}
	return w.toRegion, nil
}

// WeightToGroup returns the weight of city within the group.
func (t *Table) WeightToGroup(city domain.City) (float64, error) {
	w, ok := t.weights[city]
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrConfiguration, "missing weight to group"), "city", city.String())
	}
	return w.toGroup, nil
}

func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return zerr.Wrap(domain.ErrConfiguration, err.Error())
	}
	fe := fieldErrs[0]
	wrapped := zerr.Wrap(domain.ErrConfiguration, "field "+fe.Namespace()+" failed "+fe.Tag())
	return zerr.With(wrapped, "value", fmt.Sprintf("%v", fe.Value()))
}
