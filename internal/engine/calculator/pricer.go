package calculator

import (
	"sync"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
)

type priceKey struct {
	option domain.OptionID
	city   domain.City
}

// Pricer prices options per city. It memoises results and is safe for
// concurrent use. A Pricer must not outlive the catalog it was built on.
type Pricer struct {
	catalog   ports.Catalog
	geography ports.Geography

	memo sync.Map // priceKey -> float64
}

// NewPricer creates a Pricer over catalog and geography.
func NewPricer(catalog ports.Catalog, geography ports.Geography) *Pricer {
	return &Pricer{catalog: catalog, geography: geography}
}

// Price returns the sum over the option's referenced components of component
// price times the multiplier of its category in city. Refs are resolved as a
// set, so a component referenced twice counts once. The result is not rounded.
func (p *Pricer) Price(option *domain.Option, city domain.City) (float64, error) {
	key := priceKey{option: option.ID, city: city}
	if v, ok := p.memo.Load(key); ok {
		return v.(float64), nil //nolint:forcetypeassert // only float64 is stored
	}

	total, err := p.price(option, city)
	if err != nil {
		return 0, err
	}
	p.memo.Store(key, total)
	return total, nil
}

func (p *Pricer) price(option *domain.Option, city domain.City) (float64, error) {
	if len(option.ComponentRefs) == 0 {
		return 0, nil
	}

	ids := make([]domain.ComponentID, len(option.ComponentRefs))
	for i, ref := range option.ComponentRefs {
		ids[i] = ref.ComponentID
	}

	var total float64
	for _, c := range p.catalog.ComponentsByID(ids) {
		m, err := p.geography.Multiplier(c.Category, city)
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, "failed to price option"), "option_id", option.ID.String())
		}
		total += c.Price * m
	}
	return total, nil
}
