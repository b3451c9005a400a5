package calculator_test

import (
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports/mocks"
	"go.trai.ch/tally/internal/engine/calculator"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestPricer_ReferenceOptions(t *testing.T) {
	ref := loadReference(t)
	pkgs := ref.Catalog.Packages()
	pricer := calculator.NewPricer(ref.Catalog, ref.Geography)

	got, err := pricer.Price(findOption(t, pkgs, "comparison-1", "door-1"), domain.CityBerlin)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, got, 1e-5)

	got, err = pricer.Price(findOption(t, pkgs, "comparison-4", "tiles-2"), domain.CityStockholm)
	require.NoError(t, err)
	assert.InDelta(t, 115.2, got, 1e-5)
}

func TestPricer_DuplicateRefAgainstCatalog(t *testing.T) {
	ref := loadReference(t)
	pricer := calculator.NewPricer(ref.Catalog, ref.Geography)

	door := domain.NewComponentID("cr-door-1")
	opt := &domain.Option{
		ID:            domain.NewOptionID("door-1-twice"),
		ComponentRefs: []domain.ComponentRef{{ComponentID: door}, {ComponentID: door}},
	}

	got, err := pricer.Price(opt, domain.CityBerlin)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, got, 1e-5)
}

func TestPricer_NoComponents(t *testing.T) {
	ctrl := gomock.NewController(t)
	pricer := calculator.NewPricer(mocks.NewMockCatalog(ctrl), mocks.NewMockGeography(ctrl))

	got, err := pricer.Price(&domain.Option{ID: domain.NewOptionID("empty")}, domain.CityMalmo)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestPricer_DuplicateRefsCountOnceAndMemo(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalog(ctrl)
	geo := mocks.NewMockGeography(ctrl)

	door := domain.NewComponentID("door")
	catalog.EXPECT().ComponentsByID(gomock.Any()).Return([]domain.Component{
		{ID: door, Price: 10, Category: domain.CategoryDoor},
	}).Times(1)
	geo.EXPECT().Multiplier(domain.CategoryDoor, domain.CityMunich).Return(1.5, nil).Times(1)

	opt := &domain.Option{
		ID:            domain.NewOptionID("double-door"),
		ComponentRefs: []domain.ComponentRef{{ComponentID: door}, {ComponentID: door}},
	}
	pricer := calculator.NewPricer(catalog, geo)

	for range 3 {
		got, err := pricer.Price(opt, domain.CityMunich)
		require.NoError(t, err)
		assert.InDelta(t, 15.0, got, 1e-9)
	}
}

func TestPricer_MultiplierErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalog(ctrl)
	geo := mocks.NewMockGeography(ctrl)

	tile := domain.NewComponentID("tile")
	catalog.EXPECT().ComponentsByID(gomock.Any()).Return([]domain.Component{
		{ID: tile, Price: 1, Category: domain.CategoryWallTile},
	})
	geo.EXPECT().Multiplier(domain.CategoryWallTile, domain.CityHamburg).
		Return(0.0, zerr.Wrap(domain.ErrConfiguration, "missing multiplier"))

	opt := &domain.Option{
		ID:            domain.NewOptionID("tiles"),
		ComponentRefs: []domain.ComponentRef{{ComponentID: tile}},
	}
	_, err := calculator.NewPricer(catalog, geo).Price(opt, domain.CityHamburg)
	require.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestPricer_ConcurrentUse(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ref := loadReference(t)
		pkgs := ref.Catalog.Packages()
		opt := findOption(t, pkgs, "comparison-4", "tiles-2")
		pricer := calculator.NewPricer(ref.Catalog, ref.Geography)

		var wg sync.WaitGroup
		results := make([]float64, 32)
		for i := range results {
			wg.Go(func() {
				v, err := pricer.Price(opt, domain.CityStockholm)
				assert.NoError(t, err)
				results[i] = v
			})
		}
		wg.Wait()

		for _, v := range results {
			assert.InDelta(t, 115.2, v, 1e-5)
		}
	})
}
