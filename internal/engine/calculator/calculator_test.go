package calculator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/tally/internal/core/ports/mocks"
	"go.trai.ch/tally/internal/engine/calculator"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func line(scope domain.Scope, existing, selected int64) domain.SummaryLine {
	return domain.SummaryLine{Scope: scope, ExistingCost: existing, SelectedCost: selected}
}

func newCalculator(t *testing.T, ref *ports.Reference, opts ...calculator.Option) *calculator.Calculator {
	t.Helper()
	ctrl := gomock.NewController(t)
	return calculator.New(ref.Catalog, ref.Geography, quietTracer(ctrl), quietLogger(ctrl), opts...)
}

func TestCalculate_BasePackage(t *testing.T) {
	ref := loadReference(t)

	lines, err := newCalculator(t, ref).Calculate(context.Background(), packageIDs("package-1"), versionV1(t, ref))
	require.NoError(t, err)

	assert.Equal(t, []domain.SummaryLine{
		line(domain.GroupScope(), 162, 172),
		line(domain.RegionScope(domain.RegionScandinavia), 256, 272),
		line(domain.CityScope(domain.CityStockholm), 308, 328),
		line(domain.CityScope(domain.CityMalmo), 247, 262),
		line(domain.RegionScope(domain.RegionEurope), 201, 213),
		line(domain.CityScope(domain.CityBerlin), 244, 259),
		line(domain.CityScope(domain.CityHamburg), 234, 249),
		line(domain.CityScope(domain.CityMunich), 232, 247),
	}, lines)
}

func TestCalculate_AllPackages(t *testing.T) {
	ref := loadReference(t)

	lines, err := newCalculator(t, ref).Calculate(context.Background(),
		packageIDs("package-1", "package-2", "package-3"), versionV1(t, ref))
	require.NoError(t, err)

	assert.Equal(t, []domain.SummaryLine{
		line(domain.GroupScope(), 0, 248),
		line(domain.RegionScope(domain.RegionScandinavia), 0, 393),
		line(domain.CityScope(domain.CityStockholm), 0, 475),
		line(domain.CityScope(domain.CityMalmo), 0, 374),
		line(domain.RegionScope(domain.RegionEurope), 0, 306),
		line(domain.CityScope(domain.CityBerlin), 0, 370),
		line(domain.CityScope(domain.CityHamburg), 0, 359),
		line(domain.CityScope(domain.CityMunich), 0, 358),
	}, lines)
}

func TestCalculate_SummedMode(t *testing.T) {
	ref := loadReference(t)

	lines, err := newCalculator(t, ref, calculator.WithMode(domain.RollupSummed)).
		Calculate(context.Background(), packageIDs("package-1"), versionV1(t, ref))
	require.NoError(t, err)

	assert.Equal(t, []domain.SummaryLine{
		line(domain.GroupScope(), 1266, 1346),
		line(domain.RegionScope(domain.RegionScandinavia), 555, 590),
		line(domain.CityScope(domain.CityStockholm), 308, 328),
		line(domain.CityScope(domain.CityMalmo), 247, 262),
		line(domain.RegionScope(domain.RegionEurope), 711, 756),
		line(domain.CityScope(domain.CityBerlin), 244, 259),
		line(domain.CityScope(domain.CityHamburg), 234, 249),
		line(domain.CityScope(domain.CityMunich), 232, 247),
	}, lines)
}

func TestCalculate_IdempotentAcrossParallelism(t *testing.T) {
	ref := loadReference(t)
	ids := packageIDs("package-3", "package-1", "package-2")

	serial, err := newCalculator(t, ref, calculator.WithParallelism(1)).
		Calculate(context.Background(), ids, versionV1(t, ref))
	require.NoError(t, err)

	for range 5 {
		parallel, err := newCalculator(t, ref, calculator.WithParallelism(8)).
			Calculate(context.Background(), ids, versionV1(t, ref))
		require.NoError(t, err)
		assert.Equal(t, serial, parallel)
	}
}

func TestCalculate_OrderAndTruncation(t *testing.T) {
	ref := loadReference(t)

	lines, err := newCalculator(t, ref).Calculate(context.Background(), packageIDs("package-1"), versionV1(t, ref))
	require.NoError(t, err)

	require.NotEmpty(t, lines)
	assert.Equal(t, domain.ScopeGroup, lines[0].Scope.Kind)

	var region domain.Region
	for _, l := range lines[1:] {
		switch l.Scope.Kind {
		case domain.ScopeRegion:
			region = l.Scope.Region
		case domain.ScopeCity:
			owner, err := ref.Geography.RegionOf(l.Scope.City)
			require.NoError(t, err)
			assert.Equal(t, region, owner, l.Scope.String())
		default:
			t.Fatalf("unexpected scope %s", l.Scope)
		}
		assert.GreaterOrEqual(t, l.ExistingCost, int64(0))
	}

	// Malmo existing is 247.5 before truncation.
	assert.Equal(t, int64(247), lines[3].ExistingCost)
}

func TestCalculate_UnknownPackagesAreIgnored(t *testing.T) {
	ref := loadReference(t)

	withTypo, err := newCalculator(t, ref).Calculate(context.Background(),
		packageIDs("package-1", "package-9"), versionV1(t, ref))
	require.NoError(t, err)

	plain, err := newCalculator(t, ref).Calculate(context.Background(), packageIDs("package-1"), versionV1(t, ref))
	require.NoError(t, err)
	assert.Equal(t, plain, withTypo)
}

func TestCalculate_Errors(t *testing.T) {
	ref := loadReference(t)

	t.Run("no known packages", func(t *testing.T) {
		_, err := newCalculator(t, ref).Calculate(context.Background(), packageIDs("nope"), versionV1(t, ref))
		require.ErrorIs(t, err, domain.ErrNoPackagesSpecified)
	})

	t.Run("nil version", func(t *testing.T) {
		_, err := newCalculator(t, ref).Calculate(context.Background(), packageIDs("package-1"), nil)
		require.ErrorIs(t, err, domain.ErrInvalidVersion)
	})

	t.Run("incomplete version", func(t *testing.T) {
		v := &domain.Version{ID: domain.NewVersionID("empty")}
		_, err := newCalculator(t, ref).Calculate(context.Background(), packageIDs("package-1"), v)
		require.ErrorIs(t, err, domain.ErrInvalidVersion)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newCalculator(t, ref).Calculate(ctx, packageIDs("package-1"), versionV1(t, ref))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculate_GeographyErrorAbortsRun(t *testing.T) {
	ref := loadReference(t)
	ctrl := gomock.NewController(t)

	geo := mocks.NewMockGeography(ctrl)
	geo.EXPECT().CitiesOf(gomock.Any()).DoAndReturn(ref.Geography.CitiesOf).AnyTimes()
	geo.EXPECT().RegionOf(gomock.Any()).DoAndReturn(ref.Geography.RegionOf).AnyTimes()
	geo.EXPECT().Multiplier(gomock.Any(), gomock.Any()).DoAndReturn(
		func(cat domain.Category, city domain.City) (float64, error) {
			if city == domain.CityHamburg && cat == domain.CategoryWallTile {
				return 0, zerr.Wrap(domain.ErrConfiguration, "missing multiplier")
			}
			return ref.Geography.Multiplier(cat, city)
		},
	).AnyTimes()

	calc := calculator.New(ref.Catalog, geo, quietTracer(ctrl), quietLogger(ctrl))
	lines, err := calc.Calculate(context.Background(), packageIDs("package-1"), versionV1(t, ref))
	require.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Nil(t, lines)
}

func TestCalculate_ForeignRegionListing(t *testing.T) {
	ref := loadReference(t)
	ctrl := gomock.NewController(t)

	geo := mocks.NewMockGeography(ctrl)
	geo.EXPECT().CitiesOf(gomock.Any()).Return([]domain.City{domain.CityBerlin}).AnyTimes()
	geo.EXPECT().RegionOf(domain.CityBerlin).Return(domain.RegionEurope, nil).AnyTimes()

	calc := calculator.New(ref.Catalog, geo, quietTracer(ctrl), quietLogger(ctrl))
	_, err := calc.Calculate(context.Background(), packageIDs("package-1"), versionV1(t, ref))
	require.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestCalculate_Spans(t *testing.T) {
	ref := loadReference(t)
	ctrl := gomock.NewController(t)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().End().Times(4)

	var names []string
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().EmitPlan(gomock.Any(), []string{"package-1"})
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			names = append(names, name)
			return ctx, span
		},
	).Times(4)

	calc := calculator.New(ref.Catalog, ref.Geography, tracer, quietLogger(ctrl),
		calculator.WithRunIDs(func() string { return "run-1" }))
	_, err := calc.Calculate(context.Background(), packageIDs("package-1"), versionV1(t, ref))
	require.NoError(t, err)
	assert.Equal(t, []string{"calculate", "resolve", "match", "rollup"}, names)
}

func TestCalculate_RecordsErrorOnSpan(t *testing.T) {
	ref := loadReference(t)
	ctrl := gomock.NewController(t)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().End().AnyTimes()

	var recorded []error
	span.EXPECT().RecordError(gomock.Any()).Do(func(err error) { recorded = append(recorded, err) }).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any())
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).Return(context.Background(), span).AnyTimes()

	calc := calculator.New(ref.Catalog, ref.Geography, tracer, quietLogger(ctrl))
	_, err := calc.Calculate(context.Background(), packageIDs("package-1"), &domain.Version{})
	require.Error(t, err)
	require.NotEmpty(t, recorded)
	for _, e := range recorded {
		assert.True(t, errors.Is(e, domain.ErrInvalidVersion))
	}
}

func TestResolve(t *testing.T) {
	ref := loadReference(t)

	res, err := newCalculator(t, ref).Resolve(context.Background(),
		packageIDs("package-1", "package-2"), versionV1(t, ref))
	require.NoError(t, err)

	require.Len(t, res.Packages, 2)
	assert.Equal(t, []string{"comparison-1"}, res.Replaced.Strings())
	assert.Equal(t, []domain.ComparisonID{
		domain.NewComparisonID("comparison-2"),
		domain.NewComparisonID("comparison-3"),
	}, res.InForce)
	require.Len(t, res.Pairs, 2)
	assert.Equal(t, "tiles-1", res.Pairs[0].Selected.ID.String())
	assert.Equal(t, "door-3", res.Pairs[1].Selected.ID.String())
}

func TestResolve_CallerPackageOrder(t *testing.T) {
	ref := loadReference(t)

	res, err := newCalculator(t, ref).Resolve(context.Background(),
		packageIDs("package-3", "package-1", "package-3"), versionV1(t, ref))
	require.NoError(t, err)

	require.Len(t, res.Packages, 2)
	assert.Equal(t, []string{"package-3", "package-1"}, []string{res.Packages[0].ID.String(), res.Packages[1].ID.String()})
	assert.Equal(t, []domain.ComparisonID{
		domain.NewComparisonID("comparison-4"),
		domain.NewComparisonID("comparison-1"),
	}, res.InForce)
	require.Len(t, res.Pairs, 2)
	assert.Equal(t, "package-3", res.Pairs[0].PackageID.String())
	assert.Equal(t, "comparison-4", res.Pairs[0].ComparisonID.String())
	assert.Equal(t, "package-1", res.Pairs[1].PackageID.String())
	assert.Equal(t, "comparison-1", res.Pairs[1].ComparisonID.String())
}
