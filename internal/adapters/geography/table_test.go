package geography_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tally/internal/adapters/geography"
	"go.trai.ch/tally/internal/core/domain"
)

const complete = `
regions:
  - name: Scandinavia
    cities:
      - {name: Stockholm, weight_to_region: 0.6, weight_to_group: 0.2}
      - {name: Malmo, weight_to_region: 0.4, weight_to_group: 0.1}
  - name: Europe
    cities:
      - {name: Berlin, weight_to_region: 0.5, weight_to_group: 0.3}
      - {name: Hamburg, weight_to_region: 0.3, weight_to_group: 0.2}
      - {name: Munich, weight_to_region: 0.2, weight_to_group: 0.2}
multipliers:
  door: {Stockholm: 2.0, Malmo: 1.5, Berlin: 1.5, Hamburg: 1.5, Munich: 1.5}
  wall_tile: {Stockholm: 7.2, Malmo: 6.5, Berlin: 6.3, Hamburg: 5.6, Munich: 5.5}
`

func TestParse_Complete(t *testing.T) {
	table, err := geography.Parse([]byte(complete))
	require.NoError(t, err)

	m, err := table.Multiplier(domain.CategoryWallTile, domain.CityHamburg)
	require.NoError(t, err)
	assert.InDelta(t, 5.6, m, 1e-9)

	r, err := table.RegionOf(domain.CityMalmo)
	require.NoError(t, err)
	assert.Equal(t, domain.RegionScandinavia, r)

	assert.Equal(t,
		[]domain.City{domain.CityBerlin, domain.CityHamburg, domain.CityMunich},
		table.CitiesOf(domain.RegionEurope))

	w, err := table.WeightToRegion(domain.CityStockholm)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, w, 1e-9)

	w, err = table.WeightToGroup(domain.CityBerlin)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, w, 1e-9)
}

func TestParse_Incomplete(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "missing multiplier",
			yaml:    strings.Replace(complete, ", Munich: 5.5", "", 1),
			wantErr: domain.ErrConfiguration,
		},
		{
			name:    "missing category",
			yaml:    strings.Replace(complete, "  door: {Stockholm: 2.0, Malmo: 1.5, Berlin: 1.5, Hamburg: 1.5, Munich: 1.5}\n", "", 1),
			wantErr: domain.ErrConfiguration,
		},
		{
			name:    "missing city",
			yaml:    strings.Replace(complete, "      - {name: Munich, weight_to_region: 0.2, weight_to_group: 0.2}\n", "", 1),
			wantErr: domain.ErrConfiguration,
		},
		{
			name:    "missing weight",
			yaml:    strings.Replace(complete, "{name: Malmo, weight_to_region: 0.4, weight_to_group: 0.1}", "{name: Malmo, weight_to_region: 0.4}", 1),
			wantErr: domain.ErrConfiguration,
		},
		{
			name:    "city in two regions",
			yaml:    strings.Replace(complete, "{name: Munich,", "{name: Malmo,", 1),
			wantErr: domain.ErrConfiguration,
		},
		{
			name:    "region listed twice",
			yaml:    strings.Replace(complete, "name: Europe", "name: Scandinavia", 1),
			wantErr: domain.ErrConfiguration,
		},
		{
			name:    "unknown city",
			yaml:    strings.Replace(complete, "Munich: 5.5", "Paris: 5.5", 1),
			wantErr: domain.ErrUnknownCity,
		},
		{
			name:    "unknown region",
			yaml:    strings.Replace(complete, "name: Europe", "name: Asia", 1),
			wantErr: domain.ErrUnknownRegion,
		},
		{
			name:    "unknown category",
			yaml:    strings.Replace(complete, "wall_tile:", "window:", 1),
			wantErr: domain.ErrUnknownCategory,
		},
		{
			name:    "malformed",
			yaml:    "regions: [",
			wantErr: domain.ErrReferenceParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := geography.Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTable_MissingLookups(t *testing.T) {
	b := geography.NewBuilder()
	_, err := b.Build()
	require.ErrorIs(t, err, domain.ErrConfiguration)

	require.NoError(t, b.AddCity(domain.RegionEurope, domain.CityBerlin, 1, 1))
	require.ErrorIs(t, b.AddCity(domain.RegionScandinavia, domain.CityBerlin, 1, 1), domain.ErrConfiguration)
}
