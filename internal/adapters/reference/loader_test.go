package reference_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tally/internal/adapters/reference"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/tally/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *reference.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(0)
	return reference.NewLoader(log)
}

func TestLoad_Builtin(t *testing.T) {
	ref, err := newLoader(t).Load(ports.ReferenceSources{})
	require.NoError(t, err)

	packages := ref.Catalog.Packages()
	require.Len(t, packages, 3)
	assert.Equal(t, "BASE", packages[0].Title)
	assert.Equal(t, "FANCYDOORS", packages[1].Title)
	assert.Equal(t, "FANCYTILES", packages[2].Title)

	m, err := ref.Geography.Multiplier(domain.CategoryDoor, domain.CityStockholm)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, m, 1e-9)

	v1, err := ref.Versions.Version(domain.NewVersionID("v1"))
	require.NoError(t, err)
	assert.Len(t, v1.Selections, 4)
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "versions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("versions:\n  - id: custom\n"), 0o600))

	ref, err := newLoader(t).Load(ports.ReferenceSources{VersionsPath: path})
	require.NoError(t, err)

	_, err = ref.Versions.Version(domain.NewVersionID("custom"))
	require.NoError(t, err)
	_, err = ref.Versions.Version(domain.NewVersionID("v1"))
	require.ErrorIs(t, err, domain.ErrVersionNotFound)

	assert.Len(t, ref.Catalog.Packages(), 3)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("regions: ["), 0o600))

	tests := []struct {
		name    string
		sources ports.ReferenceSources
		wantErr error
	}{
		{
			name:    "missing catalog file",
			sources: ports.ReferenceSources{CatalogPath: filepath.Join(dir, "nope.yaml")},
			wantErr: domain.ErrReferenceReadFailed,
		},
		{
			name:    "malformed geography",
			sources: ports.ReferenceSources{GeographyPath: bad},
			wantErr: domain.ErrReferenceParseFailed,
		},
		{
			name:    "malformed versions",
			sources: ports.ReferenceSources{VersionsPath: bad},
			wantErr: domain.ErrReferenceParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(tt.sources)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
