package settings_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tally/internal/adapters/settings"
	"go.trai.ch/tally/internal/core/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := settings.NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "weighted", s.Mode)
	assert.Equal(t, runtime.NumCPU(), s.Parallelism)
	assert.Equal(t, "text", s.Output)
	assert.Equal(t, "none", s.Trace)
	assert.False(t, s.LogJSON)
	assert.Empty(t, s.CatalogPath)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TALLY_MODE", "summed")
	t.Setenv("TALLY_PARALLELISM", "3")
	t.Setenv("TALLY_OUTPUT", "json")
	t.Setenv("TALLY_LOG_JSON", "true")
	t.Setenv("TALLY_CATALOG", "/srv/catalog.yaml")

	s, err := settings.NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "summed", s.Mode)
	assert.Equal(t, 3, s.Parallelism)
	assert.Equal(t, "json", s.Output)
	assert.True(t, s.LogJSON)
	assert.Equal(t, "/srv/catalog.yaml", s.CatalogPath)
}

func TestLoad_DotenvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "tally.env")
	require.NoError(t, os.WriteFile(path, []byte("TALLY_TRACE=progrock\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("TALLY_TRACE") })

	s, err := settings.NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "progrock", s.Trace)
}

func TestLoad_MissingDotenvFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := settings.NewLoader("does-not-exist.env").Load()
	require.ErrorIs(t, err, domain.ErrSettingsLoadFailed)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TALLY_OUTPUT", "xml")

	_, err := settings.NewLoader().Load()
	require.ErrorIs(t, err, domain.ErrSettingsLoadFailed)
	assert.Contains(t, err.Error(), "Output")
}

func TestLoad_InvalidParallelism(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TALLY_PARALLELISM", "0")

	_, err := settings.NewLoader().Load()
	require.ErrorIs(t, err, domain.ErrSettingsLoadFailed)
}
