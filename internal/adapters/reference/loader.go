// Package reference loads the catalog, geography and versions used by a calculation.
package reference

import (
	"embed"
	"os"

	"go.trai.ch/tally/internal/adapters/catalog"
	"go.trai.ch/tally/internal/adapters/geography"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed data/*.yaml
var builtin embed.FS

const (
	builtinCatalog   = "data/catalog.yaml"
	builtinGeography = "data/geography.yaml"
	builtinVersions  = "data/versions.yaml"
)

// Loader implements ports.ReferenceLoader over files with built-in fallbacks.
type Loader struct {
	catalog *catalog.Loader
}

var _ ports.ReferenceLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{catalog: catalog.NewLoader(logger)}
}

// Load reads and validates every part of the reference data.
func (l *Loader) Load(sources ports.ReferenceSources) (*ports.Reference, error) {
	data, err := read(sources.CatalogPath, builtinCatalog)
	if err != nil {
		return nil, err
	}
	store, err := l.catalog.ParseCatalog(data)
	if err != nil {
		return nil, withSource(err, sources.CatalogPath, builtinCatalog)
	}

	data, err = read(sources.GeographyPath, builtinGeography)
	if err != nil {
		return nil, err
	}
	table, err := geography.Parse(data)
	if err != nil {
		return nil, withSource(err, sources.GeographyPath, builtinGeography)
	}

	data, err = read(sources.VersionsPath, builtinVersions)
	if err != nil {
		return nil, err
	}
	versions, err := l.catalog.ParseVersions(data)
	if err != nil {
		return nil, withSource(err, sources.VersionsPath, builtinVersions)
	}

	return &ports.Reference{
		Catalog:   store,
		Geography: table,
		Versions:  versions,
	}, nil
}

func read(path, fallback string) ([]byte, error) {
	if path == "" {
		data, err := builtin.ReadFile(fallback)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrReferenceReadFailed, err.Error()), "file", fallback)
		}
		return data, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrReferenceReadFailed, err.Error()), "file", path)
	}
	return data, nil
}

func withSource(err error, path, fallback string) error {
	if path == "" {
		path = "builtin:" + fallback
	}
	return zerr.With(err, "file", path)
}
