// Package catalog loads packages, components and versions and serves them by id.
package catalog

import (
	"slices"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store is an immutable in-memory catalog.
type Store struct {
	packages   []domain.Package
	components []domain.Component
}

var _ ports.Catalog = (*Store)(nil)

// NewStore creates a Store over already validated packages and components.
func NewStore(packages []domain.Package, components []domain.Component) *Store {
	return &Store{packages: packages, components: components}
}

// Packages returns every package in catalog order.
func (s *Store) Packages() []domain.Package {
	return slices.Clone(s.packages)
}

// PackagesByID returns the packages whose id is in ids, in catalog order.
func (s *Store) PackagesByID(ids []domain.PackageID) []domain.Package {
	var out []domain.Package
	for _, p := range s.packages {
		if slices.Contains(ids, p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// ComponentsByID returns the components whose id is in ids, in catalog order.
func (s *Store) ComponentsByID(ids []domain.ComponentID) []domain.Component {
	var out []domain.Component
	for _, c := range s.components {
		if slices.Contains(ids, c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// VersionStore is an immutable in-memory set of versions.
type VersionStore struct {
	versions []domain.Version
}

var _ ports.VersionStore = (*VersionStore)(nil)

// NewVersionStore creates a VersionStore over the given versions.
func NewVersionStore(versions []domain.Version) *VersionStore {
	return &VersionStore{versions: versions}
}

// Version returns the version with the given id.
func (s *VersionStore) Version(id domain.VersionID) (*domain.Version, error) {
	for i := range s.versions {
		if s.versions[i].ID == id {
			v := s.versions[i]
			return &v, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrVersionNotFound, "lookup failed"), "version_id", id.String())
}

// Versions returns every version in file order.
func (s *VersionStore) Versions() []domain.Version {
	return slices.Clone(s.versions)
}
