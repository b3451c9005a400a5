package ports

import "go.trai.ch/tally/internal/core/domain"

// VersionStore provides read-only access to customer versions.
//
//go:generate go run go.uber.org/mock/mockgen -source=versions.go -destination=mocks/mock_versions.go -package=mocks
type VersionStore interface {
	// Version returns the version with the given id.
	// Returns domain.ErrVersionNotFound if it does not exist.
	Version(id domain.VersionID) (*domain.Version, error)

	// Versions returns every stored version in file order.
	Versions() []domain.Version
}
