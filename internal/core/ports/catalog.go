// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/tally/internal/core/domain"

// Catalog provides read-only access to packages and components.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type Catalog interface {
	// Packages returns every package in catalog order.
	Packages() []domain.Package

	// PackagesByID returns the packages whose id is in ids, in catalog order.
	// Unknown ids are omitted.
	PackagesByID(ids []domain.PackageID) []domain.Package

	// ComponentsByID returns the components whose id is in ids, in catalog order.
	// Unknown ids are omitted.
	ComponentsByID(ids []domain.ComponentID) []domain.Component
}
