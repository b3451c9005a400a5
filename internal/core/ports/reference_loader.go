package ports

// ReferenceSources names the files reference data is loaded from.
// An empty path selects the built-in data set for that part.
type ReferenceSources struct {
	CatalogPath   string
	GeographyPath string
	VersionsPath  string
}

// Reference groups the loaded reference services of one calculation.
type Reference struct {
	Catalog   Catalog
	Geography Geography
	Versions  VersionStore
}

// ReferenceLoader loads and validates reference data.
//
//go:generate go run go.uber.org/mock/mockgen -source=reference_loader.go -destination=mocks/mock_reference_loader.go -package=mocks
type ReferenceLoader interface {
	// Load reads catalog, geography and versions from sources.
	Load(sources ReferenceSources) (*Reference, error)
}
