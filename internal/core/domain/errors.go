package domain

import "go.trai.ch/zerr"

var (
	// ErrConfiguration is returned when the geography reference is incomplete,
	// for example when a category has no multiplier for a city.
	ErrConfiguration = zerr.New("incomplete geography reference")

	// ErrInvalidVersion is returned when a version does not select exactly one
	// option of an in-force comparison.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrVersionNotFound is returned when a version id is not in the version store.
	ErrVersionNotFound = zerr.New("version not found")

	// ErrNoPackagesSpecified is returned when a calculation resolves no active packages.
	ErrNoPackagesSpecified = zerr.New("no packages specified")

	// ErrInvalidCatalog is returned when catalog data violates a catalog invariant.
	ErrInvalidCatalog = zerr.New("invalid catalog")

	// ErrInvalidVersionFile is returned when version data is structurally invalid.
	ErrInvalidVersionFile = zerr.New("invalid version file")

	// ErrUnknownCategory is returned when a category name is not recognised.
	ErrUnknownCategory = zerr.New("unknown category")

	// ErrUnknownCity is returned when a city name is not recognised.
	ErrUnknownCity = zerr.New("unknown city")

	// ErrUnknownRegion is returned when a region name is not recognised.
	ErrUnknownRegion = zerr.New("unknown region")

	// ErrInvalidRollupMode is returned when a rollup mode flag value is not recognised.
	ErrInvalidRollupMode = zerr.New("invalid rollup mode, expected 'weighted' or 'summed'")

	// ErrReferenceReadFailed is returned when a reference data file cannot be read.
	ErrReferenceReadFailed = zerr.New("failed to read reference data")

	// ErrReferenceParseFailed is returned when a reference data file cannot be parsed.
	ErrReferenceParseFailed = zerr.New("failed to parse reference data")

	// ErrSettingsLoadFailed is returned when environment settings cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrUnsupportedOutput is returned when a report output format is not recognised.
	ErrUnsupportedOutput = zerr.New("unsupported output format, expected 'text', 'json' or 'yaml'")
)
