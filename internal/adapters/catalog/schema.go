package catalog

// File is the structure of a catalog YAML document.
type File struct {
	Components []ComponentDTO `yaml:"components" validate:"dive"`
	Packages   []PackageDTO   `yaml:"packages" validate:"dive"`
}

// ComponentDTO is a priced component.
type ComponentDTO struct {
	ID       string   `yaml:"id" validate:"required"`
	Price    *float64 `yaml:"price" validate:"required,gte=0"`
	Category string   `yaml:"category" validate:"required"`
}

// PackageDTO is a package and its comparisons.
type PackageDTO struct {
	ID          string          `yaml:"id" validate:"required"`
	Title       string          `yaml:"title"`
	Comparisons []ComparisonDTO `yaml:"comparisons" validate:"dive"`
}

// ComparisonDTO is a comparison and its options.
type ComparisonDTO struct {
	ID        string      `yaml:"id" validate:"required"`
	Title     string      `yaml:"title"`
	Replacing []string    `yaml:"replacing" validate:"dive,required"`
	Options   []OptionDTO `yaml:"options" validate:"required,min=1,dive"`
}

// OptionDTO is an option and the components it is built from.
type OptionDTO struct {
	ID         string   `yaml:"id" validate:"required"`
	Title      string   `yaml:"title"`
	Existing   bool     `yaml:"existing"`
	Components []string `yaml:"components" validate:"dive,required"`
}

// VersionsFile is the structure of a versions YAML document.
type VersionsFile struct {
	Versions []VersionDTO `yaml:"versions" validate:"dive"`
}

// VersionDTO is a customer version.
type VersionDTO struct {
	ID         string         `yaml:"id" validate:"required"`
	Selections []SelectionDTO `yaml:"selections" validate:"dive"`
}

// SelectionDTO names the option chosen for a comparison.
type SelectionDTO struct {
	Package    string `yaml:"package" validate:"required"`
	Comparison string `yaml:"comparison" validate:"required"`
	Option     string `yaml:"option" validate:"required"`
}
