package catalog

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader parses and validates catalog and version documents.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, validate: validator.New()}
}

// ParseCatalog decodes a catalog document and checks every catalog invariant.
func (l *Loader) ParseCatalog(data []byte) (*Store, error) {
	var file File
	if err := decodeStrict(data, &file); err != nil {
		return nil, err
	}
	if err := l.validate.Struct(file); err != nil {
		return nil, describeValidation(domain.ErrInvalidCatalog, err)
	}

	components, err := buildComponents(file.Components)
	if err != nil {
		return nil, err
	}

	known := make(map[domain.ComponentID]struct{}, len(components))
	for _, c := range components {
		known[c.ID] = struct{}{}
	}

	packages, err := buildPackages(file.Packages, known)
	if err != nil {
		return nil, err
	}

	graph := domain.NewReplacementGraph()
	for i := range packages {
		if err := graph.AddPackage(&packages[i]); err != nil {
			return nil, err
		}
	}
	if err := graph.Validate(); err != nil {
		return nil, err
	}
	for id := range graph.Chained() {
		by, _ := graph.ReplacedBy(id)
		l.Logger.Warn(fmt.Sprintf(
			"comparison %s replaces another comparison and is itself replaced by %s; only one hop is removed",
			id, by,
		))
	}

	return NewStore(packages, components), nil
}

// ParseVersions decodes a versions document.
// Selections are checked against the catalog when a calculation matches them.
func (l *Loader) ParseVersions(data []byte) (*VersionStore, error) {
	var file VersionsFile
	if err := decodeStrict(data, &file); err != nil {
		return nil, err
	}
	if err := l.validate.Struct(file); err != nil {
		return nil, describeValidation(domain.ErrInvalidVersionFile, err)
	}

	seen := make(map[string]struct{}, len(file.Versions))
	versions := make([]domain.Version, 0, len(file.Versions))
	for _, dto := range file.Versions {
		if _, dup := seen[dto.ID]; dup {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidVersionFile, "duplicate version id"), "version_id", dto.ID)
		}
		seen[dto.ID] = struct{}{}

		v := domain.Version{
			ID:         domain.NewVersionID(dto.ID),
			Selections: make([]domain.Selection, len(dto.Selections)),
		}
		for i, s := range dto.Selections {
			v.Selections[i] = domain.Selection{
				PackageID:    domain.NewPackageID(s.Package),
				ComparisonID: domain.NewComparisonID(s.Comparison),
				OptionID:     domain.NewOptionID(s.Option),
			}
		}
		versions = append(versions, v)
	}

	return NewVersionStore(versions), nil
}

func buildComponents(dtos []ComponentDTO) ([]domain.Component, error) {
	seen := make(map[string]struct{}, len(dtos))
	out := make([]domain.Component, 0, len(dtos))
	for _, dto := range dtos {
		if _, dup := seen[dto.ID]; dup {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidCatalog, "duplicate component id"), "component_id", dto.ID)
		}
		seen[dto.ID] = struct{}{}

		category, err := domain.ParseCategory(dto.Category)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid component"), "component_id", dto.ID)
		}
		out = append(out, domain.Component{
			ID:       domain.NewComponentID(dto.ID),
			Price:    *dto.Price,
			Category: category,
		})
	}
	return out, nil
}

func buildPackages(dtos []PackageDTO, known map[domain.ComponentID]struct{}) ([]domain.Package, error) {
	packageIDs := make(map[string]struct{}, len(dtos))
	optionIDs := make(map[string]string)

	out := make([]domain.Package, 0, len(dtos))
	for _, pdto := range dtos {
		if _, dup := packageIDs[pdto.ID]; dup {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidCatalog, "duplicate package id"), "package_id", pdto.ID)
		}
		packageIDs[pdto.ID] = struct{}{}

		p := domain.Package{
			ID:          domain.NewPackageID(pdto.ID),
			Title:       pdto.Title,
			Comparisons: make([]domain.Comparison, 0, len(pdto.Comparisons)),
		}
		for _, cdto := range pdto.Comparisons {
			c, err := buildComparison(cdto, known, optionIDs)
			if err != nil {
				return nil, zerr.With(err, "package_id", pdto.ID)
			}
			p.Comparisons = append(p.Comparisons, c)
		}
		out = append(out, p)
	}
	return out, nil
}

func buildComparison(
	dto ComparisonDTO,
	known map[domain.ComponentID]struct{},
	optionIDs map[string]string,
) (domain.Comparison, error) {
	c := domain.Comparison{
		ID:        domain.NewComparisonID(dto.ID),
		Title:     dto.Title,
		Options:   make([]domain.Option, 0, len(dto.Options)),
		Replacing: make([]domain.ComparisonID, len(dto.Replacing)),
	}
	for i, r := range dto.Replacing {
		c.Replacing[i] = domain.NewComparisonID(r)
	}

	existing := 0
	for _, odto := range dto.Options {
		if owner, dup := optionIDs[odto.ID]; dup {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidCatalog, "duplicate option id"), "option_id", odto.ID)
			return domain.Comparison{}, zerr.With(err, "comparison_id", owner)
		}
		optionIDs[odto.ID] = dto.ID

		if odto.Existing {
			existing++
		}
		if existing > 1 {
			return domain.Comparison{}, zerr.With(
				zerr.Wrap(domain.ErrInvalidCatalog, "more than one existing option"), "comparison_id", dto.ID,
			)
		}

		o := domain.Option{
			ID:            domain.NewOptionID(odto.ID),
			Title:         odto.Title,
			Existing:      odto.Existing,
			ComponentRefs: make([]domain.ComponentRef, len(odto.Components)),
		}
		for i, ref := range odto.Components {
			id := domain.NewComponentID(ref)
			if _, ok := known[id]; !ok {
				err := zerr.With(zerr.Wrap(domain.ErrInvalidCatalog, "unknown component reference"), "component_id", ref)
				return domain.Comparison{}, zerr.With(err, "option_id", odto.ID)
			}
			o.ComponentRefs[i] = domain.ComponentRef{ComponentID: id}
		}
		c.Options = append(c.Options, o)
	}
	return c, nil
}

// decodeStrict decodes YAML and rejects unknown fields.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return zerr.Wrap(domain.ErrReferenceParseFailed, err.Error())
	}
	return nil
}

func describeValidation(sentinel error, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return zerr.Wrap(sentinel, err.Error())
	}

	fe := fieldErrs[0]
	wrapped := zerr.Wrap(sentinel, "field "+fe.Namespace()+" failed "+fe.Tag())
	return zerr.With(wrapped, "value", fmt.Sprintf("%v", fe.Value()))
}
