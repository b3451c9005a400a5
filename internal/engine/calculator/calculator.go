// Package calculator prices a customer version against the baseline of a set
// of packages and rolls the costs up from cities to regions and the group.
package calculator

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
)

// Calculator runs cost comparisons over a catalog and a geography reference.
type Calculator struct {
	catalog   ports.Catalog
	geography ports.Geography
	tracer    ports.Tracer
	logger    ports.Logger

	mode        domain.RollupMode
	parallelism int
	newRunID    func() string
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithMode sets the rollup mode. The default is domain.RollupWeighted.
func WithMode(mode domain.RollupMode) Option {
	return func(c *Calculator) { c.mode = mode }
}

// WithParallelism bounds how many cities are priced at once.
// Values below one select runtime.NumCPU.
func WithParallelism(n int) Option {
	return func(c *Calculator) { c.parallelism = n }
}

// WithRunIDs replaces the generator of per-run correlation ids.
func WithRunIDs(fn func() string) Option {
	return func(c *Calculator) { c.newRunID = fn }
}

// New creates a new Calculator with the given dependencies.
func New(
	catalog ports.Catalog,
	geography ports.Geography,
	tracer ports.Tracer,
	logger ports.Logger,
	opts ...Option,
) *Calculator {
	c := &Calculator{
		catalog:   catalog,
		geography: geography,
		tracer:    tracer,
		logger:    logger,
		mode:      domain.RollupWeighted,
		newRunID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.parallelism < 1 {
		c.parallelism = runtime.NumCPU()
	}
	return c
}

// Resolution is the outcome of resolving packages against a version.
type Resolution struct {
	Packages []domain.Package
	Replaced domain.ComparisonSet
	InForce  []domain.ComparisonID
	Pairs    []domain.OptionPair
}

// Resolve looks up the active packages, determines the replaced comparisons
// and pairs every in-force comparison with the version's selection.
func (c *Calculator) Resolve(
	ctx context.Context,
	packageIDs []domain.PackageID,
	version *domain.Version,
) (*Resolution, error) {
	if version == nil {
		return nil, zerr.Wrap(domain.ErrInvalidVersion, "no version given")
	}

	ids := make([]string, len(packageIDs))
	for i, id := range packageIDs {
		ids[i] = id.String()
	}
	c.tracer.EmitPlan(ctx, ids)

	_, span := c.tracer.Start(ctx, "resolve", ports.WithAttribute("requested", ids))
	packages := InRequestOrder(c.catalog.PackagesByID(packageIDs), packageIDs)
	if len(packages) == 0 {
		err := zerr.With(zerr.Wrap(domain.ErrNoPackagesSpecified, "no requested package is in the catalog"), "packages", strings.Join(ids, ","))
		span.RecordError(err)
		span.End()
		return nil, err
	}
	replaced := Replaced(packages)
	span.SetAttribute("active", len(packages))
	span.SetAttribute("replaced", replaced.Strings())
	span.End()

	_, span = c.tracer.Start(ctx, "match", ports.WithAttribute("version", version.ID.String()))
	defer span.End()
	pairs, err := Match(packages, replaced, version)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("pairs", len(pairs))

	return &Resolution{
		Packages: packages,
		Replaced: replaced,
		InForce:  InForce(packages, replaced),
		Pairs:    pairs,
	}, nil
}

// Calculate returns the cost comparison report: the group line, then every
// region line followed by the lines of its cities.
func (c *Calculator) Calculate(
	ctx context.Context,
	packageIDs []domain.PackageID,
	version *domain.Version,
) ([]domain.SummaryLine, error) {
	runID := c.newRunID()
	ctx, span := c.tracer.Start(ctx, "calculate",
		ports.WithAttribute("run_id", runID),
		ports.WithAttribute("mode", c.mode.String()),
	)
	defer span.End()

	lines, err := c.calculate(ctx, runID, packageIDs, version)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(err, "run_id", runID)
	}
	return lines, nil
}

func (c *Calculator) calculate(
	ctx context.Context,
	runID string,
	packageIDs []domain.PackageID,
	version *domain.Version,
) ([]domain.SummaryLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := c.Resolve(ctx, packageIDs, version)
	if err != nil {
		return nil, err
	}
	c.logger.Debug(fmt.Sprintf("run %s: %d active packages, replaced [%s], %d pairs",
		runID, len(res.Packages), strings.Join(res.Replaced.Strings(), ", "), len(res.Pairs)))

	ctx, span := c.tracer.Start(ctx, "rollup", ports.WithAttribute("parallelism", c.parallelism))
	defer span.End()

	totals, err := layout(c.geography)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	pricer := NewPricer(c.catalog, c.geography)
	if err := cityTotals(ctx, pricer, res.Pairs, totals, c.parallelism); err != nil {
		span.RecordError(err)
		return nil, err
	}

	lines, err := aggregate(c.geography, totals, c.mode)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("lines", len(lines))
	c.logger.Debug(fmt.Sprintf("run %s: %d summary lines", runID, len(lines)))
	return lines, nil
}
