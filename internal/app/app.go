// Package app implements the application layer for tally.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/tally/internal/adapters/report"
	"go.trai.ch/tally/internal/adapters/settings"
	"go.trai.ch/tally/internal/adapters/telemetry"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/tally/internal/engine/calculator"
	"go.trai.ch/zerr"
)

// TracerFactory builds the tracer of one command run.
type TracerFactory func(kind telemetry.Kind, logger ports.Logger) (ports.Tracer, telemetry.ShutdownFunc, error)

// App represents the main application logic.
type App struct {
	loader    ports.ReferenceLoader
	logger    ports.Logger
	settings  settings.Settings
	newTracer TracerFactory
}

// New creates a new App instance. A nil s selects settings.Default.
func New(loader ports.ReferenceLoader, log ports.Logger, s *settings.Settings) *App {
	a := &App{
		loader:    loader,
		logger:    log,
		settings:  settings.Default(),
		newTracer: telemetry.NewTracer,
	}
	if s != nil {
		a.settings = *s
	}
	return a
}

// WithTracerFactory replaces how tracers are built.
// This is primarily used for testing to observe spans.
func (a *App) WithTracerFactory(f TracerFactory) *App {
	a.newTracer = f
	return a
}

// SourceOptions selects reference data files. Empty paths fall back to the
// settings and then to the built-in data.
type SourceOptions struct {
	CatalogPath   string
	GeographyPath string
	VersionsPath  string
}

// CalcOptions configuration for the Calculate method.
type CalcOptions struct {
	SourceOptions
	VersionID string
	// Packages are the active package ids. Empty selects every catalog package.
	Packages    []string
	Mode        string
	Output      string
	Trace       string
	Parallelism int
	Out         io.Writer
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	SourceOptions
	VersionID string
	Packages  []string
	Out       io.Writer
}

// PackagesOptions configuration for the Packages method.
type PackagesOptions struct {
	SourceOptions
	Out io.Writer
}

// LogOptions configuration for the ConfigureLogging method.
type LogOptions struct {
	JSON    bool
	Verbose bool
}

// ConfigureLogging applies the log format and level. Flags and settings are
// combined: either one enabling an option enables it.
func (a *App) ConfigureLogging(opts LogOptions) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.JSON || a.settings.LogJSON)
	}
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(opts.Verbose || a.settings.Verbose)
	}
}

// Calculate loads the reference data, computes the cost comparison of a
// version and writes the report.
func (a *App) Calculate(ctx context.Context, opts CalcOptions) error {
	mode, err := domain.ParseRollupMode(firstNonEmpty(opts.Mode, a.settings.Mode))
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(firstNonEmpty(opts.Output, a.settings.Output))
	if err != nil {
		return err
	}
	kind, err := telemetry.ParseKind(firstNonEmpty(opts.Trace, a.settings.Trace))
	if err != nil {
		return err
	}
	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = a.settings.Parallelism
	}

	ref, version, err := a.load(opts.SourceOptions, opts.VersionID)
	if err != nil {
		return err
	}
	packageIDs := a.packageIDs(ref, opts.Packages)

	tracer, shutdown, err := a.newTracer(kind, a.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn("failed to flush traces: " + err.Error())
		}
	}()

	calc := calculator.New(ref.Catalog, ref.Geography, tracer, a.logger,
		calculator.WithMode(mode),
		calculator.WithParallelism(parallelism),
	)
	lines, err := calc.Calculate(ctx, packageIDs, version)
	if err != nil {
		return zerr.Wrap(err, "calculation failed")
	}

	doc := report.NewDocument(version.ID, packageIDs, mode, lines)
	return report.Write(writerOrStdout(opts.Out), doc, format)
}

// Resolve prints which comparisons are in force for the packages and how
// the version's selections pair with their baselines.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	ref, version, err := a.load(opts.SourceOptions, opts.VersionID)
	if err != nil {
		return err
	}

	calc := calculator.New(ref.Catalog, ref.Geography, telemetry.NewNoOpTracer(), a.logger)
	res, err := calc.Resolve(ctx, a.packageIDs(ref, opts.Packages), version)
	if err != nil {
		return zerr.Wrap(err, "resolution failed")
	}
	inForce := make([]string, len(res.InForce))
	for i, id := range res.InForce {
		inForce[i] = id.String()
	}
	return report.WriteResolution(writerOrStdout(opts.Out), inForce, res.Replaced.Strings(), res.Pairs)
}

// Packages prints the catalog.
func (a *App) Packages(_ context.Context, opts PackagesOptions) error {
	ref, err := a.loader.Load(a.sources(opts.SourceOptions))
	if err != nil {
		return zerr.Wrap(err, "failed to load reference data")
	}
	return report.WritePackages(writerOrStdout(opts.Out), ref.Catalog.Packages())
}

func (a *App) load(src SourceOptions, versionID string) (*ports.Reference, *domain.Version, error) {
	if versionID == "" {
		return nil, nil, zerr.Wrap(domain.ErrVersionNotFound, "no version id given")
	}

	ref, err := a.loader.Load(a.sources(src))
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load reference data")
	}

	version, err := ref.Versions.Version(domain.NewVersionID(versionID))
	if err != nil {
		return nil, nil, err
	}
	return ref, version, nil
}

func (a *App) sources(src SourceOptions) ports.ReferenceSources {
	return ports.ReferenceSources{
		CatalogPath:   firstNonEmpty(src.CatalogPath, a.settings.CatalogPath),
		GeographyPath: firstNonEmpty(src.GeographyPath, a.settings.GeographyPath),
		VersionsPath:  firstNonEmpty(src.VersionsPath, a.settings.VersionsPath),
	}
}

func (a *App) packageIDs(ref *ports.Reference, ids []string) []domain.PackageID {
	if len(ids) > 0 {
		return domain.NewPackageIDs(ids)
	}
	all := ref.Catalog.Packages()
	out := make([]domain.PackageID, len(all))
	for i, p := range all {
		out[i] = p.ID
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
