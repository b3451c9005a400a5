// Package commands implements the CLI commands for tally.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tally/internal/app"
	"go.trai.ch/tally/internal/build"
)

// CLI represents the command line interface for tally.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(opts app.LogOptions)
	Calculate(ctx context.Context, opts app.CalcOptions) error
	Resolve(ctx context.Context, opts app.ResolveOptions) error
	Packages(ctx context.Context, opts app.PackagesOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tally",
		Short:         "Compare baseline and selected building costs across cities and regions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logJSON, _ := cmd.Flags().GetBool("log-json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.app.ConfigureLogging(app.LogOptions{JSON: logJSON, Verbose: verbose})
	}

	rootCmd.AddCommand(c.newCalcCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newPackagesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("catalog", "", "Catalog file (default: built-in)")
	cmd.Flags().String("geography", "", "Geography file (default: built-in)")
	cmd.Flags().String("versions", "", "Versions file (default: built-in)")
}

func sourceOptions(cmd *cobra.Command) app.SourceOptions {
	catalog, _ := cmd.Flags().GetString("catalog")
	geography, _ := cmd.Flags().GetString("geography")
	versions, _ := cmd.Flags().GetString("versions")
	return app.SourceOptions{
		CatalogPath:   catalog,
		GeographyPath: geography,
		VersionsPath:  versions,
	}
}
