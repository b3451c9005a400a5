package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tally/internal/app"
)

func (c *CLI) newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <version>",
		Short: "Compare existing and selected costs of a version",
		Long: "Compare existing and selected costs of a version for the group, " +
			"every region and every city. Without --package every catalog package is active.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packages, _ := cmd.Flags().GetStringSlice("package")
			mode, _ := cmd.Flags().GetString("mode")
			output, _ := cmd.Flags().GetString("output")
			trace, _ := cmd.Flags().GetString("trace")
			parallelism, _ := cmd.Flags().GetInt("parallelism")

			return c.app.Calculate(cmd.Context(), app.CalcOptions{
				SourceOptions: sourceOptions(cmd),
				VersionID:     args[0],
				Packages:      packages,
				Mode:          mode,
				Output:        output,
				Trace:         trace,
				Parallelism:   parallelism,
				Out:           cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringSliceP("package", "p", nil, "Active package id (repeatable)")
	cmd.Flags().StringP("mode", "m", "", "Rollup mode: weighted or summed")
	cmd.Flags().StringP("output", "o", "", "Output format: text, json or yaml")
	cmd.Flags().String("trace", "", "Tracer: none, otel or progrock")
	cmd.Flags().IntP("parallelism", "j", 0, "Cities computed concurrently (default: number of CPUs)")
	addSourceFlags(cmd)
	return cmd
}
