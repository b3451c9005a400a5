package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tally/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <version>",
		Short: "Show replaced comparisons and the option pairs of a version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packages, _ := cmd.Flags().GetStringSlice("package")
			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				SourceOptions: sourceOptions(cmd),
				VersionID:     args[0],
				Packages:      packages,
				Out:           cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringSliceP("package", "p", nil, "Active package id (repeatable)")
	addSourceFlags(cmd)
	return cmd
}
