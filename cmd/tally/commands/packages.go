package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tally/internal/app"
)

func (c *CLI) newPackagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List catalog packages and their comparisons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Packages(cmd.Context(), app.PackagesOptions{
				SourceOptions: sourceOptions(cmd),
				Out:           cmd.OutOrStdout(),
			})
		},
	}
	addSourceFlags(cmd)
	return cmd
}
