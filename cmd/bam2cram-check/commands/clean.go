package commands

import (
	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/bam2cram-check/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <data files...>",
		Short: "Remove cached stats reports that are older than their data file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				Overrides: overrides(cmd),
				Files:     args,
				Force:     force,
			})
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Remove the stats reports even when they are up to date")

	return cmd
}
