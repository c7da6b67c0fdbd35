package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/punctnorm/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

const listLongDescription = `List annotation files with their document and annotation counts.

Nothing is converted; use this to check which files a convert run would read.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List annotation files and document counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			return workflow.Estimate(domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: cfg.Exclude,
			})
		},
	}
	cmd.Flags().StringArrayP("exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
