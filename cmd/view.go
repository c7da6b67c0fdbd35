package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/punctnorm/internal/domain"
	m "github.com/mouse-blink/punctnorm/internal/model"
)

var viewRunFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previous conversion run",
		Long:  "View the summary of a previous conversion run from the reports directory. Without --run the latest run is shown.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			return workflow.View(domain.ViewArgs{Reports: m.Path(cfg.Reports), RunID: viewRunFlag})
		},
	}
	cmd.Flags().StringVar(&viewRunFlag, "run", "", "run id to show (default latest)")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
