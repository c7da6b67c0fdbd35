package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/punctnorm/internal/domain"
	m "github.com/mouse-blink/punctnorm/internal/model"
)

var convertShardFlag string

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

const convertLongDescription = `Convert annotation files into a training dataset.

Each document has its annotated punctuation errors fixed in place, then the
corrected text is tokenized and labelled. Documents that fail are reported
and left out of the dataset. A run summary is written to the reports
directory for later inspection with "punctnorm view".`

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert annotation files into a labelled dataset",
		Long:  convertLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			shardIndex, totalShards := parseShardFlag(convertShardFlag)

			return workflow.Convert(cmd.Context(), domain.ConvertArgs{
				EstimateArgs: domain.EstimateArgs{
					Paths:   parsePaths(args),
					Exclude: cfg.Exclude,
				},
				Output:          m.Path(cfg.Output),
				Format:          m.Format(cfg.Format),
				Reports:         m.Path(cfg.Reports),
				Threads:         cfg.Workers,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
			})
		},
	}
	cmd.Flags().IntP("parallel", "p", 0, "number of parallel workers (0 uses every CPU)")
	cmd.Flags().StringVarP(&convertShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().StringArrayP("exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringP("output", "o", "dataset.jsonl", "dataset file to write")
	cmd.Flags().StringP("format", "f", string(m.FormatJSONL), fmt.Sprintf("dataset format, one of %v", m.Formats()))
	cmd.Flags().Bool("clean", false, "strip titles and markup from corrected text")
	cmd.Flags().StringP("alignment", "a", string(m.AlignExpand), "span alignment: expand, contract or strict")
	cmd.Flags().StringP("tokenizer", "t", "wordpunct", "tokenizer: wordpunct or uax29")

	return cmd
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
