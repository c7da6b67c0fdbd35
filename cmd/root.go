// Package cmd provides the root command and CLI setup for punctnorm.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/mouse-blink/punctnorm/internal/adapter"
	"github.com/mouse-blink/punctnorm/internal/config"
	"github.com/mouse-blink/punctnorm/internal/controller"
	"github.com/mouse-blink/punctnorm/internal/domain"
	"github.com/mouse-blink/punctnorm/internal/domain/tokenizers"
	m "github.com/mouse-blink/punctnorm/internal/model"
)

// workflow is built lazily from the loaded config. Tests replace it with a mock.
var workflow domain.Workflow

// exitCanceled is the conventional status for a run stopped by SIGINT.
const exitCanceled = 130

var configFileFlag string
var reportsDirFlag string

// flagKeys maps config keys to the flag names that override them.
var flagKeys = map[string]string{
	config.KeyAlignment: "alignment",
	config.KeyTokenizer: "tokenizer",
	config.KeyWorkers:   "parallel",
	config.KeyClean:     "clean",
	config.KeyFormat:    "format",
	config.KeyOutput:    "output",
	config.KeyReports:   "reports",
	config.KeyExclude:   "exclude",
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `punctnorm turns crowd-annotated punctuation errors into corrected text
and token-aligned labels for training punctuation restoration models.

Annotation files are JSONL exports, one document per line. Paths accept
Go-style patterns:
  - ./...            recursively scan current directory
  - ./exports/...    recursively scan exports directory
  - a.jsonl b.jsonl  read individual files

Settings are read from punctnorm.yaml (working directory or
$HOME/.config/punctnorm), then PUNCTNORM_* environment variables, then flags.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "punctnorm",
		Short:        "Punctuation normalization for annotated corpora",
		Long:         rootLongDescription,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&configFileFlag, "config", "", "config file (default punctnorm.yaml in . or $HOME/.config/punctnorm)")
	cmd.PersistentFlags().StringVar(&reportsDirFlag, "reports", ".punctnorm-reports", "directory holding run summaries")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)

	stop()
	klog.Flush()

	if err == nil {
		return
	}

	if domain.IsCanceled(err) {
		fmt.Fprintln(os.Stderr, "punctnorm: canceled, no records were written")
		os.Exit(exitCanceled)
	}

	os.Exit(1)
}

// loadConfig resolves settings for cmd, letting its changed flags win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := config.New()
	if err := bindFlags(v, cmd); err != nil {
		return config.Config{}, err
	}

	return config.Load(v, configFileFlag)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, name := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

// setup loads config and builds the workflow unless one is already set.
func setup(cmd *cobra.Command) (config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, err
	}

	if workflow != nil {
		return cfg, nil
	}

	wf, err := newWorkflow(cmd, cfg)
	if err != nil {
		return config.Config{}, err
	}

	workflow = wf

	return cfg, nil
}

func newWorkflow(cmd *cobra.Command, cfg config.Config) (domain.Workflow, error) {
	tok, err := tokenizers.New(cfg.Tokenizer)
	if err != nil {
		return nil, err
	}

	alignment := m.Alignment(cfg.Alignment)
	converter := domain.NewConverter(tok, domain.ConverterOptions{
		Alignment: alignment,
		Clean:     cfg.Clean,
	})

	return domain.NewWorkflow(
		adapter.NewLocalDocumentSource(),
		adapter.NewLocalRecordStore(),
		adapter.NewLocalReportStore(),
		controller.NewUI(cmd.Root(), controller.IsTTY(os.Stdout)),
		converter,
		domain.WorkflowOptions{Alignment: alignment, Tokenizer: tok.Name()},
	), nil
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
