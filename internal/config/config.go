// Package config loads punctnorm settings from an optional YAML file, the
// environment and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/mouse-blink/punctnorm/internal/domain/tokenizers"
	m "github.com/mouse-blink/punctnorm/internal/model"
)

// Setting keys. Flags bound to viper use the same names.
const (
	KeyAlignment = "alignment"
	KeyTokenizer = "tokenizer"
	KeyWorkers   = "workers"
	KeyClean     = "clean"
	KeyFormat    = "format"
	KeyOutput    = "output"
	KeyReports   = "reports"
	KeyExclude   = "exclude"
)

// EnvPrefix prefixes environment overrides, e.g. PUNCTNORM_WORKERS=8.
const EnvPrefix = "PUNCTNORM"

// Config holds every setting of a run.
type Config struct {
	Alignment string   `mapstructure:"alignment"`
	Tokenizer string   `mapstructure:"tokenizer"`
	Workers   int      `mapstructure:"workers"`
	Clean     bool     `mapstructure:"clean"`
	Format    string   `mapstructure:"format"`
	Output    string   `mapstructure:"output"`
	Reports   string   `mapstructure:"reports"`
	Exclude   []string `mapstructure:"exclude"`
}

// New returns a viper instance with defaults and environment overrides set.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyAlignment, string(m.AlignExpand))
	v.SetDefault(KeyTokenizer, tokenizers.NameWordPunct)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyClean, false)
	v.SetDefault(KeyFormat, string(m.FormatJSONL))
	v.SetDefault(KeyOutput, "dataset.jsonl")
	v.SetDefault(KeyReports, ".punctnorm-reports")
	v.SetDefault(KeyExclude, []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads file, or punctnorm.yaml from the working directory or
// $HOME/.config/punctnorm when file is empty, and decodes the result. A
// missing default file is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("punctnorm")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "punctnorm"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	return cfg, cfg.Validate()
}

// Validate rejects unknown enum values and negative worker counts.
func (c Config) Validate() error {
	switch m.Alignment(c.Alignment) {
	case m.AlignExpand, m.AlignContract, m.AlignStrict:
	default:
		return errors.Errorf("unknown alignment %q (want expand, contract or strict)", c.Alignment)
	}

	if _, err := tokenizers.New(c.Tokenizer); err != nil {
		return errors.Wrap(err, "config")
	}

	if !m.Format(c.Format).Valid() {
		return errors.Errorf("unknown format %q (want one of %v)", c.Format, m.Formats())
	}

	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}

	if c.Output == "" {
		return errors.New("output path is empty")
	}

	return nil
}
