package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "expand", cfg.Alignment)
	assert.Equal(t, "wordpunct", cfg.Tokenizer)
	assert.Equal(t, "jsonl", cfg.Format)
	assert.Equal(t, "dataset.jsonl", cfg.Output)
	assert.Equal(t, ".punctnorm-reports", cfg.Reports)
	assert.Zero(t, cfg.Workers)
	assert.False(t, cfg.Clean)
	assert.Empty(t, cfg.Exclude)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
alignment: contract
tokenizer: uax29
workers: 4
clean: true
format: parquet
output: out/data.parquet
exclude:
  - draft
`), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "contract", cfg.Alignment)
	assert.Equal(t, "uax29", cfg.Tokenizer)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Clean)
	assert.Equal(t, "parquet", cfg.Format)
	assert.Equal(t, "out/data.parquet", cfg.Output)
	assert.Equal(t, []string{"draft"}, cfg.Exclude)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "punctnorm.yaml"), []byte("workers: 3\n"), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PUNCTNORM_ALIGNMENT", "strict")
	t.Setenv("PUNCTNORM_WORKERS", "8")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.Alignment)
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Alignment: "expand", Tokenizer: "wordpunct", Format: "json", Output: "x.json"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"alignment", func(c *Config) { c.Alignment = "loose" }, "unknown alignment"},
		{"tokenizer", func(c *Config) { c.Tokenizer = "spacy" }, "unsupported tokenizer"},
		{"format", func(c *Config) { c.Format = "csv" }, `unknown format "csv" (want one of [jsonl json parquet])`},
		{"workers", func(c *Config) { c.Workers = -1 }, "workers must not be negative"},
		{"output", func(c *Config) { c.Output = "" }, "output path is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			require.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}
