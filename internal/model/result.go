package model

// Status is the outcome of converting one document.
type Status string

// Available Status values.
const (
	Converted Status = "converted"
	Failed    Status = "failed"
)

// Result holds the outcome of converting one document.
type Result struct {
	Document Document
	Record   Record
	Status   Status
	Err      error
}

// RunSummary is the persisted summary of one conversion run.
type RunSummary struct {
	RunID     string          `yaml:"run_id"`
	Alignment Alignment       `yaml:"alignment"`
	Tokenizer string          `yaml:"tokenizer"`
	Output    Path            `yaml:"output"`
	Documents []DocumentEntry `yaml:"documents"`
}

// DocumentEntry is the per-document line of a RunSummary.
type DocumentEntry struct {
	TextID      string            `yaml:"text_id"`
	AnnotatorID string            `yaml:"annotator_id"`
	Status      Status            `yaml:"status"`
	Error       string            `yaml:"error,omitempty"`
	Edits       int               `yaml:"edits"`
	Rejected    int               `yaml:"rejected"`
	Tokens      int               `yaml:"tokens"`
	ErrorCounts map[ErrorKind]int `yaml:"error_counts,omitempty"`
}

// Format is the on-disk encoding of converted records.
type Format string

// Available Format values.
const (
	FormatJSONL   Format = "jsonl"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

// Formats lists every supported Format.
func Formats() []Format {
	return []Format{FormatJSONL, FormatJSON, FormatParquet}
}

// Valid reports whether f is a supported Format.
func (f Format) Valid() bool {
	switch f {
	case FormatJSONL, FormatJSON, FormatParquet:
		return true
	default:
		return false
	}
}
