package adapter

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

// RecordStore persists converted records.
type RecordStore interface {
	Save(path m.Path, format m.Format, records []m.Record) error
}

// LocalRecordStore writes records to a local file. The output is guarded by
// a sibling ".lock" file so two runs never interleave writes.
type LocalRecordStore struct{}

// NewLocalRecordStore constructs a LocalRecordStore.
func NewLocalRecordStore() *LocalRecordStore {
	return &LocalRecordStore{}
}

// parquetRecord is the flat row layout of the parquet output.
type parquetRecord struct {
	TextID        string          `parquet:"text_id"`
	AnnotatorID   string          `parquet:"annotator_id"`
	Title         string          `parquet:"title"`
	CorrectedText string          `parquet:"corrected_text"`
	Entities      []parquetEntity `parquet:"entities,list"`
	Labels        []string        `parquet:"labels,list"`

	OriginalText     string          `parquet:"original_text"`
	OriginalEntities []parquetEntity `parquet:"original_entities,list"`
	OriginalLabels   []string        `parquet:"original_labels,list"`
}

type parquetEntity struct {
	Start int64  `parquet:"start"`
	End   int64  `parquet:"end"`
	Kind  string `parquet:"kind"`
}

// Save writes records to path in format, replacing any previous file.
func (s *LocalRecordStore) Save(path m.Path, format m.Format, records []m.Record) error {
	if !format.Valid() {
		return errors.Errorf("unsupported output format %q", format)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create output directory %s", dir)
		}
	}

	lock := flock.New(string(path) + ".lock")

	locked, err := lock.TryLock()
	if err != nil {
		return errors.Wrapf(err, "lock %s", path)
	}

	if !locked {
		return errors.Errorf("output %s is locked by another run", path)
	}

	// The lock file stays on disk: removing it would let another run lock
	// the unlinked inode while a third creates a fresh file.
	defer func() { _ = lock.Unlock() }()

	switch format {
	case m.FormatParquet:
		err = writeParquet(string(path), records)
	case m.FormatJSON:
		err = writeJSON(string(path), records)
	default:
		err = writeJSONL(string(path), records)
	}

	if err != nil {
		return err
	}

	klog.V(1).InfoS("Saved records", "path", path, "format", format, "records", len(records))

	return nil
}

func writeJSONL(path string, records []m.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			_ = f.Close()
			return errors.Wrapf(err, "encode record %s", r.TextID)
		}
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "write %s", path)
	}

	return errors.Wrapf(f.Close(), "close %s", path)
}

func writeJSON(path string, records []m.Record) error {
	if records == nil {
		records = []m.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode records")
	}

	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}

func writeParquet(path string, records []m.Record) error {
	rows := make([]parquetRecord, len(records))

	for i, r := range records {
		rows[i] = toParquet(r)
	}

	return errors.Wrapf(parquet.WriteFile(path, rows), "write %s", path)
}

func toParquet(r m.Record) parquetRecord {
	return parquetRecord{
		TextID:           r.TextID,
		AnnotatorID:      r.AnnotatorID,
		Title:            r.Title,
		CorrectedText:    r.CorrectedText,
		Entities:         toParquetEntities(r.Entities),
		Labels:           toParquetLabels(r.Labels),
		OriginalText:     r.OriginalText,
		OriginalEntities: toParquetEntities(r.OriginalEntities),
		OriginalLabels:   toParquetLabels(r.OriginalLabels),
	}
}

func toParquetEntities(spans []m.Span) []parquetEntity {
	out := make([]parquetEntity, len(spans))

	for i, e := range spans {
		out[i] = parquetEntity{Start: int64(e.Start), End: int64(e.End), Kind: string(e.Kind)}
	}

	return out
}

func toParquetLabels(labels []m.Label) []string {
	out := make([]string, len(labels))

	for i, l := range labels {
		out[i] = string(l)
	}

	return out
}
