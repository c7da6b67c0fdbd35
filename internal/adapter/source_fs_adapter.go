// Package adapter contains the filesystem adapters used by the punctnorm
// workflow: annotation loading, record output and run reports.
package adapter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
	"k8s.io/klog/v2"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

// maxLineSize bounds a single JSONL record; essays fit well below it.
const maxLineSize = 16 << 20

// DocumentSource loads annotated documents from the given roots.
type DocumentSource interface {
	Load(roots []m.Path) ([]m.Document, error)
}

// LocalDocumentSource reads annotation-tool JSONL exports from disk. A root
// may be a file, a directory, or a directory followed by "/..." to descend
// into subdirectories.
type LocalDocumentSource struct{}

// NewLocalDocumentSource constructs a LocalDocumentSource.
func NewLocalDocumentSource() *LocalDocumentSource {
	return &LocalDocumentSource{}
}

// Load returns every document found under roots, in file then line order.
// A file reached through several roots is read once.
func (a *LocalDocumentSource) Load(roots []m.Path) ([]m.Document, error) {
	seen := make(map[string]struct{})

	var docs []m.Document

	add := func(path string) error {
		if _, ok := seen[path]; ok {
			return nil
		}

		seen[path] = struct{}{}

		loaded, err := a.ReadFile(m.Path(path))
		if err != nil {
			return err
		}

		docs = append(docs, loaded...)

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(rootPath)
		if err != nil {
			return nil, errors.Wrapf(err, "root path %s", root)
		}

		if !info.IsDir() {
			if err := add(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = walk(rootPath, recursive, func(path string) error {
			if filepath.Ext(path) != ".jsonl" {
				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return docs, nil
}

// ReadFile parses one JSONL export. Blank lines are skipped.
func (a *LocalDocumentSource) ReadFile(path m.Path) ([]m.Document, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	defer func() {
		_ = f.Close()
	}()

	annotator := annotatorFromPath(string(path))
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var docs []m.Document

	for line := 1; scanner.Scan(); line++ {
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		doc, err := decodeDocument(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, line)
		}

		if doc.AnnotatorID == "" {
			doc.AnnotatorID = annotator
		}

		doc.Source = path

		if !norm.NFC.IsNormalString(doc.RawText) {
			klog.Warningf("%s:%d: text %s is not NFC normalized; offsets are used as given", path, line, doc.TextID)
		}

		docs = append(docs, doc)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	klog.V(2).InfoS("Loaded annotations", "file", path, "documents", len(docs))

	return docs, nil
}

// exportLine accepts both the annotation-tool export
// ({"id", "text", "label": [[start, end, label], ...]}) and the native
// document layout.
type exportLine struct {
	ID          json.RawMessage `json:"id"`
	Text        string          `json:"text"`
	Label       []labelTriple   `json:"label"`
	TextID      json.RawMessage `json:"text_id"`
	RawText     string          `json:"raw_text"`
	Annotations []m.Annotation  `json:"annotations"`
	AnnotatorID string          `json:"annotator_id"`
}

type labelTriple m.Annotation

func (l *labelTriple) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}

	if len(parts) != 3 {
		return errors.Errorf("label triple has %d elements", len(parts))
	}

	if err := json.Unmarshal(parts[0], &l.Start); err != nil {
		return errors.Wrap(err, "label start")
	}

	if err := json.Unmarshal(parts[1], &l.End); err != nil {
		return errors.Wrap(err, "label end")
	}

	return errors.Wrap(json.Unmarshal(parts[2], &l.Label), "label name")
}

func decodeDocument(raw []byte) (m.Document, error) {
	var line exportLine
	if err := json.Unmarshal(raw, &line); err != nil {
		return m.Document{}, errors.Wrap(err, "decode")
	}

	doc := m.Document{
		TextID:      rawID(line.TextID),
		AnnotatorID: line.AnnotatorID,
		RawText:     line.RawText,
		Annotations: line.Annotations,
	}

	if doc.TextID == "" {
		doc.TextID = rawID(line.ID)
	}

	if doc.RawText == "" {
		doc.RawText = line.Text
	}

	for _, l := range line.Label {
		doc.Annotations = append(doc.Annotations, m.Annotation(l))
	}

	if doc.TextID == "" {
		return m.Document{}, errors.New("missing text id")
	}

	return doc, nil
}

// rawID renders a JSON number or string id as text.
func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}

func annotatorFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func walk(root string, recursive bool, fn func(path string) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if !recursive && path != root {
				return filepath.SkipDir
			}

			return nil
		}

		return fn(path)
	})
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, errors.Wrap(err, "home directory")
		}

		rootStr = filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(rootStr, "~"), string(os.PathSeparator)))
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, errors.Wrapf(err, "resolve %s", root)
	}

	return abs, recursive, nil
}

func parseRootPath(root string) (string, bool) {
	if rest, ok := strings.CutSuffix(root, "/..."); ok {
		return rest, true
	}

	return root, false
}
