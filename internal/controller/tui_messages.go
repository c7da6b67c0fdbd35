package controller

import (
	"fmt"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

// Message types.
type estimationMsg struct {
	files       []fileItem
	documents   int
	annotations int
	err         error
}

type concurrencyMsg struct {
	threads int
	count   int
}

type startDocumentMsg struct {
	key string
}

type completedDocumentMsg struct {
	item documentItem
}

type summaryMsg struct {
	summary m.RunSummary
}

// List item types.
type fileItem struct {
	path        string
	documents   int
	annotations int
}

func (f fileItem) FilterValue() string {
	return f.path
}

type documentItem struct {
	key      string
	status   m.Status
	edits    int
	rejected int
	tokens   int
	err      string
}

func (d documentItem) FilterValue() string {
	return d.key + " " + string(d.status)
}

func documentKey(doc m.Document) string {
	return fmt.Sprintf("%s/%s", doc.TextID, doc.AnnotatorID)
}

func resultItem(result m.Result) documentItem {
	item := documentItem{
		key:      documentKey(result.Document),
		status:   result.Status,
		edits:    result.Record.Applied,
		rejected: len(result.Record.Rejected),
		tokens:   len(result.Record.Labels),
	}

	if result.Err != nil {
		item.err = result.Err.Error()
	}

	return item
}

func entryItem(e m.DocumentEntry) documentItem {
	return documentItem{
		key:      fmt.Sprintf("%s/%s", e.TextID, e.AnnotatorID),
		status:   e.Status,
		edits:    e.Edits,
		rejected: e.Rejected,
		tokens:   e.Tokens,
		err:      e.Error,
	}
}
