package controller

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

// SimpleUI implements UI with plain text written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing to dismiss.
func (s *SimpleUI) Wait() {}

// DisplayEstimation prints documents and annotations per input file.
func (s *SimpleUI) DisplayEstimation(documents []m.Document, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	stats := fileStats(documents)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Documents", "Annotations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	annotations := 0

	for _, f := range stats {
		table.Append([]string{f.path, fmt.Sprintf("%d", f.documents), fmt.Sprintf("%d", f.annotations)})
		annotations += f.annotations
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(stats)),
		fmt.Sprintf("%d", len(documents)),
		fmt.Sprintf("%d", annotations),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayConcurrencyInfo prints the worker setup.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, count int) {
	s.printf("Converting %d document(s) with %d worker(s)\n", count, threads)
}

// DisplayStartingDocument is silent; completion lines carry the same ids.
func (s *SimpleUI) DisplayStartingDocument(_ m.Document) {}

// DisplayCompletedDocument prints one line per document.
func (s *SimpleUI) DisplayCompletedDocument(result m.Result) {
	doc := result.Document

	if result.Status == m.Failed {
		s.printf("[%s] text %s (%s): %v\n", result.Status, doc.TextID, doc.AnnotatorID, result.Err)
		return
	}

	s.printf("[%s] text %s (%s): %d edit(s), %d rejected, %d token(s)\n",
		result.Status, doc.TextID, doc.AnnotatorID,
		result.Record.Applied, len(result.Record.Rejected), len(result.Record.Labels))
}

// DisplaySummary prints the per-document table of a run.
func (s *SimpleUI) DisplaySummary(summary m.RunSummary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Text", "Annotator", "Status", "Edits", "Rejected", "Tokens"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	converted, failed := 0, 0

	for _, d := range summary.Documents {
		table.Append([]string{
			d.TextID, d.AnnotatorID, string(d.Status),
			fmt.Sprintf("%d", d.Edits), fmt.Sprintf("%d", d.Rejected), fmt.Sprintf("%d", d.Tokens),
		})

		if d.Status == m.Failed {
			failed++
		} else {
			converted++
		}
	}

	table.Render()
	s.printf("\nRun %s (%s alignment, %s tokenizer)\n%s", summary.RunID, summary.Alignment, summary.Tokenizer, tableBuffer.String())
	s.printf("%d converted, %d failed", converted, failed)

	if summary.Output != "" {
		s.printf(", records in %s", summary.Output)
	}

	s.printf("\n")

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

type fileStat struct {
	path        string
	documents   int
	annotations int
}

// fileStats groups documents by source file, sorted by path.
func fileStats(documents []m.Document) []fileStat {
	byPath := make(map[string]*fileStat)

	for _, doc := range documents {
		path := string(doc.Source)

		st, ok := byPath[path]
		if !ok {
			st = &fileStat{path: path}
			byPath[path] = st
		}

		st.documents++
		st.annotations += len(doc.Annotations)
	}

	out := make([]fileStat, 0, len(byPath))
	for _, st := range byPath {
		out = append(out, *st)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })

	return out
}
