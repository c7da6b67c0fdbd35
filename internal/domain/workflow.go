package domain

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/mouse-blink/punctnorm/internal/adapter"
	"github.com/mouse-blink/punctnorm/internal/controller"
	m "github.com/mouse-blink/punctnorm/internal/model"
)

// EstimateArgs selects the annotation files to read. Exclude holds regular
// expressions matched against each document's source path.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
}

// ConvertArgs configures a conversion run.
type ConvertArgs struct {
	EstimateArgs
	Output          m.Path
	Format          m.Format
	Reports         m.Path
	Threads         int
	ShardIndex      int
	TotalShardCount int
}

// ViewArgs selects a saved run summary. An empty RunID means the latest run.
type ViewArgs struct {
	Reports m.Path
	RunID   string
}

// Workflow is the batch surface used by the CLI.
type Workflow interface {
	Estimate(args EstimateArgs) error
	Convert(ctx context.Context, args ConvertArgs) error
	View(args ViewArgs) error
}

// WorkflowOptions names the conversion settings recorded in run summaries.
type WorkflowOptions struct {
	Alignment m.Alignment
	Tokenizer string
}

type workflow struct {
	source    adapter.DocumentSource
	records   adapter.RecordStore
	reports   adapter.ReportStore
	ui        controller.UI
	converter Converter
	opts      WorkflowOptions
	newRunID  func() string
}

// NewWorkflow creates a Workflow over the given adapters.
func NewWorkflow(
	source adapter.DocumentSource,
	records adapter.RecordStore,
	reports adapter.ReportStore,
	ui controller.UI,
	converter Converter,
	opts WorkflowOptions,
) Workflow {
	return &workflow{
		source:    source,
		records:   records,
		reports:   reports,
		ui:        ui,
		converter: converter,
		opts:      opts,
		newRunID:  func() string { return uuid.NewString() },
	}
}

func (w *workflow) Estimate(args EstimateArgs) error {
	if err := w.ui.Start(controller.WithEstimateMode()); err != nil {
		return err
	}

	defer w.ui.Close()

	docs, err := w.load(args)
	if err := w.ui.DisplayEstimation(docs, err); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) View(args ViewArgs) error {
	summary, err := w.reports.Load(args.Reports, args.RunID)
	if err != nil {
		return fmt.Errorf("load run summary: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return err
	}

	defer w.ui.Close()

	if err := w.ui.DisplaySummary(summary); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// Convert runs every document through the converter on a bounded pool.
// A failing document is reported and skipped; it never stops its siblings.
func (w *workflow) Convert(ctx context.Context, args ConvertArgs) error {
	docs, err := w.load(args.EstimateArgs)
	if err != nil {
		return err
	}

	docs = shardDocuments(docs, args.ShardIndex, args.TotalShardCount)

	threads := args.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	runID := w.newRunID()
	klog.InfoS("Starting conversion", "run", runID, "documents", len(docs), "workers", threads)

	if err := w.ui.Start(controller.WithConvertMode()); err != nil {
		return err
	}

	defer w.ui.Close()

	w.ui.DisplayConcurrencyInfo(threads, len(docs))

	results := make([]m.Result, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, doc := range docs {
		if gctx.Err() != nil {
			break
		}

		i, doc := i, doc

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			w.ui.DisplayStartingDocument(doc)
			results[i] = w.convertOne(doc)
			w.ui.DisplayCompletedDocument(results[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	records := make([]m.Record, 0, len(results))

	for _, r := range results {
		if r.Status == m.Converted {
			records = append(records, r.Record)
		}
	}

	if err := w.records.Save(args.Output, args.Format, records); err != nil {
		return fmt.Errorf("save records: %w", err)
	}

	summary := w.summarize(runID, args.Output, results)

	if err := w.reports.Save(args.Reports, summary); err != nil {
		return fmt.Errorf("save run summary: %w", err)
	}

	klog.InfoS("Conversion finished", "run", runID, "converted", len(records), "failed", len(results)-len(records))

	if err := w.ui.DisplaySummary(summary); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) load(args EstimateArgs) ([]m.Document, error) {
	docs, err := w.source.Load(args.Paths)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	return excludeDocuments(docs, args.Exclude)
}

func (w *workflow) convertOne(doc m.Document) m.Result {
	record, err := w.converter.Convert(doc)
	if err != nil {
		klog.ErrorS(err, "Document failed", "text", doc.TextID, "annotator", doc.AnnotatorID)

		return m.Result{Document: doc, Status: m.Failed, Err: err}
	}

	klog.V(1).InfoS("Document converted", "text", doc.TextID, "annotator", doc.AnnotatorID,
		"applied", record.Applied, "rejected", len(record.Rejected))

	return m.Result{Document: doc, Record: record, Status: m.Converted}
}

func (w *workflow) summarize(runID string, output m.Path, results []m.Result) m.RunSummary {
	summary := m.RunSummary{
		RunID:     runID,
		Alignment: w.opts.Alignment,
		Tokenizer: w.opts.Tokenizer,
		Output:    output,
		Documents: make([]m.DocumentEntry, 0, len(results)),
	}

	for _, r := range results {
		entry := m.DocumentEntry{
			TextID:      r.Document.TextID,
			AnnotatorID: r.Document.AnnotatorID,
			Status:      r.Status,
			Edits:       r.Record.Applied,
			Rejected:    len(r.Record.Rejected),
			Tokens:      len(r.Record.Labels),
			ErrorCounts: r.Record.ErrorCounts,
		}

		if r.Err != nil {
			entry.Error = r.Err.Error()
		}

		summary.Documents = append(summary.Documents, entry)
	}

	return summary
}

// IsCanceled reports whether err comes from a canceled run.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
