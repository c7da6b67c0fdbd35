package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"k8s.io/klog/v2"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	input   io.Reader
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the selected mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	var model tea.Model
	if cfg.mode == ModeEstimate {
		model = newEstimateModel()
	} else {
		model = newConvertModel()
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output)}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	t.mu.Lock()
	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	program, done := t.program, t.done
	t.mu.Unlock()

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			klog.ErrorS(err, "Terminal UI stopped")
		}
	}()

	return nil
}

// Close stops the program and waits for it to restore the terminal.
func (t *TUI) Close() {
	program, done := t.current()
	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user leaves the program.
func (t *TUI) Wait() {
	if _, done := t.current(); done != nil {
		<-done
	}
}

// DisplayEstimation sends the document listing to the program.
func (t *TUI) DisplayEstimation(documents []m.Document, err error) error {
	msg := estimationMsg{err: err}

	if err == nil {
		for _, f := range fileStats(documents) {
			msg.files = append(msg.files, fileItem{path: f.path, documents: f.documents, annotations: f.annotations})
			msg.annotations += f.annotations
		}

		msg.documents = len(documents)
	}

	t.send(msg)

	return err
}

// DisplayConcurrencyInfo sends the worker setup.
func (t *TUI) DisplayConcurrencyInfo(threads int, count int) {
	t.send(concurrencyMsg{threads: threads, count: count})
}

// DisplayStartingDocument marks a document as in progress.
func (t *TUI) DisplayStartingDocument(doc m.Document) {
	t.send(startDocumentMsg{key: documentKey(doc)})
}

// DisplayCompletedDocument records a finished document.
func (t *TUI) DisplayCompletedDocument(result m.Result) {
	t.send(completedDocumentMsg{item: resultItem(result)})
}

// DisplaySummary shows the final run summary.
func (t *TUI) DisplaySummary(summary m.RunSummary) error {
	t.send(summaryMsg{summary: summary})

	return nil
}

func (t *TUI) current() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

func (t *TUI) send(msg tea.Msg) {
	if program, _ := t.current(); program != nil {
		program.Send(msg)
	}
}
