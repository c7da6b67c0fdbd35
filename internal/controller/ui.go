// Package controller renders workflow progress and results, either as plain
// text or as an interactive terminal UI.
package controller

import (
	m "github.com/mouse-blink/punctnorm/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeConvert
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeConvert}

	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// WithEstimateMode sets the UI to listing mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithConvertMode sets the UI to conversion mode.
func WithConvertMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeConvert
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// UI displays workflow progress. Display methods may be called from several
// workers at once.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayEstimation(documents []m.Document, err error) error
	DisplayConcurrencyInfo(threads int, count int)
	DisplayStartingDocument(doc m.Document)
	DisplayCompletedDocument(result m.Result)
	DisplaySummary(summary m.RunSummary) error
}
