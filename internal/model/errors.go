package model

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	// ErrRange: the supplied span is malformed for the text it targets.
	ErrRange = errors.New("range error")
	// ErrUnresolvableSpan: no token-aligned span exists even after fallback.
	ErrUnresolvableSpan = errors.New("unresolvable span")
	// ErrBounds: a buffer access fell outside the buffer.
	ErrBounds = errors.New("bounds error")
	// ErrLeadingPunctuation: the text starts with a punctuation token.
	ErrLeadingPunctuation = errors.New("leading punctuation")
	// ErrLabelLength: two label sequences cannot be compared.
	ErrLabelLength = errors.New("label length mismatch")
)

// RangeError reports a malformed input span. It rejects a single annotation.
type RangeError struct {
	Start, End, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range error: [%d, %d) outside text of length %d", e.Start, e.End, e.Len)
}

// Is matches ErrRange.
func (e *RangeError) Is(target error) bool { return target == ErrRange }

// UnresolvableSpanError reports a span the tokenizer cannot align.
// It signals a text/annotation mismatch and rejects a single annotation.
type UnresolvableSpanError struct {
	Start, End int
}

func (e *UnresolvableSpanError) Error() string {
	return fmt.Sprintf("unresolvable span: no token covers [%d, %d)", e.Start, e.End)
}

// Is matches ErrUnresolvableSpan.
func (e *UnresolvableSpanError) Is(target error) bool { return target == ErrUnresolvableSpan }

// BoundsError reports a buffer access outside [0, Len).
// It aborts the whole document.
type BoundsError struct {
	Op    string
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bounds error: %s at %d in buffer of length %d", e.Op, e.Index, e.Len)
}

// Is matches ErrBounds.
func (e *BoundsError) Is(target error) bool { return target == ErrBounds }

// LeadingPunctuationError reports text whose first token is punctuation.
type LeadingPunctuationError struct {
	Token string
}

func (e *LeadingPunctuationError) Error() string {
	return fmt.Sprintf("text can't start with punctuation %q", e.Token)
}

// Is matches ErrLeadingPunctuation.
func (e *LeadingPunctuationError) Is(target error) bool { return target == ErrLeadingPunctuation }

// LabelLengthError reports two label sequences of different length.
type LabelLengthError struct {
	Left, Right int
}

func (e *LabelLengthError) Error() string {
	return fmt.Sprintf("label sequences differ in length: %d vs %d", e.Left, e.Right)
}

// Is matches ErrLabelLength.
func (e *LabelLengthError) Is(target error) bool { return target == ErrLabelLength }

// IsDocumentFatal reports whether err must abort the whole document
// rather than reject a single annotation. Only range and alignment failures
// stay local to one annotation.
func IsDocumentFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrRange) && !errors.Is(err, ErrUnresolvableSpan)
}
