package domain

import m "github.com/mouse-blink/punctnorm/internal/model"

// Admit reports whether candidate can join accepted without overlapping any
// accepted span. Every pair is compared because accepted is kept in
// insertion order, not sorted.
func Admit(candidate m.Span, accepted []m.Span) bool {
	for _, e := range accepted {
		if e.Overlaps(candidate) {
			return false
		}
	}

	return true
}

// EntityList is an append-only list of pairwise non-overlapping spans.
type EntityList struct {
	spans []m.Span
}

// Add appends span if Admit allows it and reports whether it did.
func (l *EntityList) Add(span m.Span) bool {
	if !Admit(span, l.spans) {
		return false
	}

	l.spans = append(l.spans, span)

	return true
}

// Len returns the number of accepted spans.
func (l *EntityList) Len() int {
	return len(l.spans)
}

// Spans returns a copy of the accepted spans in insertion order.
func (l *EntityList) Spans() []m.Span {
	out := make([]m.Span, len(l.spans))
	copy(out, l.spans)

	return out
}
