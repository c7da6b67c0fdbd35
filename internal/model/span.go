// Package model defines the data structures shared by the punctuation
// normalization engine, its adapters and its UI.
package model

// Path represents a file system path.
type Path string

// Kind is the punctuation class carried by a span or label.
type Kind string

const (
	// KindPeriod marks a sentence-final punctuation error (. ? ! ;).
	KindPeriod Kind = "PERIOD"
	// KindComma marks a comma error.
	KindComma Kind = "COMMA"
)

// Mark returns the punctuation character written when fixing this kind.
func (k Kind) Mark() rune {
	if k == KindComma {
		return ','
	}

	return '.'
}

// KindForMark maps a punctuation character to its class.
// Sentence enders (. ? ! ;) are periods, ',' is a comma.
func KindForMark(r rune) (Kind, bool) {
	switch r {
	case '.', '?', '!', ';':
		return KindPeriod, true
	case ',':
		return KindComma, true
	default:
		return "", false
	}
}

// Span is a half-open [Start, End) range of rune offsets into the current
// buffer state, tagged with the punctuation class it carries.
type Span struct {
	Start int  `json:"start" yaml:"start"`
	End   int  `json:"end" yaml:"end"`
	Kind  Kind `json:"kind" yaml:"kind"`
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Valid reports whether the span fits a buffer of n runes.
func (s Span) Valid(n int) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= n
}

// Shift returns the span moved by delta runes.
func (s Span) Shift(delta int) Span {
	return Span{Start: s.Start + delta, End: s.End + delta, Kind: s.Kind}
}

// Overlaps reports whether the closed intervals [s.Start, s.End] and
// [o.Start, o.End] intersect. Touching endpoints count as overlap.
func (s Span) Overlaps(o Span) bool {
	return !(o.End < s.Start || o.Start > s.End)
}

// Alignment is the policy used to snap a character range to token boundaries.
type Alignment string

const (
	// AlignExpand widens the range to cover every partially covered token.
	AlignExpand Alignment = "expand"
	// AlignContract shrinks the range to the fully covered tokens.
	AlignContract Alignment = "contract"
	// AlignStrict accepts the range only if it is already token aligned.
	AlignStrict Alignment = "strict"
)

// Label is a BIO-style per-token tag.
type Label string

// Available labels.
const (
	LabelO      Label = "O"
	LabelPeriod Label = "I-PERIOD"
	LabelComma  Label = "I-COMMA"
)

// LabelFor returns the label carried by a token preceding a mark of kind k.
func LabelFor(k Kind) Label {
	if k == KindComma {
		return LabelComma
	}

	return LabelPeriod
}
