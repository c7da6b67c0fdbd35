package model

// Annotation labels as exported by the annotation tool.
const (
	LabelPunctuationError = "Erro de Pontuação"
	LabelCommaError       = "Erro de vírgula"
)

// Annotation is a raw annotator triple against the original text.
// It is never mutated after loading; only its resolved span moves.
type Annotation struct {
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Label string `json:"label" yaml:"label"`
}

// LabelKind returns the punctuation class for an annotation label.
// Labels other than the two punctuation-error labels are not accepted.
func LabelKind(label string) (Kind, bool) {
	switch label {
	case LabelPunctuationError, "punctuation", string(KindPeriod):
		return KindPeriod, true
	case LabelCommaError, "comma", string(KindComma):
		return KindComma, true
	default:
		return "", false
	}
}

// ErrorKind classifies an accepted annotation against the original text.
type ErrorKind string

const (
	// ErrMissingFinal means the writer omitted sentence-final punctuation.
	ErrMissingFinal ErrorKind = "missing-final-punctuation"
	// ErrFinalMiscategorized means a comma was written where a period belongs.
	ErrFinalMiscategorized ErrorKind = "final-punctuation-miscategorized"
	// ErrMissingComma means the writer omitted a comma.
	ErrMissingComma ErrorKind = "missing-comma"
	// ErrCommaMiscategorized means a period was written where a comma belongs.
	ErrCommaMiscategorized ErrorKind = "comma-miscategorized"
)

// ClassifyError derives the error kind from the annotation class and the
// original text covered by the annotation.
func ClassifyError(kind Kind, covered string) ErrorKind {
	if kind == KindComma {
		if covered == "." {
			return ErrCommaMiscategorized
		}

		return ErrMissingComma
	}

	if covered == "," {
		return ErrFinalMiscategorized
	}

	return ErrMissingFinal
}

// Document is one annotator's view of one text.
type Document struct {
	TextID      string       `json:"text_id" yaml:"text_id"`
	AnnotatorID string       `json:"annotator_id" yaml:"annotator_id"`
	RawText     string       `json:"raw_text" yaml:"raw_text"`
	Annotations []Annotation `json:"annotations" yaml:"annotations"`
	Source      Path         `json:"-" yaml:"source,omitempty"`
}

// Rejection records an annotation skipped by a per-annotation error.
type Rejection struct {
	Annotation Annotation `json:"annotation" yaml:"annotation"`
	Reason     string     `json:"reason" yaml:"reason"`
}

// Record is the converted output for one document.
type Record struct {
	TextID        string            `json:"text_id" yaml:"text_id"`
	AnnotatorID   string            `json:"annotator_id" yaml:"annotator_id"`
	Title         string            `json:"title,omitempty" yaml:"title,omitempty"`
	CorrectedText string            `json:"corrected_text" yaml:"corrected_text"`
	Entities      []Span            `json:"entities" yaml:"entities"`
	Labels        []Label           `json:"labels" yaml:"labels"`
	Applied       int               `json:"applied" yaml:"applied"`
	Rejected      []Rejection       `json:"rejected,omitempty" yaml:"rejected,omitempty"`
	Ignored       int               `json:"ignored,omitempty" yaml:"ignored,omitempty"`
	ErrorCounts   map[ErrorKind]int `json:"error_counts,omitempty" yaml:"error_counts,omitempty"`

	// The writer's side of the pair: the uncorrected text with the spans and
	// labels it already carries. OriginalLabels and Labels always have the
	// same length.
	OriginalText     string  `json:"original_text" yaml:"original_text"`
	OriginalEntities []Span  `json:"original_entities" yaml:"original_entities"`
	OriginalLabels   []Label `json:"original_labels" yaml:"original_labels"`
}
