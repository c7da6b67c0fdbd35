package domain

import (
	"fmt"
	"sort"

	"k8s.io/klog/v2"

	"github.com/mouse-blink/punctnorm/internal/domain/preprocess"
	"github.com/mouse-blink/punctnorm/internal/domain/punct"
	"github.com/mouse-blink/punctnorm/internal/domain/textbuf"
	"github.com/mouse-blink/punctnorm/internal/domain/tokenizers"
	m "github.com/mouse-blink/punctnorm/internal/model"
)

// Converter runs one edit session: it applies every annotation of a document
// to a private buffer and projects the corrected text to labels.
type Converter interface {
	Convert(doc m.Document) (m.Record, error)
}

// ConverterOptions configures NewConverter.
type ConverterOptions struct {
	Alignment m.Alignment
	// Clean runs the corrected text through preprocess.Clean before
	// labelling. Annotator spans no longer map after cleaning, so entities
	// are then re-detected from the cleaned text only.
	Clean bool
}

type converter struct {
	resolver  *Resolver
	projector *Projector
	clean     bool
}

// NewConverter creates a Converter. The tokenizer is shared read-only by
// every call, so one Converter can serve all workers.
func NewConverter(tokenizer tokenizers.Tokenizer, opts ConverterOptions) Converter {
	return &converter{
		resolver:  NewResolver(tokenizer, opts.Alignment),
		projector: NewProjector(tokenizer),
		clean:     opts.Clean,
	}
}

func (c *converter) Convert(doc m.Document) (m.Record, error) {
	record := m.Record{
		TextID:      doc.TextID,
		AnnotatorID: doc.AnnotatorID,
		ErrorCounts: map[m.ErrorKind]int{},
	}

	annotations, ignored := acceptedAnnotations(doc.Annotations)
	record.Ignored = ignored

	rawRunes := []rune(doc.RawText)
	buf := textbuf.New(doc.RawText)
	entities := &EntityList{}

	for _, ann := range annotations {
		kind, _ := m.LabelKind(ann.Label)

		span, err := c.apply(buf, ann, kind)
		if err != nil {
			if m.IsDocumentFatal(err) {
				return m.Record{}, fmt.Errorf("text %s annotator %s: annotation [%d, %d): %w",
					doc.TextID, doc.AnnotatorID, ann.Start, ann.End, err)
			}

			klog.V(2).InfoS("Rejected annotation", "text", doc.TextID, "annotator", doc.AnnotatorID,
				"start", ann.Start, "end", ann.End, "err", err)
			record.Rejected = append(record.Rejected, m.Rejection{Annotation: ann, Reason: err.Error()})

			continue
		}

		record.Applied++
		record.ErrorCounts[m.ClassifyError(kind, coveredText(rawRunes, ann))]++

		entities.Add(span)
	}

	corrected, original := buf.String(), doc.RawText

	if c.clean {
		cleaned := preprocess.Clean(corrected)
		corrected = cleaned.Text()
		record.Title = cleaned.Title
		original = preprocess.Clean(original).Text()
		entities = &EntityList{}
	}

	labels, err := c.projector.Project(corrected)
	if err != nil {
		return m.Record{}, fmt.Errorf("text %s annotator %s: %w", doc.TextID, doc.AnnotatorID, err)
	}

	originalLabels, err := c.projector.Project(original)
	if err != nil {
		return m.Record{}, fmt.Errorf("text %s annotator %s: original text: %w", doc.TextID, doc.AnnotatorID, err)
	}

	if err := CheckComparable(originalLabels, labels); err != nil {
		return m.Record{}, fmt.Errorf("text %s annotator %s: %w", doc.TextID, doc.AnnotatorID, err)
	}

	for _, span := range DetectSpans(corrected, c.resolver) {
		entities.Add(span)
	}

	originalEntities := &EntityList{}
	for _, span := range DetectSpans(original, c.resolver) {
		originalEntities.Add(span)
	}

	record.CorrectedText = corrected
	record.Labels = labels
	record.Entities = validSpans(doc, entities.Spans(), len([]rune(corrected)))
	record.OriginalText = original
	record.OriginalLabels = originalLabels
	record.OriginalEntities = originalEntities.Spans()

	return record, nil
}

// apply resolves and fixes one annotation against the current buffer state
// and returns its gold span.
func (c *converter) apply(buf *textbuf.Buffer, ann m.Annotation, kind m.Kind) (m.Span, error) {
	shifted := m.Span{Start: ann.Start, End: ann.End}.Shift(buf.Shift())
	start, end := shifted.Start, shifted.End
	n := buf.Len()

	if start < 0 || end < start || start > n {
		return m.Span{}, &m.RangeError{Start: start, End: end, Len: n}
	}

	// Annotators often select one position past the text end to flag a
	// missing final mark.
	gold, err := c.resolver.Resolve(buf.String(), start, min(end, n))
	if err != nil {
		return m.Span{}, err
	}

	gold.Kind = kind

	// The annotated error sits on the character before end, for empty
	// selections too.
	target := start
	if end > 0 {
		target = end - 1
	}

	if _, err := punct.Fix(buf, target, end, kind.Mark()); err != nil {
		return m.Span{}, err
	}

	return gold, nil
}

// acceptedAnnotations keeps the punctuation-error annotations, stably
// sorted by raw start, and counts the rest.
func acceptedAnnotations(in []m.Annotation) ([]m.Annotation, int) {
	out := make([]m.Annotation, 0, len(in))

	for _, ann := range in {
		if _, ok := m.LabelKind(ann.Label); ok {
			out = append(out, ann)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	return out, len(in) - len(out)
}

func coveredText(original []rune, ann m.Annotation) string {
	if ann.Start < 0 || ann.Start >= ann.End || ann.End > len(original) {
		return ""
	}

	return string(original[ann.End-1 : ann.End])
}

// validSpans drops spans a later edit pushed outside the final text.
func validSpans(doc m.Document, spans []m.Span, n int) []m.Span {
	out := spans[:0]

	for _, s := range spans {
		if s.Valid(n) && s.Len() > 0 {
			out = append(out, s)
			continue
		}

		klog.V(2).InfoS("Dropped entity outside final text", "text", doc.TextID, "annotator", doc.AnnotatorID,
			"start", s.Start, "end", s.End, "len", n)
	}

	return out
}
