package domain

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mouse-blink/punctnorm/internal/domain/tokenizers"
	m "github.com/mouse-blink/punctnorm/internal/model"
)

// Projector turns a finalized text into one label per non-punctuation token.
type Projector struct {
	tokenizer tokenizers.Tokenizer
}

// NewProjector creates a Projector over a shared tokenizer.
func NewProjector(tokenizer tokenizers.Tokenizer) *Projector {
	return &Projector{tokenizer: tokenizer}
}

// Project labels every word token O, then lets each punctuation token mark
// the word before it: sentence enders give I-PERIOD, commas give I-COMMA.
// Punctuation carrying a label with no word before it is a data error.
func (p *Projector) Project(text string) ([]m.Label, error) {
	// Casers keep state, so each call builds its own.
	lowered := cases.Lower(language.BrazilianPortuguese).String(text)
	runes := []rune(lowered)

	var labels []m.Label

	for _, tok := range p.tokenizer.Tokens(lowered) {
		word := string(runes[tok.Start:tok.End])

		if !isPunctuationToken(word) {
			labels = append(labels, m.LabelO)
			continue
		}

		kind, ok := tokenKind(word)
		if !ok {
			continue
		}

		if len(labels) == 0 {
			return nil, &m.LeadingPunctuationError{Token: word}
		}

		labels[len(labels)-1] = m.LabelFor(kind)
	}

	return labels, nil
}

// CheckComparable rejects label sequences of different length; they cannot
// be scored against each other.
func CheckComparable(a, b []m.Label) error {
	if len(a) != len(b) {
		return &m.LabelLengthError{Left: len(a), Right: len(b)}
	}

	return nil
}

func isPunctuationToken(word string) bool {
	if word == "" {
		return false
	}

	for _, r := range word {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}

	return true
}

// tokenKind picks the class of a punctuation token. A sentence ender
// anywhere in the run wins over a comma.
func tokenKind(word string) (m.Kind, bool) {
	found := false

	for _, r := range word {
		kind, ok := m.KindForMark(r)
		if !ok {
			continue
		}

		if kind == m.KindPeriod {
			return kind, true
		}

		found = true
	}

	if found {
		return m.KindComma, true
	}

	return "", false
}
