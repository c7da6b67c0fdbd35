package domain

import (
	"github.com/mouse-blink/punctnorm/internal/domain/punct"
	"github.com/mouse-blink/punctnorm/internal/domain/tokenizers"
	m "github.com/mouse-blink/punctnorm/internal/model"
)

// Resolver snaps raw annotation ranges to token-aligned gold spans.
type Resolver struct {
	tokenizer tokenizers.Tokenizer
	alignment m.Alignment
}

// NewResolver creates a Resolver over a shared tokenizer.
func NewResolver(tokenizer tokenizers.Tokenizer, alignment m.Alignment) *Resolver {
	if alignment == "" {
		alignment = m.AlignExpand
	}

	return &Resolver{tokenizer: tokenizer, alignment: alignment}
}

// Alignment returns the alignment policy used by the resolver.
func (r *Resolver) Alignment() m.Alignment {
	return r.alignment
}

// Resolve returns the gold span for [start, end) in text. The returned span
// carries no Kind.
func (r *Resolver) Resolve(text string, start, end int) (m.Span, error) {
	runes := []rune(text)

	if start < 0 || end < start || end > len(runes) {
		return m.Span{}, &m.RangeError{Start: start, End: end, Len: len(runes)}
	}

	return r.resolve(runes, r.tokenizer.Tokens(text), start, end)
}

func (r *Resolver) resolve(runes []rune, tokens []tokenizers.Token, start, end int) (m.Span, error) {
	if tok, ok := tokenizers.CharSpan(tokens, start, end, r.alignment); ok {
		return m.Span{Start: tok.Start, End: tok.End}, nil
	}

	// The range sits on a delimiter or is empty: take the word that ends at
	// start instead.
	scanStart := backwardScan(runes, start)
	scanEnd := trimDelimiters(runes, scanStart, start)

	if tok, ok := tokenizers.CharSpan(tokens, scanStart, scanEnd, r.alignment); ok {
		return m.Span{Start: tok.Start, End: tok.End}, nil
	}

	return m.Span{}, &m.UnresolvableSpanError{Start: start, End: end}
}

// backwardScan walks left from start and stops at the first delimiter met
// after at least one character was consumed. It returns 0 when the text
// start is reached first.
func backwardScan(runes []rune, start int) int {
	i := start

	for i > 0 {
		if punct.IsDelimiter(runes[i-1]) && i != start {
			break
		}

		i--
	}

	return i
}

// trimDelimiters moves end left past trailing delimiters, never below start.
func trimDelimiters(runes []rune, start, end int) int {
	for end > start && punct.IsDelimiter(runes[end-1]) {
		end--
	}

	return end
}
