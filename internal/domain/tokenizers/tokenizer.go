// Package tokenizers segments text into rune-offset tokens and snaps
// arbitrary character ranges to token boundaries.
package tokenizers

import (
	"fmt"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

// Token is the half-open [Start, End) rune span of one token.
type Token struct {
	Start int
	End   int
}

// Tokenizer segments text into tokens. Implementations must be
// deterministic and safe for concurrent use, since a single instance is
// shared by every worker.
type Tokenizer interface {
	Name() string
	Tokens(text string) []Token
}

// Available tokenizer names.
const (
	NameWordPunct = "wordpunct"
	NameUAX29     = "uax29"
)

// New returns the tokenizer registered under name.
func New(name string) (Tokenizer, error) {
	switch name {
	case "", NameWordPunct:
		return WordPunct{}, nil
	case NameUAX29:
		return Segmenter{}, nil
	default:
		return nil, fmt.Errorf("unsupported tokenizer: %q", name)
	}
}

// CharSpan snaps [start, end) to token boundaries under alignment.
// It returns false when no token-aligned span exists, including the
// degenerate case start == end.
func CharSpan(tokens []Token, start, end int, alignment m.Alignment) (Token, bool) {
	if start >= end {
		return Token{}, false
	}

	switch alignment {
	case m.AlignContract:
		return contractSpan(tokens, start, end)
	case m.AlignStrict:
		return strictSpan(tokens, start, end)
	default:
		return expandSpan(tokens, start, end)
	}
}

// expandSpan counts the delimiters after a token as part of that token, so a
// range ending on whitespace snaps to the word before it.
func expandSpan(tokens []Token, start, end int) (Token, bool) {
	first := tokenAt(tokens, start)

	last := tokenAt(tokens, end-1)
	if last < 0 {
		last = tokenBefore(tokens, end-1)
	}

	if first < 0 || last < 0 || last < first {
		return Token{}, false
	}

	return Token{Start: tokens[first].Start, End: tokens[last].End}, true
}

func contractSpan(tokens []Token, start, end int) (Token, bool) {
	span := Token{Start: -1}

	for _, tok := range tokens {
		if tok.Start < start || tok.End > end {
			continue
		}

		if span.Start < 0 {
			span.Start = tok.Start
		}

		span.End = tok.End
	}

	if span.Start < 0 || span.End <= span.Start {
		return Token{}, false
	}

	return span, true
}

func strictSpan(tokens []Token, start, end int) (Token, bool) {
	startsToken, endsToken := false, false

	for _, tok := range tokens {
		if tok.Start == start {
			startsToken = true
		}

		if tok.End == end {
			endsToken = true
		}
	}

	if !startsToken || !endsToken {
		return Token{}, false
	}

	return Token{Start: start, End: end}, true
}

// tokenAt returns the index of the token containing offset, or -1 when the
// offset falls on a delimiter or outside the text.
func tokenAt(tokens []Token, offset int) int {
	for i, tok := range tokens {
		if offset < tok.Start {
			return -1
		}

		if offset < tok.End {
			return i
		}
	}

	return -1
}

// tokenBefore returns the index of the last token ending at or before offset,
// or -1 when there is none.
func tokenBefore(tokens []Token, offset int) int {
	found := -1

	for i, tok := range tokens {
		if tok.End > offset {
			break
		}

		found = i
	}

	return found
}
