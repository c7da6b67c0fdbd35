package tokenizers

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// Segmenter tokenizes with Unicode text segmentation (UAX #29 word
// boundaries). Whitespace segments are dropped; every punctuation
// character is its own segment.
type Segmenter struct{}

// Name returns the registered name.
func (Segmenter) Name() string { return NameUAX29 }

// Tokens segments text into UAX #29 words.
func (Segmenter) Tokens(text string) []Token {
	var tokens []Token

	pos := 0
	segments := words.FromString(text)

	for segments.Next() {
		value := segments.Value()
		n := utf8.RuneCountInString(value)

		if strings.TrimFunc(value, unicode.IsSpace) != "" {
			tokens = append(tokens, Token{Start: pos, End: pos + n})
		}

		pos += n
	}

	return tokens
}
