package tokenizers

import "unicode"

// WordPunct splits text into runs of word characters and runs of other
// non-space characters, so punctuation is always its own token.
type WordPunct struct{}

// Name returns the registered name.
func (WordPunct) Name() string { return NameWordPunct }

// Tokens segments text into word and punctuation runs.
func (WordPunct) Tokens(text string) []Token {
	var tokens []Token

	start, inWord := -1, false
	pos := 0

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if start >= 0 {
				tokens = append(tokens, Token{Start: start, End: pos})
				start = -1
			}
		case start < 0:
			start, inWord = pos, isWordRune(r)
		case isWordRune(r) != inWord:
			tokens = append(tokens, Token{Start: start, End: pos})
			start, inWord = pos, isWordRune(r)
		}

		pos++
	}

	if start >= 0 {
		tokens = append(tokens, Token{Start: start, End: pos})
	}

	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
