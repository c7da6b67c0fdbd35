package domain

import (
	"unicode"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

// DetectSpans finds the punctuation the writer already placed: every . , ! ?
// right after a letter yields the gold span of the word before it.
func DetectSpans(text string, resolver *Resolver) []m.Span {
	runes := []rune(text)

	blanked := make([]rune, len(runes))
	copy(blanked, runes)

	var marks []int

	for i, r := range runes {
		if !isDetectedMark(r) {
			continue
		}

		blanked[i] = ' '

		if i > 0 && unicode.IsLetter(runes[i-1]) {
			marks = append(marks, i)
		}
	}

	if len(marks) == 0 {
		return nil
	}

	tokens := resolver.tokenizer.Tokens(string(blanked))
	spans := make([]m.Span, 0, len(marks))

	for _, i := range marks {
		span, err := resolver.resolve(blanked, tokens, i, i+1)
		if err != nil {
			continue
		}

		kind, _ := m.KindForMark(runes[i])
		span.Kind = kind
		spans = append(spans, span)
	}

	return spans
}

func isDetectedMark(r rune) bool {
	return r == '.' || r == ',' || r == '!' || r == '?'
}
