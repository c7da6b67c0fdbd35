package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mouse-blink/punctnorm/internal/domain/tokenizers"
	m "github.com/mouse-blink/punctnorm/internal/model"
)

func TestDetectSpans(t *testing.T) {
	r := NewResolver(tokenizers.WordPunct{}, m.AlignExpand)

	tests := []struct {
		name string
		text string
		want []m.Span
	}{
		{
			name: "comma and period",
			text: "ele saiu, ela ficou.",
			want: []m.Span{{Start: 4, End: 8, Kind: m.KindComma}, {Start: 14, End: 19, Kind: m.KindPeriod}},
		},
		{
			name: "question",
			text: "Você veio?",
			want: []m.Span{{Start: 5, End: 9, Kind: m.KindPeriod}},
		},
		{
			name: "mark after digit or space is ignored",
			text: "custa 3,5 reais , certo",
			want: nil,
		},
		{
			name: "semicolon is not detected",
			text: "um; dois",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSpans(tt.text, r))
		})
	}
}
