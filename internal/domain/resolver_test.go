package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/punctnorm/internal/domain/tokenizers"
	m "github.com/mouse-blink/punctnorm/internal/model"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(tokenizers.WordPunct{}, m.AlignExpand)

	tests := []struct {
		name       string
		text       string
		start, end int
		want       m.Span
	}{
		{"partial word expands", "O aluno saiu", 3, 5, m.Span{Start: 2, End: 7}},
		{"across words", "O aluno saiu", 4, 10, m.Span{Start: 2, End: 12}},
		{"on a space falls back to previous word", "ele saiu. Ele", 3, 4, m.Span{Start: 0, End: 3}},
		{"end of text", "ele saiu", 8, 8, m.Span{Start: 4, End: 8}},
		{"empty inside text", "ele saiu", 3, 3, m.Span{Start: 0, End: 3}},
		{"accented", "o cão latiu", 3, 4, m.Span{Start: 2, End: 5}},
		{"empty after a space", "ele saiu Ele voltou", 9, 9, m.Span{Start: 4, End: 8}},
		{"selection ending on a space", "ele saiu Ele voltou", 4, 9, m.Span{Start: 4, End: 8}},
		{"empty after trailing newline", "Ele saiu\n", 9, 9, m.Span{Start: 4, End: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.text, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_FallbackInEveryAlignment(t *testing.T) {
	for _, alignment := range []m.Alignment{m.AlignExpand, m.AlignContract, m.AlignStrict} {
		t.Run(string(alignment), func(t *testing.T) {
			r := NewResolver(tokenizers.WordPunct{}, alignment)

			got, err := r.Resolve("ele saiu Ele voltou", 9, 9)
			require.NoError(t, err)
			assert.Equal(t, m.Span{Start: 4, End: 8}, got)

			got, err = r.Resolve("Ele saiu\n", 9, 9)
			require.NoError(t, err)
			assert.Equal(t, m.Span{Start: 4, End: 8}, got)
		})
	}
}

func TestTrimDelimiters(t *testing.T) {
	runes := []rune("ele saiu \n")

	assert.Equal(t, 8, trimDelimiters(runes, 4, 10))
	assert.Equal(t, 8, trimDelimiters(runes, 4, 8))
	assert.Equal(t, 4, trimDelimiters(runes, 4, 4))
}

func TestResolver_Errors(t *testing.T) {
	r := NewResolver(tokenizers.WordPunct{}, "")
	require.Equal(t, m.AlignExpand, r.Alignment())

	_, err := r.Resolve("ele", 2, 5)
	require.ErrorIs(t, err, m.ErrRange)

	_, err = r.Resolve("ele", 2, 1)
	require.ErrorIs(t, err, m.ErrRange)

	_, err = r.Resolve("ele", -1, 1)
	require.ErrorIs(t, err, m.ErrRange)

	_, err = r.Resolve("ele saiu", 0, 0)
	require.ErrorIs(t, err, m.ErrUnresolvableSpan)

	var ue *m.UnresolvableSpanError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 0, ue.Start)
}

func TestBackwardScan(t *testing.T) {
	runes := []rune("ele saiu ")

	assert.Equal(t, 4, backwardScan(runes, 8))
	assert.Equal(t, 4, backwardScan(runes, 9))
	assert.Equal(t, 0, backwardScan(runes, 3))
	assert.Equal(t, 0, backwardScan(runes, 0))
}
