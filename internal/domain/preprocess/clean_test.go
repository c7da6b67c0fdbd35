package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinSplitWords(t *testing.T) {
	assert.Equal(t, "educação pública", JoinSplitWords("edu-\ncação pública"))
	assert.Equal(t, "a b", JoinSplitWords("a b"))
	assert.Equal(t, "extraordinario", JoinSplitWords("extra-\nordi-\nnario"))
	assert.Equal(t, "é", JoinSplitWords("é"))
}

func TestCleanParagraph(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"whitespace", "  o   aluno\tsaiu\n", "o aluno saiu"},
		{"italics", "leu <i>Dom Casmurro</i> ontem", "leu Dom Casmurro ontem"},
		{"periods", "e assim foi... fim..", "e assim foi. fim."},
		{"closing brace", "fim}", "fim"},
		{"accented letter before bracket", "ele disse você] e saiu", "ele disse você e saiu"},
		{"accented marker", "[Xé]texto", "texto"},
		{"empty", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanParagraph(tt.in))
		})
	}
}

func TestClean(t *testing.T) {
	raw := "[T] A   escola\n\nO aluno saiu[P]Depois volt-\nou para casa.[P]  "

	res := Clean(raw)

	require.Equal(t, "A escola", res.Title)
	require.Equal(t, []string{"O aluno saiu", "Depois voltou para casa."}, res.Paragraphs)
	require.Equal(t, "O aluno saiu\nDepois voltou para casa.", res.Text())
}

func TestClean_NoTitle(t *testing.T) {
	res := Clean("texto simples")

	assert.Empty(t, res.Title)
	assert.Equal(t, []string{"texto simples"}, res.Paragraphs)
}
