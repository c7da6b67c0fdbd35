package punct

import (
	"testing"

	"github.com/mouse-blink/punctnorm/internal/domain/textbuf"
	m "github.com/mouse-blink/punctnorm/internal/model"
	"github.com/stretchr/testify/require"
)

func TestFix(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		mark       rune
		want       string
		shift      int
	}{
		// end of text
		{"append missing period", "ele saiu", 8, 8, '.', "ele saiu.", 1},
		{"period already terminates", "ele saiu.", 9, 10, '.', "ele saiu.", 0},
		{"trailing comma becomes period", "ele saiu,", 9, 9, '.', "ele saiu.", 0},
		{"trailing exclamation becomes period", "que dia!", 8, 8, '.', "que dia.", 0},
		{"no comma at end of text", "ele saiu", 8, 8, ',', "ele saiu", 0},
		{"trailing semicolon for comma", "ele saiu;", 9, 9, ',', "ele saiu.", 0},
		{"empty buffer", "", 0, 0, '.', "", 0},

		// existing mark matches
		{"single mark followed by space", "ele saiu. Ele voltou", 8, 9, '.', "ele saiu. Ele voltou", 0},
		{"duplicate after target", "ele saiu.. Ele", 8, 9, '.', "ele saiu. Ele", -1},
		{"duplicate before target", "ele saiu.. Ele", 9, 10, '.', "ele saiu. Ele", -1},
		{"duplicate comma", "ele saiu,, e voltou", 8, 9, ',', "ele saiu, e voltou", -1},
		{"duplicate at end of text", "ele saiu..", 8, 9, '.', "ele saiu.", -1},
		{"duplicate comma at end re-terminates", "ele saiu,,", 8, 9, ',', "ele saiu.", -1},
		{"missing space after mark", "ele saiu.Ele voltou", 8, 9, '.', "ele saiu. Ele voltou", 1},
		{"duplicate and missing space", "ele saiu..Ele", 8, 9, '.', "ele saiu. Ele", 0},
		{"final mark alone", "ele saiu.", 8, 9, '.', "ele saiu.", 0},
		{"space between mark and following mark", "ele saiu.? Ele", 8, 9, '.', "ele saiu. ? Ele", 1},

		// existing mark differs
		{"comma to period at end", "ele saiu,", 8, 9, '.', "ele saiu.", 0},
		{"comma to period recases", "ele saiu, ele voltou", 8, 9, '.', "ele saiu. Ele voltou", 0},
		{"period to comma recases", "ele saiu. Ele voltou", 8, 9, ',', "ele saiu, ele voltou", 0},
		{"mark found near target", "ele saiu; Ele voltou", 7, 8, ',', "ele saiu, ele voltou", 0},
		{"insert before space", "ele saiu ele voltou", 7, 8, '.', "ele saiu. Ele voltou", 1},
		{"insert comma before space", "ele saiu e voltou", 7, 8, ',', "ele saiu, e voltou", 1},
		{"insert at selected space", "ele saiu Ele voltou", 8, 9, '.', "ele saiu. Ele voltou", 1},
		{"cleanup extra delimiters", "ele saiu  \nEle", 7, 8, '.', "ele saiu. Ele", -1},
		{"insert before newline", "ele saiu\nele", 7, 8, '.', "ele saiu.\nEle", 1},
		{"append at end of window", "ele saiu", 7, 8, '.', "ele saiu.", 1},
		{"no room inside long word", "o aluno extraordinariamente dedicado", 12, 13, '.', "o aluno extraordinariamente dedicado", 0},
		{"no room inside long word for comma", "extraordinariamente", 2, 3, ',', "extraordinariamente", 0},
		{"window past end of long word", "o extraordinario", 14, 15, '.', "o extraordinario.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := textbuf.New(tt.text)
			shift, err := Fix(buf, tt.start, tt.end, tt.mark)
			require.NoError(t, err)
			require.Equal(t, tt.want, buf.String())
			require.Equal(t, tt.shift, shift)
			require.Equal(t, len([]rune(tt.text))+shift, buf.Len())
		})
	}
}

func TestFix_MalformedSpan(t *testing.T) {
	buf := textbuf.New("ele saiu")

	_, err := Fix(buf, -1, 2, '.')
	require.ErrorIs(t, err, m.ErrBounds)

	_, err = Fix(buf, 4, 2, '.')
	require.ErrorIs(t, err, m.ErrBounds)

	_, err = Fix(buf, 1, 2, ';')
	require.Error(t, err)

	require.Equal(t, "ele saiu", buf.String())
}

func TestFix_IdempotentOnCorrectMark(t *testing.T) {
	texts := []string{
		"ele saiu. Ele voltou.",
		"ele saiu, e voltou.",
		"ele saiu.\nEle voltou.",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			buf := textbuf.New(text)
			start := 8
			r, err := buf.At(start)
			require.NoError(t, err)

			shift, err := Fix(buf, start, start+1, r)
			require.NoError(t, err)
			require.Zero(t, shift)
			require.Equal(t, text, buf.String())
		})
	}
}

func TestOthers(t *testing.T) {
	require.Equal(t, []rune{',', ';', ':', '!', '?'}, Others('.'))
	require.Equal(t, []rune{'.', ';', ':', '!', '?'}, Others(','))
	require.True(t, IsMark('?'))
	require.False(t, IsMark('-'))
}
