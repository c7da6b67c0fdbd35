package textbuf

import (
	"math/rand"
	"testing"

	m "github.com/mouse-blink/punctnorm/internal/model"
	"github.com/stretchr/testify/require"
)

func TestBuffer_InsertAndDelete(t *testing.T) {
	buf := New("ele saiu")

	shift, err := buf.InsertAt(8, '.')
	require.NoError(t, err)
	require.Equal(t, 1, shift)
	require.Equal(t, "ele saiu.", buf.String())

	shift, err = buf.InsertRun(0, []rune("Então "))
	require.NoError(t, err)
	require.Equal(t, 6, shift)
	require.Equal(t, "Então ele saiu.", buf.String())

	shift, err = buf.DeleteRange(0, 6)
	require.NoError(t, err)
	require.Equal(t, -6, shift)

	shift, err = buf.DeleteAt(8)
	require.NoError(t, err)
	require.Equal(t, -1, shift)
	require.Equal(t, "ele saiu", buf.String())
	require.Equal(t, 0, buf.Shift())
}

func TestBuffer_RuneIndexed(t *testing.T) {
	buf := New("cão")
	require.Equal(t, 3, buf.Len())

	r, err := buf.At(1)
	require.NoError(t, err)
	require.Equal(t, 'ã', r)

	require.NoError(t, buf.SetCase(1, true))
	require.Equal(t, "cÃo", buf.String())
	require.Equal(t, 0, buf.Shift())
}

func TestBuffer_BoundsErrors(t *testing.T) {
	buf := New("abc")

	tests := []struct {
		name string
		op   func() error
	}{
		{"read past end", func() error { _, err := buf.At(3); return err }},
		{"read negative", func() error { _, err := buf.At(-1); return err }},
		{"insert past end", func() error { _, err := buf.InsertAt(4, 'x'); return err }},
		{"delete past end", func() error { _, err := buf.DeleteAt(3); return err }},
		{"delete inverted", func() error { _, err := buf.DeleteRange(2, 1); return err }},
		{"delete range past end", func() error { _, err := buf.DeleteRange(1, 5); return err }},
		{"case past end", func() error { return buf.SetCase(3, false) }},
		{"set negative", func() error { return buf.Set(-1, 'x') }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.op(), m.ErrBounds)
		})
	}

	require.Equal(t, "abc", buf.String())
	require.Equal(t, 0, buf.Shift())
}

func TestBuffer_ShiftConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	initial := "O cão correu rápido, e voltou. Ele saiu"
	buf := New(initial)
	sum := 0

	for i := 0; i < 500; i++ {
		var (
			shift int
			err   error
		)

		switch rng.Intn(4) {
		case 0:
			shift, err = buf.InsertAt(rng.Intn(buf.Len()+1), '.')
		case 1:
			shift, err = buf.InsertRun(rng.Intn(buf.Len()+1), []rune(", "))
		case 2:
			if buf.Len() > 0 {
				shift, err = buf.DeleteAt(rng.Intn(buf.Len()))
			}
		case 3:
			if buf.Len() > 1 {
				i := rng.Intn(buf.Len() - 1)
				shift, err = buf.DeleteRange(i, i+1+rng.Intn(buf.Len()-i-1))
			}
		}

		require.NoError(t, err)

		sum += shift
	}

	require.Equal(t, len([]rune(initial))+sum, buf.Len())
	require.Equal(t, sum, buf.Shift())
}
