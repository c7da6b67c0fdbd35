// Package textbuf provides a mutable rune buffer that reports the length
// delta of every edit so callers can keep later spans positioned.
package textbuf

import (
	"unicode"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

// Buffer is a rune-indexed mutable text owned by a single edit session.
// Every mutating operation returns the shift it introduced and adds it to a
// running total available through Shift.
type Buffer struct {
	runes []rune
	shift int
}

// New creates a Buffer holding text.
func New(text string) *Buffer {
	return &Buffer{runes: []rune(text)}
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// String returns the current contents.
func (b *Buffer) String() string {
	return string(b.runes)
}

// Shift returns the sum of all shifts introduced since creation.
func (b *Buffer) Shift() int {
	return b.shift
}

// At returns the rune at i.
func (b *Buffer) At(i int) (rune, error) {
	if i < 0 || i >= len(b.runes) {
		return 0, b.boundsErr("read", i)
	}

	return b.runes[i], nil
}

// Last returns the final rune, or false for an empty buffer.
func (b *Buffer) Last() (rune, bool) {
	if len(b.runes) == 0 {
		return 0, false
	}

	return b.runes[len(b.runes)-1], true
}

// Set overwrites the rune at i. Overwriting never changes the length.
func (b *Buffer) Set(i int, r rune) error {
	if i < 0 || i >= len(b.runes) {
		return b.boundsErr("set", i)
	}

	b.runes[i] = r

	return nil
}

// InsertAt inserts r before position i; i == Len appends.
func (b *Buffer) InsertAt(i int, r rune) (int, error) {
	return b.InsertRun(i, []rune{r})
}

// InsertRun inserts rs before position i; i == Len appends.
func (b *Buffer) InsertRun(i int, rs []rune) (int, error) {
	if i < 0 || i > len(b.runes) {
		return 0, b.boundsErr("insert", i)
	}

	if len(rs) == 0 {
		return 0, nil
	}

	grown := make([]rune, 0, len(b.runes)+len(rs))
	grown = append(grown, b.runes[:i]...)
	grown = append(grown, rs...)
	grown = append(grown, b.runes[i:]...)
	b.runes = grown

	return b.record(len(rs)), nil
}

// DeleteAt removes the rune at i.
func (b *Buffer) DeleteAt(i int) (int, error) {
	if i < 0 || i >= len(b.runes) {
		return 0, b.boundsErr("delete", i)
	}

	return b.DeleteRange(i, i+1)
}

// DeleteRange removes the runes in [i, j).
func (b *Buffer) DeleteRange(i, j int) (int, error) {
	if i < 0 || i > j {
		return 0, b.boundsErr("delete", i)
	}

	if j > len(b.runes) {
		return 0, b.boundsErr("delete", j)
	}

	b.runes = append(b.runes[:i], b.runes[j:]...)

	return b.record(-(j - i)), nil
}

// SetCase upper- or lower-cases the rune at i. The length never changes:
// runes whose case mapping is not a single rune are left as they are.
func (b *Buffer) SetCase(i int, upper bool) error {
	if i < 0 || i >= len(b.runes) {
		return b.boundsErr("case", i)
	}

	if upper {
		b.runes[i] = unicode.ToUpper(b.runes[i])
	} else {
		b.runes[i] = unicode.ToLower(b.runes[i])
	}

	return nil
}

func (b *Buffer) record(delta int) int {
	b.shift += delta

	return delta
}

func (b *Buffer) boundsErr(op string, i int) error {
	return &m.BoundsError{Op: op, Index: i, Len: len(b.runes)}
}
