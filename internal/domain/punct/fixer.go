package punct

import (
	"fmt"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

// Editor is the buffer surface the fixer needs. *textbuf.Buffer satisfies it.
type Editor interface {
	Len() int
	At(i int) (rune, error)
	Last() (rune, bool)
	Set(i int, r rune) error
	InsertAt(i int, r rune) (int, error)
	DeleteAt(i int) (int, error)
	SetCase(i int, upper bool) error
}

// Fix corrects the punctuation error annotated at [start, end) so the text
// carries mark there, and returns the net length delta.
//
// Only a malformed span (negative start, inverted bounds) fails; a span past
// the end of the buffer means the writer omitted terminal punctuation, and
// every scan that runs out of text falls back to appending.
func Fix(buf Editor, start, end int, mark rune) (int, error) {
	if mark != '.' && mark != ',' {
		return 0, fmt.Errorf("unsupported mark %q", mark)
	}

	if start < 0 || end < start {
		return 0, &m.BoundsError{Op: "fix", Index: start, Len: buf.Len()}
	}

	if start >= buf.Len() {
		return terminate(buf, mark)
	}

	current, err := buf.At(start)
	if err != nil {
		return 0, err
	}

	if current == mark {
		return fixDuplicate(buf, start, end, mark)
	}

	return fixDifferent(buf, start, end, mark)
}

// terminate handles an annotation past the last character: the text lacks
// terminal punctuation. A missing period is appended, a trailing mark of
// another kind becomes a period, and a missing comma is left alone.
func terminate(buf Editor, mark rune) (int, error) {
	last, ok := buf.Last()
	if !ok {
		return 0, nil
	}

	if !IsMark(last) {
		if mark != '.' {
			return 0, nil
		}

		return buf.InsertAt(buf.Len(), '.')
	}

	if isOther(last, mark) {
		return 0, buf.Set(buf.Len()-1, '.')
	}

	return 0, nil
}

// fixDuplicate handles a target that already carries mark. A second copy of
// mark within one position of the target is removed; the surviving mark is
// then separated from the next word by a space.
func fixDuplicate(buf Editor, start, end int, mark rune) (int, error) {
	shift := 0
	keep := start

	dup := -1

	for i := max(start-1, 0); i <= end && i < buf.Len(); i++ {
		if i == start {
			continue
		}

		if r, _ := buf.At(i); r == mark {
			dup = i

			break
		}
	}

	if dup >= 0 {
		s, err := buf.DeleteAt(dup)
		if err != nil {
			return shift, err
		}

		shift += s

		if dup == buf.Len() {
			s, err := terminate(buf, '.')

			return shift + s, err
		}

		if dup < start {
			keep = start - 1
		}
	}

	next := keep + 1
	if next >= buf.Len() {
		return shift, nil
	}

	if r, _ := buf.At(next); IsDelimiter(r) {
		return shift, nil
	}

	s, err := buf.InsertAt(next, ' ')

	return shift + s, err
}

// fixDifferent handles a target that does not carry mark. Within the window
// around the target, another mark is overwritten in place; failing that, mark
// is inserted before the first delimiter at or after the target; failing
// that, mark is appended when the window runs past the end of the text.
func fixDifferent(buf Editor, start, end int, mark rune) (int, error) {
	lo := max(start-window, 0)
	hi := end + window

	for i := lo; i < hi && i < buf.Len(); i++ {
		r, _ := buf.At(i)
		if !isOther(r, mark) {
			continue
		}

		if err := buf.Set(i, mark); err != nil {
			return 0, err
		}

		recase(buf, i, mark)

		return 0, nil
	}

	for i := start; i < hi && i < buf.Len(); i++ {
		if r, _ := buf.At(i); IsDelimiter(r) {
			return insertBefore(buf, i, mark)
		}
	}

	// A window that ends inside the text found no place for the mark; only
	// one that runs off the end means the text stops short of it.
	if hi <= buf.Len() {
		return 0, nil
	}

	return buf.InsertAt(buf.Len(), mark)
}

// insertBefore writes mark in front of the delimiter at i, then drops any
// delimiters or marks that follow the kept delimiter.
func insertBefore(buf Editor, i int, mark rune) (int, error) {
	shift, err := buf.InsertAt(i, mark)
	if err != nil {
		return 0, err
	}

	for i+2 < buf.Len() {
		r, _ := buf.At(i + 2)
		if !IsDelimiter(r) && !IsMark(r) {
			break
		}

		s, err := buf.DeleteAt(i + 2)
		if err != nil {
			return shift, err
		}

		shift += s
	}

	recase(buf, i, mark)

	return shift, nil
}

// recase upper-cases the letter after a period and lower-cases the letter
// after a comma, skipping one delimiter. Out of range is silently skipped.
func recase(buf Editor, i int, mark rune) {
	j := i + 1

	if r, err := buf.At(j); err == nil && IsDelimiter(r) {
		j++
	}

	if j >= buf.Len() {
		return
	}

	_ = buf.SetCase(j, mark == '.')
}
