// Package punct fixes a single punctuation error in an offset-tracked
// buffer and reports the length delta of the fix.
package punct

// All is the punctuation set the fixer recognises.
var All = []rune{'.', ',', ';', ':', '!', '?'}

// window is how far around the target the fixer looks for an existing
// mark or an insertion point.
const window = 3

// IsMark reports whether r belongs to All.
func IsMark(r rune) bool {
	for _, p := range All {
		if p == r {
			return true
		}
	}

	return false
}

// Others returns All without mark.
func Others(mark rune) []rune {
	others := make([]rune, 0, len(All)-1)

	for _, p := range All {
		if p != mark {
			others = append(others, p)
		}
	}

	return others
}

func isOther(r, mark rune) bool {
	return r != mark && IsMark(r)
}

// IsDelimiter reports whether r separates tokens for span resolution.
func IsDelimiter(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t'
}
