// Package preprocess cleans raw essay markup into a title and plain
// paragraphs.
package preprocess

import (
	"regexp"
	"strings"
)

var (
	splitWord   = regexp.MustCompile(`([\p{L}\p{N}_]+)-\n([\p{L}\p{N}_]+)`)
	titleLine   = regexp.MustCompile(`\[T\].*\n+`)
	specials    = regexp.MustCompile(`\s+|\n+|/n|\t+`)
	bracketMark = regexp.MustCompile(`\[[\p{L}\p{N}_]{0,3}|[^\p{L}\p{N}_]{0,3}\]|\}`)
	periodRun   = regexp.MustCompile(`\.+`)
	italicTags  = strings.NewReplacer("<i>", "", "</i>", "", "<i/>", "")
)

// Result is a cleaned essay.
type Result struct {
	Title      string
	Paragraphs []string
}

// Text joins the paragraphs with newlines.
func (r Result) Text() string {
	return strings.Join(r.Paragraphs, "\n")
}

// Clean joins hyphen-split words, pulls out the [T] title line, splits on
// [P] markers and normalizes each paragraph. Empty paragraphs are dropped.
func Clean(text string) Result {
	text = JoinSplitWords(text)

	var res Result

	if loc := titleLine.FindStringIndex(text); loc != nil {
		title := text[loc[0]:loc[1]]
		text = strings.Replace(text, title, "", 1)
		title = strings.ReplaceAll(title, "[T]", "")
		res.Title = strings.Join(strings.Fields(title), " ")
	}

	for _, p := range strings.Split(text, "[P]") {
		if p = CleanParagraph(p); p != "" {
			res.Paragraphs = append(res.Paragraphs, p)
		}
	}

	return res
}

// JoinSplitWords rejoins words broken across lines with a trailing hyphen,
// repeating until a word broken over several lines is whole.
func JoinSplitWords(text string) string {
	for {
		joined := splitWord.ReplaceAllString(text, "$1$2")
		if joined == text {
			return text
		}

		text = joined
	}
}

// CleanParagraph collapses whitespace, drops bracket markers and italic
// tags, and squeezes runs of periods into one.
func CleanParagraph(p string) string {
	p = specials.ReplaceAllString(p, " ")
	p = bracketMark.ReplaceAllString(p, "")
	p = strings.Join(strings.Fields(p), " ")
	p = italicTags.Replace(p)

	return periodRun.ReplaceAllString(p, ".")
}
