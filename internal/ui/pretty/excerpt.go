package pretty

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Excerpt layout constants. The part budget bounds the rendered excerpt so a
// single pathological line cannot flood the report; some of the budget is
// reserved for trailing context so the flagged text never swallows it all.
const (
	DefaultExcerptWidth = 70
	minAfterLength      = 20
)

// Escape renders text with non-printable code points in backslash-escaped
// form. Printable text passes through unchanged, so excerpts stay readable
// while control characters and broken sequences become visible.
func Escape(text string) string {
	quoted := strconv.Quote(text)
	return quoted[1 : len(quoted)-1]
}

// EscapeLimitRight escapes text truncated from the right so that the escaped
// form fits within maxLength display characters. It returns the escaped text
// and the number of input code points it covers.
func EscapeLimitRight(text string, maxLength int) (string, int) {
	if maxLength <= 0 {
		return "", 0
	}
	runes := []rune(text)
	if len(runes) > maxLength {
		runes = runes[:maxLength]
	}
	escaped := Escape(string(runes))
	for utf8.RuneCountInString(escaped) > maxLength && len(runes) > 0 {
		runes = runes[:len(runes)-1]
		escaped = Escape(string(runes))
	}
	return escaped, len(runes)
}

// EscapeLimitLeft is EscapeLimitRight truncating from the left, for leading
// context where the end of the text is the interesting part.
func EscapeLimitLeft(text string, maxLength int) (string, int) {
	if maxLength <= 0 {
		return "", 0
	}
	runes := []rune(text)
	if len(runes) > maxLength {
		runes = runes[len(runes)-maxLength:]
	}
	escaped := Escape(string(runes))
	for utf8.RuneCountInString(escaped) > maxLength && len(runes) > 0 {
		runes = runes[1:]
		escaped = Escape(string(runes))
	}
	return escaped, len(runes)
}

// FormatExcerpt renders the flagged portion of a line with as much
// surrounding context as the width budget allows. Columns are 0-based code
// point indexes. The flagged text is underlined; truncated context is marked
// with an ellipsis, complete context with a pipe.
//
// Example output:
//
//	…"text before <b>bold</b> text after"|
func (s *Styles) FormatExcerpt(line string, startCol, endCol, width int) string {
	if width <= 0 {
		width = DefaultExcerptWidth
	}
	runes := []rune(line)
	if startCol < 0 {
		startCol = 0
	}
	if endCol > len(runes) {
		endCol = len(runes)
	}
	if startCol > endCol {
		startCol = endCol
	}

	budget := width

	// Extract as much of the flagged text as the budget allows.
	part, partLen := EscapeLimitRight(string(runes[startCol:endCol]), budget)
	partComplete := endCol-startCol-partLen == 0
	budget = max(0, budget-utf8.RuneCountInString(part))

	// Extract leading context, reserving some quota for trailing context.
	afterQuota := 0
	if partComplete {
		afterQuota = min(len(runes)-endCol, budget/2, minAfterLength)
	}
	before, beforeLen := EscapeLimitLeft(string(runes[:startCol]), min(startCol, budget-afterQuota))
	budget = max(0, budget-utf8.RuneCountInString(before))

	// Trailing context only makes sense when the flagged text is complete.
	after := ""
	afterLen := 0
	if partComplete {
		after, afterLen = EscapeLimitRight(string(runes[endCol:]), budget)
	}

	sol := "|"
	if startCol-beforeLen > 0 {
		sol = "…"
	}
	eol := "|"
	if startCol+partLen+afterLen < len(runes) {
		eol = "…"
	}

	var builder strings.Builder
	builder.WriteString(sol)
	builder.WriteString(`"`)
	builder.WriteString(s.Excerpt.Render(before))
	builder.WriteString(s.ExcerptHit.Render(part))
	builder.WriteString(s.Excerpt.Render(after))
	builder.WriteString(`"`)
	builder.WriteString(eol)
	return builder.String()
}
