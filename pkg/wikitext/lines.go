package wikitext

import "strings"

// TextLine is one reconstructed line of a page. Line numbering follows the
// decoded text's line breaks: invalid byte runs surface as replacement
// characters and never introduce spurious breaks.
type TextLine struct {
	// Number is the 1-based line number.
	Number int

	// Text is the reconstructed line content without the line break.
	// Invalid units appear as U+FFFD.
	Text string

	// StartOffset is the byte offset of the line's first byte in the file.
	StartOffset int

	// Points are the classified code points of the line, excluding the
	// line break and any trailing carriage return.
	Points []ClassifiedCodePoint
}

// SpanAt returns the file byte span of the code point at the given 0-based
// column. Columns past the end collapse to an empty span at the line end.
func (l *TextLine) SpanAt(col int) ByteSpan {
	if col < 0 || col >= len(l.Points) {
		return ByteSpan{Start: l.endOffset(), Length: 0}
	}
	return l.Points[col].Span
}

// SpanBetween returns the file byte span covering the columns [startCol,
// endCol). An empty range yields a zero-length span at startCol.
func (l *TextLine) SpanBetween(startCol, endCol int) ByteSpan {
	if startCol >= endCol || startCol >= len(l.Points) {
		return ByteSpan{Start: l.SpanAt(startCol).Start, Length: 0}
	}
	if endCol > len(l.Points) {
		endCol = len(l.Points)
	}
	first := l.Points[startCol].Span
	last := l.Points[endCol-1].Span
	return ByteSpan{Start: first.Start, Length: last.End() - first.Start}
}

// ColumnOf translates a byte index into Text to a 0-based column. Regex rules
// match against Text and need code point columns for reporting.
func (l *TextLine) ColumnOf(textIndex int) int {
	if textIndex <= 0 {
		return 0
	}
	col := 0
	for i := range l.Text {
		if i >= textIndex {
			return col
		}
		col++
	}
	return col
}

func (l *TextLine) endOffset() int {
	if len(l.Points) == 0 {
		return l.StartOffset
	}
	return l.Points[len(l.Points)-1].Span.End()
}

// SplitLines reconstructs text lines from a classified code point sequence.
// A '\n' ends a line; a '\r' directly before it is stripped from the text but
// still counted in the byte offsets. A trailing line without a final '\n' is
// kept, matching how wiki exports are written.
func SplitLines(points []ClassifiedCodePoint) []TextLine {
	var lines []TextLine

	var sb strings.Builder
	var linePoints []ClassifiedCodePoint
	lineStart := 0
	flush := func(nextStart int) {
		lines = append(lines, TextLine{
			Number:      len(lines) + 1,
			Text:        sb.String(),
			StartOffset: lineStart,
			Points:      linePoints,
		})
		sb.Reset()
		linePoints = nil
		lineStart = nextStart
	}

	for _, p := range points {
		if p.CodePoint == '\n' {
			if n := len(linePoints); n > 0 && linePoints[n-1].CodePoint == '\r' {
				linePoints = linePoints[:n-1]
				text := sb.String()
				sb.Reset()
				sb.WriteString(strings.TrimSuffix(text, "\r"))
			}
			flush(p.Span.End())
			continue
		}

		if p.IsInvalid() {
			sb.WriteRune(ReplacementChar)
		} else {
			sb.WriteRune(p.CodePoint)
		}
		linePoints = append(linePoints, p)
	}

	if len(linePoints) > 0 || len(lines) == 0 {
		flush(0)
	}

	return lines
}
