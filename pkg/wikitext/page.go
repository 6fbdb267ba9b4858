package wikitext

import "strings"

// Page is the fully decoded form of one wiki page source file. It is built
// once per file and read-only afterwards, so rule execution can share it
// freely inside a worker.
type Page struct {
	// Path is the file path the page was read from.
	Path string

	// Size is the file size in bytes.
	Size int

	// Units is the complete decoded unit sequence. Spans partition the
	// file buffer exactly.
	Units []DecodedUnit

	// Lines are the reconstructed text lines.
	Lines []TextLine
}

// ParsePage decodes, classifies, and line-splits a page buffer. It never
// fails: malformed content is exactly what the scanner exists to report.
func ParsePage(path string, content []byte) *Page {
	units := Decode(content)
	points := Classify(units)

	return &Page{
		Path:  path,
		Size:  len(content),
		Units: units,
		Lines: SplitLines(points),
	}
}

// LineCount returns the number of reconstructed lines.
func (p *Page) LineCount() int {
	return len(p.Lines)
}

// Line returns the 1-based line, or nil when out of range.
func (p *Page) Line(number int) *TextLine {
	if number < 1 || number > len(p.Lines) {
		return nil
	}
	return &p.Lines[number-1]
}

// IsComment reports whether a line is a MoinMoin comment ("##" prefix).
// Comments are exempt from markup rules but not from encoding rules.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "##")
}

// IsDirective reports whether a line is a page directive: a single "#" prefix
// that is not a comment.
func IsDirective(line string) bool {
	return strings.HasPrefix(line, "#") && !IsComment(line)
}
