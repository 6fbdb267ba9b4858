package lint

import (
	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/wikitext"
)

// FindingBuilder helps construct Finding values.
type FindingBuilder struct {
	finding Finding
}

// NewFinding starts building a finding covering the 0-based code point
// columns [startCol, endCol) of a line. Columns are stored 1-based and the
// byte span is resolved through the line's offset table.
func NewFinding(ruleID string, line *wikitext.TextLine, startCol, endCol int, message string) *FindingBuilder {
	f := Finding{
		RuleID:  ruleID,
		Message: message,
	}
	if line != nil {
		f.Line = line.Number
		f.Column = startCol + 1
		f.EndColumn = endCol + 1
		f.Span = line.SpanBetween(startCol, endCol)
	}
	return &FindingBuilder{finding: f}
}

// NewFileFinding starts building a file-level finding with no line position.
func NewFileFinding(ruleID, filePath, message string) *FindingBuilder {
	return &FindingBuilder{
		finding: Finding{
			RuleID:   ruleID,
			FilePath: filePath,
			Message:  message,
		},
	}
}

// WithSeverity sets the severity.
func (b *FindingBuilder) WithSeverity(sev config.Severity) *FindingBuilder {
	b.finding.Severity = sev
	return b
}

// WithSpan overrides the byte span.
func (b *FindingBuilder) WithSpan(span wikitext.ByteSpan) *FindingBuilder {
	b.finding.Span = span
	return b
}

// Build returns the constructed finding.
func (b *FindingBuilder) Build() Finding {
	return b.finding
}
