// Package lint provides the rule engine, findings, and registry for wikiscan.
package lint

import (
	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/wikitext"
)

// Finding represents a single anomaly found in a page. Findings are
// immutable once created.
type Finding struct {
	// RuleID is the stable identifier of the rule that produced this
	// finding (e.g. "WK030"). Stable across runs, usable for suppression.
	RuleID string

	// RuleName is the human-readable name of the rule
	// (e.g. "headline-level").
	RuleName string

	// Message is the human-readable description of the anomaly.
	Message string

	// Severity indicates the importance of the finding.
	Severity config.Severity

	// FilePath is the path to the page containing the anomaly.
	FilePath string

	// Line is the 1-based line number, or 0 for file-level findings.
	Line int

	// Column is the 1-based code point column where the anomaly starts.
	Column int

	// EndColumn is the 1-based column one past the anomaly, for excerpt
	// highlighting. Zero means unknown.
	EndColumn int

	// Span is the exact byte range of the anomaly in the file buffer.
	Span wikitext.ByteSpan
}
