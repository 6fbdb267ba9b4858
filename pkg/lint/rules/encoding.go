package rules

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"

	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/lint"
	"github.com/larpwiki/wikiscan/pkg/wikitext"
)

// ReplacementCharRule reports undecodable byte runs and literal replacement
// characters. Both mean the same thing: content was corrupted, whether the
// corruption happened before or during this scan.
type ReplacementCharRule struct {
	lint.BaseRule
}

// NewReplacementCharRule creates a new replacement character rule.
func NewReplacementCharRule() *ReplacementCharRule {
	return &ReplacementCharRule{
		BaseRule: lint.NewBaseRule(
			"WK001",
			"replacement-char",
			"Undecodable byte sequences and literal replacement characters are charset conversion artifacts",
			[]string{"encoding"},
			config.SeverityError,
		),
	}
}

// Apply reports one finding per replacement-category code point.
func (r *ReplacementCharRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for i := range ctx.Page.Lines {
		line := &ctx.Page.Lines[i]
		for col, p := range line.Points {
			if p.Category != wikitext.CategoryReplacement {
				continue
			}

			var msg string
			if p.IsInvalid() {
				msg = fmt.Sprintf("invalid UTF-8 byte sequence (%d bytes)", p.Span.Length)
			} else {
				msg = "replacement character U+FFFD left over from a lossy charset conversion"
			}

			findings = append(findings,
				lint.NewFinding(r.ID(), line, col, col+1, msg).Build())
		}
	}

	return findings, nil
}

// ControlCharRule reports control characters outside the tab exception and
// the whitespace exception table.
type ControlCharRule struct {
	lint.BaseRule
}

// NewControlCharRule creates a new control character rule.
func NewControlCharRule() *ControlCharRule {
	return &ControlCharRule{
		BaseRule: lint.NewBaseRule(
			"WK002",
			"control-char",
			"Control characters do not belong in wiki page sources",
			[]string{"encoding"},
			config.SeverityError,
		),
	}
}

// Apply reports one finding per control-category code point.
func (r *ControlCharRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for i := range ctx.Page.Lines {
		line := &ctx.Page.Lines[i]
		for col, p := range line.Points {
			if p.Category != wikitext.CategoryControl {
				continue
			}

			msg := fmt.Sprintf("control character %s", describeCodePoint(p.CodePoint))
			findings = append(findings,
				lint.NewFinding(r.ID(), line, col, col+1, msg).Build())
		}
	}

	return findings, nil
}

// OrphanCombiningMarkRule reports combining marks that do not continue a
// letter cluster: a mark at the start of a line, after punctuation, or after
// whitespace renders as a broken grapheme.
type OrphanCombiningMarkRule struct {
	lint.BaseRule
}

// NewOrphanCombiningMarkRule creates a new orphan combining mark rule.
func NewOrphanCombiningMarkRule() *OrphanCombiningMarkRule {
	return &OrphanCombiningMarkRule{
		BaseRule: lint.NewBaseRule(
			"WK003",
			"orphan-combining-mark",
			"Combining marks must follow a letter",
			[]string{"encoding"},
			config.SeverityError,
		),
	}
}

// Apply reports one finding per grapheme-cluster anomaly.
func (r *OrphanCombiningMarkRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for i := range ctx.Page.Lines {
		line := &ctx.Page.Lines[i]
		for col, p := range line.Points {
			if !p.ClusterAnomaly {
				continue
			}

			msg := fmt.Sprintf("combining mark %s not preceded by a letter",
				describeCodePoint(p.CodePoint))
			findings = append(findings,
				lint.NewFinding(r.ID(), line, col, col+1, msg).Build())
		}
	}

	return findings, nil
}

// describeCodePoint renders a code point as "U+0007 (BELL, category Cc)" for
// finding messages.
func describeCodePoint(cp rune) string {
	name := runenames.Name(cp)
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("U+%04X (%s, category %s)", cp, name, wikitext.UnicodeCategory(cp))
}
