package rules

import (
	"regexp"
	"strings"

	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/lint"
	"github.com/larpwiki/wikiscan/pkg/wikitext"
)

// bracketLinkRe splits a bracketed link into its bracket runs, optional quote
// artifacts from the old wiki conversion, and the target. Valid MoinMoin
// links use two brackets and no quotes.
var bracketLinkRe = regexp.MustCompile(
	"(\\[[\\[`]*)(\"?)\\s*(.*?)\\s*(\"?)([\\]`]*\\])")

// uploadLinkRe matches the UseMod upload/attachment link form, delimited by
// whitespace or line boundaries.
var uploadLinkRe = regexp.MustCompile(`(?i)(?:^|\s)(upload:\S+)`)

// QuotedInternalLinkRule reports internal links with quote characters inside
// the brackets, an artifact of the failed UseMod conversion.
type QuotedInternalLinkRule struct {
	lint.BaseRule
}

// NewQuotedInternalLinkRule creates a new quoted link rule.
func NewQuotedInternalLinkRule() *QuotedInternalLinkRule {
	return &QuotedInternalLinkRule{
		BaseRule: lint.NewBaseRule(
			"WK040",
			"quoted-internal-link",
			"Quoted link targets are artifacts of the failed UseMod conversion",
			[]string{"markup", "link"},
			config.SeverityWarning,
		),
	}
}

// Apply reports every bracketed link with a leading quote artifact.
func (r *QuotedInternalLinkRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	contentLines(ctx.Page, func(line *wikitext.TextLine) {
		for _, m := range bracketLinkRe.FindAllStringSubmatchIndex(line.Text, -1) {
			openQuote := line.Text[m[4]:m[5]]
			if openQuote == "" {
				continue
			}
			findings = append(findings,
				lint.NewFinding(r.ID(), line,
					line.ColumnOf(m[0]), line.ColumnOf(m[1]),
					"fail-converted unnamed internal UseMod link").Build())
		}
	})

	return findings, nil
}

// LegacyExternalLinkRule reports external links in the legacy single-bracket
// form. MoinMoin external links use double brackets.
type LegacyExternalLinkRule struct {
	lint.BaseRule
}

// NewLegacyExternalLinkRule creates a new legacy external link rule.
func NewLegacyExternalLinkRule() *LegacyExternalLinkRule {
	return &LegacyExternalLinkRule{
		BaseRule: lint.NewBaseRule(
			"WK041",
			"legacy-external-link",
			"Single-bracket external links are UseMod syntax",
			[]string{"markup", "link"},
			config.SeverityWarning,
		),
	}
}

// Apply reports single-bracket links whose target carries a scheme separator.
func (r *LegacyExternalLinkRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	contentLines(ctx.Page, func(line *wikitext.TextLine) {
		for _, m := range bracketLinkRe.FindAllStringSubmatchIndex(line.Text, -1) {
			openBrackets := line.Text[m[2]:m[3]]
			openQuote := line.Text[m[4]:m[5]]
			target := line.Text[m[6]:m[7]]
			if openQuote != "" {
				// WK040 already covers quoted links.
				continue
			}
			if len(openBrackets) != 1 || !strings.Contains(target, ":") {
				continue
			}
			findings = append(findings,
				lint.NewFinding(r.ID(), line,
					line.ColumnOf(m[0]), line.ColumnOf(m[1]),
					"fail-converted external UseMod link").Build())
		}
	})

	return findings, nil
}

// UsemodUploadLinkRule reports upload/attachment links in the legacy
// "upload:" form.
type UsemodUploadLinkRule struct {
	lint.BaseRule
}

// NewUsemodUploadLinkRule creates a new upload link rule.
func NewUsemodUploadLinkRule() *UsemodUploadLinkRule {
	return &UsemodUploadLinkRule{
		BaseRule: lint.NewBaseRule(
			"WK042",
			"usemod-upload-link",
			"upload: links point at the retired UseMod attachment store",
			[]string{"markup", "link"},
			config.SeverityWarning,
		),
	}
}

// Apply reports every upload: link occurrence.
func (r *UsemodUploadLinkRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	contentLines(ctx.Page, func(line *wikitext.TextLine) {
		for _, m := range uploadLinkRe.FindAllStringSubmatchIndex(line.Text, -1) {
			findings = append(findings,
				lint.NewFinding(r.ID(), line,
					line.ColumnOf(m[2]), line.ColumnOf(m[3]),
					"UseMod upload link").Build())
		}
	})

	return findings, nil
}
