package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/lint"
	"github.com/larpwiki/wikiscan/pkg/wikitext"
)

// redirectRe matches a redirect directive line. The target name follows the
// keyword after optional whitespace.
var redirectRe = regexp.MustCompile(`^#REDIRECT\s*(.*)$`)

// redirectTarget returns the redirect target of a line, and whether the line
// is a redirect directive at all.
func redirectTarget(line string) (string, bool) {
	m := redirectRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// legallyPlaced reports whether a redirect on the given 1-based line is in a
// legal position: every preceding line is a comment or a non-redirect
// directive. The redirect slot is single; an earlier redirect occupies it.
func legallyPlaced(page *wikitext.Page, lineNumber int) bool {
	for i := 0; i < lineNumber-1; i++ {
		text := page.Lines[i].Text
		if wikitext.IsComment(text) {
			continue
		}
		if _, isRedirect := redirectTarget(text); isRedirect {
			return false
		}
		if wikitext.IsDirective(text) {
			continue
		}
		return false
	}
	return true
}

// validRedirectLine returns the 1-based line number of a legally placed
// redirect that has a target, or 0 when the page has none.
func validRedirectLine(page *wikitext.Page) int {
	for i := range page.Lines {
		line := &page.Lines[i]
		target, ok := redirectTarget(line.Text)
		if !ok {
			continue
		}
		if target != "" && legallyPlaced(page, line.Number) {
			return line.Number
		}
		return 0
	}
	return 0
}

// RedirectNotFirstRule reports redirect directives that appear after the
// first non-comment line of the page.
type RedirectNotFirstRule struct {
	lint.BaseRule
}

// NewRedirectNotFirstRule creates a new redirect placement rule.
func NewRedirectNotFirstRule() *RedirectNotFirstRule {
	return &RedirectNotFirstRule{
		BaseRule: lint.NewBaseRule(
			"WK010",
			"redirect-not-first",
			"A redirect is only interpreted on the first non-comment line of a page",
			[]string{"directive", "redirect"},
			config.SeverityError,
		),
	}
}

// Apply reports every redirect directive outside the legal position.
func (r *RedirectNotFirstRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for i := range ctx.Page.Lines {
		line := &ctx.Page.Lines[i]
		if _, ok := redirectTarget(line.Text); !ok {
			continue
		}
		if legallyPlaced(ctx.Page, line.Number) {
			continue
		}
		findings = append(findings,
			lint.NewFinding(r.ID(), line, 0, len(line.Points),
				"redirect on a non-first line is ignored by the wiki engine").Build())
	}

	return findings, nil
}

// RedirectWithoutTargetRule reports redirect directives with no target page.
type RedirectWithoutTargetRule struct {
	lint.BaseRule
}

// NewRedirectWithoutTargetRule creates a new redirect target rule.
func NewRedirectWithoutTargetRule() *RedirectWithoutTargetRule {
	return &RedirectWithoutTargetRule{
		BaseRule: lint.NewBaseRule(
			"WK012",
			"redirect-without-target",
			"A redirect needs a target page name",
			[]string{"directive", "redirect"},
			config.SeverityError,
		),
	}
}

// Apply reports legally placed redirects that are missing a target.
func (r *RedirectWithoutTargetRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for i := range ctx.Page.Lines {
		line := &ctx.Page.Lines[i]
		target, ok := redirectTarget(line.Text)
		if !ok || target != "" {
			continue
		}
		if !legallyPlaced(ctx.Page, line.Number) {
			// WK010 already covers misplaced redirects.
			continue
		}
		findings = append(findings,
			lint.NewFinding(r.ID(), line, 0, len(line.Points),
				"redirect without a target page").Build())
	}

	return findings, nil
}

// ContentAfterRedirectRule reports non-comment, non-directive content after a
// valid redirect. Such content is never rendered.
type ContentAfterRedirectRule struct {
	lint.BaseRule
}

// NewContentAfterRedirectRule creates a new content-after-redirect rule.
func NewContentAfterRedirectRule() *ContentAfterRedirectRule {
	return &ContentAfterRedirectRule{
		BaseRule: lint.NewBaseRule(
			"WK011",
			"content-after-redirect",
			"Content after a valid redirect is never rendered",
			[]string{"directive", "redirect"},
			config.SeverityError,
		),
	}
}

// Apply reports every non-empty content line after a valid redirect.
func (r *ContentAfterRedirectRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	redirectLine := validRedirectLine(ctx.Page)
	if redirectLine == 0 {
		return nil, nil
	}

	var findings []lint.Finding

	for i := redirectLine; i < len(ctx.Page.Lines); i++ {
		line := &ctx.Page.Lines[i]
		text := line.Text
		if wikitext.IsComment(text) || wikitext.IsDirective(text) {
			continue
		}

		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		start := line.ColumnOf(strings.Index(text, trimmed))
		findings = append(findings,
			lint.NewFinding(r.ID(), line, start, start+utf8.RuneCountInString(trimmed),
				"non-empty non-comment line after a valid redirect").Build())
	}

	return findings, nil
}
