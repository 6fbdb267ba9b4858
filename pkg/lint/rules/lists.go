package rules

import (
	"strings"

	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/lint"
	"github.com/larpwiki/wikiscan/pkg/wikitext"
)

// markerRunEnd returns the length of the leading '*'/'#' marker run.
func markerRunEnd(text string) int {
	end := 0
	for end < len(text) && (text[end] == '*' || text[end] == '#') {
		end++
	}
	return end
}

// hasBulletLines reports whether any content line of the page opens with a
// '*' marker. Numbered-list detection keys off this: without bullets, a
// leading '#' is indistinguishable from a directive.
func hasBulletLines(page *wikitext.Page) bool {
	found := false
	contentLines(page, func(line *wikitext.TextLine) {
		if strings.HasPrefix(line.Text, "*") {
			found = true
		}
	})
	return found
}

// UsemodBulletListRule reports lines starting with '*': legacy UseMod bullet
// list syntax, and also a common typo for emphasis.
type UsemodBulletListRule struct {
	lint.BaseRule
}

// NewUsemodBulletListRule creates a new bullet list rule.
func NewUsemodBulletListRule() *UsemodBulletListRule {
	return &UsemodBulletListRule{
		BaseRule: lint.NewBaseRule(
			"WK050",
			"usemod-bullet-list",
			"Lines starting with '*' use UseMod bullet list syntax",
			[]string{"markup", "list"},
			config.SeverityWarning,
		),
	}
}

// Apply reports every line opening with a '*' marker run.
func (r *UsemodBulletListRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	contentLines(ctx.Page, func(line *wikitext.TextLine) {
		if !strings.HasPrefix(line.Text, "*") {
			return
		}
		findings = append(findings,
			lint.NewFinding(r.ID(), line, 0, markerRunEnd(line.Text),
				"UseMod bullet list").Build())
	})

	return findings, nil
}

// UsemodNumberedListRule reports lines starting with '#' list markers, but
// only on pages that also contain bullet list lines. A standalone leading
// '#' is ambiguous with directives and comments and must not be flagged.
type UsemodNumberedListRule struct {
	lint.BaseRule
}

// NewUsemodNumberedListRule creates a new numbered list rule.
func NewUsemodNumberedListRule() *UsemodNumberedListRule {
	return &UsemodNumberedListRule{
		BaseRule: lint.NewBaseRule(
			"WK051",
			"usemod-numbered-list",
			"Lines starting with '#' use UseMod numbered list syntax when the page also has bullet lines",
			[]string{"markup", "list"},
			config.SeverityWarning,
		),
	}
}

// Apply reports '#'-led lines on pages with bullet lines. Comments and
// redirects keep their meaning; other '#'-led lines are presumed lists.
func (r *UsemodNumberedListRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	if !hasBulletLines(ctx.Page) {
		return nil, nil
	}

	var findings []lint.Finding

	for i := range ctx.Page.Lines {
		line := &ctx.Page.Lines[i]
		text := line.Text
		if !strings.HasPrefix(text, "#") || wikitext.IsComment(text) {
			continue
		}
		if _, isRedirect := redirectTarget(text); isRedirect {
			continue
		}
		findings = append(findings,
			lint.NewFinding(r.ID(), line, 0, markerRunEnd(text),
				"UseMod numbered list").Build())
	}

	return findings, nil
}

// UsemodIndentRule reports lines starting with ':' (legacy indented
// paragraph). Lines opening with a smilie are exempt.
type UsemodIndentRule struct {
	lint.BaseRule
}

// NewUsemodIndentRule creates a new indent rule.
func NewUsemodIndentRule() *UsemodIndentRule {
	return &UsemodIndentRule{
		BaseRule: lint.NewBaseRule(
			"WK052",
			"usemod-indent",
			"Lines starting with ':' use UseMod indentation",
			[]string{"markup", "paragraph"},
			config.SeverityWarning,
		),
	}
}

// Apply reports every ':'-led content line.
func (r *UsemodIndentRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	contentLines(ctx.Page, func(line *wikitext.TextLine) {
		if !strings.HasPrefix(line.Text, ":") || startsWithSmilie(line.Text) {
			return
		}
		end := 0
		for end < len(line.Text) && line.Text[end] == ':' {
			end++
		}
		findings = append(findings,
			lint.NewFinding(r.ID(), line, 0, end,
				"UseMod indentation").Build())
	})

	return findings, nil
}

// UsemodDefinitionListRule reports lines starting with ';' (legacy
// definition term). Lines opening with a smilie are exempt.
type UsemodDefinitionListRule struct {
	lint.BaseRule
}

// NewUsemodDefinitionListRule creates a new definition list rule.
func NewUsemodDefinitionListRule() *UsemodDefinitionListRule {
	return &UsemodDefinitionListRule{
		BaseRule: lint.NewBaseRule(
			"WK053",
			"usemod-definition-list",
			"Lines starting with ';' use UseMod definition list syntax",
			[]string{"markup", "paragraph"},
			config.SeverityWarning,
		),
	}
}

// Apply reports every ';'-led content line.
func (r *UsemodDefinitionListRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	contentLines(ctx.Page, func(line *wikitext.TextLine) {
		if !strings.HasPrefix(line.Text, ";") || startsWithSmilie(line.Text) {
			return
		}
		findings = append(findings,
			lint.NewFinding(r.ID(), line, 0, 1,
				"UseMod definition list").Build())
	})

	return findings, nil
}
