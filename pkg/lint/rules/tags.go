package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/lint"
	"github.com/larpwiki/wikiscan/pkg/wikitext"
)

// usemodTagRe matches the obsolete UseMod inline tags. The forced line break
// <br> has its own rule because its replacement is a MoinMoin macro, not
// wiki markup.
var usemodTagRe = regexp.MustCompile(`(?i)<(/?)(b|i|nowiki|pre|toc|tt)>`)

// brTagRe matches line break tags in both the UseMod single-angle and the
// MoinMoin double-angle form, capturing the bracket runs around the name.
var brTagRe = regexp.MustCompile("(?i)(<[<`]*)(br)([>`]*>)")

// UsemodTagRule reports obsolete UseMod inline tags.
type UsemodTagRule struct {
	lint.BaseRule
}

// NewUsemodTagRule creates a new UseMod tag rule.
func NewUsemodTagRule() *UsemodTagRule {
	return &UsemodTagRule{
		BaseRule: lint.NewBaseRule(
			"WK020",
			"usemod-tag",
			"HTML-style inline tags are UseMod leftovers with no meaning in MoinMoin",
			[]string{"markup", "tag"},
			config.SeverityWarning,
		),
	}
}

// Apply reports every obsolete inline tag occurrence.
func (r *UsemodTagRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	contentLines(ctx.Page, func(line *wikitext.TextLine) {
		for _, m := range usemodTagRe.FindAllStringSubmatchIndex(line.Text, -1) {
			name := strings.ToLower(line.Text[m[4]:m[5]])
			kind := "open"
			if m[3] > m[2] {
				kind = "close"
			}
			msg := fmt.Sprintf("UseMod tag %s %s", name, kind)
			findings = append(findings,
				lint.NewFinding(r.ID(), line,
					line.ColumnOf(m[0]), line.ColumnOf(m[1]), msg).Build())
		}
	})

	return findings, nil
}

// UsemodLinebreakRule reports the UseMod forced line break <br>. MoinMoin
// uses the <<BR>> macro instead.
type UsemodLinebreakRule struct {
	lint.BaseRule
}

// NewUsemodLinebreakRule creates a new forced line break rule.
func NewUsemodLinebreakRule() *UsemodLinebreakRule {
	return &UsemodLinebreakRule{
		BaseRule: lint.NewBaseRule(
			"WK021",
			"usemod-linebreak",
			"UseMod forced line break <br> must be the MoinMoin macro <<BR>>",
			[]string{"markup", "tag"},
			config.SeverityWarning,
		),
	}
}

// Apply reports every single-angle <br> tag.
func (r *UsemodLinebreakRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	contentLines(ctx.Page, func(line *wikitext.TextLine) {
		for _, m := range brTagRe.FindAllStringSubmatchIndex(line.Text, -1) {
			open := line.Text[m[2]:m[3]]
			closing := line.Text[m[6]:m[7]]
			if open != "<" || closing != ">" {
				continue
			}
			findings = append(findings,
				lint.NewFinding(r.ID(), line,
					line.ColumnOf(m[0]), line.ColumnOf(m[1]),
					"UseMod forced line break").Build())
		}
	})

	return findings, nil
}

// MoinMoinTagCasingRule reports double-angle tags that are not fully upper
// case. The wiki engine only recognizes <<BR>>.
type MoinMoinTagCasingRule struct {
	lint.BaseRule
}

// NewMoinMoinTagCasingRule creates a new tag casing rule.
func NewMoinMoinTagCasingRule() *MoinMoinTagCasingRule {
	return &MoinMoinTagCasingRule{
		BaseRule: lint.NewBaseRule(
			"WK022",
			"moinmoin-tag-casing",
			"MoinMoin double-angle tags must be fully upper case",
			[]string{"markup", "tag"},
			config.SeverityWarning,
		),
	}
}

// Apply reports every double-angle line break tag with wrong casing.
func (r *MoinMoinTagCasingRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	contentLines(ctx.Page, func(line *wikitext.TextLine) {
		for _, m := range brTagRe.FindAllStringSubmatchIndex(line.Text, -1) {
			open := line.Text[m[2]:m[3]]
			name := line.Text[m[4]:m[5]]
			closing := line.Text[m[6]:m[7]]
			if open != "<<" || !strings.HasPrefix(closing, ">>") || name == "BR" {
				continue
			}
			findings = append(findings,
				lint.NewFinding(r.ID(), line,
					line.ColumnOf(m[0]), line.ColumnOf(m[1]),
					"forced line break tag must be written <<BR>>").Build())
		}
	})

	return findings, nil
}
