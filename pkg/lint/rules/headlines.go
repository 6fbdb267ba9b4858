package rules

import (
	"regexp"

	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/lint"
	"github.com/larpwiki/wikiscan/pkg/wikitext"
)

// maxHeadlineLevel is the deepest headline level the wiki engine renders.
const maxHeadlineLevel = 5

// headlineRe splits a headline candidate into its parts. A line qualifies
// when a run of '=' opens it (after illegal leading whitespace). The close
// tag run is optional so half-open headlines still parse.
var headlineRe = regexp.MustCompile(
	`^(\s*)(=+)(\s*)([#*]*)\s*(.*?)(\s*)(=*)(\s*)$`)

// headlineMarkupRe finds markup character runs inside headline text.
var headlineMarkupRe = regexp.MustCompile("[`']{2,}")

// headline holds the parsed parts of a headline line. Byte index pairs refer
// to the line text.
type headline struct {
	line *wikitext.TextLine

	leadingWS  [2]int // whitespace before the open tag
	openTag    [2]int // run of '='
	afterOpen  [2]int // whitespace after the open tag
	numbering  [2]int // legacy '#'/'*' numbering indicator
	text       [2]int // headline text
	beforeClos [2]int // whitespace before the close tag
	closeTag   [2]int // run of '=', may be empty
	trailingWS [2]int // whitespace after the close tag
}

// parseHeadline parses a line as a headline, returning nil when the line is
// not one.
func parseHeadline(line *wikitext.TextLine) *headline {
	m := headlineRe.FindStringSubmatchIndex(line.Text)
	if m == nil {
		return nil
	}
	return &headline{
		line:       line,
		leadingWS:  [2]int{m[2], m[3]},
		openTag:    [2]int{m[4], m[5]},
		afterOpen:  [2]int{m[6], m[7]},
		numbering:  [2]int{m[8], m[9]},
		text:       [2]int{m[10], m[11]},
		beforeClos: [2]int{m[12], m[13]},
		closeTag:   [2]int{m[14], m[15]},
		trailingWS: [2]int{m[16], m[17]},
	}
}

func (h *headline) level() int {
	return h.openTag[1] - h.openTag[0]
}

func (h *headline) empty() bool {
	return h.text[0] == h.text[1]
}

func (h *headline) hasCloseTag() bool {
	return h.closeTag[0] != h.closeTag[1]
}

// headlines calls fn for every headline candidate on a content line.
func headlines(page *wikitext.Page, fn func(h *headline)) {
	contentLines(page, func(line *wikitext.TextLine) {
		if h := parseHeadline(line); h != nil {
			fn(h)
		}
	})
}

// span builds a finding column range from a byte index pair.
func (h *headline) span(pair [2]int) (startCol, endCol int) {
	return h.line.ColumnOf(pair[0]), h.line.ColumnOf(pair[1])
}

// HeadlineLevelRule reports headlines nested deeper than level 5.
type HeadlineLevelRule struct {
	lint.BaseRule
}

// NewHeadlineLevelRule creates a new headline level rule.
func NewHeadlineLevelRule() *HeadlineLevelRule {
	return &HeadlineLevelRule{
		BaseRule: lint.NewBaseRule(
			"WK030",
			"headline-level",
			"Headlines deeper than level 5 are not rendered",
			[]string{"headline"},
			config.SeverityWarning,
		),
	}
}

// Apply reports open tags longer than five characters.
func (r *HeadlineLevelRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	headlines(ctx.Page, func(h *headline) {
		if h.level() <= maxHeadlineLevel {
			return
		}
		start, end := h.span(h.openTag)
		findings = append(findings,
			lint.NewFinding(r.ID(), h.line, start, end,
				"headline level exceeds 5").Build())
	})

	return findings, nil
}

// HeadlineWhitespaceRule reports whitespace anomalies around headline tags:
// leading whitespace before the open tag, a missing space after the open tag
// or before the close tag, and trailing whitespace after the close tag.
type HeadlineWhitespaceRule struct {
	lint.BaseRule
}

// NewHeadlineWhitespaceRule creates a new headline whitespace rule.
func NewHeadlineWhitespaceRule() *HeadlineWhitespaceRule {
	return &HeadlineWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"WK031",
			"headline-whitespace",
			"Headline tags need exactly one space towards the text and none outside",
			[]string{"headline", "whitespace"},
			config.SeverityWarning,
		),
	}
}

// Apply reports each whitespace anomaly separately.
func (r *HeadlineWhitespaceRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	headlines(ctx.Page, func(h *headline) {
		if h.leadingWS[1] > h.leadingWS[0] {
			start, end := h.span(h.leadingWS)
			findings = append(findings,
				lint.NewFinding(r.ID(), h.line, start, end,
					"headline after whitespace").Build())
		}

		// An empty headline gets its own finding; the remaining checks
		// would only pile on noise.
		if h.empty() {
			return
		}

		if h.afterOpen[0] == h.afterOpen[1] {
			at := h.text[0]
			if h.numbering[0] != h.numbering[1] {
				at = h.numbering[0]
			}
			col := h.line.ColumnOf(at)
			findings = append(findings,
				lint.NewFinding(r.ID(), h.line, col, col+1,
					"missing whitespace after headline open tag").Build())
		}

		if !h.hasCloseTag() {
			return
		}

		if h.beforeClos[0] == h.beforeClos[1] {
			col := h.line.ColumnOf(h.closeTag[0])
			findings = append(findings,
				lint.NewFinding(r.ID(), h.line, col, col+1,
					"missing whitespace before headline close tag").Build())
		}

		if h.trailingWS[1] > h.trailingWS[0] {
			start, end := h.span(h.trailingWS)
			findings = append(findings,
				lint.NewFinding(r.ID(), h.line, start, end,
					"headline ends with whitespace").Build())
		}
	})

	return findings, nil
}

// HeadlineCloseMismatchRule reports a missing close tag or one whose length
// differs from the open tag.
type HeadlineCloseMismatchRule struct {
	lint.BaseRule
}

// NewHeadlineCloseMismatchRule creates a new headline close tag rule.
func NewHeadlineCloseMismatchRule() *HeadlineCloseMismatchRule {
	return &HeadlineCloseMismatchRule{
		BaseRule: lint.NewBaseRule(
			"WK032",
			"headline-close-mismatch",
			"Headline open and close tags must have the same length",
			[]string{"headline"},
			config.SeverityWarning,
		),
	}
}

// Apply reports close tags that are absent or of the wrong length.
func (r *HeadlineCloseMismatchRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	headlines(ctx.Page, func(h *headline) {
		if h.empty() {
			return
		}

		if !h.hasCloseTag() {
			col := len(h.line.Points)
			findings = append(findings,
				lint.NewFinding(r.ID(), h.line, col-1, col,
					"headline without close tag").Build())
			return
		}

		if h.closeTag[1]-h.closeTag[0] != h.openTag[1]-h.openTag[0] {
			start, end := h.span(h.closeTag)
			findings = append(findings,
				lint.NewFinding(r.ID(), h.line, start, end,
					"headline open and close tags differ in length").Build())
		}
	})

	return findings, nil
}

// HeadlineEmptyRule reports headlines without text.
type HeadlineEmptyRule struct {
	lint.BaseRule
}

// NewHeadlineEmptyRule creates a new empty headline rule.
func NewHeadlineEmptyRule() *HeadlineEmptyRule {
	return &HeadlineEmptyRule{
		BaseRule: lint.NewBaseRule(
			"WK033",
			"headline-empty",
			"A headline needs text between its tags",
			[]string{"headline"},
			config.SeverityWarning,
		),
	}
}

// Apply reports headlines with no text between the tag runs.
func (r *HeadlineEmptyRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	headlines(ctx.Page, func(h *headline) {
		if !h.empty() {
			return
		}
		start := h.line.ColumnOf(h.openTag[1] - 1)
		findings = append(findings,
			lint.NewFinding(r.ID(), h.line, start, len(h.line.Points),
				"headline contains no text").Build())
	})

	return findings, nil
}

// HeadlineMarkupRule reports markup character runs inside headline text.
type HeadlineMarkupRule struct {
	lint.BaseRule
}

// NewHeadlineMarkupRule creates a new headline markup rule.
func NewHeadlineMarkupRule() *HeadlineMarkupRule {
	return &HeadlineMarkupRule{
		BaseRule: lint.NewBaseRule(
			"WK034",
			"headline-markup",
			"Markup inside headline text breaks section links",
			[]string{"headline", "markup"},
			config.SeverityWarning,
		),
	}
}

// Apply reports every markup run inside the headline text.
func (r *HeadlineMarkupRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	headlines(ctx.Page, func(h *headline) {
		if h.empty() {
			return
		}
		text := h.line.Text[h.text[0]:h.text[1]]
		for _, m := range headlineMarkupRe.FindAllStringIndex(text, -1) {
			start := h.line.ColumnOf(h.text[0] + m[0])
			end := h.line.ColumnOf(h.text[0] + m[1])
			findings = append(findings,
				lint.NewFinding(r.ID(), h.line, start, end,
					"headline contains markup").Build())
		}
	})

	return findings, nil
}

// HeadlineNumberingRule reports the legacy UseMod numbering indicator after
// the open tag.
type HeadlineNumberingRule struct {
	lint.BaseRule
}

// NewHeadlineNumberingRule creates a new headline numbering rule.
func NewHeadlineNumberingRule() *HeadlineNumberingRule {
	return &HeadlineNumberingRule{
		BaseRule: lint.NewBaseRule(
			"WK035",
			"headline-numbering",
			"UseMod numbering indicators have no meaning in MoinMoin headlines",
			[]string{"headline", "markup"},
			config.SeverityWarning,
		),
	}
}

// Apply reports '#'/'*' indicators between the open tag and the text.
func (r *HeadlineNumberingRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	headlines(ctx.Page, func(h *headline) {
		if h.empty() || h.numbering[0] == h.numbering[1] {
			return
		}
		start, end := h.span(h.numbering)
		findings = append(findings,
			lint.NewFinding(r.ID(), h.line, start, end,
				"headline with UseMod numbering indicator").Build())
	})

	return findings, nil
}
