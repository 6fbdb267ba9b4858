package lint

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/wikitext"
)

// PageResult contains the findings for a single page.
type PageResult struct {
	// Page is the decoded page.
	Page *wikitext.Page

	// Findings contains all anomalies found, ordered by line number,
	// then rule ID, with ties kept in discovery order.
	Findings []Finding

	// RuleErrors contains any internal errors from rule execution.
	RuleErrors map[string]error
}

// HasFindings returns true if any anomalies were found.
func (pr *PageResult) HasFindings() bool {
	return len(pr.Findings) > 0
}

// FindingCount returns the total number of findings.
func (pr *PageResult) FindingCount() int {
	return len(pr.Findings)
}

// LinesWithFindings returns the number of distinct lines carrying findings.
func (pr *PageResult) LinesWithFindings() int {
	seen := make(map[int]struct{}, len(pr.Findings))
	for _, f := range pr.Findings {
		seen[f.Line] = struct{}{}
	}
	return len(seen)
}

// Engine coordinates decoding and rule execution for one page at a time.
// An Engine is stateless across pages; every ScanPage call builds a fresh
// page snapshot and rule contexts, so engines can be shared across workers.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// ScanPage decodes and scans a single page buffer. It never fails on
// malformed content; malformed content is exactly what it exists to report.
func (e *Engine) ScanPage(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*PageResult, error) {
	page := wikitext.ParsePage(path, content)

	resolved := ResolveRules(e.Registry, cfg)

	result := &PageResult{
		Page:       page,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("scan cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, page, cfg, rr.Config)

		findings, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range findings {
			findings[i].Severity = rr.Severity
			if findings[i].FilePath == "" {
				findings[i].FilePath = path
			}
			if findings[i].RuleName == "" {
				findings[i].RuleName = rr.Rule.Name()
			}
		}

		result.Findings = append(result.Findings, findings...)
	}

	sortFindings(result.Findings)

	return result, nil
}

// sortFindings orders findings by line number, then rule ID. The sort is
// stable, so findings on the same line from the same rule keep their
// discovery order.
func sortFindings(findings []Finding) {
	slices.SortStableFunc(findings, func(a, b Finding) int {
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.RuleID, b.RuleID)
	})
}
