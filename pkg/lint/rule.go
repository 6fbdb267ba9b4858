package lint

import "github.com/larpwiki/wikiscan/pkg/config"

// Rule defines the interface that all anomaly rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "WK030").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g. ["headline"]).
	Tags() []string

	// Apply executes the rule against one page and returns findings.
	//
	// Rules must:
	//   - Return one finding per anomaly occurrence.
	//   - Keep all state inside the call; a rule instance is shared
	//     across workers and must not retain per-page state.
	//   - Return error only for internal failures, not anomalies.
	Apply(ctx *RuleContext) ([]Finding, error)
}

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
type BaseRule struct {
	id       string
	name     string
	desc     string
	tags     []string
	severity config.Severity
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string, severity config.Severity) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		tags:     tags,
		severity: severity,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return r.severity
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Apply must be overridden by concrete rule implementations.
func (r *BaseRule) Apply(_ *RuleContext) ([]Finding, error) {
	return nil, nil
}
