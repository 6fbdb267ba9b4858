// Package config defines core configuration types for wikiscan.
// These types are pure data structures with no dependency on the YAML loader.
package config

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is a known level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration overrides.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	Options  map[string]any `yaml:"options"`
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// DefaultBaseURL is the wiki root used to derive page URLs from export
// file names.
const DefaultBaseURL = "https://larpwiki.de/"

// Config is the root configuration structure for wikiscan.
type Config struct {
	// BaseURL is the wiki root for rendering page URLs in reports.
	BaseURL string `yaml:"base_url"`

	// Extensions are the page file extensions to scan (with leading dot).
	Extensions []string `yaml:"extensions"`

	// Exclude contains glob patterns for files to skip. The syntax help
	// page shipped with every export intentionally contains legacy
	// markup, so exports typically exclude it here.
	Exclude []string `yaml:"exclude"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format"`

	// Jobs specifies the number of parallel workers (0 = auto).
	Jobs int `yaml:"jobs"`

	// CLI-level options (not persisted to config files).

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		BaseURL:    DefaultBaseURL,
		Extensions: []string{".txt"},
		Rules:      make(map[string]RuleConfig),
		Format:     FormatText,
		Jobs:       0,
	}
}
