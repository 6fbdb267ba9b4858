// Package analysis computes aggregate views of scan results for reporting.
package analysis

import "time"

// Report contains pre-computed views of scan results.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Findings is the flat list for detailed output.
	Findings []FindingEntry `json:"findings,omitempty"`

	// ByFile groups findings by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByRule groups findings by rule.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`

	// Errors lists files that could not be read.
	Errors []FileError `json:"errors,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// FindingEntry represents a single finding in the report.
type FindingEntry struct {
	FilePath   string `json:"filePath"`
	RuleID     string `json:"ruleId"`
	RuleName   string `json:"ruleName"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	ByteOffset int    `json:"byteOffset"`
	ByteLength int    `json:"byteLength"`
}

// FileError records a file that could not be read.
type FileError struct {
	FilePath string `json:"filePath"`
	Error    string `json:"error"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files             int `json:"filesScanned"`
	FilesWithFindings int `json:"filesWithFindings"`
	FilesErrored      int `json:"filesErrored"`
	Lines             int `json:"linesWithFindings"`
	Findings          int `json:"totalFindings"`
	Errors            int `json:"errors"`
	Warnings          int `json:"warnings"`
	Infos             int `json:"infos"`
}

// HasFindings returns true if there are any findings.
func (t Totals) HasFindings() bool {
	return t.Findings > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Findings int      `json:"findings"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Rules    []string `json:"rules,omitempty"`
}

// RuleAnalysis contains aggregated data for a single rule.
type RuleAnalysis struct {
	RuleID   string   `json:"ruleId"`
	RuleName string   `json:"ruleName"`
	Findings int      `json:"findings"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Files    []string `json:"files,omitempty"`
}
