package runner

import "github.com/larpwiki/wikiscan/pkg/lint"

// FileOutcome wraps a PageResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was scanned.
	Path string

	// Result contains the page result for this file.
	// Nil if the file could not be read.
	Result *lint.PageResult

	// Error is set if the file could not be read. Read failures are
	// scoped to the one file; they never abort the run.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesScanned is the number of files successfully scanned.
	FilesScanned int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FilesWithFindings is the number of files with at least one finding.
	FilesWithFindings int

	// LinesWithFindings is the number of distinct lines carrying findings,
	// summed over all files.
	LinesWithFindings int

	// FindingsTotal is the total number of findings across all files.
	FindingsTotal int

	// FindingsBySeverity maps severity levels to counts.
	FindingsBySeverity map[string]int
}

// Result is the overall runner result. Files appear in submission order
// regardless of worker completion order.
type Result struct {
	// Files contains the outcome for each scanned file.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFindings reports whether any findings were produced.
func (r *Result) HasFindings() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		FindingsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesScanned++

	count := outcome.Result.FindingCount()
	r.Stats.FindingsTotal += count
	if count > 0 {
		r.Stats.FilesWithFindings++
		r.Stats.LinesWithFindings += outcome.Result.LinesWithFindings()
	}

	for _, f := range outcome.Result.Findings {
		severity := string(f.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.FindingsBySeverity[severity]++
	}
}
