package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/larpwiki/wikiscan/pkg/runner"
)

// Severity string constants.
const (
	severityWarning = "warning"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	PageURL  string        `json:"pageUrl,omitempty"`
	Findings []JSONFinding `json:"findings"`
	Error    string        `json:"error,omitempty"`
}

// JSONFinding represents a single finding.
type JSONFinding struct {
	RuleID     string `json:"ruleId"`
	RuleName   string `json:"ruleName"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	EndColumn  int    `json:"endColumn"`
	ByteOffset int    `json:"byteOffset"`
	ByteLength int    `json:"byteLength"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesScanned      int            `json:"filesScanned"`
	FilesWithFindings int            `json:"filesWithFindings"`
	FilesErrored      int            `json:"filesErrored"`
	LinesWithFindings int            `json:"linesWithFindings"`
	TotalFindings     int            `json:"totalFindings"`
	BySeverity        map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalFindings, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:     file.Path,
			Findings: make([]JSONFinding, 0),
		}
		if r.opts.ShowURLs {
			fileResult.PageURL = PageURL(file.Path, r.opts.BaseURL)
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Result != nil {
			for _, finding := range file.Result.Findings {
				fileResult.Findings = append(fileResult.Findings, JSONFinding{
					RuleID:     finding.RuleID,
					RuleName:   finding.RuleName,
					Severity:   string(finding.Severity),
					Message:    finding.Message,
					Line:       finding.Line,
					Column:     finding.Column,
					EndColumn:  finding.EndColumn,
					ByteOffset: finding.Span.Start,
					ByteLength: finding.Span.Length,
				})
				output.Summary.TotalFindings++

				severity := string(finding.Severity)
				if severity == "" {
					severity = severityWarning
				}
				output.Summary.BySeverity[severity]++
			}

			if file.Result.HasFindings() {
				output.Summary.LinesWithFindings += file.Result.LinesWithFindings()
			}
			output.Summary.FilesScanned++
		}

		if len(fileResult.Findings) > 0 {
			output.Summary.FilesWithFindings++
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}
