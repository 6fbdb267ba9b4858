package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/larpwiki/wikiscan/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

const (
	severityError   = "error"
	severityWarning = "warning"
	severityInfo    = "info"
)

// Options controls what Analyze computes.
type Options struct {
	// IncludeFindings includes the flat finding list.
	IncludeFindings bool

	// IncludeByFile includes the per-file aggregation.
	IncludeByFile bool

	// IncludeByRule includes the per-rule aggregation.
	IncludeByRule bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	ruleMap   map[string]*RuleAnalysis
	fileMap   map[string]*FileAnalysis
	ruleFiles map[string]map[string]bool
	fileRules map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		ruleMap:   make(map[string]*RuleAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		ruleFiles: make(map[string]map[string]bool),
		fileRules: make(map[string]map[string]bool),
	}
}

func (ctx *analysisContext) fileAnalysis(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileRules[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) ruleAnalysis(ruleID, ruleName string) *RuleAnalysis {
	if _, ok := ctx.ruleMap[ruleID]; !ok {
		ctx.ruleMap[ruleID] = &RuleAnalysis{
			RuleID:   ruleID,
			RuleName: ruleName,
		}
		ctx.ruleFiles[ruleID] = make(map[string]bool)
	}
	return ctx.ruleMap[ruleID]
}

// normalizeSeverity returns the severity string, defaulting to warning.
func normalizeSeverity(sev string) string {
	if sev == "" {
		return severityWarning
	}
	return sev
}

// Analyze transforms a runner.Result into a Report. It performs a single
// pass through the findings to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		if file.Error != nil {
			report.Totals.FilesErrored++
			report.Errors = append(report.Errors, FileError{
				FilePath: displayPath,
				Error:    file.Error.Error(),
			})
			continue
		}
		if file.Result == nil {
			continue
		}

		report.Totals.Files++
		if file.Result.HasFindings() {
			report.Totals.FilesWithFindings++
			report.Totals.Lines += file.Result.LinesWithFindings()
		}

		fa := ctx.fileAnalysis(displayPath)

		for _, f := range file.Result.Findings {
			report.Totals.Findings++
			severity := normalizeSeverity(string(f.Severity))

			switch severity {
			case severityError:
				report.Totals.Errors++
				fa.Errors++
			case severityWarning:
				report.Totals.Warnings++
				fa.Warnings++
			case severityInfo:
				report.Totals.Infos++
				fa.Infos++
			}

			fa.Findings++
			ctx.fileRules[displayPath][f.RuleID] = true

			ra := ctx.ruleAnalysis(f.RuleID, f.RuleName)
			ra.Findings++
			switch severity {
			case severityError:
				ra.Errors++
			case severityWarning:
				ra.Warnings++
			case severityInfo:
				ra.Infos++
			}
			ctx.ruleFiles[f.RuleID][displayPath] = true

			if opts.IncludeFindings {
				report.Findings = append(report.Findings, FindingEntry{
					FilePath:   displayPath,
					RuleID:     f.RuleID,
					RuleName:   f.RuleName,
					Severity:   severity,
					Message:    f.Message,
					Line:       f.Line,
					Column:     f.Column,
					ByteOffset: f.Span.Start,
					ByteLength: f.Span.Length,
				})
			}
		}
	}

	if opts.IncludeByRule {
		report.ByRule = ctx.buildByRule()
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile()
	}

	return report
}

// buildByRule constructs the ByRule slice sorted by rule ID.
func (ctx *analysisContext) buildByRule() []RuleAnalysis {
	result := make([]RuleAnalysis, 0, len(ctx.ruleMap))
	for ruleID, ra := range ctx.ruleMap {
		for f := range ctx.ruleFiles[ruleID] {
			ra.Files = append(ra.Files, f)
		}
		slices.Sort(ra.Files)
		result = append(result, *ra)
	}
	slices.SortFunc(result, func(left, right RuleAnalysis) int {
		return cmp.Compare(left.RuleID, right.RuleID)
	})
	return result
}

// buildByFile constructs the ByFile slice sorted by path.
func (ctx *analysisContext) buildByFile() []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Findings == 0 {
			continue
		}
		for r := range ctx.fileRules[path] {
			fa.Rules = append(fa.Rules, r)
		}
		slices.Sort(fa.Rules)
		result = append(result, *fa)
	}
	slices.SortFunc(result, func(left, right FileAnalysis) int {
		return cmp.Compare(left.Path, right.Path)
	})
	return result
}
