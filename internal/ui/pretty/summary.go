package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/larpwiki/wikiscan/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 findings (8 errors, 4 warnings) on 6 lines in 3 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FindingsTotal == 0 {
		msg := s.Success.Render("No anomalies found") +
			s.Dim.Render(fmt.Sprintf(" (%d files scanned)", stats.FilesScanned))
		if stats.FilesErrored > 0 {
			msg += ", " + s.Failure.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored))
		}
		return msg + "\n"
	}

	var parts []string

	findingWord := "findings"
	if stats.FindingsTotal == 1 {
		findingWord = "finding"
	}

	var severityParts []string
	if errors := stats.FindingsBySeverity["error"]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings := stats.FindingsBySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if infos := stats.FindingsBySeverity["info"]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)",
			stats.FindingsTotal, findingWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.FindingsTotal, findingWord))
	}

	lineWord := "lines"
	if stats.LinesWithFindings == 1 {
		lineWord = "line"
	}
	parts = append(parts, fmt.Sprintf("on %d %s", stats.LinesWithFindings, lineWord))

	fileWord := wordFiles
	if stats.FilesWithFindings == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithFindings, fileWord))

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files scanned:       " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesScanned)) + "\n")

	if stats.FilesWithFindings > 0 {
		builder.WriteString("  Files with findings: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithFindings)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files unreadable:    " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total findings:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.FindingsTotal)) + "\n")
	builder.WriteString("  Lines affected:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.LinesWithFindings)) + "\n")

	if errors := stats.FindingsBySeverity["error"]; errors > 0 {
		builder.WriteString("    Errors:            " +
			s.Error.Render(strconv.Itoa(errors)) + "\n")
	}
	if warnings := stats.FindingsBySeverity["warning"]; warnings > 0 {
		builder.WriteString("    Warnings:          " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if infos := stats.FindingsBySeverity["info"]; infos > 0 {
		builder.WriteString("    Info:              " +
			s.Info.Render(strconv.Itoa(infos)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FindingsBySeverity["error"] > 0:
		builder.WriteString(s.Failure.Render("Scan found encoding errors"))
	case stats.FindingsTotal > 0:
		builder.WriteString(s.Warning.Render("Scan completed with findings"))
	default:
		builder.WriteString(s.Success.Render("Scan passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
