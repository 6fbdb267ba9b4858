package pretty

import (
	"fmt"
	"strings"

	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/lint"
)

// FormatFinding formats a single finding for terminal output. The excerpt,
// when non-empty, is printed indented below the finding line.
func (s *Styles) FormatFinding(finding *lint.Finding, excerpt string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(finding.FilePath),
		finding.Line,
		finding.Column,
	)

	severity := s.FormatSeverity(finding.Severity)
	ruleDisplay := s.RuleID.Render("(" + finding.RuleID + ")")

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(finding.Message),
		ruleDisplay,
	))

	if excerpt != "" {
		builder.WriteString("      " + excerpt + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatFileHeader formats a file header for grouped output. The page URL,
// when non-empty, is printed on its own line so it can be opened directly.
func (s *Styles) FormatFileHeader(path, pageURL string, findingCount int) string {
	header := s.FilePath.Render(path)
	if findingCount > 0 {
		noun := "findings"
		if findingCount == 1 {
			noun = "finding"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", findingCount, noun))
	}
	if pageURL != "" {
		header += "\n  " + s.PageURL.Render(pageURL)
	}
	return header
}
