package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"

	"github.com/larpwiki/wikiscan/internal/ui/pretty"
	"github.com/larpwiki/wikiscan/pkg/lint"
	"github.com/larpwiki/wikiscan/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by file.
type TextReporter struct {
	opts         Options
	styles       *pretty.Styles
	bw           *bufio.Writer
	excerptWidth int
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	excerptWidth := opts.ExcerptWidth
	if excerptWidth <= 0 {
		// Leave room for the excerpt indentation and delimiters.
		excerptWidth = pretty.TerminalWidth(opts.Writer, pretty.DefaultExcerptWidth+10) - 10
	}
	return &TextReporter{
		opts:         opts,
		styles:       pretty.NewStyles(colorEnabled),
		bw:           bufio.NewWriterSize(opts.Writer, bufWriterSize),
		excerptWidth: excerptWidth,
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to scan."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		displayPath := r.displayPath(file.Path)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(displayPath),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || !file.Result.HasFindings() {
			continue
		}

		pageURL := ""
		if r.opts.ShowURLs {
			pageURL = PageURL(file.Path, r.opts.BaseURL)
		}
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(displayPath, pageURL, len(file.Result.Findings)))

		for i := range file.Result.Findings {
			finding := &file.Result.Findings[i]
			fmt.Fprint(r.bw, r.styles.FormatFinding(finding, r.excerpt(file.Result, finding)))
			total++
		}

		// Blank line between files.
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// excerpt renders the flagged line portion for a finding, or "" for
// file-level findings and disabled excerpts.
func (r *TextReporter) excerpt(pageResult *lint.PageResult, finding *lint.Finding) string {
	if !r.opts.ShowExcerpts || finding.Line == 0 || pageResult.Page == nil {
		return ""
	}
	line := pageResult.Page.Line(finding.Line)
	if line == nil {
		return ""
	}
	return r.styles.FormatExcerpt(line.Text, finding.Column-1, finding.EndColumn-1, r.excerptWidth)
}

// displayPath makes a path relative to the working directory when possible.
func (r *TextReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	relPath, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil {
		return path
	}
	return relPath
}
