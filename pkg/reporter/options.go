package reporter

import (
	"io"
	"os"

	"github.com/larpwiki/wikiscan/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowExcerpts includes source line excerpts below findings.
	ShowExcerpts bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// ShowURLs prints the wiki page URL under each file header.
	ShowURLs bool

	// Compact uses compact/minified output where applicable.
	Compact bool

	// BaseURL is the wiki base URL used to derive page URLs.
	BaseURL string

	// ExcerptWidth is the display budget for source excerpts.
	// Zero means derive it from the terminal width.
	ExcerptWidth int

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:       os.Stdout,
		ErrorWriter:  os.Stderr,
		Format:       FormatText,
		Color:        "auto",
		ShowExcerpts: true,
		ShowSummary:  true,
		ShowURLs:     true,
		Compact:      false,
		BaseURL:      config.DefaultBaseURL,
	}
}
