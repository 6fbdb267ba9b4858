package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/lint"
)

func TestFormatFinding(t *testing.T) {
	styles := NewStyles(false)

	finding := &lint.Finding{
		RuleID:   "WK021",
		RuleName: "usemod-linebreak",
		Message:  "UseMod forced line break",
		Severity: config.SeverityWarning,
		FilePath: "page.txt",
		Line:     3,
		Column:   9,
	}

	t.Run("without excerpt", func(t *testing.T) {
		got := styles.FormatFinding(finding, "")
		assert.Equal(t, "  page.txt:3:9  warning  UseMod forced line break  (WK021)\n", got)
	})

	t.Run("with excerpt", func(t *testing.T) {
		got := styles.FormatFinding(finding, `|"a<br>b"|`)
		assert.Equal(t,
			"  page.txt:3:9  warning  UseMod forced line break  (WK021)\n"+
				"      |\"a<br>b\"|\n",
			got)
	})
}

func TestFormatSeverity(t *testing.T) {
	styles := NewStyles(false)

	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(config.SeverityWarning))
	assert.Equal(t, "info", styles.FormatSeverity(config.SeverityInfo))
	assert.Equal(t, "odd", styles.FormatSeverity(config.Severity("odd")))
}

func TestFormatFileHeader(t *testing.T) {
	styles := NewStyles(false)

	t.Run("with url and count", func(t *testing.T) {
		got := styles.FormatFileHeader("page.txt", "https://larpwiki.de/page", 2)
		assert.Equal(t, "page.txt (2 findings)\n  https://larpwiki.de/page", got)
	})

	t.Run("singular finding", func(t *testing.T) {
		got := styles.FormatFileHeader("page.txt", "", 1)
		assert.Equal(t, "page.txt (1 finding)", got)
	})

	t.Run("bare path", func(t *testing.T) {
		got := styles.FormatFileHeader("page.txt", "", 0)
		assert.Equal(t, "page.txt", got)
	})
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	// Auto mode with a non-terminal writer stays plain.
	assert.False(t, IsColorEnabled("auto", &buf))
}

func TestTerminalWidthFallback(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 80, TerminalWidth(&buf, 80))
}
