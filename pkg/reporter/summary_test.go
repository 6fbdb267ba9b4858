package reporter

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larpwiki/wikiscan/pkg/runner"
)

func summaryReporter(buf *bytes.Buffer) (Reporter, error) {
	return New(Options{
		Writer: buf,
		Format: FormatSummary,
		Color:  "never",
	})
}

func TestSummaryReporter(t *testing.T) {
	result := &runner.Result{
		Files: []runner.FileOutcome{
			scanOutcome(t, "Orga - Liste.txt", "a<br>b\nbad \x80 byte\n"),
			scanOutcome(t, "clean.txt", "Nur Text.\n"),
		},
	}

	var buf bytes.Buffer
	rep, err := summaryReporter(&buf)
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.Contains(t, out, "Anomalies by Rule")
	assert.Contains(t, out, "replacement-char")
	assert.Contains(t, out, "usemod-linebreak")
	assert.Contains(t, out, "Anomalies by File")
	assert.Contains(t, out, "Orga - Liste.txt")
	assert.Contains(t, out, "Total: 2 findings (1 errors, 1 warnings) in 1 file")

	// Clean files stay out of the per-file table.
	assert.NotContains(t, out, "clean.txt")
}

func TestSummaryReporterNoFindings(t *testing.T) {
	result := &runner.Result{
		Files: []runner.FileOutcome{scanOutcome(t, "clean.txt", "Nur Text.\n")},
	}

	var buf bytes.Buffer
	rep, err := summaryReporter(&buf)
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "No anomalies found\n", buf.String())
}

func TestSummaryReporterListsUnreadableFiles(t *testing.T) {
	result := &runner.Result{
		Files: []runner.FileOutcome{{
			Path:  "gone.txt",
			Error: errors.New("read file: no such file"),
		}},
	}

	var buf bytes.Buffer
	rep, err := summaryReporter(&buf)
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "No anomalies found")
	assert.Contains(t, out, "gone.txt: read file: no such file")
}

func TestNewReporterSelectsFormat(t *testing.T) {
	var buf bytes.Buffer

	text, err := New(Options{Writer: &buf, Format: FormatText})
	require.NoError(t, err)
	assert.IsType(t, &TextReporter{}, text)

	jsonRep, err := New(Options{Writer: &buf, Format: FormatJSON})
	require.NoError(t, err)
	assert.IsType(t, &JSONReporter{}, jsonRep)

	summary, err := New(Options{Writer: &buf, Format: FormatSummary})
	require.NoError(t, err)
	assert.IsType(t, &reporterFacade{}, summary)

	// Empty format falls back to text.
	fallback, err := New(Options{Writer: &buf})
	require.NoError(t, err)
	assert.IsType(t, &TextReporter{}, fallback)

	_, err = New(Options{Writer: &buf, Format: Format("xml")})
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "text", want: FormatText},
		{input: "", want: FormatText},
		{input: "json", want: FormatJSON},
		{input: "summary", want: FormatSummary},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
