package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitText(t *testing.T, input string) []TextLine {
	t.Helper()
	return SplitLines(Classify(Decode([]byte(input))))
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "two terminated lines",
			input: "one\ntwo\n",
			want:  []string{"one", "two"},
		},
		{
			name:  "trailing line without newline is kept",
			input: "one\ntwo",
			want:  []string{"one", "two"},
		},
		{
			name:  "carriage return stripped from text",
			input: "a\r\nb",
			want:  []string{"a", "b"},
		},
		{
			name:  "empty input yields one empty line",
			input: "",
			want:  []string{""},
		},
		{
			name:  "blank lines preserved",
			input: "a\n\nb\n",
			want:  []string{"a", "", "b"},
		},
		{
			name:  "invalid byte surfaces as replacement char",
			input: "a\x80b\n",
			want:  []string{"a�b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := splitText(t, tt.input)
			require.Len(t, lines, len(tt.want))
			for i, line := range lines {
				assert.Equal(t, i+1, line.Number)
				assert.Equal(t, tt.want[i], line.Text)
			}
		})
	}
}

func TestSplitLinesOffsets(t *testing.T) {
	lines := splitText(t, "ab\ncd\r\nef")
	require.Len(t, lines, 3)

	assert.Equal(t, 0, lines[0].StartOffset)
	assert.Equal(t, 3, lines[1].StartOffset)
	// The CR still counts toward the byte offsets even though it is
	// stripped from the reconstructed text.
	assert.Equal(t, 7, lines[2].StartOffset)

	// Points exclude the break characters.
	assert.Len(t, lines[0].Points, 2)
	assert.Len(t, lines[1].Points, 2)
	assert.Len(t, lines[2].Points, 2)
}

func TestColumnOf(t *testing.T) {
	lines := splitText(t, "héllo")
	require.Len(t, lines, 1)
	line := lines[0]

	// 'h' is byte 0, 'é' spans bytes 1-2, 'l' starts at byte 3.
	assert.Equal(t, 0, line.ColumnOf(0))
	assert.Equal(t, 1, line.ColumnOf(1))
	assert.Equal(t, 2, line.ColumnOf(3))
	assert.Equal(t, 5, line.ColumnOf(len(line.Text)))
}

func TestSpanBetween(t *testing.T) {
	lines := splitText(t, "héllo")
	require.Len(t, lines, 1)
	line := lines[0]

	span := line.SpanBetween(1, 3)
	assert.Equal(t, 1, span.Start)
	assert.Equal(t, 3, span.Length)

	// Empty range collapses to a zero-length span.
	empty := line.SpanBetween(2, 2)
	assert.Equal(t, 0, empty.Length)

	// End past the line is clamped.
	tail := line.SpanBetween(4, 99)
	assert.Equal(t, 5, tail.Start)
	assert.Equal(t, 1, tail.Length)
}

func TestParsePage(t *testing.T) {
	page := ParsePage("Orga - Liste.txt", []byte("#REDIRECT Foo\ncontent\n"))

	assert.Equal(t, "Orga - Liste.txt", page.Path)
	assert.Equal(t, 22, page.Size)
	assert.Equal(t, 2, page.LineCount())

	require.NotNil(t, page.Line(1))
	assert.Equal(t, "#REDIRECT Foo", page.Line(1).Text)
	assert.Nil(t, page.Line(0))
	assert.Nil(t, page.Line(3))
}

func TestIsCommentAndDirective(t *testing.T) {
	assert.True(t, IsComment("## a comment"))
	assert.False(t, IsComment("# directive"))
	assert.True(t, IsDirective("#format wiki"))
	assert.False(t, IsDirective("## a comment"))
	assert.False(t, IsDirective("text"))
}
