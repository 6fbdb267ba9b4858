package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		cp   rune
		want Category
	}{
		{name: "ascii letter", cp: 'a', want: CategoryLetter},
		{name: "umlaut", cp: 'ä', want: CategoryLetter},
		{name: "digit", cp: '7', want: CategoryDigit},
		{name: "punctuation", cp: '.', want: CategoryPunctuation},
		{name: "space", cp: ' ', want: CategorySpace},
		{name: "tab counts as space", cp: '\t', want: CategorySpace},
		{name: "newline counts as space", cp: '\n', want: CategorySpace},
		{name: "soft hyphen exception", cp: 0x00AD, want: CategorySpace},
		{name: "zero width joiner exception", cp: 0x200D, want: CategorySpace},
		{name: "left-to-right mark exception", cp: 0x200E, want: CategorySpace},
		{name: "combining acute accent", cp: 0x0301, want: CategoryMark},
		{name: "bell control", cp: 0x07, want: CategoryControl},
		{name: "escape control", cp: 0x1B, want: CategoryControl},
		{name: "unassigned code point", cp: 0x0378, want: CategoryControl},
		{name: "currency symbol is other", cp: '€', want: CategoryOther},
		{name: "math symbol is other", cp: '+', want: CategoryOther},
		{name: "literal replacement char", cp: ReplacementChar, want: CategoryReplacement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := categoryOf(DecodedUnit{CodePoint: tt.cp, Span: ByteSpan{Length: 1}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryOfInvalidUnit(t *testing.T) {
	units := Decode([]byte{0x80})
	require.Len(t, units, 1)
	points := Classify(units)
	assert.Equal(t, CategoryReplacement, points[0].Category)
}

func TestClassifyClusterAnomalies(t *testing.T) {
	mark := string(rune(0x0301))

	tests := []struct {
		name  string
		input string
		// anomalies holds the 0-based indices of units flagged as
		// cluster anomalies.
		anomalies []int
	}{
		{
			name:      "mark after letter is fine",
			input:     "a" + mark,
			anomalies: nil,
		},
		{
			name:      "mark chain after letter is fine",
			input:     "a" + mark + mark,
			anomalies: nil,
		},
		{
			name:      "mark at start of input",
			input:     mark + "a",
			anomalies: []int{0},
		},
		{
			name:      "mark after space",
			input:     "a " + mark,
			anomalies: []int{2},
		},
		{
			name:      "mark after digit",
			input:     "1" + mark,
			anomalies: []int{1},
		},
		{
			name:      "mark after punctuation",
			input:     "." + mark,
			anomalies: []int{1},
		},
		{
			name:      "line break resets the cluster",
			input:     "a\n" + mark,
			anomalies: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Classify(Decode([]byte(tt.input)))

			var got []int
			for i, p := range points {
				if p.ClusterAnomaly {
					got = append(got, i)
				}
			}
			assert.Equal(t, tt.anomalies, got)
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "letter", CategoryLetter.String())
	assert.Equal(t, "mark", CategoryMark.String())
	assert.Equal(t, "replacement", CategoryReplacement.String())
	assert.Equal(t, "other", CategoryOther.String())
}

func TestUnicodeCategory(t *testing.T) {
	assert.Equal(t, "Ll", UnicodeCategory('a'))
	assert.Equal(t, "Cc", UnicodeCategory(0x07))
	assert.Equal(t, "Mn", UnicodeCategory(0x0301))
	assert.Equal(t, "Cn", UnicodeCategory(0x0378))
}
