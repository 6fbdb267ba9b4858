package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []rune
	}{
		{
			name:  "ascii",
			input: []byte("abc"),
			want:  []rune{'a', 'b', 'c'},
		},
		{
			name:  "two byte sequence",
			input: []byte("a\xC3\xA9b"),
			want:  []rune{'a', 'é', 'b'},
		},
		{
			name:  "three byte sequence",
			input: []byte("\xE2\x82\xAC"),
			want:  []rune{'€'},
		},
		{
			name:  "four byte sequence",
			input: []byte("\xF0\x9F\x98\x80"),
			want:  []rune{0x1F600},
		},
		{
			name:  "empty",
			input: nil,
			want:  []rune{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units := Decode(tt.input)
			got := make([]rune, 0, len(units))
			for _, u := range units {
				got = append(got, u.CodePoint)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		// input bytes and the expected (codePoint, length) per unit.
		input   []byte
		lengths []int
		invalid []bool
	}{
		{
			name:    "stray continuation byte",
			input:   []byte{'a', 0x80, 'b'},
			lengths: []int{1, 1, 1},
			invalid: []bool{false, true, false},
		},
		{
			name:    "truncated at end of buffer",
			input:   []byte{'a', 0xE2, 0x82},
			lengths: []int{1, 2},
			invalid: []bool{false, true},
		},
		{
			name:    "truncated by non-continuation byte",
			input:   []byte{0xE2, 'A'},
			lengths: []int{1, 1},
			invalid: []bool{true, false},
		},
		{
			name:    "overlong lead C0 rejected per byte",
			input:   []byte{0xC0, 0xAF},
			lengths: []int{1, 1},
			invalid: []bool{true, true},
		},
		{
			name:    "overlong three byte sequence",
			input:   []byte{0xE0, 0x80, 0x80},
			lengths: []int{3},
			invalid: []bool{true},
		},
		{
			name:    "surrogate half",
			input:   []byte{0xED, 0xA0, 0x80},
			lengths: []int{3},
			invalid: []bool{true},
		},
		{
			name:    "code point above U+10FFFF",
			input:   []byte{0xF4, 0x90, 0x80, 0x80},
			lengths: []int{4},
			invalid: []bool{true},
		},
		{
			name:    "invalid lead F5",
			input:   []byte{0xF5, 'x'},
			lengths: []int{1, 1},
			invalid: []bool{true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units := Decode(tt.input)
			require.Len(t, units, len(tt.lengths))
			for i, u := range units {
				assert.Equal(t, tt.lengths[i], u.Span.Length, "unit %d length", i)
				assert.Equal(t, tt.invalid[i], u.IsInvalid(), "unit %d invalid", i)
			}
		})
	}
}

// Decoding is total: the spans of the result always partition the input
// buffer, gap-free and in order, no matter how corrupted the input is.
func TestDecodeSpansPartitionInput(t *testing.T) {
	inputs := [][]byte{
		[]byte("plain text"),
		[]byte("umlaut \xC3\xA4 and broken \xC3 tail"),
		{0x80, 0xBF, 0xC0, 0xE0, 0xF0, 0xF5, 0xFF},
		{0xE2, 0x82, 0xAC, 0xE2, 0x82},
		[]byte("mixed \xF0\x9F\x98\x80\xED\xA0\x80 end"),
	}

	for _, input := range inputs {
		units := Decode(input)
		offset := 0
		for i, u := range units {
			require.Equal(t, offset, u.Span.Start, "unit %d of %q", i, input)
			require.Positive(t, u.Span.Length)
			offset = u.Span.End()
		}
		assert.Equal(t, len(input), offset)
	}
}

func TestDecodeResumesAfterTruncatedSequence(t *testing.T) {
	// A truncated two-byte lead followed by a valid sequence: the decoder
	// must resume exactly at the valid lead byte.
	units := Decode([]byte{0xC3, 0xC3, 0xA9})
	require.Len(t, units, 2)
	assert.True(t, units[0].IsInvalid())
	assert.Equal(t, ByteSpan{Start: 0, Length: 1}, units[0].Span)
	assert.Equal(t, 'é', units[1].CodePoint)
	assert.Equal(t, ByteSpan{Start: 1, Length: 2}, units[1].Span)
}
