// Package wikitext turns raw page bytes into classified code points and text
// lines. It is the input layer for the rule engine: a recovering UTF-8
// decoder, a Unicode category classifier, and line reconstruction that
// preserves exact byte offsets even across invalid byte runs.
package wikitext

// Invalid marks a DecodedUnit whose bytes did not form a valid UTF-8 sequence.
const Invalid rune = -1

// maxRune is the highest valid Unicode code point (U+10FFFF).
const maxRune = 0x10FFFF

// ByteSpan identifies a byte range in the original file buffer.
type ByteSpan struct {
	// Start is the 0-based offset of the first byte.
	Start int

	// Length is the number of bytes covered.
	Length int
}

// End returns the offset one past the last byte of the span.
func (s ByteSpan) End() int {
	return s.Start + s.Length
}

// DecodedUnit is one decoding step: either a code point or an invalid byte
// run. Span always covers the consumed bytes, so downstream reporting can
// cite exact byte ranges even for undecodable content.
type DecodedUnit struct {
	// CodePoint is the decoded rune, or Invalid for undecodable bytes.
	CodePoint rune

	// Span covers the bytes consumed for this unit.
	Span ByteSpan
}

// IsInvalid reports whether this unit represents undecodable bytes.
func (u DecodedUnit) IsInvalid() bool {
	return u.CodePoint == Invalid
}

// Decode decodes buf as UTF-8, recovering after malformed sequences instead
// of aborting. It is total: the returned spans partition buf exactly, with no
// gaps and no overlaps.
//
// Recovery works byte-wise. A byte that cannot lead a sequence (a stray
// continuation byte, an overlong lead 0xC0/0xC1, or a lead 0xF5..0xFF) yields
// one invalid unit covering that single byte. A valid lead byte consumes as
// many continuation bytes as it announces; if the buffer ends early or a
// non-continuation byte appears, the bytes consumed so far become one invalid
// unit and decoding resumes at the first unconsumed byte. Sequences that
// decode to an overlong encoding, a UTF-16 surrogate, or a code point above
// U+10FFFF are reported as one invalid unit covering the whole sequence.
//
// The standard library decoder cannot serve here: it consumes exactly one
// byte per error, so a truncated three-byte sequence would surface as several
// one-byte failures instead of a single span covering the fragment.
func Decode(buf []byte) []DecodedUnit {
	units := make([]DecodedUnit, 0, len(buf))

	i := 0
	for i < len(buf) {
		b := buf[i]

		// ASCII fast path.
		if b < 0x80 {
			units = append(units, DecodedUnit{
				CodePoint: rune(b),
				Span:      ByteSpan{Start: i, Length: 1},
			})
			i++
			continue
		}

		size, minCP := sequenceShape(b)
		if size == 0 {
			// Not a valid lead byte.
			units = append(units, DecodedUnit{
				CodePoint: Invalid,
				Span:      ByteSpan{Start: i, Length: 1},
			})
			i++
			continue
		}

		cp := rune(b & leadMask(size))
		consumed := 1
		for consumed < size && i+consumed < len(buf) {
			c := buf[i+consumed]
			if c&0xC0 != 0x80 {
				break
			}
			cp = cp<<6 | rune(c&0x3F)
			consumed++
		}

		if consumed < size {
			// Truncated by end of buffer or a non-continuation byte.
			// Resume at the first byte not consumed as a continuation.
			units = append(units, DecodedUnit{
				CodePoint: Invalid,
				Span:      ByteSpan{Start: i, Length: consumed},
			})
			i += consumed
			continue
		}

		if cp < minCP || cp > maxRune || isSurrogate(cp) {
			cp = Invalid
		}
		units = append(units, DecodedUnit{
			CodePoint: cp,
			Span:      ByteSpan{Start: i, Length: size},
		})
		i += size
	}

	return units
}

// sequenceShape returns the total byte count announced by a lead byte and the
// smallest code point the sequence may legally encode. A zero size means the
// byte cannot lead a sequence.
func sequenceShape(b byte) (size int, minCP rune) {
	switch {
	case b&0xE0 == 0xC0:
		if b < 0xC2 {
			// 0xC0 and 0xC1 can only produce overlong encodings.
			return 0, 0
		}
		return 2, 0x80
	case b&0xF0 == 0xE0:
		return 3, 0x800
	case b&0xF8 == 0xF0:
		if b > 0xF4 {
			// Would encode beyond U+10FFFF.
			return 0, 0
		}
		return 4, 0x10000
	default:
		// 0x80..0xBF: continuation byte with no lead.
		return 0, 0
	}
}

// leadMask returns the payload bit mask for a lead byte of the given size.
func leadMask(size int) byte {
	switch size {
	case 2:
		return 0x1F
	case 3:
		return 0x0F
	default:
		return 0x07
	}
}

func isSurrogate(cp rune) bool {
	return cp >= 0xD800 && cp <= 0xDFFF
}
