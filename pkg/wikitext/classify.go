package wikitext

import "unicode"

// ReplacementChar is the Unicode replacement character. It is treated the
// same as an undecodable byte run: both mean "content was corrupted", whether
// the corruption happened before or during this scan.
const ReplacementChar rune = 0xFFFD

// Category is the semantic bucket a decoded code point falls into.
type Category int

const (
	// CategoryOther covers symbols and anything not matched below.
	CategoryOther Category = iota

	// CategoryLetter covers Unicode category L.
	CategoryLetter

	// CategoryMark covers Unicode category M (combining marks).
	CategoryMark

	// CategoryDigit covers Unicode category N.
	CategoryDigit

	// CategoryPunctuation covers Unicode category P.
	CategoryPunctuation

	// CategorySpace covers Unicode category Z, horizontal tab, and the
	// format characters the exception table treats as whitespace.
	CategorySpace

	// CategoryControl covers Unicode category C outside the exceptions.
	CategoryControl

	// CategoryReplacement covers invalid units and the literal U+FFFD.
	CategoryReplacement
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryLetter:
		return "letter"
	case CategoryMark:
		return "mark"
	case CategoryDigit:
		return "digit"
	case CategoryPunctuation:
		return "punctuation"
	case CategorySpace:
		return "space"
	case CategoryControl:
		return "control"
	case CategoryReplacement:
		return "replacement"
	default:
		return "other"
	}
}

// spaceExceptions lists category-C code points that exported pages use as
// invisible whitespace. They classify as Space instead of Control, matching
// the original corpus conventions: SOFT HYPHEN, ZERO WIDTH JOINER, and
// LEFT-TO-RIGHT MARK, all category Cf.
var spaceExceptions = map[rune]bool{
	0x00AD: true,
	0x200D: true,
	0x200E: true,
}

// ClassifiedCodePoint is a DecodedUnit plus its category and grapheme-cluster
// anomaly flag. Values are immutable once produced.
type ClassifiedCodePoint struct {
	DecodedUnit

	// Category is derived purely from the code point.
	Category Category

	// ClusterAnomaly is true for a combining mark whose immediately
	// preceding code point in the same line is not a letter.
	ClusterAnomaly bool
}

// Classify assigns each decoded unit a category and detects grapheme-cluster
// anomalies. It is a single deterministic pass: a mark is anomalous unless it
// directly follows a letter or another mark in an unbroken letter cluster.
// Cluster state resets at line breaks.
func Classify(units []DecodedUnit) []ClassifiedCodePoint {
	out := make([]ClassifiedCodePoint, 0, len(units))

	markAllowed := false
	for _, u := range units {
		c := ClassifiedCodePoint{
			DecodedUnit: u,
			Category:    categoryOf(u),
		}

		switch {
		case c.Category == CategoryMark:
			c.ClusterAnomaly = !markAllowed
		case c.Category == CategoryLetter:
			markAllowed = true
		default:
			// Line breaks land here too, so cluster state resets at them.
			markAllowed = false
		}

		out = append(out, c)
	}

	return out
}

// categoryOf derives the category of a single unit.
func categoryOf(u DecodedUnit) Category {
	if u.IsInvalid() || u.CodePoint == ReplacementChar {
		return CategoryReplacement
	}

	cp := u.CodePoint
	switch {
	case cp == '\t' || spaceExceptions[cp]:
		return CategorySpace
	case unicode.IsLetter(cp):
		return CategoryLetter
	case unicode.Is(unicode.M, cp):
		return CategoryMark
	case unicode.Is(unicode.N, cp):
		return CategoryDigit
	case unicode.Is(unicode.P, cp):
		return CategoryPunctuation
	case unicode.Is(unicode.Z, cp) || cp == '\n' || cp == '\r':
		return CategorySpace
	case unicode.Is(unicode.S, cp):
		return CategoryOther
	default:
		// Category C and unassigned code points. Both indicate content
		// that has no business in a wiki page.
		return CategoryControl
	}
}

// UnicodeCategory returns the two-letter Unicode general category name for a
// code point (e.g. "Cc", "Mn"), or "Cn" when unassigned. Used for finding
// messages only, so the linear table scan is fine.
func UnicodeCategory(cp rune) string {
	if cp < 0 {
		return "Cn"
	}
	for name, table := range unicode.Categories {
		if len(name) == 2 && unicode.Is(table, cp) {
			return name
		}
	}
	return "Cn"
}
