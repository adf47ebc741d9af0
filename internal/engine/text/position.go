package text

import "fmt"

// ByteOffset is a byte position into a Text's buffer.
type ByteOffset = int

// Encoding selects how a Point's Column field is interpreted.
type Encoding uint8

const (
	// UTF8 interprets Column as a byte offset within the row.
	UTF8 Encoding = iota
	// UTF16 interprets Column as a count of UTF-16 code units.
	UTF16
	// UTF32 interprets Column as a count of Unicode codepoints.
	UTF32
	// NthChar interprets Column as a count of Unicode codepoints from the
	// start of the row, identically to UTF32. It exists as a separate named
	// encoding purely so a caller driving the buffer with a character count
	// (e.g. a REPL or test harness counting runes rather than UTF-16 units)
	// gets errors reported against the encoding it actually asked for,
	// rather than being told its column was out of bounds "in UTF-32."
	NthChar
)

// String returns a human-readable name for the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case UTF16:
		return "utf16"
	case UTF32:
		return "utf32"
	case NthChar:
		return "nthchar"
	default:
		return "unknown"
	}
}

// Point is a row/column position in a document's configured encoding.
// Row and Column are both 0-indexed. Column is interpreted according to
// the Text's Encoding: a byte offset for UTF8, a UTF-16 code unit count
// for UTF16, a codepoint count for UTF32 or NthChar.
type Point struct {
	Row    int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool { return p.Compare(other) < 0 }

// After returns true if p comes after other.
func (p Point) After(other Point) bool { return p.Compare(other) > 0 }

// IsZero returns true if this is the zero point (0:0).
func (p Point) IsZero() bool { return p.Row == 0 && p.Column == 0 }
