package text

import "unicode/utf8"

// columnToByte translates col, expressed in enc over line (an EOL-stripped
// row slice), into a byte offset within line. It accepts col == 0 (returns
// 0) and col == the unit count of the whole line (returns len(line)); it
// fails with InBetweenCharBoundariesError if col lies inside a codepoint,
// and OutOfBoundsColumnError otherwise. row is only used to annotate any
// returned error with the row the caller was addressing.
func columnToByte(line string, col int, enc Encoding, row int) (int, error) {
	switch enc {
	case UTF8:
		return utf8ColumnToByte(line, col, row)
	case UTF16:
		return utf16ColumnToByte(line, col, row)
	case UTF32, NthChar:
		return codepointColumnToByte(line, col, enc, row)
	default:
		panicInvariant("columnToByte: unknown encoding")
		return 0, nil
	}
}

// byteToColumn is the inverse of columnToByte: a validated UTF-8 byte
// offset within line translated back into col-in-enc, for consumers that
// want a position reported back in whatever encoding they're driving the
// buffer with.
func byteToColumn(line string, byteOff int, enc Encoding) int {
	switch enc {
	case UTF8:
		return byteOff
	case UTF16:
		return utf16ByteToColumn(line, byteOff)
	case UTF32, NthChar:
		return codepointByteToColumn(line, byteOff)
	default:
		panicInvariant("byteToColumn: unknown encoding")
		return 0
	}
}

func utf8ColumnToByte(line string, col int, row int) (int, error) {
	if col < 0 || col > len(line) {
		return 0, &OutOfBoundsColumnError{Row: row, Column: col, Encoding: UTF8}
	}
	if col < len(line) && !utf8.RuneStart(line[col]) {
		return 0, &InBetweenCharBoundariesError{Encoding: UTF8}
	}
	return col, nil
}

func utf16ColumnToByte(line string, col int, row int) (int, error) {
	if col == 0 {
		return 0, nil
	}
	units := 0
	for i, r := range line {
		size := 1
		if r >= 0x10000 {
			size = 2
		}
		if units == col {
			return i, nil
		}
		if units < col && col < units+size {
			return 0, &InBetweenCharBoundariesError{Encoding: UTF16}
		}
		units += size
	}
	if units == col {
		return len(line), nil
	}
	return 0, &OutOfBoundsColumnError{Row: row, Column: col, Encoding: UTF16}
}

func codepointColumnToByte(line string, col int, enc Encoding, row int) (int, error) {
	if col == 0 {
		return 0, nil
	}
	count := 0
	for i := range line {
		if count == col {
			return i, nil
		}
		count++
	}
	if count == col {
		return len(line), nil
	}
	return 0, &OutOfBoundsColumnError{Row: row, Column: col, Encoding: enc}
}

func utf16ByteToColumn(line string, byteOff int) int {
	units := 0
	for i, r := range line {
		if i >= byteOff {
			break
		}
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
	}
	return units
}

func codepointByteToColumn(line string, byteOff int) int {
	count := 0
	for i := range line {
		if i >= byteOff {
			break
		}
		count++
	}
	return count
}
