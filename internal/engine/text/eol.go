package text

import "sort"

// EOLIndex is a flat end-of-line index: a sorted vector of byte offsets
// `[0, e1, e2, ..., en]` where offsets[0] == 0 is a sentinel (not a line
// terminator) and offsets[k] for k >= 1 is the byte index of the terminator
// of row k-1 (the \n byte when the terminator is \r\n).
//
// Keeping this as a single flat vector over the whole document, rather than
// a chunked structure, gives O(1) row lookups and a simple append-then-shift
// bulk splice at the cost of an O(n) shift on every edit that changes the
// document's total length — a reasonable trade for a buffer whose edits are
// driven by discrete row/column operations rather than bulk streaming.
type EOLIndex struct {
	offsets []int
}

// NewEOLIndex scans s for line terminators and builds a fresh index.
func NewEOLIndex(s string) *EOLIndex {
	offsets := make([]int, 1, 1+8)
	offsets[0] = 0
	offsets = append(offsets, ScanOffsets(s)...)
	return &EOLIndex{offsets: offsets}
}

// RowCount returns the number of rows; always >= 1.
func (idx *EOLIndex) RowCount() int { return len(idx.offsets) }

// RowStart returns the byte offset of the first byte of row.
// row 0 starts at offsets[0]; every other row starts one byte past its
// terminator's offset (the sentinel byte is not a terminator).
func (idx *EOLIndex) RowStart(row int) (int, error) {
	if row < 0 || row >= len(idx.offsets) {
		return 0, &OutOfBoundsRowError{Max: len(idx.offsets) - 1, Current: row}
	}
	if row == 0 {
		return idx.offsets[0], nil
	}
	return idx.offsets[row] + 1, nil
}

// MustRowStart is RowStart without the error return, for call sites that
// have already validated row against RowCount(); an out-of-range row here
// means the index itself disagrees with its own row count, not a caller
// mistake, so it panics rather than returning an error a caller could
// plausibly recover from.
func (idx *EOLIndex) MustRowStart(row int) int {
	start, err := idx.RowStart(row)
	if err != nil {
		panicInvariant("RowStart called with already-validated out-of-range row")
	}
	return start
}

// RowAt returns the row containing byte offset, clamping to the last row if
// offset is at or past the end of the document. It is the inverse of
// RowStart: a binary search over the sentinel-led offset vector, since rows
// are laid out in strictly increasing order.
func (idx *EOLIndex) RowAt(offset int) int {
	// offsets[k] for k >= 1 is the terminator byte of row k-1, so the first
	// k with offsets[k] >= offset is the first row boundary offset hasn't
	// reached yet; the row just before that boundary is the answer. If no
	// such k exists, offset is in the last row.
	k := sort.Search(len(idx.offsets), func(k int) bool {
		return k >= 1 && idx.offsets[k] >= offset
	})
	return k - 1
}

// IsLastRow reports whether row is the final row of the index.
func (idx *EOLIndex) IsLastRow(row int) bool {
	if row < 0 || row >= len(idx.offsets) {
		panicInvariant("IsLastRow called with out-of-range row")
	}
	return len(idx.offsets)-1 == row
}

// LastRowStart returns the byte offset of the start of the final row.
func (idx *EOLIndex) LastRowStart() int {
	return idx.MustRowStart(idx.RowCount() - 1)
}

// Offsets returns a copy of the raw offset vector, including the leading
// sentinel. It is a read-only view: mutating the returned slice does not
// affect the index.
func (idx *EOLIndex) Offsets() []int {
	out := make([]int, len(idx.offsets))
	copy(out, idx.offsets)
	return out
}

// cloneInto overwrites dst's backing storage with idx's contents, reusing
// dst's capacity when possible, so the pre-edit snapshot Text keeps around
// doesn't allocate fresh storage on every edit.
func (idx *EOLIndex) cloneInto(dst *EOLIndex) {
	if cap(dst.offsets) >= len(idx.offsets) {
		dst.offsets = dst.offsets[:len(idx.offsets)]
	} else {
		dst.offsets = make([]int, len(idx.offsets))
	}
	copy(dst.offsets, idx.offsets)
}

// insertIndexes splices indexes into the vector at position at (before the
// current element at that position, if any), growing the index.
func (idx *EOLIndex) insertIndexes(at int, indexes []int) {
	if len(indexes) == 0 {
		return
	}
	idx.offsets = append(idx.offsets[:at], append(append([]int{}, indexes...), idx.offsets[at:]...)...)
}

// removeIndexes removes the offsets in (start, end] — i.e. indexes
// start+1..=end inclusive — a no-op if start+1 > end.
func (idx *EOLIndex) removeIndexes(start, end int) {
	if start+1 > end {
		return
	}
	idx.offsets = append(idx.offsets[:start+1], idx.offsets[end+1:]...)
}

// replaceIndexes overwrites the offsets in (start, end] with replacement,
// growing or shrinking the vector as needed.
func (idx *EOLIndex) replaceIndexes(start, end int, replacement []int) {
	tail := append([]int{}, idx.offsets[end+1:]...)
	idx.offsets = append(idx.offsets[:start+1], replacement...)
	idx.offsets = append(idx.offsets, tail...)
}

// addOffsets adds by to every offset for rows strictly greater than row.
func (idx *EOLIndex) addOffsets(row, by int) {
	if row+1 >= len(idx.offsets) {
		return
	}
	for i := row + 1; i < len(idx.offsets); i++ {
		idx.offsets[i] += by
	}
}

// subOffsets subtracts by from every offset for rows strictly greater than
// row.
func (idx *EOLIndex) subOffsets(row, by int) {
	if row+1 >= len(idx.offsets) {
		return
	}
	for i := row + 1; i < len(idx.offsets); i++ {
		idx.offsets[i] -= by
	}
}
