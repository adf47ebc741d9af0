package text

// LineIterator is a finite, forward-only, non-restartable view over a
// Text's rows. A fresh iterator is cheap to create; it holds no allocation
// of its own, reading rows directly from the Text it was built from.
type LineIterator struct {
	t   *Text
	row int
}

// Lines returns a fresh LineIterator over t, starting at row 0.
func (t *Text) Lines() *LineIterator {
	return &LineIterator{t: t}
}

// Next returns the EOL-stripped slice of the next row and true, or ("",
// false) once every row has been yielded. Length of the full iteration is
// exactly RowCount().
func (it *LineIterator) Next() (string, bool) {
	if it.row >= it.t.eol.RowCount() {
		return "", false
	}
	line, _ := it.t.GetRow(it.row)
	it.row++
	return line, true
}

// Len returns the number of rows this iterator will yield in total.
func (it *LineIterator) Len() int { return it.t.eol.RowCount() }
