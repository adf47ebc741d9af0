package text

// Text owns the byte buffer and the EOL index, implements
// insert/delete/replace/replace-full, and emits an UpdateContext to an
// Observer for every edit. It holds no mutex: callers are expected to run it
// single-threaded and cooperatively, the same way a document is owned by one
// editor session at a time; a concurrent-safe wrapper belongs at a higher
// layer that understands its own locking granularity, not baked into the
// buffer itself.
type Text struct {
	buf      []byte
	eol      *EOLIndex
	old      *EOLIndex // reused scratch for the pre-edit snapshot
	encoding Encoding
	stripBOM bool
}

// New builds a Text from s, scanning it once to build the EOL index.
func New(s string, opts ...Option) *Text {
	t := &Text{encoding: UTF8}
	for _, opt := range opts {
		opt(t)
	}
	if t.stripBOM {
		s = stripBOM(s)
	}
	t.buf = []byte(s)
	t.eol = NewEOLIndex(s)
	t.old = &EOLIndex{offsets: make([]int, 0, t.eol.RowCount())}
	return t
}

// Text returns the full document as a string.
func (t *Text) Text() string { return string(t.buf) }

// Len returns the document length in bytes.
func (t *Text) Len() int { return len(t.buf) }

// RowCount returns the number of rows; always >= 1.
func (t *Text) RowCount() int { return t.eol.RowCount() }

// Encoding returns the column encoding this Text was configured with.
func (t *Text) Encoding() Encoding { return t.encoding }

// EOLIndex returns the document's current end-of-line index. Callers that
// need to translate byte offsets to row/column positions (for example a
// cursor wanting to report its line number) read it directly rather than
// Text exposing a parallel set of offset-facing helpers of its own.
func (t *Text) EOLIndex() *EOLIndex { return t.eol }

// GetRow returns a string copy of row r's EOL-stripped bytes and true, or ("",
// false) if r is out of range.
func (t *Text) GetRow(r int) (string, bool) {
	if r < 0 || r >= t.eol.RowCount() {
		return "", false
	}
	start, end := t.rowBounds(r)
	return string(t.buf[start:end]), true
}

// rowBounds returns the [start, end) byte range of row r's content with its
// trailing terminator stripped.
func (t *Text) rowBounds(r int) (start, end int) {
	start = t.eol.MustRowStart(r)
	var rawEnd int
	if t.eol.IsLastRow(r) {
		rawEnd = len(t.buf)
	} else {
		rawEnd = t.eol.MustRowStart(r + 1)
	}
	end = rawEnd - t.eolLenBefore(rawEnd, start)
	return start, end
}

// eolLenBefore returns how many trailing terminator bytes precede rawEnd,
// looking no further back than start (the last row has none).
func (t *Text) eolLenBefore(rawEnd, start int) int {
	if rawEnd <= start {
		return 0
	}
	if rawEnd >= 2 && t.buf[rawEnd-2] == '\r' && t.buf[rawEnd-1] == '\n' {
		return 2
	}
	switch t.buf[rawEnd-1] {
	case '\n', '\r':
		return 1
	default:
		return 0
	}
}

// normalize translates p (in the Text's configured encoding) into a point
// whose Column is a validated UTF-8 byte offset within its row. If p.Row
// equals the current row count, it first extends the document with a
// synthetic newline so the position becomes valid: this is what lets a
// caller insert "at the line past EOF" without first appending an explicit
// newline of their own.
func (t *Text) normalize(p Point) (Point, error) {
	if p.Row == t.eol.RowCount() {
		t.extendForAppend()
	} else if p.Row < 0 || p.Row >= t.eol.RowCount() {
		return Point{}, &OutOfBoundsRowError{Max: t.eol.RowCount() - 1, Current: p.Row}
	}

	start, end := t.rowBounds(p.Row)
	line := string(t.buf[start:end])

	byteCol, err := columnToByte(line, p.Column, t.encoding, p.Row)
	if err != nil {
		return Point{}, err
	}
	return Point{Row: p.Row, Column: byteCol}, nil
}

// extendForAppend appends a synthetic \n to the buffer and a matching
// terminator offset to the EOL index, so that a row one past the current
// last row becomes addressable. The offset is also added to the pre-edit
// snapshot, so OldBreaklines stays in step with OldStr (which includes the
// synthetic \n) and observers can resolve the new row against it.
func (t *Text) extendForAppend() {
	off := len(t.buf)
	t.buf = append(t.buf, '\n')
	t.eol.offsets = append(t.eol.offsets, off)
	t.old.offsets = append(t.old.offsets, off)
}

// snapshotOld reuses t.old's storage to capture the pre-edit EOL index.
func (t *Text) snapshotOld() {
	t.eol.cloneInto(t.old)
}

// spliceBytes performs the in-place byte splice for an edit: a single tail
// shift regardless of whether the replacement grows, shrinks, or matches the
// replaced range's length, avoiding a full-buffer reallocation for the
// common case of a small edit in a large document.
func (t *Text) spliceBytes(start, end int, newText string) {
	oldLen := end - start
	newLen := len(newText)
	delta := newLen - oldLen

	switch {
	case delta == 0:
		copy(t.buf[start:end], newText)
	case delta < 0:
		copy(t.buf[start:start+newLen], newText)
		copy(t.buf[start+newLen:], t.buf[end:])
		t.buf = t.buf[:len(t.buf)+delta]
	default:
		total := len(t.buf)
		t.buf = append(t.buf, make([]byte, delta)...)
		copy(t.buf[end+delta:], t.buf[end:total])
		copy(t.buf[start:start+newLen], newText)
	}
}

// Delete removes the half-open range [start, end) and notifies obs before
// the byte buffer is mutated, so an observer always sees the range it is
// about to lose.
func (t *Text) Delete(start, end Point, obs Observer) error {
	t.snapshotOld()

	nStart, err := t.normalize(start)
	if err != nil {
		return err
	}
	nEnd, err := t.normalize(end)
	if err != nil {
		return err
	}
	span := PointRange{Start: nStart, End: nEnd}.Swapped()
	nStart, nEnd = span.Start, span.End

	startByte := t.eol.MustRowStart(nStart.Row) + nStart.Column
	endByte := t.eol.MustRowStart(nEnd.Row) + nEnd.Column

	t.eol.removeIndexes(nStart.Row, nEnd.Row)
	t.eol.subOffsets(nStart.Row, endByte-startByte)

	ctx := UpdateContext{
		Change: ChangeContext{
			Kind:  ChangeDelete,
			Start: nStart,
			End:   nEnd,
		},
		Breaklines:    t.eol,
		OldBreaklines: t.old,
		OldStr:        string(t.buf),
	}
	obsErr := obs.Update(ctx)

	t.spliceBytes(startByte, endByte, "")

	return obsErr
}

// Insert inserts newText at at and notifies obs before the byte buffer is
// mutated.
func (t *Text) Insert(at Point, newText string, obs Observer) error {
	t.snapshotOld()

	nAt, err := t.normalize(at)
	if err != nil {
		return err
	}

	insertByte := t.eol.MustRowStart(nAt.Row) + nAt.Column
	inserted := ScanOffsets(newText)
	for i := range inserted {
		inserted[i] += insertByte
	}

	t.eol.addOffsets(nAt.Row, len(newText))
	t.eol.insertIndexes(nAt.Row+1, inserted)

	ctx := UpdateContext{
		Change: ChangeContext{
			Kind:           ChangeInsert,
			At:             nAt,
			Text:           newText,
			InsertedBreaks: inserted,
		},
		Breaklines:    t.eol,
		OldBreaklines: t.old,
		OldStr:        string(t.buf),
	}
	obsErr := obs.Update(ctx)

	t.spliceBytes(insertByte, insertByte, newText)

	return obsErr
}

// Replace replaces the half-open range [start, end) with newText and
// notifies obs before the byte buffer is mutated.
func (t *Text) Replace(start, end Point, newText string, obs Observer) error {
	t.snapshotOld()

	nStart, err := t.normalize(start)
	if err != nil {
		return err
	}
	nEnd, err := t.normalize(end)
	if err != nil {
		return err
	}
	span := PointRange{Start: nStart, End: nEnd}.Swapped()
	nStart, nEnd = span.Start, span.End

	startByte := t.eol.MustRowStart(nStart.Row) + nStart.Column
	endByte := t.eol.MustRowStart(nEnd.Row) + nEnd.Column
	oldLen := endByte - startByte
	newLen := len(newText)

	t.eol.addOffsets(nEnd.Row, newLen-oldLen)

	inserted := ScanOffsets(newText)
	for i := range inserted {
		inserted[i] += startByte
	}
	t.eol.replaceIndexes(nStart.Row, nEnd.Row, inserted)

	ctx := UpdateContext{
		Change: ChangeContext{
			Kind:           ChangeReplace,
			Start:          nStart,
			End:            nEnd,
			Text:           newText,
			InsertedBreaks: inserted,
		},
		Breaklines:    t.eol,
		OldBreaklines: t.old,
		OldStr:        string(t.buf),
	}
	obsErr := obs.Update(ctx)

	t.spliceBytes(startByte, endByte, newText)

	return obsErr
}

// ReplaceFull discards the current document and replaces it wholesale with
// newText.
func (t *Text) ReplaceFull(newText string, obs Observer) error {
	t.snapshotOld()

	newEOL := NewEOLIndex(newText)

	ctx := UpdateContext{
		Change: ChangeContext{
			Kind: ChangeReplaceFull,
			Text: newText,
		},
		Breaklines:    newEOL,
		OldBreaklines: t.old,
		OldStr:        string(t.buf),
	}
	obsErr := obs.Update(ctx)

	t.eol = newEOL
	t.buf = []byte(newText)

	return obsErr
}

// Update dispatches change to the matching edit primitive, so callers that
// build a Change value (e.g. from a wire format) don't need a switch of
// their own.
func (t *Text) Update(change Change, obs Observer) error {
	switch change.Kind {
	case ChangeDelete:
		return t.Delete(change.Start, change.End, obs)
	case ChangeInsert:
		return t.Insert(change.At, change.Text, obs)
	case ChangeReplace:
		return t.Replace(change.Start, change.End, change.Text, obs)
	case ChangeReplaceFull:
		return t.ReplaceFull(change.Text, obs)
	default:
		panicInvariant("Update: unknown change kind")
		return nil
	}
}
