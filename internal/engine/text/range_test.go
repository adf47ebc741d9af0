package text

import "testing"

func TestRangeLenAndIsEmpty(t *testing.T) {
	r := NewRange(3, 7)
	if got, want := r.Len(), 4; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for a non-empty range")
	}
	if !(NewRange(5, 5)).IsEmpty() {
		t.Error("IsEmpty() = false for a zero-length range")
	}
}

func TestPointRangeSwappedLeavesForwardRangeAlone(t *testing.T) {
	r := PointRange{Start: Point{Row: 0, Column: 1}, End: Point{Row: 0, Column: 4}}
	if got := r.Swapped(); got != r {
		t.Errorf("Swapped() = %+v, want unchanged %+v", got, r)
	}
}

func TestPointRangeSwappedFlipsBackwardRange(t *testing.T) {
	start := Point{Row: 2, Column: 0}
	end := Point{Row: 0, Column: 5}
	got := PointRange{Start: start, End: end}.Swapped()
	want := PointRange{Start: end, End: start}
	if got != want {
		t.Errorf("Swapped() = %+v, want %+v", got, want)
	}
}

func TestPointRangeIsSingleRowAndIsEmpty(t *testing.T) {
	single := PointRange{Start: Point{Row: 1, Column: 0}, End: Point{Row: 1, Column: 3}}
	if !single.IsSingleRow() {
		t.Error("IsSingleRow() = false for a same-row range")
	}
	if single.IsEmpty() {
		t.Error("IsEmpty() = true for a non-empty range")
	}
	point := Point{Row: 1, Column: 3}
	if !(PointRange{Start: point, End: point}).IsEmpty() {
		t.Error("IsEmpty() = false for a zero-width range")
	}
}

// TestDeleteAcceptsReversedRange exercises Delete's use of PointRange.Swapped
// through the public API: passing start/end backwards must behave exactly
// like passing them forwards.
func TestDeleteAcceptsReversedRange(t *testing.T) {
	tx := New("hello world")
	if err := tx.Delete(Point{Row: 0, Column: 11}, Point{Row: 0, Column: 5}, NoopObserver{}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, want := tx.Text(), "hello"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

// TestReplaceAcceptsReversedRange is Replace's counterpart to
// TestDeleteAcceptsReversedRange.
func TestReplaceAcceptsReversedRange(t *testing.T) {
	tx := New("hello world")
	if err := tx.Replace(Point{Row: 0, Column: 11}, Point{Row: 0, Column: 6}, "there", NoopObserver{}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, want := tx.Text(), "hello there"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}
