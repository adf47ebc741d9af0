package text

import (
	"reflect"
	"testing"
)

// fixture is a multi-line string covering single blank lines, consecutive
// blank lines, and a trailing terminator, to exercise every row-boundary
// case the index's splice and lookup methods handle.
const fixture = "ads\nasdas\n\n\nasdad\n\nasdasd\nasd\na\n"

func TestNewEOLIndex(t *testing.T) {
	idx := NewEOLIndex(fixture)
	want := []int{0, 3, 9, 10, 11, 17, 18, 25, 29, 31}
	if got := idx.Offsets(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Offsets() = %v, want %v", got, want)
	}
}

func TestEOLIndexRowStart(t *testing.T) {
	idx := NewEOLIndex(fixture)
	want := []int{0, 4, 10, 11, 12, 18, 19, 26, 30, 32}
	for row, w := range want {
		got, err := idx.RowStart(row)
		if err != nil {
			t.Fatalf("RowStart(%d): unexpected error: %v", row, err)
		}
		if got != w {
			t.Errorf("RowStart(%d) = %d, want %d", row, got, w)
		}
	}
}

func TestEOLIndexRowAt(t *testing.T) {
	idx := NewEOLIndex(fixture)
	cases := []struct {
		offset, want int
	}{
		{0, 0},
		{3, 0},  // terminator byte of row 0
		{4, 1},  // first byte of row 1
		{9, 1},  // terminator byte of row 1
		{31, 8}, // terminator byte of row 8
		{32, 9}, // last row, no terminator
	}
	for _, c := range cases {
		if got := idx.RowAt(c.offset); got != c.want {
			t.Errorf("RowAt(%d) = %d, want %d", c.offset, got, c.want)
		}
	}
}

func TestEOLIndexRowStartOutOfBounds(t *testing.T) {
	idx := NewEOLIndex(fixture)
	if _, err := idx.RowStart(10); err == nil {
		t.Fatal("expected error for out-of-bounds row")
	}
}

func TestEOLIndexIsLastRow(t *testing.T) {
	idx := NewEOLIndex(fixture)
	if idx.IsLastRow(0) {
		t.Error("row 0 should not be last")
	}
	if !idx.IsLastRow(9) {
		t.Error("row 9 should be last")
	}
}

func TestEOLIndexRemoveIndexesAll(t *testing.T) {
	idx := NewEOLIndex(fixture)
	idx.removeIndexes(0, 9)
	if got, want := idx.Offsets(), []int{0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Offsets() = %v, want %v", got, want)
	}
}

func TestEOLIndexRemoveIndexesFromMiddle(t *testing.T) {
	cases := []struct {
		start, end int
		want       []int
	}{
		{1, 9, []int{0, 3}},
		{3, 5, []int{0, 3, 9, 10, 18, 25, 29, 31}},
		{6, 7, []int{0, 3, 9, 10, 11, 17, 18, 29, 31}},
	}
	for _, c := range cases {
		idx := NewEOLIndex(fixture)
		idx.removeIndexes(c.start, c.end)
		if got := idx.Offsets(); !reflect.DeepEqual(got, c.want) {
			t.Errorf("removeIndexes(%d,%d) = %v, want %v", c.start, c.end, got, c.want)
		}
	}
}

func TestEOLIndexRemoveIndexesSameRowIsNoop(t *testing.T) {
	for _, row := range []int{0, 5, 9} {
		idx := NewEOLIndex(fixture)
		idx.removeIndexes(row, row)
		if got, want := idx.Offsets(), NewEOLIndex(fixture).Offsets(); !reflect.DeepEqual(got, want) {
			t.Errorf("removeIndexes(%d,%d) changed index: got %v, want %v", row, row, got, want)
		}
	}
}

func TestEOLIndexAddOffsets(t *testing.T) {
	idx := NewEOLIndex(fixture)
	idx.addOffsets(3, 10)
	want := []int{0, 3, 9, 10, 21, 27, 28, 35, 39, 41}
	if got := idx.Offsets(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Offsets() = %v, want %v", got, want)
	}
}

func TestEOLIndexSubOffsets(t *testing.T) {
	idx := NewEOLIndex(fixture)
	idx.subOffsets(0, 2)
	want := []int{0, 1, 7, 8, 9, 15, 16, 23, 27, 29}
	if got := idx.Offsets(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Offsets() = %v, want %v", got, want)
	}
}

func TestEOLIndexCloneInto(t *testing.T) {
	src := NewEOLIndex(fixture)
	dst := &EOLIndex{}
	src.cloneInto(dst)
	if !reflect.DeepEqual(dst.Offsets(), src.Offsets()) {
		t.Fatalf("cloneInto mismatch: %v vs %v", dst.Offsets(), src.Offsets())
	}
	// Mutating src afterwards must not affect dst.
	src.addOffsets(0, 100)
	if reflect.DeepEqual(dst.Offsets(), src.Offsets()) {
		t.Fatal("cloneInto aliased storage with source")
	}
}
