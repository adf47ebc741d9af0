package text

import "fmt"

// Range represents a byte range in the buffer. Start is inclusive, End is
// exclusive: [Start, End).
type Range struct {
	Start ByteOffset
	End   ByteOffset
}

// NewRange creates a new Range from start and end offsets.
func NewRange(start, end ByteOffset) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() ByteOffset { return r.End - r.Start }

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool { return r.Start == r.End }

// PointRange represents a half-open range using row/column positions:
// [Start, End), with End exclusive in row/column terms the same way Range's
// End is exclusive in byte terms.
type PointRange struct {
	Start Point
	End   Point
}

// NewPointRange creates a new PointRange from start and end points.
func NewPointRange(start, end Point) PointRange {
	return PointRange{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r PointRange) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start.String(), r.End.String())
}

// IsEmpty returns true if start equals end.
func (r PointRange) IsEmpty() bool { return r.Start.Compare(r.End) == 0 }

// IsSingleRow returns true if the range spans only one row.
func (r PointRange) IsSingleRow() bool { return r.Start.Row == r.End.Row }

// Swapped returns r with Start and End swapped if Start is after End, so a
// caller-supplied range that runs backwards still normalises to a valid
// half-open span instead of being rejected outright.
func (r PointRange) Swapped() PointRange {
	if r.Start.Compare(r.End) > 0 {
		return PointRange{Start: r.End, End: r.Start}
	}
	return r
}
