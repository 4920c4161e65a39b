package zerocopy

import "fmt"

// Range takes as little as possible (8 bytes in 64bit systems) to
// represent a stretch of the input between two cursor offsets.
type Range struct{ Start, End int }

func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Len is the number of offset units covered by the range
func (r Range) Len() int { return r.End - r.Start }

func (r Range) Contains(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}
