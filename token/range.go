package token

import "sort"

// TextRange is a half-open [Start, Start+Length) byte span. It is the
// element type of RangeCollection.
type TextRange struct {
	Start  int
	Length int
}

// End returns the byte offset immediately following the range.
func (r TextRange) End() int { return r.Start + r.Length }

// RangeCollection is a sorted, non-overlapping set of TextRange entries
// supporting O(log n) containment lookup (spec.md §4.2). It backs both the
// token stream and the line-span stream: the same binary-search-over-
// sorted-offsets index works identically for either, so it is implemented
// once here instead of twice.
//
// A RangeCollection is built once (via NewRangeCollection) and never
// mutated afterward, matching the tokenizer's own create-once lifecycle
// (spec.md §3 "Lifecycle").
type RangeCollection struct {
	ranges []TextRange
}

// NewRangeCollection wraps ranges, which the caller guarantees is already
// sorted by Start and non-overlapping (spec.md invariant 1). The slice is
// retained, not copied.
func NewRangeCollection(ranges []TextRange) *RangeCollection {
	return &RangeCollection{ranges: ranges}
}

// Count returns the number of ranges in the collection.
func (c *RangeCollection) Count() int { return len(c.ranges) }

// Length returns the end offset of the last range minus the start offset
// of the first, i.e. the byte span covered by the union of all ranges.
// It is 0 for an empty collection.
func (c *RangeCollection) Length() int {
	if len(c.ranges) == 0 {
		return 0
	}
	first := c.ranges[0]
	last := c.ranges[len(c.ranges)-1]
	return last.End() - first.Start
}

// At returns the i'th range. It panics if i is out of bounds, matching
// ordinary Go slice-indexing behavior.
func (c *RangeCollection) At(i int) TextRange { return c.ranges[i] }

// AtPosition is an alias for At kept for parity with the source API
// described in spec.md §4.2 ("getItemAt / getItemAtPosition" are the same
// operation under two names).
func (c *RangeCollection) AtPosition(i int) TextRange { return c.At(i) }

// Containing returns the index of the range that contains offset, using
// binary search over Start. A range [s, s+len) is considered to contain
// offset when s <= offset < s+len, except for the very last range, which
// also accepts offset == s+len (so that a lookup for the offset one past
// the final token, e.g. end-of-file, still resolves to it). Containing
// returns (0, false) if offset precedes the first range and
// (Count()-1, false) if it lies beyond every range.
func (c *RangeCollection) Containing(offset int) (index int, ok bool) {
	n := len(c.ranges)
	if n == 0 {
		return 0, false
	}

	// sort.Search finds the first range whose Start is > offset; the
	// containing range, if any, is the one immediately before it.
	i := sort.Search(n, func(i int) bool {
		return c.ranges[i].Start > offset
	})
	if i == 0 {
		return 0, false
	}
	i--

	r := c.ranges[i]
	if offset < r.Start {
		return i, false
	}
	if offset < r.End() {
		return i, true
	}
	if i == n-1 && offset == r.End() {
		return i, true
	}
	return i, false
}
