/*
Package rangeset implements sets of Unicode scalar values as ordered lists of
disjoint, non-adjacent closed ranges.

A Set is stored as a flat sequence of alternating lower and upper bounds.
Bounds are kept sorted, ranges never overlap and never touch; adjacency takes
the surrogate gap into account, so [U+D000, U+D7FF] and [U+E000, U+E0FF]
collapse into a single range.

Sets are immutable values. All operations return new sets and never modify
their operands, so sets may be shared freely between goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rangeset

import (
	"sort"
	"strings"

	"github.com/npillmayer/charclass/internal/ucdparse"
	"github.com/npillmayer/charclass/scalar"
)

// Range is a closed range [Min, Max] of scalar values.
type Range struct {
	Min, Max scalar.Value
}

// NewRange creates a range from two runes. It panics if either rune is not a
// scalar value.
func NewRange(lo, hi rune) Range {
	return Range{Min: scalar.New(lo), Max: scalar.New(hi)}
}

// Set is a set of scalar values. The zero value is the empty set.
type Set struct {
	bounds []scalar.Value // min₀, max₀, min₁, max₁, …
}

// Empty returns the set containing no scalar value.
func Empty() Set {
	return Set{}
}

// Total returns the set of all scalar values.
func Total() Set {
	return Set{bounds: []scalar.Value{scalar.Min, scalar.Max}}
}

// New returns the set of scalar values lo…hi. If hi < lo, the set is empty.
func New(lo, hi scalar.Value) Set {
	if hi.Less(lo) {
		return Set{}
	}
	return Set{bounds: []scalar.Value{lo, hi}}
}

// FromRanges returns the union of ranges. The ranges may overlap, touch, and
// appear in any order; ranges with Max < Min are ignored.
func FromRanges(ranges ...Range) Set {
	return normalize(append([]Range(nil), ranges...))
}

// normalize sorts and merges ranges in place.
func normalize(ranges []Range) Set {
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Min.Less(ranges[j].Min)
	})
	bounds := make([]scalar.Value, 0, 2*len(ranges))
	for _, r := range ranges {
		if r.Max.Less(r.Min) {
			continue
		}
		n := len(bounds)
		if n > 0 && touches(bounds[n-1], r.Min) {
			if bounds[n-1].Less(r.Max) {
				bounds[n-1] = r.Max
			}
			continue
		}
		bounds = append(bounds, r.Min, r.Max)
	}
	return Set{bounds: bounds}
}

// touches reports whether a range ending at hi can be merged with a range
// starting at lo ≥ the preceding range start.
func touches(hi, lo scalar.Value) bool {
	return !hi.Less(lo) || (hi != scalar.Max && hi.Succ() == lo)
}

// IsEmpty reports whether s contains no scalar value.
func (s Set) IsEmpty() bool {
	return len(s.bounds) == 0
}

// IsTotal reports whether s contains every scalar value.
func (s Set) IsTotal() bool {
	return len(s.bounds) == 2 && s.bounds[0] == scalar.Min && s.bounds[1] == scalar.Max
}

// Len returns the number of disjoint ranges in s.
func (s Set) Len() int {
	return len(s.bounds) / 2
}

// Range returns the i-th range of s, 0 ≤ i < s.Len().
func (s Set) Range(i int) Range {
	return Range{Min: s.bounds[2*i], Max: s.bounds[2*i+1]}
}

// Ranges returns the disjoint ranges of s in ascending order.
func (s Set) Ranges() []Range {
	ranges := make([]Range, s.Len())
	for i := range ranges {
		ranges[i] = s.Range(i)
	}
	return ranges
}

// Bounds returns a copy of the flat bound sequence of s.
func (s Set) Bounds() []scalar.Value {
	return append([]scalar.Value(nil), s.bounds...)
}

// Equal reports whether s and o contain the same scalar values.
func (s Set) Equal(o Set) bool {
	if len(s.bounds) != len(o.bounds) {
		return false
	}
	for i, b := range s.bounds {
		if b != o.bounds[i] {
			return false
		}
	}
	return true
}

// Contains reports whether v is a member of s.
func (s Set) Contains(v scalar.Value) bool {
	n := s.Len()
	i := sort.Search(n, func(i int) bool {
		return !s.bounds[2*i+1].Less(v)
	})
	return i < n && !v.Less(s.bounds[2*i])
}

// Cardinality returns the number of scalar values in s. Surrogates are not
// counted, so the total set has a cardinality of 1,112,064.
func (s Set) Cardinality() uint32 {
	var n uint32
	for i := 0; i < len(s.bounds); i += 2 {
		n += s.bounds[i+1].Logical() - s.bounds[i].Logical() + 1
	}
	return n
}

// Visit calls f for every member of s in ascending order, until f
// returns false.
func (s Set) Visit(f func(scalar.Value) bool) {
	for i := 0; i < len(s.bounds); i += 2 {
		for v := s.bounds[i]; ; v = v.Succ() {
			if !f(v) {
				return
			}
			if v == s.bounds[i+1] {
				break
			}
		}
	}
}

// Complement returns the set of scalar values not in s.
func (s Set) Complement() Set {
	bounds := make([]scalar.Value, 0, len(s.bounds)+2)
	next := scalar.Min
	for i := 0; i < len(s.bounds); i += 2 {
		lo, hi := s.bounds[i], s.bounds[i+1]
		if lo != scalar.Min {
			bounds = append(bounds, next, lo.Pred())
		}
		if hi == scalar.Max {
			return Set{bounds: bounds}
		}
		next = hi.Succ()
	}
	return Set{bounds: append(bounds, next, scalar.Max)}
}

// Union returns the set of scalar values in s or in o.
func (s Set) Union(o Set) Set {
	ranges := make([]Range, 0, s.Len()+o.Len())
	ranges = append(ranges, s.Ranges()...)
	ranges = append(ranges, o.Ranges()...)
	return normalize(ranges)
}

// Intersection returns the set of scalar values in both s and o.
func (s Set) Intersection(o Set) Set {
	var bounds []scalar.Value
	i, j := 0, 0
	for i < len(s.bounds) && j < len(o.bounds) {
		lo := maxValue(s.bounds[i], o.bounds[j])
		hi := minValue(s.bounds[i+1], o.bounds[j+1])
		if !hi.Less(lo) {
			bounds = append(bounds, lo, hi)
		}
		if s.bounds[i+1].Less(o.bounds[j+1]) {
			i += 2
		} else {
			j += 2
		}
	}
	return Set{bounds: bounds}
}

// Difference returns the set of scalar values in s but not in o.
func (s Set) Difference(o Set) Set {
	return s.Intersection(o.Complement())
}

func minValue(a, b scalar.Value) scalar.Value {
	if a.Less(b) {
		return a
	}
	return b
}

func maxValue(a, b scalar.Value) scalar.Value {
	if a.Less(b) {
		return b
	}
	return a
}

// String lists the ranges of s in UCD notation, e.g. "0030..0039 0041..0046".
func (s Set) String() string {
	var sb strings.Builder
	for i := 0; i < len(s.bounds); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(ucdparse.FormatRange(s.bounds[i].Rune(), s.bounds[i+1].Rune()))
	}
	return sb.String()
}
