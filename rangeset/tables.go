package rangeset

import (
	"unicode"

	"github.com/npillmayer/charclass/scalar"
	"golang.org/x/text/unicode/rangetable"
)

// FromRangeTable creates a set from a Unicode range table. Code-points within
// the surrogate gap are not scalar values and are dropped.
func FromRangeTable(rt *unicode.RangeTable) Set {
	if rt == nil {
		return Set{}
	}
	ranges := make([]Range, 0, len(rt.R16)+len(rt.R32))
	for _, r16 := range rt.R16 {
		ranges = appendStrided(ranges, rune(r16.Lo), rune(r16.Hi), rune(r16.Stride))
	}
	for _, r32 := range rt.R32 {
		ranges = appendStrided(ranges, rune(r32.Lo), rune(r32.Hi), rune(r32.Stride))
	}
	return normalize(ranges)
}

// FromRangeTables creates the union of a number of Unicode range tables.
func FromRangeTables(tables ...*unicode.RangeTable) Set {
	return FromRangeTable(rangetable.Merge(tables...))
}

func appendStrided(ranges []Range, lo, hi, stride rune) []Range {
	if stride <= 1 {
		return appendClipped(ranges, lo, hi)
	}
	for r := lo; r <= hi; r += stride {
		ranges = appendClipped(ranges, r, r)
	}
	return ranges
}

// appendClipped appends lo…hi without the part falling into the surrogate gap.
func appendClipped(ranges []Range, lo, hi rune) []Range {
	if hi > scalar.MaxValue {
		hi = scalar.MaxValue
	}
	if lo < scalar.GapMin {
		top := hi
		if top >= scalar.GapMin {
			top = scalar.GapMin - 1
		}
		if lo <= top {
			ranges = append(ranges, Range{Min: scalar.New(lo), Max: scalar.New(top)})
		}
	}
	if hi > scalar.GapMax {
		bottom := lo
		if bottom <= scalar.GapMax {
			bottom = scalar.GapMax + 1
		}
		if bottom <= hi {
			ranges = append(ranges, Range{Min: scalar.New(bottom), Max: scalar.New(hi)})
		}
	}
	return ranges
}

// RangeTable converts s into a Unicode range table, suitable for use with
// unicode.Is and friends. Ranges spanning the surrogate gap are split.
func (s Set) RangeTable() *unicode.RangeTable {
	rt := &unicode.RangeTable{}
	add := func(lo, hi rune) {
		if lo <= 0xFFFF {
			top := hi
			if top > 0xFFFF {
				top = 0xFFFF
			}
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(lo), Hi: uint16(top), Stride: 1})
			if top <= unicode.MaxLatin1 {
				rt.LatinOffset++
			}
			lo = top + 1
		}
		if lo <= hi {
			rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(lo), Hi: uint32(hi), Stride: 1})
		}
	}
	for i := 0; i < len(s.bounds); i += 2 {
		lo, hi := s.bounds[i].Rune(), s.bounds[i+1].Rune()
		if lo < scalar.GapMin && hi > scalar.GapMax {
			add(lo, scalar.GapMin-1)
			lo = scalar.GapMax + 1
		}
		add(lo, hi)
	}
	return rt
}
