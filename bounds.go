package charclass

import (
	"errors"
	"fmt"

	"github.com/npillmayer/charclass/rangeset"
	"github.com/npillmayer/charclass/scalar"
)

// ErrInvalidBound is returned if a bound does not denote a scalar value,
// i.e. it lies within the surrogate gap or beyond unicode.MaxRune.
var ErrInvalidBound = errors.New("no valid scalar value")

// BoundKind tells how a bound of a range is to be interpreted.
type BoundKind int8

// Kinds of bounds
const (
	Unbounded BoundKind = iota // no limit
	Included                   // value belongs to the range
	Excluded                   // value does not belong to the range
)

// Codepoint is the type constraint for range bounds: raw integers or runes.
type Codepoint interface {
	~uint32 | ~int32
}

// Bound is one end of a range.
type Bound[T Codepoint] struct {
	Kind  BoundKind
	Value T
}

// Incl returns an inclusive bound.
func Incl[T Codepoint](v T) Bound[T] {
	return Bound[T]{Kind: Included, Value: v}
}

// Excl returns an exclusive bound.
func Excl[T Codepoint](v T) Bound[T] {
	return Bound[T]{Kind: Excluded, Value: v}
}

// Unbound returns a missing bound.
func Unbound[T Codepoint]() Bound[T] {
	return Bound[T]{Kind: Unbounded}
}

// Range is a range expression with independent start and end bounds.
type Range[T Codepoint] struct {
	Start, End Bound[T]
}

// Closed is the range lo…hi, both ends included.
func Closed[T Codepoint](lo, hi T) Range[T] {
	return Range[T]{Start: Incl(lo), End: Incl(hi)}
}

// HalfOpen is the range lo…hi with hi excluded.
func HalfOpen[T Codepoint](lo, hi T) Range[T] {
	return Range[T]{Start: Incl(lo), End: Excl(hi)}
}

// FromRangeU32 creates a set from a range of raw code-point integers.
//
// An excluded start bound is moved up by one, an excluded end bound is moved
// down by one; both skip the surrogate gap. Bounds which are not scalar
// values, or which cannot be moved without leaving the code-point range,
// result in an error wrapping ErrInvalidBound. A missing start bound is
// U+0000.
//
// A missing end bound is U+0000 as well, not unicode.MaxRune. Ranges open to
// the right therefore produce the empty set (or {U+0000}).
func FromRangeU32(r Range[uint32]) (rangeset.Set, error) {
	lo, err := lowerBound(r.Start.Kind, uint32(r.Start.Value))
	if err != nil {
		return rangeset.Set{}, fmt.Errorf("charclass: lower bound %#x: %w", r.Start.Value, err)
	}
	hi, err := upperBound(r.End.Kind, uint32(r.End.Value))
	if err != nil {
		return rangeset.Set{}, fmt.Errorf("charclass: upper bound %#x: %w", r.End.Value, err)
	}
	return rangeset.New(lo, hi), nil
}

// FromRangeRunes creates a set from a range of runes. Bounds are normalized
// the same way as by FromRangeU32. An excluded start of unicode.MaxRune or an
// excluded end of U+0000 yields the empty set.
//
// FromRangeRunes panics if a bound value is not a scalar value.
func FromRangeRunes(r Range[rune]) rangeset.Set {
	for _, b := range [2]Bound[rune]{r.Start, r.End} {
		if b.Kind != Unbounded && !scalar.Valid(b.Value) {
			panic(fmt.Sprintf("charclass: bound %#x is no valid scalar value", b.Value))
		}
	}
	lo, err := lowerBound(r.Start.Kind, uint32(r.Start.Value))
	if err != nil {
		return rangeset.Set{}
	}
	hi, err := upperBound(r.End.Kind, uint32(r.End.Value))
	if err != nil {
		return rangeset.Set{}
	}
	return rangeset.New(lo, hi)
}

func lowerBound(kind BoundKind, c uint32) (scalar.Value, error) {
	if kind == Unbounded {
		return scalar.Min, nil
	}
	v, ok := scalar.FromUint32(c)
	if !ok {
		return v, ErrInvalidBound
	}
	if kind == Excluded {
		if v == scalar.Max {
			return v, ErrInvalidBound
		}
		v = v.Succ()
	}
	return v, nil
}

func upperBound(kind BoundKind, c uint32) (scalar.Value, error) {
	if kind == Unbounded {
		return scalar.Min, nil
	}
	v, ok := scalar.FromUint32(c)
	if !ok {
		return v, ErrInvalidBound
	}
	if kind == Excluded {
		if v == scalar.Min {
			return v, ErrInvalidBound
		}
		v = v.Pred()
	}
	return v, nil
}

// Cardinality returns the number of scalar values in s, from 0 for the
// empty set to 1,112,064 for the set of all scalar values.
func Cardinality(s rangeset.Set) uint32 {
	return s.Cardinality()
}
