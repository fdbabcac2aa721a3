/*
Package scalar implements Unicode scalar values, i.e. code-points outside of
the UTF-16 surrogate range U+D800…U+DFFF.

Arithmetic on scalar values treats the code-point axis as contiguous: the
surrogate gap is cut out, so that U+D7FF + 1 = U+E000 and U+E000 − 1 = U+D7FF.
Adding or subtracting beyond the limits of the scalar range is a programming
error and will panic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scalar

import (
	"fmt"
	"unicode"
)

// Boundaries of the surrogate gap and of the code-point range.
const (
	GapMin   = 0xD800             // first surrogate
	GapMax   = 0xDFFF             // last surrogate
	GapSize  = GapMax - GapMin + 1 // 0x800
	MaxValue = unicode.MaxRune    // 0x10FFFF
)

// maxLogical is the position of MaxValue on the gap-free axis.
const maxLogical = MaxValue - GapSize

// Value is a single Unicode scalar value. The zero value is U+0000.
//
// Values are ordered numerically. A Value is always valid: it will never
// hold a surrogate or a code-point above unicode.MaxRune.
type Value struct {
	r rune
}

// Some well-known values.
var (
	Min = Value{0}
	Max = Value{MaxValue}
	One = Value{1}
)

// New creates a scalar value from a rune. New panics if r is not a scalar
// value; use FromUint32 for unchecked input.
func New(r rune) Value {
	if !Valid(r) {
		panic(fmt.Sprintf("scalar: %#x is no valid scalar value", r))
	}
	return Value{r}
}

// FromUint32 creates a scalar value from an unchecked integer. It reports
// false if c lies within the surrogate gap or exceeds unicode.MaxRune.
func FromUint32(c uint32) (Value, bool) {
	if c > MaxValue || (c >= GapMin && c <= GapMax) {
		return Value{}, false
	}
	return Value{rune(c)}, true
}

// Valid reports whether r is a Unicode scalar value.
func Valid(r rune) bool {
	return r >= 0 && r <= MaxValue && (r < GapMin || r > GapMax)
}

// Rune returns v as a rune.
func (v Value) Rune() rune {
	return v.r
}

// Uint32 returns the code of v.
func (v Value) Uint32() uint32 {
	return uint32(v.r)
}

// Logical returns the position of v on the code-point axis with the
// surrogate gap removed. Values at or above the gap are shifted down by
// GapSize.
func (v Value) Logical() uint32 {
	c := uint32(v.r)
	if c >= GapMin {
		c -= GapSize
	}
	return c
}

// fromLogical is the inverse of Logical.
func fromLogical(l uint32) Value {
	if l >= GapMin {
		l += GapSize
	}
	return Value{rune(l)}
}

// Add returns v + w on the gap-free axis. It panics if the sum exceeds
// unicode.MaxRune.
func (v Value) Add(w Value) Value {
	sum := v.Logical() + w.Logical()
	if sum > maxLogical {
		panic("scalar: attempt to add with overflow")
	}
	return fromLogical(sum)
}

// Sub returns v − w on the gap-free axis. It panics if w > v.
func (v Value) Sub(w Value) Value {
	lv, lw := v.Logical(), w.Logical()
	if lw > lv {
		panic("scalar: attempt to subtract with overflow")
	}
	return fromLogical(lv - lw)
}

// Succ returns the successor v + 1, skipping the surrogate gap.
func (v Value) Succ() Value {
	return v.Add(One)
}

// Pred returns the predecessor v − 1, skipping the surrogate gap.
func (v Value) Pred() Value {
	return v.Sub(One)
}

// Compare returns -1, 0 or +1 depending on whether v is less than, equal to,
// or greater than w.
func (v Value) Compare(w Value) int {
	switch {
	case v.r < w.r:
		return -1
	case v.r > w.r:
		return 1
	}
	return 0
}

// Less reports whether v < w.
func (v Value) Less(w Value) bool {
	return v.r < w.r
}

// String displays printable ASCII as-is and everything else as a
// hexadecimal escape `\u{hhhh}`.
func (v Value) String() string {
	if v.r >= 0x20 && v.r <= 0x7e {
		return string(v.r)
	}
	return fmt.Sprintf("\\u{%04x}", v.r)
}
