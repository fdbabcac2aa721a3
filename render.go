package charclass

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/charclass/catalog"
	"github.com/npillmayer/charclass/rangeset"
	"github.com/npillmayer/charclass/scalar"
)

// Renderer renders sets as regular expression character classes, looking up
// named classes in a catalog. Renderers are safe for concurrent use, as long
// as their catalog is not modified.
type Renderer struct {
	catalog *catalog.Catalog
}

// NewRenderer creates a renderer for a catalog. If c is nil, the default
// catalog is used.
func NewRenderer(c *catalog.Catalog) *Renderer {
	return &Renderer{catalog: c}
}

// ToRegex renders s using the default catalog.
//
// The result is `[]` for the empty set, `.` for the set of all scalar values,
// a symbolic token if s is a named class or the complement of one, and an
// explicit bracket expression otherwise.
func ToRegex(s rangeset.Set) string {
	return NewRenderer(nil).Render(s)
}

// Render returns the canonical character class for s. Render never fails;
// the explicit bracket expression is always available as a last resort.
func (r *Renderer) Render(s rangeset.Set) string {
	if s.IsEmpty() {
		return "[]"
	} else if s.IsTotal() {
		return "."
	}
	c := r.catalog
	if c == nil {
		c = catalog.Default()
	}
	if token, ok := c.Identify(s); ok {
		return token
	}
	return renderRanges(s)
}

// renderRanges writes either s or its complement, whichever has fewer
// ranges, as a bracket expression. A set consisting of a single value is
// written without brackets.
func renderRanges(s rangeset.Set) string {
	set, negated := s, false
	if complement := s.Complement(); complement.Len() < s.Len() {
		set, negated = complement, true
	}
	T().Debugf("rendering %d ranges, negated = %v", set.Len(), negated)
	buf := renderBuffers.borrow()
	defer renderBuffers.release(buf)
	if !negated && set.Len() == 1 && set.Range(0).Min == set.Range(0).Max {
		writeEscaped(buf, set.Range(0).Min)
		return buf.String()
	}
	buf.WriteByte('[')
	if negated {
		buf.WriteByte('^')
	}
	for i := 0; i < set.Len(); i++ {
		rng := set.Range(i)
		writeEscaped(buf, rng.Min)
		switch {
		case rng.Min == rng.Max:
		case rng.Min.Succ() == rng.Max:
			writeEscaped(buf, rng.Max) // two values need no dash
		default:
			buf.WriteByte('-')
			writeEscaped(buf, rng.Max)
		}
	}
	buf.WriteByte(']')
	return buf.String()
}

// metaChars have to be escaped within and outside of brackets.
const metaChars = `*+?()[]{}|\-^.`

// Escape returns the representation of a single scalar value within a
// character class.
func Escape(v scalar.Value) string {
	var buf bytes.Buffer
	writeEscaped(&buf, v)
	return buf.String()
}

func writeEscaped(buf *bytes.Buffer, v scalar.Value) {
	r := v.Rune()
	if r >= 0x20 && r <= 0x7e {
		if strings.ContainsRune(metaChars, r) {
			buf.WriteByte('\\')
		}
		buf.WriteRune(r)
		return
	}
	if token, ok := catalog.ControlToken(r); ok {
		buf.WriteString(token)
		return
	}
	fmt.Fprintf(buf, `\u{%04x}`, r)
}
