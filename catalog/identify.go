package catalog

import (
	"strings"

	"github.com/npillmayer/charclass/rangeset"
)

// Identify tries to find the shortest symbolic token for s:
//
//   - a single newline, carriage return, tab or vertical tab → \n, \r, \t, \v
//   - a Perl shorthand class → \d, \s, \w
//   - a class of the catalog → \p{Name}
//   - the complement of a Perl shorthand class → \D, \S, \W
//   - the complement of a class of the catalog → \P{Name}
//
// The first match wins. Identify returns false if s is none of the above.
func (c *Catalog) Identify(s rangeset.Set) (string, bool) {
	if s.Cardinality() == 1 {
		if token, ok := ControlToken(s.Range(0).Min.Rune()); ok {
			return token, true
		}
	}
	if token, ok := c.identifyPairs(Pairs(s)); ok {
		return token, true
	}
	complement := Pairs(s.Complement())
	if token, ok := perlToken(complement); ok {
		return strings.ToUpper(token), true
	}
	if name, ok := c.Lookup(complement); ok {
		return `\P{` + name + `}`, true
	}
	return "", false
}

func (c *Catalog) identifyPairs(pairs []Pair) (string, bool) {
	if token, ok := perlToken(pairs); ok {
		return token, true
	}
	if name, ok := c.Lookup(pairs); ok {
		T().Debugf("identified class %s", name)
		return `\p{` + name + `}`, true
	}
	return "", false
}
