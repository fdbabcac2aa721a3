package catalog

import (
	"sync"
	"unicode"

	"github.com/npillmayer/charclass/rangeset"
)

// Perl shorthand classes, in their Unicode-aware definitions.
//
// \d is Nd, \s is White_Space, and \w is UTS#18 <word_character>:
// Alphabetic, marks, decimal numbers, connector punctuation and Join_Control.
var (
	perlDecimal []Pair
	perlSpace   []Pair
	perlWord    []Pair
)

var perlOnce sync.Once

func setupPerlClasses() {
	perlOnce.Do(func() {
		perlDecimal = Pairs(rangeset.FromRangeTable(unicode.Nd))
		perlSpace = Pairs(rangeset.FromRangeTable(unicode.White_Space))
		perlWord = Pairs(rangeset.FromRangeTables(
			// Alphabetic
			unicode.Lu, unicode.Other_Uppercase,
			unicode.Ll, unicode.Other_Lowercase,
			unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
			unicode.Other_Alphabetic,
			// plus
			unicode.M, unicode.Nd, unicode.Pc, unicode.Join_Control,
		))
	})
}

// PerlClass returns the set behind a Perl shorthand class, given by its
// letter 'd', 's' or 'w'.
func PerlClass(letter rune) (rangeset.Set, bool) {
	setupPerlClasses()
	var pairs []Pair
	switch letter {
	case 'd':
		pairs = perlDecimal
	case 's':
		pairs = perlSpace
	case 'w':
		pairs = perlWord
	default:
		return rangeset.Set{}, false
	}
	ranges := make([]rangeset.Range, len(pairs))
	for i, p := range pairs {
		ranges[i] = rangeset.NewRange(p.Lo, p.Hi)
	}
	return rangeset.FromRanges(ranges...), true
}

func perlToken(pairs []Pair) (string, bool) {
	setupPerlClasses()
	switch {
	case equalPairs(pairs, perlDecimal):
		return `\d`, true
	case equalPairs(pairs, perlSpace):
		return `\s`, true
	case equalPairs(pairs, perlWord):
		return `\w`, true
	}
	return "", false
}

// ControlToken returns the two-character escape for newline, carriage
// return, tab and vertical tab.
func ControlToken(r rune) (string, bool) {
	switch r {
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\t':
		return `\t`, true
	case '\v':
		return `\v`, true
	}
	return "", false
}
