/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Only the line format common to property files is supported:

    0030..0039    ; ASCII_Hex_Digit # Nd  [10] DIGIT ZERO..DIGIT NINE
    00AD          ; Hyphen          # Cf       SOFT HYPHEN

Empty lines and comment lines are skipped.
*/
package ucdparse

import "fmt"

// Token is the result of scanning a single data line.
type Token struct {
	LineNo   int      // line number within the input source, starting at 1
	From, To rune     // code-point range of the item; From == To for single items
	Fields   []string // trimmed fields following the code-point range
	Comment  string   // rest-of-line comment of data item lines
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#U..%#U %#v]", token.LineNo,
		token.From, token.To, token.Fields)
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.From, token.To
}
