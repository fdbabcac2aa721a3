package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// Scanner is a line-level scanner for UCD data files.
//
// Our line-level scanner operates by calling scanning steps in a chain.
// Each step function inspects the remainder of the line and either fills in
// part of the token or stops the chain. A step returns the next step, or nil
// to accept the line.
//
type Scanner struct {
	in        *bufio.Scanner
	lineno    int
	rest      string // unconsumed part of the current line
	Token     *Token // last token produced by the scanner
	LastError error  // last error, if any
}

type scannerStep func(*Token) (*Token, scannerStep, error)

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Scanner{in: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of the input and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next advances to the next data line. It returns false at end of input or
// after the first error; the error is available as LastError.
func (sc *Scanner) Next() bool {
	for sc.in.Scan() {
		sc.lineno++
		sc.rest = strings.TrimSpace(sc.in.Text())
		if sc.rest == "" || sc.rest[0] == '#' {
			continue
		}
		token := &Token{LineNo: sc.lineno}
		var step scannerStep = sc.scanRuneRange
		var err error
		for step != nil {
			token, step, err = step(token)
			if err != nil {
				sc.LastError = fmt.Errorf("line %d: %w", sc.lineno, err)
				return false
			}
		}
		sc.Token = token
		return true
	}
	sc.LastError = sc.in.Err()
	return false
}

// scanRuneRange matches `hhhh` or `hhhh..hhhh` at the start of a line.
func (sc *Scanner) scanRuneRange(token *Token) (*Token, scannerStep, error) {
	end := strings.IndexAny(sc.rest, ";# \t")
	if end < 0 {
		end = len(sc.rest)
	}
	from, to, err := ParseRange(sc.rest[:end])
	if err != nil {
		return token, nil, err
	}
	token.From, token.To = from, to
	sc.rest = sc.rest[end:]
	return token, sc.scanItemBody, nil
}

// scanItemBody splits the remainder of a line into fields and a comment.
func (sc *Scanner) scanItemBody(token *Token) (*Token, scannerStep, error) {
	a := strings.SplitN(sc.rest, "#", 2)
	if len(a) > 1 {
		token.Comment = strings.TrimSpace(a[1])
	}
	body := strings.TrimSpace(a[0])
	body = strings.TrimPrefix(body, ";")
	if body == "" {
		return token, nil, nil
	}
	for _, f := range strings.Split(body, ";") {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	return token, nil, nil
}

// ParseRange parses a code-point item in UCD notation, either a single
// code-point `hhhh` or a range `hhhh..hhhh`. It does not check whether the
// code-points are valid scalar values.
func ParseRange(item string) (from, to rune, err error) {
	lo, hi := item, item
	if i := strings.Index(item, ".."); i >= 0 {
		lo, hi = item[:i], item[i+2:]
	}
	if from, err = parseHex(lo); err != nil {
		return
	}
	to, err = parseHex(hi)
	return
}

func parseHex(hex string) (rune, error) {
	if hex == "" {
		return 0, errors.New("missing code-point")
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	if n > 0x10FFFF {
		return 0, fmt.Errorf("code-point %s out of range", hex)
	}
	return rune(n), nil
}

// FormatRange writes a code-point range in UCD notation.
func FormatRange(from, to rune) string {
	if from == to {
		return fmt.Sprintf("%04X", from)
	}
	return fmt.Sprintf("%04X..%04X", from, to)
}
