package ucdparse

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader("# comment line\n\n000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>\n")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Next() {
		t.Fatalf("expected a data line, error is %v", sc.LastError)
	}
	t.Logf("token = %v", sc.Token)
	if sc.Token.Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", sc.Token.Field(1))
	}
	from, to := sc.Token.Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	if sc.Token.LineNo != 3 {
		t.Errorf("expected token on line 3, is on line %d", sc.Token.LineNo)
	}
	if !strings.HasPrefix(sc.Token.Comment, "Cc") {
		t.Errorf("expected comment to start with 'Cc', is %q", sc.Token.Comment)
	}
	if sc.Next() {
		t.Errorf("expected end of input, have %v", sc.Token)
	}
}

func TestParseSingle(t *testing.T) {
	n := 0
	err := Parse(strings.NewReader("00AD          ; Hyphen # Cf SOFT HYPHEN\n2010..2011 ; Hyphen\n"),
		func(token *Token) {
			n++
			if token.Field(1) != "Hyphen" {
				t.Errorf("expected field 'Hyphen', is %q", token.Field(1))
			}
		})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 data lines, have %d", n)
	}
}

func TestParseError(t *testing.T) {
	err := Parse(strings.NewReader("0030..ZZ ; Broken\n"), func(*Token) {})
	if err == nil {
		t.Fatal("expected hex decoding error")
	}
	t.Logf("err = %v", err)
}

func TestParseRange(t *testing.T) {
	from, to, err := ParseRange("0061..007A")
	if err != nil || from != 'a' || to != 'z' {
		t.Errorf("expected a..z, have %q..%q (%v)", from, to, err)
	}
	from, to, err = ParseRange("2E")
	if err != nil || from != '.' || to != '.' {
		t.Errorf("expected single '.', have %q..%q (%v)", from, to, err)
	}
	if _, _, err = ParseRange("110000"); err == nil {
		t.Errorf("expected out-of-range error")
	}
	if s := FormatRange('a', 'z'); s != "0061..007A" {
		t.Errorf("expected 0061..007A, have %s", s)
	}
}
