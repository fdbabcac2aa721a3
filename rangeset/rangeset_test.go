package rangeset

import (
	"encoding/json"
	"testing"
	"unicode"

	"github.com/fxamacker/cbor/v2"
	"github.com/npillmayer/charclass/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const totalCardinality = 1_112_064

func hexDigits() Set {
	return FromRanges(
		NewRange('a', 'f'),
		NewRange('0', '9'),
		NewRange('A', 'F'),
	)
}

func TestNormalize(t *testing.T) {
	s := FromRanges(
		NewRange('x', 'z'),
		NewRange('a', 'c'),
		NewRange('b', 'f'),
		NewRange('g', 'g'),
	)
	assert.Equal(t, []Range{NewRange('a', 'g'), NewRange('x', 'z')}, s.Ranges())
	assert.Equal(t, "0061..0067 0078..007A", s.String())
}

func TestNormalizeAcrossGap(t *testing.T) {
	s := FromRanges(NewRange(0xE000, 0xE0FF), NewRange(0xD000, 0xD7FF))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, NewRange(0xD000, 0xE0FF), s.Range(0))
}

func TestEmptyAndTotal(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.True(t, Set{}.IsEmpty())
	assert.True(t, Total().IsTotal())
	assert.False(t, Total().IsEmpty())
	assert.Equal(t, uint32(0), Empty().Cardinality())
	assert.Equal(t, uint32(totalCardinality), Total().Cardinality())
	assert.True(t, Empty().Complement().IsTotal())
	assert.True(t, Total().Complement().IsEmpty())
	assert.True(t, New(scalar.New('z'), scalar.New('a')).IsEmpty())
}

func TestComplement(t *testing.T) {
	c := hexDigits().Complement()
	assert.Equal(t, []Range{
		NewRange(0, '0'-1),
		NewRange('9'+1, 'A'-1),
		NewRange('F'+1, 'a'-1),
		NewRange('f'+1, unicode.MaxRune),
	}, c.Ranges())
	assert.True(t, c.Complement().Equal(hexDigits()))

	low := New(scalar.Min, scalar.New(0xD7FF))
	assert.Equal(t, []Range{NewRange(0xE000, unicode.MaxRune)}, low.Complement().Ranges())
}

func TestSetAlgebra(t *testing.T) {
	az := New(scalar.New('a'), scalar.New('z'))
	hex := hexDigits()
	assert.Equal(t, []Range{NewRange('a', 'f')}, az.Intersection(hex).Ranges())
	assert.Equal(t, []Range{NewRange('g', 'z')}, az.Difference(hex).Ranges())
	assert.Equal(t, []Range{NewRange('0', '9'), NewRange('A', 'F'), NewRange('a', 'z')},
		az.Union(hex).Ranges())
	assert.True(t, hex.Union(hex.Complement()).IsTotal())
	assert.True(t, hex.Intersection(hex.Complement()).IsEmpty())
}

func TestCardinality(t *testing.T) {
	assert.Equal(t, uint32(26), New(scalar.New('a'), scalar.New('z')).Cardinality())
	assert.Equal(t, uint32(22), hexDigits().Cardinality())
	gap := New(scalar.New(0xD7FF), scalar.New(0xE000))
	assert.Equal(t, uint32(2), gap.Cardinality())
	for _, s := range []Set{Empty(), Total(), hexDigits(), gap, FromRangeTable(unicode.Greek)} {
		assert.Equal(t, uint32(totalCardinality), s.Cardinality()+s.Complement().Cardinality())
	}
}

func TestContainsAndVisit(t *testing.T) {
	sets := []Set{hexDigits(), hexDigits().Complement().Intersection(New(scalar.Min, scalar.New(0x200)))}
	for _, s := range sets {
		n := uint32(0)
		s.Visit(func(v scalar.Value) bool {
			assert.True(t, s.Contains(v), "%v should be member of %v", v, s)
			n++
			return true
		})
		assert.Equal(t, s.Cardinality(), n)
	}
	hex := hexDigits()
	for _, r := range []rune{'/', ':', '@', 'G', '`', 'g', 0xE000} {
		assert.False(t, hex.Contains(scalar.New(r)), "%q should not be member", r)
	}
	cnt := 0
	hex.Visit(func(scalar.Value) bool {
		cnt++
		return cnt < 5
	})
	assert.Equal(t, 5, cnt)
}

func TestVisitAcrossGap(t *testing.T) {
	var values []rune
	New(scalar.New(0xD7FE), scalar.New(0xE001)).Visit(func(v scalar.Value) bool {
		values = append(values, v.Rune())
		return true
	})
	assert.Equal(t, []rune{0xD7FE, 0xD7FF, 0xE000, 0xE001}, values)
}

func TestRangeTable(t *testing.T) {
	greek := FromRangeTable(unicode.Greek)
	rt := greek.RangeTable()
	for r := rune(0); r < 0x20000; r++ {
		if unicode.Is(unicode.Greek, r) != unicode.Is(rt, r) {
			t.Fatalf("range table differs from unicode.Greek for %#U", r)
		}
	}
	assert.True(t, FromRangeTable(rt).Equal(greek))

	surr := FromRangeTable(unicode.Cs)
	assert.True(t, surr.IsEmpty(), "surrogates are no scalar values")
	across := FromRangeTable(&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0xD000, Hi: 0xE0FF, Stride: 1}}})
	assert.Equal(t, []Range{NewRange(0xD000, 0xE0FF)}, across.Ranges())
	assert.Len(t, across.RangeTable().R16, 2)

	strided := FromRangeTable(&unicode.RangeTable{R16: []unicode.Range16{{Lo: 'a', Hi: 'e', Stride: 2}}})
	assert.Equal(t, "0061 0063 0065", strided.String())
	assert.True(t, FromRangeTables(unicode.Lu, unicode.Ll).Equal(
		FromRangeTable(unicode.Lu).Union(FromRangeTable(unicode.Ll))))
}

func TestJSONRoundTrip(t *testing.T) {
	for _, s := range []Set{Empty(), Total(), hexDigits(), FromRanges(NewRange('3', '4'), NewRange('7', '8'))} {
		data, err := json.Marshal(s)
		require.NoError(t, err)
		var u Set
		require.NoError(t, json.Unmarshal(data, &u))
		assert.True(t, s.Equal(u), "%s != %s", s, u)
	}
	data, _ := json.Marshal(New(scalar.New('a'), scalar.New('z')))
	assert.Equal(t, "[[97,122]]", string(data))

	var u Set
	assert.Error(t, json.Unmarshal([]byte("[[55296,55297]]"), &u))
	assert.Error(t, json.Unmarshal([]byte("[[98,97]]"), &u))
}

func TestCBORRoundTrip(t *testing.T) {
	for _, s := range []Set{Empty(), Total(), hexDigits()} {
		data, err := cbor.Marshal(s)
		require.NoError(t, err)
		var u Set
		require.NoError(t, cbor.Unmarshal(data, &u))
		assert.True(t, s.Equal(u), "%s != %s", s, u)
	}
}

func TestTextRoundTrip(t *testing.T) {
	s, err := Parse("0061..0066 0030..0039 0041..0046")
	require.NoError(t, err)
	assert.True(t, s.Equal(hexDigits()))
	text, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0030..0039 0041..0046 0061..0066", string(text))

	_, err = Parse("D800")
	assert.Error(t, err)
	_, err = Parse("00ZZ")
	assert.Error(t, err)
	empty, err := Parse("")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}
