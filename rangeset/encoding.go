package rangeset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/npillmayer/charclass/internal/ucdparse"
	"github.com/npillmayer/charclass/scalar"
)

// Sets are serialized as a list of [min, max] pairs of code-points. Decoding
// checks that every bound is a scalar value and re-normalizes the ranges, so
// hand-written input may be unsorted or overlapping.

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("rangeset: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

func (s Set) pairs() [][2]uint32 {
	p := make([][2]uint32, s.Len())
	for i := range p {
		p[i] = [2]uint32{s.bounds[2*i].Uint32(), s.bounds[2*i+1].Uint32()}
	}
	return p
}

func fromPairs(p [][2]uint32) (Set, error) {
	ranges := make([]Range, len(p))
	for i, pair := range p {
		lo, ok1 := scalar.FromUint32(pair[0])
		hi, ok2 := scalar.FromUint32(pair[1])
		if !ok1 || !ok2 {
			return Set{}, fmt.Errorf("rangeset: range %#x..%#x: no valid scalar value", pair[0], pair[1])
		}
		if hi.Less(lo) {
			return Set{}, fmt.Errorf("rangeset: range %#x..%#x is inverted", pair[0], pair[1])
		}
		ranges[i] = Range{Min: lo, Max: hi}
	}
	return normalize(ranges), nil
}

// MarshalJSON encodes s as `[[min,max],…]`.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.pairs())
}

// UnmarshalJSON decodes a list of [min, max] pairs.
func (s *Set) UnmarshalJSON(data []byte) error {
	var p [][2]uint32
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("rangeset: unmarshal JSON: %w", err)
	}
	set, err := fromPairs(p)
	if err != nil {
		return err
	}
	*s = set
	return nil
}

// MarshalCBOR encodes s in canonical CBOR.
func (s Set) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(s.pairs())
}

// UnmarshalCBOR decodes a list of [min, max] pairs.
func (s *Set) UnmarshalCBOR(data []byte) error {
	var p [][2]uint32
	if err := cbor.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("rangeset: unmarshal CBOR: %w", err)
	}
	set, err := fromPairs(p)
	if err != nil {
		return err
	}
	*s = set
	return nil
}

// MarshalText encodes s in UCD notation, see String.
func (s Set) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a whitespace separated list of UCD code-point items,
// e.g. "0030..0039 0041..0046 005F".
func (s *Set) UnmarshalText(text []byte) error {
	items := strings.Fields(string(text))
	p := make([][2]uint32, len(items))
	for i, item := range items {
		from, to, err := ucdparse.ParseRange(item)
		if err != nil {
			return fmt.Errorf("rangeset: item %q: %w", item, err)
		}
		p[i] = [2]uint32{uint32(from), uint32(to)}
	}
	set, err := fromPairs(p)
	if err != nil {
		return err
	}
	*s = set
	return nil
}

// Parse is a shortcut for UnmarshalText.
func Parse(text string) (Set, error) {
	var s Set
	err := s.UnmarshalText([]byte(text))
	return s, err
}
