// Package gf256 implements GF(256) lookup-table generation and field
// arithmetic for Reed-Solomon error correction as used by QR codes.
package gf256

import (
	"fmt"
	"strings"
)

const (
	// QRPoly is the primitive polynomial used by QR code Reed-Solomon
	// coding: x^8 + x^4 + x^3 + x^2 + 1.
	QRPoly uint16 = 0x11D

	// Order is the order of the multiplicative group of GF(256).
	Order = 255
)

// Tables holds the exponent and logarithm lookup tables for GF(256) under a
// given primitive polynomial.
//
// Exp[i] is 2^i for i in [0,254]; Exp[255] is never written by the
// generation loop and stays zero. Log[v] is the discrete logarithm base 2 of
// v for v in [1,255]; the logarithm of zero does not exist, so Log[0] stays
// zero as well.
type Tables struct {
	Poly uint16
	Exp  [256]byte
	Log  [256]byte
}

// Generate builds the exp/log table pair for GF(256) reduced by poly.
//
// poly must be a degree-8 polynomial over GF(2), i.e. have bit 0x100 set and
// no higher bits. The tables are built by repeated doubling: x starts at 1,
// and after recording each power x is shifted left and reduced by poly
// whenever the shift overflows into bit 0x100.
//
// A polynomial that is not primitive cannot produce a valid table pair, so
// Generate checks that the element 2 runs through all 255 nonzero field
// elements before returning. A reducible or merely-irreducible polynomial
// (such as the Rijndael polynomial 0x11B, under which 2 has order 51) is
// rejected with an error instead of silently yielding a non-bijective table.
func Generate(poly uint16) (*Tables, error) {
	if poly > 0x1FF {
		return nil, fmt.Errorf("polynomial 0x%X has degree greater than 8", poly)
	}
	if poly&0x100 == 0 {
		return nil, fmt.Errorf("polynomial 0x%X does not have degree 8 (bit 0x100 unset)", poly)
	}

	t := &Tables{Poly: poly}

	x := uint16(1)
	for i := 0; i < Order; i++ {
		if i > 0 && x == 1 {
			return nil, fmt.Errorf("polynomial 0x%X does not generate a full 255-cycle (period %d)", poly, i)
		}
		t.Exp[i] = byte(x)
		t.Log[x] = byte(i)

		x <<= 1
		if x&0x100 != 0 {
			x ^= poly
		}
	}

	// After 255 doublings the generator must have cycled back to 1.
	if x != 1 {
		return nil, fmt.Errorf("polynomial 0x%X does not generate a full 255-cycle", poly)
	}

	return t, nil
}

// Validate re-checks the structural invariants of a generated table pair:
// both round trips, the multiplicative identity at Exp[0], the full-period
// permutation property, and the zero sentinel entries.
func (t *Tables) Validate() error {
	if t.Exp[0] != 1 {
		return fmt.Errorf("Exp[0] = %d, want 1 (multiplicative identity)", t.Exp[0])
	}
	if t.Exp[255] != 0 {
		return fmt.Errorf("Exp[255] = %d, want unused zero entry", t.Exp[255])
	}
	if t.Log[0] != 0 {
		return fmt.Errorf("Log[0] = %d, want zero (log of zero is undefined)", t.Log[0])
	}

	var seen [256]bool
	for i := 0; i < Order; i++ {
		v := t.Exp[i]
		if v == 0 {
			return fmt.Errorf("Exp[%d] = 0, zero is not in the multiplicative group", i)
		}
		if seen[v] {
			return fmt.Errorf("Exp[%d] = %d repeats an earlier value", i, v)
		}
		seen[v] = true
		if t.Log[v] != byte(i) {
			return fmt.Errorf("Log[Exp[%d]] = %d, want %d", i, t.Log[v], i)
		}
	}
	for v := 1; v < 256; v++ {
		if t.Exp[t.Log[v]] != byte(v) {
			return fmt.Errorf("Exp[Log[%d]] = %d, want %d", v, t.Exp[t.Log[v]], v)
		}
	}

	return nil
}

// PolyString renders a polynomial over GF(2) in algebraic form, e.g.
// PolyString(0x11D) returns "x^8 + x^4 + x^3 + x^2 + 1".
func PolyString(poly uint16) string {
	if poly == 0 {
		return "0"
	}

	var terms []string
	for bit := 15; bit >= 0; bit-- {
		if poly&(1<<bit) == 0 {
			continue
		}
		switch bit {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", bit))
		}
	}
	return strings.Join(terms, " + ")
}
