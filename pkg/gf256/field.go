package gf256

import "fmt"

// Add performs addition in GF(256), which is XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Sub performs subtraction in GF(256), which is also XOR.
func Sub(a, b byte) byte {
	return a ^ b
}

// Mul multiplies a and b via the exp/log tables:
// a*b = Exp[(Log[a]+Log[b]) mod 255] for nonzero a, b.
func (t *Tables) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return t.Exp[(int(t.Log[a])+int(t.Log[b]))%Order]
}

// Div divides a by b via exponent subtraction. Division by zero is an error.
func (t *Tables) Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, fmt.Errorf("division by zero in GF(256)")
	}
	if a == 0 {
		return 0, nil
	}
	return t.Exp[(int(t.Log[a])+Order-int(t.Log[b]))%Order], nil
}

// Pow raises a to the n-th power. n may be negative for nonzero a.
func (t *Tables) Pow(a byte, n int) byte {
	if n == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	l := (int(t.Log[a]) * n) % Order
	if l < 0 {
		l += Order
	}
	return t.Exp[l]
}

// Inverse returns the multiplicative inverse of a. Zero has no inverse.
func (t *Tables) Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, fmt.Errorf("zero has no multiplicative inverse in GF(256)")
	}
	return t.Exp[(Order-int(t.Log[a]))%Order], nil
}
