package gf256

// IsPrimitive reports whether poly is a degree-8 primitive polynomial over
// GF(2). The check generates the table pair and relies on the full-cycle
// verification in Generate: 2 reaching all 255 nonzero elements and
// returning to 1 is only possible when the quotient ring is a field and 2
// generates its multiplicative group.
func IsPrimitive(poly uint16) bool {
	_, err := Generate(poly)
	return err == nil
}

// PrimitivePolynomials returns every degree-8 primitive polynomial over
// GF(2) in ascending order. There are exactly sixteen, 0x11D among them.
func PrimitivePolynomials() []uint16 {
	var polys []uint16
	for p := uint16(0x100); p <= 0x1FF; p++ {
		if IsPrimitive(p) {
			polys = append(polys, p)
		}
	}
	return polys
}
