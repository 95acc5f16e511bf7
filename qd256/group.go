package qd256

// Mul returns the product ab in normal form.
//
// Moving the r^k2 factor of b past the trailing s of a conjugates its
// exponent by Twist, so the result exponent is k1 + k2 when j1 = 0 and
// k1 + Twist*k2 when j1 = 1, both mod 128. The s exponents simply add mod 2.
// The operation is associative but not commutative.
func Mul(a, b Element) Element {
	k1, j1 := a.Decompose()
	k2, j2 := b.Decompose()

	k := k1 + k2
	if j1 == 1 {
		k = k1 + Twist*k2
	}
	return Compose(k%ROrder, j1^j2)
}

// Inverse returns the two-sided inverse of a, so that both Mul(a, Inverse(a))
// and Mul(Inverse(a), a) equal Identity.
func Inverse(a Element) Element {
	k, j := a.Decompose()
	if j == 1 {
		return Compose(Twist*(ROrder-k)%ROrder, 1)
	}
	return Compose((ROrder-k)%ROrder, 0)
}
