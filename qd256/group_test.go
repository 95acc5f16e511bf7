package qd256

import "testing"

func TestIdentityLaw(t *testing.T) {
	for x := 0; x < 256; x++ {
		e := Element(x)
		if got := Mul(Identity, e); got != e {
			t.Errorf("Mul(Identity, %d) expected %d, actual %d", x, e, got)
		}
		if got := Mul(e, Identity); got != e {
			t.Errorf("Mul(%d, Identity) expected %d, actual %d", x, e, got)
		}
	}
}

func TestInverseLaw(t *testing.T) {
	// The group is non-abelian, so the inverse must be verified on both sides
	for x := 0; x < 256; x++ {
		e := Element(x)
		inv := Inverse(e)
		if got := Mul(e, inv); got != Identity {
			t.Errorf("Mul(%d, Inverse(%d)) expected Identity, actual %d", x, x, got)
		}
		if got := Mul(inv, e); got != Identity {
			t.Errorf("Mul(Inverse(%d), %d) expected Identity, actual %d", x, x, got)
		}
	}
}

func TestSubgroupOfOrder128(t *testing.T) {
	// Elements with j=0 form a subgroup isomorphic to Z/128 under addition
	for i1 := 0; i1 < 128; i1++ {
		for i2 := 0; i2 < 128; i2++ {
			got := Mul(Element(i1), Element(i2))
			expected := Element((i1 + i2) % 128)
			if got != expected {
				t.Errorf("r^%d * r^%d expected %d, actual %d", i1, i2, expected, got)
			}
		}
	}
}

func TestSubgroupOfOrder2(t *testing.T) {
	for i1 := 0; i1 < 2; i1++ {
		for i2 := 0; i2 < 2; i2++ {
			got := Mul(Element(128*i1), Element(128*i2))
			expected := Element(128 * (i1 ^ i2))
			if got != expected {
				t.Errorf("s^%d * s^%d expected %d, actual %d", i1, i2, expected, got)
			}
		}
	}
}

func TestConjugationRelation(t *testing.T) {
	// s * r^i * s = r^(63i mod 128) is the defining relation of the presentation
	for i := 0; i < 128; i++ {
		got := Mul(Mul(S, Element(i)), S)
		expected := Element((Twist * i) % 128)
		if got != expected {
			t.Errorf("s * r^%d * s expected %d, actual %d", i, expected, got)
		}
	}
}

func TestNonCommutativityWitness(t *testing.T) {
	if got := Mul(S, R); got != 191 {
		t.Errorf("s * r expected 191, actual %d", got)
	}
	if got := Mul(R, S); got != 129 {
		t.Errorf("r * s expected 129, actual %d", got)
	}
}

func TestGeneratorOrders(t *testing.T) {
	e := R
	for i := 1; i < 128; i++ {
		e = Mul(e, R)
		if e == Identity && i != 127 {
			t.Fatalf("r has order %d, expected 128", i+1)
		}
	}
	if e != Identity {
		t.Error("r^128 expected to be the identity")
	}

	if got := Mul(S, S); got != Identity {
		t.Errorf("s^2 expected to be the identity, actual %d", got)
	}
}
