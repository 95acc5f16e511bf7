package qd256

// Element is a single element of the quasidihedral group of order 256,
// identified with its one-byte normal form encoding 128*j + k.
type Element byte

const (
	// Identity is the identity element of the group.
	Identity Element = 0
	// R is the generator of order 128.
	R Element = 1
	// S is the generator of order 2.
	S Element = 128

	// Twist is the conjugation exponent t of the presentation sr = (r^t)s.
	// It satisfies t*t = 1 (mod 128).
	Twist = 63
	// ROrder is the order of the generator R.
	ROrder = 128
)

// Decompose splits an element into the exponents (k, j) of its normal form
// (r^k)(s^j). It is total; every byte value is a valid element.
func (e Element) Decompose() (k, j int) {
	return int(e) % ROrder, (int(e) >> 7) & 1
}

// Compose builds the element (r^k)(s^j) from its normal-form exponents.
// The caller must guarantee 0 <= k < 128 and j in {0, 1}.
func Compose(k, j int) Element {
	return Element(ROrder*j + k)
}

// FromBytes parses the one-byte encoding of a single group element.
// It returns ErrInvalidInputSize when b is not exactly one byte long.
func FromBytes(b []byte) (Element, error) {
	if len(b) != 1 {
		return Identity, ErrInvalidInputSize
	}
	return Element(b[0]), nil
}

// Bytes returns the one-byte canonical encoding of the element.
func (e Element) Bytes() []byte {
	return []byte{byte(e)}
}
