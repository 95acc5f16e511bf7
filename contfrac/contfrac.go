// Package contfrac implements a toy encoding in which a sequence of bytes is
// identified with a positive rational number.
//
// The plaintext bytes b_0, ..., b_{n-1} map to the rational whose continued
// fraction is [b_0+2; b_1+2, ..., b_{n-1}+2] in standard notation. The +2
// offset guarantees that the coefficient sequence of the number's canonical
// continued fraction is unambiguous: with +1 instead, a sequence ending in
// ..., y, z could not be told apart from one ending in ..., y, z-1, 1.
package contfrac

import (
	"errors"
	"math/big"
)

var (
	// ErrEmptyPlaintext will be raised when encoding an empty byte sequence
	ErrEmptyPlaintext = errors.New("cannot encode an empty byte sequence")
	// ErrNonPositive will be raised when expanding or decoding a rational which is not positive
	ErrNonPositive = errors.New("continued fractions can only be computed for positive numbers")
	// ErrNoPlaintext will be raised when a rational does not correspond to any sequence of plaintext bytes
	ErrNoPlaintext = errors.New("the fraction does not correspond to any sequence of plaintext bytes")
	// ErrCoefficientTooLarge will be raised when a continued fraction coefficient does not fit in a uint64
	ErrCoefficientTooLarge = errors.New("a continued fraction coefficient does not fit in 64 bits")
)

// offset keeps coefficient sequences unambiguous; every encoded coefficient
// is at least 2.
const offset = 2

// Encode maps the plaintext bytes to the positive rational whose continued
// fraction coefficients are the byte values plus two.
// It returns ErrEmptyPlaintext when p is empty.
func Encode(p []byte) (*big.Rat, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPlaintext
	}

	// Build the fraction from the innermost coefficient outwards:
	// x_i = c_i + 1/x_{i+1}
	x := new(big.Rat).SetInt64(int64(p[len(p)-1]) + offset)
	for i := len(p) - 2; i >= 0; i-- {
		x.Inv(x)
		x.Add(x, new(big.Rat).SetInt64(int64(p[i])+offset))
	}
	return x, nil
}

// Decode recovers the plaintext bytes from a rational produced by Encode.
// It returns ErrNonPositive when x is not positive and ErrNoPlaintext when
// any coefficient of the canonical expansion falls outside the encodable
// range.
func Decode(x *big.Rat) ([]byte, error) {
	coefficients, err := Expand(x)
	if err != nil {
		if err == ErrCoefficientTooLarge {
			return nil, ErrNoPlaintext
		}
		return nil, err
	}

	p := make([]byte, len(coefficients))
	for i, c := range coefficients {
		if c < offset || c > offset+255 {
			return nil, ErrNoPlaintext
		}
		p[i] = byte(c - offset)
	}
	return p, nil
}

// Expand computes the canonical continued fraction coefficients of a
// positive rational. For example the expansion of 7/3 is [2, 3].
func Expand(x *big.Rat) ([]uint64, error) {
	if x.Sign() <= 0 {
		return nil, ErrNonPositive
	}

	// The canonical expansion is the quotient sequence of the Euclidean
	// algorithm on numerator and denominator.
	n := new(big.Int).Set(x.Num())
	d := new(big.Int).Set(x.Denom())

	var coefficients []uint64
	for {
		q, r := new(big.Int).QuoRem(n, d, new(big.Int))
		if !q.IsUint64() {
			return nil, ErrCoefficientTooLarge
		}
		coefficients = append(coefficients, q.Uint64())
		if r.Sign() == 0 {
			return coefficients, nil
		}
		n, d = d, r
	}
}
