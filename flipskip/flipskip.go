// Package flipskip implements a keyed involutive byte transform which XORs
// runs of input bytes with 0x7f, separated by fixed-length gaps of untouched
// bytes.
//
// The run lengths are driven by the decimal digits of the key: the first
// digit flips that many bytes, then the configured number of bytes is
// skipped, then the next digit takes over, wrapping around at the end of the
// key. A zero digit contributes an empty run. The flip pattern depends only
// on the key and the skip length, so applying the transform twice restores
// the input.
//
// The classic presentation of this cipher prints the output as reversed
// hexadecimal text; that is an armoring concern and not part of the byte
// transform itself.
package flipskip

import "errors"

var (
	// ErrInvalidKey will be raised when the key is empty, contains a
	// non-digit character, or is all zeros while the skip length is zero
	ErrInvalidKey = errors.New("the key must be a non-empty string of decimal digits describing a non-empty flip pattern")
	// ErrNegativeSkip will be raised when the skip length is negative
	ErrNegativeSkip = errors.New("the skip length cannot be negative")
)

const flipMask = 0x7f

// Stream is a stateful flip-and-skip transform. Instances are not safe for
// concurrent use and must not be shared between independent streams.
type Stream struct {
	digits []int
	skip   int

	digitIndex int
	remaining  int
	flipping   bool
}

// New creates a new Stream flipping runs of bytes sized by the decimal
// digits of key, with skip untouched bytes between consecutive runs.
//
// The key must consist of decimal digits only. When skip is zero, at least
// one digit must be non-zero, otherwise the pattern would never advance.
func New(key string, skip int) (*Stream, error) {
	if skip < 0 {
		return nil, ErrNegativeSkip
	}
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}

	digits := make([]int, len(key))
	allZero := true
	for i, c := range key {
		if c < '0' || c > '9' {
			return nil, ErrInvalidKey
		}
		digits[i] = int(c - '0')
		if digits[i] != 0 {
			allZero = false
		}
	}
	if allZero && skip == 0 {
		return nil, ErrInvalidKey
	}

	return &Stream{digits: digits, skip: skip}, nil
}

// Transform applies the transform to src and writes the result into dst,
// which must be at least as long as src. dst and src may overlap entirely.
// Multiple calls behave as if the concatenation of the source buffers was
// transformed in a single run.
func (s *Stream) Transform(dst, src []byte) {
	for i, b := range src {
		for s.remaining == 0 {
			s.advance()
		}
		if s.flipping {
			b ^= flipMask
		}
		dst[i] = b
		s.remaining--
	}
}

// advance moves to the next phase of the pattern: a flip run sized by the
// current key digit, or the gap following it.
func (s *Stream) advance() {
	if s.flipping {
		s.flipping = false
		s.remaining = s.skip
		return
	}
	s.flipping = true
	s.remaining = s.digits[s.digitIndex]
	s.digitIndex = (s.digitIndex + 1) % len(s.digits)
}
