// Package bitgate implements a keyed involutive byte transform in which the
// bits of the key decide, position by position, whether a byte is XORed with
// the current key byte or passed through unchanged.
//
// The key is walked seven bits per key byte, least significant bit first.
// A set bit XORs the input byte with the key byte owning it, a clear bit
// leaves the input byte alone. After seven bits the next key byte takes over,
// wrapping around at the end of the key. Since the gating pattern depends
// only on the key, applying the transform twice restores the input.
package bitgate

import "errors"

var (
	// ErrEmptyKey will be raised when a transform is requested with no key material
	ErrEmptyKey = errors.New("the key cannot be empty")
)

const bitsPerKeyByte = 7

// Stream is a stateful bit-gated XOR transform. Instances are not safe for
// concurrent use and must not be shared between independent streams.
type Stream struct {
	key      []byte
	keyIndex int
	bitIndex int
}

// New creates a new Stream for the provided key.
// It returns ErrEmptyKey when the key is empty.
func New(key []byte) (*Stream, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &Stream{key: append([]byte(nil), key...)}, nil
}

// Transform applies the transform to src and writes the result into dst,
// which must be at least as long as src. dst and src may overlap entirely.
// Multiple calls behave as if the concatenation of the source buffers was
// transformed in a single run.
func (s *Stream) Transform(dst, src []byte) {
	for i, b := range src {
		k := s.key[s.keyIndex]
		if k&(1<<uint(s.bitIndex)) != 0 {
			b ^= k
		}
		dst[i] = b

		s.bitIndex++
		if s.bitIndex == bitsPerKeyByte {
			s.bitIndex = 0
			s.keyIndex = (s.keyIndex + 1) % len(s.key)
		}
	}
}
