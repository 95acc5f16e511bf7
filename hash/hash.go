package hash

import (
	"crypto/sha256"
)

// SHA256 returns a 32 bytes SHA256 hash of the input
func SHA256(in []byte) ([]byte, error) {
	h := sha256.New()
	_, err := h.Write(in)
	if err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// SHA224 returns a 28 bytes SHA224 hash of the input
func SHA224(in []byte) ([]byte, error) {
	h := sha256.New224()
	_, err := h.Write(in)
	if err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
