package qd256

import "errors"

var (
	// ErrInvalidInputSize will be raised when a buffer of the wrong length is
	// supplied where a single one-byte group element is required.
	ErrInvalidInputSize = errors.New("a group element must be exactly one byte")
)
