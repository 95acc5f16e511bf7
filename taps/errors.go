package taps

import "errors"

var (
	// ErrInvalidDirectory raised if the specified path is not a valid path to a directory
	ErrInvalidDirectory = errors.New("the specified path is not a directory")
	// ErrNilCipher raised if a tap is created without a cipher
	ErrNilCipher = errors.New("the cipher cannot be nil")
)
