package obfuscate

import "errors"

var (
	errMissingCipher = errors.New("the cipher cannot be nil")

	// ErrInvalidContainer will be raised when the input does not start with a valid container header
	ErrInvalidContainer = errors.New("invalid container content")
	// ErrUnknownCipher will be raised when the requested cipher is not in the registry
	ErrUnknownCipher = errors.New("unknown cipher")
	// ErrKeyMismatch will be raised when the supplied key does not match the container's key signature
	ErrKeyMismatch = errors.New("the key does not match the container signature")
	// ErrMissingKey will be raised when a keyed cipher is requested without key material
	ErrMissingKey = errors.New("the selected cipher requires a key")

	// ErrOperationInProgress is the result of any invalid operation on an entity which is already being processed
	ErrOperationInProgress = errors.New("the operation is in progress")
	// ErrClosedTap will be raised if the user tries to push work units from a closed Tap
	ErrClosedTap = errors.New("cannot push from a closed tap")
)
