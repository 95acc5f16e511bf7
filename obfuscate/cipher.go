package obfuscate

import (
	"github.com/jacurick19/5-Days-5-Algorithms/bitgate"
	"github.com/jacurick19/5-Days-5-Algorithms/flipskip"
	"github.com/jacurick19/5-Days-5-Algorithms/hash"
	"github.com/jacurick19/5-Days-5-Algorithms/qd256"
)

// Stream is a stateful, length preserving byte transform.
//
// Transform writes the transformed src into dst, which must be at least as
// long as src; dst and src may overlap entirely. Multiple calls behave as if
// the concatenation of the source buffers was passed in a single run, so a
// Stream instance is bound to exactly one logical byte stream.
type Stream interface {
	Transform(dst, src []byte)
}

// Cipher is a named byte-stream cipher from the registry.
//
// Encrypter and Decrypter return fresh Stream instances on every call, so a
// single Cipher can serve any number of independent streams.
type Cipher interface {
	// Name returns the registry name of the cipher
	Name() string
	// ID returns the wire identifier stored in container headers
	ID() byte
	// Keyed returns true if the cipher requires key material
	Keyed() bool
	// Signature returns the SHA224 signature of the key material, or nil for keyless ciphers
	Signature() []byte
	// Encrypter returns a fresh encrypting Stream
	Encrypter() Stream
	// Decrypter returns a fresh decrypting Stream
	Decrypter() Stream
}

// Cipher wire identifiers. These are persisted in container headers and must
// never be renumbered.
const (
	cipherIDQD256 byte = iota + 1
	cipherIDBitgate
	cipherIDFlipskip
)

// flipskipGap is the fixed skip length used by the registry entry. The
// flipskip package itself accepts any non-negative gap.
const flipskipGap = 1

type cipherBuilder struct {
	id    byte
	keyed bool
	build func(key []byte) (Cipher, error)
}

var cipherBuilders = map[string]cipherBuilder{
	"qd256": {
		id: cipherIDQD256,
		build: func(key []byte) (Cipher, error) {
			return qdCipher{}, nil
		},
	},
	"bitgate": {
		id:    cipherIDBitgate,
		keyed: true,
		build: func(key []byte) (Cipher, error) {
			if _, err := bitgate.New(key); err != nil {
				return nil, err
			}
			return newKeyedCipher("bitgate", cipherIDBitgate, key, func() Stream {
				s, _ := bitgate.New(key)
				return s
			})
		},
	},
	"flipskip": {
		id:    cipherIDFlipskip,
		keyed: true,
		build: func(key []byte) (Cipher, error) {
			if _, err := flipskip.New(string(key), flipskipGap); err != nil {
				return nil, err
			}
			return newKeyedCipher("flipskip", cipherIDFlipskip, key, func() Stream {
				s, _ := flipskip.New(string(key), flipskipGap)
				return s
			})
		},
	},
}

// NewCipher creates the named cipher from the registry.
// It returns ErrUnknownCipher for names not in the registry and ErrMissingKey
// when a keyed cipher is requested with an empty key.
func NewCipher(name string, key []byte) (Cipher, error) {
	builder, ok := cipherBuilders[name]
	if !ok {
		return nil, ErrUnknownCipher
	}
	if builder.keyed && len(key) == 0 {
		return nil, ErrMissingKey
	}
	return builder.build(key)
}

// newCipherByID resolves the cipher recorded in a container header.
func newCipherByID(id byte, key []byte) (Cipher, error) {
	for name, builder := range cipherBuilders {
		if builder.id == id {
			return NewCipher(name, key)
		}
	}
	return nil, ErrUnknownCipher
}

// CipherNames returns the names of all registered ciphers.
func CipherNames() []string {
	names := make([]string, 0, len(cipherBuilders))
	for name := range cipherBuilders {
		names = append(names, name)
	}
	return names
}

// IsKeyed reports whether the named cipher requires key material.
// It returns ErrUnknownCipher for names not in the registry.
func IsKeyed(name string) (bool, error) {
	builder, ok := cipherBuilders[name]
	if !ok {
		return false, ErrUnknownCipher
	}
	return builder.keyed, nil
}

// qdCipher is the keyless quasidihedral running-product cipher.
type qdCipher struct{}

func (qdCipher) Name() string      { return "qd256" }
func (qdCipher) ID() byte          { return cipherIDQD256 }
func (qdCipher) Keyed() bool       { return false }
func (qdCipher) Signature() []byte { return nil }
func (qdCipher) Encrypter() Stream { return qd256.NewEncrypter() }
func (qdCipher) Decrypter() Stream { return qd256.NewDecrypter() }

// keyedCipher wraps an involutive keyed transform; encryption and decryption
// use the same stream construction.
type keyedCipher struct {
	name      string
	id        byte
	signature []byte
	newStream func() Stream
}

func newKeyedCipher(name string, id byte, key []byte, newStream func() Stream) (Cipher, error) {
	signature, err := hash.SHA224(key)
	if err != nil {
		return nil, err
	}
	return &keyedCipher{
		name:      name,
		id:        id,
		signature: signature,
		newStream: newStream,
	}, nil
}

func (c *keyedCipher) Name() string      { return c.name }
func (c *keyedCipher) ID() byte          { return c.id }
func (c *keyedCipher) Keyed() bool       { return true }
func (c *keyedCipher) Signature() []byte { return c.signature }
func (c *keyedCipher) Encrypter() Stream { return c.newStream() }
func (c *keyedCipher) Decrypter() Stream { return c.newStream() }
