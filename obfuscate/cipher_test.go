package obfuscate

import (
	"bytes"
	"testing"

	"github.com/jacurick19/5-Days-5-Algorithms/assert"
	"github.com/jacurick19/5-Days-5-Algorithms/flipskip"
)

func TestNewCipher(t *testing.T) {
	testCases := []struct {
		title         string
		name          string
		key           []byte
		expectedError error
		expectKeyed   bool
	}{
		{
			title: "keyless_cipher",
			name:  "qd256",
		},
		{
			title:       "keyed_cipher",
			name:        "bitgate",
			key:         []byte("Thisismysecretkey"),
			expectKeyed: true,
		},
		{
			title:       "digit_keyed_cipher",
			name:        "flipskip",
			key:         []byte("8675309"),
			expectKeyed: true,
		},
		{
			title:         "unknown_cipher",
			name:          "rot13",
			expectedError: ErrUnknownCipher,
		},
		{
			title:         "keyed_cipher_without_key",
			name:          "bitgate",
			expectedError: ErrMissingKey,
		},
		{
			title:         "invalid_flipskip_key",
			name:          "flipskip",
			key:           []byte("not digits"),
			expectedError: flipskip.ErrInvalidKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			cipher, err := NewCipher(tc.name, tc.key)
			if tc.expectedError != err {
				t.Errorf("expected '%v' as error, but received '%v'", tc.expectedError, err)
				return
			}
			if err != nil {
				return
			}
			if cipher.Name() != tc.name {
				t.Errorf("expected cipher name '%s', actual '%s'", tc.name, cipher.Name())
			}
			if cipher.Keyed() != tc.expectKeyed {
				t.Errorf("expected Keyed() to be %v", tc.expectKeyed)
			}
			if tc.expectKeyed && len(cipher.Signature()) != 28 {
				t.Errorf("expected a 28 bytes key signature, actual %d bytes", len(cipher.Signature()))
			}
			if !tc.expectKeyed && cipher.Signature() != nil {
				t.Error("expected a nil signature for a keyless cipher")
			}
		})
	}
}

func TestCipherRoundTrips(t *testing.T) {
	input := []byte("I know how to outpizza the hut")

	for _, name := range CipherNames() {
		t.Run(name, func(t *testing.T) {
			cipher, err := NewCipher(name, []byte("8675309"))
			if err != nil {
				t.Fatalf("failed to create the cipher: %v", err)
			}

			encrypted := make([]byte, len(input))
			cipher.Encrypter().Transform(encrypted, input)
			if len(encrypted) != len(input) {
				t.Errorf("expected length preserving output, actual %d bytes", len(encrypted))
			}

			decrypted := make([]byte, len(encrypted))
			cipher.Decrypter().Transform(decrypted, encrypted)
			assert.BytesEqual(t, input, decrypted)
		})
	}
}

func TestStreamReaderWriter(t *testing.T) {
	input := []byte("I know how to outpizza the hut")
	cipher, err := NewCipher("qd256", nil)
	if err != nil {
		t.Fatalf("failed to create the cipher: %v", err)
	}

	var encrypted bytes.Buffer
	writer := NewStreamWriter(&encrypted, cipher.Encrypter())
	if _, err := writer.Write(input); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	reader := NewStreamReader(&encrypted, cipher.Decrypter())
	decrypted := make([]byte, len(input))
	n, err := reader.Read(decrypted)
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}
	assert.BytesEqual(t, input, decrypted[:n])
}
