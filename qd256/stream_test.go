package qd256

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/jacurick19/5-Days-5-Algorithms/assert"
)

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		title string
		input []byte
	}{
		{
			title: "known_message",
			input: []byte("I know how to outpizza the hut"),
		},
		{
			title: "empty_input",
			input: []byte{},
		},
		{
			title: "single_byte",
			input: []byte{42},
		},
		{
			title: "identity_bytes",
			input: []byte{0, 0, 0, 0},
		},
		{
			title: "all_byte_values",
			input: allBytes(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			encrypted := Encrypt(tc.input)
			if len(encrypted) != len(tc.input) {
				t.Errorf("expected ciphertext length %d, actual %d", len(tc.input), len(encrypted))
			}
			decrypted := Decrypt(encrypted)
			if !assert.BytesEqual(t, tc.input, decrypted) {
				return
			}
		})
	}
}

func TestRoundTripFuzz(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		input := make([]byte, 1000)
		r.Read(input)

		decrypted := Decrypt(Encrypt(input))
		if !bytes.Equal(input, decrypted) {
			t.Errorf("round trip failed for seed %d", seed)
		}
	}
}

func TestRunningProductInvariant(t *testing.T) {
	// Ciphertext byte i must equal the product of plaintext bytes 0..i
	input := []byte("I know how to outpizza the hut")
	encrypted := Encrypt(input)

	product := Identity
	for i, b := range input {
		product = Mul(product, Element(b))
		if encrypted[i] != byte(product) {
			t.Errorf("ciphertext byte %d expected %d, actual %d", i, product, encrypted[i])
		}
	}
}

func TestDeterminism(t *testing.T) {
	input := []byte("the same plaintext twice")
	first := Encrypt(input)
	second := Encrypt(input)
	if !bytes.Equal(first, second) {
		t.Error("encrypting the same input twice produced different ciphertexts")
	}
}

func TestTransformConcatenation(t *testing.T) {
	// Transforming a stream in chunks must be equivalent to a single run
	input := []byte("I know how to outpizza the hut")
	expected := Encrypt(input)

	encrypter := NewEncrypter()
	chunked := make([]byte, len(input))
	offsets := []int{0, 1, 5, 30}
	for i := 0; i+1 < len(offsets); i++ {
		from, to := offsets[i], offsets[i+1]
		encrypter.Transform(chunked[from:to], input[from:to])
	}
	if !bytes.Equal(expected, chunked) {
		t.Error("chunked encryption does not match single-run encryption")
	}

	decrypter := NewDecrypter()
	decrypted := make([]byte, len(chunked))
	for i := 0; i+1 < len(offsets); i++ {
		from, to := offsets[i], offsets[i+1]
		decrypter.Transform(decrypted[from:to], chunked[from:to])
	}
	if !bytes.Equal(input, decrypted) {
		t.Error("chunked decryption does not match the original input")
	}
}

func TestTransformInPlace(t *testing.T) {
	input := []byte("in place transform")
	buffer := append([]byte(nil), input...)

	NewEncrypter().Transform(buffer, buffer)
	if !bytes.Equal(Encrypt(input), buffer) {
		t.Error("in-place encryption does not match the eager helper")
	}

	NewDecrypter().Transform(buffer, buffer)
	if !bytes.Equal(input, buffer) {
		t.Error("in-place round trip does not restore the input")
	}
}

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
