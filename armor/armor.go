// Package armor implements the text-safe encodings used to carry raw cipher
// output over text channels.
package armor

import (
	"encoding/base64"
	"encoding/hex"
	"io"
	"strings"
)

// EncodeBase64 encodes the input using base64 raw standard encoder
func EncodeBase64(in []byte) []byte {
	buf := make([]byte, base64.RawStdEncoding.EncodedLen(len(in)))
	base64.RawStdEncoding.Encode(buf, in)
	return buf
}

// DecodeBase64 decodes a base64 encoded []byte using raw standard encoder
func DecodeBase64(in []byte) ([]byte, error) {
	buf := make([]byte, base64.RawStdEncoding.DecodedLen(len(in)))
	_, err := base64.RawStdEncoding.Decode(buf, in)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return buf, nil
}

// EncodeHex encodes the input as hexadecimal text with uppercase digits
func EncodeHex(in []byte) []byte {
	return []byte(strings.ToUpper(hex.EncodeToString(in)))
}

// DecodeHex decodes hexadecimal text. Both upper and lower case digits are accepted.
func DecodeHex(in []byte) ([]byte, error) {
	return hex.DecodeString(strings.ToLower(string(in)))
}

// ReverseBytes returns a new slice holding the input bytes in reverse order
func ReverseBytes(in []byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		out[len(in)-1-i] = b
	}
	return out
}
