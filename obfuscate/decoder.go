package obfuscate

import (
	"bytes"
	"context"
	"io"

	"github.com/golang/snappy"
)

// Decoder is the type that decrypts an io.Reader into one or more io.Writer
// outputs.
//
// In container mode the cipher is resolved from the container header and the
// supplied key material is validated against the recorded key signature
// before any plaintext is emitted. In raw mode the caller picks the cipher
// explicitly and the input is treated as bare cipher output.
type Decoder struct {
	input      io.Reader
	output     io.Writer
	bufferSize int
	key        []byte
	cipher     Cipher
	compressed bool
	raw        bool
}

// NewDecoder creates a new Decoder object reading the container format.
// The content of the input stream must be encoded using the same key material.
func NewDecoder(bufferSize int, key []byte, input io.Reader, outputs ...io.Writer) *Decoder {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	return &Decoder{
		input:      input,
		output:     io.MultiWriter(outputs...),
		bufferSize: bufferSize,
		key:        key,
	}
}

// NewRawDecoder creates a new Decoder which treats the input as bare cipher
// output with no container header.
func NewRawDecoder(bufferSize int, cipher Cipher, input io.Reader, outputs ...io.Writer) *Decoder {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	return &Decoder{
		input:      input,
		output:     io.MultiWriter(outputs...),
		bufferSize: bufferSize,
		cipher:     cipher,
		raw:        true,
	}
}

// Decode decrypts the encoded content of the Reader into the specified Writer(s).
//
// This method will return an error if the container is invalid, the key does
// not match, or the decryption process fails.
func (d *Decoder) Decode() (Status, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	return d.DecodeContext(ctx)
}

// DecodeContext decrypts the encoded content of the Reader into the specified Writer(s) and receives cancellation signal on the context parameter.
//
// It will return an error if the container is invalid, the key does not
// match, or the decryption process fails.
func (d *Decoder) DecodeContext(ctx context.Context) (Status, error) {
	cancelled := monitorCancellation(ctx)

	var compressed bool
	if d.raw {
		if d.cipher == nil {
			return Failed, errMissingCipher
		}
	} else {
		if err := d.readMetadata(); err != nil {
			return Failed, err
		}
		compressed = d.compressed
	}

	if *cancelled {
		return Cancelled, nil
	}

	stream := d.cipher.Decrypter()
	if compressed {
		// decrypt-then-decompress, mirroring the Encoder
		decompressor := snappy.NewReader(NewStreamReader(d.input, stream))
		return processData(decompressor, d.output, d.bufferSize, nil, cancelled)
	}
	return processData(d.input, d.output, d.bufferSize, stream, cancelled)
}

func (d *Decoder) readMetadata() error {
	h, err := readHeader(d.input)
	if err != nil {
		return err
	}

	cipher, err := newCipherByID(h.cipherID, d.key)
	if err != nil {
		return err
	}
	if !bytes.Equal(cipher.Signature(), h.signature) {
		return ErrKeyMismatch
	}

	d.cipher = cipher
	d.compressed = h.compressed()
	return nil
}
