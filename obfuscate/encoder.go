package obfuscate

import (
	"context"
	"io"

	"github.com/golang/snappy"
)

// Encoder is the type that encrypts an io.Reader into one or more io.Writer
// outputs using the specified cipher.
type Encoder struct {
	input      io.Reader
	output     io.Writer
	bufferSize int
	cipher     Cipher
	compress   bool
	raw        bool
}

// NewEncoder creates a new Encoder object writing the container format
func NewEncoder(bufferSize int, cipher Cipher, input io.Reader, outputs ...io.Writer) *Encoder {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	return &Encoder{
		input:      input,
		output:     io.MultiWriter(outputs...),
		bufferSize: bufferSize,
		cipher:     cipher,
	}
}

// NewCompressedEncoder creates a new Encoder which snappy compresses the
// payload before encrypting it. The compression flag is recorded in the
// container header so the Decoder can mirror it.
func NewCompressedEncoder(bufferSize int, cipher Cipher, input io.Reader, outputs ...io.Writer) *Encoder {
	e := NewEncoder(bufferSize, cipher, input, outputs...)
	e.compress = true
	return e
}

// NewRawEncoder creates a new Encoder which writes the bare cipher output
// with no container header and no compression. The output has exactly the
// same length as the input.
func NewRawEncoder(bufferSize int, cipher Cipher, input io.Reader, outputs ...io.Writer) *Encoder {
	e := NewEncoder(bufferSize, cipher, input, outputs...)
	e.raw = true
	return e
}

// Encode encrypts the io.Reader into the specified io.Writer outputs.
// This method will return an error if the cipher is missing or the encryption process fails
func (e *Encoder) Encode() (Status, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	return e.EncodeContext(ctx)
}

// EncodeContext encrypts the io.Reader into the specified io.Writer outputs and receives cancellation signal on the context parameter.
// This method will return an error if the cipher is missing or the encryption process fails.
func (e *Encoder) EncodeContext(ctx context.Context) (Status, error) {
	if e.cipher == nil {
		return Failed, errMissingCipher
	}

	cancelled := monitorCancellation(ctx)

	if !e.raw {
		if err := e.writeMetadata(); err != nil {
			return Failed, err
		}
	}

	if *cancelled {
		return Cancelled, nil
	}

	stream := e.cipher.Encrypter()
	if e.compress {
		// compress-then-encrypt: plaintext flows through the snappy writer
		// into the encrypting writer
		compressor := snappy.NewBufferedWriter(NewStreamWriter(e.output, stream))
		status, err := processData(e.input, compressor, e.bufferSize, nil, cancelled)
		if err != nil {
			return status, err
		}
		if err := compressor.Close(); err != nil {
			return Failed, err
		}
		return status, nil
	}
	return processData(e.input, e.output, e.bufferSize, stream, cancelled)
}

func (e *Encoder) writeMetadata() error {
	var flags byte
	if e.compress {
		flags |= flagCompressed
	}
	return writeHeader(e.output, header{
		cipherID:  e.cipher.ID(),
		flags:     flags,
		signature: e.cipher.Signature(),
	})
}
