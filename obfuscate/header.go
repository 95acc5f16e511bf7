package obfuscate

import "io"

// Container layout: magic, format version, cipher id, flags, signature
// length, then the key signature for keyed ciphers. The payload follows
// immediately after.
var containerMagic = []byte("5DQV")

const (
	containerVersion = 1

	// flagCompressed records that the payload was snappy compressed before encryption
	flagCompressed byte = 1 << 0
)

type header struct {
	cipherID  byte
	flags     byte
	signature []byte
}

func (h header) compressed() bool {
	return h.flags&flagCompressed != 0
}

func writeHeader(w io.Writer, h header) error {
	buffer := make([]byte, 0, len(containerMagic)+4+len(h.signature))
	buffer = append(buffer, containerMagic...)
	buffer = append(buffer, containerVersion, h.cipherID, h.flags, byte(len(h.signature)))
	buffer = append(buffer, h.signature...)
	_, err := w.Write(buffer)
	return err
}

func readHeader(r io.Reader) (header, error) {
	fixed := make([]byte, len(containerMagic)+4)
	if _, err := io.ReadFull(r, fixed); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return header{}, ErrInvalidContainer
		}
		return header{}, err
	}

	for i, b := range containerMagic {
		if fixed[i] != b {
			return header{}, ErrInvalidContainer
		}
	}
	if fixed[4] != containerVersion {
		return header{}, ErrInvalidContainer
	}

	h := header{
		cipherID: fixed[5],
		flags:    fixed[6],
	}

	if sigLen := int(fixed[7]); sigLen > 0 {
		h.signature = make([]byte, sigLen)
		if _, err := io.ReadFull(r, h.signature); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return header{}, ErrInvalidContainer
			}
			return header{}, err
		}
	}
	return h, nil
}
