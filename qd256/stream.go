package qd256

// Encrypter is a stateful stream transform which replaces every input byte
// with the running group product of all the input bytes seen so far.
//
// The zero value is ready to use; the accumulator starts at Identity.
// Multiple calls to Transform behave as if the concatenation of the source
// buffers was transformed in a single run. An Encrypter must not be reused
// across independent streams.
type Encrypter struct {
	acc Element
}

// NewEncrypter creates an Encrypter with the accumulator set to Identity.
func NewEncrypter() *Encrypter {
	return &Encrypter{}
}

// Transform encrypts src into dst, which must be at least as long as src.
// dst and src may overlap entirely for in-place operation.
func (e *Encrypter) Transform(dst, src []byte) {
	for i, b := range src {
		e.acc = Mul(e.acc, Element(b))
		dst[i] = byte(e.acc)
	}
}

// Decrypter is the stateful inverse of Encrypter. Since ciphertext byte i is
// the product of plaintext bytes 0..i, each plaintext byte is recovered as
// the product of the inverse of the previous ciphertext byte with the current
// one.
//
// The zero value is ready to use. An instance must not be reused across
// independent streams.
type Decrypter struct {
	last Element
}

// NewDecrypter creates a Decrypter with its state set to Identity.
func NewDecrypter() *Decrypter {
	return &Decrypter{}
}

// Transform decrypts src into dst, which must be at least as long as src.
// dst and src may overlap entirely for in-place operation.
func (d *Decrypter) Transform(dst, src []byte) {
	for i, b := range src {
		c := Element(b)
		dst[i] = byte(Mul(Inverse(d.last), c))
		d.last = c
	}
}

// Encrypt is the eager form of Encrypter; it returns the ciphertext of p.
// The output always has the same length as the input and an empty input
// yields an empty output.
func Encrypt(p []byte) []byte {
	c := make([]byte, len(p))
	NewEncrypter().Transform(c, p)
	return c
}

// Decrypt is the eager form of Decrypter; it returns the plaintext of c.
func Decrypt(c []byte) []byte {
	p := make([]byte, len(c))
	NewDecrypter().Transform(p, c)
	return p
}
