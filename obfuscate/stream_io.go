package obfuscate

import "io"

// StreamReader is an io.Reader which applies a Stream to everything read
// from the underlying reader.
type StreamReader struct {
	reader io.Reader
	stream Stream
}

// NewStreamReader creates a StreamReader applying stream to reader
func NewStreamReader(reader io.Reader, stream Stream) *StreamReader {
	return &StreamReader{reader: reader, stream: stream}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.stream.Transform(p[:n], p[:n])
	}
	return n, err
}

// StreamWriter is an io.Writer which applies a Stream to everything written
// to the underlying writer.
type StreamWriter struct {
	writer io.Writer
	stream Stream
}

// NewStreamWriter creates a StreamWriter applying stream to writer
func NewStreamWriter(writer io.Writer, stream Stream) *StreamWriter {
	return &StreamWriter{writer: writer, stream: stream}
}

func (w *StreamWriter) Write(p []byte) (int, error) {
	// the io.Writer contract forbids modifying p
	buffer := make([]byte, len(p))
	w.stream.Transform(buffer, p)
	return w.writer.Write(buffer)
}
