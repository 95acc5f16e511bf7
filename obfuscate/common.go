package obfuscate

import (
	"context"
	"io"
)

// None represents an empty struct{}
type None struct{}

const defaultBufferSize = 1024

// processData pumps input into output, applying stream to every buffer on
// the way through. A nil stream copies the data unchanged. Transformation
// happens in place, one buffer at a time, so memory usage stays constant
// regardless of the stream length.
func processData(input io.Reader, output io.Writer, bufferSize int, stream Stream, cancelled *bool) (Status, error) {
	buffer := make([]byte, bufferSize)
	for {
		if *cancelled {
			return Cancelled, nil
		}
		count, err := input.Read(buffer)
		if count > 0 {
			if stream != nil {
				stream.Transform(buffer[:count], buffer[:count])
			}
			_, werr := output.Write(buffer[:count])
			if werr != nil && werr != io.EOF {
				return Failed, werr
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return Failed, err
		}
	}
	return Completed, nil
}

func monitorCancellation(ctx context.Context) *bool {
	var cancelled bool
	go func() {
		<-ctx.Done()
		cancelled = true
	}()
	return &cancelled
}
