package obfuscate

import (
	"io"
	"sync"
)

// Operation represents the operation which needs to be done by a Task
type Operation int8

const (
	// Encode encryption mode
	Encode Operation = iota
	// Decode decryption mode
	Decode
)

// Task is a unit of encryption/decryption work
type Task struct {
	mode     Operation
	cipher   Cipher
	key      []byte
	compress bool
	input    io.Reader

	status Status

	mux        sync.Mutex
	inProgress bool
	outputs    []io.Writer
}

// NewEncodeTask creates a Task which encrypts the input into the output
// using the provided cipher, optionally compressing the payload first
func NewEncodeTask(cipher Cipher, compress bool, input io.Reader, output io.Writer) *Task {
	return &Task{
		mode:     Encode,
		cipher:   cipher,
		compress: compress,
		input:    input,
		outputs:  []io.Writer{output},
		status:   Queued,
	}
}

// NewDecodeTask creates a Task which decrypts a container from the input
// into the output using the provided key material
func NewDecodeTask(key []byte, input io.Reader, output io.Writer) *Task {
	return &Task{
		mode:    Decode,
		key:     key,
		input:   input,
		outputs: []io.Writer{output},
		status:  Queued,
	}
}

// AddOutput adds a new output to the Task.
// Calling this function on an in-progress Task will return ErrOperationInProgress error
func (t *Task) AddOutput(output io.Writer) error {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.inProgress {
		return ErrOperationInProgress
	}
	t.outputs = append(t.outputs, output)
	return nil
}

// CloseInput closes the input Reader.
// If the reader is not a io.Closer, calling this function will have no effect.
// Calling this function on an in-progress Task will return ErrOperationInProgress error
func (t *Task) CloseInput() error {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.inProgress {
		return ErrOperationInProgress
	}
	input, ok := t.input.(io.Closer)
	if ok && input != nil {
		return input.Close()
	}
	return nil
}

// CloseOutputs closes all the output Writers.
// If an output is not a io.Closer, calling this function will have no effect on it.
// Calling this function on an in-progress Task will return ErrOperationInProgress error
func (t *Task) CloseOutputs() error {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.inProgress {
		return ErrOperationInProgress
	}
	for _, out := range t.outputs {
		output, ok := out.(io.Closer)
		if ok && output != nil {
			err := output.Close()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Status returns the current status of the Task
func (t *Task) Status() Status {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.status
}

func (t *Task) markAsInProgress() {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.inProgress = true
}

func (t *Task) markAsComplete(status Status) {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.status = status
	t.inProgress = false
}
