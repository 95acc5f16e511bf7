package obfuscate

import (
	"testing"

	"github.com/jacurick19/5-Days-5-Algorithms/obfuscate/mocks"
	"github.com/mattetti/filebuffer"
)

func TestTaskAddOutput(t *testing.T) {
	testCases := []struct {
		title         string
		expectedError error
		markAsRunning bool
	}{
		{
			title: "adding_output_must_append_to_the_output_slice",
		},
		{
			title:         "adding_output_to_an_in_progress_task_must_fail",
			expectedError: ErrOperationInProgress,
			markAsRunning: true,
		},
	}

	in := filebuffer.New(nil)
	out := filebuffer.New(nil)
	cipher, _ := NewCipher("qd256", nil)

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			task := NewEncodeTask(cipher, false, in, out)
			if tc.markAsRunning {
				task.markAsInProgress()
			}

			anotherOut := filebuffer.New(nil)
			err := task.AddOutput(anotherOut)
			if tc.expectedError != err {
				t.Errorf("Expected '%v' as error, but received '%v'", tc.expectedError, err)
			}

			if tc.markAsRunning {
				if len(task.outputs) != 1 {
					t.Error("There should only be one io.Writer in the output list")
				}
			} else {
				if len(task.outputs) != 2 {
					t.Error("The second io.Writer did not get added to the output list")
				}
			}
		})
	}
}

func TestTaskCloseInputOutput(t *testing.T) {
	in := &mocks.ReadCloser{}
	out := &mocks.WriteCloser{}
	cipher, _ := NewCipher("qd256", nil)

	task := NewEncodeTask(cipher, false, in, out)
	if err := task.CloseInput(); err != nil {
		t.Errorf("failed to close the input: %v", err)
	}
	if err := task.CloseOutputs(); err != nil {
		t.Errorf("failed to close the outputs: %v", err)
	}

	if !in.IsClosed {
		t.Error("the input was supposed to be closed")
	}
	if !out.IsClosed {
		t.Error("the output was supposed to be closed")
	}
}

func TestTaskCloseNonCloser(t *testing.T) {
	in := &mocks.OnlyReader{}
	out := &mocks.OnlyWriter{}
	cipher, _ := NewCipher("qd256", nil)

	task := NewEncodeTask(cipher, false, in, out)
	if err := task.CloseInput(); err != nil {
		t.Errorf("closing a non closer input must have no effect, but received '%v'", err)
	}
	if err := task.CloseOutputs(); err != nil {
		t.Errorf("closing a non closer output must have no effect, but received '%v'", err)
	}
}

func TestTaskCloseInProgress(t *testing.T) {
	in := &mocks.ReadCloser{}
	out := &mocks.WriteCloser{}
	cipher, _ := NewCipher("qd256", nil)

	task := NewEncodeTask(cipher, false, in, out)
	task.markAsInProgress()

	if err := task.CloseInput(); err != ErrOperationInProgress {
		t.Errorf("Expected '%v' as error, but received '%v'", ErrOperationInProgress, err)
	}
	if err := task.CloseOutputs(); err != ErrOperationInProgress {
		t.Errorf("Expected '%v' as error, but received '%v'", ErrOperationInProgress, err)
	}
}
