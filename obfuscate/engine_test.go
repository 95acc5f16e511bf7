package obfuscate

import (
	"bytes"
	"testing"
	"time"

	"github.com/mattetti/filebuffer"
)

func TestStartStop(t *testing.T) {
	tap := newMockedTap()
	engine := NewEngine(1, false, tap)
	engine.Start()

	if !tap.IsOpen() {
		t.Error("The tap was supposed to be open")
	}

	if !engine.IsON() {
		t.Error("The engine was supposed to be running")
	}

	engine.Stop()

	if tap.IsOpen() {
		t.Error("The tap was supposed to be closed")
	}

	if engine.IsON() {
		t.Error("The engine was supposed to be off")
	}
}

func TestMissingCipher(t *testing.T) {
	var count int
	cb := func(w *WorkUnit) {
		count++
		if w.Error != errMissingCipher {
			t.Errorf("expected '%v' as error, but received '%v'", errMissingCipher, w.Error)
		}
		status := w.Task.Status()
		if status != Failed {
			t.Errorf("expected status '%v', actual '%v'", Failed, status)
		}
	}

	tap := newMockedTap()
	engine := NewEngine(1, false, tap)
	engine.Start()
	in := filebuffer.New([]byte("input"))
	out := filebuffer.New(nil)

	task := NewEncodeTask(nil, false, in, out)
	tap.Push(NewWorkUnit(task, cb))

	time.Sleep(1 * time.Millisecond)

	if count != 1 {
		t.Errorf("the callback function was supposed to get called once, but it was called %d time(s)", count)
	}

	engine.Stop()
}

func TestEncDec(t *testing.T) {
	var count int
	cb := func(w *WorkUnit) {
		w.Task.CloseOutputs()
		w.Task.CloseInput()
		count++
		if w.Error != nil {
			t.Errorf("expected 'nil' as error, but received '%v'", w.Error)
		}
		status := w.Task.Status()
		if status != Completed {
			t.Errorf("expected status '%v', actual '%v'", Completed, status)
		}
	}

	testCases := []struct {
		title      string
		input      []byte
		cipherName string
		key        []byte
	}{
		{
			title:      "non_empty_input",
			input:      []byte("input"),
			cipherName: "qd256",
		},
		{
			title:      "empty_input",
			input:      []byte(""),
			cipherName: "qd256",
		},
		{
			title:      "whitespace_input",
			input:      []byte("    "),
			cipherName: "qd256",
		},
		{
			title:      "keyed_cipher",
			input:      []byte("input"),
			cipherName: "bitgate",
			key:        []byte("Thisismysecretkey"),
		},
	}

	tap := newMockedTap()
	engine := NewEngine(1, false, tap)
	engine.Start()

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			cipher, err := NewCipher(tc.cipherName, tc.key)
			if err != nil {
				t.Fatalf("failed to create the cipher: %v", err)
			}

			in := filebuffer.New(tc.input)
			out := filebuffer.New(nil)

			task := NewEncodeTask(cipher, false, in, out)
			tap.Push(NewWorkUnit(task, cb))

			//wait until the request is served
			time.Sleep(1 * time.Millisecond)

			encoded := out.Buff.Bytes()

			if len(encoded) == 0 {
				t.Errorf("encoded result is empty")
			}

			in = filebuffer.New(encoded)
			out = filebuffer.New(nil)

			task = NewDecodeTask(tc.key, in, out)
			tap.Push(NewWorkUnit(task, cb))

			//wait until the request is served
			time.Sleep(1 * time.Millisecond)

			if !bytes.Equal(tc.input, out.Buff.Bytes()) {
				t.Errorf("decoded result does not match the input")
			}
		})
	}

	time.Sleep(1 * time.Millisecond)

	if count != len(testCases)*2 {
		t.Errorf("the callback function was supposed to get called %d times, but it was called %d time(s)", len(testCases)*2, count)
	}

	engine.Stop()
}

func TestWorkUnitMetadata(t *testing.T) {
	done := make(chan None)
	cb := func(w *WorkUnit) {
		if w.Metadata["input"] != "in.txt" {
			t.Errorf("expected metadata to be handed back untouched, actual %v", w.Metadata["input"])
		}
		close(done)
	}

	tap := newMockedTap()
	engine := NewEngine(1, false, tap)
	engine.Start()

	cipher, _ := NewCipher("qd256", nil)
	task := NewEncodeTask(cipher, false, filebuffer.New([]byte("input")), filebuffer.New(nil))
	wu := NewWorkUnit(task, cb)
	wu.Metadata["input"] = "in.txt"
	tap.Push(wu)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("the callback function was not called")
	}

	engine.Stop()
}
