package obfuscate

import (
	"sync"
)

// feeder drains the tap's requests channel into the engine's internal tube
type feeder struct {
	tube RequestChannel
	tap  Tap

	wg   *sync.WaitGroup
	done chan None

	openOnce     sync.Once
	shutdownOnce sync.Once

	//to prevent multiple go routines to run shutdown and open at the same time
	mux    sync.Mutex
	isOpen bool
}

func newFeeder(bufferSize uint16, tap Tap) *feeder {
	return &feeder{
		tube: make(RequestChannel, bufferSize),
		done: make(chan None),
		wg:   &sync.WaitGroup{},
		tap:  tap,
	}
}

func (f *feeder) consumeTap() {
	defer f.wg.Done()
	for {
		select {
		case <-f.done:
			return
		case w, more := <-f.tap.Requests():
			if !more {
				return
			}
			f.tube <- w
		}
	}
}

func (f *feeder) shutdown() {
	f.mux.Lock()
	defer f.mux.Unlock()

	if !f.isOpen {
		return
	}

	f.shutdownOnce.Do(func() {
		if f.tap.IsOpen() {
			f.tap.Close()
		}
		close(f.done)
		f.wg.Wait()
		close(f.tube)
		f.isOpen = false
	})
}

func (f *feeder) open() {
	f.mux.Lock()
	defer f.mux.Unlock()

	if f.isOpen {
		return
	}

	f.openOnce.Do(func() {
		f.wg.Add(1)
		go f.consumeTap()
		if !f.tap.IsOpen() {
			f.tap.Open()
		}
		f.isOpen = true
	})
}
