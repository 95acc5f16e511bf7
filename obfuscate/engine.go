package obfuscate

import (
	"context"
	"sync"
)

// Engine is the type that implements the functionality of processing
// encryption/decryption tasks received from a Tap.
//
// Every work unit is processed sequentially from start to finish by a single
// worker; parallelism only happens across independent work units, which
// share no mutable state.
type Engine struct {
	feed        *feeder
	notify      bool
	progress    chan *Result
	wg          *sync.WaitGroup
	cancel      context.CancelFunc
	parallelism uint16

	startOnce sync.Once
	stopOnce  sync.Once

	//to prevent multiple go routines to run Start and Stop at the same time
	mux       sync.Mutex
	isRunning bool
}

// NewEngine creates a new engine draining the provided tap with the
// specified number of parallel workers.
//
// If you enable progress notifications, you need to make sure you subscribe
// to the Progress channel, otherwise the workers will get blocked on the
// full channel.
func NewEngine(parallelism uint16, enableProgress bool, tap Tap) *Engine {
	return &Engine{
		feed:        newFeeder(parallelism, tap),
		progress:    make(chan *Result),
		wg:          &sync.WaitGroup{},
		notify:      enableProgress,
		parallelism: parallelism,
	}
}

// Progress returns a read-only channel on which you will receive the
// progress report of the submitted tasks
func (e *Engine) Progress() <-chan *Result {
	return e.progress
}

func (e *Engine) reportProgress(r *Result) {
	if e.notify {
		e.progress <- r
	}
}

// Start starts the engine to serve the requests coming through over the
// tap's requests channel. Once you are finished with the engine, you need to
// call the Stop function. It's safe to call this method on a running engine.
func (e *Engine) Start() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if e.isRunning {
		return
	}

	e.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		e.cancel = cancel

		for i := 0; uint16(i) < e.parallelism; i++ {
			e.wg.Add(1)
			go e.monitorTube(ctx)
		}
		e.feed.open()
		e.isRunning = true
	})
}

// Stop stops the engine and releases the resources.
// It's safe to call this function on a stopped engine.
func (e *Engine) Stop() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if !e.isRunning {
		return
	}
	e.stopOnce.Do(func() {
		if e.cancel != nil {
			e.isRunning = false
			e.feed.shutdown()
			e.cancel()
			e.wg.Wait()
			close(e.progress)
		}
	})
}

// IsON returns true if the engine is running
func (e *Engine) IsON() bool {
	e.mux.Lock()
	defer e.mux.Unlock()
	return e.isRunning
}

func (e *Engine) monitorTube(ctx context.Context) {
	defer e.wg.Done()
	for {
		select {
		case wu, more := <-e.feed.tube:
			if !more {
				return
			}

			e.reportProgress(&Result{
				Status:   Queued,
				Metadata: wu.Metadata,
			})
			err := processTask(ctx, wu.Task)
			wu.Error = err
			wu.callBack()
			e.reportProgress(&Result{
				Error:    err,
				Status:   wu.Task.Status(),
				Metadata: wu.Metadata,
			})
		case <-ctx.Done():
			return
		}
	}
}

func processTask(ctx context.Context, task *Task) error {
	task.markAsInProgress()
	var status Status
	var err error
	if task.mode == Encode {
		encoder := NewEncoder(defaultBufferSize, task.cipher, task.input, task.outputs...)
		if task.compress {
			encoder = NewCompressedEncoder(defaultBufferSize, task.cipher, task.input, task.outputs...)
		}
		status, err = encoder.EncodeContext(ctx)
	} else {
		decoder := NewDecoder(defaultBufferSize, task.key, task.input, task.outputs...)
		status, err = decoder.DecodeContext(ctx)
	}
	task.markAsComplete(status)
	return err
}
