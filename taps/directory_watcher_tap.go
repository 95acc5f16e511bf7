package taps

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jacurick19/5-Days-5-Algorithms/obfuscate"
	"github.com/jacurick19/5-Days-5-Algorithms/taps/filesystem"
	"github.com/pkg/errors"
	"github.com/rjeczalik/notify"
)

const (
	// quiescence threshold; a file is only dispatched once it has not been
	// written to for this long
	writeQuietPeriod = 2 * time.Second
	dispatchInterval = time.Second
	cleanupInterval  = 5 * time.Second
)

// DirectoryWatcherTap is an event-driven tap which monitors the local
// filesystem and dispatches the content of the source directory for
// encryption into the target directory.
//
// Unlike FilesystemTap it subscribes to filesystem events instead of
// polling, and it holds back files which are still being written to until
// they have gone quiet.
type DirectoryWatcherTap struct {
	pipe           obfuscate.RequestChannel
	progress       chan *Result
	cipher         obfuscate.Cipher
	compress       bool
	errors         chan error
	notifyErr      bool
	report         bool
	delete         bool
	source, target string
	wg             *sync.WaitGroup
	done           chan obfuscate.None
	fsEvents       chan notify.EventInfo
	queue          *filesystem.Queue
	inFlight       int32

	mux         sync.Mutex
	directories map[string]obfuscate.None

	openOnce  sync.Once
	closeOnce sync.Once

	// to prevent multiple go routines to run
	// Open and Close at the same time
	stateMux sync.Mutex
	isOpen   bool
}

// NewDirectoryWatcherTap creates a new instance of an event-driven directory watcher tap.
//
// If you have enabled error notification by setting 'notifyErrors' to true, you need to make sure
// that you subscribe to the "Errors" channel to read off the notification pipe, otherwise you will
// get blocked on the full channel. The same applies to "reportProgress" and the Progress channel.
//
// If you set "deleteCompleted" to true, the input files will get deleted, only if the encryption
// operation has been finished successfully. Emptied sub directories get cleaned up as well.
//
// "source" and "target" are the paths to source and destination directories. They will get created
// by the tap if they don't already exist.
func NewDirectoryWatcherTap(source, target string,
	cipher obfuscate.Cipher,
	compress bool,
	notifyErrors bool,
	reportProgress bool,
	deleteCompleted bool) (*DirectoryWatcherTap, error) {
	if cipher == nil {
		return nil, ErrNilCipher
	}

	src, err := createDirIfNotExist(source)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to prepare the source directory '%s'", source)
	}

	tg, err := createDirIfNotExist(target)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to prepare the target directory '%s'", target)
	}

	return &DirectoryWatcherTap{
		errors:      make(chan error),
		notifyErr:   notifyErrors,
		source:      src,
		target:      tg,
		delete:      deleteCompleted,
		wg:          &sync.WaitGroup{},
		cipher:      cipher,
		compress:    compress,
		pipe:        make(obfuscate.RequestChannel),
		progress:    make(chan *Result),
		done:        make(chan obfuscate.None),
		report:      reportProgress,
		queue:       filesystem.NewQueue(),
		directories: make(map[string]obfuscate.None),
		// Make the channel buffered to ensure no event is dropped. Notify will drop
		// an event if the receiver is not able to keep up the sending pace.
		fsEvents: make(chan notify.EventInfo, 100),
	}, nil
}

// Errors returns a read-only channel on which you will receive the failure notifications.
//
// In order to receive the errors on the channel, you need to turn error notifications On by
// setting the "notifyErrors" parameter of NewDirectoryWatcherTap to true.
// You can also switch it On or Off by calling the SwitchErrorNotification(...) method.
func (d *DirectoryWatcherTap) Errors() <-chan error {
	return d.errors
}

// Requests returns the channel from which the engine will receive the encryption requests
func (d *DirectoryWatcherTap) Requests() obfuscate.RequestChannel {
	return d.pipe
}

// Progress returns a read-only channel on which you will receive the progress report.
//
// In order to receive progress report on the channel, you need to turn it On by setting
// the "reportProgress" parameter of NewDirectoryWatcherTap to true.
// You can also switch it On or Off by calling the SwitchProgressReport(...) method.
func (d *DirectoryWatcherTap) Progress() <-chan *Result {
	return d.progress
}

// SwitchErrorNotification switches error notification ON/OFF
func (d *DirectoryWatcherTap) SwitchErrorNotification(on bool) {
	d.notifyErr = on
}

// SwitchProgressReport switches progress report ON/OFF
func (d *DirectoryWatcherTap) SwitchProgressReport(on bool) {
	d.report = on
}

// Open starts the directory watcher on the source directory.
// You SHOULD NOT call this method explicitly when you use the tap with an
// Engine object. Starting the engine will take care of opening the tap.
func (d *DirectoryWatcherTap) Open() {
	d.stateMux.Lock()
	defer d.stateMux.Unlock()

	d.openOnce.Do(func() {
		if d.delete {
			d.wg.Add(1)
			go d.startCleaner()
		}

		d.wg.Add(1)
		go d.startDirectoryWatcher()

		d.isOpen = true

		d.wg.Add(1)
		// Process the files which are currently in the source folder
		go d.processExistingFiles()
	})
}

// Close stops the filesystem watcher and releases the resources.
// NOTE: You don't need to explicitly call this function when you are using
// the tap with an Engine.
func (d *DirectoryWatcherTap) Close() {
	d.stateMux.Lock()
	defer d.stateMux.Unlock()

	d.closeOnce.Do(func() {
		notify.Stop(d.fsEvents)
		close(d.done)
		d.wg.Wait()
		close(d.pipe)
		close(d.errors)
		close(d.progress)
		d.isOpen = false
	})
}

// IsOpen returns true if the tap is open
func (d *DirectoryWatcherTap) IsOpen() bool {
	d.stateMux.Lock()
	defer d.stateMux.Unlock()
	return d.isOpen
}

func (d *DirectoryWatcherTap) startDirectoryWatcher() {
	defer d.wg.Done()

	if err := notify.Watch(filepath.Join(d.source, "..."), d.fsEvents, notify.Create, notify.Write); err != nil {
		d.reportError(errors.Wrap(err, "failed to watch the source directory"))
		return
	}

	ticker := time.NewTicker(dispatchInterval)
	defer ticker.Stop()
	for {
		select {
		case <-d.done:
			return
		case ei := <-d.fsEvents:
			isDir, err := d.queue.AddOrUpdate(ei.Path())
			if err != nil {
				d.reportError(errors.Wrapf(err, "failed to track '%s'", ei.Path()))
				continue
			}
			if isDir {
				d.rememberDirectory(ei.Path())
				d.queue.Remove(ei.Path())
			}
		case <-ticker.C:
			for _, entry := range d.queue.Ready(writeQuietPeriod) {
				atomic.AddInt32(&d.inFlight, 1)
				d.dispatchWorkUnit(entry.Path, entry.Info)
			}
		}
	}
}

func (d *DirectoryWatcherTap) processExistingFiles() {
	defer d.wg.Done()
	err := filepath.Walk(d.source, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !d.IsOpen() {
			return io.EOF
		}

		if info.IsDir() {
			if path != d.source {
				d.rememberDirectory(path)
			}
		} else {
			atomic.AddInt32(&d.inFlight, 1)
			d.dispatchWorkUnit(path, info)
		}
		return nil
	})

	if err != nil && err != io.EOF {
		d.reportError(err)
	}
}

func (d *DirectoryWatcherTap) startCleaner() {
	defer d.wg.Done()
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if atomic.LoadInt32(&d.inFlight) != 0 {
				continue
			}
			for _, dir := range d.forgetDirectories() {
				d.removeDirectory(dir)
			}
		case <-d.done:
			return
		}
	}
}

func (d *DirectoryWatcherTap) rememberDirectory(path string) {
	d.mux.Lock()
	defer d.mux.Unlock()
	d.directories[path] = obfuscate.None{}
}

func (d *DirectoryWatcherTap) forgetDirectories() []string {
	d.mux.Lock()
	defer d.mux.Unlock()
	dirs := make([]string, 0, len(d.directories))
	for dir := range d.directories {
		dirs = append(dirs, dir)
		delete(d.directories, dir)
	}
	return dirs
}

// removeDirectory removes the directory if it has been emptied, then walks
// up towards the source root doing the same
func (d *DirectoryWatcherTap) removeDirectory(dir string) {
	if dir == d.source || !strings.HasPrefix(dir, d.source) {
		return
	}

	if isDirEmpty(dir) {
		err := os.RemoveAll(dir)
		if err != nil && !os.IsNotExist(err) {
			d.reportError(errors.Wrapf(err, "failed to remove the '%s' directory", dir))
		}
	}
	d.removeDirectory(filepath.Dir(dir))
}

func (d *DirectoryWatcherTap) reportError(err error) {
	if d.IsOpen() && d.notifyErr {
		d.errors <- err
	}
}

func (d *DirectoryWatcherTap) reportProgress(r *Result) {
	if d.report && d.IsOpen() {
		d.progress <- r
	}
}

// whenDone is a callback method which will get called by the engine once the
// processing of a work unit has been finished
func (d *DirectoryWatcherTap) whenDone(w *obfuscate.WorkUnit) {
	m := parseMetadata(w.Metadata)

	err := w.Task.CloseInput()
	if err != nil {
		d.reportError(errors.Wrapf(err, "failed to close '%s'", m.Input.Name))
	}
	err = w.Task.CloseOutputs()
	if err != nil {
		d.reportError(errors.Wrapf(err, "failed to close '%s'", m.Output.Name))
	}

	if d.delete && w.Task.Status() == obfuscate.Completed {
		err := os.Remove(m.Input.Path)
		if err != nil {
			d.reportError(errors.Wrapf(err, "failed to remove '%s'", m.Input.Name))
		}
	}
	atomic.AddInt32(&d.inFlight, -1)

	d.reportProgress(&Result{
		Input:  m.Input,
		Output: m.Output,
		Status: w.Task.Status(),
		Error:  w.Error,
	})
}

func (d *DirectoryWatcherTap) openInputFile(path string) (*os.File, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, path, err
	}

	input, err := os.Open(abs)
	return input, abs, err
}

func (d *DirectoryWatcherTap) createOutputFile(name, inputFullPath string) (*os.File, string, error) {
	subDir := strings.Replace(filepath.Dir(inputFullPath), d.source, "", 1)
	targetDir := filepath.Join(d.target, subDir)
	abs, err := createDirIfNotExist(targetDir)
	if err != nil {
		return nil, name, err
	}
	abs = filepath.Join(abs, name+encodedFileExtension)
	output, err := os.Create(abs)
	return output, abs, err
}

func (d *DirectoryWatcherTap) dispatchWorkUnit(path string, file os.FileInfo) {
	input, inputFullPath, err := d.openInputFile(path)
	if err != nil {
		atomic.AddInt32(&d.inFlight, -1)
		d.reportError(errors.Wrapf(err, "failed to open '%s'", path))
		return
	}

	name := file.Name()

	output, outputFullPath, err := d.createOutputFile(name, inputFullPath)
	if err != nil {
		atomic.AddInt32(&d.inFlight, -1)
		d.reportError(errors.Wrapf(err, "failed to create '%s'", outputFullPath))
		return
	}

	t := obfuscate.NewEncodeTask(d.cipher, d.compress, input, output)
	w := obfuscate.NewWorkUnit(t, d.whenDone)
	outName := name + encodedFileExtension
	w.Metadata[inputMetadataKey] = name
	w.Metadata[outputMetadataKey] = outName
	w.Metadata[inputFullMetadataKey] = inputFullPath
	w.Metadata[outputFullMetadataKey] = outputFullPath

	d.reportProgress(&Result{
		Status: t.Status(),
		Input: File{
			Name: name,
			Path: inputFullPath,
		},
		Output: File{
			Name: outName,
			Path: outputFullPath,
		},
	})

	d.pipe <- w
}
