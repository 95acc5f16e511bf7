package taps

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jacurick19/5-Days-5-Algorithms/obfuscate"
	"github.com/pkg/errors"
	"github.com/radovskyb/watcher"
)

// FilesystemTap is a polling tap which monitors the local filesystem and
// dispatches the content of the source directory for encryption into the
// target directory. Automatic decryption of dropped containers is not
// implemented, for security reasons.
type FilesystemTap struct {
	pipe           obfuscate.RequestChannel
	cipher         obfuscate.Cipher
	compress       bool
	watcher        *watcher.Watcher
	interval       time.Duration
	errors         chan error
	notify         bool
	delete         bool
	source, target string
	wg             *sync.WaitGroup

	openOnce  sync.Once
	closeOnce sync.Once

	//to prevent multiple go routines to run Open and Close at the same time
	mux    sync.Mutex
	isOpen bool
}

// NewFilesystemTap creates a new instance of a polling filesystem tap.
// You can feed this tap to an Engine object to automate your encryption tasks.
//
// If you have enabled error notification by setting 'notifyErrors' to true, you need to make sure
// that you subscribe to the "Errors" channel to read off the notification pipe, otherwise you will
// get blocked on the full channel.
//
// "pollingInterval" is the frequency of checking the "source" directory for newly created files.
//
// If you set "deleteCompleted" to true, the input files will get deleted, only if the encryption
// operation has been finished successfully.
//
// "source" and "target" are the paths to source and destination directories. They will get created
// by the tap if they don't already exist.
func NewFilesystemTap(source, target string,
	pollingInterval time.Duration,
	cipher obfuscate.Cipher,
	compress bool,
	notifyErrors bool,
	deleteCompleted bool) (*FilesystemTap, error) {
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

	w := watcher.New()
	w.FilterOps(watcher.Create)
	w.IgnoreHiddenFiles(true)

	if err := w.AddRecursive(src); err != nil {
		return nil, errors.Wrap(err, "failed to watch the source directory")
	}

	return &FilesystemTap{
		watcher:  w,
		interval: pollingInterval,
		errors:   make(chan error),
		notify:   notifyErrors,
		source:   src,
		target:   tg,
		delete:   deleteCompleted,
		wg:       &sync.WaitGroup{},
		cipher:   cipher,
		compress: compress,
		pipe:     make(obfuscate.RequestChannel),
	}, nil
}

// Errors returns a read-only channel on which you will receive the
// failure notifications. In order to receive the errors on the channel,
// you need to turn error notifications ON by setting the
// "notifyErrors" parameter of NewFilesystemTap to true.
func (f *FilesystemTap) Errors() <-chan error {
	return f.errors
}

// Requests returns the channel from which the engine will receive the encryption requests
func (f *FilesystemTap) Requests() obfuscate.RequestChannel {
	return f.pipe
}

// Open starts the filesystem watcher on the source directory
func (f *FilesystemTap) Open() {
	f.mux.Lock()
	defer f.mux.Unlock()

	if f.isOpen {
		return
	}
	f.openOnce.Do(func() {
		f.wg.Add(1)
		go f.monitorSourceDirectory()

		f.isOpen = true

		// Process the files which are currently in the source folder
		for path, file := range f.watcher.WatchedFiles() {
			f.dispatchWorkUnit(path, file)
		}

		f.wg.Add(1)
		go f.startDirectoryWatcher()
	})
}

// Close stops the filesystem watcher and releases the resources.
// NOTE: You don't need to explicitly call this function when you are using
// this tap with an Engine. The engine will take care of it.
func (f *FilesystemTap) Close() {
	f.mux.Lock()
	defer f.mux.Unlock()

	if !f.isOpen {
		return
	}
	f.closeOnce.Do(func() {
		if f.watcher != nil {
			f.isOpen = false
			f.watcher.Close()
			f.wg.Wait()
			close(f.pipe)
			close(f.errors)
		}
	})
}

// IsOpen returns true if the tap is open
func (f *FilesystemTap) IsOpen() bool {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.isOpen
}

func (f *FilesystemTap) startDirectoryWatcher() {
	defer f.wg.Done()
	err := f.watcher.Start(f.interval)

	if err != nil {
		f.reportError(errors.Wrap(err, "filesystem watcher"))
	}
}

func (f *FilesystemTap) monitorSourceDirectory() {
	defer f.wg.Done()
	for {
		select {
		case event := <-f.watcher.Event:
			f.dispatchWorkUnit(event.Path, event.FileInfo)
		case err := <-f.watcher.Error:
			f.reportError(err)
		case <-f.watcher.Closed:
			return
		}
	}
}

func (f *FilesystemTap) reportError(err error) {
	if f.isOpen && f.notify {
		f.errors <- err
	}
}

// whenDone is a callback method which will get called by the engine once the
// processing of a work unit has been finished
func (f *FilesystemTap) whenDone(w *obfuscate.WorkUnit) {
	m := parseMetadata(w.Metadata)

	err := w.Task.CloseInput()
	if err != nil {
		f.reportError(errors.Wrapf(err, "failed to close '%s'", m.Input.Name))
	}
	err = w.Task.CloseOutputs()
	if err != nil {
		f.reportError(errors.Wrapf(err, "failed to close '%s'", m.Output.Name))
	}

	if f.delete && w.Task.Status() == obfuscate.Completed {
		file := m.Input.Path
		err := os.Remove(file)
		if err != nil {
			f.reportError(errors.Wrapf(err, "failed to remove '%s'", m.Input.Name))
		}
		dir := filepath.Dir(file)
		if isDirEmpty(dir) && dir != f.source {
			os.RemoveAll(dir)
		}
	}
}

func (f *FilesystemTap) openInputFile(path string) (*os.File, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, path, err
	}

	//We need to wait until the watcher releases the handle
	time.Sleep(100 * time.Millisecond)

	input, err := os.Open(abs)
	return input, abs, err
}

func (f *FilesystemTap) createOutputFile(name, inputFullPath string) (*os.File, string, error) {
	subDir := strings.Replace(filepath.Dir(inputFullPath), f.source, "", 1)
	targetDir := filepath.Join(f.target, subDir)
	abs, err := createDirIfNotExist(targetDir)
	if err != nil {
		return nil, name, err
	}
	abs = filepath.Join(abs, name+encodedFileExtension)
	output, err := os.Create(abs)
	return output, abs, err
}

func (f *FilesystemTap) dispatchWorkUnit(path string, file os.FileInfo) {
	if !f.isOpen || f.source == path || file.IsDir() {
		return
	}

	input, inputFullPath, err := f.openInputFile(path)
	if err != nil {
		f.reportError(errors.Wrapf(err, "failed to open '%s'", path))
		return
	}

	name := file.Name()

	output, outputFullPath, err := f.createOutputFile(name, inputFullPath)
	if err != nil {
		f.reportError(errors.Wrapf(err, "failed to create '%s'", outputFullPath))
		return
	}

	t := obfuscate.NewEncodeTask(f.cipher, f.compress, input, output)
	w := obfuscate.NewWorkUnit(t, f.whenDone)
	w.Metadata[inputMetadataKey] = name
	w.Metadata[outputMetadataKey] = name + encodedFileExtension
	w.Metadata[inputFullMetadataKey] = inputFullPath
	w.Metadata[outputFullMetadataKey] = outputFullPath
	f.pipe <- w
}

// ParseMetadata extracts the input/output file pair of a work unit
// dispatched by this tap
func (f *FilesystemTap) ParseMetadata(metadata obfuscate.MetadataMap) FileSet {
	return parseMetadata(metadata)
}
