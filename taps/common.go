// Package taps implements the work-unit sources which connect local
// filesystem activity to an obfuscate.Engine. A tap watches a source
// directory and dispatches an encryption work unit for every file dropped
// into it, writing the resulting container into the target directory.
package taps

import (
	"os"
	"path/filepath"

	"github.com/jacurick19/5-Days-5-Algorithms/obfuscate"
)

const (
	encodedFileExtension  = ".qdv"
	outputMetadataKey     = "output"
	inputMetadataKey      = "input"
	outputFullMetadataKey = "output_full_path"
	inputFullMetadataKey  = "input_full_path"
)

// File describes one side of a processed file pair
type File struct {
	// Name file name
	Name string
	// Path file full path
	Path string
}

// FileSet is the input/output file pair of a single work unit
type FileSet struct {
	Input, Output File
}

// Result represents the progress details of a dispatched task
type Result struct {
	// Status the status of the operation
	Status obfuscate.Status
	// Error the error details of a failed task
	Error error
	// Input input file
	Input File
	// Output output file
	Output File
}

func parseMetadata(metadata obfuscate.MetadataMap) FileSet {
	return FileSet{
		Input: File{
			Name: metadata[inputMetadataKey].(string),
			Path: metadata[inputFullMetadataKey].(string),
		},
		Output: File{
			Name: metadata[outputMetadataKey].(string),
			Path: metadata[outputFullMetadataKey].(string),
		},
	}
}

func createDirIfNotExist(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir, err
	}
	f, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return abs, os.MkdirAll(abs, os.ModePerm)
	}
	if err != nil {
		return abs, err
	}
	if !f.IsDir() {
		return abs, ErrInvalidDirectory
	}
	return abs, nil
}

func isDirEmpty(name string) bool {
	entries, err := os.ReadDir(name)
	if err != nil {
		return false
	}
	return len(entries) == 0
}
