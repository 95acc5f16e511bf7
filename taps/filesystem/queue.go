package filesystem

import (
	"os"
	"sync"
	"time"
)

// Entry is a file which has gone quiet and is ready to be processed
type Entry struct {
	Path string
	Info os.FileInfo
}

// Queue keeps a write-activity monitor per path.
type Queue struct {
	mux      sync.Mutex
	monitors map[string]*fileMonitor
}

// NewQueue creates an empty Queue
func NewQueue() *Queue {
	return &Queue{
		monitors: make(map[string]*fileMonitor),
	}
}

// AddOrUpdate registers a new path or refreshes the activity timestamp of an
// already tracked one. It returns true if the path points to a directory.
// Paths which have disappeared by the time they are stat'ed are silently
// ignored.
func (q *Queue) AddOrUpdate(path string) (bool, error) {
	q.mux.Lock()
	defer q.mux.Unlock()
	m, ok := q.monitors[path]
	if ok {
		m.update()
		return m.fi.IsDir(), nil
	}
	f, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	q.monitors[path] = newFileMonitor(f, path)
	return f.IsDir(), nil
}

// Remove stops tracking the specified path
func (q *Queue) Remove(path string) {
	q.mux.Lock()
	defer q.mux.Unlock()
	delete(q.monitors, path)
}

// Ready removes and returns the tracked files which have been quiet for at
// least the specified duration. Directories are never returned.
func (q *Queue) Ready(quiet time.Duration) []Entry {
	q.mux.Lock()
	defer q.mux.Unlock()
	var entries []Entry
	for path, m := range q.monitors {
		if m.fi.IsDir() || !m.isReady(quiet) {
			continue
		}
		entries = append(entries, Entry{Path: path, Info: m.fi})
		delete(q.monitors, path)
	}
	return entries
}
