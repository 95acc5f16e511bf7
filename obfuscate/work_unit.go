package obfuscate

// CallbackFunc is a callback function which will get called by the engine
// once the processing of a work unit has been finished
type CallbackFunc func(*WorkUnit)

// MetadataMap carries arbitrary caller data attached to a WorkUnit
type MetadataMap map[string]interface{}

// WorkUnit is a unit of encryption/decryption work flowing from a Tap into
// the Engine
type WorkUnit struct {
	// Task the task to process
	Task *Task
	// Metadata arbitrary caller data, handed back to the callback untouched
	Metadata MetadataMap
	// Error the error details of a failed task, set by the engine before the callback runs
	Error error

	callback CallbackFunc
}

// NewWorkUnit creates a new work unit
func NewWorkUnit(t *Task, c CallbackFunc) *WorkUnit {
	return &WorkUnit{
		Task:     t,
		Metadata: make(MetadataMap),
		callback: c,
	}
}

func (w *WorkUnit) callBack() {
	if w.callback != nil {
		w.callback(w)
	}
}
