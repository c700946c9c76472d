package domain

// ExecutionContext is handed to every run criterion, action and hook.
// It exposes the host capabilities a task may consult; the scheduler itself
// never stores state in it.
type ExecutionContext interface {
	Environment() Environment
	Arguments() Arguments
	Filesystem() Filesystem
	Log() Log
}

// Environment provides read access to process environment variables.
type Environment interface {
	// Lookup returns the value of the named variable and whether it is set.
	Lookup(name string) (string, bool)
}

// Arguments provides read access to the invocation arguments of the run.
type Arguments interface {
	// Get returns the value of the named argument and whether it was passed.
	Get(name string) (string, bool)
	// Has reports whether the named argument was passed.
	Has(name string) bool
}

// Filesystem provides read access to the host filesystem.
type Filesystem interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool
}

// Log accepts leveled messages from tasks and hooks. Logging never fails
// the run.
type Log interface {
	Verbose(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}
