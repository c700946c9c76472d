package domain

import "go.trai.ch/zerr"

// WithDetail attaches a key/value pair to err while keeping err matchable
// through errors.Is. zerr.With on a *zerr.Error returns a detached copy
// with no Unwrap link to the original, so the metadata rides on a wrapper
// that keeps err as its cause.
func WithDetail(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}

var (
	// ErrDuplicateTask is returned when registering a task whose name
	// collides case-insensitively with an existing task.
	ErrDuplicateTask = zerr.New("task already registered")

	// ErrTargetNotFound is returned when the requested target does not
	// match any registered task.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrMissingDependency is returned when a task references a dependency
	// that is not registered.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the dependency graph reachable from
	// the target contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrUnreachableTarget is returned when the requested target's own run
	// criteria reject it: the run cannot satisfy its own goal.
	ErrUnreachableTarget = zerr.New("target cannot run: criteria not fulfilled")

	// ErrTaskExecutionFailed wraps an unrecovered failure raised by a
	// task's work or by its error handler.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrHookFailed wraps a failure raised by a setup, teardown or event
	// subscriber callback.
	ErrHookFailed = zerr.New("hook failed")

	// ErrNoTargetSpecified is returned when a run is requested without a
	// target task name.
	ErrNoTargetSpecified = zerr.New("no target specified")
)
