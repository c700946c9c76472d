// Package domain contains the core domain model for the task dependency
// graph: task definitions, the ancestor graph built per run, and the report
// accumulated while the graph executes.
package domain

import "context"

// Criterion decides whether a task should run for the given context.
// Criteria are pure functions; they are evaluated in registration order.
type Criterion func(ec ExecutionContext) bool

// Action is a single unit of work owned by a task.
type Action func(ctx context.Context, ec ExecutionContext) error

// ErrorReporter is invoked best-effort when a task's work fails, before any
// error handler runs. A failing reporter never masks the original error.
type ErrorReporter func(ec ExecutionContext, err error) error

// ErrorHandler may recover a failed task. Returning nil swallows the
// failure; returning an error (the original or a new one) fails the run.
type ErrorHandler func(ctx context.Context, ec ExecutionContext, err error) error

// FinallyHandler runs after a task's work, whether it succeeded or failed.
type FinallyHandler func(ctx context.Context, ec ExecutionContext) error

// Task is an immutable task definition. Instances are created during the
// registration phase and never mutated once a run graph has been built.
type Task struct {
	Name          string
	Key           TaskKey
	Description   string
	Dependencies  []string
	Criteria      []Criterion
	ErrorReporter ErrorReporter
	ErrorHandler  ErrorHandler
	Finally       FinallyHandler
	Actions       []Action
}

// NewTask creates a task with the given name and derives its canonical key.
func NewTask(name string) *Task {
	return &Task{
		Name: name,
		Key:  KeyOf(name),
	}
}

// IsDelegating reports whether the task carries no work of its own and
// exists purely to group dependencies. Classification is by action count,
// not by type.
func (t *Task) IsDelegating() bool {
	return len(t.Actions) == 0
}
