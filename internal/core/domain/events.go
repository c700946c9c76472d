package domain

import (
	"context"
	"time"
)

// SetupDetails describes the run about to start. It is passed to the global
// setup callback and to every setup event subscriber.
type SetupDetails struct {
	Context ExecutionContext
	Target  *Task
	// Tasks holds the ancestor closure in topological order.
	Tasks []*Task
}

// TeardownDetails describes a finished run.
type TeardownDetails struct {
	Context ExecutionContext
	Report  *Report
	// Successful is false when the run is unwinding with an error.
	Successful bool
	// Err is the error the run is unwinding with, if any.
	Err error
}

// TaskSetupDetails describes a task about to run or be skipped.
type TaskSetupDetails struct {
	Context ExecutionContext
	Task    *Task
	Skipped bool
}

// TaskTeardownDetails describes a task that finished its lifecycle.
type TaskTeardownDetails struct {
	Context  ExecutionContext
	Task     *Task
	Skipped  bool
	Duration time.Duration
	// Failed is true when the task is unwinding with an error.
	Failed bool
}

// SetupHook runs once before the first task of a run.
type SetupHook func(ctx context.Context, d SetupDetails) error

// TeardownHook runs once after the last task of a run, whether the run
// succeeded or failed.
type TeardownHook func(ctx context.Context, d TeardownDetails) error

// TaskSetupHook runs before each task.
type TaskSetupHook func(ctx context.Context, d TaskSetupDetails) error

// TaskTeardownHook runs after each task, whether it succeeded, failed or
// was skipped.
type TaskTeardownHook func(ctx context.Context, d TaskTeardownDetails) error
