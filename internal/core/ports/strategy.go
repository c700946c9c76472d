// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mason/internal/core/domain"
)

// Strategy executes task work and lifecycle hooks on behalf of the
// scheduler. The scheduler never runs work directly; swapping the strategy
// swaps the execution semantics (serial vs. parallel) without touching the
// scheduling logic.
//
//go:generate go run go.uber.org/mock/mockgen -source=strategy.go -destination=mocks/mock_strategy.go -package=mocks
type Strategy interface {
	// PerformSetup invokes the global setup callback. A nil hook is a no-op.
	PerformSetup(ctx context.Context, hook domain.SetupHook, d domain.SetupDetails) error

	// PerformTeardown invokes the global teardown callback. A nil hook is a
	// no-op.
	PerformTeardown(ctx context.Context, hook domain.TeardownHook, d domain.TeardownDetails) error

	// Execute runs the task's work actions.
	Execute(ctx context.Context, task *domain.Task, ec domain.ExecutionContext) error

	// Skip notifies the strategy that the task was skipped by its criteria.
	Skip(task *domain.Task)

	// PerformTaskSetup invokes the per-task setup callback. A nil hook is a
	// no-op.
	PerformTaskSetup(ctx context.Context, hook domain.TaskSetupHook, d domain.TaskSetupDetails) error

	// PerformTaskTeardown invokes the per-task teardown callback. A nil hook
	// is a no-op.
	PerformTaskTeardown(ctx context.Context, hook domain.TaskTeardownHook, d domain.TaskTeardownDetails) error

	// InvokeFinally runs a task's finally callback.
	InvokeFinally(ctx context.Context, hook domain.FinallyHandler, ec domain.ExecutionContext) error

	// ReportErrors invokes a task's error reporter with the original failure.
	ReportErrors(ec domain.ExecutionContext, reporter domain.ErrorReporter, original error) error

	// HandleErrors invokes a task's error handler with the original failure.
	// A nil return recovers the task.
	HandleErrors(ctx context.Context, ec domain.ExecutionContext, handler domain.ErrorHandler, original error) error
}
