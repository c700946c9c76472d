// Package strategy provides execution strategies for the scheduler. The
// default strategy runs a task's actions serially; the parallel strategy
// fans the actions of a single task out to goroutines.
package strategy

import (
	"context"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// Default runs the actions of a task one after another, in registration
// order, stopping at the first failure.
type Default struct {
	logger ports.Logger
}

// NewDefault creates the serial execution strategy.
func NewDefault(logger ports.Logger) *Default {
	return &Default{logger: logger}
}

// PerformSetup invokes the global setup callback.
func (s *Default) PerformSetup(ctx context.Context, hook domain.SetupHook, d domain.SetupDetails) error {
	if hook == nil {
		return nil
	}
	return hook(ctx, d)
}

// PerformTeardown invokes the global teardown callback.
func (s *Default) PerformTeardown(ctx context.Context, hook domain.TeardownHook, d domain.TeardownDetails) error {
	if hook == nil {
		return nil
	}
	return hook(ctx, d)
}

// Execute runs the task's actions serially. The first failing action aborts
// the remaining ones.
func (s *Default) Execute(ctx context.Context, task *domain.Task, ec domain.ExecutionContext) error {
	for _, action := range task.Actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := action(ctx, ec); err != nil {
			return zerr.With(err, "task", task.Name)
		}
	}
	return nil
}

// Skip records that the task's criteria ruled it out.
func (s *Default) Skip(task *domain.Task) {
	s.logger.Verbose("task skipped", "task", task.Name)
}

// PerformTaskSetup invokes the per-task setup callback.
func (s *Default) PerformTaskSetup(ctx context.Context, hook domain.TaskSetupHook, d domain.TaskSetupDetails) error {
	if hook == nil {
		return nil
	}
	return hook(ctx, d)
}

// PerformTaskTeardown invokes the per-task teardown callback.
func (s *Default) PerformTaskTeardown(ctx context.Context, hook domain.TaskTeardownHook, d domain.TaskTeardownDetails) error {
	if hook == nil {
		return nil
	}
	return hook(ctx, d)
}

// InvokeFinally runs the task's finally callback.
func (s *Default) InvokeFinally(ctx context.Context, hook domain.FinallyHandler, ec domain.ExecutionContext) error {
	if hook == nil {
		return nil
	}
	return hook(ctx, ec)
}

// ReportErrors invokes the task's error reporter with the original failure.
func (s *Default) ReportErrors(ec domain.ExecutionContext, reporter domain.ErrorReporter, original error) error {
	if reporter == nil {
		return nil
	}
	return reporter(ec, original)
}

// HandleErrors invokes the task's error handler with the original failure.
func (s *Default) HandleErrors(ctx context.Context, ec domain.ExecutionContext, handler domain.ErrorHandler, original error) error {
	return handler(ctx, ec, original)
}
