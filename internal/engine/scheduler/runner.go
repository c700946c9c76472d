package scheduler

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// taskRunner drives a single task's lifecycle: setup, criteria evaluation,
// execution through the strategy, error handling, finally, teardown and the
// report entry. It is the visitor the traverser invokes.
type taskRunner struct {
	strategy ports.Strategy
	logger   ports.Logger
	tracer   ports.Tracer
	ec       domain.ExecutionContext
	report   *domain.Report
	target   domain.TaskKey
	hooks    hookSet
}

// hookSet carries the engine-level per-task callbacks into the runner: the
// single global slots plus the ordered subscriber lists.
type hookSet struct {
	taskSetup        domain.TaskSetupHook
	taskTeardown     domain.TaskTeardownHook
	taskSetupSubs    []domain.TaskSetupHook
	taskTeardownSubs []domain.TaskTeardownHook
}

func (r *taskRunner) run(ctx context.Context, t *domain.Task) error {
	// A node launched in the same instant the run was cancelled is skipped
	// entirely: no hooks fire and no report entry is written.
	if err := ctx.Err(); err != nil {
		return err
	}

	if !criteriaFulfilled(t, r.ec) {
		if t.Key == r.target {
			return domain.WithDetail(domain.ErrUnreachableTarget, "target", t.Name)
		}
		return r.skip(ctx, t)
	}

	return r.execute(ctx, t)
}

// criteriaFulfilled evaluates the task's run criteria in registration order.
func criteriaFulfilled(t *domain.Task, ec domain.ExecutionContext) bool {
	for _, criterion := range t.Criteria {
		if !criterion(ec) {
			return false
		}
	}
	return true
}

func (r *taskRunner) execute(ctx context.Context, t *domain.Task) error {
	started := time.Now()
	ctx, span := r.tracer.Start(ctx, t.Name)
	defer span.End()

	r.logger.Verbose("executing task", "task", t.Name)

	if err := r.fireTaskSetup(ctx, t, false); err != nil {
		err = zerr.With(zerr.Wrap(err, "task setup hook failed"), "task", t.Name)
		span.RecordError(err)
		// Teardown still fires; its own failure is suppressed because an
		// error is already in flight.
		if terr := r.fireTaskTeardown(ctx, t, false, time.Since(started), true); terr != nil {
			r.logger.Error("task teardown failed", "task", t.Name, "error", terr)
		}
		return err
	}

	execErr := r.strategy.Execute(ctx, t, r.ec)
	if execErr != nil && !errors.Is(execErr, context.Canceled) {
		execErr = r.handleFailure(ctx, t, execErr)
	}

	if t.Finally != nil {
		if ferr := r.strategy.InvokeFinally(ctx, t.Finally, r.ec); ferr != nil {
			// Finally failures are best-effort and never mask the outcome.
			r.logger.Verbose("finally hook failed", "task", t.Name, "error", ferr)
		}
	}

	duration := time.Since(started)
	terr := r.fireTaskTeardown(ctx, t, false, duration, execErr != nil)

	if execErr != nil {
		if terr != nil {
			r.logger.Error("task teardown failed", "task", t.Name, "error", terr)
		}
		if !errors.Is(execErr, context.Canceled) {
			span.RecordError(execErr)
		}
		return execErr
	}
	if terr != nil {
		terr = zerr.With(zerr.Wrap(terr, "task teardown hook failed"), "task", t.Name)
		span.RecordError(terr)
		return terr
	}

	if t.IsDelegating() {
		r.report.AddDelegated(t.Name, duration)
	} else {
		r.report.AddExecuted(t.Name, duration)
	}
	r.logger.Verbose("task completed", "task", t.Name, "duration", duration.String())
	return nil
}

// handleFailure runs the error reporter and error handler for a failed
// task. It returns nil when the handler recovers the failure.
func (r *taskRunner) handleFailure(ctx context.Context, t *domain.Task, original error) error {
	r.logger.Error("task failed", "task", t.Name, "error", original)

	if t.ErrorReporter != nil {
		if rerr := r.strategy.ReportErrors(r.ec, t.ErrorReporter, original); rerr != nil {
			// Reporter failures never mask the original failure.
			r.logger.Verbose("error reporter failed", "task", t.Name, "error", rerr)
		}
	}

	if t.ErrorHandler == nil {
		return errors.Join(domain.ErrTaskExecutionFailed, zerr.With(zerr.Wrap(original, "task failed"), "task", t.Name))
	}

	herr := r.strategy.HandleErrors(ctx, r.ec, t.ErrorHandler, original)
	if herr == nil {
		// Recovered: the task counts as executed.
		return nil
	}
	if !errors.Is(herr, original) {
		// Only a genuinely new failure earns its own log line; a handler
		// re-raising the original would otherwise be reported twice.
		r.logger.Error("error handler failed", "task", t.Name, "error", herr)
	}
	return errors.Join(domain.ErrTaskExecutionFailed, zerr.With(zerr.Wrap(herr, "task failed"), "task", t.Name))
}

func (r *taskRunner) skip(ctx context.Context, t *domain.Task) error {
	ctx, span := r.tracer.Start(ctx, t.Name)
	defer span.End()
	span.Skipped()

	r.logger.Verbose("skipping task", "task", t.Name)

	if err := r.fireTaskSetup(ctx, t, true); err != nil {
		err = zerr.With(zerr.Wrap(err, "task setup hook failed"), "task", t.Name)
		span.RecordError(err)
		if terr := r.fireTaskTeardown(ctx, t, true, 0, true); terr != nil {
			r.logger.Error("task teardown failed", "task", t.Name, "error", terr)
		}
		return err
	}

	r.strategy.Skip(t)

	if terr := r.fireTaskTeardown(ctx, t, true, 0, false); terr != nil {
		terr = zerr.With(zerr.Wrap(terr, "task teardown hook failed"), "task", t.Name)
		span.RecordError(terr)
		return terr
	}

	r.report.AddSkipped(t.Name)
	return nil
}

// fireTaskSetup dispatches the task-setup event subscribers in order, then
// the global task-setup slot through the strategy. The first subscriber
// failure aborts the remaining dispatch.
func (r *taskRunner) fireTaskSetup(ctx context.Context, t *domain.Task, skipped bool) error {
	d := domain.TaskSetupDetails{Context: r.ec, Task: t, Skipped: skipped}
	for _, sub := range r.hooks.taskSetupSubs {
		if err := sub(ctx, d); err != nil {
			return err
		}
	}
	return r.strategy.PerformTaskSetup(ctx, r.hooks.taskSetup, d)
}

func (r *taskRunner) fireTaskTeardown(
	ctx context.Context,
	t *domain.Task,
	skipped bool,
	duration time.Duration,
	failed bool,
) error {
	d := domain.TaskTeardownDetails{
		Context:  r.ec,
		Task:     t,
		Skipped:  skipped,
		Duration: duration,
		Failed:   failed,
	}
	for _, sub := range r.hooks.taskTeardownSubs {
		if err := sub(ctx, d); err != nil {
			return err
		}
	}
	return r.strategy.PerformTaskTeardown(ctx, r.hooks.taskTeardown, d)
}
