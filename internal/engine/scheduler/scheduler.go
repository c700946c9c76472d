// Package scheduler implements the task execution engine: graph
// construction, parallel traversal and the per-task lifecycle.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/mason/internal/engine/registry"
)

// Engine coordinates a run: global setup, parallel traversal of the
// target's ancestor closure, and global teardown. Hook slots and event
// subscribers are attached during the registration phase; the engine is
// read-only while a run is in progress.
type Engine struct {
	registry *registry.Registry
	logger   ports.Logger
	tracer   ports.Tracer

	mu               sync.Mutex
	setup            domain.SetupHook
	teardown         domain.TeardownHook
	taskSetup        domain.TaskSetupHook
	taskTeardown     domain.TaskTeardownHook
	setupSubs        []domain.SetupHook
	teardownSubs     []domain.TeardownHook
	taskSetupSubs    []domain.TaskSetupHook
	taskTeardownSubs []domain.TaskTeardownHook
}

// New creates an Engine over the given registry.
func New(reg *registry.Registry, logger ports.Logger, tracer ports.Tracer) *Engine {
	return &Engine{
		registry: reg,
		logger:   logger,
		tracer:   tracer,
	}
}

// Registry returns the engine's task registry.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// RegisterSetupAction sets the global setup callback. The last registration
// wins.
func (e *Engine) RegisterSetupAction(h domain.SetupHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setup = h
}

// RegisterTeardownAction sets the global teardown callback. The last
// registration wins.
func (e *Engine) RegisterTeardownAction(h domain.TeardownHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.teardown = h
}

// RegisterTaskSetupAction sets the per-task setup callback. The last
// registration wins.
func (e *Engine) RegisterTaskSetupAction(h domain.TaskSetupHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.taskSetup = h
}

// RegisterTaskTeardownAction sets the per-task teardown callback. The last
// registration wins.
func (e *Engine) RegisterTaskTeardownAction(h domain.TaskTeardownHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.taskTeardown = h
}

// OnSetup subscribes to the setup event. Subscribers run in subscription
// order before the global setup callback; the first failure aborts the
// remaining dispatch.
func (e *Engine) OnSetup(h domain.SetupHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setupSubs = append(e.setupSubs, h)
}

// OnTeardown subscribes to the teardown event.
func (e *Engine) OnTeardown(h domain.TeardownHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.teardownSubs = append(e.teardownSubs, h)
}

// OnTaskSetup subscribes to the task-setup event.
func (e *Engine) OnTaskSetup(h domain.TaskSetupHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.taskSetupSubs = append(e.taskSetupSubs, h)
}

// OnTaskTeardown subscribes to the task-teardown event.
func (e *Engine) OnTaskTeardown(h domain.TaskTeardownHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.taskTeardownSubs = append(e.taskTeardownSubs, h)
}

// RunTarget builds the ancestor graph of target and executes it through
// the given strategy. The report accumulated so far is returned even when
// the run fails.
func (e *Engine) RunTarget(
	ctx context.Context,
	ec domain.ExecutionContext,
	strategy ports.Strategy,
	target string,
) (*domain.Report, error) {
	report := domain.NewReport()

	if target == "" {
		return report, domain.ErrNoTargetSpecified
	}
	if _, ok := e.registry.Find(target); !ok {
		return report, domain.WithDetail(domain.ErrTargetNotFound, "target", target)
	}

	graph, err := domain.BuildGraph(e.registry.Tasks(), target)
	if err != nil {
		return report, err
	}

	planned := make([]string, 0, graph.TaskCount())
	tasks := make([]*domain.Task, 0, graph.TaskCount())
	for t := range graph.Walk() {
		planned = append(planned, t.Name)
		tasks = append(tasks, t)
	}
	e.tracer.EmitPlan(ctx, planned)
	e.logger.Verbose("run plan resolved",
		"target", target,
		"tasks", graph.TaskCount(),
		"fingerprint", fmt.Sprintf("%016x", graph.Fingerprint()),
	)

	targetTask, _ := graph.Task(graph.Target())
	started := time.Now()

	runErr := e.runLifecycle(ctx, ec, strategy, graph, domain.SetupDetails{
		Context: ec,
		Target:  targetTask,
		Tasks:   tasks,
	}, report)

	// External cancellation surfaces verbatim when no task failure did.
	if runErr == nil && ctx.Err() != nil {
		runErr = ctx.Err()
	}

	e.logSummary(report, time.Since(started), runErr)
	return report, runErr
}

// runLifecycle performs setup, traversal and teardown. Teardown always
// fires, even when setup or the traversal failed.
func (e *Engine) runLifecycle(
	ctx context.Context,
	ec domain.ExecutionContext,
	strategy ports.Strategy,
	graph *domain.Graph,
	setup domain.SetupDetails,
	report *domain.Report,
) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	runErr := e.fireSetup(runCtx, strategy, setup)

	if runErr == nil {
		runner := &taskRunner{
			strategy: strategy,
			logger:   e.logger,
			tracer:   e.tracer,
			ec:       ec,
			report:   report,
			target:   graph.Target(),
			hooks: hookSet{
				taskSetup:        e.taskSetup,
				taskTeardown:     e.taskTeardown,
				taskSetupSubs:    e.taskSetupSubs,
				taskTeardownSubs: e.taskTeardownSubs,
			},
		}
		runErr = newTraversal(runCtx, cancel, graph, runner.run).run()
	}

	// Teardown runs on the caller's context so it still fires after a
	// cancelled traversal.
	terr := e.fireTeardown(ctx, strategy, domain.TeardownDetails{
		Context:    ec,
		Report:     report,
		Successful: runErr == nil,
		Err:        runErr,
	})
	if terr != nil {
		if runErr != nil {
			// An error is already in flight; the teardown failure is
			// logged, not reported.
			e.logger.Error("teardown failed", "error", terr)
		} else {
			runErr = errors.Join(domain.ErrHookFailed, terr)
		}
	}

	return runErr
}

func (e *Engine) fireSetup(ctx context.Context, strategy ports.Strategy, d domain.SetupDetails) error {
	for _, sub := range e.setupSubs {
		if err := sub(ctx, d); err != nil {
			return errors.Join(domain.ErrHookFailed, err)
		}
	}
	if err := strategy.PerformSetup(ctx, e.setup, d); err != nil {
		return errors.Join(domain.ErrHookFailed, err)
	}
	return nil
}

func (e *Engine) fireTeardown(ctx context.Context, strategy ports.Strategy, d domain.TeardownDetails) error {
	for _, sub := range e.teardownSubs {
		if err := sub(ctx, d); err != nil {
			return err
		}
	}
	return strategy.PerformTeardown(ctx, e.teardown, d)
}

func (e *Engine) logSummary(report *domain.Report, elapsed time.Duration, runErr error) {
	for _, entry := range report.Entries() {
		e.logger.Info("task finished",
			"task", entry.Task,
			"status", string(entry.Status),
			"duration", entry.Duration.String(),
		)
	}
	if runErr != nil {
		e.logger.Info("run failed", "elapsed", elapsed.String())
		return
	}
	e.logger.Info("run succeeded", "elapsed", elapsed.String())
}
