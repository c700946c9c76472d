package strategy

import (
	"context"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Parallel runs the actions of a single task concurrently. Hook and error
// handling semantics are inherited from the serial strategy; only Execute
// differs.
//
// Actions of a task must be independent of each other for this strategy to
// be safe. The scheduler already parallelizes across tasks either way.
type Parallel struct {
	Default
}

// NewParallel creates the concurrent execution strategy.
func NewParallel(logger ports.Logger) *Parallel {
	return &Parallel{Default: Default{logger: logger}}
}

// Execute fans the task's actions out to goroutines and waits for all of
// them. The first failure cancels the remaining actions.
func (s *Parallel) Execute(ctx context.Context, task *domain.Task, ec domain.ExecutionContext) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, action := range task.Actions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return action(gctx, ec)
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.With(err, "task", task.Name)
	}
	return nil
}
