package scheduler

import (
	"context"
	"errors"

	"go.trai.ch/mason/internal/core/domain"
)

// visitor is invoked exactly once per reachable task, never before all of
// the task's dependencies have completed their own visitor call.
type visitor func(ctx context.Context, task *domain.Task) error

type visitResult struct {
	task domain.TaskKey
	err  error
}

// traversal walks one run graph. Every node whose dependencies are
// satisfied runs concurrently; there is no concurrency cap beyond
// dependency readiness.
type traversal struct {
	graph     *domain.Graph
	inDegree  map[domain.TaskKey]int
	ready     []domain.TaskKey
	active    int
	resultsCh chan visitResult
	errs      error
	ctx       context.Context
	cancel    context.CancelFunc
	visit     visitor
}

func newTraversal(
	ctx context.Context,
	cancel context.CancelFunc,
	graph *domain.Graph,
	visit visitor,
) *traversal {
	inDegree := graph.InDegrees()

	var ready []domain.TaskKey
	for key, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, key)
		}
	}

	return &traversal{
		graph:     graph,
		inDegree:  inDegree,
		ready:     ready,
		resultsCh: make(chan visitResult, graph.TaskCount()),
		ctx:       ctx,
		cancel:    cancel,
		visit:     visit,
	}
}

// run drives the traversal to completion. It returns after every launched
// visitor has finished; a cancelled run stops launching new nodes but lets
// in-flight visitors drain.
func (t *traversal) run() error {
	for !t.isDone() {
		t.schedule()

		if t.isDone() {
			break
		}

		if t.ctx.Err() != nil {
			t.drain()
			break
		}

		select {
		case res := <-t.resultsCh:
			t.handleResult(res)
		case <-t.ctx.Done():
		}
	}

	return t.errs
}

func (t *traversal) isDone() bool {
	return t.active == 0 && (len(t.ready) == 0 || t.ctx.Err() != nil)
}

// schedule launches a visitor for every ready node.
func (t *traversal) schedule() {
	for len(t.ready) > 0 && t.ctx.Err() == nil {
		key := t.ready[0]
		t.ready = t.ready[1:]

		task, ok := t.graph.Task(key)
		if !ok {
			continue
		}

		t.active++
		go func(task *domain.Task) {
			t.resultsCh <- visitResult{task: task.Key, err: t.visit(t.ctx, task)}
		}(task)
	}
}

// drain waits for every in-flight visitor after cancellation.
func (t *traversal) drain() {
	for t.active > 0 {
		t.handleResult(<-t.resultsCh)
	}
}

func (t *traversal) handleResult(res visitResult) {
	t.active--

	if res.err != nil {
		// A failed visitor cancels the run: nothing not yet started begins.
		t.cancel()
		// A cancellation-triggered unwind is not a failure of its own.
		if !errors.Is(res.err, context.Canceled) {
			t.errs = errors.Join(t.errs, res.err)
		}
		return
	}

	for _, dep := range t.graph.Dependents(res.task) {
		t.inDegree[dep]--
		if t.inDegree[dep] == 0 {
			t.ready = append(t.ready, dep)
		}
	}
}
