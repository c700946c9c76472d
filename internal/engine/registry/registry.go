// Package registry holds the task definitions known to the engine. It is
// mutated only during the registration phase; once a run starts it is
// read-only.
package registry

import (
	"sync"

	"go.trai.ch/mason/internal/core/domain"
)

// Registry maps case-insensitive task names to task definitions.
type Registry struct {
	mu    sync.RWMutex
	order []*domain.Task
	byKey map[domain.TaskKey]*domain.Task
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byKey: make(map[domain.TaskKey]*domain.Task),
	}
}

// Register creates a task with the given name and returns a builder handle
// for attaching dependencies, criteria and hooks. It fails with
// ErrDuplicateTask if a case-insensitive match already exists.
func (r *Registry) Register(name string) (*Builder, error) {
	task := domain.NewTask(name)
	if err := r.Add(task); err != nil {
		return nil, err
	}
	return &Builder{task: task}, nil
}

// Add inserts an already-built task definition, enforcing the same
// case-insensitive uniqueness as Register.
func (r *Registry) Add(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[task.Key]; exists {
		return domain.WithDetail(domain.ErrDuplicateTask, "task", task.Name)
	}
	r.byKey[task.Key] = task
	r.order = append(r.order, task)
	return nil
}

// Find looks a task up by name, case-insensitively.
func (r *Registry) Find(name string) (*domain.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byKey[domain.KeyOf(name)]
	return t, ok
}

// Tasks returns the registered tasks in registration order.
func (r *Registry) Tasks() []*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Task, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
