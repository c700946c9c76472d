package domain

import (
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Graph is the dependency graph for a single run, restricted to the ancestor
// closure of the requested target. It is rebuilt fresh per run and never
// shared across concurrent runs.
type Graph struct {
	target       TaskKey
	tasks        map[TaskKey]*Task
	dependencies map[TaskKey][]TaskKey
	dependents   map[TaskKey][]TaskKey
	order        []TaskKey
}

// BuildGraph resolves the ancestor closure of target from the given task
// list. Dependency names resolve case-insensitively. It fails with
// ErrTargetNotFound, ErrMissingDependency or ErrCycleDetected.
func BuildGraph(all []*Task, target string) (*Graph, error) {
	index := make(map[TaskKey]*Task, len(all))
	for _, t := range all {
		index[t.Key] = t
	}

	root, ok := index[KeyOf(target)]
	if !ok {
		return nil, WithDetail(ErrTargetNotFound, "target", target)
	}

	g := &Graph{
		target:       root.Key,
		tasks:        make(map[TaskKey]*Task),
		dependencies: make(map[TaskKey][]TaskKey),
		dependents:   make(map[TaskKey][]TaskKey),
	}

	// 0: unvisited, 1: on the resolution stack, 2: resolved
	visited := make(map[TaskKey]int)
	var path []string

	var visit func(t *Task) error
	visit = func(t *Task) error {
		visited[t.Key] = 1
		path = append(path, t.Name)

		seen := make(map[TaskKey]bool, len(t.Dependencies))
		deps := make([]TaskKey, 0, len(t.Dependencies))
		for _, depName := range t.Dependencies {
			depKey := KeyOf(depName)
			if seen[depKey] {
				continue
			}
			seen[depKey] = true

			dep, ok := index[depKey]
			if !ok {
				return zerr.With(
					WithDetail(ErrMissingDependency, "dependency", depName),
					"task", t.Name,
				)
			}

			switch visited[depKey] {
			case 1:
				return cycleError(path, dep.Name)
			case 0:
				if err := visit(dep); err != nil {
					return err
				}
			}

			deps = append(deps, depKey)
			g.dependents[depKey] = append(g.dependents[depKey], t.Key)
		}

		g.tasks[t.Key] = t
		g.dependencies[t.Key] = deps
		visited[t.Key] = 2
		path = path[:len(path)-1]
		g.order = append(g.order, t.Key)
		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}

	return g, nil
}

// cycleError constructs an error carrying the offending path as metadata.
func cycleError(path []string, repeated string) error {
	start := 0
	for i, name := range path {
		if KeyOf(name) == KeyOf(repeated) {
			start = i
			break
		}
	}
	var b strings.Builder
	for _, name := range path[start:] {
		b.WriteString(name)
		b.WriteString(" -> ")
	}
	b.WriteString(repeated)
	return WithDetail(ErrCycleDetected, "cycle", b.String())
}

// Target returns the key of the requested target task.
func (g *Graph) Target() TaskKey {
	return g.target
}

// Task returns the task for the given key, if it is part of this run.
func (g *Graph) Task(key TaskKey) (*Task, bool) {
	t, ok := g.tasks[key]
	return t, ok
}

// TaskCount returns the number of tasks in the ancestor closure.
func (g *Graph) TaskCount() int {
	return len(g.tasks)
}

// Dependencies returns the direct dependencies of the given task.
func (g *Graph) Dependencies(key TaskKey) []TaskKey {
	return g.dependencies[key]
}

// Dependents returns the tasks that directly depend on the given task.
func (g *Graph) Dependents(key TaskKey) []TaskKey {
	return g.dependents[key]
}

// InDegrees returns a fresh map of unresolved-dependency counts, consumed
// by the traverser to detect readiness.
func (g *Graph) InDegrees() map[TaskKey]int {
	degrees := make(map[TaskKey]int, len(g.tasks))
	for key, deps := range g.dependencies {
		degrees[key] = len(deps)
	}
	return degrees
}

// Walk returns an iterator over the tasks in topological order,
// dependencies first, target last.
func (g *Graph) Walk() iter.Seq[*Task] {
	return func(yield func(*Task) bool) {
		for _, key := range g.order {
			if !yield(g.tasks[key]) {
				return
			}
		}
	}
}

// Fingerprint returns a stable hash of the run plan: the topological order
// plus every edge. Two runs over the same registry and target produce the
// same fingerprint.
func (g *Graph) Fingerprint() uint64 {
	h := xxhash.New()
	for _, key := range g.order {
		_, _ = h.WriteString(key.String())
		for _, dep := range g.dependencies[key] {
			_, _ = h.WriteString(" <- ")
			_, _ = h.WriteString(dep.String())
		}
		_, _ = h.WriteString("\n")
	}
	return h.Sum64()
}
