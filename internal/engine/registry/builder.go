package registry

import "go.trai.ch/mason/internal/core/domain"

// Builder is the fluent handle returned by Register. All methods mutate the
// underlying task definition and return the builder for chaining; the task
// must not be changed once a run graph has been built from the registry.
type Builder struct {
	task *domain.Task
}

// Description sets a human-readable description for the task.
func (b *Builder) Description(s string) *Builder {
	b.task.Description = s
	return b
}

// IsDependentOn declares dependencies by name, resolved case-insensitively
// when the run graph is built.
func (b *Builder) IsDependentOn(names ...string) *Builder {
	b.task.Dependencies = append(b.task.Dependencies, names...)
	return b
}

// WithCriteria appends a run criterion. Criteria are evaluated in the order
// they were attached; the first rejection skips the task.
func (b *Builder) WithCriteria(c domain.Criterion) *Builder {
	b.task.Criteria = append(b.task.Criteria, c)
	return b
}

// Does appends a work action. A task with no actions is delegating.
func (b *Builder) Does(a domain.Action) *Builder {
	b.task.Actions = append(b.task.Actions, a)
	return b
}

// OnError sets the error handler. Returning nil from the handler recovers
// the task; the last handler set wins.
func (b *Builder) OnError(h domain.ErrorHandler) *Builder {
	b.task.ErrorHandler = h
	return b
}

// ReportErrors sets the error reporter. The reporter is invoked best-effort
// before any error handler runs.
func (b *Builder) ReportErrors(r domain.ErrorReporter) *Builder {
	b.task.ErrorReporter = r
	return b
}

// Finally sets the finally callback, which runs whether the task's work
// succeeded or failed.
func (b *Builder) Finally(f domain.FinallyHandler) *Builder {
	b.task.Finally = f
	return b
}

// Task returns the underlying task definition.
func (b *Builder) Task() *domain.Task {
	return b.task
}
