package domain

import (
	"sync"
	"time"
)

// ReportStatus classifies a task's outcome in the run report.
type ReportStatus string

const (
	// StatusExecuted indicates the task's work ran to completion.
	StatusExecuted ReportStatus = "executed"
	// StatusSkipped indicates the task was skipped by its run criteria.
	StatusSkipped ReportStatus = "skipped"
	// StatusDelegated indicates a task with no work of its own completed
	// by virtue of its dependencies.
	StatusDelegated ReportStatus = "delegated"
)

// ReportEntry is one immutable per-task outcome.
type ReportEntry struct {
	Task     string
	Status   ReportStatus
	Duration time.Duration
}

// Report accumulates per-task outcomes in completion order. It is safe for
// concurrent writers; one writer per completing task.
type Report struct {
	mu      sync.Mutex
	entries []ReportEntry
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// AddExecuted appends an executed entry with the elapsed duration.
func (r *Report) AddExecuted(task string, d time.Duration) {
	r.add(ReportEntry{Task: task, Status: StatusExecuted, Duration: d})
}

// AddDelegated appends a delegated entry with the elapsed duration.
func (r *Report) AddDelegated(task string, d time.Duration) {
	r.add(ReportEntry{Task: task, Status: StatusDelegated, Duration: d})
}

// AddSkipped appends a skipped entry with zero duration.
func (r *Report) AddSkipped(task string) {
	r.add(ReportEntry{Task: task, Status: StatusSkipped})
}

func (r *Report) add(e ReportEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Entries returns a copy of the accumulated entries in completion order.
func (r *Report) Entries() []ReportEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ReportEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// TotalDuration sums the durations of all entries.
func (r *Report) TotalDuration() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total time.Duration
	for _, e := range r.entries {
		total += e.Duration
	}
	return total
}
