package domain_test

import (
	"sync"
	"testing"
	"time"

	"go.trai.ch/mason/internal/core/domain"
)

func TestReport_Entries(t *testing.T) {
	r := domain.NewReport()
	r.AddExecuted("build", 2*time.Second)
	r.AddSkipped("publish")
	r.AddDelegated("default", time.Second)

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Status != domain.StatusExecuted || entries[0].Task != "build" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if entries[1].Status != domain.StatusSkipped || entries[1].Duration != 0 {
		t.Errorf("skipped entry must carry zero duration, got %+v", entries[1])
	}
	if entries[2].Status != domain.StatusDelegated {
		t.Errorf("unexpected third entry %+v", entries[2])
	}

	if r.TotalDuration() != 3*time.Second {
		t.Errorf("expected total of 3s, got %v", r.TotalDuration())
	}
}

func TestReport_EntriesReturnsCopy(t *testing.T) {
	r := domain.NewReport()
	r.AddExecuted("build", time.Second)

	entries := r.Entries()
	entries[0].Task = "mutated"

	if r.Entries()[0].Task != "build" {
		t.Error("mutating the returned slice must not affect the report")
	}
}

func TestReport_ConcurrentWriters(t *testing.T) {
	r := domain.NewReport()

	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			r.AddExecuted("task", time.Millisecond)
		})
	}
	wg.Wait()

	if len(r.Entries()) != 100 {
		t.Errorf("expected 100 entries, got %d", len(r.Entries()))
	}
	if r.TotalDuration() != 100*time.Millisecond {
		t.Errorf("unexpected total duration %v", r.TotalDuration())
	}
}
