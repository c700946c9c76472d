package domain_test

import (
	"errors"
	"slices"
	"testing"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/zerr"
)

func task(name string, deps ...string) *domain.Task {
	t := domain.NewTask(name)
	t.Dependencies = deps
	return t
}

func order(g *domain.Graph) []string {
	var names []string
	for t := range g.Walk() {
		names = append(names, t.Name)
	}
	return names
}

func TestBuildGraph_AncestorClosureOnly(t *testing.T) {
	all := []*domain.Task{
		task("restore"),
		task("build", "restore"),
		task("deploy", "build"),
		task("unrelated"),
	}

	g, err := domain.BuildGraph(all, "build")
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}

	if g.TaskCount() != 2 {
		t.Errorf("expected 2 tasks in closure, got %d", g.TaskCount())
	}
	if _, ok := g.Task(domain.KeyOf("deploy")); ok {
		t.Error("dependent of target must not be part of the run")
	}
	if _, ok := g.Task(domain.KeyOf("unrelated")); ok {
		t.Error("unreachable task must not be part of the run")
	}
}

func TestBuildGraph_TopologicalOrder(t *testing.T) {
	// Diamond: build depends on compile and test, both depend on restore.
	all := []*domain.Task{
		task("build", "compile", "test"),
		task("compile", "restore"),
		task("test", "restore"),
		task("restore"),
	}

	g, err := domain.BuildGraph(all, "build")
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}

	names := order(g)
	if names[0] != "restore" {
		t.Errorf("expected restore first, got %v", names)
	}
	if names[len(names)-1] != "build" {
		t.Errorf("expected build last, got %v", names)
	}

	pos := make(map[string]int)
	for i, name := range names {
		pos[name] = i
	}
	for _, edge := range [][2]string{{"restore", "compile"}, {"restore", "test"}, {"compile", "build"}, {"test", "build"}} {
		if pos[edge[0]] > pos[edge[1]] {
			t.Errorf("%s must come before %s in %v", edge[0], edge[1], names)
		}
	}
}

func TestBuildGraph_CaseInsensitiveResolution(t *testing.T) {
	all := []*domain.Task{
		task("Restore"),
		task("Build", "restore"),
	}

	g, err := domain.BuildGraph(all, "BUILD")
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	if g.TaskCount() != 2 {
		t.Errorf("expected 2 tasks, got %d", g.TaskCount())
	}
	if g.Target() != domain.KeyOf("build") {
		t.Errorf("unexpected target key %q", g.Target())
	}
}

func TestBuildGraph_DuplicateDependenciesCollapse(t *testing.T) {
	all := []*domain.Task{
		task("restore"),
		task("build", "restore", "Restore", "RESTORE"),
	}

	g, err := domain.BuildGraph(all, "build")
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}

	deps := g.Dependencies(domain.KeyOf("build"))
	if len(deps) != 1 {
		t.Errorf("expected duplicate dependency edges to collapse, got %d", len(deps))
	}
	if got := g.InDegrees()[domain.KeyOf("build")]; got != 1 {
		t.Errorf("expected in-degree 1, got %d", got)
	}
}

func TestBuildGraph_TargetNotFound(t *testing.T) {
	_, err := domain.BuildGraph([]*domain.Task{task("build")}, "deploy")
	if !errors.Is(err, domain.ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound, got %v", err)
	}

	var zerrErr *zerr.Error
	if !errors.As(err, &zerrErr) {
		t.Fatal("expected a zerr.Error")
	}
	if zerrErr.Metadata()["target"] != "deploy" {
		t.Errorf("expected target metadata, got %v", zerrErr.Metadata())
	}
}

func TestBuildGraph_MissingDependency(t *testing.T) {
	_, err := domain.BuildGraph([]*domain.Task{task("build", "restore")}, "build")
	if !errors.Is(err, domain.ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}

	var zerrErr *zerr.Error
	if !errors.As(err, &zerrErr) {
		t.Fatal("expected a zerr.Error")
	}
	if zerrErr.Metadata()["dependency"] != "restore" {
		t.Errorf("expected dependency metadata, got %v", zerrErr.Metadata())
	}
}

func TestBuildGraph_CycleDetected(t *testing.T) {
	all := []*domain.Task{
		task("a", "b"),
		task("b", "c"),
		task("c", "a"),
	}

	_, err := domain.BuildGraph(all, "a")
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}

	var zerrErr *zerr.Error
	if !errors.As(err, &zerrErr) {
		t.Fatal("expected a zerr.Error")
	}
	cycle, _ := zerrErr.Metadata()["cycle"].(string)
	if cycle != "a -> b -> c -> a" {
		t.Errorf("unexpected cycle path %q", cycle)
	}
}

func TestBuildGraph_SelfCycle(t *testing.T) {
	_, err := domain.BuildGraph([]*domain.Task{task("a", "a")}, "a")
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}
}

func TestBuildGraph_CycleOutsideClosureIsIgnored(t *testing.T) {
	all := []*domain.Task{
		task("build"),
		task("x", "y"),
		task("y", "x"),
	}

	if _, err := domain.BuildGraph(all, "build"); err != nil {
		t.Fatalf("cycle outside the ancestor closure must not fail the run: %v", err)
	}
}

func TestGraph_Fingerprint(t *testing.T) {
	all := []*domain.Task{
		task("restore"),
		task("build", "restore"),
	}

	g1, err := domain.BuildGraph(all, "build")
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	g2, err := domain.BuildGraph(all, "build")
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	if g1.Fingerprint() != g2.Fingerprint() {
		t.Error("identical plans must produce identical fingerprints")
	}

	g3, err := domain.BuildGraph(all, "restore")
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	if g1.Fingerprint() == g3.Fingerprint() {
		t.Error("different plans must produce different fingerprints")
	}
}

func TestGraph_WalkStopsEarly(t *testing.T) {
	all := []*domain.Task{
		task("restore"),
		task("build", "restore"),
	}

	g, err := domain.BuildGraph(all, "build")
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}

	var first []string
	for task := range g.Walk() {
		first = append(first, task.Name)
		break
	}
	if !slices.Equal(first, []string{"restore"}) {
		t.Errorf("expected iteration to stop after restore, got %v", first)
	}
}
