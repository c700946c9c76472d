// Package config loads task definitions from mason configuration files.
// YAML is the primary format; HCL task files are supported alongside it.
package config

import (
	"context"
	"path/filepath"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ConfigLoader. Command entries in a task file are
// turned into actions backed by the command runner; when clauses become run
// criteria.
type Loader struct {
	runner ports.CommandRunner
}

// NewLoader creates a configuration loader.
func NewLoader(runner ports.CommandRunner) *Loader {
	return &Loader{runner: runner}
}

// Load reads the task file at path. The format is chosen by extension:
// .hcl parses as HCL, everything else as YAML.
func (l *Loader) Load(path string) ([]*domain.Task, error) {
	if filepath.Ext(path) == ".hcl" {
		return l.loadHCL(path)
	}
	return l.loadYAML(path)
}

// taskSpec is the format-independent shape of a task definition.
type taskSpec struct {
	name        string
	description string
	dependsOn   []string
	cmd         []string
	env         map[string]string
	workingDir  string
	envSet      []string
	fileExists  []string
}

func (l *Loader) buildTask(spec taskSpec) (*domain.Task, error) {
	if spec.name == "" {
		return nil, zerr.New("task name must not be empty")
	}

	task := domain.NewTask(spec.name)
	task.Description = spec.description
	task.Dependencies = spec.dependsOn

	for _, name := range spec.envSet {
		task.Criteria = append(task.Criteria, func(ec domain.ExecutionContext) bool {
			_, ok := ec.Environment().Lookup(name)
			return ok
		})
	}
	for _, path := range spec.fileExists {
		task.Criteria = append(task.Criteria, func(ec domain.ExecutionContext) bool {
			return ec.Filesystem().Exists(path)
		})
	}

	if len(spec.cmd) > 0 {
		argv, env, dir := spec.cmd, spec.env, spec.workingDir
		task.Actions = append(task.Actions, func(ctx context.Context, _ domain.ExecutionContext) error {
			return l.runner.Run(ctx, argv, env, dir)
		})
	}

	return task, nil
}
