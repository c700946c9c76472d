package config

import (
	"os"
	"slices"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Masonfile represents the structure of the mason.yaml task file.
type Masonfile struct {
	Version string             `yaml:"version"`
	Tasks   map[string]TaskDTO `yaml:"tasks"`
}

// TaskDTO represents a task definition in the configuration.
type TaskDTO struct {
	Description string            `yaml:"description"`
	DependsOn   []string          `yaml:"dependsOn"`
	Cmd         []string          `yaml:"cmd"`
	Env         map[string]string `yaml:"env"`
	WorkingDir  string            `yaml:"workingDir"`
	When        *WhenDTO          `yaml:"when"`
}

// WhenDTO represents the optional run criteria of a task.
type WhenDTO struct {
	EnvSet     []string `yaml:"envSet"`
	FileExists []string `yaml:"fileExists"`
}

func (l *Loader) loadYAML(path string) ([]*domain.Task, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read task file")
	}

	var masonfile Masonfile
	if err := yaml.Unmarshal(data, &masonfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse task file")
	}

	// Map iteration order is random; sort for a stable registration order.
	names := make([]string, 0, len(masonfile.Tasks))
	for name := range masonfile.Tasks {
		names = append(names, name)
	}
	slices.Sort(names)

	tasks := make([]*domain.Task, 0, len(names))
	for _, name := range names {
		dto := masonfile.Tasks[name]
		spec := taskSpec{
			name:        name,
			description: dto.Description,
			dependsOn:   dto.DependsOn,
			cmd:         dto.Cmd,
			env:         dto.Env,
			workingDir:  dto.WorkingDir,
		}
		if dto.When != nil {
			spec.envSet = dto.When.EnvSet
			spec.fileExists = dto.When.FileExists
		}

		task, err := l.buildTask(spec)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}
