package config

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/zerr"
)

// hclTaskFile represents the top-level structure of a mason.hcl task file.
type hclTaskFile struct {
	Version string     `hcl:"version,optional"`
	Tasks   []*hclTask `hcl:"task,block"`
}

type hclTask struct {
	Name        string            `hcl:"name,label"`
	Description string            `hcl:"description,optional"`
	DependsOn   []string          `hcl:"depends_on,optional"`
	Cmd         []string          `hcl:"cmd,optional"`
	Env         map[string]string `hcl:"env,optional"`
	WorkingDir  string            `hcl:"working_dir,optional"`
	When        *hclWhen          `hcl:"when,block"`
}

type hclWhen struct {
	EnvSet     []string `hcl:"env_set,optional"`
	FileExists []string `hcl:"file_exists,optional"`
}

func (l *Loader) loadHCL(path string) ([]*domain.Task, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, zerr.Wrap(diags, "failed to parse task file")
	}

	var taskFile hclTaskFile
	diags = gohcl.DecodeBody(file.Body, nil, &taskFile)
	if diags.HasErrors() {
		return nil, zerr.Wrap(diags, "failed to decode task file")
	}

	tasks := make([]*domain.Task, 0, len(taskFile.Tasks))
	for _, block := range taskFile.Tasks {
		spec := taskSpec{
			name:        block.Name,
			description: block.Description,
			dependsOn:   block.DependsOn,
			cmd:         block.Cmd,
			env:         block.Env,
			workingDir:  block.WorkingDir,
		}
		if block.When != nil {
			spec.envSet = block.When.EnvSet
			spec.fileExists = block.When.FileExists
		}

		task, err := l.buildTask(spec)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}
