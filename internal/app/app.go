// Package app implements the application layer for mason.
package app

import (
	"context"

	"go.trai.ch/mason/internal/adapters/host"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/mason/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App ties the config loader, the task engine and the execution strategy
// together behind the CLI.
type App struct {
	loader   ports.ConfigLoader
	engine   *scheduler.Engine
	strategy ports.Strategy
	logger   ports.Logger

	loadedPath string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, engine *scheduler.Engine, strategy ports.Strategy, logger ports.Logger) *App {
	return &App{
		loader:   loader,
		engine:   engine,
		strategy: strategy,
		logger:   logger,
	}
}

// RunOptions carries the per-invocation CLI inputs.
type RunOptions struct {
	// ConfigPath is the task file to load.
	ConfigPath string
	// Arguments are extra key=value pairs exposed to tasks.
	Arguments []string
}

// Run loads the task file and executes the target and its ancestor closure.
// The report is returned even when the run fails.
func (a *App) Run(ctx context.Context, target string, opts RunOptions) (*domain.Report, error) {
	if err := a.load(opts.ConfigPath); err != nil {
		return nil, err
	}

	ec := host.New(a.logger, opts.Arguments)
	return a.engine.RunTarget(ctx, ec, a.strategy, target)
}

// Plan loads the task file and resolves the execution graph for target
// without running anything.
func (a *App) Plan(target string, opts RunOptions) (*domain.Graph, error) {
	if err := a.load(opts.ConfigPath); err != nil {
		return nil, err
	}

	if target == "" {
		return nil, domain.ErrNoTargetSpecified
	}
	return domain.BuildGraph(a.engine.Registry().Tasks(), target)
}

// Engine exposes the task engine so embedders can register tasks and
// lifecycle hooks in code instead of a task file.
func (a *App) Engine() *scheduler.Engine {
	return a.engine
}

func (a *App) load(path string) error {
	// Loading is idempotent per task file.
	if a.loadedPath == path {
		return nil
	}

	tasks, err := a.loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load task file")
	}

	for _, task := range tasks {
		if err := a.engine.Registry().Add(task); err != nil {
			return err
		}
	}

	a.loadedPath = path
	return nil
}
