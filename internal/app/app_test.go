package app_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/logger"
	"go.trai.ch/mason/internal/adapters/strategy"
	"go.trai.ch/mason/internal/adapters/telemetry"
	"go.trai.ch/mason/internal/app"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports/mocks"
	"go.trai.ch/mason/internal/engine/registry"
	"go.trai.ch/mason/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, tasks []*domain.Task, loadErr error) *app.App {
	t.Helper()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("mason.yaml").Return(tasks, loadErr).AnyTimes()

	log := logger.New()
	log.SetOutput(io.Discard)

	engine := scheduler.New(registry.New(), log, telemetry.NewNoOpTracer())
	return app.New(loader, engine, strategy.NewDefault(log), log)
}

func noopTask(name string, ran *[]string, mu *sync.Mutex, deps ...string) *domain.Task {
	task := domain.NewTask(name)
	task.Dependencies = deps
	task.Actions = []domain.Action{
		func(_ context.Context, _ domain.ExecutionContext) error {
			mu.Lock()
			defer mu.Unlock()
			*ran = append(*ran, name)
			return nil
		},
	}
	return task
}

func TestApp_Run(t *testing.T) {
	var (
		mu  sync.Mutex
		ran []string
	)
	tasks := []*domain.Task{
		noopTask("restore", &ran, &mu),
		noopTask("build", &ran, &mu, "restore"),
	}

	a := newTestApp(t, tasks, nil)

	report, err := a.Run(context.Background(), "build", app.RunOptions{ConfigPath: "mason.yaml"})

	require.NoError(t, err)
	assert.Equal(t, []string{"restore", "build"}, ran)
	require.NotNil(t, report)
	assert.Len(t, report.Entries(), 2)
}

func TestApp_Run_LoaderError(t *testing.T) {
	a := newTestApp(t, nil, errors.New("config load error"))

	_, err := a.Run(context.Background(), "build", app.RunOptions{ConfigPath: "mason.yaml"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load task file")
}

func TestApp_Run_TargetNotFound(t *testing.T) {
	var (
		mu  sync.Mutex
		ran []string
	)
	a := newTestApp(t, []*domain.Task{noopTask("build", &ran, &mu)}, nil)

	_, err := a.Run(context.Background(), "deploy", app.RunOptions{ConfigPath: "mason.yaml"})

	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestApp_Plan(t *testing.T) {
	var (
		mu  sync.Mutex
		ran []string
	)
	tasks := []*domain.Task{
		noopTask("restore", &ran, &mu),
		noopTask("build", &ran, &mu, "restore"),
		noopTask("deploy", &ran, &mu, "build"),
	}

	a := newTestApp(t, tasks, nil)

	graph, err := a.Plan("build", app.RunOptions{ConfigPath: "mason.yaml"})

	require.NoError(t, err)
	assert.Equal(t, 2, graph.TaskCount())
	assert.Empty(t, ran)
}

func TestApp_Plan_NoTarget(t *testing.T) {
	a := newTestApp(t, nil, nil)

	_, err := a.Plan("", app.RunOptions{ConfigPath: "mason.yaml"})

	require.ErrorIs(t, err, domain.ErrNoTargetSpecified)
}
