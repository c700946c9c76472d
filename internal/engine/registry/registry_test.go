package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/engine/registry"
	"go.trai.ch/zerr"
)

func TestRegistry_Register(t *testing.T) {
	r := registry.New()

	b, err := r.Register("build")
	require.NoError(t, err)
	require.NotNil(t, b)

	task, ok := r.Find("build")
	require.True(t, ok)
	assert.Equal(t, "build", task.Name)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_DuplicateNameIsCaseInsensitive(t *testing.T) {
	r := registry.New()

	_, err := r.Register("Build")
	require.NoError(t, err)

	_, err = r.Register("build")
	require.ErrorIs(t, err, domain.ErrDuplicateTask)

	var zerrErr *zerr.Error
	require.ErrorAs(t, err, &zerrErr)
	assert.Equal(t, "build", zerrErr.Metadata()["task"])
}

func TestRegistry_FindIsCaseInsensitive(t *testing.T) {
	r := registry.New()

	_, err := r.Register("Deploy-Staging")
	require.NoError(t, err)

	task, ok := r.Find("deploy-staging")
	require.True(t, ok)
	assert.Equal(t, "Deploy-Staging", task.Name)

	_, ok = r.Find("deploy-production")
	assert.False(t, ok)
}

func TestRegistry_TasksPreservesRegistrationOrder(t *testing.T) {
	r := registry.New()

	for _, name := range []string{"restore", "build", "test"} {
		_, err := r.Register(name)
		require.NoError(t, err)
	}

	tasks := r.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "restore", tasks[0].Name)
	assert.Equal(t, "build", tasks[1].Name)
	assert.Equal(t, "test", tasks[2].Name)
}

func TestBuilder_Chaining(t *testing.T) {
	r := registry.New()

	b, err := r.Register("publish")
	require.NoError(t, err)

	var handled bool
	task := b.
		Description("publish artifacts").
		IsDependentOn("build", "test").
		WithCriteria(func(_ domain.ExecutionContext) bool { return true }).
		Does(func(_ context.Context, _ domain.ExecutionContext) error { return nil }).
		OnError(func(_ context.Context, _ domain.ExecutionContext, _ error) error {
			handled = true
			return nil
		}).
		Finally(func(_ context.Context, _ domain.ExecutionContext) error { return nil }).
		Task()

	assert.Equal(t, "publish artifacts", task.Description)
	assert.Equal(t, []string{"build", "test"}, task.Dependencies)
	assert.Len(t, task.Criteria, 1)
	assert.Len(t, task.Actions, 1)
	assert.False(t, task.IsDelegating())
	assert.NotNil(t, task.Finally)

	require.NotNil(t, task.ErrorHandler)
	require.NoError(t, task.ErrorHandler(context.Background(), nil, nil))
	assert.True(t, handled)
}

func TestBuilder_DelegatingTask(t *testing.T) {
	r := registry.New()

	b, err := r.Register("default")
	require.NoError(t, err)
	task := b.IsDependentOn("build").Task()

	assert.True(t, task.IsDelegating())
}
