package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectboard/core/internal/ports"
)

func TestOnboardingSeedsFullSampleSet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	repos := ports.Repositories{
		Workspaces: env.workspaces,
		Columns:    env.columns,
		Tasks:      env.tasks,
		Tags:       env.tags,
		Assignees:  env.assignees,
	}
	service := NewOnboardingService(&memTransactor{repos: repos}, newTestLogger(t))

	require.NoError(t, service.CreateInitialData(ctx, "user-1"))

	assignees, err := env.assignees.GetAllByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, assignees, 6)

	tags, err := env.tags.GetAllByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, tags, 8)

	workspaces, err := env.workspaces.GetAllByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, workspaces, 3)

	var totalColumns, totalTasks int
	for _, ws := range workspaces {
		columns, err := env.columns.GetAllByWorkspace(ctx, ws.ID)
		require.NoError(t, err)
		totalColumns += len(columns)

		tasks, err := env.tasks.GetAllByWorkspaceID(ctx, ws.ID)
		require.NoError(t, err)
		totalTasks += len(tasks)

		for _, task := range tasks {
			assert.NotEmpty(t, task.Assignees, "every sample task carries assignees")
			assert.NotEmpty(t, task.Tags, "every sample task carries tags")
		}
	}
	assert.Equal(t, 12, totalColumns)
	assert.Equal(t, 30, totalTasks)

	// Workspaces keep their seed order.
	assert.Equal(t, "E-commerce Platform", workspaces[0].Title)
	assert.Equal(t, "Task Management App", workspaces[1].Title)
	assert.Equal(t, "Personal Finance Tracker", workspaces[2].Title)
}

func TestOnboardingSeedIsScopedToTheNewUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	repos := ports.Repositories{
		Workspaces: env.workspaces,
		Columns:    env.columns,
		Tasks:      env.tasks,
		Tags:       env.tags,
		Assignees:  env.assignees,
	}
	service := NewOnboardingService(&memTransactor{repos: repos}, newTestLogger(t))

	require.NoError(t, service.CreateInitialData(ctx, "user-1"))

	other, err := env.workspaces.GetAllByUserID(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

type failingTransactor struct {
	err error
}

func (t *failingTransactor) WithinTransaction(context.Context, func(context.Context, ports.Repositories) error) error {
	return t.err
}

func TestOnboardingPropagatesTransactionFailure(t *testing.T) {
	boom := errors.New("connection lost")
	service := NewOnboardingService(&failingTransactor{err: boom}, newTestLogger(t))

	err := service.CreateInitialData(context.Background(), "user-1")
	require.ErrorIs(t, err, boom)
}
