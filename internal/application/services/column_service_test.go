package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/ports"
)

func (env *testEnv) createWorkspace(t *testing.T, userID, title string) uuid.UUID {
	t.Helper()
	ws, err := env.workspaceService.Create(context.Background(), ports.CreateWorkspaceRequest{Title: title}, userID)
	require.NoError(t, err)
	return ws.ID
}

func TestColumnServiceCreateAppendsPositions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")

	first, err := env.columnService.Create(ctx, workspaceID, ports.CreateColumnRequest{Title: "To Do"}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)

	second, err := env.columnService.Create(ctx, workspaceID, ports.CreateColumnRequest{Title: "Done"}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)
	assert.Equal(t, workspaceID, second.WorkspaceID)
}

func TestColumnServiceCreateMissingWorkspaceBeatsOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// An absent workspace reports NotFound even though the caller could never
	// own it; existence is checked first.
	_, err := env.columnService.Create(ctx, uuid.New(), ports.CreateColumnRequest{Title: "To Do"}, "user-1")
	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "Workspace")
}

func TestColumnServiceCreateOnForeignWorkspaceForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")

	_, err := env.columnService.Create(ctx, workspaceID, ports.CreateColumnRequest{Title: "To Do"}, "user-2")
	var forbidden *entities.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
}

func TestColumnServiceGetAllOrderedByPosition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")

	for _, title := range []string{"To Do", "In Progress", "Done"} {
		_, err := env.columnService.Create(ctx, workspaceID, ports.CreateColumnRequest{Title: title}, "user-1")
		require.NoError(t, err)
	}

	columns, err := env.columnService.GetAll(ctx, workspaceID, "user-1")
	require.NoError(t, err)
	require.Len(t, columns, 3)
	assert.Equal(t, "To Do", columns[0].Title)
	assert.Equal(t, "In Progress", columns[1].Title)
	assert.Equal(t, "Done", columns[2].Title)

	_, err = env.columnService.GetAll(ctx, workspaceID, "user-2")
	var forbidden *entities.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
}

func TestColumnServiceGetByIDAuthorization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")

	created, err := env.columnService.Create(ctx, workspaceID, ports.CreateColumnRequest{Title: "To Do"}, "user-1")
	require.NoError(t, err)

	_, err = env.columnService.GetByID(ctx, uuid.New(), "user-1")
	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)

	// Ownership resolves through the workspace; the error names the column.
	_, err = env.columnService.GetByID(ctx, created.ID, "user-2")
	var forbidden *entities.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Contains(t, err.Error(), "column")
}

func TestColumnServiceUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")

	created, err := env.columnService.Create(ctx, workspaceID, ports.CreateColumnRequest{Title: "To Do"}, "user-1")
	require.NoError(t, err)

	updated, err := env.columnService.Update(ctx, created.ID, ports.UpdateColumnRequest{Title: "Doing", Position: 2}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Doing", updated.Title)
	assert.Equal(t, 2, updated.Position)

	require.NoError(t, env.columnService.Delete(ctx, created.ID, "user-1"))

	_, err = env.columnService.GetByID(ctx, created.ID, "user-1")
	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
