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

func TestTagServiceCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.tagService.Create(ctx, ports.CreateTagRequest{Name: "Backend", Color: "#22C55E"}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Backend", created.Name)
	assert.Nil(t, created.UpdatedAt)

	updated, err := env.tagService.Update(ctx, created.ID, ports.UpdateTagRequest{Name: "API", Color: "#F97316"}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "API", updated.Name)
	assert.Equal(t, "#F97316", updated.Color)
	assert.NotNil(t, updated.UpdatedAt)

	require.NoError(t, env.tagService.Delete(ctx, created.ID, "user-1"))

	_, err = env.tagService.GetByID(ctx, created.ID, "user-1")
	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestTagServiceOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.tagService.Create(ctx, ports.CreateTagRequest{Name: "Backend", Color: "#22C55E"}, "user-1")
	require.NoError(t, err)

	t.Run("missing tag is not found", func(t *testing.T) {
		_, err := env.tagService.GetByID(ctx, uuid.New(), "user-1")
		var notFound *entities.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("another user's tag is forbidden", func(t *testing.T) {
		_, err := env.tagService.GetByID(ctx, created.ID, "user-2")
		var forbidden *entities.ForbiddenError
		require.ErrorAs(t, err, &forbidden)
	})

	t.Run("update and delete are forbidden for non-owners", func(t *testing.T) {
		_, err := env.tagService.Update(ctx, created.ID, ports.UpdateTagRequest{Name: "X", Color: "#000000"}, "user-2")
		var forbidden *entities.ForbiddenError
		require.ErrorAs(t, err, &forbidden)

		err = env.tagService.Delete(ctx, created.ID, "user-2")
		require.ErrorAs(t, err, &forbidden)
	})
}

func TestTagServiceGetAllScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.tagService.Create(ctx, ports.CreateTagRequest{Name: "Backend", Color: "#22C55E"}, "user-1")
	require.NoError(t, err)
	_, err = env.tagService.Create(ctx, ports.CreateTagRequest{Name: "Frontend", Color: "#3B82F6"}, "user-1")
	require.NoError(t, err)
	_, err = env.tagService.Create(ctx, ports.CreateTagRequest{Name: "Theirs", Color: "#000000"}, "user-2")
	require.NoError(t, err)

	tags, err := env.tagService.GetAll(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, tags, 2)
}

func TestAssigneeServiceCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	avatar := "/avatars/maya.jpg"
	created, err := env.assigneeService.Create(ctx, ports.CreateAssigneeRequest{Name: "Maya Chen", AvatarURL: &avatar}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Maya Chen", created.Name)
	require.NotNil(t, created.AvatarURL)
	assert.Equal(t, avatar, *created.AvatarURL)

	updated, err := env.assigneeService.Update(ctx, created.ID, ports.UpdateAssigneeRequest{Name: "Maya C."}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Maya C.", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)

	require.NoError(t, env.assigneeService.Delete(ctx, created.ID, "user-1"))

	_, err = env.assigneeService.GetByID(ctx, created.ID, "user-1")
	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAssigneeServiceOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.assigneeService.Create(ctx, ports.CreateAssigneeRequest{Name: "Maya Chen"}, "user-1")
	require.NoError(t, err)

	_, err = env.assigneeService.GetByID(ctx, created.ID, "user-2")
	var forbidden *entities.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Contains(t, err.Error(), "assignee")

	_, err = env.assigneeService.GetByID(ctx, uuid.New(), "user-2")
	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
