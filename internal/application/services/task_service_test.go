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

func (env *testEnv) createColumn(t *testing.T, userID string, workspaceID uuid.UUID, title string) uuid.UUID {
	t.Helper()
	col, err := env.columnService.Create(context.Background(), workspaceID, ports.CreateColumnRequest{Title: title}, userID)
	require.NoError(t, err)
	return col.ID
}

func (env *testEnv) createTask(t *testing.T, userID string, workspaceID, columnID uuid.UUID, title string) *ports.TaskResponse {
	t.Helper()
	task, err := env.taskService.Create(context.Background(), workspaceID, columnID, ports.CreateTaskRequest{
		Title:    title,
		Priority: entities.PriorityMedium,
	}, userID)
	require.NoError(t, err)
	return task
}

func TestTaskServiceCreateAppendsPerColumn(t *testing.T) {
	env := newTestEnv(t)
	workspaceID := env.createWorkspace(t, "user-1", "Board")
	todoID := env.createColumn(t, "user-1", workspaceID, "To Do")
	doneID := env.createColumn(t, "user-1", workspaceID, "Done")

	first := env.createTask(t, "user-1", workspaceID, todoID, "First")
	second := env.createTask(t, "user-1", workspaceID, todoID, "Second")
	elsewhere := env.createTask(t, "user-1", workspaceID, doneID, "Elsewhere")

	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
	// Positions are per column, not per workspace.
	assert.Equal(t, 0, elsewhere.Position)
	assert.Nil(t, first.UpdatedAt)
	assert.Empty(t, first.Assignees)
	assert.Empty(t, first.Tags)
}

func TestTaskServiceCreateChecksHierarchy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")
	columnID := env.createColumn(t, "user-1", workspaceID, "To Do")

	otherWorkspaceID := env.createWorkspace(t, "user-1", "Other board")

	req := ports.CreateTaskRequest{Title: "Task", Priority: entities.PriorityLow}

	t.Run("missing workspace is not found before ownership", func(t *testing.T) {
		_, err := env.taskService.Create(ctx, uuid.New(), columnID, req, "user-1")
		var notFound *entities.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Contains(t, err.Error(), "Workspace")
	})

	t.Run("foreign workspace is forbidden", func(t *testing.T) {
		_, err := env.taskService.Create(ctx, workspaceID, columnID, req, "user-2")
		var forbidden *entities.ForbiddenError
		require.ErrorAs(t, err, &forbidden)
	})

	t.Run("column outside the workspace is not found", func(t *testing.T) {
		_, err := env.taskService.Create(ctx, otherWorkspaceID, columnID, req, "user-1")
		var notFound *entities.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Contains(t, err.Error(), "Column")
	})

	t.Run("invalid priority is rejected", func(t *testing.T) {
		_, err := env.taskService.Create(ctx, workspaceID, columnID, ports.CreateTaskRequest{
			Title:    "Task",
			Priority: entities.TaskPriority(42),
		}, "user-1")
		require.Error(t, err)
		assert.Equal(t, "Invalid priority value", err.Error())
	})
}

func TestTaskServiceUpdateMovesBetweenColumns(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")
	todoID := env.createColumn(t, "user-1", workspaceID, "To Do")
	doneID := env.createColumn(t, "user-1", workspaceID, "Done")

	task := env.createTask(t, "user-1", workspaceID, todoID, "Task")

	moved, err := env.taskService.Update(ctx, task.ID, ports.UpdateTaskRequest{
		Title:    "Task",
		Priority: entities.PriorityHigh,
		Position: 0,
		ColumnID: &doneID,
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, doneID, moved.ColumnID)
	assert.Equal(t, entities.PriorityHigh, moved.Priority)
	assert.NotNil(t, moved.UpdatedAt)
}

func TestTaskServiceUpdateRejectsCrossWorkspaceMove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")
	columnID := env.createColumn(t, "user-1", workspaceID, "To Do")

	otherWorkspaceID := env.createWorkspace(t, "user-1", "Other board")
	foreignColumnID := env.createColumn(t, "user-1", otherWorkspaceID, "Elsewhere")

	task := env.createTask(t, "user-1", workspaceID, columnID, "Task")

	_, err := env.taskService.Update(ctx, task.ID, ports.UpdateTaskRequest{
		Title:    "Task",
		Priority: entities.PriorityMedium,
		ColumnID: &foreignColumnID,
	}, "user-1")
	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "Column")
}

func TestTaskServiceUpdateRepositionsWithinColumn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")
	columnID := env.createColumn(t, "user-1", workspaceID, "To Do")

	task := env.createTask(t, "user-1", workspaceID, columnID, "Task")

	updated, err := env.taskService.Update(ctx, task.ID, ports.UpdateTaskRequest{
		Title:    "Task",
		Priority: entities.PriorityMedium,
		Position: 5,
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, columnID, updated.ColumnID)
	assert.Equal(t, 5, updated.Position)
}

func TestTaskServiceAssigneeAssociations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")
	columnID := env.createColumn(t, "user-1", workspaceID, "To Do")
	task := env.createTask(t, "user-1", workspaceID, columnID, "Task")

	assignee, err := env.assigneeService.Create(ctx, ports.CreateAssigneeRequest{Name: "Maya Chen"}, "user-1")
	require.NoError(t, err)

	withAssignee, err := env.taskService.AddAssignee(ctx, task.ID, assignee.ID, "user-1")
	require.NoError(t, err)
	require.Len(t, withAssignee.Assignees, 1)
	assert.Equal(t, "Maya Chen", withAssignee.Assignees[0].Name)

	// Attaching twice is harmless.
	again, err := env.taskService.AddAssignee(ctx, task.ID, assignee.ID, "user-1")
	require.NoError(t, err)
	assert.Len(t, again.Assignees, 1)

	removed, err := env.taskService.RemoveAssignee(ctx, task.ID, assignee.ID, "user-1")
	require.NoError(t, err)
	assert.Empty(t, removed.Assignees)
}

func TestTaskServiceTagAssociationDoubleAuthorization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")
	columnID := env.createColumn(t, "user-1", workspaceID, "To Do")
	task := env.createTask(t, "user-1", workspaceID, columnID, "Task")

	foreignTag, err := env.tagService.Create(ctx, ports.CreateTagRequest{Name: "Backend", Color: "#22C55E"}, "user-2")
	require.NoError(t, err)

	// The caller owns the task but not the tag; the error names the tag.
	_, err = env.taskService.AddTag(ctx, task.ID, foreignTag.ID, "user-1")
	var forbidden *entities.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Contains(t, err.Error(), "tag")

	_, err = env.taskService.AddTag(ctx, task.ID, uuid.New(), "user-1")
	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)

	ownTag, err := env.tagService.Create(ctx, ports.CreateTagRequest{Name: "Frontend", Color: "#3B82F6"}, "user-1")
	require.NoError(t, err)

	withTag, err := env.taskService.AddTag(ctx, task.ID, ownTag.ID, "user-1")
	require.NoError(t, err)
	require.Len(t, withTag.Tags, 1)
	assert.Equal(t, "Frontend", withTag.Tags[0].Name)

	removed, err := env.taskService.RemoveTag(ctx, task.ID, ownTag.ID, "user-1")
	require.NoError(t, err)
	assert.Empty(t, removed.Tags)
}

func TestTaskServiceGetAllByWorkspace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")
	columnID := env.createColumn(t, "user-1", workspaceID, "To Do")

	env.createTask(t, "user-1", workspaceID, columnID, "First")
	env.createTask(t, "user-1", workspaceID, columnID, "Second")

	tasks, err := env.taskService.GetAllByWorkspace(ctx, workspaceID, "user-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "First", tasks[0].Title)
	assert.Equal(t, "Second", tasks[1].Title)

	_, err = env.taskService.GetAllByWorkspace(ctx, workspaceID, "user-2")
	var forbidden *entities.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
}

func TestTaskServiceDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	workspaceID := env.createWorkspace(t, "user-1", "Board")
	columnID := env.createColumn(t, "user-1", workspaceID, "To Do")
	task := env.createTask(t, "user-1", workspaceID, columnID, "Doomed")

	err := env.taskService.Delete(ctx, task.ID, "user-2")
	var forbidden *entities.ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	require.NoError(t, env.taskService.Delete(ctx, task.ID, "user-1"))

	_, err = env.taskService.GetByID(ctx, task.ID, "user-1")
	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
