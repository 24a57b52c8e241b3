package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkspace(t *testing.T) {
	t.Run("valid workspace", func(t *testing.T) {
		description := "Team board"
		color := "#3B82F6"

		ws, err := NewWorkspace("Platform", &description, &color, "user-1", 0)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, ws.ID)
		assert.Equal(t, "Platform", ws.Title)
		assert.Equal(t, 0, ws.Position)
		assert.Equal(t, "user-1", ws.UserID)
		assert.False(t, ws.CreatedAt.IsZero())
		assert.Nil(t, ws.UpdatedAt, "a fresh workspace has no update timestamp")
	})

	t.Run("whitespace title rejected", func(t *testing.T) {
		_, err := NewWorkspace("   ", nil, nil, "user-1", 0)
		require.Error(t, err)
		assert.Equal(t, "Workspace title cannot be empty", err.Error())
	})

	t.Run("missing user rejected", func(t *testing.T) {
		_, err := NewWorkspace("Platform", nil, nil, "", 0)
		require.Error(t, err)
		assert.Equal(t, "User ID is required for workspace creation", err.Error())
	})
}

func TestWorkspaceUpdate(t *testing.T) {
	ws, err := NewWorkspace("Platform", nil, nil, "user-1", 0)
	require.NoError(t, err)

	require.NoError(t, ws.Update("Renamed", nil, nil, 3))
	assert.Equal(t, "Renamed", ws.Title)
	assert.Equal(t, 3, ws.Position)
	require.NotNil(t, ws.UpdatedAt, "mutation stamps the update timestamp")

	err = ws.Update("", nil, nil, 0)
	require.Error(t, err)
	assert.Equal(t, "Workspace title cannot be empty", err.Error())
}

func TestNewColumn(t *testing.T) {
	workspaceID := uuid.New()

	t.Run("valid column", func(t *testing.T) {
		col, err := NewColumn("To Do", nil, workspaceID, 0)
		require.NoError(t, err)
		assert.Equal(t, workspaceID, col.WorkspaceID)
		assert.Nil(t, col.UpdatedAt)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := NewColumn("", nil, workspaceID, 0)
		require.Error(t, err)
		assert.Equal(t, "Column title cannot be empty", err.Error())
	})

	t.Run("nil workspace rejected", func(t *testing.T) {
		_, err := NewColumn("To Do", nil, uuid.Nil, 0)
		require.Error(t, err)
		assert.Equal(t, "Valid workspace ID is required", err.Error())
	})
}

func TestTaskPriority(t *testing.T) {
	assert.True(t, PriorityLow.IsValid())
	assert.True(t, PriorityMedium.IsValid())
	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, TaskPriority(0).IsValid())
	assert.False(t, TaskPriority(4).IsValid())

	assert.Equal(t, "low", PriorityLow.String())
	assert.Equal(t, "high", PriorityHigh.String())
}

func TestNewProjectTask(t *testing.T) {
	workspaceID := uuid.New()
	columnID := uuid.New()

	t.Run("valid task", func(t *testing.T) {
		task, err := NewProjectTask(workspaceID, columnID, "Ship it", PriorityHigh, 2, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, task.Position)
		assert.Nil(t, task.UpdatedAt, "creation never stamps the update timestamp")
	})

	t.Run("invalid priority rejected", func(t *testing.T) {
		_, err := NewProjectTask(workspaceID, columnID, "Ship it", TaskPriority(99), 0, nil, nil)
		require.Error(t, err)
		assert.Equal(t, "Invalid priority value", err.Error())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := NewProjectTask(workspaceID, columnID, " ", PriorityLow, 0, nil, nil)
		require.Error(t, err)
		assert.Equal(t, "Task title cannot be empty", err.Error())
	})

	t.Run("nil column rejected", func(t *testing.T) {
		_, err := NewProjectTask(workspaceID, uuid.Nil, "Ship it", PriorityLow, 0, nil, nil)
		require.Error(t, err)
		assert.Equal(t, "Valid column ID is required", err.Error())
	})
}

func TestProjectTaskUpdateDetails(t *testing.T) {
	task, err := NewProjectTask(uuid.New(), uuid.New(), "Ship it", PriorityMedium, 0, nil, nil)
	require.NoError(t, err)

	due := time.Now().UTC().AddDate(0, 0, 7)
	require.NoError(t, task.UpdateDetails("Ship it properly", nil, &due, PriorityHigh))
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.NotNil(t, task.UpdatedAt)

	err = task.UpdateDetails("Ship it", nil, nil, TaskPriority(0))
	require.Error(t, err)
	assert.Equal(t, "Invalid priority value", err.Error())
}

func TestProjectTaskMoveToColumn(t *testing.T) {
	task, err := NewProjectTask(uuid.New(), uuid.New(), "Ship it", PriorityMedium, 4, nil, nil)
	require.NoError(t, err)

	target := uuid.New()
	require.NoError(t, task.MoveToColumn(target, 0))
	assert.Equal(t, target, task.ColumnID)
	assert.Equal(t, 0, task.Position)
	assert.NotNil(t, task.UpdatedAt)

	err = task.MoveToColumn(uuid.Nil, 0)
	require.Error(t, err)
	assert.Equal(t, "Valid column ID is required for task movement", err.Error())
}

func TestNewTag(t *testing.T) {
	t.Run("valid tag", func(t *testing.T) {
		tag, err := NewTag("Backend", "#22C55E", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", tag.Owner())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewTag("", "#22C55E", "user-1")
		require.Error(t, err)
		assert.Equal(t, "Tag name cannot be empty", err.Error())
	})

	t.Run("empty color rejected", func(t *testing.T) {
		_, err := NewTag("Backend", "", "user-1")
		require.Error(t, err)
		assert.Equal(t, "Tag color cannot be empty", err.Error())
	})
}

func TestNewAssignee(t *testing.T) {
	t.Run("valid assignee", func(t *testing.T) {
		assignee, err := NewAssignee("Maya Chen", nil, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", assignee.Owner())
		assert.Nil(t, assignee.UpdatedAt)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewAssignee("  ", nil, "user-1")
		require.Error(t, err)
		assert.Equal(t, "Assignee name cannot be empty", err.Error())
	})

	t.Run("missing user rejected", func(t *testing.T) {
		_, err := NewAssignee("Maya Chen", nil, "")
		require.Error(t, err)
		assert.Equal(t, "User ID is required for assignee creation", err.Error())
	})
}

func TestDomainErrorMessages(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	notFound := NewNotFoundError("Workspace", id)
	assert.Equal(t, "Workspace with ID '11111111-2222-3333-4444-555555555555' was not found", notFound.Error())

	forbidden := NewForbiddenError("tag", id)
	assert.Equal(t, "User does not have access to tag: 11111111-2222-3333-4444-555555555555", forbidden.Error())
}
