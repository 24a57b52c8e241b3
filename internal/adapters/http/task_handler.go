package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// TaskHandler handles task requests, including the assignee and tag
// association endpoints.
type TaskHandler struct {
	taskService ports.ProjectTaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.ProjectTaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// List handles listing a workspace's tasks
func (h *TaskHandler) List(c echo.Context) error {
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return err
	}

	tasks, err := h.taskService.GetAllByWorkspace(c.Request().Context(), workspaceID, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

// Get handles fetching a single task
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	task, err := h.taskService.GetByID(c.Request().Context(), id, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// Create handles task creation within a workspace column
func (h *TaskHandler) Create(c echo.Context) error {
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return err
	}
	columnID, err := parseUUIDParam(c, "columnId")
	if err != nil {
		return err
	}

	var req ports.CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), workspaceID, columnID, req, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

// Update handles task updates, including column moves
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.Update(c.Request().Context(), id, req, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// Delete handles task deletion
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), id, getUserIDFromContext(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// AddAssignee handles attaching an assignee to a task
func (h *TaskHandler) AddAssignee(c echo.Context) error {
	taskID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	assigneeID, err := parseUUIDParam(c, "assigneeId")
	if err != nil {
		return err
	}

	task, err := h.taskService.AddAssignee(c.Request().Context(), taskID, assigneeID, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// RemoveAssignee handles detaching an assignee from a task
func (h *TaskHandler) RemoveAssignee(c echo.Context) error {
	taskID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	assigneeID, err := parseUUIDParam(c, "assigneeId")
	if err != nil {
		return err
	}

	task, err := h.taskService.RemoveAssignee(c.Request().Context(), taskID, assigneeID, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// AddTag handles attaching a tag to a task
func (h *TaskHandler) AddTag(c echo.Context) error {
	taskID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	tagID, err := parseUUIDParam(c, "tagId")
	if err != nil {
		return err
	}

	task, err := h.taskService.AddTag(c.Request().Context(), taskID, tagID, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// RemoveTag handles detaching a tag from a task
func (h *TaskHandler) RemoveTag(c echo.Context) error {
	taskID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	tagID, err := parseUUIDParam(c, "tagId")
	if err != nil {
		return err
	}

	task, err := h.taskService.RemoveTag(c.Request().Context(), taskID, tagID, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}
