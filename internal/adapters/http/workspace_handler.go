package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// WorkspaceHandler handles workspace requests. Domain errors pass through to
// the central error handler for status mapping.
type WorkspaceHandler struct {
	workspaceService ports.WorkspaceService
	logger           *logger.Logger
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaceService ports.WorkspaceService, logger *logger.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
		logger:           logger,
	}
}

// List handles listing the caller's workspaces
func (h *WorkspaceHandler) List(c echo.Context) error {
	userID := getUserIDFromContext(c)

	workspaces, err := h.workspaceService.GetAll(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, workspaces)
}

// Get handles fetching a single workspace
func (h *WorkspaceHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	workspace, err := h.workspaceService.GetByID(c.Request().Context(), id, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, workspace)
}

// Create handles workspace creation
func (h *WorkspaceHandler) Create(c echo.Context) error {
	var req ports.CreateWorkspaceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	workspace, err := h.workspaceService.Create(c.Request().Context(), req, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, workspace)
}

// Update handles workspace updates
func (h *WorkspaceHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdateWorkspaceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	workspace, err := h.workspaceService.Update(c.Request().Context(), id, req, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, workspace)
}

// Delete handles workspace deletion
func (h *WorkspaceHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.workspaceService.Delete(c.Request().Context(), id, getUserIDFromContext(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
