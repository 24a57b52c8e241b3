package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// AssigneeHandler handles assignee requests.
type AssigneeHandler struct {
	assigneeService ports.AssigneeService
	logger          *logger.Logger
}

// NewAssigneeHandler creates a new assignee handler
func NewAssigneeHandler(assigneeService ports.AssigneeService, logger *logger.Logger) *AssigneeHandler {
	return &AssigneeHandler{
		assigneeService: assigneeService,
		logger:          logger,
	}
}

// List handles listing the caller's assignees
func (h *AssigneeHandler) List(c echo.Context) error {
	assignees, err := h.assigneeService.GetAll(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, assignees)
}

// Get handles fetching a single assignee
func (h *AssigneeHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	assignee, err := h.assigneeService.GetByID(c.Request().Context(), id, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, assignee)
}

// Create handles assignee creation
func (h *AssigneeHandler) Create(c echo.Context) error {
	var req ports.CreateAssigneeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	assignee, err := h.assigneeService.Create(c.Request().Context(), req, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, assignee)
}

// Update handles assignee updates
func (h *AssigneeHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdateAssigneeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	assignee, err := h.assigneeService.Update(c.Request().Context(), id, req, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, assignee)
}

// Delete handles assignee deletion
func (h *AssigneeHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.assigneeService.Delete(c.Request().Context(), id, getUserIDFromContext(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
