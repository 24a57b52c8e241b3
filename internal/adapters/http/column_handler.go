package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// ColumnHandler handles column requests nested under a workspace.
type ColumnHandler struct {
	columnService ports.ColumnService
	logger        *logger.Logger
}

// NewColumnHandler creates a new column handler
func NewColumnHandler(columnService ports.ColumnService, logger *logger.Logger) *ColumnHandler {
	return &ColumnHandler{
		columnService: columnService,
		logger:        logger,
	}
}

// List handles listing a workspace's columns
func (h *ColumnHandler) List(c echo.Context) error {
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return err
	}

	columns, err := h.columnService.GetAll(c.Request().Context(), workspaceID, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, columns)
}

// Get handles fetching a single column
func (h *ColumnHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	column, err := h.columnService.GetByID(c.Request().Context(), id, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, column)
}

// Create handles column creation within a workspace
func (h *ColumnHandler) Create(c echo.Context) error {
	workspaceID, err := parseUUIDParam(c, "workspaceId")
	if err != nil {
		return err
	}

	var req ports.CreateColumnRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	column, err := h.columnService.Create(c.Request().Context(), workspaceID, req, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, column)
}

// Update handles column updates
func (h *ColumnHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdateColumnRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	column, err := h.columnService.Update(c.Request().Context(), id, req, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, column)
}

// Delete handles column deletion
func (h *ColumnHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.columnService.Delete(c.Request().Context(), id, getUserIDFromContext(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
