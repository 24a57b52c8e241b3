package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// TagHandler handles tag requests.
type TagHandler struct {
	tagService ports.TagService
	logger     *logger.Logger
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService ports.TagService, logger *logger.Logger) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		logger:     logger,
	}
}

// List handles listing the caller's tags
func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.tagService.GetAll(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tags)
}

// Get handles fetching a single tag
func (h *TagHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	tag, err := h.tagService.GetByID(c.Request().Context(), id, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tag)
}

// Create handles tag creation
func (h *TagHandler) Create(c echo.Context) error {
	var req ports.CreateTagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tag, err := h.tagService.Create(c.Request().Context(), req, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tag)
}

// Update handles tag updates
func (h *TagHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdateTagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tag, err := h.tagService.Update(c.Request().Context(), id, req, getUserIDFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tag)
}

// Delete handles tag deletion
func (h *TagHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.tagService.Delete(c.Request().Context(), id, getUserIDFromContext(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
