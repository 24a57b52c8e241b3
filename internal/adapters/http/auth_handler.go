package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// AuthHandler handles registration, login and token refresh.
type AuthHandler struct {
	authService ports.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService ports.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	response, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrUserAlreadyExists) {
			return echo.NewHTTPError(http.StatusConflict, "An account with this email already exists")
		}
		h.logger.Errorw("Registration failed", "error", err)
		return err
	}

	return c.JSON(http.StatusCreated, response)
}

// Login handles user login
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	response, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(http.StatusOK, response)
}

// Refresh handles refresh token rotation
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req ports.RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	response, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid refresh token")
	}

	return c.JSON(http.StatusOK, response)
}
