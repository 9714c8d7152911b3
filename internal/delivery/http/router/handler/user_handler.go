package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"blogapi/internal/delivery/http/response"
	"blogapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateUser handles the user registration request.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The output never carries the password hash.
	return response.Success(c, http.StatusCreated, output, "User created successfully")
}

// ListUsers handles the request to list all users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	outputs, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// GetUser handles the request to get a single user by ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	output, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
