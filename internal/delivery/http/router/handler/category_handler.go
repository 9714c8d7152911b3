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

// CategoryHandler holds dependencies for category-related handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCategories handles the request to list all categories.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	outputs, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// GetCategory handles the request for a single category by ID.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
	}

	output, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// CreateCategory handles category creation.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var input usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateCategory(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Category created successfully")
}

// UpdateCategory handles a partial update of a category.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
	}

	var input usecase.UpdateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	output, err := h.uc.UpdateCategory(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Category updated successfully")
}

// DeleteCategory handles the deletion of a category. Articles that pointed
// at it keep existing with their category cleared.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category ID")
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func categoryID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
