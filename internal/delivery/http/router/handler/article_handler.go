package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"blogapi/internal/delivery/http/middleware"
	"blogapi/internal/delivery/http/response"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArticleHandler holds dependencies for article-related handlers.
type ArticleHandler struct {
	uc     usecase.ArticleUsecase
	logger *slog.Logger
}

// NewArticleHandler is the constructor for ArticleHandler, injected by Fx.
func NewArticleHandler(uc usecase.ArticleUsecase, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListArticles handles the paginated article listing.
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	input := &usecase.ListArticlesInput{
		Search: c.QueryParam("search"),
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit parameter")
		}
		input.Limit = limit
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid page parameter")
		}
		input.Page = page
	}

	outputs, err := h.uc.ListArticles(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// GetLatestArticle handles the request for the most recent article.
func (h *ArticleHandler) GetLatestArticle(c echo.Context) error {
	output, err := h.uc.GetLatestArticle(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetArticle handles the request for a single article by ID.
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid article ID")
	}

	output, err := h.uc.GetArticle(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// CreateArticle handles article creation. The author is always the
// authenticated caller.
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.CreateArticleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateArticle(c.Request().Context(), callerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Article created successfully")
}

// UpdateArticle handles a partial update of an article owned by the caller.
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	id, err := articleID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid article ID")
	}

	var input usecase.UpdateArticleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}

	output, err := h.uc.UpdateArticle(c.Request().Context(), callerID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Article updated successfully")
}

// DeleteArticle handles the deletion of an article owned by the caller.
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	id, err := articleID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid article ID")
	}

	if err := h.uc.DeleteArticle(c.Request().Context(), callerID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func articleID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
