package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/internal/delivery/http/response"
	domainerrors "blogapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/articles/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Run("renders an application error with its status and code", func(t *testing.T) {
		rec, body := handleError(t, domainerrors.ErrArticleNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, body.Success)
		assert.Equal(t, "Article not found", body.Message)
		require.NotNil(t, body.Error)
		assert.Equal(t, "ARTICLE_NOT_FOUND", body.Error.Code)
	})

	t.Run("unwraps an application error carried inside a wrapped chain", func(t *testing.T) {
		rec, body := handleError(t, domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	})

	t.Run("invalid credentials answer 404 with one shared message", func(t *testing.T) {
		rec, body := handleError(t, domainerrors.ErrInvalidCredentials)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Invalid credentials", body.Message)
	})

	t.Run("renders an echo HTTPError", func(t *testing.T) {
		rec, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	})

	t.Run("renders an unknown error as 500 with the raw message in details", func(t *testing.T) {
		rec, body := handleError(t, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", body.Message)
		require.NotNil(t, body.Error)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Equal(t, assert.AnError.Error(), body.Error.Details)
	})

	t.Run("does nothing when the response is already committed", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, c.NoContent(http.StatusNoContent))

		m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
		m.HandleHTTPError(domainerrors.ErrArticleNotFound, c)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})
}
