package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	domainservice "blogapi/internal/domain/service"
	mockrepo "blogapi/internal/mocks/repository"
	mocksvc "blogapi/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *mocksvc.MockTokenService, *mockrepo.MockUserRepository, *AuthMiddleware) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	tokenService := mocksvc.NewMockTokenService(t)
	userRepo := mockrepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenService, userRepo)

	return c, tokenService, userRepo, m
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("accepts a valid token and exposes the caller's ID", func(t *testing.T) {
		c, tokenService, userRepo, m := newAuthTestContext(t, "Bearer good-token")

		tokenService.On("Validate", "good-token").Return(&domainservice.Claims{UserID: 42}, nil)
		userRepo.On("FindByID", mock.Anything, int64(42)).Return(&entity.User{ID: 42, Email: "alice@example.com"}, nil)

		nextCalled := false
		err := m.Authenticate(func(c echo.Context) error {
			nextCalled = true
			userID, ok := CurrentUserID(c)
			assert.True(t, ok)
			assert.Equal(t, int64(42), userID)

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, nextCalled)
	})

	t.Run("rejects a request without an authorization header", func(t *testing.T) {
		c, _, _, m := newAuthTestContext(t, "")

		err := m.Authenticate(failIfCalled(t))(c)

		require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("rejects a non-bearer authorization header", func(t *testing.T) {
		c, _, _, m := newAuthTestContext(t, "Basic dXNlcjpwdw==")

		err := m.Authenticate(failIfCalled(t))(c)

		require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("rejects an invalid or expired token", func(t *testing.T) {
		c, tokenService, _, m := newAuthTestContext(t, "Bearer bad-token")

		tokenService.On("Validate", "bad-token").Return(nil, domainerrors.ErrInvalidToken)

		err := m.Authenticate(failIfCalled(t))(c)

		require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("rejects a token whose user no longer exists", func(t *testing.T) {
		c, tokenService, userRepo, m := newAuthTestContext(t, "Bearer orphan-token")

		tokenService.On("Validate", "orphan-token").Return(&domainservice.Claims{UserID: 99}, nil)
		userRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, repository.ErrUserNotFound)

		err := m.Authenticate(failIfCalled(t))(c)

		require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

// failIfCalled is a next handler that must never run.
func failIfCalled(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatal("next handler should not have been called")

		return nil
	}
}
