// Package middleware contains Echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	"blogapi/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// userIDContextKey is the echo context key carrying the authenticated user's ID.
const userIDContextKey = "userID"

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the caller. The
// resolved user ID is stored on the context for handlers. All failure modes
// answer 401 through the error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return err
		}

		// The token may outlive its user; confirm the account still exists.
		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUnauthorized.WrapMessage("token subject no longer exists")
			}

			return errors.Wrap(err, "failed to resolve token subject")
		}

		c.Set(userIDContextKey, user.ID)

		return next(c)
	}
}

// CurrentUserID returns the authenticated user's ID set by Authenticate.
func CurrentUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(userIDContextKey).(int64)

	return userID, ok
}
