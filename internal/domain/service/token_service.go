package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims embedded in issued bearer tokens.
// The payload is intentionally small: the user identity plus the registered
// expiry/issued-at claims.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed,
// time-limited bearer tokens. Tokens are stateless and self-verifying; they
// cannot be revoked before expiry.
type TokenService interface {
	// Generate creates a signed token for the given user with the
	// configured time-to-live.
	Generate(userID int64) (string, error)

	// GenerateWithTTL creates a signed token with an explicit time-to-live.
	GenerateWithTTL(userID int64, ttl time.Duration) (string, error)

	// Validate verifies the token's signature and expiry and returns the
	// decoded claims. Malformed, tampered, or expired tokens fail with
	// ErrInvalidToken; a verified token without an identity claim fails
	// with ErrMissingClaim.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of issued tokens.
	AccessTokenTTL() time.Duration
}
