// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogapi/config"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte            // Symmetric key for signing and verifying tokens.
	method jwt.SigningMethod // Configured HMAC-family signing method.
	ttl    time.Duration     // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method := jwt.GetSigningMethod(cfg.Auth.Algorithm)
	if method == nil {
		return nil, errors.New("unknown jwt signing algorithm: " + cfg.Auth.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("jwt signing algorithm must be from the HMAC family")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		method: method,
		ttl:    time.Duration(cfg.Auth.AccessTokenExpireMinutes) * time.Minute,
	}, nil
}

// Generate creates a signed token for a user with the configured TTL.
func (s *jwtService) Generate(userID int64) (string, error) {
	return s.GenerateWithTTL(userID, s.ttl)
}

// GenerateWithTTL creates a signed token for a user with an explicit TTL.
func (s *jwtService) GenerateWithTTL(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// Validate checks the validity of a token string and returns the decoded claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		// Covers malformed tokens, bad signatures, and expired tokens alike.
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token validation failed")
	}

	if claims.UserID <= 0 {
		return nil, domainerrors.ErrMissingClaim
	}

	return claims, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.ttl
}
