// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new user.
type CreateUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

// LoginInput defines the credential exchange payload. The form field is
// named "username" after the standard OAuth2 password form, but it carries
// the user's email.
type LoginInput struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// --- Output DTOs ---

// UserOutput is the public view of a user. The password hash never appears here.
type UserOutput struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	AccessType  string `json:"access_type"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*UserOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, id int64) (*UserOutput, error)
	ListUsers(ctx context.Context) ([]*UserOutput, error)
}
