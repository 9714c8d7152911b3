// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "blogapi/internal/delivery/context"
	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	"blogapi/internal/domain/service"
	"blogapi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser hashes the password and persists a new user.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Creating user", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	user := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		IsActive:     isActive,
	}

	// The repository maps a unique-email violation to ErrUserAlreadyExists.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.WithStack(err)
	}

	return toUserOutput(user), nil
}

// Login exchanges credentials for a signed bearer token. Unknown email and
// wrong password are reported with one shared error so the response does not
// reveal which one was wrong.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		AccessType:  "bearer",
	}, nil
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id int64) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserOutput(user), nil
}

// ListUsers retrieves all users.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, toUserOutput(user))
	}

	return outputs, nil
}

// toUserOutput maps a user entity to its public view, dropping the password hash.
func toUserOutput(user *entity.User) *usecase.UserOutput {
	return &usecase.UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
