package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	mockrepo "blogapi/internal/mocks/repository"
	mocksvc "blogapi/internal/mocks/service"
	"blogapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newUserService(t *testing.T) (*mockrepo.MockUserRepository, *mocksvc.MockPasswordHasher, *mocksvc.MockTokenService, usecase.UserUsecase) {
	t.Helper()

	userRepo := mockrepo.NewMockUserRepository(t)
	hasher := mocksvc.NewMockPasswordHasher(t)
	tokenService := mocksvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	})

	return userRepo, hasher, tokenService, svc
}

func TestUserService_CreateUser(t *testing.T) {
	t.Run("hashes the password and stores the hash, not the plaintext", func(t *testing.T) {
		userRepo, hasher, _, svc := newUserService(t)

		hasher.On("Hash", "pw123").Return("$2a$10$fakehash", nil)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "alice@example.com" &&
				user.Username == "alice" &&
				user.PasswordHash == "$2a$10$fakehash"
		})).Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = 1
			user.CreatedAt = time.Now()
		}).Return(nil)

		output, err := svc.CreateUser(context.Background(), &usecase.CreateUserInput{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "pw123",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), output.ID)
		assert.Equal(t, "alice@example.com", output.Email)
		assert.True(t, output.IsActive, "is_active should default to true")
	})

	t.Run("respects an explicit is_active flag", func(t *testing.T) {
		userRepo, hasher, _, svc := newUserService(t)

		hasher.On("Hash", "pw123").Return("hash", nil)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return !user.IsActive
		})).Return(nil)

		inactive := false
		output, err := svc.CreateUser(context.Background(), &usecase.CreateUserInput{
			Email:    "bob@example.com",
			Username: "bob",
			Password: "pw123",
			IsActive: &inactive,
		})

		require.NoError(t, err)
		assert.False(t, output.IsActive)
	})

	t.Run("returns the hashing error without touching the repository", func(t *testing.T) {
		_, hasher, _, svc := newUserService(t)

		hasher.On("Hash", "pw123").Return("", assert.AnError)

		output, err := svc.CreateUser(context.Background(), &usecase.CreateUserInput{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "pw123",
		})

		require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
		assert.Nil(t, output)
	})

	t.Run("propagates a duplicate email conflict", func(t *testing.T) {
		userRepo, hasher, _, svc := newUserService(t)

		hasher.On("Hash", "pw123").Return("hash", nil)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

		_, err := svc.CreateUser(context.Background(), &usecase.CreateUserInput{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "pw123",
		})

		require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{
		ID:           42,
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: "$2a$10$fakehash",
		IsActive:     true,
	}

	t.Run("returns a bearer token on valid credentials", func(t *testing.T) {
		userRepo, hasher, tokenService, svc := newUserService(t)

		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)
		hasher.On("Check", "pw123", user.PasswordHash).Return(true)
		tokenService.On("Generate", int64(42)).Return("signed-token", nil)

		output, err := svc.Login(context.Background(), &usecase.LoginInput{
			Username: "alice@example.com",
			Password: "pw123",
		})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", output.AccessToken)
		assert.Equal(t, "bearer", output.AccessType)
	})

	t.Run("unknown email and wrong password produce the same error", func(t *testing.T) {
		userRepo, hasher, _, svc := newUserService(t)

		userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)
		hasher.On("Check", "wrong", user.PasswordHash).Return(false)

		_, unknownEmailErr := svc.Login(context.Background(), &usecase.LoginInput{
			Username: "nobody@example.com",
			Password: "pw123",
		})
		_, wrongPasswordErr := svc.Login(context.Background(), &usecase.LoginInput{
			Username: "alice@example.com",
			Password: "wrong",
		})

		require.ErrorIs(t, unknownEmailErr, domainerrors.ErrInvalidCredentials)
		require.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error(),
			"the two failure modes must be indistinguishable")
	})

	t.Run("propagates a token issuance failure", func(t *testing.T) {
		userRepo, hasher, tokenService, svc := newUserService(t)

		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)
		hasher.On("Check", "pw123", user.PasswordHash).Return(true)
		tokenService.On("Generate", int64(42)).Return("", assert.AnError)

		_, err := svc.Login(context.Background(), &usecase.LoginInput{
			Username: "alice@example.com",
			Password: "pw123",
		})

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("returns the user without the password hash", func(t *testing.T) {
		userRepo, _, _, svc := newUserService(t)

		userRepo.On("FindByID", mock.Anything, int64(7)).Return(&entity.User{
			ID:           7,
			Email:        "carol@example.com",
			Username:     "carol",
			PasswordHash: "secret-hash",
			IsActive:     true,
		}, nil)

		output, err := svc.GetUser(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, "carol@example.com", output.Email)
	})

	t.Run("maps a missing user to a not found error", func(t *testing.T) {
		userRepo, _, _, svc := newUserService(t)

		userRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, repository.ErrUserNotFound)

		_, err := svc.GetUser(context.Background(), 99)

		require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	userRepo, _, _, svc := newUserService(t)

	userRepo.On("List", mock.Anything).Return([]*entity.User{
		{ID: 1, Email: "a@example.com", Username: "a"},
		{ID: 2, Email: "b@example.com", Username: "b"},
	}, nil)

	outputs, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, int64(1), outputs[0].ID)
	assert.Equal(t, int64(2), outputs[1].ID)
}
