package service

import (
	"testing"
	"time"

	domainservice "blogapi/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock wired to the test's lifecycle.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Generate(userID int64) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) GenerateWithTTL(userID int64, ttl time.Duration) (string, error) {
	args := m.Called(userID, ttl)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*domainservice.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) AccessTokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
