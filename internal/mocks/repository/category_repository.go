package repository

import (
	"context"
	"testing"

	"blogapi/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a testify mock for repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a mock wired to the test's lifecycle.
func NewMockCategoryRepository(t *testing.T) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]*entity.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if category, ok := args.Get(0).(*entity.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)

	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
