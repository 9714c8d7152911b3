package repository

import (
	"context"
	"testing"

	"blogapi/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockArticleRepository is a testify mock for repository.ArticleRepository.
type MockArticleRepository struct {
	mock.Mock
}

// NewMockArticleRepository creates a mock wired to the test's lifecycle.
func NewMockArticleRepository(t *testing.T) *MockArticleRepository {
	m := &MockArticleRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockArticleRepository) List(ctx context.Context, limit, offset int, search string) ([]*entity.Article, error) {
	args := m.Called(ctx, limit, offset, search)
	if articles, ok := args.Get(0).([]*entity.Article); ok {
		return articles, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id int64) (*entity.Article, error) {
	args := m.Called(ctx, id)
	if article, ok := args.Get(0).(*entity.Article); ok {
		return article, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockArticleRepository) FindLatest(ctx context.Context) (*entity.Article, error) {
	args := m.Called(ctx)
	if article, ok := args.Get(0).(*entity.Article); ok {
		return article, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockArticleRepository) Create(ctx context.Context, article *entity.Article) error {
	args := m.Called(ctx, article)

	return args.Error(0)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *entity.Article) error {
	args := m.Called(ctx, article)

	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
