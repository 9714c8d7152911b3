package impl

import (
	"context"
	"testing"

	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	mockrepo "blogapi/internal/mocks/repository"
	"blogapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryService(t *testing.T) (*mockrepo.MockCategoryRepository, usecase.CategoryUsecase) {
	t.Helper()

	categoryRepo := mockrepo.NewMockCategoryRepository(t)
	svc := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		Logger:       discardLogger(),
	})

	return categoryRepo, svc
}

func TestCategoryService_ListCategories(t *testing.T) {
	categoryRepo, svc := newCategoryService(t)

	categoryRepo.On("List", mock.Anything).Return([]*entity.Category{
		{ID: 1, Name: "go"},
		{ID: 2, Name: "databases"},
	}, nil)

	outputs, err := svc.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "go", outputs[0].Name)
}

func TestCategoryService_GetCategory(t *testing.T) {
	t.Run("returns the category", func(t *testing.T) {
		categoryRepo, svc := newCategoryService(t)

		categoryRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.Category{ID: 1, Name: "go"}, nil)

		output, err := svc.GetCategory(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "go", output.Name)
	})

	t.Run("maps a missing category to a not found error", func(t *testing.T) {
		categoryRepo, svc := newCategoryService(t)

		categoryRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, repository.ErrCategoryNotFound)

		_, err := svc.GetCategory(context.Background(), 99)

		require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})
}

func TestCategoryService_CreateCategory(t *testing.T) {
	categoryRepo, svc := newCategoryService(t)

	categoryRepo.On("Create", mock.Anything, mock.MatchedBy(func(category *entity.Category) bool {
		return category.Name == "go"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Category).ID = 1
	}).Return(nil)

	output, err := svc.CreateCategory(context.Background(), &usecase.CreateCategoryInput{Name: "go"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.ID)
	assert.Equal(t, "go", output.Name)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	t.Run("renames the category", func(t *testing.T) {
		categoryRepo, svc := newCategoryService(t)

		categoryRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.Category{ID: 1, Name: "go"}, nil)
		categoryRepo.On("Update", mock.Anything, mock.MatchedBy(func(category *entity.Category) bool {
			return category.ID == 1 && category.Name == "golang"
		})).Return(nil)

		name := "golang"
		output, err := svc.UpdateCategory(context.Background(), 1, &usecase.UpdateCategoryInput{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "golang", output.Name)
	})

	t.Run("an empty patch leaves the category unchanged", func(t *testing.T) {
		categoryRepo, svc := newCategoryService(t)

		categoryRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.Category{ID: 1, Name: "go"}, nil)
		categoryRepo.On("Update", mock.Anything, mock.MatchedBy(func(category *entity.Category) bool {
			return category.Name == "go"
		})).Return(nil)

		output, err := svc.UpdateCategory(context.Background(), 1, &usecase.UpdateCategoryInput{})

		require.NoError(t, err)
		assert.Equal(t, "go", output.Name)
	})
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	t.Run("deletes the category", func(t *testing.T) {
		categoryRepo, svc := newCategoryService(t)

		categoryRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

		require.NoError(t, svc.DeleteCategory(context.Background(), 1))
	})

	t.Run("maps a missing category to a not found error", func(t *testing.T) {
		categoryRepo, svc := newCategoryService(t)

		categoryRepo.On("Delete", mock.Anything, int64(99)).Return(repository.ErrCategoryNotFound)

		require.ErrorIs(t, svc.DeleteCategory(context.Background(), 99), domainerrors.ErrCategoryNotFound)
	})
}
