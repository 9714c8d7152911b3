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

func newArticleService(t *testing.T) (*mockrepo.MockArticleRepository, usecase.ArticleUsecase) {
	t.Helper()

	articleRepo := mockrepo.NewMockArticleRepository(t)
	svc := NewArticleService(ArticleServiceParams{
		ArticleRepo: articleRepo,
		Logger:      discardLogger(),
	})

	return articleRepo, svc
}

func TestArticleService_ListArticles(t *testing.T) {
	t.Run("translates page and limit into a row offset", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		// Page 3 at 5 per page starts at row 10.
		articleRepo.On("List", mock.Anything, 5, 10, "").Return([]*entity.Article{}, nil)

		_, err := svc.ListArticles(context.Background(), &usecase.ListArticlesInput{
			Limit: 5,
			Page:  3,
		})

		require.NoError(t, err)
	})

	t.Run("zero values fall back to the first page at the default size", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("List", mock.Anything, defaultArticlePageSize, 0, "").Return([]*entity.Article{}, nil)

		_, err := svc.ListArticles(context.Background(), &usecase.ListArticlesInput{})

		require.NoError(t, err)
	})

	t.Run("caps an oversized limit", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("List", mock.Anything, maxArticlePageSize, 0, "").Return([]*entity.Article{}, nil)

		_, err := svc.ListArticles(context.Background(), &usecase.ListArticlesInput{Limit: 5000, Page: 1})

		require.NoError(t, err)
	})

	t.Run("passes the search term through", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("List", mock.Anything, defaultArticlePageSize, 0, "gopher").Return([]*entity.Article{
			{ID: 1, Title: "Gopher news", AuthorID: 1},
		}, nil)

		outputs, err := svc.ListArticles(context.Background(), &usecase.ListArticlesInput{Search: "gopher"})

		require.NoError(t, err)
		require.Len(t, outputs, 1)
		assert.Equal(t, "Gopher news", outputs[0].Title)
	})

	t.Run("wraps a query failure with its underlying message", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("List", mock.Anything, defaultArticlePageSize, 0, "").Return(nil, assert.AnError)

		_, err := svc.ListArticles(context.Background(), &usecase.ListArticlesInput{})

		require.Error(t, err)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}

func TestArticleService_CreateArticle(t *testing.T) {
	t.Run("forces the author to the caller, ignoring the payload", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("Create", mock.Anything, mock.MatchedBy(func(article *entity.Article) bool {
			return article.AuthorID == 7 && article.Title == "Hello"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Article).ID = 1
		}).Return(nil)

		output, err := svc.CreateArticle(context.Background(), 7, &usecase.CreateArticleInput{
			Title:    "Hello",
			Content:  "World",
			AuthorID: 999,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), output.AuthorID)
	})

	t.Run("published defaults to true when omitted", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("Create", mock.Anything, mock.MatchedBy(func(article *entity.Article) bool {
			return article.Published
		})).Return(nil)

		output, err := svc.CreateArticle(context.Background(), 7, &usecase.CreateArticleInput{Title: "Hello"})

		require.NoError(t, err)
		assert.True(t, output.Published)
	})
}

func TestArticleService_UpdateArticle(t *testing.T) {
	stored := func() *entity.Article {
		categoryID := int64(3)
		return &entity.Article{
			ID:         10,
			Title:      "Original title",
			Content:    "Original content",
			Published:  true,
			CategoryID: &categoryID,
			AuthorID:   7,
			ViewCount:  5,
		}
	}

	t.Run("applies only the fields present in the patch", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("FindByID", mock.Anything, int64(10)).Return(stored(), nil)
		articleRepo.On("Update", mock.Anything, mock.MatchedBy(func(article *entity.Article) bool {
			return article.Title == "New title" &&
				article.Content == "Original content" &&
				article.ViewCount == 5
		})).Return(nil)

		title := "New title"
		output, err := svc.UpdateArticle(context.Background(), 7, 10, &usecase.UpdateArticleInput{
			Title: &title,
		})

		require.NoError(t, err)
		assert.Equal(t, "New title", output.Title)
		assert.Equal(t, "Original content", output.Content)
	})

	t.Run("rejects a caller who is not the author", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("FindByID", mock.Anything, int64(10)).Return(stored(), nil)

		title := "Hijacked"
		_, err := svc.UpdateArticle(context.Background(), 8, 10, &usecase.UpdateArticleInput{
			Title: &title,
		})

		require.ErrorIs(t, err, domainerrors.ErrNotResourceOwner)
		articleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("maps a missing article to a not found error", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, repository.ErrArticleNotFound)

		title := "x"
		_, err := svc.UpdateArticle(context.Background(), 7, 99, &usecase.UpdateArticleInput{Title: &title})

		require.ErrorIs(t, err, domainerrors.ErrArticleNotFound)
	})
}

func TestArticleService_DeleteArticle(t *testing.T) {
	stored := &entity.Article{ID: 10, Title: "t", AuthorID: 7}

	t.Run("deletes an owned article", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("FindByID", mock.Anything, int64(10)).Return(stored, nil)
		articleRepo.On("Delete", mock.Anything, int64(10)).Return(nil)

		require.NoError(t, svc.DeleteArticle(context.Background(), 7, 10))
	})

	t.Run("rejects a caller who is not the author", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("FindByID", mock.Anything, int64(10)).Return(stored, nil)

		err := svc.DeleteArticle(context.Background(), 8, 10)

		require.ErrorIs(t, err, domainerrors.ErrNotResourceOwner)
		articleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("maps a missing article to a not found error", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, repository.ErrArticleNotFound)

		require.ErrorIs(t, svc.DeleteArticle(context.Background(), 7, 99), domainerrors.ErrArticleNotFound)
	})
}

func TestArticleService_GetLatestArticle(t *testing.T) {
	t.Run("returns the newest article", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("FindLatest", mock.Anything).Return(&entity.Article{ID: 42, Title: "Newest", AuthorID: 1}, nil)

		output, err := svc.GetLatestArticle(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(42), output.ID)
	})

	t.Run("maps an empty table to a not found error", func(t *testing.T) {
		articleRepo, svc := newArticleService(t)

		articleRepo.On("FindLatest", mock.Anything).Return(nil, repository.ErrArticleNotFound)

		_, err := svc.GetLatestArticle(context.Background())

		require.ErrorIs(t, err, domainerrors.ErrArticleNotFound)
	})
}
