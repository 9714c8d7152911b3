package impl

import (
	"context"
	"log/slog"

	deliverycontext "blogapi/internal/delivery/context"
	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	"blogapi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultArticlePageSize = 10
	maxArticlePageSize     = 100
)

// articleService implements the ArticleUsecase interface.
type articleService struct {
	articleRepo repository.ArticleRepository
	logger      *slog.Logger
}

// ArticleServiceParams holds dependencies for articleService, injected by Fx.
type ArticleServiceParams struct {
	fx.In

	ArticleRepo repository.ArticleRepository
	Logger      *slog.Logger
}

// NewArticleService is the constructor for articleService.
func NewArticleService(params ArticleServiceParams) usecase.ArticleUsecase {
	return &articleService{
		articleRepo: params.ArticleRepo,
		logger:      params.Logger,
	}
}

func (srv *articleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListArticles retrieves a page of articles. Pages are 1-based and
// contiguous: page N covers rows (N-1)*limit .. N*limit-1.
func (srv *articleService) ListArticles(ctx context.Context, input *usecase.ListArticlesInput) ([]*usecase.ArticleOutput, error) {
	limit := input.Limit
	switch {
	case limit <= 0:
		limit = defaultArticlePageSize
	case limit > maxArticlePageSize:
		limit = maxArticlePageSize
	}

	page := input.Page
	if page <= 0 {
		page = 1
	}

	offset := (page - 1) * limit

	articles, err := srv.articleRepo.List(ctx, limit, offset, input.Search)
	if err != nil {
		// List failures surface as 500 with the underlying message.
		return nil, domainerrors.NewDatabaseQueryError(err, "failed to list articles")
	}

	outputs := make([]*usecase.ArticleOutput, 0, len(articles))
	for _, article := range articles {
		outputs = append(outputs, toArticleOutput(article))
	}

	return outputs, nil
}

// GetArticle retrieves a single article by ID.
func (srv *articleService) GetArticle(ctx context.Context, id int64) (*usecase.ArticleOutput, error) {
	article, err := srv.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article")
	}

	return toArticleOutput(article), nil
}

// GetLatestArticle retrieves the most recently created article.
func (srv *articleService) GetLatestArticle(ctx context.Context) (*usecase.ArticleOutput, error) {
	article, err := srv.articleRepo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest article")
	}

	return toArticleOutput(article), nil
}

// CreateArticle persists a new article authored by the caller. Any author
// supplied in the payload is ignored.
func (srv *articleService) CreateArticle(ctx context.Context, callerID int64, input *usecase.CreateArticleInput) (*usecase.ArticleOutput, error) {
	published := true
	if input.Published != nil {
		published = *input.Published
	}

	article := &entity.Article{
		Title:          input.Title,
		Content:        input.Content,
		Published:      published,
		CategoryID:     input.CategoryID,
		AuthorID:       callerID,
		NumberOfWords:  input.NumberOfWords,
		MinutesToRead:  input.MinutesToRead,
		Image:          input.Image,
		Slug:           input.Slug,
		Keywords:       input.Keywords,
		ScheduledAt:    input.ScheduledAt,
		SourceURL:      input.SourceURL,
		FetchTimestamp: input.FetchTimestamp,
		ViewCount:      input.ViewCount,
		ShortenedLink:  input.ShortenedLink,
	}

	if err := srv.articleRepo.Create(ctx, article); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Article created",
		slog.Int64("articleID", article.ID),
		slog.Int64("authorID", callerID),
	)

	return toArticleOutput(article), nil
}

// UpdateArticle applies a partial update to an article owned by the caller.
// Only fields present in the patch are touched.
func (srv *articleService) UpdateArticle(ctx context.Context, callerID, id int64, input *usecase.UpdateArticleInput) (*usecase.ArticleOutput, error) {
	article, err := srv.loadOwnedArticle(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	applyArticlePatch(article, input)

	if err := srv.articleRepo.Update(ctx, article); err != nil {
		return nil, errors.WithStack(err)
	}

	return toArticleOutput(article), nil
}

// DeleteArticle removes an article owned by the caller.
func (srv *articleService) DeleteArticle(ctx context.Context, callerID, id int64) error {
	if _, err := srv.loadOwnedArticle(ctx, callerID, id); err != nil {
		return err
	}

	if err := srv.articleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return domainerrors.ErrArticleNotFound
		}

		return errors.WithStack(err)
	}

	srv.log(ctx).Info("Article deleted",
		slog.Int64("articleID", id),
		slog.Int64("authorID", callerID),
	)

	return nil
}

// loadOwnedArticle fetches an article and verifies the caller is its author.
// The ownership check is a plain identity comparison; there is no role
// hierarchy.
func (srv *articleService) loadOwnedArticle(ctx context.Context, callerID, id int64) (*entity.Article, error) {
	article, err := srv.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article")
	}

	if article.AuthorID != callerID {
		return nil, domainerrors.ErrNotResourceOwner
	}

	return article, nil
}

// applyArticlePatch merges the non-nil patch fields into the article.
func applyArticlePatch(article *entity.Article, patch *usecase.UpdateArticleInput) {
	if patch.Title != nil {
		article.Title = *patch.Title
	}
	if patch.Content != nil {
		article.Content = *patch.Content
	}
	if patch.Published != nil {
		article.Published = *patch.Published
	}
	if patch.CategoryID != nil {
		article.CategoryID = patch.CategoryID
	}
	if patch.NumberOfWords != nil {
		article.NumberOfWords = *patch.NumberOfWords
	}
	if patch.MinutesToRead != nil {
		article.MinutesToRead = *patch.MinutesToRead
	}
	if patch.Image != nil {
		article.Image = *patch.Image
	}
	if patch.Slug != nil {
		article.Slug = *patch.Slug
	}
	if patch.Keywords != nil {
		article.Keywords = *patch.Keywords
	}
	if patch.ScheduledAt != nil {
		article.ScheduledAt = patch.ScheduledAt
	}
	if patch.SourceURL != nil {
		article.SourceURL = *patch.SourceURL
	}
	if patch.FetchTimestamp != nil {
		article.FetchTimestamp = patch.FetchTimestamp
	}
	if patch.ViewCount != nil {
		article.ViewCount = *patch.ViewCount
	}
	if patch.ShortenedLink != nil {
		article.ShortenedLink = *patch.ShortenedLink
	}
}

// toArticleOutput maps an article entity to its public view.
func toArticleOutput(article *entity.Article) *usecase.ArticleOutput {
	return &usecase.ArticleOutput{
		ID:             article.ID,
		Title:          article.Title,
		Content:        article.Content,
		Published:      article.Published,
		CategoryID:     article.CategoryID,
		AuthorID:       article.AuthorID,
		NumberOfWords:  article.NumberOfWords,
		MinutesToRead:  article.MinutesToRead,
		Image:          article.Image,
		Slug:           article.Slug,
		Keywords:       article.Keywords,
		ScheduledAt:    article.ScheduledAt,
		SourceURL:      article.SourceURL,
		FetchTimestamp: article.FetchTimestamp,
		ViewCount:      article.ViewCount,
		ShortenedLink:  article.ShortenedLink,
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
	}
}
