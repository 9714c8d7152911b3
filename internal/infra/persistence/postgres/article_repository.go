package postgres

import (
	"context"

	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	"blogapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// articleRepository implements the repository.ArticleRepository interface using GORM.
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository is the constructor for articleRepository.
func NewArticleRepository(db *gorm.DB) repository.ArticleRepository {
	return &articleRepository{
		db: db,
	}
}

// List retrieves a page of articles ordered by ID, optionally filtered by a
// title substring. Ordering by the primary key keeps pages stable: page N
// and page N+1 never overlap when there are no concurrent writes.
func (repo *articleRepository) List(ctx context.Context, limit, offset int, search string) ([]*entity.Article, error) {
	var articleModels []*model.ArticleModel

	query := repo.db.WithContext(ctx)
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	if err := query.
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&articleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list articles")
	}

	articles := make([]*entity.Article, 0, len(articleModels))
	for _, articleM := range articleModels {
		articles = append(articles, toArticleDomain(articleM))
	}

	return articles, nil
}

// FindByID retrieves a single article by its unique ID.
func (repo *articleRepository) FindByID(ctx context.Context, id int64) (*entity.Article, error) {
	var articleM model.ArticleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&articleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by id")
	}

	return toArticleDomain(&articleM), nil
}

// FindLatest retrieves the most recently created article.
func (repo *articleRepository) FindLatest(ctx context.Context) (*entity.Article, error) {
	var articleM model.ArticleModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		First(&articleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest article")
	}

	return toArticleDomain(&articleM), nil
}

// Create persists a new article entity to the database.
func (repo *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	articleM := fromArticleDomain(article)

	if err := repo.db.WithContext(ctx).Create(articleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrArticleCreationFailed.WrapMessage("invalid author or category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrArticleCreationFailed.WrapMessage("missing required article information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create article")
	}

	// Update the entity with generated values
	article.ID = articleM.ID
	article.CreatedAt = articleM.CreatedAt
	article.UpdatedAt = articleM.UpdatedAt

	return nil
}

// Update modifies an existing article entity in the database.
// The entity carries the already-merged field values; Save writes all
// columns so cleared optional fields are persisted too.
func (repo *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	articleM := fromArticleDomain(article)

	if err := repo.db.WithContext(ctx).Save(articleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid author or category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update article")
	}

	article.UpdatedAt = articleM.UpdatedAt

	return nil
}

// Delete removes an article by its unique ID.
func (repo *articleRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ArticleModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toArticleDomain converts a GORM ArticleModel to a domain Article entity.
func toArticleDomain(data *model.ArticleModel) *entity.Article {
	if data == nil {
		return nil
	}

	return &entity.Article{
		ID:             data.ID,
		Title:          data.Title,
		Content:        data.Content,
		Published:      data.Published,
		CategoryID:     data.CategoryID,
		AuthorID:       data.AuthorID,
		NumberOfWords:  data.NumberOfWords,
		MinutesToRead:  data.MinutesToRead,
		Image:          data.Image,
		Slug:           data.Slug,
		Keywords:       data.Keywords,
		ScheduledAt:    data.ScheduledAt,
		SourceURL:      data.SourceURL,
		FetchTimestamp: data.FetchTimestamp,
		ViewCount:      data.ViewCount,
		ShortenedLink:  data.ShortenedLink,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromArticleDomain converts a domain Article entity to a GORM ArticleModel for persistence.
func fromArticleDomain(data *entity.Article) *model.ArticleModel {
	if data == nil {
		return nil
	}

	return &model.ArticleModel{
		ID:             data.ID,
		Title:          data.Title,
		Content:        data.Content,
		Published:      data.Published,
		CategoryID:     data.CategoryID,
		AuthorID:       data.AuthorID,
		NumberOfWords:  data.NumberOfWords,
		MinutesToRead:  data.MinutesToRead,
		Image:          data.Image,
		Slug:           data.Slug,
		Keywords:       data.Keywords,
		ScheduledAt:    data.ScheduledAt,
		SourceURL:      data.SourceURL,
		FetchTimestamp: data.FetchTimestamp,
		ViewCount:      data.ViewCount,
		ShortenedLink:  data.ShortenedLink,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
