package repository

import (
	"context"
	"errors"

	"blogapi/internal/domain/entity"
)

// ErrArticleNotFound is a domain-specific error returned when an article is not found.
var ErrArticleNotFound = errors.New("article not found")

// ArticleRepository defines the standard operations for article persistence.
type ArticleRepository interface {
	// List retrieves a page of articles ordered by ID. When search is
	// non-empty, only articles whose title contains it are returned.
	List(ctx context.Context, limit, offset int, search string) ([]*entity.Article, error)

	// FindByID retrieves a single article by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Article, error)

	// FindLatest retrieves the most recently created article.
	FindLatest(ctx context.Context) (*entity.Article, error)

	// Create persists a new article entity to the storage.
	Create(ctx context.Context, article *entity.Article) error

	// Update modifies an existing article entity in the storage.
	Update(ctx context.Context, article *entity.Article) error

	// Delete removes an article by its unique ID.
	Delete(ctx context.Context, id int64) error
}
