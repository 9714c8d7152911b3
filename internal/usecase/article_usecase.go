package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// ListArticlesInput defines the pagination and search parameters for listing
// articles. Limit and Page are both 1-based; zero values fall back to defaults.
type ListArticlesInput struct {
	Limit  int
	Page   int
	Search string
}

// CreateArticleInput defines the data required to create a new article.
// AuthorID is accepted for wire compatibility but ignored: the author is
// always the authenticated caller.
type CreateArticleInput struct {
	Title          string     `json:"title" validate:"required"`
	Content        string     `json:"content"`
	Published      *bool      `json:"published"`
	CategoryID     *int64     `json:"category_id"`
	AuthorID       int64      `json:"author_id"`
	NumberOfWords  int        `json:"number_of_words"`
	MinutesToRead  int        `json:"minutes_to_read"`
	Image          string     `json:"image"`
	Slug           string     `json:"slug"`
	Keywords       string     `json:"keywords"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	SourceURL      string     `json:"source_url"`
	FetchTimestamp *time.Time `json:"fetch_timestamp"`
	ViewCount      int        `json:"view_count"`
	ShortenedLink  string     `json:"shortened_link"`
}

// UpdateArticleInput is an explicit patch: only fields present in the
// request payload are non-nil, and only those are applied to the article.
type UpdateArticleInput struct {
	Title          *string    `json:"title"`
	Content        *string    `json:"content"`
	Published      *bool      `json:"published"`
	CategoryID     *int64     `json:"category_id"`
	NumberOfWords  *int       `json:"number_of_words"`
	MinutesToRead  *int       `json:"minutes_to_read"`
	Image          *string    `json:"image"`
	Slug           *string    `json:"slug"`
	Keywords       *string    `json:"keywords"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	SourceURL      *string    `json:"source_url"`
	FetchTimestamp *time.Time `json:"fetch_timestamp"`
	ViewCount      *int       `json:"view_count"`
	ShortenedLink  *string    `json:"shortened_link"`
}

// --- Output DTOs ---

// ArticleOutput is the public view of an article.
type ArticleOutput struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Published      bool       `json:"published"`
	CategoryID     *int64     `json:"category_id"`
	AuthorID       int64      `json:"author_id"`
	NumberOfWords  int        `json:"number_of_words"`
	MinutesToRead  int        `json:"minutes_to_read"`
	Image          string     `json:"image,omitempty"`
	Slug           string     `json:"slug,omitempty"`
	Keywords       string     `json:"keywords,omitempty"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	SourceURL      string     `json:"source_url,omitempty"`
	FetchTimestamp *time.Time `json:"fetch_timestamp,omitempty"`
	ViewCount      int        `json:"view_count"`
	ShortenedLink  string     `json:"shortened_link,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ArticleUsecase defines the interface for article-related business operations.
type ArticleUsecase interface {
	ListArticles(ctx context.Context, input *ListArticlesInput) ([]*ArticleOutput, error)
	GetArticle(ctx context.Context, id int64) (*ArticleOutput, error)
	GetLatestArticle(ctx context.Context) (*ArticleOutput, error)

	// CreateArticle forces the author to callerID regardless of the
	// author_id supplied by the client.
	CreateArticle(ctx context.Context, callerID int64, input *CreateArticleInput) (*ArticleOutput, error)

	// UpdateArticle and DeleteArticle enforce ownership: only the article's
	// author may mutate it.
	UpdateArticle(ctx context.Context, callerID, id int64, input *UpdateArticleInput) (*ArticleOutput, error)
	DeleteArticle(ctx context.Context, callerID, id int64) error
}
