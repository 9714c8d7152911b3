package entity

import "time"

// Article is a blog post. Every article has exactly one author; the category
// is optional and is cleared (not cascaded) when the category is deleted.
type Article struct {
	ID        int64
	Title     string
	Content   string
	Published bool

	// CategoryID is nil when the article has no category, including after
	// the referenced category was deleted.
	CategoryID *int64

	// AuthorID is always set; it is forced to the authenticated caller at
	// creation time.
	AuthorID int64

	// Reading metadata, populated by whatever produced the article.
	NumberOfWords int
	MinutesToRead int
	Image         string
	Slug          string
	Keywords      string

	// Scheduling and provenance.
	ScheduledAt    *time.Time
	SourceURL      string
	FetchTimestamp *time.Time

	ViewCount     int
	ShortenedLink string

	CreatedAt time.Time
	UpdatedAt time.Time
}
