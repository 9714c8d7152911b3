package repository

import (
	"context"
	"errors"

	"blogapi/internal/domain/entity"
)

// ErrCategoryNotFound is a domain-specific error returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// List retrieves all categories ordered by ID.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// Create persists a new category entity to the storage.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category entity in the storage.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by its unique ID. Referencing articles keep
	// existing; the database clears their category reference.
	Delete(ctx context.Context, id int64) error
}
