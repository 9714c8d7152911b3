package usecase

import "context"

// CreateCategoryInput defines the data required to create a new category.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// UpdateCategoryInput is an explicit patch for a category.
type UpdateCategoryInput struct {
	Name *string `json:"name"`
}

// CategoryOutput is the public view of a category.
type CategoryOutput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryUsecase defines the interface for category-related business operations.
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*CategoryOutput, error)
	GetCategory(ctx context.Context, id int64) (*CategoryOutput, error)
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error)
	UpdateCategory(ctx context.Context, id int64, input *UpdateCategoryInput) (*CategoryOutput, error)
	DeleteCategory(ctx context.Context, id int64) error
}
