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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories retrieves all categories.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*usecase.CategoryOutput, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	outputs := make([]*usecase.CategoryOutput, 0, len(categories))
	for _, category := range categories {
		outputs = append(outputs, toCategoryOutput(category))
	}

	return outputs, nil
}

// GetCategory retrieves a single category by ID.
func (srv *categoryService) GetCategory(ctx context.Context, id int64) (*usecase.CategoryOutput, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryOutput(category), nil
}

// CreateCategory persists a new category.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*usecase.CategoryOutput, error) {
	category := &entity.Category{
		Name: input.Name,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Category created", slog.Int64("categoryID", category.ID))

	return toCategoryOutput(category), nil
}

// UpdateCategory applies a partial update to a category.
func (srv *categoryService) UpdateCategory(ctx context.Context, id int64, input *usecase.UpdateCategoryInput) (*usecase.CategoryOutput, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	if input.Name != nil {
		category.Name = *input.Name
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.WithStack(err)
	}

	return toCategoryOutput(category), nil
}

// DeleteCategory removes a category. Articles referencing it keep existing;
// the database clears their category reference.
func (srv *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.WithStack(err)
	}

	srv.log(ctx).Info("Category deleted", slog.Int64("categoryID", id))

	return nil
}

// toCategoryOutput maps a category entity to its public view.
func toCategoryOutput(category *entity.Category) *usecase.CategoryOutput {
	return &usecase.CategoryOutput{
		ID:   category.ID,
		Name: category.Name,
	}
}
