package impl

import (
	"context"
	"log/slog"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"
	"cardapio/internal/domain/repository"
	"cardapio/internal/usecase"

	"github.com/pkg/errors"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		txManager: txManager,
		logger:    logger,
	}
}

// Create adds a category to the tenant's menu.
func (srv *categoryService) Create(ctx context.Context, tc usecase.TenantContext, input *usecase.CreateCategoryInput) (*usecase.CategoryOutput, error) {
	srv.logger.Info("Creating category", "tenantID", tc.TenantID, "name", input.Name)

	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		Active:      true,
	}
	if input.DisplayOrder != nil {
		category.DisplayOrder = *input.DisplayOrder
	}
	if input.Active != nil {
		category.Active = *input.Active
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Categories().Create(ctx, tc.Schema, category); err != nil {
			return errors.Wrap(err, "failed to create category")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return usecase.NewCategoryOutput(category), nil
}

// List returns all categories of the tenant's menu.
func (srv *categoryService) List(ctx context.Context, tc usecase.TenantContext) ([]*usecase.CategoryOutput, error) {
	var categories []*entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Categories().FindAll(ctx, tc.Schema)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		categories = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	outputs := make([]*usecase.CategoryOutput, 0, len(categories))
	for _, category := range categories {
		outputs = append(outputs, usecase.NewCategoryOutput(category))
	}

	return outputs, nil
}

// Get returns one category by ID.
func (srv *categoryService) Get(ctx context.Context, tc usecase.TenantContext, id int64) (*usecase.CategoryOutput, error) {
	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Categories().FindByID(ctx, tc.Schema, id)
		if err != nil {
			return errors.Wrap(err, "failed to find category")
		}
		category = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}

	return usecase.NewCategoryOutput(category), nil
}

// Update applies a partial category update.
func (srv *categoryService) Update(ctx context.Context, tc usecase.TenantContext, id int64, input *usecase.UpdateCategoryInput) (*usecase.CategoryOutput, error) {
	srv.logger.Info("Updating category", "tenantID", tc.TenantID, "categoryID", id)

	patch := entity.CategoryPatch{
		Name:         input.Name,
		Description:  input.Description,
		DisplayOrder: input.DisplayOrder,
		Active:       input.Active,
	}
	if patch.Empty() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no fields to update")
	}

	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		updated, err := repoFactory.Categories().Update(ctx, tc.Schema, id, patch)
		if err != nil {
			return errors.Wrap(err, "failed to update category")
		}
		category = updated

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return usecase.NewCategoryOutput(category), nil
}

// Delete removes a category. Categories still referenced by products
// are refused with ErrResourceInUse.
func (srv *categoryService) Delete(ctx context.Context, tc usecase.TenantContext, id int64) error {
	srv.logger.Info("Deleting category", "tenantID", tc.TenantID, "categoryID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Categories().Delete(ctx, tc.Schema, id); err != nil {
			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}
