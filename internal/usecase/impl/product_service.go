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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		logger:    logger,
	}
}

// Create adds a product to the tenant's menu. The category must exist;
// the foreign key is the final arbiter, so a concurrent category delete
// still surfaces as ErrInvalidReference.
func (srv *productService) Create(ctx context.Context, tc usecase.TenantContext, input *usecase.CreateProductInput) (*usecase.ProductOutput, error) {
	srv.logger.Info("Creating product", "tenantID", tc.TenantID, "name", input.Name)

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		PhotoURL:    input.PhotoURL,
		Active:      true,
	}
	if input.DisplayOrder != nil {
		product.DisplayOrder = *input.DisplayOrder
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Products().Create(ctx, tc.Schema, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return usecase.NewProductOutput(product), nil
}

// List returns the tenant's products, optionally filtered by category.
func (srv *productService) List(ctx context.Context, tc usecase.TenantContext, categoryID *int64) ([]*usecase.ProductOutput, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Products().FindAll(ctx, tc.Schema, categoryID)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	outputs := make([]*usecase.ProductOutput, 0, len(products))
	for _, product := range products {
		outputs = append(outputs, usecase.NewProductOutput(product))
	}

	return outputs, nil
}

// Get returns one product by ID.
func (srv *productService) Get(ctx context.Context, tc usecase.TenantContext, id int64) (*usecase.ProductOutput, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Products().FindByID(ctx, tc.Schema, id)
		if err != nil {
			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return usecase.NewProductOutput(product), nil
}

// Update applies a partial product update.
func (srv *productService) Update(ctx context.Context, tc usecase.TenantContext, id int64, input *usecase.UpdateProductInput) (*usecase.ProductOutput, error) {
	srv.logger.Info("Updating product", "tenantID", tc.TenantID, "productID", id)

	patch := entity.ProductPatch{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		CategoryID:   input.CategoryID,
		PhotoURL:     input.PhotoURL,
		DisplayOrder: input.DisplayOrder,
		Active:       input.Active,
	}
	if patch.Empty() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no fields to update")
	}

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		updated, err := repoFactory.Products().Update(ctx, tc.Schema, id, patch)
		if err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = updated

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return usecase.NewProductOutput(product), nil
}

// Delete removes a product. Products still linked to promotions are
// refused with ErrResourceInUse.
func (srv *productService) Delete(ctx context.Context, tc usecase.TenantContext, id int64) error {
	srv.logger.Info("Deleting product", "tenantID", tc.TenantID, "productID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Products().Delete(ctx, tc.Schema, id); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
