package repository

import (
	"context"

	"cardapio/internal/domain/entity"
)

// ProductRepository accesses the produtos table of one tenant schema.
type ProductRepository interface {
	// Create returns domainerrors.ErrInvalidReference when the category
	// does not exist (foreign key is the final arbiter of the
	// check-then-act race in the use case).
	Create(ctx context.Context, schema entity.Identifier, product *entity.Product) error

	// FindAll lists products, optionally restricted to one category.
	FindAll(ctx context.Context, schema entity.Identifier, categoryID *int64) ([]*entity.Product, error)

	// FindByID returns domainerrors.ErrNotFound when absent.
	FindByID(ctx context.Context, schema entity.Identifier, id int64) (*entity.Product, error)

	// Update applies a partial update and returns the fresh row.
	Update(ctx context.Context, schema entity.Identifier, id int64, patch entity.ProductPatch) (*entity.Product, error)

	// Delete returns domainerrors.ErrResourceInUse while promotion links
	// still reference the product.
	Delete(ctx context.Context, schema entity.Identifier, id int64) error
}
