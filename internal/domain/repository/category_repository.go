package repository

import (
	"context"

	"cardapio/internal/domain/entity"
)

// CategoryRepository accesses the categorias table of one tenant
// schema. Every method takes the schema explicitly; implementations
// must never derive it from anything but the given entity.Identifier.
type CategoryRepository interface {
	// Create returns domainerrors.ErrConflict on a duplicate name.
	Create(ctx context.Context, schema entity.Identifier, category *entity.Category) error

	// FindAll lists the schema's categories ordered by display order, then name.
	FindAll(ctx context.Context, schema entity.Identifier) ([]*entity.Category, error)

	// FindByID returns domainerrors.ErrNotFound when absent.
	FindByID(ctx context.Context, schema entity.Identifier, id int64) (*entity.Category, error)

	// Update applies a partial update and returns the fresh row.
	Update(ctx context.Context, schema entity.Identifier, id int64, patch entity.CategoryPatch) (*entity.Category, error)

	// Delete returns domainerrors.ErrResourceInUse while products still
	// reference the category (delete-restrict foreign key).
	Delete(ctx context.Context, schema entity.Identifier, id int64) error
}
