package postgres

import (
	"context"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"
	"cardapio/internal/domain/repository"
	"cardapio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface
// using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) table(schema entity.Identifier) *gorm.DB {
	return repo.db.Table(schema.String() + ".produtos")
}

// Create inserts a product. The categoria_id foreign key is the final
// arbiter for a missing category.
func (repo *productRepository) Create(ctx context.Context, schema entity.Identifier, product *entity.Product) error {
	m := model.FromProductDomain(product)

	if err := repo.table(schema).WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WithDetails("categoria_id: category does not exist")
		}

		return errors.Wrap(err, "failed to insert product")
	}

	*product = *model.ToProductDomain(m)

	return nil
}

// FindAll lists products, optionally restricted to one category.
func (repo *productRepository) FindAll(ctx context.Context, schema entity.Identifier, categoryID *int64) ([]*entity.Product, error) {
	query := repo.table(schema).WithContext(ctx)
	if categoryID != nil {
		query = query.Where("categoria_id = ?", *categoryID)
	}

	var ms []model.ProductModel
	if err := query.Order("ordem_exibicao ASC, nome ASC").Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(ms))
	for i := range ms {
		products = append(products, model.ToProductDomain(&ms[i]))
	}

	return products, nil
}

// FindByID retrieves a single product.
func (repo *productRepository) FindByID(ctx context.Context, schema entity.Identifier, id int64) (*entity.Product, error) {
	var m model.ProductModel

	err := repo.table(schema).WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return model.ToProductDomain(&m), nil
}

// Update writes only the columns present in the patch, then reloads the row.
func (repo *productRepository) Update(ctx context.Context, schema entity.Identifier, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	updates := make(map[string]any)
	if patch.CategoryID != nil {
		updates["categoria_id"] = *patch.CategoryID
	}
	if patch.Name != nil {
		updates["nome"] = *patch.Name
	}
	if patch.Description != nil {
		updates["descricao"] = *patch.Description
	}
	if patch.Price != nil {
		updates["preco"] = *patch.Price
	}
	if patch.PhotoURL != nil {
		updates["url_foto"] = *patch.PhotoURL
	}
	if patch.Active != nil {
		updates["ativo"] = *patch.Active
	}
	if patch.DisplayOrder != nil {
		updates["ordem_exibicao"] = *patch.DisplayOrder
	}

	result := repo.table(schema).WithContext(ctx).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, domainerrors.ErrInvalidReference.WithDetails("categoria_id: category does not exist")
		}

		return nil, errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
	}

	return repo.FindByID(ctx, schema, id)
}

// Delete removes a product. The delete-restrict foreign key from
// promocao_produtos surfaces as ErrResourceInUse.
func (repo *productRepository) Delete(ctx context.Context, schema entity.Identifier, id int64) error {
	result := repo.table(schema).WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrResourceInUse.WithDetails("product is linked to a promotion")
		}

		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(domainerrors.ErrNotFound, "product not found")
	}

	return nil
}
