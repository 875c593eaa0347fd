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

// categoryRepository implements the domain.CategoryRepository interface
// using GORM. The tenant schema arrives on every call and is applied
// through an explicit schema-qualified Table(), never via search_path.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) table(schema entity.Identifier) *gorm.DB {
	return repo.db.Table(schema.String() + ".categorias")
}

// Create inserts a category and backfills generated fields.
func (repo *categoryRepository) Create(ctx context.Context, schema entity.Identifier, category *entity.Category) error {
	m := model.FromCategoryDomain(category)

	if err := repo.table(schema).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("nome: category name already in use")
		}

		return errors.Wrap(err, "failed to insert category")
	}

	*category = *model.ToCategoryDomain(m)

	return nil
}

// FindAll lists the schema's categories, display order first.
func (repo *categoryRepository) FindAll(ctx context.Context, schema entity.Identifier) ([]*entity.Category, error) {
	var ms []model.CategoryModel

	err := repo.table(schema).WithContext(ctx).
		Order("ordem_exibicao ASC, nome ASC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(ms))
	for i := range ms {
		categories = append(categories, model.ToCategoryDomain(&ms[i]))
	}

	return categories, nil
}

// FindByID retrieves a single category.
func (repo *categoryRepository) FindByID(ctx context.Context, schema entity.Identifier, id int64) (*entity.Category, error) {
	var m model.CategoryModel

	err := repo.table(schema).WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return model.ToCategoryDomain(&m), nil
}

// Update writes only the columns present in the patch, then reloads the row.
func (repo *categoryRepository) Update(ctx context.Context, schema entity.Identifier, id int64, patch entity.CategoryPatch) (*entity.Category, error) {
	updates := make(map[string]any)
	if patch.Name != nil {
		updates["nome"] = *patch.Name
	}
	if patch.Description != nil {
		updates["descricao"] = *patch.Description
	}
	if patch.DisplayOrder != nil {
		updates["ordem_exibicao"] = *patch.DisplayOrder
	}
	if patch.Active != nil {
		updates["ativo"] = *patch.Active
	}

	result := repo.table(schema).WithContext(ctx).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrConflict.WithDetails("nome: category name already in use")
		}

		return nil, errors.Wrap(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "category not found")
	}

	return repo.FindByID(ctx, schema, id)
}

// Delete removes a category. The delete-restrict foreign key from
// produtos surfaces as ErrResourceInUse.
func (repo *categoryRepository) Delete(ctx context.Context, schema entity.Identifier, id int64) error {
	result := repo.table(schema).WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrResourceInUse.WithDetails("category still has products")
		}

		return errors.Wrap(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(domainerrors.ErrNotFound, "category not found")
	}

	return nil
}
