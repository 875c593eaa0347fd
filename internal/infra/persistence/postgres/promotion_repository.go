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

// promotionRepository implements the domain.PromotionRepository
// interface using GORM. It covers both the promocoes table and its
// promocao_produtos link table.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

func (repo *promotionRepository) table(schema entity.Identifier) *gorm.DB {
	return repo.db.Table(schema.String() + ".promocoes")
}

func (repo *promotionRepository) linkTable(schema entity.Identifier) *gorm.DB {
	return repo.db.Table(schema.String() + ".promocao_produtos")
}

// Create inserts a promotion and backfills generated fields. The CHECK
// constraints back up the entity-level validation already run by the
// use case.
func (repo *promotionRepository) Create(ctx context.Context, schema entity.Identifier, promotion *entity.Promotion) error {
	m := model.FromPromotionDomain(promotion)

	if err := repo.table(schema).WithContext(ctx).Create(m).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("promotion values rejected by a table constraint")
		}

		return errors.Wrap(err, "failed to insert promotion")
	}

	*promotion = *model.ToPromotionDomain(m)

	return nil
}

// FindAll lists promotions, newest start date first.
func (repo *promotionRepository) FindAll(ctx context.Context, schema entity.Identifier) ([]*entity.Promotion, error) {
	var ms []model.PromotionModel

	err := repo.table(schema).WithContext(ctx).
		Order("data_inicio DESC, nome_promocao ASC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(ms))
	for i := range ms {
		promotions = append(promotions, model.ToPromotionDomain(&ms[i]))
	}

	return promotions, nil
}

// FindByID retrieves a single promotion.
func (repo *promotionRepository) FindByID(ctx context.Context, schema entity.Identifier, id int64) (*entity.Promotion, error) {
	var m model.PromotionModel

	err := repo.table(schema).WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "promotion not found")
		}

		return nil, errors.Wrap(err, "failed to find promotion by id")
	}

	return model.ToPromotionDomain(&m), nil
}

// Update writes only the columns present in the patch, then reloads the
// row. The use case has already merged and revalidated the result.
func (repo *promotionRepository) Update(ctx context.Context, schema entity.Identifier, id int64, patch entity.PromotionPatch) (*entity.Promotion, error) {
	updates := promotionPatchColumns(patch)

	result := repo.table(schema).WithContext(ctx).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("promotion values rejected by a table constraint")
		}

		return nil, errors.Wrap(result.Error, "failed to update promotion")
	}
	if result.RowsAffected == 0 {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "promotion not found")
	}

	return repo.FindByID(ctx, schema, id)
}

// Delete removes a promotion; its links go with it (delete-cascade).
func (repo *promotionRepository) Delete(ctx context.Context, schema entity.Identifier, id int64) error {
	result := repo.table(schema).WithContext(ctx).Where("id = ?", id).Delete(&model.PromotionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete promotion")
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(domainerrors.ErrNotFound, "promotion not found")
	}

	return nil
}

// CreateLink inserts a promotion-product link and backfills generated
// fields.
func (repo *promotionRepository) CreateLink(ctx context.Context, schema entity.Identifier, link *entity.PromotionProduct) error {
	m := model.FromPromotionProductDomain(link)

	if err := repo.linkTable(schema).WithContext(ctx).Create(m).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrConflict.WithDetails("product is already linked to this promotion")
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrInvalidReference.WithDetails("promotion or product does not exist")
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WithDetails("link values rejected by a table constraint")
		}

		return errors.Wrap(err, "failed to insert promotion product link")
	}

	*link = *model.ToPromotionProductDomain(m)

	return nil
}

// FindLinks lists the products linked to a promotion.
func (repo *promotionRepository) FindLinks(ctx context.Context, schema entity.Identifier, promotionID int64) ([]*entity.PromotionProduct, error) {
	var ms []model.PromotionProductModel

	err := repo.linkTable(schema).WithContext(ctx).
		Where("promocao_id = ?", promotionID).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotion product links")
	}

	links := make([]*entity.PromotionProduct, 0, len(ms))
	for i := range ms {
		links = append(links, model.ToPromotionProductDomain(&ms[i]))
	}

	return links, nil
}

// DeleteLink removes one promotion-product link.
func (repo *promotionRepository) DeleteLink(ctx context.Context, schema entity.Identifier, promotionID, productID int64) error {
	result := repo.linkTable(schema).WithContext(ctx).
		Where("promocao_id = ? AND produto_id = ?", promotionID, productID).
		Delete(&model.PromotionProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete promotion product link")
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(domainerrors.ErrNotFound, "product is not linked to this promotion")
	}

	return nil
}

func promotionPatchColumns(patch entity.PromotionPatch) map[string]any {
	updates := make(map[string]any)

	if patch.Name != nil {
		updates["nome_promocao"] = *patch.Name
	}
	if patch.Description != nil {
		updates["descricao_promocao"] = *patch.Description
	}
	if patch.Type != nil {
		updates["tipo_promocao"] = string(*patch.Type)
	}
	if patch.PercentDiscount != nil {
		updates["valor_desconto_percentual"] = *patch.PercentDiscount
	}
	if patch.ComboPrice != nil {
		updates["preco_promocional_combo"] = *patch.ComboPrice
	}
	if patch.StartsAt != nil {
		updates["data_inicio"] = *patch.StartsAt
	}
	if patch.EndsAt != nil {
		updates["data_fim"] = *patch.EndsAt
	}
	if patch.Active != nil {
		updates["ativo"] = *patch.Active
	}

	return updates
}
