package repository

import (
	"context"

	"cardapio/internal/domain/entity"
)

// PromotionRepository accesses the promocoes and promocao_produtos
// tables of one tenant schema.
type PromotionRepository interface {
	Create(ctx context.Context, schema entity.Identifier, promotion *entity.Promotion) error

	// FindAll lists promotions ordered by start date descending, then name.
	FindAll(ctx context.Context, schema entity.Identifier) ([]*entity.Promotion, error)

	// FindByID returns domainerrors.ErrNotFound when absent.
	FindByID(ctx context.Context, schema entity.Identifier, id int64) (*entity.Promotion, error)

	// Update writes the already-merged-and-validated promotion fields.
	Update(ctx context.Context, schema entity.Identifier, id int64, patch entity.PromotionPatch) (*entity.Promotion, error)

	// Delete removes the promotion; its links go with it (delete-cascade).
	Delete(ctx context.Context, schema entity.Identifier, id int64) error

	// CreateLink returns domainerrors.ErrConflict when the (promotion,
	// product) pair is already linked and domainerrors.ErrInvalidReference
	// when either side vanished between check and insert.
	CreateLink(ctx context.Context, schema entity.Identifier, link *entity.PromotionProduct) error

	// FindLinks lists the products linked to a promotion.
	FindLinks(ctx context.Context, schema entity.Identifier, promotionID int64) ([]*entity.PromotionProduct, error)

	// DeleteLink returns domainerrors.ErrNotFound when the pair is not linked.
	DeleteLink(ctx context.Context, schema entity.Identifier, promotionID, productID int64) error
}
