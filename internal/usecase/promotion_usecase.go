package usecase

import (
	"context"
	"time"

	"cardapio/internal/domain/entity"
)

// CreatePromotionInput is the payload to add a promotion. Which value
// fields are required depends on the type; that cross-field rule is
// enforced by the promotion consistency engine, not by tags.
type CreatePromotionInput struct {
	Name            string     `json:"nome_promocao" validate:"required,min=3"`
	Description     *string    `json:"descricao_promocao" validate:"omitempty,min=3"`
	Type            string     `json:"tipo_promocao" validate:"required"`
	PercentDiscount *float64   `json:"valor_desconto_percentual" validate:"omitempty,gt=0,lte=100"`
	ComboPrice      *float64   `json:"preco_promocional_combo" validate:"omitempty,gt=0"`
	StartsAt        time.Time  `json:"data_inicio" validate:"required"`
	EndsAt          *time.Time `json:"data_fim"`
	Active          *bool      `json:"ativo"`
}

// UpdatePromotionInput is a partial promotion update. The stored row is
// merged with the patch and the merged result re-validated before any
// write.
type UpdatePromotionInput struct {
	Name            *string    `json:"nome_promocao" validate:"omitempty,min=3"`
	Description     *string    `json:"descricao_promocao" validate:"omitempty,min=3"`
	Type            *string    `json:"tipo_promocao"`
	PercentDiscount *float64   `json:"valor_desconto_percentual" validate:"omitempty,gt=0,lte=100"`
	ComboPrice      *float64   `json:"preco_promocional_combo" validate:"omitempty,gt=0"`
	StartsAt        *time.Time `json:"data_inicio"`
	EndsAt          *time.Time `json:"data_fim"`
	Active          *bool      `json:"ativo"`
}

// LinkProductInput ties a product into a promotion. The override price
// is required for PRECO_FIXO_PRODUTO promotions and forbidden otherwise.
type LinkProductInput struct {
	ProductID     int64    `json:"produto_id" validate:"required,gt=0"`
	ComboQuantity *int     `json:"quantidade_no_combo" validate:"omitempty,gt=0"`
	OverridePrice *float64 `json:"preco_promocional_produto_individual" validate:"omitempty,gte=0"`
}

// PromotionOutput is the API shape of a promotion.
type PromotionOutput struct {
	ID              int64      `json:"id"`
	Name            string     `json:"nome_promocao"`
	Description     *string    `json:"descricao_promocao,omitempty"`
	Type            string     `json:"tipo_promocao"`
	PercentDiscount *float64   `json:"valor_desconto_percentual,omitempty"`
	ComboPrice      *float64   `json:"preco_promocional_combo,omitempty"`
	StartsAt        time.Time  `json:"data_inicio"`
	EndsAt          *time.Time `json:"data_fim,omitempty"`
	Active          bool       `json:"ativo"`
	CreatedAt       time.Time  `json:"data_criacao"`
	UpdatedAt       time.Time  `json:"data_atualizacao"`
}

// NewPromotionOutput maps a promotion entity to its API shape.
func NewPromotionOutput(p *entity.Promotion) *PromotionOutput {
	return &PromotionOutput{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Type:            string(p.Type),
		PercentDiscount: p.PercentDiscount,
		ComboPrice:      p.ComboPrice,
		StartsAt:        p.StartsAt,
		EndsAt:          p.EndsAt,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// PromotionProductOutput is the API shape of a promotion-product link.
type PromotionProductOutput struct {
	ID            int64     `json:"id"`
	PromotionID   int64     `json:"promocao_id"`
	ProductID     int64     `json:"produto_id"`
	ComboQuantity int       `json:"quantidade_no_combo"`
	OverridePrice *float64  `json:"preco_promocional_produto_individual,omitempty"`
	CreatedAt     time.Time `json:"data_criacao"`
}

// NewPromotionProductOutput maps a link entity to its API shape.
func NewPromotionProductOutput(l *entity.PromotionProduct) *PromotionProductOutput {
	return &PromotionProductOutput{
		ID:            l.ID,
		PromotionID:   l.PromotionID,
		ProductID:     l.ProductID,
		ComboQuantity: l.ComboQuantity,
		OverridePrice: l.OverridePrice,
		CreatedAt:     l.CreatedAt,
	}
}

// PromotionUsecase covers promotion CRUD plus product linkage, with the
// type/field consistency rules of the promotion consistency engine.
type PromotionUsecase interface {
	Create(ctx context.Context, tc TenantContext, input *CreatePromotionInput) (*PromotionOutput, error)
	List(ctx context.Context, tc TenantContext) ([]*PromotionOutput, error)
	Get(ctx context.Context, tc TenantContext, id int64) (*PromotionOutput, error)
	Update(ctx context.Context, tc TenantContext, id int64, input *UpdatePromotionInput) (*PromotionOutput, error)

	// Delete cascades to the promotion's links.
	Delete(ctx context.Context, tc TenantContext, id int64) error

	// LinkProduct enforces: promotion exists (ErrNotFound), product
	// exists (ErrReferencedNotFound), override-price rule
	// (ErrBusinessRule), pair not already linked (ErrConflict).
	LinkProduct(ctx context.Context, tc TenantContext, promotionID int64, input *LinkProductInput) (*PromotionProductOutput, error)

	ListLinks(ctx context.Context, tc TenantContext, promotionID int64) ([]*PromotionProductOutput, error)

	UnlinkProduct(ctx context.Context, tc TenantContext, promotionID, productID int64) error
}
