package entity

import (
	"time"

	domainerrors "cardapio/internal/domain/errors"
)

// PromotionType enumerates the supported promotion mechanics. The
// values are persisted as-is and enforced by a CHECK constraint in
// every tenant schema, so they must not change.
type PromotionType string

const (
	// PromotionPercentDiscount applies a percentage discount to linked products.
	PromotionPercentDiscount PromotionType = "DESCONTO_PERCENTUAL_PRODUTO"
	// PromotionFixedPriceProduct sells each linked product at its own override price.
	PromotionFixedPriceProduct PromotionType = "PRECO_FIXO_PRODUTO"
	// PromotionFixedPriceCombo sells the whole set of linked products at one price.
	PromotionFixedPriceCombo PromotionType = "COMBO_PRECO_FIXO"
	// PromotionBuyXPayY carries no extra value fields.
	PromotionBuyXPayY PromotionType = "LEVE_X_PAGUE_Y_PRODUTO"
)

// Valid reports whether t is one of the known promotion types.
func (t PromotionType) Valid() bool {
	switch t {
	case PromotionPercentDiscount, PromotionFixedPriceProduct, PromotionFixedPriceCombo, PromotionBuyXPayY:
		return true
	}

	return false
}

// Promotion is a time-bounded offer over one tenant's products. Which
// of the value fields must be present depends on Type; see
// ValidateTypeFields.
type Promotion struct {
	ID              int64
	Name            string
	Description     *string
	Type            PromotionType
	PercentDiscount *float64 // Required for DESCONTO_PERCENTUAL_PRODUTO, in (0, 100].
	ComboPrice      *float64 // Required for COMBO_PRECO_FIXO, positive.
	StartsAt        time.Time
	EndsAt          *time.Time // Open-ended when nil.
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PromotionPatch carries the fields of a partial promotion update.
// Nil means "leave unchanged".
type PromotionPatch struct {
	Name            *string
	Description     *string
	Type            *PromotionType
	PercentDiscount *float64
	ComboPrice      *float64
	StartsAt        *time.Time
	EndsAt          *time.Time
	Active          *bool
}

// Empty reports whether the patch changes nothing.
func (p PromotionPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Type == nil &&
		p.PercentDiscount == nil && p.ComboPrice == nil &&
		p.StartsAt == nil && p.EndsAt == nil && p.Active == nil
}

// ValidateTypeFields enforces the cross-field rules between Type and
// the value fields. PRECO_FIXO_PRODUTO and LEVE_X_PAGUE_Y_PRODUTO
// carry no promotion-level value field; their pricing lives on the
// product links.
func (p *Promotion) ValidateTypeFields() error {
	if !p.Type.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("tipo_promocao: unknown promotion type")
	}

	switch p.Type {
	case PromotionPercentDiscount:
		if p.PercentDiscount == nil {
			return domainerrors.ErrValidationFailed.WithDetails("valor_desconto_percentual: required for DESCONTO_PERCENTUAL_PRODUTO")
		}
		if *p.PercentDiscount <= 0 || *p.PercentDiscount > 100 {
			return domainerrors.ErrValidationFailed.WithDetails("valor_desconto_percentual: must be greater than 0 and at most 100")
		}
	case PromotionFixedPriceCombo:
		if p.ComboPrice == nil {
			return domainerrors.ErrValidationFailed.WithDetails("preco_promocional_combo: required for COMBO_PRECO_FIXO")
		}
		if *p.ComboPrice <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("preco_promocional_combo: must be positive")
		}
	case PromotionFixedPriceProduct, PromotionBuyXPayY:
		// No promotion-level value field.
	}

	return nil
}

// MergeForUpdate returns a copy of the stored promotion with the patch
// applied. The result is what must pass ValidateTypeFields before an
// update is written; keeping the merge separate makes the
// merge-then-validate step testable on its own.
func (p Promotion) MergeForUpdate(patch PromotionPatch) Promotion {
	merged := p
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Description != nil {
		merged.Description = patch.Description
	}
	if patch.Type != nil {
		merged.Type = *patch.Type
	}
	if patch.PercentDiscount != nil {
		merged.PercentDiscount = patch.PercentDiscount
	}
	if patch.ComboPrice != nil {
		merged.ComboPrice = patch.ComboPrice
	}
	if patch.StartsAt != nil {
		merged.StartsAt = *patch.StartsAt
	}
	if patch.EndsAt != nil {
		merged.EndsAt = patch.EndsAt
	}
	if patch.Active != nil {
		merged.Active = *patch.Active
	}

	return merged
}

// PromotionProduct links one product into a promotion, with the combo
// quantity and, for PRECO_FIXO_PRODUTO promotions only, the per-product
// override price. A product appears at most once per promotion.
type PromotionProduct struct {
	ID            int64
	PromotionID   int64
	ProductID     int64
	ComboQuantity int      // Positive, defaults to 1.
	OverridePrice *float64 // Required iff the promotion type is PRECO_FIXO_PRODUTO.
	CreatedAt     time.Time
}

// ValidateLinkPrice enforces the override-price rule for a link against
// the owning promotion's type.
func (l *PromotionProduct) ValidateLinkPrice(promotionType PromotionType) error {
	if promotionType == PromotionFixedPriceProduct && l.OverridePrice == nil {
		return domainerrors.ErrBusinessRule.WithDetails("preco_promocional_produto_individual: required for PRECO_FIXO_PRODUTO promotions")
	}
	if promotionType != PromotionFixedPriceProduct && l.OverridePrice != nil {
		return domainerrors.ErrBusinessRule.WithDetails("preco_promocional_produto_individual: only allowed for PRECO_FIXO_PRODUTO promotions")
	}

	return nil
}
