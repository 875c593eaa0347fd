package entity

import (
	"testing"
	"time"

	domainerrors "cardapio/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func f64Ptr(v float64) *float64 { return &v }

func TestPromotionMergeForUpdate(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	stored := Promotion{
		ID:              3,
		Name:            "Terça da Pizza",
		Type:            PromotionPercentDiscount,
		PercentDiscount: f64Ptr(15),
		StartsAt:        start,
		Active:          true,
	}

	newType := PromotionFixedPriceCombo
	merged := stored.MergeForUpdate(PromotionPatch{
		Type:       &newType,
		ComboPrice: f64Ptr(49.90),
	})

	assert.Equal(t, PromotionFixedPriceCombo, merged.Type)
	assert.Equal(t, 49.90, *merged.ComboPrice)
	// Untouched fields survive the merge.
	assert.Equal(t, "Terça da Pizza", merged.Name)
	assert.Equal(t, start, merged.StartsAt)
	// The stale percent value is still present; revalidation decides
	// whether the combination is acceptable.
	assert.NotNil(t, merged.PercentDiscount)

	// The stored value is untouched.
	assert.Equal(t, PromotionPercentDiscount, stored.Type)
	assert.Nil(t, stored.ComboPrice)
}

func TestPromotionValidateTypeFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		promotion Promotion
		wantErr   bool
	}{
		{
			name:      "percent discount with valid value",
			promotion: Promotion{Type: PromotionPercentDiscount, PercentDiscount: f64Ptr(10)},
		},
		{
			name:      "percent discount missing value",
			promotion: Promotion{Type: PromotionPercentDiscount},
			wantErr:   true,
		},
		{
			name:      "percent discount above 100",
			promotion: Promotion{Type: PromotionPercentDiscount, PercentDiscount: f64Ptr(150)},
			wantErr:   true,
		},
		{
			name:      "combo with price",
			promotion: Promotion{Type: PromotionFixedPriceCombo, ComboPrice: f64Ptr(39.90)},
		},
		{
			name:      "combo missing price",
			promotion: Promotion{Type: PromotionFixedPriceCombo},
			wantErr:   true,
		},
		{
			name:      "fixed price product needs no promotion level value",
			promotion: Promotion{Type: PromotionFixedPriceProduct},
		},
		{
			name:      "buy x pay y needs no promotion level value",
			promotion: Promotion{Type: PromotionBuyXPayY},
		},
		{
			name:      "unknown type",
			promotion: Promotion{Type: PromotionType("DESCONTO_MISTERIOSO")},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.promotion.ValidateTypeFields()
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPromotionProductValidateLinkPrice(t *testing.T) {
	t.Parallel()

	withPrice := PromotionProduct{OverridePrice: f64Ptr(9.90)}
	withoutPrice := PromotionProduct{}

	assert.NoError(t, withPrice.ValidateLinkPrice(PromotionFixedPriceProduct))
	assert.ErrorIs(t, withoutPrice.ValidateLinkPrice(PromotionFixedPriceProduct), domainerrors.ErrBusinessRule)

	assert.NoError(t, withoutPrice.ValidateLinkPrice(PromotionFixedPriceCombo))
	assert.ErrorIs(t, withPrice.ValidateLinkPrice(PromotionFixedPriceCombo), domainerrors.ErrBusinessRule)
	assert.ErrorIs(t, withPrice.ValidateLinkPrice(PromotionBuyXPayY), domainerrors.ErrBusinessRule)
}
