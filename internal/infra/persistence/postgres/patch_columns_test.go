package postgres

import (
	"testing"
	"time"

	"cardapio/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func f64Ptr(v float64) *float64 { return &v }

func TestTenantPatchColumns(t *testing.T) {
	t.Parallel()

	t.Run("empty patch yields no columns", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tenantPatchColumns(entity.TenantPatch{}))
	})

	t.Run("only present fields become columns", func(t *testing.T) {
		t.Parallel()

		updates := tenantPatchColumns(entity.TenantPatch{
			DisplayName: strPtr("Pizzaria Bella"),
			OpeningTime: strPtr("11:00"),
			OpenDays:    map[string]bool{"ter": true},
		})

		assert.Len(t, updates, 3)
		assert.Equal(t, "Pizzaria Bella", updates["nome_fantasia"])
		assert.Equal(t, "11:00", updates["horario_abertura"])
		assert.Contains(t, updates, "dias_funcionamento")
		assert.NotContains(t, updates, "cnpj")
	})
}

func TestPromotionPatchColumns(t *testing.T) {
	t.Parallel()

	comboType := entity.PromotionFixedPriceCombo
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	updates := promotionPatchColumns(entity.PromotionPatch{
		Type:       &comboType,
		ComboPrice: f64Ptr(49.90),
		StartsAt:   &start,
	})

	assert.Len(t, updates, 3)
	assert.Equal(t, "COMBO_PRECO_FIXO", updates["tipo_promocao"])
	assert.Equal(t, 49.90, updates["preco_promocional_combo"])
	assert.Equal(t, start, updates["data_inicio"])
	assert.NotContains(t, updates, "valor_desconto_percentual")
}
