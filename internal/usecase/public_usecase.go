package usecase

import (
	"context"
	"time"

	"cardapio/internal/domain/entity"
)

// PublicProfileOutput exposes the tenant data a visitor can see. No
// credentials, no schema name.
type PublicProfileOutput struct {
	DisplayName  string          `json:"nome_fantasia"`
	Address      *string         `json:"endereco_completo,omitempty"`
	Phone        *string         `json:"telefone_contato,omitempty"`
	LogoPath     *string         `json:"path_logo,omitempty"`
	PrimaryHex   *string         `json:"cor_primaria_hex,omitempty"`
	SecondaryHex *string         `json:"cor_secundaria_hex,omitempty"`
	OpeningTime  *string         `json:"horario_abertura,omitempty"`
	ClosingTime  *string         `json:"horario_fechamento,omitempty"`
	OpenDays     map[string]bool `json:"dias_funcionamento,omitempty"`
	OpenNow      bool            `json:"is_aberto_agora"`
	OpenText     string          `json:"texto_status_abertura"`
}

// PublicProductOutput is a product as a menu visitor sees it, with any
// active promotions attached.
type PublicProductOutput struct {
	ID           int64                    `json:"id"`
	Name         string                   `json:"nome"`
	Description  *string                  `json:"descricao,omitempty"`
	Price        float64                  `json:"preco"`
	PhotoURL     *string                  `json:"url_foto,omitempty"`
	DisplayOrder int                      `json:"ordem_exibicao"`
	Promotions   []*PublicPromotionOutput `json:"promocoes,omitempty"`
}

// PublicPromotionOutput is the slice of a promotion relevant to one
// product on the public menu.
type PublicPromotionOutput struct {
	ID              int64    `json:"id"`
	Name            string   `json:"nome_promocao"`
	Description     *string  `json:"descricao_promocao,omitempty"`
	Type            string   `json:"tipo_promocao"`
	PercentDiscount *float64 `json:"valor_desconto_percentual,omitempty"`
	ComboPrice      *float64 `json:"preco_promocional_combo,omitempty"`
	ComboQuantity   int      `json:"quantidade_no_combo"`
	OverridePrice   *float64 `json:"preco_promocional_produto_individual,omitempty"`
}

// PublicCategoryOutput groups the visible products of one category.
type PublicCategoryOutput struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"nome"`
	Description  *string                `json:"descricao,omitempty"`
	DisplayOrder int                    `json:"ordem_exibicao"`
	Products     []*PublicProductOutput `json:"produtos"`
}

// PublicMenuOutput is the full menu payload served by slug, assembled
// from active rows only.
type PublicMenuOutput struct {
	Profile    *PublicProfileOutput    `json:"restaurante"`
	Categories []*PublicCategoryOutput `json:"categorias"`
}

// NewPublicProfileOutput maps a tenant to its public shape, evaluating
// the open/closed status at the given instant.
func NewPublicProfileOutput(t *entity.Tenant, now time.Time) *PublicProfileOutput {
	status := t.OpenStatusAt(now)
	return &PublicProfileOutput{
		DisplayName:  t.DisplayName,
		Address:      t.Address,
		Phone:        t.Phone,
		LogoPath:     t.LogoPath,
		PrimaryHex:   t.PrimaryHex,
		SecondaryHex: t.SecondaryHex,
		OpeningTime:  t.OpeningTime,
		ClosingTime:  t.ClosingTime,
		OpenDays:     t.OpenDays,
		OpenNow:      status.Open,
		OpenText:     status.Text,
	}
}

// PublicUsecase serves the unauthenticated menu view.
type PublicUsecase interface {
	// Menu resolves an active tenant by slug and assembles its menu.
	// Unknown or inactive slugs yield ErrNotFound.
	Menu(ctx context.Context, slug string) (*PublicMenuOutput, error)
}
