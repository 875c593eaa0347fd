package usecase

import (
	"context"
	"time"

	"cardapio/internal/domain/entity"
)

// ProvisionTenantInput is the registration payload for a new tenant.
// Field formats are checked by the request validator; slug and schema
// name additionally go through entity.ParseIdentifier before any SQL
// is built from them.
type ProvisionTenantInput struct {
	Slug         string  `json:"identificador_url" validate:"required,identifier"`
	DisplayName  string  `json:"nome_fantasia" validate:"required,min=2"`
	Email        string  `json:"email_responsavel" validate:"required,email"`
	Password     string  `json:"senha_responsavel" validate:"required,min=8"`
	SchemaName   string  `json:"nome_schema_db" validate:"required,identifier"`
	LegalName    *string `json:"razao_social" validate:"omitempty,min=2"`
	CNPJ         *string `json:"cnpj" validate:"omitempty,cnpj"`
	Address      *string `json:"endereco_completo" validate:"omitempty,min=5"`
	Phone        *string `json:"telefone_contato" validate:"omitempty,min=8"`
	LogoPath     *string `json:"path_logo" validate:"omitempty,url"`
	PrimaryHex   *string `json:"cor_primaria_hex" validate:"omitempty,hexcolor"`
	SecondaryHex *string `json:"cor_secundaria_hex" validate:"omitempty,hexcolor"`
}

// UpdateTenantInput is a partial registry update. Identity fields
// (slug, schema name, email) are not part of it.
type UpdateTenantInput struct {
	DisplayName  *string         `json:"nome_fantasia" validate:"omitempty,min=2"`
	LegalName    *string         `json:"razao_social" validate:"omitempty,min=2"`
	CNPJ         *string         `json:"cnpj" validate:"omitempty,cnpj"`
	Address      *string         `json:"endereco_completo" validate:"omitempty,min=5"`
	Phone        *string         `json:"telefone_contato" validate:"omitempty,min=8"`
	LogoPath     *string         `json:"path_logo" validate:"omitempty,url"`
	PrimaryHex   *string         `json:"cor_primaria_hex" validate:"omitempty,hexcolor"`
	SecondaryHex *string         `json:"cor_secundaria_hex" validate:"omitempty,hexcolor"`
	OpeningTime  *string         `json:"horario_abertura" validate:"omitempty,datetime=15:04"`
	ClosingTime  *string         `json:"horario_fechamento" validate:"omitempty,datetime=15:04"`
	OpenDays     map[string]bool `json:"dias_funcionamento" validate:"omitempty"`
}

// TenantOutput is the registry row without credentials.
type TenantOutput struct {
	ID           int64           `json:"id"`
	Slug         string          `json:"identificador_url"`
	DisplayName  string          `json:"nome_fantasia"`
	LegalName    *string         `json:"razao_social,omitempty"`
	CNPJ         *string         `json:"cnpj,omitempty"`
	Address      *string         `json:"endereco_completo,omitempty"`
	Phone        *string         `json:"telefone_contato,omitempty"`
	LogoPath     *string         `json:"path_logo,omitempty"`
	PrimaryHex   *string         `json:"cor_primaria_hex,omitempty"`
	SecondaryHex *string         `json:"cor_secundaria_hex,omitempty"`
	OpeningTime  *string         `json:"horario_abertura,omitempty"`
	ClosingTime  *string         `json:"horario_fechamento,omitempty"`
	OpenDays     map[string]bool `json:"dias_funcionamento,omitempty"`
	SchemaName   string          `json:"nome_schema_db"`
	Email        string          `json:"email_responsavel"`
	Active       bool            `json:"ativo"`
	CreatedAt    time.Time       `json:"data_criacao"`
	UpdatedAt    time.Time       `json:"data_atualizacao"`
}

// NewTenantOutput maps a tenant entity to its API shape, dropping the
// password hash.
func NewTenantOutput(t *entity.Tenant) *TenantOutput {
	return &TenantOutput{
		ID:           t.ID,
		Slug:         t.Slug.String(),
		DisplayName:  t.DisplayName,
		LegalName:    t.LegalName,
		CNPJ:         t.CNPJ,
		Address:      t.Address,
		Phone:        t.Phone,
		LogoPath:     t.LogoPath,
		PrimaryHex:   t.PrimaryHex,
		SecondaryHex: t.SecondaryHex,
		OpeningTime:  t.OpeningTime,
		ClosingTime:  t.ClosingTime,
		OpenDays:     t.OpenDays,
		SchemaName:   t.SchemaName.String(),
		Email:        t.Email,
		Active:       t.Active,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// TenantUsecase covers the tenant lifecycle: provisioning and registry
// maintenance. Provision is the only operation in the system that
// performs schema DDL.
type TenantUsecase interface {
	// Provision atomically creates the registry row, the tenant schema
	// and all menu tables. On any failure nothing survives.
	Provision(ctx context.Context, input *ProvisionTenantInput) (*TenantOutput, error)

	Get(ctx context.Context, tc TenantContext) (*TenantOutput, error)

	Update(ctx context.Context, tc TenantContext, input *UpdateTenantInput) (*TenantOutput, error)

	// UpdateLogo stores the uploaded logo's public path.
	UpdateLogo(ctx context.Context, tc TenantContext, logoPath string) (*TenantOutput, error)
}
