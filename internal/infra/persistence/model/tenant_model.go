// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"cardapio/internal/domain/entity"
)

// OpenDaysMap stores the weekly opening days as a JSONB column keyed
// dom through sab.
type OpenDaysMap map[string]bool

// Value implements driver.Valuer for JSONB storage.
func (m OpenDaysMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (m *OpenDaysMap) Scan(value any) error {
	if value == nil {
		*m = nil

		return nil
	}

	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, m)
	case string:
		return json.Unmarshal([]byte(data), m)
	default:
		return errors.Errorf("unsupported type %T for OpenDaysMap", value)
	}
}

// TenantModel mirrors the shared 'public.restaurantes' registry table.
type TenantModel struct {
	ID           int64       `gorm:"column:id;primaryKey"`
	Slug         string      `gorm:"column:identificador_url;uniqueIndex;not null"`
	DisplayName  string      `gorm:"column:nome_fantasia;not null"`
	LegalName    *string     `gorm:"column:razao_social"`
	CNPJ         *string     `gorm:"column:cnpj"`
	Address      *string     `gorm:"column:endereco_completo"`
	Phone        *string     `gorm:"column:telefone_contato"`
	LogoPath     *string     `gorm:"column:path_logo"`
	PrimaryHex   *string     `gorm:"column:cor_primaria_hex"`
	SecondaryHex *string     `gorm:"column:cor_secundaria_hex"`
	OpeningTime  *string     `gorm:"column:horario_abertura"`
	ClosingTime  *string     `gorm:"column:horario_fechamento"`
	OpenDays     OpenDaysMap `gorm:"column:dias_funcionamento;type:jsonb"`
	SchemaName   string      `gorm:"column:nome_schema_db;uniqueIndex;not null"`
	Email        string      `gorm:"column:email_responsavel;uniqueIndex;not null"`
	PasswordHash string      `gorm:"column:hash_senha_responsavel;not null"`
	Active       bool        `gorm:"column:ativo;default:true"`
	CreatedAt    time.Time   `gorm:"column:data_criacao;autoCreateTime"`
	UpdatedAt    time.Time   `gorm:"column:data_atualizacao;autoUpdateTime"`
}

// TableName explicitly sets the schema-qualified table name for GORM.
func (TenantModel) TableName() string {
	return "public.restaurantes"
}

// ToTenantDomain maps the persistence model back to a pure domain entity.
func ToTenantDomain(m *TenantModel) *entity.Tenant {
	return &entity.Tenant{
		ID:           m.ID,
		Slug:         entity.Identifier(m.Slug),
		DisplayName:  m.DisplayName,
		LegalName:    m.LegalName,
		CNPJ:         m.CNPJ,
		Address:      m.Address,
		Phone:        m.Phone,
		LogoPath:     m.LogoPath,
		PrimaryHex:   m.PrimaryHex,
		SecondaryHex: m.SecondaryHex,
		OpeningTime:  m.OpeningTime,
		ClosingTime:  m.ClosingTime,
		OpenDays:     m.OpenDays,
		SchemaName:   entity.Identifier(m.SchemaName),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromTenantDomain maps a domain entity to its persistence model.
func FromTenantDomain(t *entity.Tenant) *TenantModel {
	return &TenantModel{
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
		PasswordHash: t.PasswordHash,
		Active:       t.Active,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
