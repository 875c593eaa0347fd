package model

import (
	"time"

	"cardapio/internal/domain/entity"
)

// The menu models carry no TableName method on purpose: every query
// targets one tenant's schema, so repositories always address them
// through an explicit schema-qualified Table() call.

// CategoryModel mirrors a tenant schema's 'categorias' table.
type CategoryModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:nome;not null"`
	Description  *string   `gorm:"column:descricao"`
	DisplayOrder int       `gorm:"column:ordem_exibicao;default:0"`
	Active       bool      `gorm:"column:ativo;default:true"`
	CreatedAt    time.Time `gorm:"column:data_criacao;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:data_atualizacao;autoUpdateTime"`
}

// ProductModel mirrors a tenant schema's 'produtos' table.
type ProductModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	CategoryID   int64     `gorm:"column:categoria_id;not null"`
	Name         string    `gorm:"column:nome;not null"`
	Description  *string   `gorm:"column:descricao"`
	Price        float64   `gorm:"column:preco;not null"`
	PhotoURL     *string   `gorm:"column:url_foto"`
	Active       bool      `gorm:"column:ativo;default:true"`
	DisplayOrder int       `gorm:"column:ordem_exibicao;default:0"`
	CreatedAt    time.Time `gorm:"column:data_criacao;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:data_atualizacao;autoUpdateTime"`
}

// PromotionModel mirrors a tenant schema's 'promocoes' table.
type PromotionModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	Name            string     `gorm:"column:nome_promocao;not null"`
	Description     *string    `gorm:"column:descricao_promocao"`
	Type            string     `gorm:"column:tipo_promocao;not null"`
	PercentDiscount *float64   `gorm:"column:valor_desconto_percentual"`
	ComboPrice      *float64   `gorm:"column:preco_promocional_combo"`
	StartsAt        time.Time  `gorm:"column:data_inicio;not null"`
	EndsAt          *time.Time `gorm:"column:data_fim"`
	Active          bool       `gorm:"column:ativo;default:true"`
	CreatedAt       time.Time  `gorm:"column:data_criacao;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:data_atualizacao;autoUpdateTime"`
}

// PromotionProductModel mirrors a tenant schema's 'promocao_produtos' table.
type PromotionProductModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	PromotionID   int64     `gorm:"column:promocao_id;not null"`
	ProductID     int64     `gorm:"column:produto_id;not null"`
	ComboQuantity int       `gorm:"column:quantidade_no_combo;default:1"`
	OverridePrice *float64  `gorm:"column:preco_promocional_produto_individual"`
	CreatedAt     time.Time `gorm:"column:data_criacao;autoCreateTime"`
}

// ToCategoryDomain maps the persistence model to a domain entity.
func ToCategoryDomain(m *CategoryModel) *entity.Category {
	return &entity.Category{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		DisplayOrder: m.DisplayOrder,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromCategoryDomain maps a domain entity to its persistence model.
func FromCategoryDomain(c *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToProductDomain maps the persistence model to a domain entity.
func ToProductDomain(m *ProductModel) *entity.Product {
	return &entity.Product{
		ID:           m.ID,
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		PhotoURL:     m.PhotoURL,
		Active:       m.Active,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromProductDomain maps a domain entity to its persistence model.
func FromProductDomain(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		PhotoURL:     p.PhotoURL,
		Active:       p.Active,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToPromotionDomain maps the persistence model to a domain entity.
func ToPromotionDomain(m *PromotionModel) *entity.Promotion {
	return &entity.Promotion{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		Type:            entity.PromotionType(m.Type),
		PercentDiscount: m.PercentDiscount,
		ComboPrice:      m.ComboPrice,
		StartsAt:        m.StartsAt,
		EndsAt:          m.EndsAt,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromPromotionDomain maps a domain entity to its persistence model.
func FromPromotionDomain(p *entity.Promotion) *PromotionModel {
	return &PromotionModel{
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

// ToPromotionProductDomain maps the persistence model to a domain entity.
func ToPromotionProductDomain(m *PromotionProductModel) *entity.PromotionProduct {
	return &entity.PromotionProduct{
		ID:            m.ID,
		PromotionID:   m.PromotionID,
		ProductID:     m.ProductID,
		ComboQuantity: m.ComboQuantity,
		OverridePrice: m.OverridePrice,
		CreatedAt:     m.CreatedAt,
	}
}

// FromPromotionProductDomain maps a domain entity to its persistence model.
func FromPromotionProductDomain(l *entity.PromotionProduct) *PromotionProductModel {
	return &PromotionProductModel{
		ID:            l.ID,
		PromotionID:   l.PromotionID,
		ProductID:     l.ProductID,
		ComboQuantity: l.ComboQuantity,
		OverridePrice: l.OverridePrice,
		CreatedAt:     l.CreatedAt,
	}
}
