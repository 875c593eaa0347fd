package usecase

import (
	"context"
	"time"

	"cardapio/internal/domain/entity"
)

// CreateProductInput is the payload to add a menu item. The category
// must exist in the tenant's schema.
type CreateProductInput struct {
	Name         string  `json:"nome" validate:"required,min=2"`
	Description  *string `json:"descricao" validate:"omitempty,min=3"`
	Price        float64 `json:"preco" validate:"required,gt=0"`
	CategoryID   int64   `json:"categoria_id" validate:"required,gt=0"`
	PhotoURL     *string `json:"url_foto" validate:"omitempty,url"`
	DisplayOrder *int    `json:"ordem_exibicao"`
	Active       *bool   `json:"ativo"`
}

// UpdateProductInput is a partial product update.
type UpdateProductInput struct {
	Name         *string  `json:"nome" validate:"omitempty,min=2"`
	Description  *string  `json:"descricao" validate:"omitempty,min=3"`
	Price        *float64 `json:"preco" validate:"omitempty,gt=0"`
	CategoryID   *int64   `json:"categoria_id" validate:"omitempty,gt=0"`
	PhotoURL     *string  `json:"url_foto" validate:"omitempty,url"`
	DisplayOrder *int     `json:"ordem_exibicao"`
	Active       *bool    `json:"ativo"`
}

// ProductOutput is the API shape of a product.
type ProductOutput struct {
	ID           int64     `json:"id"`
	CategoryID   int64     `json:"categoria_id"`
	Name         string    `json:"nome"`
	Description  *string   `json:"descricao,omitempty"`
	Price        float64   `json:"preco"`
	PhotoURL     *string   `json:"url_foto,omitempty"`
	Active       bool      `json:"ativo"`
	DisplayOrder int       `json:"ordem_exibicao"`
	CreatedAt    time.Time `json:"data_criacao"`
	UpdatedAt    time.Time `json:"data_atualizacao"`
}

// NewProductOutput maps a product entity to its API shape.
func NewProductOutput(p *entity.Product) *ProductOutput {
	return &ProductOutput{
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

// ProductUsecase covers CRUD over one tenant's menu products.
type ProductUsecase interface {
	// Create requires an existing category; the schema's foreign key is
	// the arbiter and a violation surfaces as ErrInvalidReference.
	Create(ctx context.Context, tc TenantContext, input *CreateProductInput) (*ProductOutput, error)
	List(ctx context.Context, tc TenantContext, categoryID *int64) ([]*ProductOutput, error)
	Get(ctx context.Context, tc TenantContext, id int64) (*ProductOutput, error)
	Update(ctx context.Context, tc TenantContext, id int64, input *UpdateProductInput) (*ProductOutput, error)

	// Delete fails with domainerrors.ErrResourceInUse while any promotion
	// link references the product.
	Delete(ctx context.Context, tc TenantContext, id int64) error
}
