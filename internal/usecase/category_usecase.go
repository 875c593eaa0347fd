package usecase

import (
	"context"
	"time"

	"cardapio/internal/domain/entity"
)

// CreateCategoryInput is the payload to add a menu category. Display
// order defaults to 0 and active to true when omitted.
type CreateCategoryInput struct {
	Name         string  `json:"nome" validate:"required,min=2"`
	Description  *string `json:"descricao" validate:"omitempty,min=3"`
	DisplayOrder *int    `json:"ordem_exibicao"`
	Active       *bool   `json:"ativo"`
}

// UpdateCategoryInput is a partial category update.
type UpdateCategoryInput struct {
	Name         *string `json:"nome" validate:"omitempty,min=2"`
	Description  *string `json:"descricao" validate:"omitempty,min=3"`
	DisplayOrder *int    `json:"ordem_exibicao"`
	Active       *bool   `json:"ativo"`
}

// CategoryOutput is the API shape of a category.
type CategoryOutput struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nome"`
	Description  *string   `json:"descricao,omitempty"`
	DisplayOrder int       `json:"ordem_exibicao"`
	Active       bool      `json:"ativo"`
	CreatedAt    time.Time `json:"data_criacao"`
	UpdatedAt    time.Time `json:"data_atualizacao"`
}

// NewCategoryOutput maps a category entity to its API shape.
func NewCategoryOutput(c *entity.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// CategoryUsecase covers CRUD over one tenant's menu categories.
type CategoryUsecase interface {
	Create(ctx context.Context, tc TenantContext, input *CreateCategoryInput) (*CategoryOutput, error)
	List(ctx context.Context, tc TenantContext) ([]*CategoryOutput, error)
	Get(ctx context.Context, tc TenantContext, id int64) (*CategoryOutput, error)
	Update(ctx context.Context, tc TenantContext, id int64, input *UpdateCategoryInput) (*CategoryOutput, error)

	// Delete fails with domainerrors.ErrResourceInUse while any product
	// references the category.
	Delete(ctx context.Context, tc TenantContext, id int64) error
}
