package impl

import (
	"context"
	"log/slog"
	"time"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"
	"cardapio/internal/domain/repository"
	"cardapio/internal/usecase"

	"github.com/pkg/errors"
)

// promotionService implements the PromotionUsecase interface. All the
// type/value consistency rules live here and in the entity validators:
// nothing reaches a repository without passing them first.
type promotionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPromotionService is the constructor for promotionService.
func NewPromotionService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PromotionUsecase {
	return &promotionService{
		txManager: txManager,
		logger:    logger,
	}
}

// Create adds a promotion after checking the cross-field rules for its type.
func (srv *promotionService) Create(ctx context.Context, tc usecase.TenantContext, input *usecase.CreatePromotionInput) (*usecase.PromotionOutput, error) {
	srv.logger.Info("Creating promotion", "tenantID", tc.TenantID, "name", input.Name, "type", input.Type)

	promotion := &entity.Promotion{
		Name:            input.Name,
		Description:     input.Description,
		Type:            entity.PromotionType(input.Type),
		PercentDiscount: input.PercentDiscount,
		ComboPrice:      input.ComboPrice,
		StartsAt:        input.StartsAt,
		EndsAt:          input.EndsAt,
		Active:          true,
	}
	if input.Active != nil {
		promotion.Active = *input.Active
	}

	if err := promotion.ValidateTypeFields(); err != nil {
		return nil, errors.Wrap(err, "invalid promotion")
	}
	if err := validatePromotionWindow(promotion.StartsAt, promotion.EndsAt); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Promotions().Create(ctx, tc.Schema, promotion); err != nil {
			return errors.Wrap(err, "failed to create promotion")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create promotion")
	}

	return usecase.NewPromotionOutput(promotion), nil
}

// List returns all promotions of the tenant.
func (srv *promotionService) List(ctx context.Context, tc usecase.TenantContext) ([]*usecase.PromotionOutput, error) {
	var promotions []*entity.Promotion

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Promotions().FindAll(ctx, tc.Schema)
		if err != nil {
			return errors.Wrap(err, "failed to list promotions")
		}
		promotions = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	outputs := make([]*usecase.PromotionOutput, 0, len(promotions))
	for _, promotion := range promotions {
		outputs = append(outputs, usecase.NewPromotionOutput(promotion))
	}

	return outputs, nil
}

// Get returns one promotion by ID.
func (srv *promotionService) Get(ctx context.Context, tc usecase.TenantContext, id int64) (*usecase.PromotionOutput, error) {
	var promotion *entity.Promotion

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Promotions().FindByID(ctx, tc.Schema, id)
		if err != nil {
			return errors.Wrap(err, "failed to find promotion")
		}
		promotion = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get promotion")
	}

	return usecase.NewPromotionOutput(promotion), nil
}

// Update applies a partial promotion update. The stored row is merged
// with the patch and the merged result revalidated, so a type change
// cannot leave stale value fields behind unchecked.
func (srv *promotionService) Update(ctx context.Context, tc usecase.TenantContext, id int64, input *usecase.UpdatePromotionInput) (*usecase.PromotionOutput, error) {
	srv.logger.Info("Updating promotion", "tenantID", tc.TenantID, "promotionID", id)

	patch := entity.PromotionPatch{
		Name:            input.Name,
		Description:     input.Description,
		PercentDiscount: input.PercentDiscount,
		ComboPrice:      input.ComboPrice,
		StartsAt:        input.StartsAt,
		EndsAt:          input.EndsAt,
		Active:          input.Active,
	}
	if input.Type != nil {
		promotionType := entity.PromotionType(*input.Type)
		patch.Type = &promotionType
	}
	if patch.Empty() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no fields to update")
	}

	var promotion *entity.Promotion

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		promotionRepo := repoFactory.Promotions()

		// 1. Load the current row.
		current, err := promotionRepo.FindByID(ctx, tc.Schema, id)
		if err != nil {
			return errors.Wrap(err, "failed to find promotion")
		}

		// 2. Merge and revalidate before writing anything.
		merged := current.MergeForUpdate(patch)
		if err := merged.ValidateTypeFields(); err != nil {
			return errors.Wrap(err, "invalid promotion update")
		}
		if err := validatePromotionWindow(merged.StartsAt, merged.EndsAt); err != nil {
			return err
		}

		// 3. Write the patch.
		updated, err := promotionRepo.Update(ctx, tc.Schema, id, patch)
		if err != nil {
			return errors.Wrap(err, "failed to update promotion")
		}
		promotion = updated

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update promotion")
	}

	return usecase.NewPromotionOutput(promotion), nil
}

// Delete removes a promotion and, through the schema's cascade, its links.
func (srv *promotionService) Delete(ctx context.Context, tc usecase.TenantContext, id int64) error {
	srv.logger.Info("Deleting promotion", "tenantID", tc.TenantID, "promotionID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Promotions().Delete(ctx, tc.Schema, id); err != nil {
			return errors.Wrap(err, "failed to delete promotion")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete promotion")
	}

	return nil
}

// LinkProduct ties a product into a promotion. The promotion must
// exist, the product must exist, and the override price must agree
// with the promotion's type.
func (srv *promotionService) LinkProduct(ctx context.Context, tc usecase.TenantContext, promotionID int64, input *usecase.LinkProductInput) (*usecase.PromotionProductOutput, error) {
	srv.logger.Info("Linking product to promotion", "tenantID", tc.TenantID, "promotionID", promotionID, "productID", input.ProductID)

	link := &entity.PromotionProduct{
		PromotionID:   promotionID,
		ProductID:     input.ProductID,
		ComboQuantity: 1,
		OverridePrice: input.OverridePrice,
	}
	if input.ComboQuantity != nil {
		link.ComboQuantity = *input.ComboQuantity
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. The promotion anchors the request path, so absence is a plain 404.
		promotion, err := repoFactory.Promotions().FindByID(ctx, tc.Schema, promotionID)
		if err != nil {
			return errors.Wrap(err, "failed to find promotion")
		}

		// 2. The product is a referenced resource from the body.
		if _, err := repoFactory.Products().FindByID(ctx, tc.Schema, input.ProductID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return errors.Wrap(domainerrors.ErrReferencedNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 3. Override price only for PRECO_FIXO_PRODUTO.
		if err := link.ValidateLinkPrice(promotion.Type); err != nil {
			return err
		}

		// 4. Insert; the unique pair constraint catches duplicates.
		if err := repoFactory.Promotions().CreateLink(ctx, tc.Schema, link); err != nil {
			return errors.Wrap(err, "failed to link product")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to link product to promotion")
	}

	return usecase.NewPromotionProductOutput(link), nil
}

// ListLinks returns the products linked to a promotion.
func (srv *promotionService) ListLinks(ctx context.Context, tc usecase.TenantContext, promotionID int64) ([]*usecase.PromotionProductOutput, error) {
	var links []*entity.PromotionProduct

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		promotionRepo := repoFactory.Promotions()

		if _, err := promotionRepo.FindByID(ctx, tc.Schema, promotionID); err != nil {
			return errors.Wrap(err, "failed to find promotion")
		}

		found, err := promotionRepo.FindLinks(ctx, tc.Schema, promotionID)
		if err != nil {
			return errors.Wrap(err, "failed to list promotion links")
		}
		links = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotion links")
	}

	outputs := make([]*usecase.PromotionProductOutput, 0, len(links))
	for _, link := range links {
		outputs = append(outputs, usecase.NewPromotionProductOutput(link))
	}

	return outputs, nil
}

// UnlinkProduct removes one product from a promotion.
func (srv *promotionService) UnlinkProduct(ctx context.Context, tc usecase.TenantContext, promotionID, productID int64) error {
	srv.logger.Info("Unlinking product from promotion", "tenantID", tc.TenantID, "promotionID", promotionID, "productID", productID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Promotions().DeleteLink(ctx, tc.Schema, promotionID, productID); err != nil {
			return errors.Wrap(err, "failed to unlink product")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to unlink product from promotion")
	}

	return nil
}

// validatePromotionWindow rejects an end date earlier than the start date.
func validatePromotionWindow(startsAt time.Time, endsAt *time.Time) error {
	if endsAt != nil && endsAt.Before(startsAt) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "data_fim: must not be earlier than data_inicio")
	}

	return nil
}
