package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"
	"cardapio/internal/domain/repository"
	"cardapio/internal/domain/service"
	"cardapio/internal/usecase"

	"github.com/pkg/errors"
)

// publicService implements the PublicUsecase interface: the one read
// path that resolves a tenant by slug instead of by token.
type publicService struct {
	txManager repository.TransactionManager
	menuCache service.MenuCache
	now       func() time.Time
	logger    *slog.Logger
}

// NewPublicService is the constructor for publicService.
func NewPublicService(
	txManager repository.TransactionManager,
	menuCache service.MenuCache,
	logger *slog.Logger,
) usecase.PublicUsecase {
	return &publicService{
		txManager: txManager,
		menuCache: menuCache,
		now:       time.Now,
		logger:    logger,
	}
}

// Menu assembles the public menu for a slug: active categories with
// their active products, each product carrying its currently running
// promotions. Cached whole for a short TTL.
func (srv *publicService) Menu(ctx context.Context, slug string) (*usecase.PublicMenuOutput, error) {
	parsed, err := entity.ParseIdentifier(slug)
	if err != nil {
		// Malformed slugs cannot name any tenant.
		return nil, errors.Wrap(domainerrors.ErrNotFound, "no such restaurant")
	}

	if payload, err := srv.menuCache.GetMenu(ctx, parsed.String()); err == nil {
		var cached usecase.PublicMenuOutput
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		srv.logger.Warn("discarding corrupt menu cache entry", "slug", parsed)
	} else if !errors.Is(err, service.ErrCacheMiss) {
		srv.logger.Warn("menu cache read failed", "slug", parsed, "error", err)
	}

	menu, err := srv.assembleMenu(ctx, parsed)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(menu); err == nil {
		if err := srv.menuCache.SetMenu(ctx, parsed.String(), payload); err != nil {
			srv.logger.Warn("menu cache write failed", "slug", parsed, "error", err)
		}
	}

	return menu, nil
}

func (srv *publicService) assembleMenu(ctx context.Context, slug entity.Identifier) (*usecase.PublicMenuOutput, error) {
	var (
		tenant     *entity.Tenant
		categories []*entity.Category
		products   []*entity.Product
		promotions []*entity.Promotion
		links      = make(map[int64][]*entity.PromotionProduct)
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Tenants().FindActiveBySlug(ctx, slug)
		if err != nil {
			return errors.Wrap(err, "failed to resolve tenant by slug")
		}
		tenant = found

		schema := tenant.SchemaName

		if categories, err = repoFactory.Categories().FindAll(ctx, schema); err != nil {
			return errors.Wrap(err, "failed to load categories")
		}
		if products, err = repoFactory.Products().FindAll(ctx, schema, nil); err != nil {
			return errors.Wrap(err, "failed to load products")
		}
		if promotions, err = repoFactory.Promotions().FindAll(ctx, schema); err != nil {
			return errors.Wrap(err, "failed to load promotions")
		}

		for _, promotion := range promotions {
			if !promotionRunning(promotion, srv.now()) {
				continue
			}
			promotionLinks, err := repoFactory.Promotions().FindLinks(ctx, schema, promotion.ID)
			if err != nil {
				return errors.Wrap(err, "failed to load promotion links")
			}
			links[promotion.ID] = promotionLinks
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to assemble public menu")
	}

	return buildMenu(tenant, categories, products, promotions, links, srv.now()), nil
}

// promotionRunning reports whether a promotion applies right now:
// active, started, and not yet past its optional end date.
func promotionRunning(p *entity.Promotion, now time.Time) bool {
	if !p.Active || p.StartsAt.After(now) {
		return false
	}
	if p.EndsAt != nil && p.EndsAt.Before(now) {
		return false
	}

	return true
}

// buildMenu groups active products under active categories and attaches
// each product's running promotions.
func buildMenu(
	tenant *entity.Tenant,
	categories []*entity.Category,
	products []*entity.Product,
	promotions []*entity.Promotion,
	links map[int64][]*entity.PromotionProduct,
	now time.Time,
) *usecase.PublicMenuOutput {
	byID := make(map[int64]*entity.Promotion, len(promotions))
	for _, promotion := range promotions {
		byID[promotion.ID] = promotion
	}

	// Promotions per product, keeping the repository's promotion order.
	productPromos := make(map[int64][]*usecase.PublicPromotionOutput)
	for _, promotion := range promotions {
		for _, link := range links[promotion.ID] {
			productPromos[link.ProductID] = append(productPromos[link.ProductID], &usecase.PublicPromotionOutput{
				ID:              promotion.ID,
				Name:            promotion.Name,
				Description:     promotion.Description,
				Type:            string(promotion.Type),
				PercentDiscount: promotion.PercentDiscount,
				ComboPrice:      promotion.ComboPrice,
				ComboQuantity:   link.ComboQuantity,
				OverridePrice:   link.OverridePrice,
			})
		}
	}

	byCategory := make(map[int64][]*usecase.PublicProductOutput)
	for _, product := range products {
		if !product.Active {
			continue
		}
		byCategory[product.CategoryID] = append(byCategory[product.CategoryID], &usecase.PublicProductOutput{
			ID:           product.ID,
			Name:         product.Name,
			Description:  product.Description,
			Price:        product.Price,
			PhotoURL:     product.PhotoURL,
			DisplayOrder: product.DisplayOrder,
			Promotions:   productPromos[product.ID],
		})
	}

	menuCategories := make([]*usecase.PublicCategoryOutput, 0, len(categories))
	for _, category := range categories {
		if !category.Active {
			continue
		}
		categoryProducts := byCategory[category.ID]
		if categoryProducts == nil {
			categoryProducts = []*usecase.PublicProductOutput{}
		}
		menuCategories = append(menuCategories, &usecase.PublicCategoryOutput{
			ID:           category.ID,
			Name:         category.Name,
			Description:  category.Description,
			DisplayOrder: category.DisplayOrder,
			Products:     categoryProducts,
		})
	}

	return &usecase.PublicMenuOutput{
		Profile:    usecase.NewPublicProfileOutput(tenant, now),
		Categories: menuCategories,
	}
}
