package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"
	"cardapio/internal/domain/service"
	mockRepo "cardapio/internal/mocks/repository"
	mockSvc "cardapio/internal/mocks/service"
	"cardapio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// publicServiceFixtures holds all test dependencies for public menu tests.
type publicServiceFixtures struct {
	service   usecase.PublicUsecase
	txManager *mockRepo.MockTransactionManager
	menuCache *mockSvc.MockMenuCache
}

func createTestPublicService(t *testing.T, now time.Time) publicServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	menuCache := mockSvc.NewMockMenuCache(t)
	svc := NewPublicService(txManager, menuCache, newDiscardLogger()).(*publicService)
	svc.now = func() time.Time { return now }

	return publicServiceFixtures{
		service:   svc,
		txManager: txManager,
		menuCache: menuCache,
	}
}

// Tuesday lunchtime.
var menuNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func publicTenant() *entity.Tenant {
	opening, closing := "11:00", "23:00"

	return &entity.Tenant{
		ID:          7,
		Slug:        "pizzaria_bella",
		DisplayName: "Pizzaria Bella",
		OpeningTime: &opening,
		ClosingTime: &closing,
		OpenDays:    map[string]bool{"ter": true, "qua": true},
		SchemaName:  "tenant_bella",
		Email:       "dono@bella.com.br",
		Active:      true,
	}
}

func TestPublicService_Menu_CacheHit(t *testing.T) {
	fx := createTestPublicService(t, menuNow)
	ctx := context.Background()

	cached := &usecase.PublicMenuOutput{
		Profile:    &usecase.PublicProfileOutput{DisplayName: "Pizzaria Bella", OpenNow: true, OpenText: "Aberto agora"},
		Categories: []*usecase.PublicCategoryOutput{},
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	fx.menuCache.EXPECT().GetMenu(ctx, "pizzaria_bella").Return(payload, nil)

	out, err := fx.service.Menu(ctx, "pizzaria_bella")

	require.NoError(t, err)
	assert.Equal(t, "Pizzaria Bella", out.Profile.DisplayName)
}

func TestPublicService_Menu_MalformedSlug(t *testing.T) {
	fx := createTestPublicService(t, menuNow)

	_, err := fx.service.Menu(context.Background(), "Bella'; DROP SCHEMA public;--")

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPublicService_Menu_UnknownSlug(t *testing.T) {
	fx := createTestPublicService(t, menuNow)
	ctx := context.Background()

	fx.menuCache.EXPECT().GetMenu(ctx, "fantasma").Return(nil, service.ErrCacheMiss)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		tenants := mockRepo.NewMockTenantRepository(t)
		factory.EXPECT().Tenants().Return(tenants)
		tenants.EXPECT().
			FindActiveBySlug(ctx, entity.Identifier("fantasma")).
			Return(nil, errors.Wrap(domainerrors.ErrNotFound, "tenant not found"))
	})

	_, err := fx.service.Menu(ctx, "fantasma")

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPublicService_Menu_AssemblesActiveOnly(t *testing.T) {
	fx := createTestPublicService(t, menuNow)
	ctx := context.Background()
	tenant := publicTenant()
	schema := tenant.SchemaName

	categories := []*entity.Category{
		{ID: 1, Name: "Pizzas", Active: true},
		{ID: 2, Name: "Antiga", Active: false},
		{ID: 3, Name: "Bebidas", Active: true},
	}
	products := []*entity.Product{
		{ID: 10, CategoryID: 1, Name: "Margherita", Price: 49.90, Active: true},
		{ID: 11, CategoryID: 1, Name: "Fora do ar", Price: 39.90, Active: false},
	}

	percent := 20.0
	past := menuNow.Add(-time.Hour)
	future := menuNow.Add(time.Hour)
	expired := menuNow.Add(-time.Minute)
	promotions := []*entity.Promotion{
		{ID: 1, Name: "Terça da Pizza", Type: entity.PromotionPercentDiscount, PercentDiscount: &percent, StartsAt: past, Active: true},
		{ID: 2, Name: "Ainda não começou", Type: entity.PromotionBuyXPayY, StartsAt: future, Active: true},
		{ID: 3, Name: "Já acabou", Type: entity.PromotionBuyXPayY, StartsAt: past.Add(-time.Hour), EndsAt: &expired, Active: true},
		{ID: 4, Name: "Desativada", Type: entity.PromotionBuyXPayY, StartsAt: past, Active: false},
	}
	links := []*entity.PromotionProduct{{ID: 1, PromotionID: 1, ProductID: 10, ComboQuantity: 1}}

	fx.menuCache.EXPECT().GetMenu(ctx, "pizzaria_bella").Return(nil, service.ErrCacheMiss)
	fx.menuCache.EXPECT().SetMenu(ctx, "pizzaria_bella", mock.AnythingOfType("[]uint8")).Return(nil)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		tenants := mockRepo.NewMockTenantRepository(t)
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		promotionRepo := mockRepo.NewMockPromotionRepository(t)
		factory.EXPECT().Tenants().Return(tenants)
		factory.EXPECT().Categories().Return(categoryRepo)
		factory.EXPECT().Products().Return(productRepo)
		factory.EXPECT().Promotions().Return(promotionRepo)

		tenants.EXPECT().FindActiveBySlug(ctx, entity.Identifier("pizzaria_bella")).Return(tenant, nil)
		categoryRepo.EXPECT().FindAll(ctx, schema).Return(categories, nil)
		productRepo.EXPECT().FindAll(ctx, schema, (*int64)(nil)).Return(products, nil)
		promotionRepo.EXPECT().FindAll(ctx, schema).Return(promotions, nil)
		// Only the running promotion has its links loaded.
		promotionRepo.EXPECT().FindLinks(ctx, schema, int64(1)).Return(links, nil)
	})

	out, err := fx.service.Menu(ctx, "pizzaria_bella")

	require.NoError(t, err)

	assert.True(t, out.Profile.OpenNow)
	assert.Equal(t, "Aberto agora", out.Profile.OpenText)

	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Pizzas", out.Categories[0].Name)
	assert.Equal(t, "Bebidas", out.Categories[1].Name)
	assert.Empty(t, out.Categories[1].Products)

	require.Len(t, out.Categories[0].Products, 1)
	product := out.Categories[0].Products[0]
	assert.Equal(t, int64(10), product.ID)

	require.Len(t, product.Promotions, 1)
	assert.Equal(t, "Terça da Pizza", product.Promotions[0].Name)
	require.NotNil(t, product.Promotions[0].PercentDiscount)
	assert.Equal(t, 20.0, *product.Promotions[0].PercentDiscount)
}

func TestPublicService_Menu_CacheFailuresAreSoft(t *testing.T) {
	fx := createTestPublicService(t, menuNow)
	ctx := context.Background()
	tenant := publicTenant()

	fx.menuCache.EXPECT().GetMenu(ctx, "pizzaria_bella").Return(nil, errors.New("redis down"))
	fx.menuCache.EXPECT().SetMenu(ctx, "pizzaria_bella", mock.AnythingOfType("[]uint8")).Return(errors.New("redis down"))

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		tenants := mockRepo.NewMockTenantRepository(t)
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		promotionRepo := mockRepo.NewMockPromotionRepository(t)
		factory.EXPECT().Tenants().Return(tenants)
		factory.EXPECT().Categories().Return(categoryRepo)
		factory.EXPECT().Products().Return(productRepo)
		factory.EXPECT().Promotions().Return(promotionRepo)

		tenants.EXPECT().FindActiveBySlug(ctx, entity.Identifier("pizzaria_bella")).Return(tenant, nil)
		categoryRepo.EXPECT().FindAll(ctx, tenant.SchemaName).Return(nil, nil)
		productRepo.EXPECT().FindAll(ctx, tenant.SchemaName, (*int64)(nil)).Return(nil, nil)
		promotionRepo.EXPECT().FindAll(ctx, tenant.SchemaName).Return(nil, nil)
	})

	out, err := fx.service.Menu(ctx, "pizzaria_bella")

	require.NoError(t, err)
	assert.Empty(t, out.Categories)
}

func TestPromotionRunning_Windows(t *testing.T) {
	now := menuNow
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	running := &entity.Promotion{StartsAt: past, Active: true}
	assert.True(t, promotionRunning(running, now))

	openEnded := &entity.Promotion{StartsAt: past, EndsAt: nil, Active: true}
	assert.True(t, promotionRunning(openEnded, now))

	notStarted := &entity.Promotion{StartsAt: future, Active: true}
	assert.False(t, promotionRunning(notStarted, now))

	ended := &entity.Promotion{StartsAt: past, EndsAt: &past, Active: true}
	assert.False(t, promotionRunning(ended, now))

	inactive := &entity.Promotion{StartsAt: past, Active: false}
	assert.False(t, promotionRunning(inactive, now))
}
