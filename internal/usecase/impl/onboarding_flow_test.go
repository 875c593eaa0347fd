package impl

import (
	"context"
	"testing"
	"time"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"
	mockRepo "cardapio/internal/mocks/repository"
	"cardapio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestMenuOnboardingFlow walks one tenant from registration to a linked
// combo promotion, carrying the context issued at login through every
// service the way a real session does.
func TestMenuOnboardingFlow(t *testing.T) {
	ctx := context.Background()

	// Register cantina_do_vale.
	tenantFx := createTestTenantService(t)
	registration := &usecase.ProvisionTenantInput{
		Slug:        "cantina_do_vale",
		DisplayName: "Cantina do Vale",
		Email:       "chef@cantinadovale.com.br",
		Password:    "senha-do-chef",
		SchemaName:  "tenant_cantina_do_vale",
	}

	tenantFx.hasher.EXPECT().Hash(registration.Password).Return("$2a$12$chef", nil)
	onExecute(t, tenantFx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		tenants := mockRepo.NewMockTenantRepository(t)
		provisioner := mockRepo.NewMockSchemaProvisioner(t)
		factory.EXPECT().Tenants().Return(tenants)
		factory.EXPECT().Provisioner().Return(provisioner)

		tenants.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Tenant")).
			RunAndReturn(func(_ context.Context, tenant *entity.Tenant) error {
				tenant.ID = 11

				return nil
			})
		provisioner.EXPECT().CreateTenantSchema(ctx, entity.Identifier("tenant_cantina_do_vale")).Return(nil)
	})

	provisioned, err := tenantFx.service.Provision(ctx, registration)
	require.NoError(t, err)
	require.Equal(t, int64(11), provisioned.ID)

	// Log in. Everything after this point runs off the login payload
	// alone, the way a client session does.
	authFx := createTestAuthService(t)
	registered := &entity.Tenant{
		ID:           provisioned.ID,
		Slug:         "cantina_do_vale",
		DisplayName:  "Cantina do Vale",
		SchemaName:   "tenant_cantina_do_vale",
		Email:        registration.Email,
		PasswordHash: "$2a$12$chef",
		Active:       true,
	}
	onExecute(t, authFx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		tenants := mockRepo.NewMockTenantRepository(t)
		factory.EXPECT().Tenants().Return(tenants)
		tenants.EXPECT().FindByEmail(ctx, registration.Email).Return(registered, nil)
	})
	authFx.hasher.EXPECT().Check(registration.Password, "$2a$12$chef").Return(true)
	authFx.tokens.EXPECT().
		GenerateToken(int64(11), registration.Email, "tenant_cantina_do_vale").
		Return("signed.session.token", nil)

	session, err := authFx.service.Login(ctx, &usecase.LoginInput{
		Email:    registration.Email,
		Password: registration.Password,
	})
	require.NoError(t, err)
	require.Equal(t, "signed.session.token", session.Token)

	schema, err := entity.ParseIdentifier(session.Tenant.SchemaName)
	require.NoError(t, err)
	tc := usecase.TenantContext{
		TenantID: session.Tenant.ID,
		Email:    session.Tenant.Email,
		Schema:   schema,
	}

	// Category "Bebidas".
	categoryFx := createTestCategoryService(t)
	onExecute(t, categoryFx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categories := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().Categories().Return(categories)
		categories.EXPECT().
			Create(ctx, schema, mock.AnythingOfType("*entity.Category")).
			RunAndReturn(func(_ context.Context, _ entity.Identifier, category *entity.Category) error {
				category.ID = 3

				return nil
			})
	})

	category, err := categoryFx.service.Create(ctx, tc, &usecase.CreateCategoryInput{Name: "Bebidas"})
	require.NoError(t, err)

	// Product "Suco" under the new category.
	productFx := createTestProductService(t)
	onExecute(t, productFx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		products := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().Products().Return(products)
		products.EXPECT().
			Create(ctx, schema, mock.AnythingOfType("*entity.Product")).
			RunAndReturn(func(_ context.Context, _ entity.Identifier, product *entity.Product) error {
				product.ID = 5

				return nil
			})
	})

	product, err := productFx.service.Create(ctx, tc, &usecase.CreateProductInput{
		Name:       "Suco",
		Price:      8.50,
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, category.ID, product.CategoryID)

	// Combo promotion at a fixed price.
	starts := time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)
	promotionFx := createTestPromotionService(t)
	onExecute(t, promotionFx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		promotions := mockRepo.NewMockPromotionRepository(t)
		factory.EXPECT().Promotions().Return(promotions)
		promotions.EXPECT().
			Create(ctx, schema, mock.AnythingOfType("*entity.Promotion")).
			RunAndReturn(func(_ context.Context, _ entity.Identifier, promotion *entity.Promotion) error {
				promotion.ID = 9

				return nil
			})
	})

	promotion, err := promotionFx.service.Create(ctx, tc, &usecase.CreatePromotionInput{
		Name:       "Combo Almoço",
		Type:       string(entity.PromotionFixedPriceCombo),
		ComboPrice: floatPtr(15.00),
		StartsAt:   starts,
	})
	require.NoError(t, err)

	storedPromotion := &entity.Promotion{
		ID:         promotion.ID,
		Name:       promotion.Name,
		Type:       entity.PromotionFixedPriceCombo,
		ComboPrice: floatPtr(15.00),
		StartsAt:   starts,
		Active:     true,
	}
	storedProduct := &entity.Product{
		ID:         product.ID,
		CategoryID: category.ID,
		Name:       "Suco",
		Price:      8.50,
		Active:     true,
	}
	quantity := 2

	// Link the product, two units, no per-product override.
	linkFx := createTestPromotionService(t)
	onExecute(t, linkFx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		promotions := mockRepo.NewMockPromotionRepository(t)
		products := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().Promotions().Return(promotions)
		factory.EXPECT().Products().Return(products)

		promotions.EXPECT().FindByID(ctx, schema, promotion.ID).Return(storedPromotion, nil)
		products.EXPECT().FindByID(ctx, schema, product.ID).Return(storedProduct, nil)
		promotions.EXPECT().
			CreateLink(ctx, schema, mock.AnythingOfType("*entity.PromotionProduct")).
			RunAndReturn(func(_ context.Context, _ entity.Identifier, link *entity.PromotionProduct) error {
				link.ID = 21

				return nil
			})
	})

	link, err := linkFx.service.LinkProduct(ctx, tc, promotion.ID, &usecase.LinkProductInput{
		ProductID:     product.ID,
		ComboQuantity: &quantity,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, link.ComboQuantity)
	assert.Nil(t, link.OverridePrice)

	// Linking the same product again trips the unique pair constraint.
	relinkFx := createTestPromotionService(t)
	onExecute(t, relinkFx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		promotions := mockRepo.NewMockPromotionRepository(t)
		products := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().Promotions().Return(promotions)
		factory.EXPECT().Products().Return(products)

		promotions.EXPECT().FindByID(ctx, schema, promotion.ID).Return(storedPromotion, nil)
		products.EXPECT().FindByID(ctx, schema, product.ID).Return(storedProduct, nil)
		promotions.EXPECT().
			CreateLink(ctx, schema, mock.AnythingOfType("*entity.PromotionProduct")).
			Return(errors.Wrap(domainerrors.ErrConflict, "product is already linked to this promotion"))
	})

	_, err = relinkFx.service.LinkProduct(ctx, tc, promotion.ID, &usecase.LinkProductInput{
		ProductID:     product.ID,
		ComboQuantity: &quantity,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}
