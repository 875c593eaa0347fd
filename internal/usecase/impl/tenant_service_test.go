package impl

import (
	"context"
	"testing"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"
	mockRepo "cardapio/internal/mocks/repository"
	mockSvc "cardapio/internal/mocks/service"
	"cardapio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tenantServiceFixtures holds all test dependencies for tenant service tests.
type tenantServiceFixtures struct {
	service   usecase.TenantUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
	menuCache *mockSvc.MockMenuCache
}

func createTestTenantService(t *testing.T) tenantServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	menuCache := mockSvc.NewMockMenuCache(t)
	service := NewTenantService(txManager, hasher, menuCache, newDiscardLogger())

	return tenantServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
		menuCache: menuCache,
	}
}

func provisionInput() *usecase.ProvisionTenantInput {
	return &usecase.ProvisionTenantInput{
		Slug:        "pizzaria_bella",
		DisplayName: "Pizzaria Bella",
		Email:       "dono@bella.com.br",
		Password:    "s3nha-muito-forte",
		SchemaName:  "tenant_bella",
	}
}

func TestTenantService_Provision_Success(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	input := provisionInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$12$hashed", nil)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		tenants := mockRepo.NewMockTenantRepository(t)
		provisioner := mockRepo.NewMockSchemaProvisioner(t)
		factory.EXPECT().Tenants().Return(tenants)
		factory.EXPECT().Provisioner().Return(provisioner)

		tenants.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Tenant")).
			RunAndReturn(func(_ context.Context, tenant *entity.Tenant) error {
				tenant.ID = 42

				return nil
			})
		provisioner.EXPECT().CreateTenantSchema(ctx, entity.Identifier("tenant_bella")).Return(nil)
	})

	out, err := fx.service.Provision(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, "pizzaria_bella", out.Slug)
	assert.Equal(t, "tenant_bella", out.SchemaName)
	assert.True(t, out.Active)
}

func TestTenantService_Provision_InvalidSlug(t *testing.T) {
	fx := createTestTenantService(t)
	input := provisionInput()
	input.Slug = "Pizzaria-Bella"

	_, err := fx.service.Provision(context.Background(), input)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentifier))
}

func TestTenantService_Provision_InvalidSchemaName(t *testing.T) {
	fx := createTestTenantService(t)
	input := provisionInput()
	input.SchemaName = "tenant;drop schema public"

	_, err := fx.service.Provision(context.Background(), input)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentifier))
}

func TestTenantService_Provision_DuplicateSlug(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	input := provisionInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$12$hashed", nil)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		tenants := mockRepo.NewMockTenantRepository(t)
		factory.EXPECT().Tenants().Return(tenants)

		tenants.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Tenant")).
			Return(errors.Wrap(domainerrors.ErrConflict, "slug already taken"))
	})

	_, err := fx.service.Provision(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestTenantService_Provision_SchemaDDLFails(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	input := provisionInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$12$hashed", nil)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		tenants := mockRepo.NewMockTenantRepository(t)
		provisioner := mockRepo.NewMockSchemaProvisioner(t)
		factory.EXPECT().Tenants().Return(tenants)
		factory.EXPECT().Provisioner().Return(provisioner)

		tenants.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Tenant")).Return(nil)
		provisioner.EXPECT().
			CreateTenantSchema(ctx, entity.Identifier("tenant_bella")).
			Return(errors.Wrap(domainerrors.ErrProvisioningFailed, "create table failed"))
	})

	_, err := fx.service.Provision(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrProvisioningFailed))
}

func TestTenantService_Get_Success(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	tc := usecase.TenantContext{TenantID: 7, Schema: "tenant_bella"}

	stored := &entity.Tenant{
		ID:          7,
		Slug:        "pizzaria_bella",
		DisplayName: "Pizzaria Bella",
		SchemaName:  "tenant_bella",
		Email:       "dono@bella.com.br",
		Active:      true,
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		tenants := mockRepo.NewMockTenantRepository(t)
		factory.EXPECT().Tenants().Return(tenants)
		tenants.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)
	})

	out, err := fx.service.Get(ctx, tc)

	require.NoError(t, err)
	assert.Equal(t, "Pizzaria Bella", out.DisplayName)
}

func TestTenantService_Update_Success_InvalidatesMenuCache(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	tc := usecase.TenantContext{TenantID: 7, Schema: "tenant_bella"}

	name := "Bella Trattoria"
	updated := &entity.Tenant{
		ID:          7,
		Slug:        "pizzaria_bella",
		DisplayName: name,
		SchemaName:  "tenant_bella",
		Active:      true,
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		tenants := mockRepo.NewMockTenantRepository(t)
		factory.EXPECT().Tenants().Return(tenants)
		tenants.EXPECT().
			Update(ctx, int64(7), mock.AnythingOfType("entity.TenantPatch")).
			Return(updated, nil)
	})
	fx.menuCache.EXPECT().InvalidateMenu(ctx, "pizzaria_bella").Return(nil)

	out, err := fx.service.Update(ctx, tc, &usecase.UpdateTenantInput{DisplayName: &name})

	require.NoError(t, err)
	assert.Equal(t, name, out.DisplayName)
}

func TestTenantService_Update_EmptyPatch(t *testing.T) {
	fx := createTestTenantService(t)

	_, err := fx.service.Update(context.Background(), usecase.TenantContext{TenantID: 7}, &usecase.UpdateTenantInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTenantService_Update_UnknownOpenDayKey(t *testing.T) {
	fx := createTestTenantService(t)

	input := &usecase.UpdateTenantInput{
		OpenDays: map[string]bool{"monday": true},
	}

	_, err := fx.service.Update(context.Background(), usecase.TenantContext{TenantID: 7}, input)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "dias_funcionamento")
}

func TestTenantService_UpdateLogo_EmptyPath(t *testing.T) {
	fx := createTestTenantService(t)

	_, err := fx.service.UpdateLogo(context.Background(), usecase.TenantContext{TenantID: 7}, "")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTenantService_UpdateLogo_Success(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	tc := usecase.TenantContext{TenantID: 7, Schema: "tenant_bella"}

	logoPath := "/uploads/logos/bella.png"
	updated := &entity.Tenant{
		ID:         7,
		Slug:       "pizzaria_bella",
		SchemaName: "tenant_bella",
		LogoPath:   &logoPath,
		Active:     true,
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		tenants := mockRepo.NewMockTenantRepository(t)
		factory.EXPECT().Tenants().Return(tenants)
		tenants.EXPECT().
			Update(ctx, int64(7), mock.AnythingOfType("entity.TenantPatch")).
			Return(updated, nil)
	})
	fx.menuCache.EXPECT().InvalidateMenu(ctx, "pizzaria_bella").Return(nil)

	out, err := fx.service.UpdateLogo(ctx, tc, logoPath)

	require.NoError(t, err)
	require.NotNil(t, out.LogoPath)
	assert.Equal(t, logoPath, *out.LogoPath)
}
