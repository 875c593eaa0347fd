package impl

import (
	"context"
	"testing"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"
	mockRepo "cardapio/internal/mocks/repository"
	"cardapio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service   usecase.CategoryUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCategoryService(txManager, newDiscardLogger())

	return categoryServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

var testTC = usecase.TenantContext{TenantID: 7, Email: "dono@bella.com.br", Schema: "tenant_bella"}

func TestCategoryService_Create_Defaults(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categories := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().Categories().Return(categories)
		categories.EXPECT().
			Create(ctx, entity.Identifier("tenant_bella"), mock.AnythingOfType("*entity.Category")).
			RunAndReturn(func(_ context.Context, _ entity.Identifier, category *entity.Category) error {
				assert.Equal(t, 0, category.DisplayOrder)
				assert.True(t, category.Active)
				category.ID = 1

				return nil
			})
	})

	out, err := fx.service.Create(ctx, testTC, &usecase.CreateCategoryInput{Name: "Pizzas"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.True(t, out.Active)
}

func TestCategoryService_Create_ExplicitFields(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	order := 3
	inactive := false

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categories := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().Categories().Return(categories)
		categories.EXPECT().
			Create(ctx, entity.Identifier("tenant_bella"), mock.AnythingOfType("*entity.Category")).
			RunAndReturn(func(_ context.Context, _ entity.Identifier, category *entity.Category) error {
				assert.Equal(t, 3, category.DisplayOrder)
				assert.False(t, category.Active)

				return nil
			})
	})

	_, err := fx.service.Create(ctx, testTC, &usecase.CreateCategoryInput{
		Name:         "Sobremesas",
		DisplayOrder: &order,
		Active:       &inactive,
	})

	require.NoError(t, err)
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categories := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().Categories().Return(categories)
		categories.EXPECT().
			Create(ctx, entity.Identifier("tenant_bella"), mock.AnythingOfType("*entity.Category")).
			Return(errors.Wrap(domainerrors.ErrConflict, "category name already exists"))
	})

	_, err := fx.service.Create(ctx, testTC, &usecase.CreateCategoryInput{Name: "Pizzas"})

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestCategoryService_List_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	stored := []*entity.Category{
		{ID: 1, Name: "Pizzas", DisplayOrder: 0, Active: true},
		{ID: 2, Name: "Bebidas", DisplayOrder: 1, Active: true},
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categories := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().Categories().Return(categories)
		categories.EXPECT().FindAll(ctx, entity.Identifier("tenant_bella")).Return(stored, nil)
	})

	out, err := fx.service.List(ctx, testTC)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Pizzas", out[0].Name)
	assert.Equal(t, "Bebidas", out[1].Name)
}

func TestCategoryService_Get_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categories := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().Categories().Return(categories)
		categories.EXPECT().
			FindByID(ctx, entity.Identifier("tenant_bella"), int64(99)).
			Return(nil, errors.Wrap(domainerrors.ErrNotFound, "category not found"))
	})

	_, err := fx.service.Get(ctx, testTC, 99)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCategoryService_Update_EmptyPatch(t *testing.T) {
	fx := createTestCategoryService(t)

	_, err := fx.service.Update(context.Background(), testTC, 1, &usecase.UpdateCategoryInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCategoryService_Update_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	name := "Pizzas Especiais"
	updated := &entity.Category{ID: 1, Name: name, Active: true}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categories := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().Categories().Return(categories)
		categories.EXPECT().
			Update(ctx, entity.Identifier("tenant_bella"), int64(1), mock.AnythingOfType("entity.CategoryPatch")).
			Return(updated, nil)
	})

	out, err := fx.service.Update(ctx, testTC, 1, &usecase.UpdateCategoryInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, name, out.Name)
}

func TestCategoryService_Delete_InUse(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categories := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().Categories().Return(categories)
		categories.EXPECT().
			Delete(ctx, entity.Identifier("tenant_bella"), int64(1)).
			Return(errors.Wrap(domainerrors.ErrResourceInUse, "category has products"))
	})

	err := fx.service.Delete(ctx, testTC, 1)

	assert.True(t, errors.Is(err, domainerrors.ErrResourceInUse))
}

func TestCategoryService_Delete_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categories := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().Categories().Return(categories)
		categories.EXPECT().Delete(ctx, entity.Identifier("tenant_bella"), int64(1)).Return(nil)
	})

	err := fx.service.Delete(ctx, testTC, 1)

	require.NoError(t, err)
}
