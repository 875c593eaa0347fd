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

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service   usecase.ProductUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewProductService(txManager, newDiscardLogger())

	return productServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestProductService_Create_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		products := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().Products().Return(products)
		products.EXPECT().
			Create(ctx, entity.Identifier("tenant_bella"), mock.AnythingOfType("*entity.Product")).
			RunAndReturn(func(_ context.Context, _ entity.Identifier, product *entity.Product) error {
				assert.Equal(t, int64(1), product.CategoryID)
				assert.True(t, product.Active)
				product.ID = 10

				return nil
			})
	})

	out, err := fx.service.Create(ctx, testTC, &usecase.CreateProductInput{
		Name:       "Pizza Margherita",
		Price:      49.90,
		CategoryID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	assert.Equal(t, 49.90, out.Price)
}

func TestProductService_Create_MissingCategory(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		products := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().Products().Return(products)
		products.EXPECT().
			Create(ctx, entity.Identifier("tenant_bella"), mock.AnythingOfType("*entity.Product")).
			Return(errors.Wrap(domainerrors.ErrInvalidReference, "category does not exist"))
	})

	_, err := fx.service.Create(ctx, testTC, &usecase.CreateProductInput{
		Name:       "Pizza Margherita",
		Price:      49.90,
		CategoryID: 99,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
}

func TestProductService_List_FiltersByCategory(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	categoryID := int64(2)
	stored := []*entity.Product{{ID: 5, CategoryID: 2, Name: "Suco de Laranja", Price: 9.50, Active: true}}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		products := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().Products().Return(products)
		products.EXPECT().FindAll(ctx, entity.Identifier("tenant_bella"), &categoryID).Return(stored, nil)
	})

	out, err := fx.service.List(ctx, testTC, &categoryID)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(5), out[0].ID)
}

func TestProductService_Get_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		products := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().Products().Return(products)
		products.EXPECT().
			FindByID(ctx, entity.Identifier("tenant_bella"), int64(99)).
			Return(nil, errors.Wrap(domainerrors.ErrNotFound, "product not found"))
	})

	_, err := fx.service.Get(ctx, testTC, 99)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProductService_Update_EmptyPatch(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.Update(context.Background(), testTC, 10, &usecase.UpdateProductInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_Update_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	price := 54.90
	updated := &entity.Product{ID: 10, CategoryID: 1, Name: "Pizza Margherita", Price: price, Active: true}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		products := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().Products().Return(products)
		products.EXPECT().
			Update(ctx, entity.Identifier("tenant_bella"), int64(10), mock.AnythingOfType("entity.ProductPatch")).
			Return(updated, nil)
	})

	out, err := fx.service.Update(ctx, testTC, 10, &usecase.UpdateProductInput{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, price, out.Price)
}

func TestProductService_Delete_LinkedToPromotion(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		products := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().Products().Return(products)
		products.EXPECT().
			Delete(ctx, entity.Identifier("tenant_bella"), int64(10)).
			Return(errors.Wrap(domainerrors.ErrResourceInUse, "product linked to promotions"))
	})

	err := fx.service.Delete(ctx, testTC, 10)

	assert.True(t, errors.Is(err, domainerrors.ErrResourceInUse))
}
