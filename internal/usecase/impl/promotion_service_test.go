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

// promotionServiceFixtures holds all test dependencies for promotion service tests.
type promotionServiceFixtures struct {
	service   usecase.PromotionUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestPromotionService(t *testing.T) promotionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewPromotionService(txManager, newDiscardLogger())

	return promotionServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestPromotionService_Create_TypeFieldMatrix(t *testing.T) {
	starts := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   *usecase.CreatePromotionInput
		wantErr bool
	}{
		{
			name: "percent discount with percent value",
			input: &usecase.CreatePromotionInput{
				Name: "Terça da Pizza", Type: "DESCONTO_PERCENTUAL_PRODUTO",
				PercentDiscount: floatPtr(20), StartsAt: starts,
			},
		},
		{
			name: "percent discount missing percent value",
			input: &usecase.CreatePromotionInput{
				Name: "Terça da Pizza", Type: "DESCONTO_PERCENTUAL_PRODUTO", StartsAt: starts,
			},
			wantErr: true,
		},
		{
			name: "percent discount above 100",
			input: &usecase.CreatePromotionInput{
				Name: "Terça da Pizza", Type: "DESCONTO_PERCENTUAL_PRODUTO",
				PercentDiscount: floatPtr(120), StartsAt: starts,
			},
			wantErr: true,
		},
		{
			name: "combo with combo price",
			input: &usecase.CreatePromotionInput{
				Name: "Combo Casal", Type: "COMBO_PRECO_FIXO",
				ComboPrice: floatPtr(89.90), StartsAt: starts,
			},
		},
		{
			name: "combo missing combo price",
			input: &usecase.CreatePromotionInput{
				Name: "Combo Casal", Type: "COMBO_PRECO_FIXO", StartsAt: starts,
			},
			wantErr: true,
		},
		{
			name: "fixed price product needs no promotion-level value",
			input: &usecase.CreatePromotionInput{
				Name: "Preço Fixo", Type: "PRECO_FIXO_PRODUTO", StartsAt: starts,
			},
		},
		{
			name: "buy x pay y needs no promotion-level value",
			input: &usecase.CreatePromotionInput{
				Name: "Leve 3 Pague 2", Type: "LEVE_X_PAGUE_Y_PRODUTO", StartsAt: starts,
			},
		},
		{
			name: "unknown type",
			input: &usecase.CreatePromotionInput{
				Name: "Misteriosa", Type: "CUPOM_SECRETO", StartsAt: starts,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPromotionService(t)
			ctx := context.Background()

			if !tt.wantErr {
				onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
					promotions := mockRepo.NewMockPromotionRepository(t)
					factory.EXPECT().Promotions().Return(promotions)
					promotions.EXPECT().
						Create(ctx, entity.Identifier("tenant_bella"), mock.AnythingOfType("*entity.Promotion")).
						Return(nil)
				})
			}

			_, err := fx.service.Create(ctx, testTC, tt.input)

			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPromotionService_Create_EndBeforeStart(t *testing.T) {
	fx := createTestPromotionService(t)

	starts := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ends := starts.Add(-24 * time.Hour)

	_, err := fx.service.Create(context.Background(), testTC, &usecase.CreatePromotionInput{
		Name:     "Janela Invertida",
		Type:     "LEVE_X_PAGUE_Y_PRODUTO",
		StartsAt: starts,
		EndsAt:   &ends,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "data_fim")
}

func TestPromotionService_Update_MergeRevalidates(t *testing.T) {
	// Stored percent promotion; patch switches the type to combo without
	// providing a combo price. The merged row is invalid, so nothing is
	// written.
	fx := createTestPromotionService(t)
	ctx := context.Background()

	stored := &entity.Promotion{
		ID:              3,
		Name:            "Terça da Pizza",
		Type:            entity.PromotionPercentDiscount,
		PercentDiscount: floatPtr(20),
		StartsAt:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Active:          true,
	}

	comboType := "COMBO_PRECO_FIXO"

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		promotions := mockRepo.NewMockPromotionRepository(t)
		factory.EXPECT().Promotions().Return(promotions)
		promotions.EXPECT().FindByID(ctx, entity.Identifier("tenant_bella"), int64(3)).Return(stored, nil)
	})

	_, err := fx.service.Update(ctx, testTC, 3, &usecase.UpdatePromotionInput{Type: &comboType})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "preco_promocional_combo")
}

func TestPromotionService_Update_TypeSwitchWithValue(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()

	stored := &entity.Promotion{
		ID:              3,
		Name:            "Terça da Pizza",
		Type:            entity.PromotionPercentDiscount,
		PercentDiscount: floatPtr(20),
		StartsAt:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Active:          true,
	}

	comboType := "COMBO_PRECO_FIXO"
	comboPrice := 89.90
	updated := &entity.Promotion{
		ID:         3,
		Name:       "Terça da Pizza",
		Type:       entity.PromotionFixedPriceCombo,
		ComboPrice: &comboPrice,
		StartsAt:   stored.StartsAt,
		Active:     true,
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		promotions := mockRepo.NewMockPromotionRepository(t)
		factory.EXPECT().Promotions().Return(promotions)
		promotions.EXPECT().FindByID(ctx, entity.Identifier("tenant_bella"), int64(3)).Return(stored, nil)
		promotions.EXPECT().
			Update(ctx, entity.Identifier("tenant_bella"), int64(3), mock.AnythingOfType("entity.PromotionPatch")).
			Return(updated, nil)
	})

	out, err := fx.service.Update(ctx, testTC, 3, &usecase.UpdatePromotionInput{
		Type:       &comboType,
		ComboPrice: &comboPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, "COMBO_PRECO_FIXO", out.Type)
	require.NotNil(t, out.ComboPrice)
	assert.Equal(t, comboPrice, *out.ComboPrice)
}

func TestPromotionService_Update_EmptyPatch(t *testing.T) {
	fx := createTestPromotionService(t)

	_, err := fx.service.Update(context.Background(), testTC, 3, &usecase.UpdatePromotionInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPromotionService_LinkProduct_Matrix(t *testing.T) {
	tests := []struct {
		name          string
		promotionType entity.PromotionType
		input         *usecase.LinkProductInput
		wantErr       error
	}{
		{
			name:          "fixed price product link with override price",
			promotionType: entity.PromotionFixedPriceProduct,
			input:         &usecase.LinkProductInput{ProductID: 10, OverridePrice: floatPtr(39.90)},
		},
		{
			name:          "fixed price product link missing override price",
			promotionType: entity.PromotionFixedPriceProduct,
			input:         &usecase.LinkProductInput{ProductID: 10},
			wantErr:       domainerrors.ErrBusinessRule,
		},
		{
			name:          "percent link with override price",
			promotionType: entity.PromotionPercentDiscount,
			input:         &usecase.LinkProductInput{ProductID: 10, OverridePrice: floatPtr(39.90)},
			wantErr:       domainerrors.ErrBusinessRule,
		},
		{
			name:          "percent link without override price",
			promotionType: entity.PromotionPercentDiscount,
			input:         &usecase.LinkProductInput{ProductID: 10},
		},
		{
			name:          "combo link without override price",
			promotionType: entity.PromotionFixedPriceCombo,
			input:         &usecase.LinkProductInput{ProductID: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPromotionService(t)
			ctx := context.Background()

			promotion := &entity.Promotion{
				ID:       3,
				Name:     "Promo",
				Type:     tt.promotionType,
				StartsAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				Active:   true,
			}

			onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
				promotions := mockRepo.NewMockPromotionRepository(t)
				products := mockRepo.NewMockProductRepository(t)
				factory.EXPECT().Promotions().Return(promotions)
				factory.EXPECT().Products().Return(products)

				promotions.EXPECT().FindByID(ctx, entity.Identifier("tenant_bella"), int64(3)).Return(promotion, nil)
				products.EXPECT().
					FindByID(ctx, entity.Identifier("tenant_bella"), int64(10)).
					Return(&entity.Product{ID: 10, CategoryID: 1, Name: "Pizza", Price: 49.90, Active: true}, nil)

				if tt.wantErr == nil {
					promotions.EXPECT().
						CreateLink(ctx, entity.Identifier("tenant_bella"), mock.AnythingOfType("*entity.PromotionProduct")).
						RunAndReturn(func(_ context.Context, _ entity.Identifier, link *entity.PromotionProduct) error {
							link.ID = 77

							return nil
						})
				}
			})

			out, err := fx.service.LinkProduct(ctx, testTC, 3, tt.input)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(77), out.ID)
				assert.Equal(t, 1, out.ComboQuantity)
			}
		})
	}
}

func TestPromotionService_LinkProduct_PromotionNotFound(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		promotions := mockRepo.NewMockPromotionRepository(t)
		factory.EXPECT().Promotions().Return(promotions)
		promotions.EXPECT().
			FindByID(ctx, entity.Identifier("tenant_bella"), int64(99)).
			Return(nil, errors.Wrap(domainerrors.ErrNotFound, "promotion not found"))
	})

	_, err := fx.service.LinkProduct(ctx, testTC, 99, &usecase.LinkProductInput{ProductID: 10})

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	assert.False(t, errors.Is(err, domainerrors.ErrReferencedNotFound))
}

func TestPromotionService_LinkProduct_ProductMissing(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()

	promotion := &entity.Promotion{
		ID: 3, Name: "Promo", Type: entity.PromotionPercentDiscount,
		PercentDiscount: floatPtr(10), Active: true,
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		promotions := mockRepo.NewMockPromotionRepository(t)
		products := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().Promotions().Return(promotions)
		factory.EXPECT().Products().Return(products)

		promotions.EXPECT().FindByID(ctx, entity.Identifier("tenant_bella"), int64(3)).Return(promotion, nil)
		products.EXPECT().
			FindByID(ctx, entity.Identifier("tenant_bella"), int64(99)).
			Return(nil, errors.Wrap(domainerrors.ErrNotFound, "product not found"))
	})

	_, err := fx.service.LinkProduct(ctx, testTC, 3, &usecase.LinkProductInput{ProductID: 99})

	assert.True(t, errors.Is(err, domainerrors.ErrReferencedNotFound))
}

func TestPromotionService_LinkProduct_DuplicatePair(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()

	promotion := &entity.Promotion{
		ID: 3, Name: "Promo", Type: entity.PromotionPercentDiscount,
		PercentDiscount: floatPtr(10), Active: true,
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		promotions := mockRepo.NewMockPromotionRepository(t)
		products := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().Promotions().Return(promotions)
		factory.EXPECT().Products().Return(products)

		promotions.EXPECT().FindByID(ctx, entity.Identifier("tenant_bella"), int64(3)).Return(promotion, nil)
		products.EXPECT().
			FindByID(ctx, entity.Identifier("tenant_bella"), int64(10)).
			Return(&entity.Product{ID: 10, Active: true}, nil)
		promotions.EXPECT().
			CreateLink(ctx, entity.Identifier("tenant_bella"), mock.AnythingOfType("*entity.PromotionProduct")).
			Return(errors.Wrap(domainerrors.ErrConflict, "product already linked"))
	})

	_, err := fx.service.LinkProduct(ctx, testTC, 3, &usecase.LinkProductInput{ProductID: 10})

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestPromotionService_UnlinkProduct_NotLinked(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		promotions := mockRepo.NewMockPromotionRepository(t)
		factory.EXPECT().Promotions().Return(promotions)
		promotions.EXPECT().
			DeleteLink(ctx, entity.Identifier("tenant_bella"), int64(3), int64(10)).
			Return(errors.Wrap(domainerrors.ErrNotFound, "link not found"))
	})

	err := fx.service.UnlinkProduct(ctx, testTC, 3, 10)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPromotionService_ListLinks_Success(t *testing.T) {
	fx := createTestPromotionService(t)
	ctx := context.Background()

	promotion := &entity.Promotion{ID: 3, Name: "Promo", Type: entity.PromotionBuyXPayY, Active: true}
	links := []*entity.PromotionProduct{
		{ID: 1, PromotionID: 3, ProductID: 10, ComboQuantity: 3},
		{ID: 2, PromotionID: 3, ProductID: 11, ComboQuantity: 1},
	}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		promotions := mockRepo.NewMockPromotionRepository(t)
		factory.EXPECT().Promotions().Return(promotions)
		promotions.EXPECT().FindByID(ctx, entity.Identifier("tenant_bella"), int64(3)).Return(promotion, nil)
		promotions.EXPECT().FindLinks(ctx, entity.Identifier("tenant_bella"), int64(3)).Return(links, nil)
	})

	out, err := fx.service.ListLinks(ctx, testTC, 3)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(10), out[0].ProductID)
	assert.Equal(t, 3, out[0].ComboQuantity)
}
