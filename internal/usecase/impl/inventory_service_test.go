package impl

import (
	"context"
	"testing"

	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	mockRepo "shoply/internal/mocks/repository"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inventoryServiceFixtures struct {
	service       usecase.InventoryUsecase
	inventoryRepo *mockRepo.MockInventoryRepository
	catalogRepo   *mockRepo.MockCatalogRepository
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	service := NewInventoryService(InventoryServiceParams{
		InventoryRepo: inventoryRepo,
		CatalogRepo:   catalogRepo,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return inventoryServiceFixtures{
		service:       service,
		inventoryRepo: inventoryRepo,
		catalogRepo:   catalogRepo,
	}
}

func TestInventoryService_AddStock_Success(t *testing.T) {
	fixtures := createTestInventoryService(t)

	ctx := context.Background()
	productID := uuid.New()
	shopID := uuid.New()

	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fixtures.inventoryRepo.EXPECT().AddStock(ctx, productID, &shopID, 30, "A-3").Return(nil)
	fixtures.inventoryRepo.EXPECT().
		FindByProduct(ctx, productID).
		Return(&entity.Inventory{ProductID: productID, Stock: 30}, nil)

	view, err := fixtures.service.AddStock(ctx, &usecase.AddStockInput{
		ProductID: productID,
		ShopID:    shopID,
		Quantity:  30,
		Location:  "A-3",
	})

	require.NoError(t, err)
	assert.Equal(t, 30, view.Inventory.Stock)
	assert.Equal(t, entity.InventoryStatusInStock, view.Status)
}

func TestInventoryService_AddStock_InvalidQuantity(t *testing.T) {
	fixtures := createTestInventoryService(t)

	_, err := fixtures.service.AddStock(context.Background(), &usecase.AddStockInput{
		ProductID: uuid.New(),
		Quantity:  0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInventoryService_AddStock_UnknownProduct(t *testing.T) {
	fixtures := createTestInventoryService(t)

	ctx := context.Background()
	productID := uuid.New()

	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fixtures.service.AddStock(ctx, &usecase.AddStockInput{
		ProductID: productID,
		Quantity:  5,
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestInventoryService_GetByProduct_StatusDerivation(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		want  entity.InventoryStatus
	}{
		{name: "zero stock", stock: 0, want: entity.InventoryStatusOutOfStock},
		{name: "at threshold", stock: 5, want: entity.InventoryStatusRunningLow},
		{name: "above threshold", stock: 6, want: entity.InventoryStatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures := createTestInventoryService(t)

			ctx := context.Background()
			productID := uuid.New()

			fixtures.inventoryRepo.EXPECT().
				FindByProduct(ctx, productID).
				Return(&entity.Inventory{ProductID: productID, Stock: tt.stock}, nil)

			view, err := fixtures.service.GetByProduct(ctx, productID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, view.Status)
		})
	}
}

func TestInventoryService_GetByProduct_NotFound(t *testing.T) {
	fixtures := createTestInventoryService(t)

	ctx := context.Background()
	productID := uuid.New()

	fixtures.inventoryRepo.EXPECT().FindByProduct(ctx, productID).Return(nil, repository.ErrInventoryNotFound)

	_, err := fixtures.service.GetByProduct(ctx, productID)
	assert.ErrorIs(t, err, domainerrors.ErrInventoryNotFound)
}
