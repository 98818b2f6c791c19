package impl

import (
	"context"
	"log/slog"

	"shoply/config"
	deliverycontext "shoply/internal/delivery/context"
	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	inventoryRepo       repository.InventoryRepository
	catalogRepo         repository.CatalogRepository
	runningLowThreshold int
	logger              *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	InventoryRepo repository.InventoryRepository
	CatalogRepo   repository.CatalogRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	threshold := entity.DefaultRunningLowThreshold
	if params.Config.Inventory != nil && params.Config.Inventory.RunningLowThreshold > 0 {
		threshold = params.Config.Inventory.RunningLowThreshold
	}

	return &inventoryService{
		inventoryRepo:       params.InventoryRepo,
		catalogRepo:         params.CatalogRepo,
		runningLowThreshold: threshold,
		logger:              params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddStock increments (or creates) the product's stock record.
func (srv *inventoryService) AddStock(ctx context.Context, input *usecase.AddStockInput) (*usecase.InventoryView, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("stock quantity must be positive")
	}

	if _, err := srv.catalogRepo.FindProduct(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to verify product")
	}

	var shopID *uuid.UUID
	if input.ShopID != uuid.Nil {
		shopID = &input.ShopID
	}

	if err := srv.inventoryRepo.AddStock(ctx, input.ProductID, shopID, input.Quantity, input.Location); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Stock added",
		slog.Any("productID", input.ProductID),
		slog.Int("quantity", input.Quantity),
	)

	return srv.GetByProduct(ctx, input.ProductID)
}

// GetByProduct returns the stock record and derived status for a product.
func (srv *inventoryService) GetByProduct(ctx context.Context, productID uuid.UUID) (*usecase.InventoryView, error) {
	inventory, err := srv.inventoryRepo.FindByProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return nil, domainerrors.ErrInventoryNotFound
		}

		return nil, errors.Wrap(err, "failed to load inventory")
	}

	return &usecase.InventoryView{
		Inventory: inventory,
		Status:    inventory.StatusAt(srv.runningLowThreshold),
	}, nil
}
