package usecase

import (
	"context"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// AddStockInput describes a merchant restock.
type AddStockInput struct {
	ProductID uuid.UUID `json:"product_id"`
	ShopID    uuid.UUID `json:"shop_id"`
	Quantity  int       `json:"quantity"`
	Location  string    `json:"location,omitempty"`
}

// InventoryView pairs an inventory row with its derived status.
type InventoryView struct {
	Inventory *entity.Inventory      `json:"inventory"`
	Status    entity.InventoryStatus `json:"status"`
}

// InventoryUsecase defines the merchant-facing stock operations. Reservation
// and release run inside the order pipeline and are not exposed here.
type InventoryUsecase interface {
	// AddStock increments (or creates) the product's stock record.
	AddStock(ctx context.Context, input *AddStockInput) (*InventoryView, error)

	// GetByProduct returns the stock record and derived status for a product.
	GetByProduct(ctx context.Context, productID uuid.UUID) (*InventoryView, error)
}
