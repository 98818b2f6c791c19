package postgres

import (
	"context"
	"time"

	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// inventoryRepository implements the repository.InventoryRepository interface.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

// FindByProduct retrieves the inventory record for a product.
func (repo *inventoryRepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error) {
	var invM model.InventoryModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&invM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory by product")
	}

	return toInventoryDomain(&invM), nil
}

// AddStock upserts the inventory record, adding quantity to the stock count
// and seeding the record when the product has none yet.
func (repo *inventoryRepository) AddStock(ctx context.Context, productID uuid.UUID, shopID *uuid.UUID, quantity int, location string) error {
	invM := &model.InventoryModel{
		ProductID: productID,
		ShopID:    shopID,
		Stock:     quantity,
		Location:  location,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}, {Name: "shop_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"stock":      gorm.Expr("inventories.stock + ?", quantity),
				"updated_at": time.Now(),
			}),
		}).
		Create(invM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add stock")
	}

	return nil
}

// DecrementStockIfAvailable subtracts quantity only when the current stock
// covers it. The guard lives in the WHERE clause, so under any interleaving
// of concurrent buyers the count cannot go negative.
func (repo *inventoryRepository) DecrementStockIfAvailable(ctx context.Context, productID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("product_id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		// Either the record is missing or the stock is short; both read as
		// not enough to sell.
		return repository.ErrInsufficientStock
	}

	return nil
}

// IncrementStock adds quantity back to the stock count.
func (repo *inventoryRepository) IncrementStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("product_id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", quantity))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	return nil
}

// CreateReservation writes the audit record for a successful decrement.
func (repo *inventoryRepository) CreateReservation(ctx context.Context, reservation *entity.InventoryReservation) error {
	resM := fromReservationDomain(reservation)

	if err := repo.db.WithContext(ctx).Create(resM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reservation")
	}

	reservation.ID = resM.ID
	reservation.UpdatedAt = resM.UpdatedAt

	return nil
}

// UpdateReservationStatusByCart marks all of a cart's still-reserved audit
// rows released or consumed. Rows that already left the reserved state are
// untouched, so a retried cancellation cannot flip a consumed reservation.
func (repo *inventoryRepository) UpdateReservationStatusByCart(ctx context.Context, cartID uuid.UUID, status entity.ReservationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InventoryReservationModel{}).
		Where("cart_id = ? AND status = ?", cartID, string(entity.ReservationStatusReserved)).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update reservation status")
	}

	return nil
}

// --- Mapper Functions ---

// toInventoryDomain converts a GORM InventoryModel to a domain Inventory entity.
func toInventoryDomain(data *model.InventoryModel) *entity.Inventory {
	if data == nil {
		return nil
	}

	return &entity.Inventory{
		ID:        data.ID,
		ProductID: data.ProductID,
		ShopID:    data.ShopID,
		Stock:     data.Stock,
		Location:  data.Location,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromReservationDomain converts a domain InventoryReservation to its GORM model.
func fromReservationDomain(data *entity.InventoryReservation) *model.InventoryReservationModel {
	if data == nil {
		return nil
	}

	return &model.InventoryReservationModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		CartID:     data.CartID,
		Quantity:   data.Quantity,
		Status:     string(data.Status),
		ReservedAt: data.ReservedAt,
	}
}
