package postgres

import (
	"context"

	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindActiveByUser retrieves the user's active cart with its lines.
func (repo *cartRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("user_id = ? AND status = ?", userID, string(entity.CartStatusActive)).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find active cart")
	}

	return toCartDomain(&cartM), nil
}

// CreateActive inserts an empty active cart for the user. The partial unique
// index on active carts rejects a second one for the same user.
func (repo *cartRepository) CreateActive(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActiveCart
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// FindLine retrieves the line for the (product, variant) pair.
func (repo *cartRepository) FindLine(ctx context.Context, cartID, productID uuid.UUID, variantID *uuid.UUID) (*entity.CartLine, error) {
	var lineM model.CartLineModel

	query := repo.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID)
	query = whereVariant(query, variantID)

	if err := query.First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}

	return toCartLineDomain(&lineM), nil
}

// InsertLine appends a new line to the cart.
func (repo *cartRepository) InsertLine(ctx context.Context, line *entity.CartLine) error {
	lineM := fromCartLineDomain(line)

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// A concurrent add created the line first; the caller retries
			// as an increment.
			return repository.ErrCartLineConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert cart line")
	}

	line.ID = lineM.ID
	line.CreatedAt = lineM.CreatedAt
	line.UpdatedAt = lineM.UpdatedAt

	return nil
}

// IncrementLineQuantity applies the delta in a single conditional update so
// concurrent increments from the same user serialize on the row instead of
// clobbering each other. The RETURNING clause hands back the new quantity.
func (repo *cartRepository) IncrementLineQuantity(ctx context.Context, cartID, productID uuid.UUID, variantID *uuid.UUID, delta int) (int, error) {
	var lineM model.CartLineModel

	query := repo.db.WithContext(ctx).
		Model(&lineM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "quantity"}}}).
		Where("cart_id = ? AND product_id = ?", cartID, productID)
	query = whereVariant(query, variantID)

	result := query.
		Where("quantity + ? >= 0", delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to increment cart line quantity")
	}

	if result.RowsAffected == 0 {
		// Distinguish a vanished line from a guard failure on a line that
		// still exists (the delta would drive the quantity negative).
		if _, err := repo.FindLine(ctx, cartID, productID, variantID); err != nil {
			return 0, err
		}

		return 0, repository.ErrCartLineConflict
	}

	return lineM.Quantity, nil
}

// SetLineQuantityCAS sets an exact quantity conditional on the stored
// quantity still matching expectedOld.
func (repo *cartRepository) SetLineQuantityCAS(ctx context.Context, cartID, productID uuid.UUID, variantID *uuid.UUID, newQuantity, expectedOld int) error {
	query := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID)
	query = whereVariant(query, variantID)

	result := query.
		Where("quantity = ?", expectedOld).
		Update("quantity", newQuantity)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set cart line quantity")
	}

	if result.RowsAffected == 0 {
		// Distinguish a vanished line from a concurrent quantity change.
		if _, err := repo.FindLine(ctx, cartID, productID, variantID); err != nil {
			return err
		}

		return repository.ErrCartLineConflict
	}

	return nil
}

// DeleteLine removes the line for the (product, variant) pair.
func (repo *cartRepository) DeleteLine(ctx context.Context, cartID, productID uuid.UUID, variantID *uuid.UUID) error {
	query := repo.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID)
	query = whereVariant(query, variantID)

	result := query.Delete(&model.CartLineModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// AdjustTotals adds the deltas to the denormalized aggregates in one update
// so they move in the same statement as the line change committing with them.
func (repo *cartRepository) AdjustTotals(ctx context.Context, cartID uuid.UUID, itemsDelta int, priceDelta float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cartID).
		Updates(map[string]any{
			"items_count": gorm.Expr("items_count + ?", itemsDelta),
			"total_price": gorm.Expr("total_price + ?", priceDelta),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust cart totals")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// Complete marks the cart completed, zeroes its aggregates and records the
// order it produced.
func (repo *cartRepository) Complete(ctx context.Context, cartID, orderID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ? AND status = ?", cartID, string(entity.CartStatusActive)).
		Updates(map[string]any{
			"status":      string(entity.CartStatusCompleted),
			"items_count": 0,
			"total_price": 0,
			"order_id":    orderID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to complete cart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// whereVariant narrows a cart line query to the variant, treating a nil
// variant as the no-variant line rather than a wildcard.
func whereVariant(query *gorm.DB, variantID *uuid.UUID) *gorm.DB {
	if variantID == nil {
		return query.Where("variant_id IS NULL")
	}

	return query.Where("variant_id = ?", *variantID)
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	lines := make([]*entity.CartLine, 0, len(data.Lines))
	for i := range data.Lines {
		lines = append(lines, toCartLineDomain(&data.Lines[i]))
	}

	return &entity.Cart{
		ID:         data.ID,
		UserID:     data.UserID,
		Status:     entity.CartStatus(data.Status),
		Lines:      lines,
		ItemsCount: data.ItemsCount,
		TotalPrice: data.TotalPrice,
		OrderID:    data.OrderID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel.
func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	return &model.CartModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Status:     string(data.Status),
		ItemsCount: data.ItemsCount,
		TotalPrice: data.TotalPrice,
		OrderID:    data.OrderID,
	}
}

// toCartLineDomain converts a GORM CartLineModel to a domain CartLine entity.
func toCartLineDomain(data *model.CartLineModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	return &entity.CartLine{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		VariantID: data.VariantID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Thumbnail: data.Thumbnail,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCartLineDomain converts a domain CartLine entity to a GORM CartLineModel.
func fromCartLineDomain(data *entity.CartLine) *model.CartLineModel {
	if data == nil {
		return nil
	}

	return &model.CartLineModel{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		VariantID: data.VariantID,
		ShopID:    data.ShopID,
		Name:      data.Name,
		Thumbnail: data.Thumbnail,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
	}
}
