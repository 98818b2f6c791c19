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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create inserts the order with its shop groups and line snapshots in one
// associated write.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its shop groups and lines.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("ShopGroups.Lines").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUpdate retrieves an order holding a FOR UPDATE row lock so
// concurrent status transitions for the same order serialize.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Preload("ShopGroups.Lines").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for update")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns the user's orders, newest first, with the total count.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders by user")
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("ShopGroups.Lines").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// List returns all orders, newest first, optionally filtered by status.
func (repo *orderRepository) List(ctx context.Context, status *entity.OrderStatus, limit, offset int) ([]*entity.Order, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if status != nil {
		base = base.Where("status = ?", string(*status))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	query := repo.db.WithContext(ctx).
		Preload("ShopGroups.Lines")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var orderModels []*model.OrderModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// UpdateStatus moves the order between statuses in one conditional update;
// the source status in the WHERE clause is the compare of the compare-and-set.
func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", orderID, string(from)).
		Update("status", string(to))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", orderID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order existence")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		return repository.ErrOrderStatusConflict
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	groups := make([]entity.OrderShopGroup, 0, len(data.ShopGroups))
	for i := range data.ShopGroups {
		groups = append(groups, toOrderShopGroupDomain(&data.ShopGroups[i]))
	}

	return &entity.Order{
		ID:     data.ID,
		UserID: data.UserID,
		CartID: data.CartID,
		Status: entity.OrderStatus(data.Status),
		Checkout: entity.CheckoutSummary{
			TotalPrice:    data.TotalPrice,
			ShippingFee:   data.ShippingFee,
			TotalDiscount: data.TotalDiscount,
			TotalCheckout: data.TotalCheckout,
		},
		Shipping: entity.ShippingAddress{
			Recipient: data.Recipient,
			Phone:     data.Phone,
			Street:    data.Street,
			City:      data.City,
			Country:   data.Country,
			ZipCode:   data.ZipCode,
		},
		Payment: entity.PaymentInfo{
			Method: data.PaymentMethod,
			Status: data.PaymentStatus,
		},
		ShopGroups:     groups,
		TrackingNumber: data.TrackingNumber,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toOrderShopGroupDomain(data *model.OrderShopGroupModel) entity.OrderShopGroup {
	lines := make([]entity.OrderLine, 0, len(data.Lines))
	for _, lineM := range data.Lines {
		lines = append(lines, entity.OrderLine{
			ProductID: lineM.ProductID,
			VariantID: lineM.VariantID,
			Name:      lineM.Name,
			Quantity:  lineM.Quantity,
			UnitPrice: lineM.UnitPrice,
		})
	}

	return entity.OrderShopGroup{
		ShopID:             data.ShopID,
		DiscountCode:       data.DiscountCode,
		DiscountID:         data.DiscountID,
		PriceRaw:           data.PriceRaw,
		PriceApplyDiscount: data.PriceApplyDiscount,
		Lines:              lines,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	groups := make([]model.OrderShopGroupModel, 0, len(data.ShopGroups))
	for _, group := range data.ShopGroups {
		lines := make([]model.OrderLineModel, 0, len(group.Lines))
		for _, line := range group.Lines {
			lines = append(lines, model.OrderLineModel{
				ProductID: line.ProductID,
				VariantID: line.VariantID,
				Name:      line.Name,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			})
		}
		groups = append(groups, model.OrderShopGroupModel{
			ShopID:             group.ShopID,
			DiscountCode:       group.DiscountCode,
			DiscountID:         group.DiscountID,
			PriceRaw:           group.PriceRaw,
			PriceApplyDiscount: group.PriceApplyDiscount,
			Lines:              lines,
		})
	}

	return &model.OrderModel{
		ID:             data.ID,
		UserID:         data.UserID,
		CartID:         data.CartID,
		Status:         string(data.Status),
		TotalPrice:     data.Checkout.TotalPrice,
		ShippingFee:    data.Checkout.ShippingFee,
		TotalDiscount:  data.Checkout.TotalDiscount,
		TotalCheckout:  data.Checkout.TotalCheckout,
		Recipient:      data.Shipping.Recipient,
		Phone:          data.Shipping.Phone,
		Street:         data.Shipping.Street,
		City:           data.Shipping.City,
		Country:        data.Shipping.Country,
		ZipCode:        data.Shipping.ZipCode,
		PaymentMethod:  data.Payment.Method,
		PaymentStatus:  data.Payment.Status,
		TrackingNumber: data.TrackingNumber,
		ShopGroups:     groups,
	}
}
