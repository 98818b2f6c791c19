package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"shoply/config"
	deliverycontext "shoply/internal/delivery/context"
	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/domain/service"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager       repository.TransactionManager
	cartRepo        repository.CartRepository
	orderRepo       repository.OrderRepository
	userRepo        repository.UserRepository
	discountRepo    repository.DiscountRepository
	inventoryRepo   repository.InventoryRepository
	checkoutUsecase usecase.CheckoutUsecase
	locker          service.InventoryLocker
	publisher       service.EventPublisher
	qrcodeService   service.QRCodeService
	lockTTL         time.Duration
	lockMaxAttempts int
	lockRetryDelay  time.Duration
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	CartRepo        repository.CartRepository
	OrderRepo       repository.OrderRepository
	UserRepo        repository.UserRepository
	DiscountRepo    repository.DiscountRepository
	InventoryRepo   repository.InventoryRepository
	CheckoutUsecase usecase.CheckoutUsecase
	Locker          service.InventoryLocker
	Publisher       service.EventPublisher
	QRCodeService   service.QRCodeService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	ttl := defaultLockTTL
	attempts := defaultLockMaxAttempts
	delay := defaultLockRetryDelay
	if cfg := params.Config.Lock; cfg != nil {
		if cfg.TTL > 0 {
			ttl = cfg.TTL
		}
		if cfg.MaxAttempts > 0 {
			attempts = cfg.MaxAttempts
		}
		if cfg.RetryDelay > 0 {
			delay = cfg.RetryDelay
		}
	}

	return &orderService{
		txManager:       params.TxManager,
		cartRepo:        params.CartRepo,
		orderRepo:       params.OrderRepo,
		userRepo:        params.UserRepo,
		discountRepo:    params.DiscountRepo,
		inventoryRepo:   params.InventoryRepo,
		checkoutUsecase: params.CheckoutUsecase,
		locker:          params.Locker,
		publisher:       params.Publisher,
		qrcodeService:   params.QRCodeService,
		lockTTL:         ttl,
		lockMaxAttempts: attempts,
		lockRetryDelay:  delay,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Place runs the placement pipeline. The review re-validates prices, stock
// and discounts; reservation and the order insert share one transaction, so
// a failing line returns every prior debit. Once the order row commits it is
// the point of no return: the bookkeeping that follows is best effort and a
// failure there raises a reconciliation event instead of rolling back.
func (srv *orderService) Place(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	review, err := srv.checkoutUsecase.Review(ctx, userID, &usecase.ReviewInput{
		CartID:     input.CartID,
		ShopGroups: input.ShopGroups,
	})
	if err != nil {
		return nil, err
	}

	address := input.Address
	if address.Recipient == "" {
		stored, err := srv.userRepo.FindDefaultAddress(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return nil, domainerrors.ErrAddressNotFound
			}

			return nil, errors.Wrap(err, "failed to load default address")
		}
		address = stored.ToShippingAddress()
	}

	order := &entity.Order{
		UserID:         userID,
		CartID:         input.CartID,
		Status:         entity.OrderStatusPending,
		Checkout:       review.Summary,
		Shipping:       address,
		Payment:        input.Payment,
		ShopGroups:     shopGroupsFromReview(review.ShopGroups),
		TrackingNumber: generateTrackingNumber(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.reserveLines(ctx, repoFactory.InventoryRepo(), input.CartID, order.AllLines()); err != nil {
			return err
		}

		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to place order",
			slog.Any("userID", userID),
			slog.Any("cartID", input.CartID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.finalizePlacement(ctx, input.CartID, order)

	return order, nil
}

// finalizePlacement runs the post-commit bookkeeping. Each step is
// independent best effort; failed steps are collected into a reconciliation
// event so an out-of-band worker can repair them. The order itself stands.
func (srv *orderService) finalizePlacement(ctx context.Context, cartID uuid.UUID, order *entity.Order) {
	var failed []string

	if err := srv.cartRepo.Complete(ctx, cartID, order.ID); err != nil {
		srv.log(ctx).Error("Failed to complete cart after placement",
			slog.Any("orderID", order.ID),
			slog.Any("cartID", cartID),
			slog.Any("error", err),
		)
		failed = append(failed, "complete_cart")
	}

	if err := srv.inventoryRepo.UpdateReservationStatusByCart(ctx, cartID, entity.ReservationStatusConsumed); err != nil {
		srv.log(ctx).Error("Failed to mark reservations consumed after placement",
			slog.Any("orderID", order.ID),
			slog.Any("cartID", cartID),
			slog.Any("error", err),
		)
		failed = append(failed, "consume_reservations")
	}

	for _, group := range order.ShopGroups {
		if group.DiscountID == nil {
			continue
		}
		if err := srv.discountRepo.ConsumeUsage(ctx, *group.DiscountID, order.UserID); err != nil {
			srv.log(ctx).Error("Failed to consume discount usage after placement",
				slog.Any("orderID", order.ID),
				slog.Any("discountID", *group.DiscountID),
				slog.Any("error", err),
			)
			failed = append(failed, "consume_discount")
		}
	}

	if err := srv.userRepo.AppendOrderRef(ctx, order.UserID, order.ID); err != nil {
		srv.log(ctx).Error("Failed to append order reference after placement",
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
		failed = append(failed, "append_order_ref")
	}

	srv.publishOrderEvent(ctx, service.OrderEventCreated, order, nil)

	if len(failed) > 0 {
		srv.publishOrderEvent(ctx, service.OrderEventReconciliation, order, map[string]string{
			"failed_steps": strings.Join(failed, ","),
		})
	}
}

// Cancel cancels an order owned by the user.
func (srv *orderService) Cancel(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	return srv.cancelOrder(ctx, orderID, &userID)
}

// cancelOrder moves an order to Cancelled and restores every line's stock in
// one transaction. A failing restore rolls the whole cancellation back,
// status change included. A nil owner skips the ownership check (back-office
// path through UpdateStatus).
func (srv *orderService) cancelOrder(ctx context.Context, orderID uuid.UUID, owner *uuid.UUID) (*entity.Order, error) {
	var cancelled *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return err
		}

		if owner != nil && order.UserID != *owner {
			return domainerrors.ErrOrderOwnershipViolation
		}

		if !order.Status.IsCancellable() {
			return domainerrors.ErrInvalidStateTransition.WithDetails(
				fmt.Sprintf("cannot cancel order in status %s", order.Status))
		}

		if err := repoFactory.OrderRepo().UpdateStatus(ctx, orderID, order.Status, entity.OrderStatusCancelled); err != nil {
			if errors.Is(err, repository.ErrOrderStatusConflict) {
				return domainerrors.ErrConflict.WrapMessage("order status changed concurrently")
			}

			return err
		}

		for _, line := range order.AllLines() {
			if err := repoFactory.InventoryRepo().IncrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				return errors.Wrap(err, "failed to restore stock on cancellation")
			}
		}

		if err := repoFactory.InventoryRepo().UpdateReservationStatusByCart(ctx, order.CartID, entity.ReservationStatusReleased); err != nil {
			return errors.Wrap(err, "failed to release reservations on cancellation")
		}

		order.Status = entity.OrderStatusCancelled
		cancelled = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Usage reverts after the commit are best effort, mirroring the
	// consumption on the placement side.
	for _, group := range cancelled.ShopGroups {
		if group.DiscountID == nil {
			continue
		}
		if err := srv.discountRepo.RevertUsage(ctx, *group.DiscountID, cancelled.UserID); err != nil {
			srv.log(ctx).Error("Failed to revert discount usage after cancellation",
				slog.Any("orderID", cancelled.ID),
				slog.Any("discountID", *group.DiscountID),
				slog.Any("error", err),
			)
		}
	}

	srv.publishOrderEvent(ctx, service.OrderEventCancelled, cancelled, nil)

	return cancelled, nil
}

// UpdateStatus advances an order along the state machine. A Cancelled target
// goes through the cancellation path so stock is restored.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, to entity.OrderStatus) (*entity.Order, error) {
	if !entity.ValidOrderStatus(string(to)) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	if to == entity.OrderStatusCancelled {
		return srv.cancelOrder(ctx, orderID, nil)
	}

	var updated *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return err
		}

		if !order.Status.CanTransitionTo(to) {
			return domainerrors.ErrInvalidStateTransition.WithDetails(
				fmt.Sprintf("%s -> %s is not a legal transition", order.Status, to))
		}

		if err := repoFactory.OrderRepo().UpdateStatus(ctx, orderID, order.Status, to); err != nil {
			if errors.Is(err, repository.ErrOrderStatusConflict) {
				return domainerrors.ErrConflict.WrapMessage("order status changed concurrently")
			}

			return err
		}

		order.Status = to
		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// GetByID returns an order, enforcing ownership.
func (srv *orderService) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.UserID != userID {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	return order, nil
}

// ListByUser pages through the user's orders, newest first.
func (srv *orderService) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, int64, error) {
	limit, offset = clampPage(limit, offset)

	return srv.orderRepo.ListByUser(ctx, userID, limit, offset)
}

// List pages through all orders, optionally filtered by status.
func (srv *orderService) List(ctx context.Context, status *entity.OrderStatus, limit, offset int) ([]*entity.Order, int64, error) {
	if status != nil && !entity.ValidOrderStatus(string(*status)) {
		return nil, 0, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}
	limit, offset = clampPage(limit, offset)

	return srv.orderRepo.List(ctx, status, limit, offset)
}

// TrackingQR renders the order's tracking number as a QR code PNG.
func (srv *orderService) TrackingQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetByID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateTrackingQR(order.TrackingNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR")
	}

	return png, nil
}

func (srv *orderService) publishOrderEvent(ctx context.Context, eventType string, order *entity.Order, details map[string]string) {
	event := &service.OrderEvent{
		EventType: eventType,
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Details:   details,
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("eventType", eventType),
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}

// shopGroupsFromReview turns the priced review groups into immutable order
// snapshots.
func shopGroupsFromReview(groups []usecase.ShopGroupReview) []entity.OrderShopGroup {
	out := make([]entity.OrderShopGroup, 0, len(groups))
	for _, group := range groups {
		out = append(out, entity.OrderShopGroup{
			ShopID:             group.ShopID,
			DiscountCode:       group.DiscountCode,
			DiscountID:         group.DiscountID,
			PriceRaw:           group.PriceRaw,
			PriceApplyDiscount: group.PriceApplyDiscount,
			Lines:              group.Lines,
		})
	}

	return out
}

// generateTrackingNumber produces an opaque carrier-style tracking code.
func generateTrackingNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))

	return "TRK-" + raw[:16]
}
