package impl

import (
	"context"
	"testing"
	"time"

	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/domain/service"
	mockRepo "shoply/internal/mocks/repository"
	mockSvc "shoply/internal/mocks/service"
	mockUC "shoply/internal/mocks/usecase"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service         usecase.OrderUsecase
	txManager       *mockRepo.MockTransactionManager
	cartRepo        *mockRepo.MockCartRepository
	orderRepo       *mockRepo.MockOrderRepository
	userRepo        *mockRepo.MockUserRepository
	discountRepo    *mockRepo.MockDiscountRepository
	inventoryRepo   *mockRepo.MockInventoryRepository
	checkoutUsecase *mockUC.MockCheckoutUsecase
	locker          *mockSvc.MockInventoryLocker
	publisher       *mockSvc.MockEventPublisher
	qrcodeService   *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	checkoutUsecase := mockUC.NewMockCheckoutUsecase(t)
	locker := mockSvc.NewMockInventoryLocker(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:       txManager,
		CartRepo:        cartRepo,
		OrderRepo:       orderRepo,
		UserRepo:        userRepo,
		DiscountRepo:    discountRepo,
		InventoryRepo:   inventoryRepo,
		CheckoutUsecase: checkoutUsecase,
		Locker:          locker,
		Publisher:       publisher,
		QRCodeService:   qrcodeService,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:         service,
		txManager:       txManager,
		cartRepo:        cartRepo,
		orderRepo:       orderRepo,
		userRepo:        userRepo,
		discountRepo:    discountRepo,
		inventoryRepo:   inventoryRepo,
		checkoutUsecase: checkoutUsecase,
		locker:          locker,
		publisher:       publisher,
		qrcodeService:   qrcodeService,
	}
}

// placementScenario wires a one-shop, one-product placement with a discount.
type placementScenario struct {
	userID     uuid.UUID
	cartID     uuid.UUID
	shopID     uuid.UUID
	productID  uuid.UUID
	discountID uuid.UUID
	input      *usecase.PlaceOrderInput
	review     *usecase.ReviewOutput
}

func newPlacementScenario() placementScenario {
	userID := uuid.New()
	cartID := uuid.New()
	shopID := uuid.New()
	productID := uuid.New()
	discountID := uuid.New()

	groups := []usecase.ShopGroupInput{{
		ShopID:       shopID,
		DiscountCode: "SUMMER10",
		Items:        []usecase.CheckoutItemInput{{ProductID: productID, Quantity: 2, Price: 100}},
	}}

	return placementScenario{
		userID:     userID,
		cartID:     cartID,
		shopID:     shopID,
		productID:  productID,
		discountID: discountID,
		input: &usecase.PlaceOrderInput{
			CartID:     cartID,
			ShopGroups: groups,
			Address:    entity.ShippingAddress{Recipient: "王小明", Phone: "0911222333", Street: "信義路一段 1 號", City: "台北市"},
			Payment:    entity.PaymentInfo{Method: "credit_card"},
		},
		review: &usecase.ReviewOutput{
			ShopGroups: []usecase.ShopGroupReview{{
				ShopID:       shopID,
				DiscountCode: "SUMMER10",
				DiscountID:   &discountID,
				Lines: []entity.OrderLine{{
					ProductID: productID, Name: "Keyboard", Quantity: 2, UnitPrice: 100,
				}},
				PriceRaw:           200,
				PriceApplyDiscount: 180,
			}},
			Summary: entity.CheckoutSummary{
				TotalPrice:    200,
				ShippingFee:   60,
				TotalDiscount: 20,
				TotalCheckout: 240,
			},
		},
	}
}

func expectOrderEvent(publisher *mockSvc.MockEventPublisher, eventType string) {
	publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.EventType == eventType
		})).
		Return(nil)
}

func TestOrderService_Place_Success(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	scenario := newPlacementScenario()
	lockKey := "lock:product:" + scenario.productID.String()

	fixtures.checkoutUsecase.EXPECT().
		Review(ctx, scenario.userID, &usecase.ReviewInput{
			CartID:     scenario.cartID,
			ShopGroups: scenario.input.ShopGroups,
		}).
		Return(scenario.review, nil)

	fixtures.locker.EXPECT().TryAcquire(ctx, lockKey, 3*time.Second).Return("token-1", true, nil)
	fixtures.locker.EXPECT().Release(ctx, lockKey, "token-1").Return(nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txInventory := mockRepo.NewMockInventoryRepository(t)
		txOrder := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().InventoryRepo().Return(txInventory)
		factory.EXPECT().OrderRepo().Return(txOrder)

		txInventory.EXPECT().
			DecrementStockIfAvailable(ctx, scenario.productID, 2).
			Return(nil)
		txInventory.EXPECT().
			CreateReservation(ctx, mock.MatchedBy(func(r *entity.InventoryReservation) bool {
				return r.ProductID == scenario.productID && r.CartID == scenario.cartID &&
					r.Quantity == 2 && r.Status == entity.ReservationStatusReserved
			})).
			Return(nil)
		txOrder.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = uuid.New()
			}).
			Return(nil)
	})

	fixtures.cartRepo.EXPECT().Complete(ctx, scenario.cartID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	fixtures.inventoryRepo.EXPECT().
		UpdateReservationStatusByCart(ctx, scenario.cartID, entity.ReservationStatusConsumed).
		Return(nil)
	fixtures.discountRepo.EXPECT().ConsumeUsage(ctx, scenario.discountID, scenario.userID).Return(nil)
	fixtures.userRepo.EXPECT().AppendOrderRef(ctx, scenario.userID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	expectOrderEvent(fixtures.publisher, service.OrderEventCreated)

	order, err := fixtures.service.Place(ctx, scenario.userID, scenario.input)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, scenario.userID, order.UserID)
	assert.Equal(t, scenario.cartID, order.CartID)
	assert.InDelta(t, 240.0, order.Checkout.TotalCheckout, 0.001)
	assert.NotEmpty(t, order.TrackingNumber)
	require.Len(t, order.ShopGroups, 1)
	require.NotNil(t, order.ShopGroups[0].DiscountID)
	assert.Equal(t, scenario.discountID, *order.ShopGroups[0].DiscountID)
}

func TestOrderService_Place_InsufficientStockAbortsOrder(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	scenario := newPlacementScenario()
	lockKey := "lock:product:" + scenario.productID.String()

	fixtures.checkoutUsecase.EXPECT().
		Review(ctx, scenario.userID, mock.AnythingOfType("*usecase.ReviewInput")).
		Return(scenario.review, nil)

	fixtures.locker.EXPECT().TryAcquire(ctx, lockKey, 3*time.Second).Return("token-1", true, nil)
	fixtures.locker.EXPECT().Release(ctx, lockKey, "token-1").Return(nil)

	// The order row is never written when a reservation fails; the factory
	// would panic on an unexpected OrderRepo call.
	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txInventory := mockRepo.NewMockInventoryRepository(t)
		factory.EXPECT().InventoryRepo().Return(txInventory)

		txInventory.EXPECT().
			DecrementStockIfAvailable(ctx, scenario.productID, 2).
			Return(repository.ErrInsufficientStock)
		txInventory.EXPECT().
			FindByProduct(ctx, scenario.productID).
			Return(&entity.Inventory{ProductID: scenario.productID, Stock: 1}, nil)
	})

	_, err := fixtures.service.Place(ctx, scenario.userID, scenario.input)
	assertAppErrorCode(t, err, "OUT_OF_STOCK")
}

func TestOrderService_Place_DegradedLockStillReserves(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	scenario := newPlacementScenario()
	lockKey := "lock:product:" + scenario.productID.String()

	fixtures.checkoutUsecase.EXPECT().
		Review(ctx, scenario.userID, mock.AnythingOfType("*usecase.ReviewInput")).
		Return(scenario.review, nil)

	// A broken lock service degrades to lockless reservation; no release
	// happens because nothing was acquired.
	fixtures.locker.EXPECT().
		TryAcquire(ctx, lockKey, 3*time.Second).
		Return("", false, domainerrors.ErrInternalError)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txInventory := mockRepo.NewMockInventoryRepository(t)
		txOrder := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().InventoryRepo().Return(txInventory)
		factory.EXPECT().OrderRepo().Return(txOrder)

		txInventory.EXPECT().DecrementStockIfAvailable(ctx, scenario.productID, 2).Return(nil)
		txInventory.EXPECT().CreateReservation(ctx, mock.AnythingOfType("*entity.InventoryReservation")).Return(nil)
		txOrder.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = uuid.New()
			}).
			Return(nil)
	})

	fixtures.cartRepo.EXPECT().Complete(ctx, scenario.cartID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	fixtures.inventoryRepo.EXPECT().
		UpdateReservationStatusByCart(ctx, scenario.cartID, entity.ReservationStatusConsumed).
		Return(nil)
	fixtures.discountRepo.EXPECT().ConsumeUsage(ctx, scenario.discountID, scenario.userID).Return(nil)
	fixtures.userRepo.EXPECT().AppendOrderRef(ctx, scenario.userID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	expectOrderEvent(fixtures.publisher, service.OrderEventCreated)

	_, err := fixtures.service.Place(ctx, scenario.userID, scenario.input)
	require.NoError(t, err)
}

func TestOrderService_Place_BookkeepingFailureRaisesReconciliation(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	scenario := newPlacementScenario()
	lockKey := "lock:product:" + scenario.productID.String()

	fixtures.checkoutUsecase.EXPECT().
		Review(ctx, scenario.userID, mock.AnythingOfType("*usecase.ReviewInput")).
		Return(scenario.review, nil)

	fixtures.locker.EXPECT().TryAcquire(ctx, lockKey, 3*time.Second).Return("token-1", true, nil)
	fixtures.locker.EXPECT().Release(ctx, lockKey, "token-1").Return(nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txInventory := mockRepo.NewMockInventoryRepository(t)
		txOrder := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().InventoryRepo().Return(txInventory)
		factory.EXPECT().OrderRepo().Return(txOrder)

		txInventory.EXPECT().DecrementStockIfAvailable(ctx, scenario.productID, 2).Return(nil)
		txInventory.EXPECT().CreateReservation(ctx, mock.AnythingOfType("*entity.InventoryReservation")).Return(nil)
		txOrder.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = uuid.New()
			}).
			Return(nil)
	})

	// The cart completion fails after the order row committed; the order
	// stands and a reconciliation event carries the failed step.
	fixtures.cartRepo.EXPECT().
		Complete(ctx, scenario.cartID, mock.AnythingOfType("uuid.UUID")).
		Return(domainerrors.ErrInternalError)
	fixtures.inventoryRepo.EXPECT().
		UpdateReservationStatusByCart(ctx, scenario.cartID, entity.ReservationStatusConsumed).
		Return(nil)
	fixtures.discountRepo.EXPECT().ConsumeUsage(ctx, scenario.discountID, scenario.userID).Return(nil)
	fixtures.userRepo.EXPECT().AppendOrderRef(ctx, scenario.userID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	expectOrderEvent(fixtures.publisher, service.OrderEventCreated)
	fixtures.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.EventType == service.OrderEventReconciliation &&
				event.Details["failed_steps"] == "complete_cart"
		})).
		Return(nil)

	order, err := fixtures.service.Place(ctx, scenario.userID, scenario.input)
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_Place_ReservationAuditFailureRaisesReconciliation(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	scenario := newPlacementScenario()
	lockKey := "lock:product:" + scenario.productID.String()

	fixtures.checkoutUsecase.EXPECT().
		Review(ctx, scenario.userID, mock.AnythingOfType("*usecase.ReviewInput")).
		Return(scenario.review, nil)

	fixtures.locker.EXPECT().TryAcquire(ctx, lockKey, 3*time.Second).Return("token-1", true, nil)
	fixtures.locker.EXPECT().Release(ctx, lockKey, "token-1").Return(nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txInventory := mockRepo.NewMockInventoryRepository(t)
		txOrder := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().InventoryRepo().Return(txInventory)
		factory.EXPECT().OrderRepo().Return(txOrder)

		txInventory.EXPECT().DecrementStockIfAvailable(ctx, scenario.productID, 2).Return(nil)
		txInventory.EXPECT().CreateReservation(ctx, mock.AnythingOfType("*entity.InventoryReservation")).Return(nil)
		txOrder.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = uuid.New()
			}).
			Return(nil)
	})

	fixtures.cartRepo.EXPECT().Complete(ctx, scenario.cartID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	fixtures.inventoryRepo.EXPECT().
		UpdateReservationStatusByCart(ctx, scenario.cartID, entity.ReservationStatusConsumed).
		Return(domainerrors.ErrInternalError)
	fixtures.discountRepo.EXPECT().ConsumeUsage(ctx, scenario.discountID, scenario.userID).Return(nil)
	fixtures.userRepo.EXPECT().AppendOrderRef(ctx, scenario.userID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	expectOrderEvent(fixtures.publisher, service.OrderEventCreated)
	fixtures.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.EventType == service.OrderEventReconciliation &&
				event.Details["failed_steps"] == "consume_reservations"
		})).
		Return(nil)

	order, err := fixtures.service.Place(ctx, scenario.userID, scenario.input)
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_Place_ReviewFailurePropagates(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	scenario := newPlacementScenario()

	fixtures.checkoutUsecase.EXPECT().
		Review(ctx, scenario.userID, mock.AnythingOfType("*usecase.ReviewInput")).
		Return(nil, domainerrors.ErrPriceChanged)

	_, err := fixtures.service.Place(ctx, scenario.userID, scenario.input)
	assert.ErrorIs(t, err, domainerrors.ErrPriceChanged)
}

func TestOrderService_Place_FallsBackToDefaultAddress(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	scenario := newPlacementScenario()
	scenario.input.Address = entity.ShippingAddress{}
	lockKey := "lock:product:" + scenario.productID.String()

	fixtures.checkoutUsecase.EXPECT().
		Review(ctx, scenario.userID, mock.AnythingOfType("*usecase.ReviewInput")).
		Return(scenario.review, nil)
	fixtures.userRepo.EXPECT().
		FindDefaultAddress(ctx, scenario.userID).
		Return(&entity.Address{
			Recipient: "王小明", Phone: "0911222333",
			Street: "信義路一段 1 號", City: "台北市", Country: "台灣",
		}, nil)

	fixtures.locker.EXPECT().TryAcquire(ctx, lockKey, 3*time.Second).Return("token-1", true, nil)
	fixtures.locker.EXPECT().Release(ctx, lockKey, "token-1").Return(nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txInventory := mockRepo.NewMockInventoryRepository(t)
		txOrder := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().InventoryRepo().Return(txInventory)
		factory.EXPECT().OrderRepo().Return(txOrder)

		txInventory.EXPECT().DecrementStockIfAvailable(ctx, scenario.productID, 2).Return(nil)
		txInventory.EXPECT().CreateReservation(ctx, mock.AnythingOfType("*entity.InventoryReservation")).Return(nil)
		txOrder.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = uuid.New()
			}).
			Return(nil)
	})

	fixtures.cartRepo.EXPECT().Complete(ctx, scenario.cartID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	fixtures.inventoryRepo.EXPECT().
		UpdateReservationStatusByCart(ctx, scenario.cartID, entity.ReservationStatusConsumed).
		Return(nil)
	fixtures.discountRepo.EXPECT().ConsumeUsage(ctx, scenario.discountID, scenario.userID).Return(nil)
	fixtures.userRepo.EXPECT().AppendOrderRef(ctx, scenario.userID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	expectOrderEvent(fixtures.publisher, service.OrderEventCreated)

	order, err := fixtures.service.Place(ctx, scenario.userID, scenario.input)
	require.NoError(t, err)
	assert.Equal(t, "王小明", order.Shipping.Recipient)
}

func cancellableOrder(userID uuid.UUID, discountID *uuid.UUID) *entity.Order {
	productID := uuid.New()

	return &entity.Order{
		ID:     uuid.New(),
		UserID: userID,
		CartID: uuid.New(),
		Status: entity.OrderStatusPending,
		ShopGroups: []entity.OrderShopGroup{{
			ShopID:     uuid.New(),
			DiscountID: discountID,
			Lines:      []entity.OrderLine{{ProductID: productID, Quantity: 2, UnitPrice: 100}},
		}},
		TrackingNumber: "TRK-0123456789ABCDEF",
	}
}

func TestOrderService_Cancel_Success(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	discountID := uuid.New()
	order := cancellableOrder(userID, &discountID)
	productID := order.ShopGroups[0].Lines[0].ProductID

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txOrder := mockRepo.NewMockOrderRepository(t)
		txInventory := mockRepo.NewMockInventoryRepository(t)
		factory.EXPECT().OrderRepo().Return(txOrder)
		factory.EXPECT().InventoryRepo().Return(txInventory)

		txOrder.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		txOrder.EXPECT().
			UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusCancelled).
			Return(nil)
		txInventory.EXPECT().IncrementStock(ctx, productID, 2).Return(nil)
		txInventory.EXPECT().
			UpdateReservationStatusByCart(ctx, order.CartID, entity.ReservationStatusReleased).
			Return(nil)
	})

	fixtures.discountRepo.EXPECT().RevertUsage(ctx, discountID, userID).Return(nil)
	expectOrderEvent(fixtures.publisher, service.OrderEventCancelled)

	cancelled, err := fixtures.service.Cancel(ctx, userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
}

func TestOrderService_Cancel_NotCancellable(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := cancellableOrder(userID, nil)
	order.Status = entity.OrderStatusShipped

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txOrder := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(txOrder)

		txOrder.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	})

	_, err := fixtures.service.Cancel(ctx, userID, order.ID)
	assertAppErrorCode(t, err, "INVALID_STATE_TRANSITION")
}

func TestOrderService_Cancel_OwnershipViolation(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	order := cancellableOrder(uuid.New(), nil)
	stranger := uuid.New()

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txOrder := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(txOrder)

		txOrder.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	})

	_, err := fixtures.service.Cancel(ctx, stranger, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	order := cancellableOrder(uuid.New(), nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txOrder := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(txOrder)

		txOrder.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		txOrder.EXPECT().
			UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).
			Return(nil)
	})

	updated, err := fixtures.service.UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
}

func TestOrderService_UpdateStatus_IllegalTransition(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	order := cancellableOrder(uuid.New(), nil)
	order.Status = entity.OrderStatusShipped

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txOrder := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(txOrder)

		txOrder.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	})

	_, err := fixtures.service.UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed)
	assertAppErrorCode(t, err, "INVALID_STATE_TRANSITION")
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	fixtures := createTestOrderService(t)

	_, err := fixtures.service.UpdateStatus(context.Background(), uuid.New(), entity.OrderStatus("refunded"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateStatus_CancelledRestoresStock(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	order := cancellableOrder(uuid.New(), nil)
	order.Status = entity.OrderStatusConfirmed
	productID := order.ShopGroups[0].Lines[0].ProductID

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txOrder := mockRepo.NewMockOrderRepository(t)
		txInventory := mockRepo.NewMockInventoryRepository(t)
		factory.EXPECT().OrderRepo().Return(txOrder)
		factory.EXPECT().InventoryRepo().Return(txInventory)

		txOrder.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		txOrder.EXPECT().
			UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed, entity.OrderStatusCancelled).
			Return(nil)
		txInventory.EXPECT().IncrementStock(ctx, productID, 2).Return(nil)
		txInventory.EXPECT().
			UpdateReservationStatusByCart(ctx, order.CartID, entity.ReservationStatusReleased).
			Return(nil)
	})

	expectOrderEvent(fixtures.publisher, service.OrderEventCancelled)

	updated, err := fixtures.service.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestOrderService_GetByID_Ownership(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	order := cancellableOrder(uuid.New(), nil)

	fixtures.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fixtures.service.GetByID(ctx, uuid.New(), order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fixtures.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fixtures.service.GetByID(ctx, uuid.New(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_List_RejectsUnknownStatusFilter(t *testing.T) {
	fixtures := createTestOrderService(t)

	status := entity.OrderStatus("refunded")
	_, _, err := fixtures.service.List(context.Background(), &status, 20, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_TrackingQR(t *testing.T) {
	fixtures := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := cancellableOrder(userID, nil)

	fixtures.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fixtures.qrcodeService.EXPECT().
		GenerateTrackingQR(order.TrackingNumber).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fixtures.service.TrackingQR(ctx, userID, order.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
