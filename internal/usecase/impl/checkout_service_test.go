package impl

import (
	"context"
	"testing"

	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	mockRepo "shoply/internal/mocks/repository"
	mockUC "shoply/internal/mocks/usecase"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service         usecase.CheckoutUsecase
	cartRepo        *mockRepo.MockCartRepository
	catalogRepo     *mockRepo.MockCatalogRepository
	userRepo        *mockRepo.MockUserRepository
	inventoryRepo   *mockRepo.MockInventoryRepository
	discountUsecase *mockUC.MockDiscountUsecase
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	discountUsecase := mockUC.NewMockDiscountUsecase(t)

	service := NewCheckoutService(CheckoutServiceParams{
		CartRepo:        cartRepo,
		CatalogRepo:     catalogRepo,
		UserRepo:        userRepo,
		InventoryRepo:   inventoryRepo,
		DiscountUsecase: discountUsecase,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return checkoutServiceFixtures{
		service:         service,
		cartRepo:        cartRepo,
		catalogRepo:     catalogRepo,
		userRepo:        userRepo,
		inventoryRepo:   inventoryRepo,
		discountUsecase: discountUsecase,
	}
}

// checkoutScenario is a one-shop, one-product cart ready for review.
type checkoutScenario struct {
	userID    uuid.UUID
	cartID    uuid.UUID
	shopID    uuid.UUID
	productID uuid.UUID
	cart      *entity.Cart
	product   *entity.Product
	shop      *entity.Shop
	input     *usecase.ReviewInput
}

func newCheckoutScenario() checkoutScenario {
	userID := uuid.New()
	cartID := uuid.New()
	shopID := uuid.New()
	productID := uuid.New()

	line := &entity.CartLine{
		CartID: cartID, ProductID: productID, ShopID: shopID,
		Name: "Keyboard", Quantity: 2, UnitPrice: 100,
	}

	return checkoutScenario{
		userID:    userID,
		cartID:    cartID,
		shopID:    shopID,
		productID: productID,
		cart: &entity.Cart{
			ID: cartID, UserID: userID, Status: entity.CartStatusActive,
			Lines: []*entity.CartLine{line}, ItemsCount: 2, TotalPrice: 200,
		},
		product: &entity.Product{ID: productID, ShopID: shopID, Name: "Keyboard", Price: 100},
		shop:    &entity.Shop{ID: shopID, Name: "周邊小舖"},
		input: &usecase.ReviewInput{
			CartID: cartID,
			ShopGroups: []usecase.ShopGroupInput{{
				ShopID: shopID,
				Items: []usecase.CheckoutItemInput{{
					ProductID: productID, Quantity: 2, Price: 100,
				}},
			}},
		},
	}
}

func (s checkoutScenario) expectHappyReads(fixtures checkoutServiceFixtures, ctx context.Context, stock int) {
	fixtures.userRepo.EXPECT().FindByID(ctx, s.userID).Return(&entity.User{ID: s.userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, s.userID).Return(s.cart, nil)
	fixtures.catalogRepo.EXPECT().FindShop(ctx, s.shopID).Return(s.shop, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, s.productID).Return(s.product, nil)
	fixtures.inventoryRepo.EXPECT().FindByProduct(ctx, s.productID).Return(&entity.Inventory{ProductID: s.productID, Stock: stock}, nil)
}

func TestCheckoutService_Review_WithoutDiscount(t *testing.T) {
	fixtures := createTestCheckoutService(t)

	ctx := context.Background()
	scenario := newCheckoutScenario()
	scenario.expectHappyReads(fixtures, ctx, 10)

	output, err := fixtures.service.Review(ctx, scenario.userID, scenario.input)

	require.NoError(t, err)
	require.Len(t, output.ShopGroups, 1)
	assert.Equal(t, "周邊小舖", output.ShopGroups[0].ShopName)
	assert.InDelta(t, 200.0, output.ShopGroups[0].PriceRaw, 0.001)
	assert.InDelta(t, 200.0, output.ShopGroups[0].PriceApplyDiscount, 0.001)
	assert.InDelta(t, 200.0, output.Summary.TotalPrice, 0.001)
	assert.InDelta(t, 60.0, output.Summary.ShippingFee, 0.001)
	assert.InDelta(t, 260.0, output.Summary.TotalCheckout, 0.001)
}

func TestCheckoutService_Review_WithDiscount(t *testing.T) {
	fixtures := createTestCheckoutService(t)

	ctx := context.Background()
	scenario := newCheckoutScenario()
	scenario.input.ShopGroups[0].DiscountCode = "SUMMER10"
	scenario.expectHappyReads(fixtures, ctx, 10)

	discountID := uuid.New()
	fixtures.discountUsecase.EXPECT().
		Evaluate(ctx, &usecase.EvaluateDiscountInput{
			Code:     "SUMMER10",
			UserID:   scenario.userID,
			ShopID:   scenario.shopID,
			Products: []usecase.DiscountProduct{{ProductID: scenario.productID, Price: 100, Quantity: 2}},
		}).
		Return(&usecase.EvaluateDiscountOutput{
			DiscountID:         discountID,
			OrderTotal:         200,
			DiscountAmount:     20,
			TotalAfterDiscount: 180,
		}, nil)

	output, err := fixtures.service.Review(ctx, scenario.userID, scenario.input)

	require.NoError(t, err)
	require.Len(t, output.ShopGroups, 1)
	require.NotNil(t, output.ShopGroups[0].DiscountID)
	assert.Equal(t, discountID, *output.ShopGroups[0].DiscountID)
	assert.InDelta(t, 180.0, output.ShopGroups[0].PriceApplyDiscount, 0.001)
	assert.InDelta(t, 20.0, output.Summary.TotalDiscount, 0.001)
	assert.InDelta(t, 240.0, output.Summary.TotalCheckout, 0.001)
}

func TestCheckoutService_Review_CartIDMismatch(t *testing.T) {
	fixtures := createTestCheckoutService(t)

	ctx := context.Background()
	scenario := newCheckoutScenario()
	scenario.input.CartID = uuid.New()

	fixtures.userRepo.EXPECT().FindByID(ctx, scenario.userID).Return(&entity.User{ID: scenario.userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, scenario.userID).Return(scenario.cart, nil)

	_, err := fixtures.service.Review(ctx, scenario.userID, scenario.input)
	assertAppErrorCode(t, err, "CART_CHANGED")
}

func TestCheckoutService_Review_QuantityDrift(t *testing.T) {
	fixtures := createTestCheckoutService(t)

	ctx := context.Background()
	scenario := newCheckoutScenario()
	scenario.input.ShopGroups[0].Items[0].Quantity = 3

	fixtures.userRepo.EXPECT().FindByID(ctx, scenario.userID).Return(&entity.User{ID: scenario.userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, scenario.userID).Return(scenario.cart, nil)
	fixtures.catalogRepo.EXPECT().FindShop(ctx, scenario.shopID).Return(scenario.shop, nil)

	_, err := fixtures.service.Review(ctx, scenario.userID, scenario.input)
	assert.ErrorIs(t, err, domainerrors.ErrCartChanged)
}

func TestCheckoutService_Review_PriceDrift(t *testing.T) {
	fixtures := createTestCheckoutService(t)

	ctx := context.Background()
	scenario := newCheckoutScenario()
	scenario.product.Price = 120

	fixtures.userRepo.EXPECT().FindByID(ctx, scenario.userID).Return(&entity.User{ID: scenario.userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, scenario.userID).Return(scenario.cart, nil)
	fixtures.catalogRepo.EXPECT().FindShop(ctx, scenario.shopID).Return(scenario.shop, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, scenario.productID).Return(scenario.product, nil)

	_, err := fixtures.service.Review(ctx, scenario.userID, scenario.input)
	assertAppErrorCode(t, err, "PRICE_CHANGED")
}

func TestCheckoutService_Review_StockShort(t *testing.T) {
	fixtures := createTestCheckoutService(t)

	ctx := context.Background()
	scenario := newCheckoutScenario()
	scenario.expectHappyReads(fixtures, ctx, 1)

	_, err := fixtures.service.Review(ctx, scenario.userID, scenario.input)
	assertAppErrorCode(t, err, "OUT_OF_STOCK")
}

func TestCheckoutService_Review_EmptyShopGroups(t *testing.T) {
	fixtures := createTestCheckoutService(t)

	_, err := fixtures.service.Review(context.Background(), uuid.New(), &usecase.ReviewInput{CartID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_Review_DiscountRejectionFailsReview(t *testing.T) {
	fixtures := createTestCheckoutService(t)

	ctx := context.Background()
	scenario := newCheckoutScenario()
	scenario.input.ShopGroups[0].DiscountCode = "DEAD"
	scenario.expectHappyReads(fixtures, ctx, 10)

	fixtures.discountUsecase.EXPECT().
		Evaluate(ctx, mock.AnythingOfType("*usecase.EvaluateDiscountInput")).
		Return(nil, domainerrors.ErrDiscountExpired)

	_, err := fixtures.service.Review(ctx, scenario.userID, scenario.input)
	assert.ErrorIs(t, err, domainerrors.ErrDiscountExpired)
}

func TestCheckoutService_DefaultAddress_Success(t *testing.T) {
	fixtures := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	address := &entity.Address{ID: uuid.New(), UserID: userID, IsDefault: true}

	fixtures.userRepo.EXPECT().FindDefaultAddress(ctx, userID).Return(address, nil)

	got, err := fixtures.service.DefaultAddress(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, address.ID, got.ID)
}

func TestCheckoutService_DefaultAddress_NotFound(t *testing.T) {
	fixtures := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindDefaultAddress(ctx, userID).Return(nil, repository.ErrAddressNotFound)

	_, err := fixtures.service.DefaultAddress(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}
