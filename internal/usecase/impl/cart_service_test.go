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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service       usecase.CartUsecase
	txManager     *mockRepo.MockTransactionManager
	cartRepo      *mockRepo.MockCartRepository
	catalogRepo   *mockRepo.MockCatalogRepository
	userRepo      *mockRepo.MockUserRepository
	inventoryRepo *mockRepo.MockInventoryRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)

	service := NewCartService(CartServiceParams{
		TxManager:     txManager,
		CartRepo:      cartRepo,
		CatalogRepo:   catalogRepo,
		UserRepo:      userRepo,
		InventoryRepo: inventoryRepo,
		Logger:        newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:       service,
		txManager:     txManager,
		cartRepo:      cartRepo,
		catalogRepo:   catalogRepo,
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
	}
}

// expectTxExecute wires the transaction manager mock to run the callback
// against a factory backed by the given repositories.
func expectTxExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, configure func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			configure(factory)

			return fn(factory)
		})
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	shopID := uuid.New()

	product := &entity.Product{ID: productID, ShopID: shopID, Name: "Keyboard", Price: 100}
	cart := &entity.Cart{ID: cartID, UserID: userID, Status: entity.CartStatusActive}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)
	fixtures.inventoryRepo.EXPECT().FindByProduct(ctx, productID).Return(&entity.Inventory{ProductID: productID, Stock: 10}, nil)

	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			FindLine(ctx, cartID, productID, (*uuid.UUID)(nil)).
			Return(nil, repository.ErrCartLineNotFound)
		txCart.EXPECT().
			InsertLine(ctx, mock.AnythingOfType("*entity.CartLine")).
			Return(nil)
		txCart.EXPECT().
			AdjustTotals(ctx, cartID, 2, 200.0).
			Return(nil)
	})

	result, err := fixtures.service.AddItem(ctx, userID, &usecase.AddItemInput{
		ProductID:     productID,
		QuantityDelta: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, cartID, result.ID)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	shopID := uuid.New()

	product := &entity.Product{ID: productID, ShopID: shopID, Name: "Keyboard", Price: 100}
	line := &entity.CartLine{CartID: cartID, ProductID: productID, Quantity: 2, UnitPrice: 100}
	cart := &entity.Cart{
		ID: cartID, UserID: userID, Status: entity.CartStatusActive,
		Lines: []*entity.CartLine{line}, ItemsCount: 2, TotalPrice: 200,
	}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)
	// The pre-check covers the stored quantity plus the delta.
	fixtures.inventoryRepo.EXPECT().FindByProduct(ctx, productID).Return(&entity.Inventory{ProductID: productID, Stock: 5}, nil)

	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			FindLine(ctx, cartID, productID, (*uuid.UUID)(nil)).
			Return(line, nil)
		txCart.EXPECT().
			IncrementLineQuantity(ctx, cartID, productID, (*uuid.UUID)(nil), 3).
			Return(5, nil)
		txCart.EXPECT().
			AdjustTotals(ctx, cartID, 3, 300.0).
			Return(nil)
	})

	_, err := fixtures.service.AddItem(ctx, userID, &usecase.AddItemInput{
		ProductID:     productID,
		QuantityDelta: 3,
	})

	require.NoError(t, err)
}

func TestCartService_AddItem_NegativeDeltaRemovesLine(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	product := &entity.Product{ID: productID, Name: "Keyboard", Price: 100}
	line := &entity.CartLine{CartID: cartID, ProductID: productID, Quantity: 2, UnitPrice: 100}
	cart := &entity.Cart{
		ID: cartID, UserID: userID, Status: entity.CartStatusActive,
		Lines: []*entity.CartLine{line}, ItemsCount: 2, TotalPrice: 200,
	}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			FindLine(ctx, cartID, productID, (*uuid.UUID)(nil)).
			Return(line, nil)
		// A delta past zero clamps to the stored quantity.
		txCart.EXPECT().
			IncrementLineQuantity(ctx, cartID, productID, (*uuid.UUID)(nil), -2).
			Return(0, nil)
		txCart.EXPECT().
			DeleteLine(ctx, cartID, productID, (*uuid.UUID)(nil)).
			Return(nil)
		txCart.EXPECT().
			AdjustTotals(ctx, cartID, -2, -200.0).
			Return(nil)
	})

	_, err := fixtures.service.AddItem(ctx, userID, &usecase.AddItemInput{
		ProductID:     productID,
		QuantityDelta: -5,
	})

	require.NoError(t, err)
}

func TestCartService_AddItem_OutOfStock(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	product := &entity.Product{ID: productID, Name: "Keyboard", Price: 100}
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Status: entity.CartStatusActive}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)
	fixtures.inventoryRepo.EXPECT().FindByProduct(ctx, productID).Return(&entity.Inventory{ProductID: productID, Stock: 1}, nil)

	_, err := fixtures.service.AddItem(ctx, userID, &usecase.AddItemInput{
		ProductID:     productID,
		QuantityDelta: 3,
	})

	assertAppErrorCode(t, err, "OUT_OF_STOCK")
}

func TestCartService_AddItem_ZeroDelta(t *testing.T) {
	fixtures := createTestCartService(t)

	_, err := fixtures.service.AddItem(context.Background(), uuid.New(), &usecase.AddItemInput{
		ProductID:     uuid.New(),
		QuantityDelta: 0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_AddItem_DecrementMissingLine(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	product := &entity.Product{ID: productID, Name: "Keyboard", Price: 100}
	cart := &entity.Cart{ID: cartID, UserID: userID, Status: entity.CartStatusActive}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			FindLine(ctx, cartID, productID, (*uuid.UUID)(nil)).
			Return(nil, repository.ErrCartLineNotFound)
	})

	_, err := fixtures.service.AddItem(ctx, userID, &usecase.AddItemInput{
		ProductID:     productID,
		QuantityDelta: -1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
}

func TestCartService_AddItem_ConcurrentDecrementConflict(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	product := &entity.Product{ID: productID, Name: "Keyboard", Price: 100}
	line := &entity.CartLine{CartID: cartID, ProductID: productID, Quantity: 3, UnitPrice: 100}
	cart := &entity.Cart{
		ID: cartID, UserID: userID, Status: entity.CartStatusActive,
		Lines: []*entity.CartLine{line}, ItemsCount: 3, TotalPrice: 300,
	}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)

	// A concurrent decrement shrank the line after the clamp was computed,
	// so the conditional update's guard rejects the delta.
	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			FindLine(ctx, cartID, productID, (*uuid.UUID)(nil)).
			Return(line, nil)
		txCart.EXPECT().
			IncrementLineQuantity(ctx, cartID, productID, (*uuid.UUID)(nil), -3).
			Return(0, repository.ErrCartLineConflict)
	})

	_, err := fixtures.service.AddItem(ctx, userID, &usecase.AddItemInput{
		ProductID:     productID,
		QuantityDelta: -3,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCartChanged)
}

func TestCartService_AddItem_CreatesCartOnFirstUse(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	product := &entity.Product{ID: productID, Name: "Keyboard", Price: 100}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)
	fixtures.inventoryRepo.EXPECT().FindByProduct(ctx, productID).Return(&entity.Inventory{ProductID: productID, Stock: 10}, nil)

	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, repository.ErrCartNotFound).Once()
	fixtures.cartRepo.EXPECT().
		CreateActive(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(ctx context.Context, cart *entity.Cart) {
			cart.ID = uuid.New()
		}).
		Return(nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).
		Return(&entity.Cart{UserID: userID, Status: entity.CartStatusActive}, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			FindLine(ctx, mock.AnythingOfType("uuid.UUID"), productID, (*uuid.UUID)(nil)).
			Return(nil, repository.ErrCartLineNotFound)
		txCart.EXPECT().
			InsertLine(ctx, mock.AnythingOfType("*entity.CartLine")).
			Return(nil)
		txCart.EXPECT().
			AdjustTotals(ctx, mock.AnythingOfType("uuid.UUID"), 1, 100.0).
			Return(nil)
	})

	_, err := fixtures.service.AddItem(ctx, userID, &usecase.AddItemInput{
		ProductID:     productID,
		QuantityDelta: 1,
	})

	require.NoError(t, err)
}

func TestCartService_SetItemQuantity_Success(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	product := &entity.Product{ID: productID, Name: "Keyboard", Price: 100}
	line := &entity.CartLine{CartID: cartID, ProductID: productID, Quantity: 2, UnitPrice: 100}
	cart := &entity.Cart{
		ID: cartID, UserID: userID, Status: entity.CartStatusActive,
		Lines: []*entity.CartLine{line}, ItemsCount: 2, TotalPrice: 200,
	}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)
	fixtures.inventoryRepo.EXPECT().FindByProduct(ctx, productID).Return(&entity.Inventory{ProductID: productID, Stock: 10}, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			SetLineQuantityCAS(ctx, cartID, productID, (*uuid.UUID)(nil), 5, 2).
			Return(nil)
		txCart.EXPECT().
			AdjustTotals(ctx, cartID, 3, 300.0).
			Return(nil)
	})

	_, err := fixtures.service.SetItemQuantity(ctx, userID, &usecase.SetItemQuantityInput{
		ProductID:           productID,
		NewQuantity:         5,
		ExpectedOldQuantity: 2,
	})

	require.NoError(t, err)
}

func TestCartService_SetItemQuantity_StaleExpectedQuantity(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	product := &entity.Product{ID: productID, Name: "Keyboard", Price: 100}
	line := &entity.CartLine{CartID: cartID, ProductID: productID, Quantity: 4, UnitPrice: 100}
	cart := &entity.Cart{
		ID: cartID, UserID: userID, Status: entity.CartStatusActive,
		Lines: []*entity.CartLine{line}, ItemsCount: 4, TotalPrice: 400,
	}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)
	fixtures.inventoryRepo.EXPECT().FindByProduct(ctx, productID).Return(&entity.Inventory{ProductID: productID, Stock: 10}, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			SetLineQuantityCAS(ctx, cartID, productID, (*uuid.UUID)(nil), 5, 2).
			Return(repository.ErrCartLineConflict)
	})

	_, err := fixtures.service.SetItemQuantity(ctx, userID, &usecase.SetItemQuantityInput{
		ProductID:           productID,
		NewQuantity:         5,
		ExpectedOldQuantity: 2,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCartChanged)
}

func TestCartService_SetItemQuantity_ZeroRemovesLine(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	product := &entity.Product{ID: productID, Name: "Keyboard", Price: 100}
	line := &entity.CartLine{CartID: cartID, ProductID: productID, Quantity: 2, UnitPrice: 100}
	cart := &entity.Cart{
		ID: cartID, UserID: userID, Status: entity.CartStatusActive,
		Lines: []*entity.CartLine{line}, ItemsCount: 2, TotalPrice: 200,
	}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			SetLineQuantityCAS(ctx, cartID, productID, (*uuid.UUID)(nil), 0, 2).
			Return(nil)
		txCart.EXPECT().
			DeleteLine(ctx, cartID, productID, (*uuid.UUID)(nil)).
			Return(nil)
		txCart.EXPECT().
			AdjustTotals(ctx, cartID, -2, -200.0).
			Return(nil)
	})

	_, err := fixtures.service.SetItemQuantity(ctx, userID, &usecase.SetItemQuantityInput{
		ProductID:           productID,
		NewQuantity:         0,
		ExpectedOldQuantity: 2,
	})

	require.NoError(t, err)
}

func TestCartService_SetItemQuantity_VariantSwap(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	newVariantID := uuid.New()

	product := &entity.Product{ID: productID, Name: "Keyboard", Price: 100}
	line := &entity.CartLine{CartID: cartID, ProductID: productID, Quantity: 2, UnitPrice: 100}
	cart := &entity.Cart{
		ID: cartID, UserID: userID, Status: entity.CartStatusActive,
		Lines: []*entity.CartLine{line}, ItemsCount: 2, TotalPrice: 200,
	}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)
	fixtures.catalogRepo.EXPECT().
		FindVariant(ctx, productID, newVariantID).
		Return(&entity.Variant{ID: newVariantID, ProductID: productID, Price: 120}, nil)
	fixtures.inventoryRepo.EXPECT().FindByProduct(ctx, productID).Return(&entity.Inventory{ProductID: productID, Stock: 10}, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			SetLineQuantityCAS(ctx, cartID, productID, (*uuid.UUID)(nil), 0, 2).
			Return(nil)
		txCart.EXPECT().
			DeleteLine(ctx, cartID, productID, (*uuid.UUID)(nil)).
			Return(nil)
		txCart.EXPECT().
			InsertLine(ctx, mock.MatchedBy(func(l *entity.CartLine) bool {
				return l.VariantID != nil && *l.VariantID == newVariantID &&
					l.Quantity == 3 && l.UnitPrice == 120
			})).
			Return(nil)
		// Deltas are computed from the verified quantity and both prices.
		txCart.EXPECT().
			AdjustTotals(ctx, cartID, 1, 160.0).
			Return(nil)
	})

	_, err := fixtures.service.SetItemQuantity(ctx, userID, &usecase.SetItemQuantityInput{
		ProductID:           productID,
		NewVariantID:        &newVariantID,
		NewQuantity:         3,
		ExpectedOldQuantity: 2,
	})

	require.NoError(t, err)
}

func TestCartService_SetItemQuantity_VariantSwapStaleQuantity(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	newVariantID := uuid.New()

	product := &entity.Product{ID: productID, Name: "Keyboard", Price: 100}
	line := &entity.CartLine{CartID: cartID, ProductID: productID, Quantity: 3, UnitPrice: 100}
	cart := &entity.Cart{
		ID: cartID, UserID: userID, Status: entity.CartStatusActive,
		Lines: []*entity.CartLine{line}, ItemsCount: 3, TotalPrice: 300,
	}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)
	fixtures.catalogRepo.EXPECT().FindProduct(ctx, productID).Return(product, nil)
	fixtures.catalogRepo.EXPECT().
		FindVariant(ctx, productID, newVariantID).
		Return(&entity.Variant{ID: newVariantID, ProductID: productID, Price: 120}, nil)
	fixtures.inventoryRepo.EXPECT().FindByProduct(ctx, productID).Return(&entity.Inventory{ProductID: productID, Stock: 10}, nil)

	// The stored quantity moved concurrently; the CAS rejects and the old
	// line is never deleted.
	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			SetLineQuantityCAS(ctx, cartID, productID, (*uuid.UUID)(nil), 0, 2).
			Return(repository.ErrCartLineConflict)
	})

	_, err := fixtures.service.SetItemQuantity(ctx, userID, &usecase.SetItemQuantityInput{
		ProductID:           productID,
		NewVariantID:        &newVariantID,
		NewQuantity:         3,
		ExpectedOldQuantity: 2,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCartChanged)
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	line := &entity.CartLine{CartID: cartID, ProductID: productID, Quantity: 3, UnitPrice: 50}
	cart := &entity.Cart{
		ID: cartID, UserID: userID, Status: entity.CartStatusActive,
		Lines: []*entity.CartLine{line}, ItemsCount: 3, TotalPrice: 150,
	}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txCart := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(txCart)

		txCart.EXPECT().
			DeleteLine(ctx, cartID, productID, (*uuid.UUID)(nil)).
			Return(nil)
		txCart.EXPECT().
			AdjustTotals(ctx, cartID, -3, -150.0).
			Return(nil)
	})

	_, err := fixtures.service.RemoveItem(ctx, userID, productID, nil)
	require.NoError(t, err)
}

func TestCartService_RemoveItem_MissingLine(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Status: entity.CartStatusActive}

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(cart, nil)

	_, err := fixtures.service.RemoveItem(ctx, userID, uuid.New(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
}

func TestCartService_GetCart_EmptyForNewUser(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fixtures.cartRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, repository.ErrCartNotFound)

	cart, err := fixtures.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.Equal(t, entity.CartStatusActive, cart.Status)
	assert.Empty(t, cart.Lines)
}

func TestCartService_GetCart_UnknownUser(t *testing.T) {
	fixtures := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.GetCart(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
