package impl

import (
	"context"
	"testing"
	"time"

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

type discountServiceFixtures struct {
	service      usecase.DiscountUsecase
	txManager    *mockRepo.MockTransactionManager
	discountRepo *mockRepo.MockDiscountRepository
	catalogRepo  *mockRepo.MockCatalogRepository
}

func createTestDiscountService(t *testing.T) discountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	service := NewDiscountService(DiscountServiceParams{
		TxManager:    txManager,
		DiscountRepo: discountRepo,
		CatalogRepo:  catalogRepo,
		Logger:       newDiscardLogger(),
	})

	return discountServiceFixtures{
		service:      service,
		txManager:    txManager,
		discountRepo: discountRepo,
		catalogRepo:  catalogRepo,
	}
}

// activeDiscount builds a discount that passes every eligibility rule unless
// the test overrides a field.
func activeDiscount(shopID uuid.UUID) *entity.Discount {
	now := time.Now()

	return &entity.Discount{
		ID:             uuid.New(),
		ShopID:         shopID,
		Code:           "SUMMER10",
		Type:           entity.DiscountTypePercentage,
		Value:          10,
		MaxUses:        -1,
		MaxUsesPerUser: -1,
		StartsAt:       now.Add(-time.Hour),
		EndsAt:         now.Add(time.Hour),
		IsActive:       true,
		AppliesTo:      entity.DiscountAppliesAll,
	}
}

func TestDiscountService_Evaluate_Percentage(t *testing.T) {
	fixtures := createTestDiscountService(t)

	ctx := context.Background()
	shopID := uuid.New()
	discount := activeDiscount(shopID)

	fixtures.discountRepo.EXPECT().FindByCode(ctx, shopID, "SUMMER10").Return(discount, nil)

	output, err := fixtures.service.Evaluate(ctx, &usecase.EvaluateDiscountInput{
		Code:   "SUMMER10",
		UserID: uuid.New(),
		ShopID: shopID,
		Products: []usecase.DiscountProduct{
			{ProductID: uuid.New(), Price: 100, Quantity: 2},
			{ProductID: uuid.New(), Price: 50, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, discount.ID, output.DiscountID)
	assert.InDelta(t, 250.0, output.OrderTotal, 0.001)
	assert.InDelta(t, 25.0, output.DiscountAmount, 0.001)
	assert.InDelta(t, 225.0, output.TotalAfterDiscount, 0.001)
}

func TestDiscountService_Evaluate_FixedAmountCappedAtEligibleTotal(t *testing.T) {
	fixtures := createTestDiscountService(t)

	ctx := context.Background()
	shopID := uuid.New()
	eligible := uuid.New()

	discount := activeDiscount(shopID)
	discount.Type = entity.DiscountTypeFixedAmount
	discount.Value = 500
	discount.AppliesTo = entity.DiscountAppliesSpecific
	discount.ProductIDs = []uuid.UUID{eligible}

	fixtures.discountRepo.EXPECT().FindByCode(ctx, shopID, "SUMMER10").Return(discount, nil)

	output, err := fixtures.service.Evaluate(ctx, &usecase.EvaluateDiscountInput{
		Code:   "SUMMER10",
		UserID: uuid.New(),
		ShopID: shopID,
		Products: []usecase.DiscountProduct{
			{ProductID: eligible, Price: 80, Quantity: 1},
			{ProductID: uuid.New(), Price: 300, Quantity: 1},
		},
	})

	require.NoError(t, err)
	// The deduction never exceeds what the covered lines are worth.
	assert.InDelta(t, 80.0, output.DiscountAmount, 0.001)
	assert.InDelta(t, 380.0, output.OrderTotal, 0.001)
	assert.InDelta(t, 300.0, output.TotalAfterDiscount, 0.001)
}

func TestDiscountService_Evaluate_Rejections(t *testing.T) {
	shopID := uuid.New()
	userID := uuid.New()
	productID := uuid.New()

	products := []usecase.DiscountProduct{{ProductID: productID, Price: 100, Quantity: 1}}

	tests := []struct {
		name     string
		mutate   func(d *entity.Discount)
		products []usecase.DiscountProduct
		wantErr  error
		wantCode string
	}{
		{
			name:     "inactive",
			mutate:   func(d *entity.Discount) { d.IsActive = false },
			products: products,
			wantErr:  domainerrors.ErrDiscountNotActive,
		},
		{
			name: "expired",
			mutate: func(d *entity.Discount) {
				d.StartsAt = time.Now().Add(-2 * time.Hour)
				d.EndsAt = time.Now().Add(-time.Hour)
			},
			products: products,
			wantErr:  domainerrors.ErrDiscountExpired,
		},
		{
			name:     "global quota exhausted",
			mutate:   func(d *entity.Discount) { d.MaxUses = 0 },
			products: products,
			wantErr:  domainerrors.ErrDiscountMaxUsesReached,
		},
		{
			name:     "zero per-user quota grants nothing",
			mutate:   func(d *entity.Discount) { d.MaxUsesPerUser = 0 },
			products: products,
			wantErr:  domainerrors.ErrDiscountPerUserLimit,
		},
		{
			name: "per-user limit reached",
			mutate: func(d *entity.Discount) {
				d.MaxUsesPerUser = 1
				d.UsedUserIDs = []uuid.UUID{userID}
			},
			products: products,
			wantErr:  domainerrors.ErrDiscountPerUserLimit,
		},
		{
			name: "no covered products",
			mutate: func(d *entity.Discount) {
				d.AppliesTo = entity.DiscountAppliesSpecific
				d.ProductIDs = []uuid.UUID{uuid.New()}
			},
			products: products,
			wantErr:  domainerrors.ErrDiscountNotApplicable,
		},
		{
			name:     "minimum order not met",
			mutate:   func(d *entity.Discount) { d.MinOrderValue = 500 },
			products: products,
			wantCode: "DISCOUNT_MIN_ORDER_NOT_MET",
		},
		{
			name: "minimum order outranks per-user limit",
			mutate: func(d *entity.Discount) {
				d.MinOrderValue = 500
				d.MaxUsesPerUser = 1
				d.UsedUserIDs = []uuid.UUID{userID}
			},
			products: products,
			wantCode: "DISCOUNT_MIN_ORDER_NOT_MET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures := createTestDiscountService(t)

			ctx := context.Background()
			discount := activeDiscount(shopID)
			tt.mutate(discount)

			fixtures.discountRepo.EXPECT().FindByCode(ctx, shopID, "SUMMER10").Return(discount, nil)

			_, err := fixtures.service.Evaluate(ctx, &usecase.EvaluateDiscountInput{
				Code:     "SUMMER10",
				UserID:   userID,
				ShopID:   shopID,
				Products: tt.products,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assertAppErrorCode(t, err, tt.wantCode)
			}
		})
	}
}

func TestDiscountService_Evaluate_NegativeMaxUsesIsUnlimited(t *testing.T) {
	fixtures := createTestDiscountService(t)

	ctx := context.Background()
	shopID := uuid.New()
	discount := activeDiscount(shopID)
	discount.MaxUses = -1

	fixtures.discountRepo.EXPECT().FindByCode(ctx, shopID, "SUMMER10").Return(discount, nil)

	_, err := fixtures.service.Evaluate(ctx, &usecase.EvaluateDiscountInput{
		Code:     "SUMMER10",
		UserID:   uuid.New(),
		ShopID:   shopID,
		Products: []usecase.DiscountProduct{{ProductID: uuid.New(), Price: 100, Quantity: 1}},
	})

	require.NoError(t, err)
}

func TestDiscountService_Evaluate_UnknownCode(t *testing.T) {
	fixtures := createTestDiscountService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fixtures.discountRepo.EXPECT().FindByCode(ctx, shopID, "NOPE").Return(nil, repository.ErrDiscountNotFound)

	_, err := fixtures.service.Evaluate(ctx, &usecase.EvaluateDiscountInput{
		Code:     "NOPE",
		UserID:   uuid.New(),
		ShopID:   shopID,
		Products: []usecase.DiscountProduct{{ProductID: uuid.New(), Price: 100, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrDiscountNotFound)
}

func TestDiscountService_Create_Success(t *testing.T) {
	fixtures := createTestDiscountService(t)

	ctx := context.Background()
	shopID := uuid.New()
	now := time.Now()

	fixtures.catalogRepo.EXPECT().FindShop(ctx, shopID).Return(&entity.Shop{ID: shopID}, nil)
	fixtures.discountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Discount")).Return(nil)

	discount, err := fixtures.service.Create(ctx, shopID, &usecase.CreateDiscountInput{
		Code:       "WELCOME",
		Name:       "新客折扣",
		Type:       entity.DiscountTypePercentage,
		Value:      15,
		AppliesTo:  entity.DiscountAppliesAll,
		MaxUses:    100,
		ValidFrom:  now,
		ValidUntil: now.Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, shopID, discount.ShopID)
	assert.Equal(t, "WELCOME", discount.Code)
	assert.True(t, discount.IsActive)
}

func TestDiscountService_Create_Validation(t *testing.T) {
	now := time.Now()

	valid := func() *usecase.CreateDiscountInput {
		return &usecase.CreateDiscountInput{
			Code:       "WELCOME",
			Type:       entity.DiscountTypePercentage,
			Value:      15,
			AppliesTo:  entity.DiscountAppliesAll,
			ValidFrom:  now,
			ValidUntil: now.Add(time.Hour),
		}
	}

	tests := []struct {
		name   string
		mutate func(input *usecase.CreateDiscountInput)
	}{
		{name: "empty code", mutate: func(in *usecase.CreateDiscountInput) { in.Code = "" }},
		{name: "percentage over 100", mutate: func(in *usecase.CreateDiscountInput) { in.Value = 120 }},
		{name: "non-positive fixed amount", mutate: func(in *usecase.CreateDiscountInput) {
			in.Type = entity.DiscountTypeFixedAmount
			in.Value = 0
		}},
		{name: "unknown type", mutate: func(in *usecase.CreateDiscountInput) { in.Type = "bogus" }},
		{name: "specific without products", mutate: func(in *usecase.CreateDiscountInput) {
			in.AppliesTo = entity.DiscountAppliesSpecific
			in.ProductIDs = nil
		}},
		{name: "inverted validity window", mutate: func(in *usecase.CreateDiscountInput) {
			in.ValidUntil = in.ValidFrom.Add(-time.Hour)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures := createTestDiscountService(t)

			input := valid()
			tt.mutate(input)

			_, err := fixtures.service.Create(context.Background(), uuid.New(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDiscountService_CancelUsage_Success(t *testing.T) {
	fixtures := createTestDiscountService(t)

	ctx := context.Background()
	shopID := uuid.New()
	userID := uuid.New()
	discount := activeDiscount(shopID)

	fixtures.discountRepo.EXPECT().FindByCode(ctx, shopID, "SUMMER10").Return(discount, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txDiscount := mockRepo.NewMockDiscountRepository(t)
		factory.EXPECT().DiscountRepo().Return(txDiscount)

		txDiscount.EXPECT().RevertUsage(ctx, discount.ID, userID).Return(nil)
	})

	err := fixtures.service.CancelUsage(ctx, shopID, "SUMMER10", userID)
	require.NoError(t, err)
}

func TestDiscountService_CancelUsage_NothingRecorded(t *testing.T) {
	fixtures := createTestDiscountService(t)

	ctx := context.Background()
	shopID := uuid.New()
	userID := uuid.New()
	discount := activeDiscount(shopID)

	fixtures.discountRepo.EXPECT().FindByCode(ctx, shopID, "SUMMER10").Return(discount, nil)

	expectTxExecute(t, fixtures.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txDiscount := mockRepo.NewMockDiscountRepository(t)
		factory.EXPECT().DiscountRepo().Return(txDiscount)

		txDiscount.EXPECT().RevertUsage(ctx, discount.ID, userID).Return(repository.ErrDiscountUsageNotFound)
	})

	err := fixtures.service.CancelUsage(ctx, shopID, "SUMMER10", userID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDiscountService_Delete_NotFound(t *testing.T) {
	fixtures := createTestDiscountService(t)

	ctx := context.Background()
	shopID := uuid.New()
	discountID := uuid.New()

	fixtures.discountRepo.EXPECT().Delete(ctx, shopID, discountID).Return(repository.ErrDiscountNotFound)

	err := fixtures.service.Delete(ctx, shopID, discountID)
	assert.ErrorIs(t, err, domainerrors.ErrDiscountNotFound)
}

func TestDiscountService_ListByShop_ClampsPaging(t *testing.T) {
	fixtures := createTestDiscountService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fixtures.discountRepo.EXPECT().ListByShop(ctx, shopID, 20, 0).Return([]*entity.Discount{}, int64(0), nil)

	_, total, err := fixtures.service.ListByShop(ctx, shopID, -5, -3)
	require.NoError(t, err)
	assert.Zero(t, total)
}
