package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "shoply/internal/delivery/context"
	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discountService implements the DiscountUsecase interface.
type discountService struct {
	txManager    repository.TransactionManager
	discountRepo repository.DiscountRepository
	catalogRepo  repository.CatalogRepository
	logger       *slog.Logger
}

// DiscountServiceParams holds dependencies for DiscountService, injected by Fx.
type DiscountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DiscountRepo repository.DiscountRepository
	CatalogRepo  repository.CatalogRepository
	Logger       *slog.Logger
}

// NewDiscountService creates a new discount service instance
func NewDiscountService(params DiscountServiceParams) usecase.DiscountUsecase {
	return &discountService{
		txManager:    params.TxManager,
		discountRepo: params.DiscountRepo,
		catalogRepo:  params.CatalogRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *discountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Evaluate runs the eligibility chain in order and stops at the first
// failing rule, so the caller always learns the specific rejection reason.
// It reads, never consumes.
func (srv *discountService) Evaluate(ctx context.Context, input *usecase.EvaluateDiscountInput) (*usecase.EvaluateDiscountOutput, error) {
	if input.Code == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("discount code must not be empty")
	}

	discount, err := srv.discountRepo.FindByCode(ctx, input.ShopID, input.Code)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return nil, domainerrors.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to load discount")
	}

	if !discount.IsActive {
		return nil, domainerrors.ErrDiscountNotActive
	}

	if !discount.WithinValidity(time.Now()) {
		return nil, domainerrors.ErrDiscountExpired
	}

	// Both quotas are remaining counts; zero means exhausted, negative means
	// unlimited. A zero per-user quota rejects before any usage lookup.
	if discount.MaxUses == 0 {
		return nil, domainerrors.ErrDiscountMaxUsesReached
	}
	if discount.MaxUsesPerUser == 0 {
		return nil, domainerrors.ErrDiscountPerUserLimit
	}

	orderTotal := 0.0
	eligibleTotal := 0.0
	for _, product := range input.Products {
		subtotal := product.Price * float64(product.Quantity)
		orderTotal += subtotal
		if discount.CoversProduct(product.ProductID) {
			eligibleTotal += subtotal
		}
	}

	// The minimum-order rule outranks the per-user rule: when both fail the
	// caller is told to grow the order, not that the code is spent.
	if orderTotal < discount.MinOrderValue {
		return nil, domainerrors.ErrDiscountMinOrderNotMet.WithDetails(
			fmt.Sprintf("minimum order value: %.2f", discount.MinOrderValue))
	}

	if discount.MaxUsesPerUser > 0 && usageCount(discount, input.UserID) >= discount.MaxUsesPerUser {
		return nil, domainerrors.ErrDiscountPerUserLimit
	}

	if eligibleTotal == 0 {
		return nil, domainerrors.ErrDiscountNotApplicable
	}

	amount := discount.ComputeAmount(eligibleTotal)
	if amount > eligibleTotal {
		amount = eligibleTotal
	}

	return &usecase.EvaluateDiscountOutput{
		DiscountID:         discount.ID,
		OrderTotal:         orderTotal,
		DiscountAmount:     amount,
		TotalAfterDiscount: orderTotal - amount,
	}, nil
}

// Create registers a new discount under the given shop.
func (srv *discountService) Create(ctx context.Context, shopID uuid.UUID, input *usecase.CreateDiscountInput) (*entity.Discount, error) {
	if err := validateDiscountInput(input); err != nil {
		return nil, err
	}

	if _, err := srv.catalogRepo.FindShop(ctx, shopID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to verify shop")
	}

	discount := &entity.Discount{
		ShopID:         shopID,
		Code:           input.Code,
		Name:           input.Name,
		Type:           input.Type,
		Value:          input.Value,
		MaxUses:        input.MaxUses,
		MaxUsesPerUser: input.MaxUsesPerUser,
		MinOrderValue:  input.MinOrderAmount,
		StartsAt:       input.ValidFrom,
		EndsAt:         input.ValidUntil,
		IsActive:       true,
		AppliesTo:      input.AppliesTo,
		ProductIDs:     input.ProductIDs,
	}

	if err := srv.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Discount created",
		slog.Any("shopID", shopID),
		slog.String("code", discount.Code),
	)

	return discount, nil
}

// ListByShop pages through a shop's discounts.
func (srv *discountService) ListByShop(ctx context.Context, shopID uuid.UUID, limit, offset int) ([]*entity.Discount, int64, error) {
	limit, offset = clampPage(limit, offset)

	return srv.discountRepo.ListByShop(ctx, shopID, limit, offset)
}

// CancelUsage reverts one recorded use of a code for a user.
func (srv *discountService) CancelUsage(ctx context.Context, shopID uuid.UUID, code string, userID uuid.UUID) error {
	discount, err := srv.discountRepo.FindByCode(ctx, shopID, code)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return domainerrors.ErrDiscountNotFound
		}

		return errors.Wrap(err, "failed to load discount")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.DiscountRepo().RevertUsage(ctx, discount.ID, userID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDiscountUsageNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("no usage recorded for user")
		}

		return err
	}

	return nil
}

// Delete removes a discount owned by the shop.
func (srv *discountService) Delete(ctx context.Context, shopID, discountID uuid.UUID) error {
	if err := srv.discountRepo.Delete(ctx, shopID, discountID); err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return domainerrors.ErrDiscountNotFound
		}

		return err
	}

	srv.log(ctx).Info("Discount deleted",
		slog.Any("shopID", shopID),
		slog.Any("discountID", discountID),
	)

	return nil
}

// usageCount counts how many times the user consumed this discount.
func usageCount(discount *entity.Discount, userID uuid.UUID) int {
	count := 0
	for _, id := range discount.UsedUserIDs {
		if id == userID {
			count++
		}
	}

	return count
}

func validateDiscountInput(input *usecase.CreateDiscountInput) error {
	if input.Code == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("discount code must not be empty")
	}

	switch input.Type {
	case entity.DiscountTypePercentage:
		if input.Value <= 0 || input.Value > 100 {
			return domainerrors.ErrValidationFailed.WrapMessage("percentage value must be in (0, 100]")
		}
	case entity.DiscountTypeFixedAmount:
		if input.Value <= 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("fixed amount must be positive")
		}
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown discount type")
	}

	if input.AppliesTo == entity.DiscountAppliesSpecific && len(input.ProductIDs) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("specific discount needs at least one product")
	}

	if !input.ValidUntil.After(input.ValidFrom) {
		return domainerrors.ErrValidationFailed.WrapMessage("validity window must end after it starts")
	}

	return nil
}

// clampPage normalizes paging arguments.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
