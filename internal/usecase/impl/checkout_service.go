package impl

import (
	"context"
	"fmt"
	"log/slog"

	"shoply/config"
	deliverycontext "shoply/internal/delivery/context"
	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cartRepo        repository.CartRepository
	catalogRepo     repository.CatalogRepository
	userRepo        repository.UserRepository
	inventoryRepo   repository.InventoryRepository
	discountUsecase usecase.DiscountUsecase
	shippingFee     float64
	logger          *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartRepo        repository.CartRepository
	CatalogRepo     repository.CatalogRepository
	UserRepo        repository.UserRepository
	InventoryRepo   repository.InventoryRepository
	DiscountUsecase usecase.DiscountUsecase
	Config          *config.Config
	Logger          *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	shippingFee := 0.0
	if params.Config.Checkout != nil {
		shippingFee = params.Config.Checkout.DefaultShippingFee
	}

	return &checkoutService{
		cartRepo:        params.CartRepo,
		catalogRepo:     params.CatalogRepo,
		userRepo:        params.UserRepo,
		inventoryRepo:   params.InventoryRepo,
		discountUsecase: params.DiscountUsecase,
		shippingFee:     shippingFee,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Review validates the client's snapshot against live server state and
// reprices everything. It performs no writes, so repeating it with the same
// inputs and unchanged state returns the same result.
func (srv *checkoutService) Review(ctx context.Context, userID uuid.UUID, input *usecase.ReviewInput) (*usecase.ReviewOutput, error) {
	if len(input.ShopGroups) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("checkout needs at least one shop group")
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to verify user")
	}

	cart, err := srv.cartRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.ID != input.CartID {
		return nil, domainerrors.ErrCartChanged.WithDetails("cart id does not match the active cart")
	}

	output := &usecase.ReviewOutput{
		ShopGroups: make([]usecase.ShopGroupReview, 0, len(input.ShopGroups)),
	}
	totalPrice := 0.0
	totalDiscount := 0.0

	for _, group := range input.ShopGroups {
		reviewed, err := srv.reviewShopGroup(ctx, userID, cart, &group)
		if err != nil {
			return nil, err
		}

		totalPrice += reviewed.PriceRaw
		totalDiscount += reviewed.PriceRaw - reviewed.PriceApplyDiscount
		output.ShopGroups = append(output.ShopGroups, *reviewed)
	}

	output.Summary = entity.CheckoutSummary{
		TotalPrice:    totalPrice,
		ShippingFee:   srv.shippingFee,
		TotalDiscount: totalDiscount,
		TotalCheckout: totalPrice - totalDiscount + srv.shippingFee,
	}

	return output, nil
}

// reviewShopGroup reprices one shop's slice: live catalog prices win over
// client prices, quantities must match the stored cart, and stock must cover
// every line.
func (srv *checkoutService) reviewShopGroup(ctx context.Context, userID uuid.UUID, cart *entity.Cart, group *usecase.ShopGroupInput) (*usecase.ShopGroupReview, error) {
	if len(group.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("shop group has no items")
	}

	shop, err := srv.catalogRepo.FindShop(ctx, group.ShopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to load shop")
	}

	lines := make([]entity.OrderLine, 0, len(group.Items))
	priceRaw := 0.0
	discountProducts := make([]usecase.DiscountProduct, 0, len(group.Items))

	for _, item := range group.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("item quantity must be positive")
		}

		storedLine := cart.FindLine(item.ProductID, item.VariantID)
		if storedLine == nil || storedLine.Quantity != item.Quantity {
			return nil, domainerrors.ErrCartChanged
		}

		product, err := srv.catalogRepo.FindProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound
			}

			return nil, errors.Wrap(err, "failed to load product")
		}

		livePrice := product.Price
		if item.VariantID != nil {
			variant, err := srv.catalogRepo.FindVariant(ctx, item.ProductID, *item.VariantID)
			if err != nil {
				if errors.Is(err, repository.ErrVariantNotFound) {
					return nil, domainerrors.ErrVariantNotFound
				}

				return nil, errors.Wrap(err, "failed to load variant")
			}
			livePrice = variant.Price
		}

		if item.Price != livePrice {
			return nil, domainerrors.ErrPriceChanged.WithDetails(
				fmt.Sprintf("product %s: price is now %.2f", item.ProductID, livePrice))
		}

		inventory, err := srv.inventoryRepo.FindByProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrInventoryNotFound) {
				return nil, domainerrors.ErrOutOfStock.WithDetails("available: 0")
			}

			return nil, errors.Wrap(err, "failed to check stock")
		}
		if inventory.Stock < item.Quantity {
			return nil, domainerrors.ErrOutOfStock.WithDetails(
				fmt.Sprintf("product %s: available %d", item.ProductID, inventory.Stock))
		}

		lines = append(lines, entity.OrderLine{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: livePrice,
		})
		priceRaw += livePrice * float64(item.Quantity)
		discountProducts = append(discountProducts, usecase.DiscountProduct{
			ProductID: item.ProductID,
			Price:     livePrice,
			Quantity:  item.Quantity,
		})
	}

	reviewed := &usecase.ShopGroupReview{
		ShopID:             group.ShopID,
		ShopName:           shop.Name,
		DiscountCode:       group.DiscountCode,
		Lines:              lines,
		PriceRaw:           priceRaw,
		PriceApplyDiscount: priceRaw,
	}

	if group.DiscountCode != "" {
		evaluated, err := srv.discountUsecase.Evaluate(ctx, &usecase.EvaluateDiscountInput{
			Code:     group.DiscountCode,
			UserID:   userID,
			ShopID:   group.ShopID,
			Products: discountProducts,
		})
		if err != nil {
			return nil, err
		}

		reviewed.DiscountID = &evaluated.DiscountID
		reviewed.PriceApplyDiscount = priceRaw - evaluated.DiscountAmount
	}

	return reviewed, nil
}

// DefaultAddress returns the user's default shipping address.
func (srv *checkoutService) DefaultAddress(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	address, err := srv.userRepo.FindDefaultAddress(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load default address")
	}

	return address, nil
}
