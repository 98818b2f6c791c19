// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "shoply/internal/delivery/context"
	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager     repository.TransactionManager
	cartRepo      repository.CartRepository
	catalogRepo   repository.CatalogRepository
	userRepo      repository.UserRepository
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	CartRepo      repository.CartRepository
	CatalogRepo   repository.CatalogRepository
	UserRepo      repository.UserRepository
	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:     params.TxManager,
		cartRepo:      params.CartRepo,
		catalogRepo:   params.CatalogRepo,
		userRepo:      params.UserRepo,
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem applies a quantity delta to the user's active cart. The line
// mutation and the aggregate adjustment commit in one transaction; the
// quantity arithmetic itself is a conditional statement on the stored value,
// so two concurrent requests from the same user both land.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddItemInput) (*entity.Cart, error) {
	if input.QuantityDelta == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity delta must be non-zero")
	}

	if err := srv.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	product, unitPrice, err := srv.resolveProduct(ctx, input.ProductID, input.VariantID)
	if err != nil {
		return nil, err
	}

	cart, err := srv.getOrCreateActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Positive deltas are validated against live stock before touching the
	// cart; the stored quantity is the baseline, not anything client-sent.
	if input.QuantityDelta > 0 {
		current := 0
		if line := cart.FindLine(input.ProductID, input.VariantID); line != nil {
			current = line.Quantity
		}
		if err := srv.checkStock(ctx, input.ProductID, current+input.QuantityDelta); err != nil {
			return nil, err
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txCart := repoFactory.CartRepo()

		line, err := txCart.FindLine(ctx, cart.ID, input.ProductID, input.VariantID)
		if err != nil {
			if !errors.Is(err, repository.ErrCartLineNotFound) {
				return err
			}
			if input.QuantityDelta < 0 {
				return domainerrors.ErrCartLineNotFound
			}

			newLine := &entity.CartLine{
				CartID:    cart.ID,
				ProductID: input.ProductID,
				VariantID: input.VariantID,
				ShopID:    product.ShopID,
				Name:      product.Name,
				Thumbnail: product.Thumbnail,
				Quantity:  input.QuantityDelta,
				UnitPrice: unitPrice,
			}
			if err := txCart.InsertLine(ctx, newLine); err != nil {
				if !errors.Is(err, repository.ErrCartLineConflict) {
					return err
				}
				// A concurrent add won the insert race; fold into it.
				if _, err := txCart.IncrementLineQuantity(ctx, cart.ID, input.ProductID, input.VariantID, input.QuantityDelta); err != nil {
					return err
				}
			}

			return txCart.AdjustTotals(ctx, cart.ID, input.QuantityDelta, float64(input.QuantityDelta)*unitPrice)
		}

		// Negative deltas clamp to the stored quantity so the line never
		// goes below zero no matter what the client sends.
		applied := input.QuantityDelta
		if applied < 0 && line.Quantity+applied < 0 {
			applied = -line.Quantity
		}
		if applied == 0 {
			return nil
		}

		newQuantity, err := txCart.IncrementLineQuantity(ctx, cart.ID, input.ProductID, input.VariantID, applied)
		if err != nil {
			// A conflict means a concurrent decrement shrank the line below
			// what the clamp was computed against.
			if errors.Is(err, repository.ErrCartLineConflict) {
				return domainerrors.ErrCartChanged
			}
			if errors.Is(err, repository.ErrCartLineNotFound) {
				return domainerrors.ErrCartLineNotFound
			}

			return err
		}
		if newQuantity <= 0 {
			if err := txCart.DeleteLine(ctx, cart.ID, input.ProductID, input.VariantID); err != nil {
				return err
			}
		}

		return txCart.AdjustTotals(ctx, cart.ID, applied, float64(applied)*line.UnitPrice)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to apply cart line delta",
			slog.Any("userID", userID),
			slog.Any("productID", input.ProductID),
			slog.Int("delta", input.QuantityDelta),
			slog.Any("error", err),
		)

		return nil, err
	}

	return srv.cartRepo.FindActiveByUser(ctx, userID)
}

// SetItemQuantity sets an exact line quantity under optimistic concurrency.
// A stale expectedOldQuantity fails with a conflict; the cart stays exactly
// as it was.
func (srv *cartService) SetItemQuantity(ctx context.Context, userID uuid.UUID, input *usecase.SetItemQuantityInput) (*entity.Cart, error) {
	if input.NewQuantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("new quantity must not be negative")
	}

	if err := srv.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, err
	}

	line := cart.FindLine(input.ProductID, input.VariantID)
	if line == nil {
		return nil, domainerrors.ErrCartLineNotFound
	}

	targetVariant := input.VariantID
	swapping := input.NewVariantID != nil && !sameVariant(input.VariantID, input.NewVariantID)
	if swapping {
		targetVariant = input.NewVariantID
	}

	_, targetPrice, err := srv.resolveProduct(ctx, input.ProductID, targetVariant)
	if err != nil {
		return nil, err
	}

	if input.NewQuantity > 0 {
		if err := srv.checkStock(ctx, input.ProductID, input.NewQuantity); err != nil {
			return nil, err
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txCart := repoFactory.CartRepo()

		if swapping {
			return srv.swapLineVariant(ctx, txCart, cart, line, input, targetPrice)
		}

		if err := txCart.SetLineQuantityCAS(ctx, cart.ID, input.ProductID, input.VariantID, input.NewQuantity, input.ExpectedOldQuantity); err != nil {
			if errors.Is(err, repository.ErrCartLineConflict) {
				return domainerrors.ErrCartChanged
			}
			if errors.Is(err, repository.ErrCartLineNotFound) {
				return domainerrors.ErrCartLineNotFound
			}

			return err
		}

		if input.NewQuantity == 0 {
			if err := txCart.DeleteLine(ctx, cart.ID, input.ProductID, input.VariantID); err != nil {
				return err
			}
		}

		itemsDelta := input.NewQuantity - input.ExpectedOldQuantity

		return txCart.AdjustTotals(ctx, cart.ID, itemsDelta, float64(itemsDelta)*line.UnitPrice)
	})
	if err != nil {
		return nil, err
	}

	return srv.cartRepo.FindActiveByUser(ctx, userID)
}

// swapLineVariant replaces a line's SKU inside the caller's transaction. The
// old line's quantity is first zeroed under the same CAS as the non-swap
// path, so a concurrent mutation between the cart read and this transaction
// surfaces as a conflict instead of silently deleting more units than the
// aggregates are adjusted by. The quantity then re-enters under the new
// variant at that variant's snapshot price, merging with an existing line if
// present.
func (srv *cartService) swapLineVariant(ctx context.Context, txCart repository.CartRepository, cart *entity.Cart, line *entity.CartLine, input *usecase.SetItemQuantityInput, targetPrice float64) error {
	if err := txCart.SetLineQuantityCAS(ctx, cart.ID, input.ProductID, input.VariantID, 0, input.ExpectedOldQuantity); err != nil {
		if errors.Is(err, repository.ErrCartLineConflict) {
			return domainerrors.ErrCartChanged
		}
		if errors.Is(err, repository.ErrCartLineNotFound) {
			return domainerrors.ErrCartLineNotFound
		}

		return err
	}

	if err := txCart.DeleteLine(ctx, cart.ID, input.ProductID, input.VariantID); err != nil {
		return err
	}

	if input.NewQuantity > 0 {
		newLine := &entity.CartLine{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			VariantID: input.NewVariantID,
			ShopID:    line.ShopID,
			Name:      line.Name,
			Thumbnail: line.Thumbnail,
			Quantity:  input.NewQuantity,
			UnitPrice: targetPrice,
		}
		if err := txCart.InsertLine(ctx, newLine); err != nil {
			if !errors.Is(err, repository.ErrCartLineConflict) {
				return err
			}
			if _, err := txCart.IncrementLineQuantity(ctx, cart.ID, input.ProductID, input.NewVariantID, input.NewQuantity); err != nil {
				return err
			}
		}
	}

	itemsDelta := input.NewQuantity - input.ExpectedOldQuantity
	priceDelta := float64(input.NewQuantity)*targetPrice - float64(input.ExpectedOldQuantity)*line.UnitPrice

	return txCart.AdjustTotals(ctx, cart.ID, itemsDelta, priceDelta)
}

// RemoveItem deletes the (product, variant) line and adjusts aggregates.
func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID, variantID *uuid.UUID) (*entity.Cart, error) {
	if err := srv.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, err
	}

	line := cart.FindLine(productID, variantID)
	if line == nil {
		return nil, domainerrors.ErrCartLineNotFound
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txCart := repoFactory.CartRepo()

		if err := txCart.DeleteLine(ctx, cart.ID, productID, variantID); err != nil {
			if errors.Is(err, repository.ErrCartLineNotFound) {
				return domainerrors.ErrCartLineNotFound
			}

			return err
		}

		return txCart.AdjustTotals(ctx, cart.ID, -line.Quantity, -line.Subtotal())
	})
	if err != nil {
		return nil, err
	}

	return srv.cartRepo.FindActiveByUser(ctx, userID)
}

// GetCart returns the user's active cart. A user who never added anything
// gets an empty active cart rather than an error.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	if err := srv.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return entity.NewActiveCart(userID), nil
		}

		return nil, err
	}

	return cart, nil
}

// getOrCreateActiveCart finds the user's active cart, creating it on first
// use. Losing the creation race to a concurrent request is fine; the winner's
// cart is fetched instead.
func (srv *cartService) getOrCreateActiveCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindActiveByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to load active cart")
	}

	cart = entity.NewActiveCart(userID)
	if err := srv.cartRepo.CreateActive(ctx, cart); err != nil {
		if errors.Is(err, repository.ErrDuplicateActiveCart) {
			return srv.cartRepo.FindActiveByUser(ctx, userID)
		}

		return nil, errors.Wrap(err, "failed to create active cart")
	}

	return cart, nil
}

// --- helpers shared across services ---

func (srv *cartService) checkUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to verify user")
	}

	return nil
}

// resolveProduct loads the product and resolves the unit price, preferring
// the variant's own price when a variant is given.
func (srv *cartService) resolveProduct(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID) (*entity.Product, float64, error) {
	product, err := srv.catalogRepo.FindProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, 0, domainerrors.ErrProductNotFound
		}

		return nil, 0, errors.Wrap(err, "failed to load product")
	}

	price := product.Price
	if variantID != nil {
		variant, err := srv.catalogRepo.FindVariant(ctx, productID, *variantID)
		if err != nil {
			if errors.Is(err, repository.ErrVariantNotFound) {
				return nil, 0, domainerrors.ErrVariantNotFound
			}

			return nil, 0, errors.Wrap(err, "failed to load variant")
		}
		price = variant.Price
	}

	return product, price, nil
}

// checkStock verifies the requested quantity against live stock. A product
// with no inventory record reads as zero stock.
func (srv *cartService) checkStock(ctx context.Context, productID uuid.UUID, wanted int) error {
	inventory, err := srv.inventoryRepo.FindByProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return domainerrors.ErrOutOfStock.WithDetails("available: 0")
		}

		return errors.Wrap(err, "failed to check stock")
	}

	if inventory.Stock < wanted {
		return domainerrors.ErrOutOfStock.WithDetails(fmt.Sprintf("available: %d", inventory.Stock))
	}

	return nil
}

func sameVariant(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
