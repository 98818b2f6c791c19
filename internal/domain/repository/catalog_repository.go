package repository

import (
	"context"
	"errors"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no catalog product matches the id.
var ErrProductNotFound = errors.New("product not found")

// ErrVariantNotFound is returned when no variant matches (product, variant).
var ErrVariantNotFound = errors.New("variant not found")

// ErrShopNotFound is returned when no shop matches the id.
var ErrShopNotFound = errors.New("shop not found")

// CatalogRepository is the read-only view of the product/shop catalog this
// core consumes. Catalog prices are the authoritative truth for checkout
// re-validation.
type CatalogRepository interface {
	// FindProduct retrieves a published product by id.
	FindProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindVariant retrieves a product's variant by id.
	FindVariant(ctx context.Context, productID, variantID uuid.UUID) (*entity.Variant, error)

	// FindShop retrieves a shop by id.
	FindShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
}
