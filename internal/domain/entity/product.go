package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductKind tags the closed set of product categories. Kind-specific
// attributes live in the Attributes payload behind the tag; common fields
// stay on Product itself.
type ProductKind string

const (
	ProductKindBook        ProductKind = "book"
	ProductKindClothing    ProductKind = "clothing"
	ProductKindElectronics ProductKind = "electronics"
)

// BookAttributes holds book-specific fields.
type BookAttributes struct {
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	ISBN      string `json:"isbn"`
}

// ClothingAttributes holds clothing-specific fields.
type ClothingAttributes struct {
	Brand    string `json:"brand"`
	Material string `json:"material"`
	Size     string `json:"size"`
}

// ElectronicsAttributes holds electronics-specific fields.
type ElectronicsAttributes struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Warranty     string `json:"warranty"`
}

// ProductAttributes is the kind-specific payload; exactly one field is set,
// matching the Kind tag on the product.
type ProductAttributes struct {
	Book        *BookAttributes        `json:"book,omitempty"`
	Clothing    *ClothingAttributes    `json:"clothing,omitempty"`
	Electronics *ElectronicsAttributes `json:"electronics,omitempty"`
}

// Product is a catalog item. The catalog price is the authoritative truth
// for checkout re-validation.
type Product struct {
	ID          uuid.UUID         `json:"id"`
	ShopID      uuid.UUID         `json:"shop_id"`
	Kind        ProductKind       `json:"kind"`
	Name        string            `json:"name"`
	Thumbnail   string            `json:"thumbnail"`
	Price       float64           `json:"price"`
	Attributes  ProductAttributes `json:"attributes"`
	IsPublished bool              `json:"is_published"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Variant is a concrete SKU of a product with its own price and image.
type Variant struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Shop is a selling storefront owned by a merchant.
type Shop struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
