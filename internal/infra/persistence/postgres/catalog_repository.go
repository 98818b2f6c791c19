package postgres

import (
	"context"
	"encoding/json"

	"shoply/internal/domain/entity"
	"shoply/internal/domain/repository"
	"shoply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
// Catalog reads happen outside transactions; prices read here are the truth
// checkout re-validation compares against.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindProduct retrieves a published product by id.
func (repo *catalogRepository) FindProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_published = ?", id, true).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM)
}

// FindVariant retrieves a product's variant by id.
func (repo *catalogRepository) FindVariant(ctx context.Context, productID, variantID uuid.UUID) (*entity.Variant, error) {
	var variantM model.VariantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", variantID, productID).
		First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant by ID")
	}

	return toVariantDomain(&variantM), nil
}

// FindShop retrieves a shop by id.
func (repo *catalogRepository) FindShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity,
// decoding the kind-specific JSONB attributes.
func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	if data == nil {
		return nil, nil
	}

	var attrs entity.ProductAttributes
	if len(data.Attributes) > 0 {
		if err := json.Unmarshal(data.Attributes, &attrs); err != nil {
			return nil, errors.Wrap(err, "failed to decode product attributes")
		}
	}

	return &entity.Product{
		ID:          data.ID,
		ShopID:      data.ShopID,
		Kind:        entity.ProductKind(data.Kind),
		Name:        data.Name,
		Thumbnail:   data.Thumbnail,
		Price:       data.Price,
		Attributes:  attrs,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

// toVariantDomain converts a GORM VariantModel to a domain Variant entity.
func toVariantDomain(data *model.VariantModel) *entity.Variant {
	if data == nil {
		return nil
	}

	return &entity.Variant{
		ID:        data.ID,
		ProductID: data.ProductID,
		Name:      data.Name,
		Price:     data.Price,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
