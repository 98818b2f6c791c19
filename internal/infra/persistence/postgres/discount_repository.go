package postgres

import (
	"context"
	"time"

	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// discountRepository implements the repository.DiscountRepository interface.
type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository is the constructor for discountRepository.
func NewDiscountRepository(db *gorm.DB) repository.DiscountRepository {
	return &discountRepository{
		db: db,
	}
}

// FindByCode retrieves the discount for (shop, code) with its product list
// and usage rows.
func (repo *discountRepository) FindByCode(ctx context.Context, shopID uuid.UUID, code string) (*entity.Discount, error) {
	var discountM model.DiscountModel

	if err := repo.db.WithContext(ctx).
		Preload("Products").
		Preload("Usages").
		Where("shop_id = ? AND code = ?", shopID, code).
		First(&discountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount by code")
	}

	return toDiscountDomain(&discountM), nil
}

// Create inserts a new discount with its covered products.
func (repo *discountRepository) Create(ctx context.Context, discount *entity.Discount) error {
	discountM := fromDiscountDomain(discount)

	if err := repo.db.WithContext(ctx).Create(discountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("discount code already exists for shop")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create discount")
	}

	discount.ID = discountM.ID
	discount.CreatedAt = discountM.CreatedAt
	discount.UpdatedAt = discountM.UpdatedAt

	return nil
}

// ListByShop returns the shop's discounts, newest first, with the total count.
func (repo *discountRepository) ListByShop(ctx context.Context, shopID uuid.UUID, limit, offset int) ([]*entity.Discount, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DiscountModel{}).
		Where("shop_id = ?", shopID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count discounts")
	}

	var discountModels []*model.DiscountModel
	if err := repo.db.WithContext(ctx).
		Preload("Products").
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&discountModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list discounts")
	}

	discounts := make([]*entity.Discount, 0, len(discountModels))
	for _, discountM := range discountModels {
		discounts = append(discounts, toDiscountDomain(discountM))
	}

	return discounts, total, nil
}

// Delete hard-deletes a discount. The product and usage rows go with it via
// ON DELETE CASCADE on their foreign keys.
func (repo *discountRepository) Delete(ctx context.Context, shopID, discountID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", discountID, shopID).
		Delete(&model.DiscountModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete discount")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDiscountNotFound
	}

	return nil
}

// ConsumeUsage records one use in a single conditional update: used_count
// goes up, the remaining max_uses goes down, and the guard rejects the
// update once the quota hits zero. A negative max_uses means unlimited and
// is never decremented.
func (repo *discountRepository) ConsumeUsage(ctx context.Context, discountID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DiscountModel{}).
		Where("id = ? AND max_uses <> 0", discountID).
		Updates(map[string]any{
			"used_count": gorm.Expr("used_count + 1"),
			"max_uses":   gorm.Expr("max_uses - CASE WHEN max_uses > 0 THEN 1 ELSE 0 END"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume discount usage")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.DiscountModel{}).
			Where("id = ?", discountID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check discount existence")
		}
		if count == 0 {
			return repository.ErrDiscountNotFound
		}

		return repository.ErrDiscountExhausted
	}

	usageM := &model.DiscountUsageModel{
		DiscountID: discountID,
		UserID:     userID,
		UsedAt:     time.Now(),
	}
	if err := repo.db.WithContext(ctx).Create(usageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record discount usage")
	}

	return nil
}

// RevertUsage undoes ConsumeUsage: one usage row for the user is removed and
// the counters move back.
func (repo *discountRepository) RevertUsage(ctx context.Context, discountID, userID uuid.UUID) error {
	oneUsage := repo.db.
		Model(&model.DiscountUsageModel{}).
		Select("id").
		Where("discount_id = ? AND user_id = ?", discountID, userID).
		Order("used_at DESC").
		Limit(1)

	result := repo.db.WithContext(ctx).
		Where("id = (?)", oneUsage).
		Delete(&model.DiscountUsageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete discount usage")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDiscountUsageNotFound
	}

	updateResult := repo.db.WithContext(ctx).
		Model(&model.DiscountModel{}).
		Where("id = ?", discountID).
		Updates(map[string]any{
			"used_count": gorm.Expr("used_count - 1"),
			"max_uses":   gorm.Expr("max_uses + CASE WHEN max_uses >= 0 THEN 1 ELSE 0 END"),
		})

	if updateResult.Error != nil {
		return errors.Wrap(updateResult.Error, "failed to restore discount quota")
	}

	if updateResult.RowsAffected == 0 {
		return repository.ErrDiscountNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDiscountDomain converts a GORM DiscountModel to a domain Discount entity.
func toDiscountDomain(data *model.DiscountModel) *entity.Discount {
	if data == nil {
		return nil
	}

	productIDs := make([]uuid.UUID, 0, len(data.Products))
	for _, productM := range data.Products {
		productIDs = append(productIDs, productM.ProductID)
	}

	usedUserIDs := make([]uuid.UUID, 0, len(data.Usages))
	for _, usageM := range data.Usages {
		usedUserIDs = append(usedUserIDs, usageM.UserID)
	}

	return &entity.Discount{
		ID:             data.ID,
		ShopID:         data.ShopID,
		Code:           data.Code,
		Name:           data.Name,
		Type:           entity.DiscountType(data.Type),
		Value:          data.Value,
		MaxUses:        data.MaxUses,
		MaxUsesPerUser: data.MaxUsesPerUser,
		UsedCount:      data.UsedCount,
		MinOrderValue:  data.MinOrderValue,
		StartsAt:       data.StartsAt,
		EndsAt:         data.EndsAt,
		IsActive:       data.IsActive,
		AppliesTo:      entity.DiscountApplies(data.AppliesTo),
		ProductIDs:     productIDs,
		UsedUserIDs:    usedUserIDs,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromDiscountDomain converts a domain Discount entity to a GORM DiscountModel.
func fromDiscountDomain(data *entity.Discount) *model.DiscountModel {
	if data == nil {
		return nil
	}

	products := make([]model.DiscountProductModel, 0, len(data.ProductIDs))
	for _, productID := range data.ProductIDs {
		products = append(products, model.DiscountProductModel{
			DiscountID: data.ID,
			ProductID:  productID,
		})
	}

	return &model.DiscountModel{
		ID:             data.ID,
		ShopID:         data.ShopID,
		Code:           data.Code,
		Name:           data.Name,
		Type:           string(data.Type),
		Value:          data.Value,
		MaxUses:        data.MaxUses,
		MaxUsesPerUser: data.MaxUsesPerUser,
		UsedCount:      data.UsedCount,
		MinOrderValue:  data.MinOrderValue,
		StartsAt:       data.StartsAt,
		EndsAt:         data.EndsAt,
		IsActive:       data.IsActive,
		AppliesTo:      string(data.AppliesTo),
		Products:       products,
	}
}
