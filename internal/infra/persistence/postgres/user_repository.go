package postgres

import (
	"context"

	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user with their order history references.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("OrderRefs").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// AppendOrderRef appends an order id to the user's order history.
func (repo *userRepository) AppendOrderRef(ctx context.Context, userID, orderID uuid.UUID) error {
	refM := &model.UserOrderRefModel{
		UserID:  userID,
		OrderID: orderID,
	}

	if err := repo.db.WithContext(ctx).Create(refM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isUniqueConstraintViolation(err) {
			// The reference is already recorded; appending is idempotent.
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append order reference")
	}

	return nil
}

// FindDefaultAddress retrieves the user's default delivery address.
func (repo *userRepository) FindDefaultAddress(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find default address")
	}

	return toAddressDomain(&addressM), nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	orderIDs := make([]uuid.UUID, 0, len(data.OrderRefs))
	for _, refM := range data.OrderRefs {
		orderIDs = append(orderIDs, refM.OrderID)
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		OrderIDs:  orderIDs,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:        data.ID,
		UserID:    data.UserID,
		Recipient: data.Recipient,
		Phone:     data.Phone,
		Street:    data.Street,
		City:      data.City,
		Country:   data.Country,
		ZipCode:   data.ZipCode,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
