// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"addresses/internal/domain/entity"
	"addresses/internal/domain/repository"
	"addresses/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address for an owner.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return errors.Wrap(err, "failed to create address")
	}

	// Write generated values back onto the entity.
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves a live address by its unique ID. Soft-deleted rows
// are excluded by gorm.DeletedAt.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// ListAddresses retrieves addresses matching every composed filter, in
// insertion order.
func (repo *addressRepository) ListAddresses(ctx context.Context, opts ...repository.ListOption) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := applyListOptions(repo.db.WithContext(ctx), opts).
		Order("created_at ASC, id ASC").
		Find(&addressModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return toAddressDomainSlice(addressModels), nil
}

// ListAddressesByOwner retrieves the owner's addresses, primary first, then
// insertion order.
func (repo *addressRepository) ListAddressesByOwner(ctx context.Context, owner entity.AddressOwner, opts ...repository.ListOption) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := applyListOptions(repo.db.WithContext(ctx), opts).
		Where("owner_type = ? AND owner_id = ?", owner.AddressOwnerType(), owner.AddressOwnerID()).
		Order("is_primary DESC, created_at ASC, id ASC").
		Find(&addressModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses by owner")
	}

	return toAddressDomainSlice(addressModels), nil
}

// CountAddressesByOwner returns the number of live addresses for the owner.
func (repo *addressRepository) CountAddressesByOwner(ctx context.Context, owner entity.AddressOwner) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("owner_type = ? AND owner_id = ?", owner.AddressOwnerType(), owner.AddressOwnerID()).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count addresses by owner")
	}

	return count, nil
}

// UpdateAddress persists the full state of an existing live address.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(addressM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update address")
	}

	// Zero rows means the row is gone or already soft-deleted.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// SoftDeleteAddress marks the address deleted. Deleting an already-deleted or
// unknown id affects zero rows and is a no-op success.
func (repo *addressRepository) SoftDeleteAddress(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{}).Error

	if err != nil {
		return errors.Wrap(err, "failed to soft-delete address")
	}

	return nil
}

// SoftDeleteAddressesByOwner marks every live address of the owner deleted.
func (repo *addressRepository) SoftDeleteAddressesByOwner(ctx context.Context, owner entity.AddressOwner) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", owner.AddressOwnerType(), owner.AddressOwnerID()).
		Delete(&model.AddressModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to soft-delete addresses by owner")
	}

	return result.RowsAffected, nil
}

// applyListOptions translates composed domain filters into query predicates.
// Filters AND together; WithDeleted lifts the default soft-delete exclusion.
func applyListOptions(db *gorm.DB, opts []repository.ListOption) *gorm.DB {
	var q repository.ListQuery
	for _, opt := range opts {
		opt(&q)
	}

	if q.WithDeleted {
		db = db.Unscoped()
	}
	if q.Primary {
		db = db.Where("is_primary = ?", true)
	}
	if q.Warehouse {
		db = db.Where("is_warehouse = ?", true)
	}
	if q.Billing {
		db = db.Where("is_billing = ?", true)
	}
	if q.Shipping {
		db = db.Where("is_shipping = ?", true)
	}
	if q.CountryCode != "" {
		db = db.Where("country_code = ?", strings.ToUpper(q.CountryCode))
	}

	return db
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	var deletedAt *time.Time
	if data.DeletedAt.Valid {
		t := data.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Address{
		ID:           data.ID,
		OwnerType:    data.OwnerType,
		OwnerID:      data.OwnerID,
		Label:        data.Label,
		GivenName:    data.GivenName,
		FamilyName:   data.FamilyName,
		Organization: data.Organization,
		Address1:     data.Address1,
		Address2:     data.Address2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		CountryCode:  data.CountryCode,
		Phone:        data.Phone,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsPrimary:    data.IsPrimary,
		IsWarehouse:  data.IsWarehouse,
		IsBilling:    data.IsBilling,
		IsShipping:   data.IsShipping,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

func toAddressDomainSlice(data []*model.AddressModel) []*entity.Address {
	addresses := make([]*entity.Address, 0, len(data))
	for _, addressM := range data {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	addressM := &model.AddressModel{
		ID:           data.ID,
		OwnerType:    data.OwnerType,
		OwnerID:      data.OwnerID,
		Label:        data.Label,
		GivenName:    data.GivenName,
		FamilyName:   data.FamilyName,
		Organization: data.Organization,
		Address1:     data.Address1,
		Address2:     data.Address2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		CountryCode:  data.CountryCode,
		Phone:        data.Phone,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsPrimary:    data.IsPrimary,
		IsWarehouse:  data.IsWarehouse,
		IsBilling:    data.IsBilling,
		IsShipping:   data.IsShipping,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.DeletedAt != nil {
		addressM.DeletedAt = gorm.DeletedAt{Time: *data.DeletedAt, Valid: true}
	}

	return addressM
}
