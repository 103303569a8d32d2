// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"addresses/config"
	"addresses/internal/domain/entity"
	"addresses/internal/domain/repository"
	"addresses/internal/domain/service"
	"addresses/internal/errors"
	"addresses/internal/usecase"
	"addresses/internal/validator"

	"github.com/google/uuid"
)

// ErrCascadeAborted is returned when the owner's address cascade could not be
// completed; the owner deletion itself must then fail.
var ErrCascadeAborted = errors.New("address cascade aborted")

type addressService struct {
	addressRepo repository.AddressRepository
	txManager   repository.TransactionManager
	geocoder    service.Geocoder
	validate    *validator.AddressValidator
	config      *config.Config
	logger      *slog.Logger
}

// NewAddressService creates the address use case. The geocoder may be nil; the
// enrichment step then never runs regardless of configuration.
func NewAddressService(
	addressRepo repository.AddressRepository,
	txManager repository.TransactionManager,
	geocoder service.Geocoder,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AddressUsecase {
	if cfg.Geocoding == nil {
		cfg.Geocoding = &config.GeocodingConfig{}
	}

	return &addressService{
		addressRepo: addressRepo,
		txManager:   txManager,
		geocoder:    geocoder,
		validate:    validator.New(),
		config:      cfg,
		logger:      logger,
	}
}

// CreateAddress validates the input, runs the geocoding enrichment when
// enabled, and persists a new address scoped to the owner.
func (s *addressService) CreateAddress(ctx context.Context, owner entity.AddressOwner, input *usecase.CreateAddressInput) (*entity.Address, error) {
	now := time.Now()
	address := &entity.Address{
		ID:           uuid.New(),
		OwnerType:    owner.AddressOwnerType(),
		OwnerID:      owner.AddressOwnerID(),
		Label:        input.Label,
		GivenName:    input.GivenName,
		FamilyName:   input.FamilyName,
		Organization: input.Organization,
		Address1:     input.Address1,
		Address2:     input.Address2,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		CountryCode:  strings.ToUpper(input.CountryCode),
		Phone:        input.Phone,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		IsPrimary:    input.IsPrimary,
		IsWarehouse:  input.IsWarehouse,
		IsBilling:    input.IsBilling,
		IsShipping:   input.IsShipping,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.validate.Validate(address); err != nil {
		return nil, err
	}

	s.maybeGeocode(ctx, address)

	if err := s.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// GetAddress retrieves a live address by id.
func (s *addressService) GetAddress(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	address, err := s.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return address, nil
}

// UpdateAddress applies the partial update, re-validates, re-geocodes when
// enabled, and persists the merged entity.
func (s *addressService) UpdateAddress(ctx context.Context, id uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	address, err := s.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	s.applyAddressUpdates(address, input)

	if err := s.validate.Validate(address); err != nil {
		return nil, err
	}

	s.maybeGeocode(ctx, address)

	if err := s.addressRepo.UpdateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// applyAddressUpdates applies the update input to an address.
func (s *addressService) applyAddressUpdates(address *entity.Address, input *usecase.UpdateAddressInput) {
	if input.Label != nil {
		address.Label = *input.Label
	}
	if input.GivenName != nil {
		address.GivenName = *input.GivenName
	}
	if input.FamilyName != nil {
		address.FamilyName = *input.FamilyName
	}
	if input.Organization != nil {
		address.Organization = *input.Organization
	}
	if input.Address1 != nil {
		address.Address1 = *input.Address1
	}
	if input.Address2 != nil {
		address.Address2 = *input.Address2
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.State != nil {
		address.State = *input.State
	}
	if input.PostalCode != nil {
		address.PostalCode = *input.PostalCode
	}
	if input.CountryCode != nil {
		address.CountryCode = strings.ToUpper(*input.CountryCode)
	}
	if input.Phone != nil {
		address.Phone = *input.Phone
	}
	if input.Latitude != nil {
		address.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		address.Longitude = input.Longitude
	}
	if input.IsPrimary != nil {
		address.IsPrimary = *input.IsPrimary
	}
	if input.IsWarehouse != nil {
		address.IsWarehouse = *input.IsWarehouse
	}
	if input.IsBilling != nil {
		address.IsBilling = *input.IsBilling
	}
	if input.IsShipping != nil {
		address.IsShipping = *input.IsShipping
	}
	address.UpdatedAt = time.Now()
}

// DeleteAddress soft-deletes the address. Deleting an already-deleted or
// unknown id is a no-op success.
func (s *addressService) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	if err := s.addressRepo.SoftDeleteAddress(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// ListAddresses lists addresses across all owners, narrowed by the filters.
func (s *addressService) ListAddresses(ctx context.Context, opts ...repository.ListOption) ([]*entity.Address, error) {
	addresses, err := s.addressRepo.ListAddresses(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// Addresses returns the owner's live addresses, primary first.
func (s *addressService) Addresses(ctx context.Context, owner entity.AddressOwner, opts ...repository.ListOption) ([]*entity.Address, error) {
	addresses, err := s.addressRepo.ListAddressesByOwner(ctx, owner, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses by owner")
	}

	return addresses, nil
}

// PrimaryAddress returns the owner's primary address.
func (s *addressService) PrimaryAddress(ctx context.Context, owner entity.AddressOwner) (*entity.Address, error) {
	addresses, err := s.addressRepo.ListAddressesByOwner(ctx, owner, repository.OnlyPrimary())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find primary address")
	}
	if len(addresses) == 0 {
		return nil, repository.ErrAddressNotFound
	}

	// More than one primary can exist; the invariant is deliberately not
	// enforced at write time. The oldest flagged address wins here.
	return addresses[0], nil
}

// CountOwnerAddresses returns how many live addresses the owner has.
func (s *addressService) CountOwnerAddresses(ctx context.Context, owner entity.AddressOwner) (int64, error) {
	count, err := s.addressRepo.CountAddressesByOwner(ctx, owner)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count addresses by owner")
	}

	return count, nil
}

// DeleteOwnerAddresses soft-deletes every live address of the owner inside a
// single transaction. The owning application must call this before (or within
// the same transaction as) the owner's own deletion, and abort that deletion
// when ErrCascadeAborted is returned.
func (s *addressService) DeleteOwnerAddresses(ctx context.Context, owner entity.AddressOwner) error {
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		repo := txRepoFactory.NewAddressRepository()

		deleted, err := repo.SoftDeleteAddressesByOwner(ctx, owner)
		if err != nil {
			return err
		}

		s.logger.Info("cascaded address delete",
			slog.String("owner_type", owner.AddressOwnerType()),
			slog.Int64("owner_id", owner.AddressOwnerID()),
			slog.Int64("deleted", deleted),
		)

		return nil
	})
	if err != nil {
		return errors.Wrap(errors.Join(ErrCascadeAborted, err), "failed to cascade owner addresses")
	}

	return nil
}

// maybeGeocode runs the best-effort coordinate enrichment. Any failure is
// logged and swallowed; the write must never be blocked by the provider.
func (s *addressService) maybeGeocode(ctx context.Context, address *entity.Address) {
	if !s.config.Geocoding.Enabled || s.geocoder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Geocoding.Timeout)
	defer cancel()

	point, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.logger.WarnContext(ctx, "geocoding failed, keeping supplied coordinates",
			slog.String("address_id", address.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	lat, lon := point.Lat(), point.Lon()
	address.Latitude = &lat
	address.Longitude = &lon
}
