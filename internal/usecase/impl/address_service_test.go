package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"addresses/config"
	"addresses/internal/domain/entity"
	"addresses/internal/domain/repository"
	mockRepo "addresses/internal/mocks/repository"
	mockService "addresses/internal/mocks/service"
	"addresses/internal/usecase"
	"addresses/internal/validator"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(geocodeEnabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.Geocoding = &config.GeocodingConfig{
		Enabled: geocodeEnabled,
		Timeout: time.Second,
	}

	return cfg
}

func validCreateInput() *usecase.CreateAddressInput {
	return &usecase.CreateAddressInput{
		GivenName:   "Jane",
		FamilyName:  "Doe",
		Address1:    "1 Main St",
		City:        "Springfield",
		CountryCode: "US",
		IsShipping:  true,
	}
}

func TestAddressService_CreateAddress_Success(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "order", ID: 42}

	addressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	address, err := service.CreateAddress(ctx, owner, validCreateInput())
	require.NoError(t, err)
	require.NotNil(t, address)
	assert.Equal(t, "order", address.OwnerType)
	assert.Equal(t, int64(42), address.OwnerID)
	assert.Equal(t, "Jane", address.GivenName)
	assert.Equal(t, "Jane Doe", address.FullName())
	assert.Equal(t, "US", address.CountryCode)
	assert.True(t, address.IsShipping)
	assert.False(t, address.IsPrimary)
	assert.NotEqual(t, uuid.Nil, address.ID)
	assert.Nil(t, address.Latitude)
	assert.Nil(t, address.Longitude)
}

func TestAddressService_CreateAddress_NormalizesCountryCode(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	ctx := context.Background()
	input := validCreateInput()
	input.CountryCode = "us"

	addressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	address, err := service.CreateAddress(ctx, entity.OwnerRef{Type: "order", ID: 42}, input)
	require.NoError(t, err)
	assert.Equal(t, "US", address.CountryCode)
}

func TestAddressService_CreateAddress_ValidationFailure(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	input := validCreateInput()
	input.GivenName = ""
	input.CountryCode = "USA"

	address, err := service.CreateAddress(context.Background(), entity.OwnerRef{Type: "order", ID: 42}, input)
	assert.Nil(t, address)

	var vErr *validator.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Violations, 2)
}

func TestAddressService_CreateAddress_GeocodeOverwritesCoordinates(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	geocoder := mockService.NewMockGeocoder(t)
	service := NewAddressService(addressRepo, nil, geocoder, testConfig(true), testLogger())

	ctx := context.Background()

	// The enrichment runs on a timeout-bound child context.
	geocoder.EXPECT().
		Geocode(mock.Anything, mock.AnythingOfType("*entity.Address")).
		Return(orb.Point{-93.2650108, 44.9777530}, nil)

	addressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	address, err := service.CreateAddress(ctx, entity.OwnerRef{Type: "order", ID: 42}, validCreateInput())
	require.NoError(t, err)
	require.NotNil(t, address.Latitude)
	require.NotNil(t, address.Longitude)
	assert.InDelta(t, 44.9777530, *address.Latitude, 1e-9)
	assert.InDelta(t, -93.2650108, *address.Longitude, 1e-9)
}

func TestAddressService_CreateAddress_GeocodeFailureDoesNotBlockWrite(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	geocoder := mockService.NewMockGeocoder(t)
	service := NewAddressService(addressRepo, nil, geocoder, testConfig(true), testLogger())

	ctx := context.Background()
	lat, lon := 1.0, 2.0
	input := validCreateInput()
	input.Latitude = &lat
	input.Longitude = &lon

	geocoder.EXPECT().
		Geocode(mock.Anything, mock.AnythingOfType("*entity.Address")).
		Return(orb.Point{}, errors.New("provider unreachable"))

	addressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	address, err := service.CreateAddress(ctx, entity.OwnerRef{Type: "order", ID: 42}, input)
	require.NoError(t, err)
	require.NotNil(t, address.Latitude)
	assert.Equal(t, lat, *address.Latitude)
	assert.Equal(t, lon, *address.Longitude)
}

func TestAddressService_CreateAddress_GeocodeDisabledSkipsLookup(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	geocoder := mockService.NewMockGeocoder(t)
	service := NewAddressService(addressRepo, nil, geocoder, testConfig(false), testLogger())

	ctx := context.Background()

	addressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	_, err := service.CreateAddress(ctx, entity.OwnerRef{Type: "order", ID: 42}, validCreateInput())
	require.NoError(t, err)
	geocoder.AssertNotCalled(t, "Geocode")
}

func TestAddressService_UpdateAddress_Success(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	ctx := context.Background()
	id := uuid.New()
	newLabel := "Warehouse 7"
	markWarehouse := true
	input := &usecase.UpdateAddressInput{
		Label:       &newLabel,
		IsWarehouse: &markWarehouse,
	}

	existing := &entity.Address{
		ID:        id,
		OwnerType: "order",
		OwnerID:   42,
		GivenName: "Jane",
		Address1:  "1 Main St",
	}

	addressRepo.EXPECT().
		FindAddressByID(ctx, id).
		Return(existing, nil)

	addressRepo.EXPECT().
		UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	address, err := service.UpdateAddress(ctx, id, input)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse 7", address.Label)
	assert.True(t, address.IsWarehouse)
	assert.Equal(t, "Jane", address.GivenName) // untouched fields survive
}

func TestAddressService_UpdateAddress_NotFound(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	ctx := context.Background()
	id := uuid.New()

	addressRepo.EXPECT().
		FindAddressByID(ctx, id).
		Return(nil, repository.ErrAddressNotFound)

	address, err := service.UpdateAddress(ctx, id, &usecase.UpdateAddressInput{})
	assert.Nil(t, address)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressService_UpdateAddress_RevalidatesMergedState(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	ctx := context.Background()
	id := uuid.New()
	badCode := "USA"

	addressRepo.EXPECT().
		FindAddressByID(ctx, id).
		Return(&entity.Address{ID: id, OwnerType: "order", OwnerID: 42, GivenName: "Jane", Address1: "1 Main St"}, nil)

	address, err := service.UpdateAddress(ctx, id, &usecase.UpdateAddressInput{CountryCode: &badCode})
	assert.Nil(t, address)

	var vErr *validator.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestAddressService_DeleteAddress_Idempotent(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	ctx := context.Background()
	id := uuid.New()

	// The repository treats a second delete as zero affected rows, not an error.
	addressRepo.EXPECT().
		SoftDeleteAddress(ctx, id).
		Return(nil).
		Twice()

	require.NoError(t, service.DeleteAddress(ctx, id))
	require.NoError(t, service.DeleteAddress(ctx, id))
}

func TestAddressService_Addresses(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "order", ID: 42}
	expected := []*entity.Address{
		{ID: uuid.New(), OwnerType: "order", OwnerID: 42, IsPrimary: true},
		{ID: uuid.New(), OwnerType: "order", OwnerID: 42},
	}

	addressRepo.EXPECT().
		ListAddressesByOwner(ctx, owner).
		Return(expected, nil)

	addresses, err := service.Addresses(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, expected, addresses)
}

func TestAddressService_ListAddresses_ForwardsFilters(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	ctx := context.Background()
	expected := []*entity.Address{{ID: uuid.New(), IsPrimary: true, CountryCode: "US"}}

	addressRepo.EXPECT().
		ListAddresses(ctx, mock.AnythingOfType("repository.ListOption"), mock.AnythingOfType("repository.ListOption")).
		Return(expected, nil)

	addresses, err := service.ListAddresses(ctx, repository.OnlyPrimary(), repository.InCountry("US"))
	require.NoError(t, err)
	assert.Equal(t, expected, addresses)
}

func TestAddressService_PrimaryAddress(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "order", ID: 42}
	primary := &entity.Address{ID: uuid.New(), OwnerType: "order", OwnerID: 42, IsPrimary: true}

	addressRepo.EXPECT().
		ListAddressesByOwner(ctx, owner, mock.AnythingOfType("repository.ListOption")).
		Return([]*entity.Address{primary}, nil)

	address, err := service.PrimaryAddress(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, primary, address)
}

func TestAddressService_PrimaryAddress_NoneFlagged(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "order", ID: 42}

	addressRepo.EXPECT().
		ListAddressesByOwner(ctx, owner, mock.AnythingOfType("repository.ListOption")).
		Return(nil, nil)

	address, err := service.PrimaryAddress(ctx, owner)
	assert.Nil(t, address)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressService_CountOwnerAddresses(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(addressRepo, nil, nil, testConfig(false), testLogger())

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "order", ID: 42}

	addressRepo.EXPECT().
		CountAddressesByOwner(ctx, owner).
		Return(int64(3), nil)

	count, err := service.CountOwnerAddresses(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestAddressService_DeleteOwnerAddresses_Cascades(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewAddressService(addressRepo, txManager, nil, testConfig(false), testLogger())

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "order", ID: 42}
	txRepo := mockRepo.NewMockAddressRepository(t)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	factory.EXPECT().NewAddressRepository().Return(txRepo)

	txRepo.EXPECT().
		SoftDeleteAddressesByOwner(ctx, owner).
		Return(int64(3), nil)

	require.NoError(t, service.DeleteOwnerAddresses(ctx, owner))
}

func TestAddressService_DeleteOwnerAddresses_AbortsOnFailure(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewAddressService(addressRepo, txManager, nil, testConfig(false), testLogger())

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "order", ID: 42}
	txRepo := mockRepo.NewMockAddressRepository(t)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	factory.EXPECT().NewAddressRepository().Return(txRepo)

	txRepo.EXPECT().
		SoftDeleteAddressesByOwner(ctx, owner).
		Return(int64(0), errors.New("connection reset"))

	err := service.DeleteOwnerAddresses(ctx, owner)
	assert.ErrorIs(t, err, ErrCascadeAborted)
}
