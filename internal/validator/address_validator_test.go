package validator

import (
	"strings"
	"testing"

	"addresses/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() *entity.Address {
	return &entity.Address{
		OwnerType:   "order",
		OwnerID:     42,
		GivenName:   "Jane",
		FamilyName:  "Doe",
		Address1:    "1 Main St",
		City:        "Springfield",
		CountryCode: "US",
	}
}

func TestAddressValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(validAddress()))
}

func TestAddressValidator_OptionalFieldsMayBeEmpty(t *testing.T) {
	v := New()

	address := validAddress()
	address.FamilyName = ""
	address.City = ""
	address.CountryCode = "" // absent, not invalid

	assert.NoError(t, v.Validate(address))
}

func TestAddressValidator_RequiredFields(t *testing.T) {
	v := New()

	address := validAddress()
	address.GivenName = ""
	address.Address1 = ""

	err := v.Validate(address)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Violations, 2)

	fields := []string{vErr.Violations[0].Field, vErr.Violations[1].Field}
	assert.Contains(t, fields, "given_name")
	assert.Contains(t, fields, "address1")
}

func TestAddressValidator_CountryCode(t *testing.T) {
	v := New()

	tests := []struct {
		code string
		ok   bool
	}{
		{code: "US", ok: true},
		{code: "us", ok: true}, // case-insensitive; normalized upstream
		{code: "USA", ok: false},
		{code: "1", ok: false},
		{code: "U1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			address := validAddress()
			address.CountryCode = tt.code

			err := v.Validate(address)
			if tt.ok {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "country_code", vErr.Violations[0].Field)
		})
	}
}

func TestAddressValidator_TextLength(t *testing.T) {
	v := New()

	address := validAddress()
	address.Label = strings.Repeat("x", 151)

	err := v.Validate(address)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Violations, 1)
	assert.Equal(t, "label", vErr.Violations[0].Field)
	assert.Equal(t, "max", vErr.Violations[0].Rule)
}

func TestAddressValidator_CoordinateRange(t *testing.T) {
	v := New()

	lat := 91.0
	address := validAddress()
	address.Latitude = &lat

	err := v.Validate(address)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "latitude", vErr.Violations[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Violations: []FieldViolation{
		{Field: "given_name", Rule: "required", Message: "given_name is required"},
		{Field: "country_code", Rule: "len", Message: "country_code must be exactly 2 characters"},
	}}

	assert.Equal(t,
		"address validation failed: given_name is required; country_code must be exactly 2 characters",
		err.Error(),
	)
}
