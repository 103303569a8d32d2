package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildQuery(opts ...ListOption) ListQuery {
	var q ListQuery
	for _, opt := range opts {
		opt(&q)
	}

	return q
}

func TestListOptions_Compose(t *testing.T) {
	q := buildQuery(OnlyPrimary(), InCountry("US"))

	assert.True(t, q.Primary)
	assert.Equal(t, "US", q.CountryCode)
	assert.False(t, q.Warehouse)
	assert.False(t, q.Billing)
	assert.False(t, q.Shipping)
	assert.False(t, q.WithDeleted)
}

func TestListOptions_AllFlags(t *testing.T) {
	q := buildQuery(OnlyPrimary(), OnlyWarehouse(), OnlyBilling(), OnlyShipping(), WithDeleted())

	assert.True(t, q.Primary)
	assert.True(t, q.Warehouse)
	assert.True(t, q.Billing)
	assert.True(t, q.Shipping)
	assert.True(t, q.WithDeleted)
}

func TestListOptions_Empty(t *testing.T) {
	assert.Equal(t, ListQuery{}, buildQuery())
}
