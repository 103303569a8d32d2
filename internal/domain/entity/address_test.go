package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddress_FullName(t *testing.T) {
	tests := []struct {
		name       string
		givenName  string
		familyName string
		want       string
	}{
		{name: "given and family", givenName: "Jane", familyName: "Doe", want: "Jane Doe"},
		{name: "family absent drops separator", givenName: "Jane", familyName: "", want: "Jane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address := &Address{GivenName: tt.givenName, FamilyName: tt.familyName}
			assert.Equal(t, tt.want, address.FullName())
		})
	}
}

func TestAddress_IsDeleted(t *testing.T) {
	address := &Address{}
	assert.False(t, address.IsDeleted())

	now := time.Now()
	address.DeletedAt = &now
	assert.True(t, address.IsDeleted())
}

func TestAddress_BelongsTo(t *testing.T) {
	address := &Address{OwnerType: "order", OwnerID: 42}

	assert.True(t, address.BelongsTo(OwnerRef{Type: "order", ID: 42}))
	assert.False(t, address.BelongsTo(OwnerRef{Type: "order", ID: 43}))
	assert.False(t, address.BelongsTo(OwnerRef{Type: "user", ID: 42}))
}
