package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// The (owner_type, owner_id) composite index is the polymorphic lookup path;
// there is deliberately no foreign key since owner kinds are open-ended.
type AddressModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`

	OwnerType string `gorm:"type:varchar(150);not null;index:idx_addresses_on_owner"`
	OwnerID   int64  `gorm:"not null;index:idx_addresses_on_owner"`

	Label        string `gorm:"type:varchar(150)"`
	GivenName    string `gorm:"type:varchar(150);not null"`
	FamilyName   string `gorm:"type:varchar(150)"`
	Organization string `gorm:"type:varchar(150)"`

	Address1    string `gorm:"type:varchar(150);not null"`
	Address2    string `gorm:"type:varchar(150)"`
	City        string `gorm:"type:varchar(150)"`
	State       string `gorm:"type:varchar(150)"`
	PostalCode  string `gorm:"type:varchar(150)"`
	CountryCode string `gorm:"type:varchar(2);index"`
	Phone       string `gorm:"type:varchar(150)"`

	Latitude  *float64 `gorm:"type:decimal(10,7)"`
	Longitude *float64 `gorm:"type:decimal(11,7)"`

	IsPrimary   bool `gorm:"not null;default:false"`
	IsWarehouse bool `gorm:"not null;default:false"`
	IsBilling   bool `gorm:"not null;default:false"`
	IsShipping  bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
