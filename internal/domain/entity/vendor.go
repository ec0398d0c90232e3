package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor represents a service provider (catering, decor, photography)
// that can be attached to bookings.
type Vendor struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`

	Name        string  `gorm:"size:255;not null" json:"name"`
	ServiceType string  `gorm:"size:100" json:"service_type"`
	Email       *string `gorm:"size:255" json:"email,omitempty"`
	Phone       *string `gorm:"size:50" json:"phone,omitempty"`
	Region      *string `gorm:"size:100" json:"region,omitempty"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User         *User               `gorm:"foreignKey:UserID" json:"-"`
	ServiceItems []VendorServiceItem `gorm:"foreignKey:VendorID" json:"service_items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}

// VendorServiceItem is one priced service a vendor offers
type VendorServiceItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VendorID uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_id"`

	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	UnitPrice   float64 `gorm:"type:decimal(15,2);not null" json:"unit_price"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Vendor Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new service item
func (si *VendorServiceItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VendorServiceItem model
func (VendorServiceItem) TableName() string {
	return "vendor_service_items"
}
