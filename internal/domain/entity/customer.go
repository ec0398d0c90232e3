package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a booking customer
type Customer struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`

	Name      string  `gorm:"size:255;not null" json:"name"`
	Email     *string `gorm:"size:255" json:"email,omitempty"`
	Phone     *string `gorm:"size:50" json:"phone,omitempty"`
	Address   *string `gorm:"type:text" json:"address,omitempty"`
	VATNumber *string `gorm:"size:50" json:"vat_number,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
