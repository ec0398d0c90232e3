package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hall represents a bookable venue. Halls are priced per event: the
// weekend rate applies when the event date falls on Friday or
// Saturday, the weekday rate otherwise.
type Hall struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ManagerID uuid.UUID `gorm:"type:uuid;not null;index" json:"manager_id"`

	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Region      string  `gorm:"size:100;not null" json:"region"`
	Address     *string `gorm:"type:text" json:"address,omitempty"`
	VATNumber   *string `gorm:"size:50" json:"vat_number,omitempty"`
	Capacity    int     `gorm:"default:0" json:"capacity"`

	WeekdayRate float64 `gorm:"type:decimal(15,2);not null" json:"weekday_rate"`
	WeekendRate float64 `gorm:"type:decimal(15,2);not null" json:"weekend_rate"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Manager  User      `gorm:"foreignKey:ManagerID" json:"-"`
	Bookings []Booking `gorm:"foreignKey:HallID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new hall
func (h *Hall) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Hall model
func (Hall) TableName() string {
	return "halls"
}

// RateFor returns the applicable flat event rate for a date. Friday
// and Saturday are the regional weekend.
func (h *Hall) RateFor(eventDate time.Time) float64 {
	switch eventDate.Weekday() {
	case time.Friday, time.Saturday:
		return h.WeekendRate
	default:
		return h.WeekdayRate
	}
}
