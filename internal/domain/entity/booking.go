package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Booking is the aggregate root of one reservation: a hall, a customer
// and zero or more vendor bookings. Status drives the approval
// workflow; the financial fields are a snapshot computed by the
// pricing service and frozen once the booking is confirmed.
type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	HallID     uuid.UUID `gorm:"type:uuid;not null;index" json:"hall_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`

	Status   enum.BookingStatus `gorm:"default:0;index" json:"status"`
	Comments *string            `gorm:"type:text" json:"comments,omitempty"`

	EventDate time.Time  `gorm:"type:date;not null;index" json:"event_date"`
	VisitDate *time.Time `gorm:"type:date" json:"visit_date,omitempty"`
	StartTime string     `gorm:"size:5;not null" json:"start_time"` // "HH:MM"
	EndTime   string     `gorm:"size:5;not null" json:"end_time"`   // "HH:MM"

	// Financial snapshot
	HallCost           float64 `gorm:"type:decimal(15,2);default:0" json:"hall_cost"`
	VendorServicesCost float64 `gorm:"type:decimal(15,2);default:0" json:"vendor_services_cost"`
	SubTotal           float64 `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	DiscountAmount     float64 `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TaxRate            float64 `gorm:"type:decimal(5,4);default:0" json:"tax_rate"`
	TaxAmount          float64 `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	TotalAmount        float64 `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	Currency           string  `gorm:"size:3;default:'SAR'" json:"currency"`

	PaymentMethod *string            `gorm:"size:50" json:"payment_method,omitempty"`
	PaymentStatus enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	PaidAt        *time.Time         `json:"paid_at,omitempty"`

	// Version guards booking-level status transitions against
	// concurrent writers (two vendors both deciding they responded
	// last, or a confirm racing a cancel).
	Version int `gorm:"default:1" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Hall           Hall            `gorm:"foreignKey:HallID" json:"hall,omitempty"`
	Customer       Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	VendorBookings []VendorBooking `gorm:"foreignKey:BookingID" json:"vendor_bookings,omitempty"`
}

// BeforeCreate generates a UUID before creating a new booking
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// OverlapsWith reports whether two bookings compete for the same hall
// slot: same hall, same calendar date, and [start, end) intervals
// overlap. Cancelled bookings never conflict.
func (b *Booking) OverlapsWith(other *Booking) bool {
	if b.Status == enum.BookingStatusCancelled || other.Status == enum.BookingStatusCancelled {
		return false
	}
	if b.HallID != other.HallID {
		return false
	}
	if !sameDate(b.EventDate, other.EventDate) {
		return false
	}
	// "HH:MM" strings compare correctly lexicographically.
	switch {
	case b.StartTime >= other.StartTime && b.StartTime < other.EndTime:
		return true // new start falls inside the existing interval
	case b.EndTime > other.StartTime && b.EndTime <= other.EndTime:
		return true // new end falls inside the existing interval
	case b.StartTime <= other.StartTime && b.EndTime >= other.EndTime:
		return true // new interval fully contains the existing one
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// VendorBooking is one vendor's committed share of a booking. Its
// approval status is independent of the parent booking's status and
// only the owning vendor may change it.
type VendorBooking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_id"`

	Status          enum.ApprovalStatus `gorm:"default:0" json:"status"`
	RejectionReason *string             `gorm:"type:text" json:"rejection_reason,omitempty"`
	RespondedAt     *time.Time          `json:"responded_at,omitempty"`

	TotalAmount float64 `gorm:"type:decimal(15,2);default:0" json:"total_amount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Booking Booking             `gorm:"foreignKey:BookingID" json:"-"`
	Vendor  Vendor              `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Items   []VendorBookingItem `gorm:"foreignKey:VendorBookingID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new vendor booking
func (vb *VendorBooking) BeforeCreate(tx *gorm.DB) error {
	if vb.ID == uuid.Nil {
		vb.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VendorBooking model
func (VendorBooking) TableName() string {
	return "vendor_bookings"
}

// HasResponded reports whether the vendor has made its decision.
func (vb *VendorBooking) HasResponded() bool {
	return vb.Status != enum.ApprovalStatusPending
}

// VendorBookingItem is one selected service line within a vendor
// booking: service, quantity and the unit price captured at selection
// time.
type VendorBookingItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VendorBookingID uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_booking_id"`
	ServiceItemID   uuid.UUID `gorm:"type:uuid;not null;index" json:"service_item_id"`
	ServiceName     string    `gorm:"size:255" json:"service_name"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	UnitPrice       float64   `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Total           float64   `gorm:"type:decimal(15,2);not null" json:"total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	VendorBooking VendorBooking     `gorm:"foreignKey:VendorBookingID" json:"-"`
	ServiceItem   VendorServiceItem `gorm:"foreignKey:ServiceItemID" json:"service_item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new vendor booking item
func (vi *VendorBookingItem) BeforeCreate(tx *gorm.DB) error {
	if vi.ID == uuid.Nil {
		vi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VendorBookingItem model
func (VendorBookingItem) TableName() string {
	return "vendor_booking_items"
}
