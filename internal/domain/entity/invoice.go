package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice is the immutable financial record of one confirmed booking.
// Exactly one invoice exists per booking (unique constraint on
// BookingID); seller and buyer identity are snapshots taken at
// generation time, and the QR/hash security fields are computed once
// over the frozen financial values and never recomputed.
type Invoice struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`

	InvoiceNumber string    `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	InvoiceDate   time.Time `gorm:"not null" json:"invoice_date"`

	// Seller snapshot (hall, or the platform as fallback)
	SellerName      string `gorm:"size:255;not null" json:"seller_name"`
	SellerVATNumber string `gorm:"size:50;not null" json:"seller_vat_number"`
	SellerAddress   string `gorm:"type:text" json:"seller_address"`

	// Buyer snapshot (customer)
	BuyerName      string  `gorm:"size:255;not null" json:"buyer_name"`
	BuyerAddress   *string `gorm:"type:text" json:"buyer_address,omitempty"`
	BuyerVATNumber *string `gorm:"size:50" json:"buyer_vat_number,omitempty"`

	// Financial snapshot (mirrors the booking at generation time)
	SubTotal           float64 `gorm:"type:decimal(15,2);not null" json:"sub_total"`
	DiscountAmount     float64 `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TaxRate            float64 `gorm:"type:decimal(5,4);not null" json:"tax_rate"`
	TaxAmount          float64 `gorm:"type:decimal(15,2);not null" json:"tax_amount"`
	TotalAmountWithTax float64 `gorm:"type:decimal(15,2);not null" json:"total_amount_with_tax"`
	Currency           string  `gorm:"size:3;default:'SAR'" json:"currency"`

	PaymentStatus enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	PaidAt        *time.Time         `json:"paid_at,omitempty"`

	// Security fields, computed once at generation
	QRCode      string    `gorm:"type:text;not null" json:"qr_code"`
	InvoiceHash string    `gorm:"size:64;not null" json:"invoice_hash"`
	ZATCAUUID   uuid.UUID `gorm:"type:uuid;not null" json:"zatca_uuid"`

	// Logical cancellation only; invoices are never deleted or renumbered
	IsCancelled        bool       `gorm:"default:false" json:"is_cancelled"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason *string    `gorm:"type:text" json:"cancellation_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Booking   Booking           `gorm:"foreignKey:BookingID" json:"-"`
	LineItems []InvoiceLineItem `gorm:"foreignKey:InvoiceID" json:"line_items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceLineItem is one billed line: the hall rental, one vendor
// service, a vendor aggregate, or the defensive catch-all line. Each
// line carries its own tax so line totals reconcile to the header.
type InvoiceLineItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`

	Description string  `gorm:"size:255;not null" json:"description"`
	Quantity    int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   float64 `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	SubTotal    float64 `gorm:"type:decimal(15,2);not null" json:"sub_total"`
	TaxRate     float64 `gorm:"type:decimal(5,4);not null" json:"tax_rate"`
	TaxAmount   float64 `gorm:"type:decimal(15,2);not null" json:"tax_amount"`
	TotalAmount float64 `gorm:"type:decimal(15,2);not null" json:"total_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *InvoiceLineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceLineItem model
func (InvoiceLineItem) TableName() string {
	return "invoice_line_items"
}
