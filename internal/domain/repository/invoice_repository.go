package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// Create persists an invoice and its line items atomically. A
	// unique-constraint violation (duplicate BookingID or duplicate
	// InvoiceNumber) surfaces as a conflict AppError so callers can
	// distinguish idempotent replays from real failures.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Invoice, int64, error)
	// CountByYear returns how many invoices have been issued in a
	// calendar year. Feeds the INV-{year}-{seq} numbering.
	CountByYear(ctx context.Context, year int) (int64, error)
}
