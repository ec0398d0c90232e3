package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/enum"
	"github.com/sangkips/venuebook-api/pkg/pagination"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// GetWithDetails loads the booking with hall, customer and the
	// full vendor-booking set including service items.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	List(ctx context.Context, params *BookingFilterParams) ([]entity.Booking, int64, error)
	// FindByHallAndDate returns all non-cancelled bookings for a hall
	// on a calendar date. Used by the availability conflict check.
	FindByHallAndDate(ctx context.Context, hallID uuid.UUID, date time.Time) ([]entity.Booking, error)
	// UpdateStatusGuarded applies a status transition only when the
	// stored row version still matches expectedVersion, incrementing
	// the version on success. Returns false when another writer got
	// there first.
	UpdateStatusGuarded(ctx context.Context, id uuid.UUID, expectedVersion int, update StatusUpdate) (bool, error)
}

// StatusUpdate carries the fields written together with a guarded
// booking status transition. Nil pointers leave their columns alone.
type StatusUpdate struct {
	Status        enum.BookingStatus
	Comments      *string
	PaymentStatus *enum.PaymentStatus
	PaymentMethod *string
	PaidAt        *time.Time
}

// BookingFilterParams contains filtering parameters for booking queries
type BookingFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.BookingStatus
	HallID     *uuid.UUID
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// VendorBookingRepository defines the interface for vendor booking
// data operations
type VendorBookingRepository interface {
	CreateBatch(ctx context.Context, vendorBookings []entity.VendorBooking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.VendorBooking, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]entity.VendorBooking, error)
	// ResetStatuses sets every vendor booking of a booking back to
	// Pending (the start of a vendor approval round).
	ResetStatuses(ctx context.Context, bookingID uuid.UUID) error
	// ApplyResponse records one vendor's decision and returns a
	// consistent snapshot of all vendor bookings of the same booking.
	// The write and the re-read happen in one transaction with the
	// sibling rows locked, so two concurrently-responding vendors
	// cannot both observe a stale set.
	ApplyResponse(ctx context.Context, vendorBookingID uuid.UUID, status enum.ApprovalStatus, reason *string, respondedAt time.Time) ([]entity.VendorBooking, error)
}
