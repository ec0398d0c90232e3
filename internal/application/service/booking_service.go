package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/enum"
	"github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/pkg/apperror"
	"github.com/sangkips/venuebook-api/pkg/utils"
)

// BookingService creates and serves bookings. Creation prices the
// booking (hall rate plus vendor services plus tax) and freezes the
// result into the booking's financial snapshot.
type BookingService struct {
	bookingRepo       repository.BookingRepository
	vendorBookingRepo repository.VendorBookingRepository
	hallRepo          repository.HallRepository
	customerRepo      repository.CustomerRepository
	pricing           *PricingService
	tax               *TaxCalculator
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	vendorBookingRepo repository.VendorBookingRepository,
	hallRepo repository.HallRepository,
	customerRepo repository.CustomerRepository,
	pricing *PricingService,
	tax *TaxCalculator,
) *BookingService {
	return &BookingService{
		bookingRepo:       bookingRepo,
		vendorBookingRepo: vendorBookingRepo,
		hallRepo:          hallRepo,
		customerRepo:      customerRepo,
		pricing:           pricing,
		tax:               tax,
	}
}

// CreateBookingInput is the validated input for booking creation.
type CreateBookingInput struct {
	HallID       uuid.UUID
	CustomerID   uuid.UUID
	EventDate    time.Time
	VisitDate    *time.Time
	StartTime    string // "HH:MM"
	EndTime      string // "HH:MM"
	Selections   []ServiceSelection
	DiscountCode string
	Comments     *string
}

// AvailabilityResult reports whether a hall slot is free and which
// bookings conflict with it.
type AvailabilityResult struct {
	Available bool             `json:"available"`
	Conflicts []entity.Booking `json:"conflicts,omitempty"`
}

// CreateBooking validates the requested slot, checks hall
// availability, prices the booking and persists it together with its
// vendor bookings. The new booking starts in Pending, awaiting the
// hall manager's decision.
func (s *BookingService) CreateBooking(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error) {
	if err := validateTimeSlot(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	hall, err := s.hallRepo.GetByID(ctx, input.HallID)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, apperror.NewNotFoundError("Hall")
	}
	if !hall.IsActive {
		return nil, apperror.NewBadRequestError("Hall is not accepting bookings")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	availability, err := s.CheckAvailability(ctx, input.HallID, input.EventDate, input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}
	if !availability.Available {
		return nil, apperror.NewConflictError("Hall is already booked for the requested time slot")
	}

	breakdown, err := s.pricing.BuildBreakdown(ctx, input.HallID, input.EventDate, input.Selections)
	if err != nil {
		return nil, err
	}
	taxResult := s.tax.Calculate(breakdown.SubTotal, hall.Region, input.DiscountCode)

	booking := &entity.Booking{
		HallID:     input.HallID,
		CustomerID: input.CustomerID,
		Status:     enum.BookingStatusPending,
		Comments:   input.Comments,
		EventDate:  input.EventDate,
		VisitDate:  input.VisitDate,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,

		HallCost:           breakdown.HallCost,
		VendorServicesCost: breakdown.VendorServicesCost,
		SubTotal:           taxResult.SubTotal,
		DiscountAmount:     taxResult.DiscountAmount,
		TaxRate:            taxResult.TaxRate,
		TaxAmount:          taxResult.TaxAmount,
		TotalAmount:        taxResult.TotalAmount,
		Currency:           "SAR",

		PaymentStatus: enum.PaymentStatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if len(breakdown.Vendors) > 0 {
		vendorBookings := make([]entity.VendorBooking, 0, len(breakdown.Vendors))
		for _, share := range breakdown.Vendors {
			vb := entity.VendorBooking{
				BookingID:   booking.ID,
				VendorID:    share.VendorID,
				Status:      enum.ApprovalStatusPending,
				TotalAmount: share.SubTotal,
			}
			for _, line := range share.Lines {
				vb.Items = append(vb.Items, entity.VendorBookingItem{
					ServiceItemID: line.ServiceItemID,
					ServiceName:   line.ServiceName,
					Quantity:      line.Quantity,
					UnitPrice:     line.UnitPrice,
					Total:         line.Total,
				})
			}
			vendorBookings = append(vendorBookings, vb)
		}
		if err := s.vendorBookingRepo.CreateBatch(ctx, vendorBookings); err != nil {
			return nil, err
		}
		booking.VendorBookings = vendorBookings
	}

	return booking, nil
}

// GetBooking returns one booking with hall, customer and vendor
// booking details.
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	return booking, nil
}

// ListBookings returns a filtered page of bookings.
func (s *BookingService) ListBookings(ctx context.Context, params *repository.BookingFilterParams) ([]entity.Booking, int64, error) {
	return s.bookingRepo.List(ctx, params)
}

// CheckAvailability reports whether a hall is free for a time slot on
// a date, listing the conflicting bookings when it is not. Cancelled
// bookings never conflict.
func (s *BookingService) CheckAvailability(ctx context.Context, hallID uuid.UUID, date time.Time, startTime, endTime string) (*AvailabilityResult, error) {
	if err := validateTimeSlot(startTime, endTime); err != nil {
		return nil, err
	}

	existing, err := s.bookingRepo.FindByHallAndDate(ctx, hallID, date)
	if err != nil {
		return nil, err
	}

	candidate := &entity.Booking{
		HallID:    hallID,
		EventDate: date,
		StartTime: startTime,
		EndTime:   endTime,
	}

	var conflicts []entity.Booking
	for i := range existing {
		if candidate.OverlapsWith(&existing[i]) {
			conflicts = append(conflicts, existing[i])
		}
	}

	return &AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// validateTimeSlot checks both times parse as "HH:MM" and the slot is
// non-empty.
func validateTimeSlot(startTime, endTime string) error {
	if !utils.IsValidTimeOfDay(startTime) {
		return apperror.NewBadRequestError("start_time must be in HH:MM format")
	}
	if !utils.IsValidTimeOfDay(endTime) {
		return apperror.NewBadRequestError("end_time must be in HH:MM format")
	}
	if startTime >= endTime {
		return apperror.NewBadRequestError("start_time must be before end_time")
	}
	return nil
}
