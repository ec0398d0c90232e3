package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/enum"
	"github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/pkg/apperror"
)

// statusTransitionRetries bounds the optimistic-concurrency retry loop
// on booking status writes.
const statusTransitionRetries = 3

// InvoiceGenerator produces the invoice for a confirmed booking.
// Satisfied by *InvoiceService; narrowed to an interface so the
// approval workflow can be tested without the invoice machinery.
type InvoiceGenerator interface {
	GenerateForBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Invoice, error)
}

// StatusNotifier is told about booking status changes. Delivery is
// best-effort: implementations swallow and log their own failures.
type StatusNotifier interface {
	BookingStatusChanged(ctx context.Context, booking *entity.Booking, previous enum.BookingStatus)
}

// ApprovalService drives the booking approval state machine: hall
// manager sign-off, per-vendor approval aggregation, payment and the
// confirm/cancel transitions.
type ApprovalService struct {
	bookingRepo       repository.BookingRepository
	vendorBookingRepo repository.VendorBookingRepository
	invoices          InvoiceGenerator
	notifier          StatusNotifier
}

// NewApprovalService creates a new approval service
func NewApprovalService(
	bookingRepo repository.BookingRepository,
	vendorBookingRepo repository.VendorBookingRepository,
	invoices InvoiceGenerator,
	notifier StatusNotifier,
) *ApprovalService {
	return &ApprovalService{
		bookingRepo:       bookingRepo,
		vendorBookingRepo: vendorBookingRepo,
		invoices:          invoices,
		notifier:          notifier,
	}
}

// ApprovalResult is the outcome of a workflow action
type ApprovalResult struct {
	NewStatus           enum.BookingStatus `json:"new_status"`
	CanProceedToPayment bool               `json:"can_proceed_to_payment"`
	Message             string             `json:"message"`
}

// ConfirmResult carries both the confirmation outcome and the
// invoicing outcome. Invoicing failure never rolls back the
// confirmation; callers observe InvoiceErr and alert on it instead.
type ConfirmResult struct {
	Booking    *entity.Booking `json:"booking"`
	Invoice    *entity.Invoice `json:"invoice,omitempty"`
	InvoiceErr error           `json:"-"`
}

// VendorApprovalSummary is the read-only aggregation of vendor
// responses for a booking.
type VendorApprovalSummary struct {
	TotalVendors        int  `json:"total_vendors"`
	ApprovedCount       int  `json:"approved_count"`
	RejectedCount       int  `json:"rejected_count"`
	PendingCount        int  `json:"pending_count"`
	AllApproved         bool `json:"all_approved"`
	CanProceedToPayment bool `json:"can_proceed_to_payment"`
}

// AggregateVendorResponses folds a consistent snapshot of vendor
// bookings into the next booking-level status. The booking becomes
// payable only on an unambiguous outcome: every vendor approved, or
// every vendor rejected (the booking then proceeds without vendor
// services). A mixed outcome surfaces as VendorRejected so a human
// reconciles it rather than the system silently proceeding with a
// partial vendor set.
func AggregateVendorResponses(vendorBookings []entity.VendorBooking) (next enum.BookingStatus, allResponded bool) {
	approved, rejected := 0, 0
	for i := range vendorBookings {
		switch vendorBookings[i].Status {
		case enum.ApprovalStatusApproved:
			approved++
		case enum.ApprovalStatusRejected:
			rejected++
		default:
			return enum.BookingStatusVendorsApproving, false
		}
	}

	if approved == len(vendorBookings) || rejected == len(vendorBookings) {
		return enum.BookingStatusReadyForPayment, true
	}
	return enum.BookingStatusVendorRejected, true
}

// ApproveHall records the hall manager's decision on a Draft or
// Pending booking. Approval immediately re-evaluates: a booking with
// vendor services enters the vendor approval round (all vendor
// sub-statuses reset to Pending), one without skips straight to
// ReadyForPayment.
func (s *ApprovalService) ApproveHall(ctx context.Context, bookingID uuid.UUID, approved bool, rejectionReason *string) (*ApprovalResult, error) {
	booking, err := s.bookingRepo.GetWithDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}

	if booking.Status != enum.BookingStatusDraft && booking.Status != enum.BookingStatusPending {
		return nil, apperror.NewConflictError("Booking is not awaiting hall approval")
	}

	if !approved {
		update := repository.StatusUpdate{
			Status:   enum.BookingStatusHallRejected,
			Comments: rejectionReason,
		}
		updated, err := s.applyTransition(ctx, booking, update)
		if err != nil {
			return nil, err
		}
		return &ApprovalResult{
			NewStatus: updated.Status,
			Message:   "Booking rejected by hall manager",
		}, nil
	}

	next := enum.BookingStatusReadyForPayment
	if len(booking.VendorBookings) > 0 {
		next = enum.BookingStatusVendorsApproving
		if err := s.vendorBookingRepo.ResetStatuses(ctx, booking.ID); err != nil {
			return nil, err
		}
	}

	updated, err := s.applyTransition(ctx, booking, repository.StatusUpdate{Status: next})
	if err != nil {
		return nil, err
	}

	return &ApprovalResult{
		NewStatus:           updated.Status,
		CanProceedToPayment: updated.Status == enum.BookingStatusReadyForPayment,
		Message:             "Booking approved by hall manager",
	}, nil
}

// RespondVendor records one vendor's decision on its vendor booking.
// The booking-level status only moves once every vendor has responded;
// the last responder's aggregation is evaluated against a snapshot
// taken in the same transaction as its own status write, and the
// booking transition is version-guarded against a concurrently-last
// responder.
func (s *ApprovalService) RespondVendor(ctx context.Context, bookingID, vendorBookingID uuid.UUID, approved bool, rejectionReason *string) (*ApprovalResult, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	if booking.Status != enum.BookingStatusVendorsApproving {
		return nil, apperror.NewConflictError("Booking is not in the vendor approval stage")
	}

	vendorBooking, err := s.vendorBookingRepo.GetByID(ctx, vendorBookingID)
	if err != nil {
		return nil, err
	}
	if vendorBooking == nil || vendorBooking.BookingID != bookingID {
		return nil, apperror.NewNotFoundError("Vendor booking")
	}
	if vendorBooking.HasResponded() {
		return nil, apperror.NewConflictError("Vendor has already responded to this booking")
	}

	status := enum.ApprovalStatusApproved
	if !approved {
		status = enum.ApprovalStatusRejected
	}

	snapshot, err := s.vendorBookingRepo.ApplyResponse(ctx, vendorBookingID, status, rejectionReason, time.Now())
	if err != nil {
		return nil, err
	}

	next, allResponded := AggregateVendorResponses(snapshot)
	if !allResponded {
		return &ApprovalResult{
			NewStatus: enum.BookingStatusVendorsApproving,
			Message:   "Vendor response recorded, awaiting remaining vendors",
		}, nil
	}

	updated, err := s.applyTransition(ctx, booking, repository.StatusUpdate{Status: next})
	if err != nil {
		return nil, err
	}

	return &ApprovalResult{
		NewStatus:           updated.Status,
		CanProceedToPayment: updated.Status == enum.BookingStatusReadyForPayment,
		Message:             "All vendors have responded",
	}, nil
}

// VendorApprovalStatus reports the current vendor response counts for
// a booking.
func (s *ApprovalService) VendorApprovalStatus(ctx context.Context, bookingID uuid.UUID) (*VendorApprovalSummary, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}

	vendorBookings, err := s.vendorBookingRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	summary := &VendorApprovalSummary{TotalVendors: len(vendorBookings)}
	for i := range vendorBookings {
		switch vendorBookings[i].Status {
		case enum.ApprovalStatusApproved:
			summary.ApprovedCount++
		case enum.ApprovalStatusRejected:
			summary.RejectedCount++
		default:
			summary.PendingCount++
		}
	}
	summary.AllApproved = summary.TotalVendors > 0 && summary.ApprovedCount == summary.TotalVendors
	summary.CanProceedToPayment = booking.Status == enum.BookingStatusReadyForPayment

	return summary, nil
}

// MarkPaid records a completed payment on a ReadyForPayment booking.
func (s *ApprovalService) MarkPaid(ctx context.Context, bookingID uuid.UUID, paymentMethod string) (*ApprovalResult, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	if booking.Status != enum.BookingStatusReadyForPayment {
		return nil, apperror.NewConflictError("Booking is not ready for payment")
	}

	now := time.Now()
	paid := enum.PaymentStatusPaid
	update := repository.StatusUpdate{
		Status:        enum.BookingStatusPaid,
		PaymentStatus: &paid,
		PaidAt:        &now,
	}
	if paymentMethod != "" {
		update.PaymentMethod = &paymentMethod
	}

	updated, err := s.applyTransition(ctx, booking, update)
	if err != nil {
		return nil, err
	}

	return &ApprovalResult{
		NewStatus: updated.Status,
		Message:   "Payment recorded",
	}, nil
}

// Confirm moves a non-terminal booking to Confirmed and triggers
// invoice generation. The status transition is authoritative: an
// invoicing failure is captured in the result for the caller to alert
// on, never rolled back (reconciliation happens out-of-band).
func (s *ApprovalService) Confirm(ctx context.Context, bookingID uuid.UUID) (*ConfirmResult, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	if booking.Status.IsTerminal() {
		return nil, apperror.NewConflictError("Booking is already in a terminal state")
	}

	updated, err := s.applyTransition(ctx, booking, repository.StatusUpdate{Status: enum.BookingStatusConfirmed})
	if err != nil {
		return nil, err
	}

	result := &ConfirmResult{Booking: updated}
	invoice, invErr := s.invoices.GenerateForBooking(ctx, bookingID)
	if invErr != nil {
		log.Printf("Error: invoice generation failed for confirmed booking %s: %v", bookingID, invErr)
		result.InvoiceErr = invErr
		return result, nil
	}
	result.Invoice = invoice

	return result, nil
}

// Cancel moves a non-terminal booking to Cancelled. Bookings are never
// deleted; cancellation is a status transition.
func (s *ApprovalService) Cancel(ctx context.Context, bookingID uuid.UUID) (*ApprovalResult, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	if booking.Status.IsTerminal() {
		return nil, apperror.NewConflictError("Booking is already in a terminal state")
	}

	updated, err := s.applyTransition(ctx, booking, repository.StatusUpdate{Status: enum.BookingStatusCancelled})
	if err != nil {
		return nil, err
	}

	return &ApprovalResult{
		NewStatus: updated.Status,
		Message:   "Booking cancelled",
	}, nil
}

// applyTransition performs a version-guarded status write with a
// bounded retry. On a version conflict the booking is re-read: if
// another writer already produced the desired status the transition is
// treated as done, if the booking left the expected stage a conflict
// surfaces to the caller.
func (s *ApprovalService) applyTransition(ctx context.Context, booking *entity.Booking, update repository.StatusUpdate) (*entity.Booking, error) {
	previous := booking.Status

	for attempt := 0; attempt < statusTransitionRetries; attempt++ {
		ok, err := s.bookingRepo.UpdateStatusGuarded(ctx, booking.ID, booking.Version, update)
		if err != nil {
			return nil, err
		}
		if ok {
			booking.Status = update.Status
			booking.Version++
			if update.Comments != nil {
				booking.Comments = update.Comments
			}
			if update.PaymentStatus != nil {
				booking.PaymentStatus = *update.PaymentStatus
			}
			if update.PaymentMethod != nil {
				booking.PaymentMethod = update.PaymentMethod
			}
			if update.PaidAt != nil {
				booking.PaidAt = update.PaidAt
			}
			s.notifyStatusChange(ctx, booking, previous)
			return booking, nil
		}

		// Lost the race; re-read and re-evaluate.
		fresh, err := s.bookingRepo.GetByID(ctx, booking.ID)
		if err != nil {
			return nil, err
		}
		if fresh == nil {
			return nil, apperror.NewNotFoundError("Booking")
		}
		if fresh.Status == update.Status {
			return fresh, nil
		}
		if fresh.Status != previous {
			return nil, apperror.NewConflictError("Booking status changed concurrently")
		}
		booking = fresh
	}

	return nil, apperror.NewConflictError("Booking status changed concurrently")
}

func (s *ApprovalService) notifyStatusChange(ctx context.Context, booking *entity.Booking, previous enum.BookingStatus) {
	if s.notifier == nil || booking.Status == previous {
		return
	}
	s.notifier.BookingStatusChanged(ctx, booking, previous)
}
