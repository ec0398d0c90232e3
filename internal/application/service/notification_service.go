package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/enum"
	"github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/pkg/email"
	"github.com/sangkips/venuebook-api/pkg/pagination"
	"github.com/sangkips/venuebook-api/pkg/utils"
)

// NotificationService persists in-app notifications and sends
// best-effort status emails. Every failure here is logged and
// swallowed: notifications must never block or fail a booking
// transition.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	customerRepo     repository.CustomerRepository
	bookingRepo      repository.BookingRepository
	emailService     *email.EmailService
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	customerRepo repository.CustomerRepository,
	bookingRepo repository.BookingRepository,
	emailService *email.EmailService,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		customerRepo:     customerRepo,
		bookingRepo:      bookingRepo,
		emailService:     emailService,
	}
}

// BookingStatusChanged records an in-app notification for the
// booking's customer and sends a status email when the customer has
// an address on file.
func (s *NotificationService) BookingStatusChanged(ctx context.Context, booking *entity.Booking, previous enum.BookingStatus) {
	customer, err := s.customerRepo.GetByID(ctx, booking.CustomerID)
	if err != nil || customer == nil {
		log.Printf("Warning: could not resolve customer %s for booking notification: %v", booking.CustomerID, err)
		return
	}

	title := fmt.Sprintf("Booking %s", booking.Status.String())
	message := fmt.Sprintf("Your booking for %s moved from %s to %s.",
		booking.EventDate.Format("2006-01-02"), previous.String(), booking.Status.String())

	if customer.UserID != nil {
		notification := &entity.Notification{
			UserID:    *customer.UserID,
			BookingID: &booking.ID,
			Title:     title,
			Message:   message,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			log.Printf("Warning: failed to persist notification for booking %s: %v", booking.ID, err)
		}
	}

	if s.emailService == nil || customer.Email == nil || *customer.Email == "" {
		return
	}

	hallName := booking.Hall.Name
	if hallName == "" {
		if full, err := s.bookingRepo.GetWithDetails(ctx, booking.ID); err == nil && full != nil {
			hallName = full.Hall.Name
		}
	}

	data := email.BookingStatusEmail{
		CustomerName: customer.Name,
		HallName:     hallName,
		EventDate:    booking.EventDate.Format("2006-01-02"),
		Status:       booking.Status.String(),
		TotalAmount:  utils.FormatMoney(booking.TotalAmount),
		Currency:     booking.Currency,
	}
	if err := s.emailService.SendBookingStatusEmail(*customer.Email, data); err != nil {
		log.Printf("Warning: failed to send booking status email for booking %s: %v", booking.ID, err)
	}
}

// ListForUser returns a page of a user's notifications.
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Notification, int64, error) {
	return s.notificationRepo.ListByUser(ctx, userID, params)
}

// MarkAsRead marks one notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.notificationRepo.MarkAsRead(ctx, id)
}
