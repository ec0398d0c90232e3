package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/enum"
	domainRepo "github.com/sangkips/venuebook-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domainRepo.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Hall").
		Preload("Customer").
		Preload("VendorBookings").
		Preload("VendorBookings.Vendor").
		Preload("VendorBookings.Items").
		First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) List(ctx context.Context, params *domainRepo.BookingFilterParams) ([]entity.Booking, int64, error) {
	var bookings []entity.Booking
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Booking{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.HallID != nil {
		query = query.Where("hall_id = ?", *params.HallID)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.StartDate != nil {
		query = query.Where("event_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("event_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Hall").
		Preload("Customer").
		Order(sortBy + " " + sortOrder).
		Find(&bookings).Error

	return bookings, total, err
}

func (r *bookingRepository) FindByHallAndDate(ctx context.Context, hallID uuid.UUID, date time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Where("hall_id = ? AND event_date = ?", hallID, date.Format("2006-01-02")).
		Where("status <> ?", enum.BookingStatusCancelled).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) UpdateStatusGuarded(ctx context.Context, id uuid.UUID, expectedVersion int, update domainRepo.StatusUpdate) (bool, error) {
	values := map[string]interface{}{
		"status":  update.Status,
		"version": gorm.Expr("version + 1"),
	}
	if update.Comments != nil {
		values["comments"] = *update.Comments
	}
	if update.PaymentStatus != nil {
		values["payment_status"] = *update.PaymentStatus
	}
	if update.PaymentMethod != nil {
		values["payment_method"] = *update.PaymentMethod
	}
	if update.PaidAt != nil {
		values["paid_at"] = *update.PaidAt
	}

	result := r.db.WithContext(ctx).Model(&entity.Booking{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(values)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

type vendorBookingRepository struct {
	db *gorm.DB
}

// NewVendorBookingRepository creates a new vendor booking repository
func NewVendorBookingRepository(db *gorm.DB) domainRepo.VendorBookingRepository {
	return &vendorBookingRepository{db: db}
}

func (r *vendorBookingRepository) CreateBatch(ctx context.Context, vendorBookings []entity.VendorBooking) error {
	if len(vendorBookings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&vendorBookings).Error
}

func (r *vendorBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.VendorBooking, error) {
	var vendorBooking entity.VendorBooking
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Items").
		First(&vendorBooking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vendorBooking, nil
}

func (r *vendorBookingRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]entity.VendorBooking, error) {
	var vendorBookings []entity.VendorBooking
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Items").
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&vendorBookings).Error
	return vendorBookings, err
}

func (r *vendorBookingRepository) ResetStatuses(ctx context.Context, bookingID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.VendorBooking{}).
		Where("booking_id = ?", bookingID).
		Updates(map[string]interface{}{
			"status":           enum.ApprovalStatusPending,
			"rejection_reason": nil,
			"responded_at":     nil,
		}).Error
}

// ApplyResponse writes one vendor's decision and re-reads all vendor
// bookings of the same booking inside a single transaction, with the
// sibling rows locked. Two vendors responding at the same moment
// serialize here, so the returned snapshot each of them aggregates is
// never stale.
func (r *vendorBookingRepository) ApplyResponse(ctx context.Context, vendorBookingID uuid.UUID, status enum.ApprovalStatus, reason *string, respondedAt time.Time) ([]entity.VendorBooking, error) {
	var snapshot []entity.VendorBooking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target entity.VendorBooking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&target, "id = ?", vendorBookingID).Error; err != nil {
			return err
		}

		var siblings []entity.VendorBooking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ? AND id <> ?", target.BookingID, target.ID).
			Find(&siblings).Error; err != nil {
			return err
		}

		values := map[string]interface{}{
			"status":       status,
			"responded_at": respondedAt,
		}
		if reason != nil {
			values["rejection_reason"] = *reason
		}
		if err := tx.Model(&entity.VendorBooking{}).
			Where("id = ?", target.ID).
			Updates(values).Error; err != nil {
			return err
		}

		return tx.Where("booking_id = ?", target.BookingID).
			Order("created_at ASC").
			Find(&snapshot).Error
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
