package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/venuebook-api/internal/config"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/enum"
	"github.com/sangkips/venuebook-api/pkg/apperror"
)

func testTaxCalculator() *TaxCalculator {
	return NewTaxCalculator(config.TaxConfig{
		Rates:       map[string]float64{"riyadh": 0.15},
		DefaultRate: 0.15,
		Currency:    "SAR",
	})
}

type bookingServiceFixture struct {
	bookingRepo       *mockBookingRepo
	vendorBookingRepo *mockVendorBookingRepo
	hallRepo          *mockHallRepo
	customerRepo      *mockCustomerRepo
	vendorRepo        *mockVendorRepo
	serviceItemRepo   *mockServiceItemRepo
	svc               *BookingService
}

func newBookingServiceFixture() *bookingServiceFixture {
	f := &bookingServiceFixture{
		bookingRepo:       new(mockBookingRepo),
		vendorBookingRepo: new(mockVendorBookingRepo),
		hallRepo:          new(mockHallRepo),
		customerRepo:      new(mockCustomerRepo),
		vendorRepo:        new(mockVendorRepo),
		serviceItemRepo:   new(mockServiceItemRepo),
	}
	pricing := NewPricingService(f.hallRepo, f.vendorRepo, f.serviceItemRepo)
	f.svc = NewBookingService(f.bookingRepo, f.vendorBookingRepo, f.hallRepo, f.customerRepo, pricing, testTaxCalculator())
	return f
}

func activeHall() *entity.Hall {
	return &entity.Hall{
		ID:          uuid.New(),
		Name:        "Al Noor Grand Hall",
		Region:      "riyadh",
		WeekdayRate: 3000,
		WeekendRate: 5000,
		IsActive:    true,
	}
}

func TestCreateBooking_WeekdayPricingAndTax(t *testing.T) {
	f := newBookingServiceFixture()

	hall := activeHall()
	customer := &entity.Customer{ID: uuid.New(), Name: "Sara Al-Harbi"}
	// 2026-09-16 is a Wednesday
	eventDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	f.hallRepo.On("GetByID", mock.Anything, hall.ID).Return(hall, nil)
	f.customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	f.bookingRepo.On("FindByHallAndDate", mock.Anything, hall.ID, eventDate).Return([]entity.Booking{}, nil)
	f.bookingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	booking, err := f.svc.CreateBooking(context.Background(), &CreateBookingInput{
		HallID:     hall.ID,
		CustomerID: customer.ID,
		EventDate:  eventDate,
		StartTime:  "16:00",
		EndTime:    "23:00",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.BookingStatusPending, booking.Status)
	assert.Equal(t, 3000.0, booking.HallCost)
	assert.Equal(t, 0.0, booking.VendorServicesCost)
	assert.Equal(t, 3000.0, booking.SubTotal)
	assert.Equal(t, 0.15, booking.TaxRate)
	assert.Equal(t, 450.0, booking.TaxAmount)
	assert.Equal(t, 3450.0, booking.TotalAmount)
	assert.Equal(t, "SAR", booking.Currency)
	f.vendorBookingRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestCreateBooking_WeekendRateOnFriday(t *testing.T) {
	f := newBookingServiceFixture()

	hall := activeHall()
	customer := &entity.Customer{ID: uuid.New(), Name: "Sara Al-Harbi"}
	// 2026-09-18 is a Friday
	eventDate := time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)

	f.hallRepo.On("GetByID", mock.Anything, hall.ID).Return(hall, nil)
	f.customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	f.bookingRepo.On("FindByHallAndDate", mock.Anything, hall.ID, eventDate).Return([]entity.Booking{}, nil)
	f.bookingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	booking, err := f.svc.CreateBooking(context.Background(), &CreateBookingInput{
		HallID:     hall.ID,
		CustomerID: customer.ID,
		EventDate:  eventDate,
		StartTime:  "16:00",
		EndTime:    "23:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, booking.HallCost)
	assert.Equal(t, 5750.0, booking.TotalAmount)
}

func TestCreateBooking_WithVendorServices(t *testing.T) {
	f := newBookingServiceFixture()

	hall := activeHall()
	customer := &entity.Customer{ID: uuid.New(), Name: "Sara Al-Harbi"}
	eventDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	vendor := entity.Vendor{ID: uuid.New(), Name: "Golden Plate Catering"}
	item := entity.VendorServiceItem{ID: uuid.New(), VendorID: vendor.ID, Name: "Buffet Dinner", UnitPrice: 15}

	f.hallRepo.On("GetByID", mock.Anything, hall.ID).Return(hall, nil)
	f.customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	f.bookingRepo.On("FindByHallAndDate", mock.Anything, hall.ID, eventDate).Return([]entity.Booking{}, nil)
	f.vendorRepo.On("GetByIDs", mock.Anything, []uuid.UUID{vendor.ID}).Return([]entity.Vendor{vendor}, nil)
	f.serviceItemRepo.On("GetByIDs", mock.Anything, []uuid.UUID{item.ID}).Return([]entity.VendorServiceItem{item}, nil)
	f.bookingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.vendorBookingRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(vbs []entity.VendorBooking) bool {
		return len(vbs) == 1 &&
			vbs[0].VendorID == vendor.ID &&
			vbs[0].TotalAmount == 1500.0 &&
			len(vbs[0].Items) == 1 &&
			vbs[0].Items[0].Quantity == 100
	})).Return(nil)

	booking, err := f.svc.CreateBooking(context.Background(), &CreateBookingInput{
		HallID:     hall.ID,
		CustomerID: customer.ID,
		EventDate:  eventDate,
		StartTime:  "16:00",
		EndTime:    "23:00",
		Selections: []ServiceSelection{
			{VendorID: vendor.ID, ServiceItemID: item.ID, Quantity: 100},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, booking.VendorServicesCost)
	assert.Equal(t, 4500.0, booking.SubTotal)
	assert.Equal(t, 5175.0, booking.TotalAmount)
	require.Len(t, booking.VendorBookings, 1)
	f.vendorBookingRepo.AssertExpectations(t)
}

func TestCreateBooking_RejectsOverlappingSlot(t *testing.T) {
	f := newBookingServiceFixture()

	hall := activeHall()
	customer := &entity.Customer{ID: uuid.New(), Name: "Sara Al-Harbi"}
	eventDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	existing := entity.Booking{
		ID:        uuid.New(),
		HallID:    hall.ID,
		Status:    enum.BookingStatusPending,
		EventDate: eventDate,
		StartTime: "14:00",
		EndTime:   "18:00",
	}

	f.hallRepo.On("GetByID", mock.Anything, hall.ID).Return(hall, nil)
	f.customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	f.bookingRepo.On("FindByHallAndDate", mock.Anything, hall.ID, eventDate).Return([]entity.Booking{existing}, nil)

	_, err := f.svc.CreateBooking(context.Background(), &CreateBookingInput{
		HallID:     hall.ID,
		CustomerID: customer.ID,
		EventDate:  eventDate,
		StartTime:  "16:00",
		EndTime:    "23:00",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_CancelledBookingDoesNotBlock(t *testing.T) {
	f := newBookingServiceFixture()

	hall := activeHall()
	customer := &entity.Customer{ID: uuid.New(), Name: "Sara Al-Harbi"}
	eventDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	cancelled := entity.Booking{
		ID:        uuid.New(),
		HallID:    hall.ID,
		Status:    enum.BookingStatusCancelled,
		EventDate: eventDate,
		StartTime: "14:00",
		EndTime:   "18:00",
	}

	f.hallRepo.On("GetByID", mock.Anything, hall.ID).Return(hall, nil)
	f.customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	f.bookingRepo.On("FindByHallAndDate", mock.Anything, hall.ID, eventDate).Return([]entity.Booking{cancelled}, nil)
	f.bookingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.CreateBooking(context.Background(), &CreateBookingInput{
		HallID:     hall.ID,
		CustomerID: customer.ID,
		EventDate:  eventDate,
		StartTime:  "16:00",
		EndTime:    "23:00",
	})
	require.NoError(t, err)
}

func TestCreateBooking_InvalidTimes(t *testing.T) {
	f := newBookingServiceFixture()

	tests := []struct {
		name      string
		startTime string
		endTime   string
	}{
		{"malformed start", "4pm", "23:00"},
		{"malformed end", "16:00", "25:00"},
		{"start after end", "23:00", "16:00"},
		{"zero-length slot", "16:00", "16:00"},
		{"missing zero padding", "9:00", "17:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateBooking(context.Background(), &CreateBookingInput{
				HallID:     uuid.New(),
				CustomerID: uuid.New(),
				EventDate:  time.Now(),
				StartTime:  tt.startTime,
				EndTime:    tt.endTime,
			})
			require.Error(t, err)
		})
	}
}

func TestCreateBooking_InactiveHall(t *testing.T) {
	f := newBookingServiceFixture()

	hall := activeHall()
	hall.IsActive = false
	f.hallRepo.On("GetByID", mock.Anything, hall.ID).Return(hall, nil)

	_, err := f.svc.CreateBooking(context.Background(), &CreateBookingInput{
		HallID:     hall.ID,
		CustomerID: uuid.New(),
		EventDate:  time.Now(),
		StartTime:  "16:00",
		EndTime:    "23:00",
	})
	require.Error(t, err)
}

func TestCheckAvailability_ListsConflicts(t *testing.T) {
	f := newBookingServiceFixture()

	hallID := uuid.New()
	date := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	overlapping := entity.Booking{
		ID:        uuid.New(),
		HallID:    hallID,
		Status:    enum.BookingStatusConfirmed,
		EventDate: date,
		StartTime: "18:00",
		EndTime:   "22:00",
	}
	disjoint := entity.Booking{
		ID:        uuid.New(),
		HallID:    hallID,
		Status:    enum.BookingStatusConfirmed,
		EventDate: date,
		StartTime: "08:00",
		EndTime:   "12:00",
	}

	f.bookingRepo.On("FindByHallAndDate", mock.Anything, hallID, date).Return([]entity.Booking{overlapping, disjoint}, nil)

	result, err := f.svc.CheckAvailability(context.Background(), hallID, date, "16:00", "23:00")
	require.NoError(t, err)
	assert.False(t, result.Available)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, overlapping.ID, result.Conflicts[0].ID)
}

func TestCheckAvailability_BackToBackSlotsDoNotConflict(t *testing.T) {
	f := newBookingServiceFixture()

	hallID := uuid.New()
	date := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	existing := entity.Booking{
		ID:        uuid.New(),
		HallID:    hallID,
		Status:    enum.BookingStatusConfirmed,
		EventDate: date,
		StartTime: "12:00",
		EndTime:   "16:00",
	}

	f.bookingRepo.On("FindByHallAndDate", mock.Anything, hallID, date).Return([]entity.Booking{existing}, nil)

	result, err := f.svc.CheckAvailability(context.Background(), hallID, date, "16:00", "20:00")
	require.NoError(t, err)
	assert.True(t, result.Available)
}
