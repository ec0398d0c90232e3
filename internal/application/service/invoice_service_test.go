package service

import (
	"context"
	"fmt"
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
	"github.com/sangkips/venuebook-api/pkg/utils"
)

func testPlatform() config.PlatformConfig {
	return config.PlatformConfig{
		SellerName: "VenueBook Platform",
		VATNumber:  "300000000000003",
		Address:    "Riyadh, Saudi Arabia",
	}
}

func invoiceableBooking() *entity.Booking {
	vat := "310122393500003"
	address := "King Fahd Road, Riyadh"
	customerID := uuid.New()
	return &entity.Booking{
		ID:         uuid.New(),
		HallID:     uuid.New(),
		CustomerID: customerID,
		EventDate:  time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
		StartTime:  "16:00",
		EndTime:    "23:00",

		HallCost:           3000,
		VendorServicesCost: 1500,
		SubTotal:           4500,
		TaxRate:            0.15,
		TaxAmount:          675,
		TotalAmount:        5175,
		Currency:           "SAR",

		Hall: entity.Hall{
			Name:      "Al Noor Grand Hall",
			Region:    "riyadh",
			VATNumber: &vat,
			Address:   &address,
		},
		Customer: entity.Customer{
			ID:   customerID,
			Name: "Sara Al-Harbi",
		},
		VendorBookings: []entity.VendorBooking{
			{
				Vendor:      entity.Vendor{Name: "Golden Plate Catering"},
				TotalAmount: 1500,
				Items: []entity.VendorBookingItem{
					{ServiceName: "Buffet Dinner", Quantity: 100, UnitPrice: 15, Total: 1500},
				},
			},
		},
	}
}

func TestGenerateForBooking_ReturnsExistingInvoice(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepo)
	bookingRepo := new(mockBookingRepo)
	svc := NewInvoiceService(invoiceRepo, bookingRepo, testPlatform())

	bookingID := uuid.New()
	existing := &entity.Invoice{ID: uuid.New(), BookingID: bookingID, InvoiceNumber: "INV-2026-000007"}
	invoiceRepo.On("GetByBookingID", mock.Anything, bookingID).Return(existing, nil)

	invoice, err := svc.GenerateForBooking(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, existing.InvoiceNumber, invoice.InvoiceNumber)
	invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	bookingRepo.AssertNotCalled(t, "GetWithDetails", mock.Anything, mock.Anything)
}

func TestGenerateForBooking_NumberingAndSnapshot(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepo)
	bookingRepo := new(mockBookingRepo)
	svc := NewInvoiceService(invoiceRepo, bookingRepo, testPlatform())

	booking := invoiceableBooking()
	year := time.Now().Year()

	invoiceRepo.On("GetByBookingID", mock.Anything, booking.ID).Return(nil, nil)
	bookingRepo.On("GetWithDetails", mock.Anything, booking.ID).Return(booking, nil)
	invoiceRepo.On("CountByYear", mock.Anything, year).Return(int64(3), nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	invoice, err := svc.GenerateForBooking(context.Background(), booking.ID)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("INV-%d-000004", year), invoice.InvoiceNumber)

	// Seller snapshot comes from the hall
	assert.Equal(t, "Al Noor Grand Hall", invoice.SellerName)
	assert.Equal(t, "310122393500003", invoice.SellerVATNumber)

	// Buyer snapshot comes from the customer
	assert.Equal(t, "Sara Al-Harbi", invoice.BuyerName)

	// Financials mirror the booking's frozen snapshot
	assert.Equal(t, 4500.0, invoice.SubTotal)
	assert.Equal(t, 675.0, invoice.TaxAmount)
	assert.Equal(t, 5175.0, invoice.TotalAmountWithTax)

	assert.NotEmpty(t, invoice.QRCode)
	assert.NotEmpty(t, invoice.InvoiceHash)
	assert.NotEqual(t, uuid.Nil, invoice.ZATCAUUID)
}

func TestGenerateForBooking_LineItemsReconcile(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepo)
	bookingRepo := new(mockBookingRepo)
	svc := NewInvoiceService(invoiceRepo, bookingRepo, testPlatform())

	booking := invoiceableBooking()

	invoiceRepo.On("GetByBookingID", mock.Anything, booking.ID).Return(nil, nil)
	bookingRepo.On("GetWithDetails", mock.Anything, booking.ID).Return(booking, nil)
	invoiceRepo.On("CountByYear", mock.Anything, mock.Anything).Return(int64(0), nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	invoice, err := svc.GenerateForBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	require.Len(t, invoice.LineItems, 2)

	hallLine := invoice.LineItems[0]
	assert.Contains(t, hallLine.Description, "Al Noor Grand Hall")
	assert.Equal(t, 1, hallLine.Quantity)
	assert.Equal(t, 3000.0, hallLine.SubTotal)
	assert.Equal(t, 450.0, hallLine.TaxAmount)
	assert.Equal(t, 3450.0, hallLine.TotalAmount)

	serviceLine := invoice.LineItems[1]
	assert.Contains(t, serviceLine.Description, "Buffet Dinner")
	assert.Equal(t, 100, serviceLine.Quantity)
	assert.Equal(t, 1500.0, serviceLine.SubTotal)

	// Line sums reconcile to the header totals
	var subTotal, taxTotal float64
	for _, line := range invoice.LineItems {
		subTotal = utils.RoundMoney(subTotal + line.SubTotal)
		taxTotal = utils.RoundMoney(taxTotal + line.TaxAmount)
	}
	assert.Equal(t, invoice.SubTotal, subTotal)
	assert.Equal(t, invoice.TaxAmount, taxTotal)
}

func TestGenerateForBooking_PlatformSellerFallback(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepo)
	bookingRepo := new(mockBookingRepo)
	svc := NewInvoiceService(invoiceRepo, bookingRepo, testPlatform())

	booking := invoiceableBooking()
	booking.Hall.VATNumber = nil // hall without VAT registration

	invoiceRepo.On("GetByBookingID", mock.Anything, booking.ID).Return(nil, nil)
	bookingRepo.On("GetWithDetails", mock.Anything, booking.ID).Return(booking, nil)
	invoiceRepo.On("CountByYear", mock.Anything, mock.Anything).Return(int64(0), nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	invoice, err := svc.GenerateForBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "VenueBook Platform", invoice.SellerName)
	assert.Equal(t, "300000000000003", invoice.SellerVATNumber)
	assert.Equal(t, "Riyadh, Saudi Arabia", invoice.SellerAddress)
}

func TestGenerateForBooking_ConcurrentWinnerReturned(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepo)
	bookingRepo := new(mockBookingRepo)
	svc := NewInvoiceService(invoiceRepo, bookingRepo, testPlatform())

	booking := invoiceableBooking()
	winner := &entity.Invoice{ID: uuid.New(), BookingID: booking.ID, InvoiceNumber: "INV-2026-000009"}

	invoiceRepo.On("GetByBookingID", mock.Anything, booking.ID).Return(nil, nil).Once()
	bookingRepo.On("GetWithDetails", mock.Anything, booking.ID).Return(booking, nil)
	invoiceRepo.On("CountByYear", mock.Anything, mock.Anything).Return(int64(8), nil)
	invoiceRepo.On("Create", mock.Anything, mock.Anything).Return(apperror.NewConflictError("duplicate")).Once()
	invoiceRepo.On("GetByBookingID", mock.Anything, booking.ID).Return(winner, nil).Once()

	invoice, err := svc.GenerateForBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, winner.InvoiceNumber, invoice.InvoiceNumber)
}

func TestGenerateForBooking_NumberCollisionRetries(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepo)
	bookingRepo := new(mockBookingRepo)
	svc := NewInvoiceService(invoiceRepo, bookingRepo, testPlatform())

	booking := invoiceableBooking()
	year := time.Now().Year()

	invoiceRepo.On("GetByBookingID", mock.Anything, booking.ID).Return(nil, nil)
	bookingRepo.On("GetWithDetails", mock.Anything, booking.ID).Return(booking, nil)
	invoiceRepo.On("CountByYear", mock.Anything, year).Return(int64(5), nil)

	// Another generator took INV-{year}-000006 for a different booking.
	invoiceRepo.On("Create", mock.Anything, mock.MatchedBy(func(i *entity.Invoice) bool {
		return i.InvoiceNumber == fmt.Sprintf("INV-%d-000006", year)
	})).Return(apperror.NewConflictError("duplicate")).Once()
	invoiceRepo.On("Create", mock.Anything, mock.MatchedBy(func(i *entity.Invoice) bool {
		return i.InvoiceNumber == fmt.Sprintf("INV-%d-000007", year)
	})).Return(nil).Once()

	invoice, err := svc.GenerateForBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-%d-000007", year), invoice.InvoiceNumber)
}

func TestGenerateForBooking_MissingCustomerNotFound(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepo)
	bookingRepo := new(mockBookingRepo)
	svc := NewInvoiceService(invoiceRepo, bookingRepo, testPlatform())

	// Customer preload came back empty: the referenced customer row
	// no longer exists.
	booking := invoiceableBooking()
	booking.Customer = entity.Customer{}

	invoiceRepo.On("GetByBookingID", mock.Anything, booking.ID).Return(nil, nil)
	bookingRepo.On("GetWithDetails", mock.Anything, booking.ID).Return(booking, nil)

	_, err := svc.GenerateForBooking(context.Background(), booking.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	invoiceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCancelInvoice_AnnotatesWithoutRenumbering(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepo)
	svc := NewInvoiceService(invoiceRepo, new(mockBookingRepo), testPlatform())

	invoice := &entity.Invoice{ID: uuid.New(), InvoiceNumber: "INV-2026-000002", InvoiceHash: "abc"}
	invoiceRepo.On("GetByID", mock.Anything, invoice.ID).Return(invoice, nil)
	invoiceRepo.On("Update", mock.Anything, mock.MatchedBy(func(i *entity.Invoice) bool {
		return i.IsCancelled && i.CancelledAt != nil &&
			i.PaymentStatus == enum.PaymentStatusCancelled &&
			i.CancellationReason != nil && *i.CancellationReason == "Customer request" &&
			i.InvoiceNumber == "INV-2026-000002" && i.InvoiceHash == "abc"
	})).Return(nil)

	cancelled, err := svc.CancelInvoice(context.Background(), invoice.ID, "Customer request")
	require.NoError(t, err)
	assert.True(t, cancelled.IsCancelled)
	assert.Equal(t, enum.PaymentStatusCancelled, cancelled.PaymentStatus)
}

func TestCancelInvoice_AlreadyCancelled(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepo)
	svc := NewInvoiceService(invoiceRepo, new(mockBookingRepo), testPlatform())

	invoice := &entity.Invoice{ID: uuid.New(), IsCancelled: true}
	invoiceRepo.On("GetByID", mock.Anything, invoice.ID).Return(invoice, nil)

	_, err := svc.CancelInvoice(context.Background(), invoice.ID, "again")
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}
