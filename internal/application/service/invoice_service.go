package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/config"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/enum"
	"github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/pkg/apperror"
	"github.com/sangkips/venuebook-api/pkg/pagination"
	"github.com/sangkips/venuebook-api/pkg/utils"
	"github.com/sangkips/venuebook-api/pkg/zatca"
)

// invoiceNumberRetries bounds how many times generation retries after
// losing an invoice-number race to a concurrent generator.
const invoiceNumberRetries = 3

// InvoiceService generates and serves invoices. Generation is
// idempotent per booking: the first successful call creates the
// invoice, every later call returns the same one.
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	bookingRepo repository.BookingRepository
	platform    config.PlatformConfig
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	bookingRepo repository.BookingRepository,
	platform config.PlatformConfig,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		bookingRepo: bookingRepo,
		platform:    platform,
	}
}

// GenerateForBooking produces the invoice for a booking, or returns
// the existing one. The financial figures come from the booking's
// frozen snapshot, never recomputed from current hall or vendor
// prices. Concurrent calls for the same booking are resolved by the
// unique constraint on BookingID: the loser re-fetches and returns the
// winner's invoice.
func (s *InvoiceService) GenerateForBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Invoice, error) {
	existing, err := s.invoiceRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	booking, err := s.bookingRepo.GetWithDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	if booking.Customer.ID == uuid.Nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	now := time.Now()
	invoice := &entity.Invoice{
		BookingID:   booking.ID,
		InvoiceDate: now,

		SubTotal:           booking.SubTotal,
		DiscountAmount:     booking.DiscountAmount,
		TaxRate:            booking.TaxRate,
		TaxAmount:          booking.TaxAmount,
		TotalAmountWithTax: booking.TotalAmount,
		Currency:           booking.Currency,

		PaymentStatus: booking.PaymentStatus,
		PaidAt:        booking.PaidAt,

		ZATCAUUID: uuid.New(),
	}
	s.applySellerSnapshot(invoice, booking)
	s.applyBuyerSnapshot(invoice, booking)
	invoice.LineItems = s.buildLineItems(booking)

	year := now.Year()
	count, err := s.invoiceRepo.CountByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	seq := count + 1

	for attempt := 0; attempt < invoiceNumberRetries; attempt++ {
		invoice.InvoiceNumber = fmt.Sprintf("INV-%d-%06d", year, seq)
		s.applySeal(invoice)

		err = s.invoiceRepo.Create(ctx, invoice)
		if err == nil {
			return invoice, nil
		}
		if !apperror.IsConflict(err) {
			return nil, err
		}

		// Conflict: either another generator won this booking, or the
		// invoice number was taken by a concurrent generation for a
		// different booking.
		winner, getErr := s.invoiceRepo.GetByBookingID(ctx, bookingID)
		if getErr != nil {
			return nil, getErr
		}
		if winner != nil {
			return winner, nil
		}
		seq++
	}

	log.Printf("Error: exhausted invoice number retries for booking %s", bookingID)
	return nil, err
}

// applySellerSnapshot fills the seller identity from the hall, falling
// back to the platform's own registration when the hall carries no VAT
// number.
func (s *InvoiceService) applySellerSnapshot(invoice *entity.Invoice, booking *entity.Booking) {
	hall := booking.Hall
	if hall.Name != "" && hall.VATNumber != nil && *hall.VATNumber != "" {
		invoice.SellerName = hall.Name
		invoice.SellerVATNumber = *hall.VATNumber
		if hall.Address != nil {
			invoice.SellerAddress = *hall.Address
		} else {
			invoice.SellerAddress = s.platform.Address
		}
		return
	}
	invoice.SellerName = s.platform.SellerName
	invoice.SellerVATNumber = s.platform.VATNumber
	invoice.SellerAddress = s.platform.Address
}

func (s *InvoiceService) applyBuyerSnapshot(invoice *entity.Invoice, booking *entity.Booking) {
	invoice.BuyerName = booking.Customer.Name
	invoice.BuyerAddress = booking.Customer.Address
	invoice.BuyerVATNumber = booking.Customer.VATNumber
}

// buildLineItems turns the booking's cost components into billed
// lines: one for the hall rental, one per selected vendor service (or
// one per vendor when the vendor booking has no item breakdown), and a
// catch-all line when the booking somehow carries a subtotal with no
// identifiable components.
func (s *InvoiceService) buildLineItems(booking *entity.Booking) []entity.InvoiceLineItem {
	var lines []entity.InvoiceLineItem

	addLine := func(description string, quantity int, unitPrice float64) {
		subTotal := utils.RoundMoney(float64(quantity) * unitPrice)
		taxAmount := utils.RoundMoney(subTotal * booking.TaxRate)
		lines = append(lines, entity.InvoiceLineItem{
			Description: description,
			Quantity:    quantity,
			UnitPrice:   utils.RoundMoney(unitPrice),
			SubTotal:    subTotal,
			TaxRate:     booking.TaxRate,
			TaxAmount:   taxAmount,
			TotalAmount: utils.RoundMoney(subTotal + taxAmount),
		})
	}

	if booking.HallCost > 0 {
		description := "Hall Rental"
		if booking.Hall.Name != "" {
			description = fmt.Sprintf("Hall Rental - %s (%s)", booking.Hall.Name, booking.EventDate.Format("2006-01-02"))
		}
		addLine(description, 1, booking.HallCost)
	}

	for i := range booking.VendorBookings {
		vb := &booking.VendorBookings[i]
		vendorName := vb.Vendor.Name
		if vendorName == "" {
			vendorName = "Vendor Services"
		}
		if len(vb.Items) == 0 {
			if vb.TotalAmount > 0 {
				addLine(vendorName, 1, vb.TotalAmount)
			}
			continue
		}
		for j := range vb.Items {
			item := &vb.Items[j]
			description := item.ServiceName
			if description == "" {
				description = vendorName
			} else {
				description = fmt.Sprintf("%s - %s", vendorName, item.ServiceName)
			}
			addLine(description, item.Quantity, item.UnitPrice)
		}
	}

	if len(lines) == 0 && booking.SubTotal > 0 {
		addLine("Event Booking Services", 1, booking.SubTotal)
	}

	return lines
}

// applySeal computes the QR code and tamper-evidence hash for the
// invoice's current number and financial snapshot.
func (s *InvoiceService) applySeal(invoice *entity.Invoice) {
	seal := zatca.InvoiceSeal{
		InvoiceNumber:   invoice.InvoiceNumber,
		SellerName:      invoice.SellerName,
		SellerVATNumber: invoice.SellerVATNumber,
		IssuedAt:        invoice.InvoiceDate,
		TotalWithTax:    invoice.TotalAmountWithTax,
		TaxAmount:       invoice.TaxAmount,
	}
	invoice.QRCode = seal.QRCode()
	invoice.InvoiceHash = seal.Hash()
}

// GetByID returns one invoice with its line items.
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// GetByNumber returns one invoice by its human-readable number.
func (s *InvoiceService) GetByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// GetByBookingID returns the invoice generated for a booking.
func (s *InvoiceService) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// List returns a page of invoices.
func (s *InvoiceService) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
	return s.invoiceRepo.List(ctx, params)
}

// CancelInvoice marks an invoice cancelled. The record keeps its
// number, hash and QR code; cancellation is an annotation, never a
// deletion or renumbering.
func (s *InvoiceService) CancelInvoice(ctx context.Context, id uuid.UUID, reason string) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.IsCancelled {
		return nil, apperror.NewConflictError("Invoice is already cancelled")
	}

	now := time.Now()
	invoice.IsCancelled = true
	invoice.CancelledAt = &now
	invoice.PaymentStatus = enum.PaymentStatusCancelled
	if reason != "" {
		invoice.CancellationReason = &reason
	}
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}
