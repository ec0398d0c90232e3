package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/enum"
	"github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/pkg/pagination"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepo) List(ctx context.Context, params *repository.BookingFilterParams) ([]entity.Booking, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *mockBookingRepo) FindByHallAndDate(ctx context.Context, hallID uuid.UUID, date time.Time) ([]entity.Booking, error) {
	args := m.Called(ctx, hallID, date)
	if b := args.Get(0); b != nil {
		return b.([]entity.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatusGuarded(ctx context.Context, id uuid.UUID, expectedVersion int, update repository.StatusUpdate) (bool, error) {
	args := m.Called(ctx, id, expectedVersion, update)
	return args.Bool(0), args.Error(1)
}

type mockVendorBookingRepo struct {
	mock.Mock
}

func (m *mockVendorBookingRepo) CreateBatch(ctx context.Context, vendorBookings []entity.VendorBooking) error {
	return m.Called(ctx, vendorBookings).Error(0)
}

func (m *mockVendorBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.VendorBooking, error) {
	args := m.Called(ctx, id)
	if vb := args.Get(0); vb != nil {
		return vb.(*entity.VendorBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorBookingRepo) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]entity.VendorBooking, error) {
	args := m.Called(ctx, bookingID)
	if vbs := args.Get(0); vbs != nil {
		return vbs.([]entity.VendorBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorBookingRepo) ResetStatuses(ctx context.Context, bookingID uuid.UUID) error {
	return m.Called(ctx, bookingID).Error(0)
}

func (m *mockVendorBookingRepo) ApplyResponse(ctx context.Context, vendorBookingID uuid.UUID, status enum.ApprovalStatus, reason *string, respondedAt time.Time) ([]entity.VendorBooking, error) {
	args := m.Called(ctx, vendorBookingID, status, reason, respondedAt)
	if vbs := args.Get(0); vbs != nil {
		return vbs.([]entity.VendorBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockHallRepo struct {
	mock.Mock
}

func (m *mockHallRepo) Create(ctx context.Context, hall *entity.Hall) error {
	return m.Called(ctx, hall).Error(0)
}

func (m *mockHallRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	args := m.Called(ctx, id)
	if h := args.Get(0); h != nil {
		return h.(*entity.Hall), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHallRepo) Update(ctx context.Context, hall *entity.Hall) error {
	return m.Called(ctx, hall).Error(0)
}

func (m *mockHallRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockHallRepo) List(ctx context.Context, params *pagination.PaginationParams, search string, region string) ([]entity.Hall, int64, error) {
	args := m.Called(ctx, params, search, region)
	return args.Get(0).([]entity.Hall), args.Get(1).(int64), args.Error(2)
}

type mockVendorRepo struct {
	mock.Mock
}

func (m *mockVendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *mockVendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Vendor, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.([]entity.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *mockVendorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockVendorRepo) List(ctx context.Context, params *pagination.PaginationParams, search string, serviceType string) ([]entity.Vendor, int64, error) {
	args := m.Called(ctx, params, search, serviceType)
	return args.Get(0).([]entity.Vendor), args.Get(1).(int64), args.Error(2)
}

type mockServiceItemRepo struct {
	mock.Mock
}

func (m *mockServiceItemRepo) Create(ctx context.Context, item *entity.VendorServiceItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockServiceItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.VendorServiceItem, error) {
	args := m.Called(ctx, id)
	if i := args.Get(0); i != nil {
		return i.(*entity.VendorServiceItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.VendorServiceItem, error) {
	args := m.Called(ctx, ids)
	if i := args.Get(0); i != nil {
		return i.([]entity.VendorServiceItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceItemRepo) Update(ctx context.Context, item *entity.VendorServiceItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockServiceItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockServiceItemRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.VendorServiceItem, error) {
	args := m.Called(ctx, vendorID)
	if i := args.Get(0); i != nil {
		return i.([]entity.VendorServiceItem), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	args := m.Called(ctx, id)
	if i := args.Get(0); i != nil {
		return i.(*entity.Invoice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInvoiceRepo) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Invoice, error) {
	args := m.Called(ctx, bookingID)
	if i := args.Get(0); i != nil {
		return i.(*entity.Invoice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInvoiceRepo) GetByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if i := args.Get(0); i != nil {
		return i.(*entity.Invoice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *mockInvoiceRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.Invoice), args.Get(1).(int64), args.Error(2)
}

func (m *mockInvoiceRepo) CountByYear(ctx context.Context, year int) (int64, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(int64), args.Error(1)
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	if c := args.Get(0); c != nil {
		return c.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	args := m.Called(ctx, params, search)
	return args.Get(0).([]entity.Customer), args.Get(1).(int64), args.Error(2)
}

type mockInvoiceGenerator struct {
	mock.Mock
}

func (m *mockInvoiceGenerator) GenerateForBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Invoice, error) {
	args := m.Called(ctx, bookingID)
	if i := args.Get(0); i != nil {
		return i.(*entity.Invoice), args.Error(1)
	}
	return nil, args.Error(1)
}
