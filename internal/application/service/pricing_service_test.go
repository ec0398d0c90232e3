package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/venuebook-api/internal/domain/entity"
)

func TestComputeHallCost_WeekendDays(t *testing.T) {
	hallRepo := new(mockHallRepo)
	svc := NewPricingService(hallRepo, new(mockVendorRepo), new(mockServiceItemRepo))

	hall := &entity.Hall{ID: uuid.New(), WeekdayRate: 3000, WeekendRate: 5000}
	hallRepo.On("GetByID", mock.Anything, hall.ID).Return(hall, nil)

	tests := []struct {
		name string
		date time.Time
		want float64
	}{
		{"thursday is a weekday", time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC), 3000},
		{"friday is weekend", time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC), 5000},
		{"saturday is weekend", time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC), 5000},
		{"sunday is a weekday", time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := svc.ComputeHallCost(context.Background(), hall.ID, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cost)
		})
	}
}

func TestComputeVendorServicesCost_EmptySelection(t *testing.T) {
	svc := NewPricingService(new(mockHallRepo), new(mockVendorRepo), new(mockServiceItemRepo))

	total, shares, err := svc.ComputeVendorServicesCost(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
	assert.Empty(t, shares)
}

func TestComputeVendorServicesCost_GroupsByVendor(t *testing.T) {
	vendorRepo := new(mockVendorRepo)
	serviceItemRepo := new(mockServiceItemRepo)
	svc := NewPricingService(new(mockHallRepo), vendorRepo, serviceItemRepo)

	catering := entity.Vendor{ID: uuid.New(), Name: "Golden Plate Catering"}
	flowers := entity.Vendor{ID: uuid.New(), Name: "Yasmin Flowers"}
	buffet := entity.VendorServiceItem{ID: uuid.New(), VendorID: catering.ID, Name: "Buffet Dinner", UnitPrice: 15}
	drinks := entity.VendorServiceItem{ID: uuid.New(), VendorID: catering.ID, Name: "Welcome Drinks", UnitPrice: 5}
	bouquet := entity.VendorServiceItem{ID: uuid.New(), VendorID: flowers.ID, Name: "Stage Arrangement", UnitPrice: 800}

	vendorRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Vendor{catering, flowers}, nil)
	serviceItemRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.VendorServiceItem{buffet, drinks, bouquet}, nil)

	total, shares, err := svc.ComputeVendorServicesCost(context.Background(), []ServiceSelection{
		{VendorID: catering.ID, ServiceItemID: buffet.ID, Quantity: 100},
		{VendorID: flowers.ID, ServiceItemID: bouquet.ID, Quantity: 1},
		{VendorID: catering.ID, ServiceItemID: drinks.ID, Quantity: 100},
	})
	require.NoError(t, err)

	assert.Equal(t, 2800.0, total)
	require.Len(t, shares, 2)

	// First-seen vendor order is preserved
	assert.Equal(t, "Golden Plate Catering", shares[0].VendorName)
	assert.Equal(t, 2000.0, shares[0].SubTotal)
	assert.Len(t, shares[0].Lines, 2)
	assert.Equal(t, "Yasmin Flowers", shares[1].VendorName)
	assert.Equal(t, 800.0, shares[1].SubTotal)
}

func TestComputeVendorServicesCost_MissingItemDegradesToZero(t *testing.T) {
	vendorRepo := new(mockVendorRepo)
	serviceItemRepo := new(mockServiceItemRepo)
	svc := NewPricingService(new(mockHallRepo), vendorRepo, serviceItemRepo)

	vendor := entity.Vendor{ID: uuid.New(), Name: "Golden Plate Catering"}
	missingItemID := uuid.New()

	vendorRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Vendor{vendor}, nil)
	serviceItemRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.VendorServiceItem{}, nil)

	total, shares, err := svc.ComputeVendorServicesCost(context.Background(), []ServiceSelection{
		{VendorID: vendor.ID, ServiceItemID: missingItemID, Quantity: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, total)
	require.Len(t, shares, 1)
	require.Len(t, shares[0].Lines, 1)
	assert.Equal(t, "Unknown Service", shares[0].Lines[0].ServiceName)
	assert.Equal(t, 0.0, shares[0].Lines[0].UnitPrice)
}

func TestComputeVendorServicesCost_MissingVendorGetsPlaceholderName(t *testing.T) {
	vendorRepo := new(mockVendorRepo)
	serviceItemRepo := new(mockServiceItemRepo)
	svc := NewPricingService(new(mockHallRepo), vendorRepo, serviceItemRepo)

	missingVendorID := uuid.New()
	item := entity.VendorServiceItem{ID: uuid.New(), VendorID: missingVendorID, Name: "Photography", UnitPrice: 2000}

	vendorRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.Vendor{}, nil)
	serviceItemRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]entity.VendorServiceItem{item}, nil)

	total, shares, err := svc.ComputeVendorServicesCost(context.Background(), []ServiceSelection{
		{VendorID: missingVendorID, ServiceItemID: item.ID, Quantity: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 2000.0, total)
	require.Len(t, shares, 1)
	assert.Equal(t, "Unknown Vendor", shares[0].VendorName)
}
