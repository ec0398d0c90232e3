package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/pkg/apperror"
	"github.com/sangkips/venuebook-api/pkg/pagination"
)

// VendorService manages vendors and their service catalogs.
type VendorService struct {
	vendorRepo      repository.VendorRepository
	serviceItemRepo repository.VendorServiceItemRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(
	vendorRepo repository.VendorRepository,
	serviceItemRepo repository.VendorServiceItemRepository,
) *VendorService {
	return &VendorService{
		vendorRepo:      vendorRepo,
		serviceItemRepo: serviceItemRepo,
	}
}

// CreateVendor persists a new vendor.
func (s *VendorService) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	return s.vendorRepo.Create(ctx, vendor)
}

// GetVendor returns one vendor.
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// UpdateVendor applies changes to an existing vendor.
func (s *VendorService) UpdateVendor(ctx context.Context, vendor *entity.Vendor) error {
	existing, err := s.vendorRepo.GetByID(ctx, vendor.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Vendor")
	}
	return s.vendorRepo.Update(ctx, vendor)
}

// DeleteVendor soft-deletes a vendor.
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	existing, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Vendor")
	}
	return s.vendorRepo.Delete(ctx, id)
}

// ListVendors returns a page of vendors, optionally filtered by search
// term and service type.
func (s *VendorService) ListVendors(ctx context.Context, params *pagination.PaginationParams, search, serviceType string) ([]entity.Vendor, int64, error) {
	return s.vendorRepo.List(ctx, params, search, serviceType)
}

// AddServiceItem adds a service item to a vendor's catalog.
func (s *VendorService) AddServiceItem(ctx context.Context, item *entity.VendorServiceItem) error {
	vendor, err := s.vendorRepo.GetByID(ctx, item.VendorID)
	if err != nil {
		return err
	}
	if vendor == nil {
		return apperror.NewNotFoundError("Vendor")
	}
	if item.UnitPrice < 0 {
		return apperror.NewBadRequestError("Unit price must not be negative")
	}
	return s.serviceItemRepo.Create(ctx, item)
}

// GetServiceItem returns one catalog item.
func (s *VendorService) GetServiceItem(ctx context.Context, id uuid.UUID) (*entity.VendorServiceItem, error) {
	item, err := s.serviceItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Service item")
	}
	return item, nil
}

// UpdateServiceItem applies changes to a catalog item.
func (s *VendorService) UpdateServiceItem(ctx context.Context, item *entity.VendorServiceItem) error {
	existing, err := s.serviceItemRepo.GetByID(ctx, item.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Service item")
	}
	if item.UnitPrice < 0 {
		return apperror.NewBadRequestError("Unit price must not be negative")
	}
	return s.serviceItemRepo.Update(ctx, item)
}

// DeleteServiceItem removes a catalog item.
func (s *VendorService) DeleteServiceItem(ctx context.Context, id uuid.UUID) error {
	existing, err := s.serviceItemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Service item")
	}
	return s.serviceItemRepo.Delete(ctx, id)
}

// ListServiceItems returns a vendor's service catalog.
func (s *VendorService) ListServiceItems(ctx context.Context, vendorID uuid.UUID) ([]entity.VendorServiceItem, error) {
	return s.serviceItemRepo.ListByVendor(ctx, vendorID)
}
