package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/pkg/pagination"
)

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, serviceType string) ([]entity.Vendor, int64, error)
}

// VendorServiceItemRepository defines the interface for vendor service
// item data operations
type VendorServiceItemRepository interface {
	Create(ctx context.Context, item *entity.VendorServiceItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.VendorServiceItem, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.VendorServiceItem, error)
	Update(ctx context.Context, item *entity.VendorServiceItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.VendorServiceItem, error)
}
