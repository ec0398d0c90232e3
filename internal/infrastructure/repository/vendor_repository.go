package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	domainRepo "github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/pkg/pagination"
	"gorm.io/gorm"
)

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) domainRepo.VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.db.WithContext(ctx).Preload("ServiceItems").First(&vendor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Vendor, error) {
	if len(ids) == 0 {
		return []entity.Vendor{}, nil
	}
	var vendors []entity.Vendor
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

func (r *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Vendor{}, "id = ?", id).Error
}

func (r *vendorRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, serviceType string) ([]entity.Vendor, int64, error) {
	var vendors []entity.Vendor
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Vendor{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&vendors).Error

	return vendors, total, err
}

type vendorServiceItemRepository struct {
	db *gorm.DB
}

// NewVendorServiceItemRepository creates a new vendor service item repository
func NewVendorServiceItemRepository(db *gorm.DB) domainRepo.VendorServiceItemRepository {
	return &vendorServiceItemRepository{db: db}
}

func (r *vendorServiceItemRepository) Create(ctx context.Context, item *entity.VendorServiceItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *vendorServiceItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.VendorServiceItem, error) {
	var item entity.VendorServiceItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *vendorServiceItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.VendorServiceItem, error) {
	if len(ids) == 0 {
		return []entity.VendorServiceItem{}, nil
	}
	var items []entity.VendorServiceItem
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *vendorServiceItemRepository) Update(ctx context.Context, item *entity.VendorServiceItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *vendorServiceItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.VendorServiceItem{}, "id = ?", id).Error
}

func (r *vendorServiceItemRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.VendorServiceItem, error) {
	var items []entity.VendorServiceItem
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
