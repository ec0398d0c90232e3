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

type hallRepository struct {
	db *gorm.DB
}

// NewHallRepository creates a new hall repository
func NewHallRepository(db *gorm.DB) domainRepo.HallRepository {
	return &hallRepository{db: db}
}

func (r *hallRepository) Create(ctx context.Context, hall *entity.Hall) error {
	return r.db.WithContext(ctx).Create(hall).Error
}

func (r *hallRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	var hall entity.Hall
	err := r.db.WithContext(ctx).First(&hall, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *hallRepository) Update(ctx context.Context, hall *entity.Hall) error {
	return r.db.WithContext(ctx).Save(hall).Error
}

func (r *hallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Hall{}, "id = ?", id).Error
}

func (r *hallRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, region string) ([]entity.Hall, int64, error) {
	var halls []entity.Hall
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Hall{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if region != "" {
		query = query.Where("region = ?", region)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&halls).Error

	return halls, total, err
}
