package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/pkg/apperror"
	"github.com/sangkips/venuebook-api/pkg/pagination"
)

// HallService manages the hall catalog.
type HallService struct {
	hallRepo repository.HallRepository
}

// NewHallService creates a new hall service
func NewHallService(hallRepo repository.HallRepository) *HallService {
	return &HallService{hallRepo: hallRepo}
}

// CreateHall persists a new hall.
func (s *HallService) CreateHall(ctx context.Context, hall *entity.Hall) error {
	if hall.WeekdayRate < 0 || hall.WeekendRate < 0 {
		return apperror.NewBadRequestError("Hall rates must not be negative")
	}
	return s.hallRepo.Create(ctx, hall)
}

// GetHall returns one hall.
func (s *HallService) GetHall(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	hall, err := s.hallRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, apperror.NewNotFoundError("Hall")
	}
	return hall, nil
}

// UpdateHall applies changes to an existing hall.
func (s *HallService) UpdateHall(ctx context.Context, hall *entity.Hall) error {
	existing, err := s.hallRepo.GetByID(ctx, hall.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Hall")
	}
	if hall.WeekdayRate < 0 || hall.WeekendRate < 0 {
		return apperror.NewBadRequestError("Hall rates must not be negative")
	}
	return s.hallRepo.Update(ctx, hall)
}

// DeleteHall soft-deletes a hall.
func (s *HallService) DeleteHall(ctx context.Context, id uuid.UUID) error {
	existing, err := s.hallRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Hall")
	}
	return s.hallRepo.Delete(ctx, id)
}

// ListHalls returns a page of halls, optionally filtered by search
// term and region.
func (s *HallService) ListHalls(ctx context.Context, params *pagination.PaginationParams, search, region string) ([]entity.Hall, int64, error) {
	return s.hallRepo.List(ctx, params, search, region)
}
