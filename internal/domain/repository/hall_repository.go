package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/pkg/pagination"
)

// HallRepository defines the interface for hall data operations
type HallRepository interface {
	Create(ctx context.Context, hall *entity.Hall) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error)
	Update(ctx context.Context, hall *entity.Hall) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, region string) ([]entity.Hall, int64, error)
}
