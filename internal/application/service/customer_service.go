package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/venuebook-api/internal/domain/entity"
	"github.com/sangkips/venuebook-api/internal/domain/repository"
	"github.com/sangkips/venuebook-api/pkg/apperror"
	"github.com/sangkips/venuebook-api/pkg/pagination"
)

// CustomerService manages customer profiles.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomer persists a new customer profile.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	if customer.Email != nil && *customer.Email != "" {
		existing, err := s.customerRepo.GetByEmail(ctx, *customer.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperror.NewConflictError("A customer with this email already exists")
		}
	}
	return s.customerRepo.Create(ctx, customer)
}

// GetCustomer returns one customer.
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomer applies changes to an existing customer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	existing, err := s.customerRepo.GetByID(ctx, customer.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Update(ctx, customer)
}

// DeleteCustomer soft-deletes a customer.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	existing, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers returns a page of customers, optionally filtered by a
// search term.
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return s.customerRepo.List(ctx, params, search)
}
