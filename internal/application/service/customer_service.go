package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/internal/domain/repository"
	"github.com/milkmore/milkmore-api/pkg/apperror"
	"github.com/milkmore/milkmore-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// resolveCustomer finds a seller's customer by reference. The customer code
// is tried first; only when no customer carries that code and the reference
// parses as a UUID is it retried as the internal ID.
func resolveCustomer(ctx context.Context, repo repository.CustomerRepository, sellerID uuid.UUID, ref string) (*entity.Customer, error) {
	customer, err := repo.GetByCode(ctx, sellerID, ref)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}

	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		return repo.GetByID(ctx, sellerID, id)
	}
	return nil, nil
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	SellerID      uuid.UUID
	Code          string
	Name          string
	DefaultLitres float64
	Phone         *string
	Photo         *string
}

// CreateCustomer creates a new customer. Codes are unique per seller.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	existing, err := s.customerRepo.GetByCode(ctx, input.SellerID, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Customer with this ID already exists")
	}

	if input.DefaultLitres <= 0 {
		input.DefaultLitres = 1
	}

	customer := &entity.Customer{
		SellerID:      input.SellerID,
		Code:          input.Code,
		Name:          input.Name,
		DefaultLitres: input.DefaultLitres,
		Phone:         input.Phone,
		Photo:         input.Photo,
		Payments:      map[string]bool{},
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a seller's customer by code or internal ID
func (s *CustomerService) GetCustomer(ctx context.Context, sellerID uuid.UUID, ref string) (*entity.Customer, error) {
	customer, err := resolveCustomer(ctx, s.customerRepo, sellerID, ref)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists the seller's customers with pagination
func (s *CustomerService) ListCustomers(ctx context.Context, sellerID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, sellerID, params, search, false)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListAllCustomers returns every customer owned by the seller, unpaginated
func (s *CustomerService) ListAllCustomers(ctx context.Context, sellerID uuid.UUID) ([]entity.Customer, error) {
	return s.customerRepo.ListBySeller(ctx, sellerID)
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	SellerID      uuid.UUID
	Ref           string
	Code          *string
	Name          *string
	DefaultLitres *float64
	Phone         *string
	Photo         *string
}

// UpdateCustomer updates a seller's customer. Changing the code re-checks
// per-seller uniqueness.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := resolveCustomer(ctx, s.customerRepo, input.SellerID, input.Ref)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Code != nil && *input.Code != customer.Code {
		existing, err := s.customerRepo.GetByCode(ctx, input.SellerID, *input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Customer with this ID already exists")
		}
		customer.Code = *input.Code
	}
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.DefaultLitres != nil && *input.DefaultLitres > 0 {
		customer.DefaultLitres = *input.DefaultLitres
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Photo != nil {
		customer.Photo = input.Photo
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a seller's customer. Entries and payments already
// recorded for the customer are kept.
func (s *CustomerService) DeleteCustomer(ctx context.Context, sellerID uuid.UUID, ref string) error {
	customer, err := resolveCustomer(ctx, s.customerRepo, sellerID, ref)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, sellerID, customer.ID)
}
