package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/internal/domain/repository"
	"github.com/milkmore/milkmore-api/pkg/apperror"
	"github.com/milkmore/milkmore-api/pkg/pagination"
)

// AdminService handles cross-seller operations available to admin accounts
type AdminService struct {
	sellerRepo      repository.SellerRepository
	customerRepo    repository.CustomerRepository
	entryRepo       repository.EntryRepository
	customerService *CustomerService
}

// NewAdminService creates a new admin service
func NewAdminService(sellerRepo repository.SellerRepository, customerRepo repository.CustomerRepository, entryRepo repository.EntryRepository, customerService *CustomerService) *AdminService {
	return &AdminService{
		sellerRepo:      sellerRepo,
		customerRepo:    customerRepo,
		entryRepo:       entryRepo,
		customerService: customerService,
	}
}

// ListSellers lists all seller accounts with pagination
func (s *AdminService) ListSellers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Seller], error) {
	sellers, total, err := s.sellerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sellers, pag), nil
}

// GetSeller retrieves any seller account by ID
func (s *AdminService) GetSeller(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.NewNotFoundError("Seller")
	}
	return seller, nil
}

// UpdateSellerInput represents the admin seller update input
type UpdateSellerInput struct {
	ID    uuid.UUID
	Name  *string
	Email *string
	Phone *string
}

// UpdateSeller updates a seller account's profile fields
func (s *AdminService) UpdateSeller(ctx context.Context, input *UpdateSellerInput) (*entity.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.NewNotFoundError("Seller")
	}

	if input.Name != nil && *input.Name != "" {
		seller.Name = *input.Name
	}
	if input.Email != nil {
		seller.Email = input.Email
	}
	if input.Phone != nil {
		seller.Phone = input.Phone
	}

	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	return seller, nil
}

// DeleteSeller removes a seller account. Admin accounts cannot be deleted.
func (s *AdminService) DeleteSeller(ctx context.Context, id uuid.UUID) error {
	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if seller == nil {
		return apperror.NewNotFoundError("Seller")
	}
	if seller.IsAdmin() {
		return apperror.ErrForbidden
	}

	return s.sellerRepo.Delete(ctx, id)
}

// ListAllCustomers lists customers across every seller with pagination
func (s *AdminService) ListAllCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, uuid.Nil, params, search, true)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateAnyCustomerInput represents the admin customer update input
type UpdateAnyCustomerInput struct {
	ID            uuid.UUID
	Name          *string
	DefaultLitres *float64
	Phone         *string
}

// UpdateAnyCustomer updates a customer regardless of owning seller
func (s *AdminService) UpdateAnyCustomer(ctx context.Context, input *UpdateAnyCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetAny(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
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

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteAnyCustomer removes a customer regardless of owning seller
func (s *AdminService) DeleteAnyCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetAny(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.DeleteAny(ctx, id)
}

// ListSellerCustomers lists one seller's customers with pagination
func (s *AdminService) ListSellerCustomers(ctx context.Context, sellerID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, sellerID, params, search, false)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// CreateCustomerForSeller creates a customer under the given seller
func (s *AdminService) CreateCustomerForSeller(ctx context.Context, sellerID uuid.UUID, input *CreateCustomerInput) (*entity.Customer, error) {
	seller, err := s.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.NewNotFoundError("Seller")
	}

	input.SellerID = sellerID
	return s.customerService.CreateCustomer(ctx, input)
}

// DeleteSellerCustomer removes a customer owned by the given seller
func (s *AdminService) DeleteSellerCustomer(ctx context.Context, sellerID, customerID uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, sellerID, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, sellerID, customerID)
}

// UpdateAnyEntryInput represents the admin entry update input
type UpdateAnyEntryInput struct {
	ID     uuid.UUID
	Date   *string
	Litres *float64
	Amount *float64
}

// UpdateAnyEntry updates an entry regardless of owning seller. Amounts are
// taken as given; corrected entries are not repriced.
func (s *AdminService) UpdateAnyEntry(ctx context.Context, input *UpdateAnyEntryInput) (*entity.Entry, error) {
	entry, err := s.entryRepo.GetAny(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Entry")
	}

	if input.Date != nil {
		date, err := normalizeEntryDate(*input.Date)
		if err != nil {
			return nil, err
		}
		entry.Date = date
	}
	if input.Litres != nil && *input.Litres > 0 {
		entry.Litres = *input.Litres
	}
	if input.Amount != nil && *input.Amount >= 0 {
		entry.Amount = *input.Amount
	}

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteAnyEntry removes an entry regardless of owning seller
func (s *AdminService) DeleteAnyEntry(ctx context.Context, id uuid.UUID) error {
	entry, err := s.entryRepo.GetAny(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperror.NewNotFoundError("Entry")
	}

	return s.entryRepo.DeleteAny(ctx, id)
}

// ListAllEntries lists entries across every seller, newest first
func (s *AdminService) ListAllEntries(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Entry], error) {
	entries, total, err := s.entryRepo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}
