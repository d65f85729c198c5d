package service

import (
	"testing"

	"github.com/milkmore/milkmore-api/internal/domain/entity"
	infraRepo "github.com/milkmore/milkmore-api/internal/infrastructure/repository"
	"github.com/milkmore/milkmore-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminEnv(t *testing.T) (*AdminService, *gorm.DB, *entity.Seller) {
	t.Helper()

	db := setupTestDB(t)

	email := "seller@example.com"
	seller := &entity.Seller{Name: "Seller One", Email: &email, Role: entity.RoleSeller}
	require.NoError(t, db.Create(seller).Error)

	customerRepo := infraRepo.NewCustomerRepository(db)
	svc := NewAdminService(
		infraRepo.NewSellerRepository(db),
		customerRepo,
		infraRepo.NewEntryRepository(db),
		NewCustomerService(customerRepo),
	)
	return svc, db, seller
}

func TestAdminDeleteSellerRefusesAdmins(t *testing.T) {
	svc, db, seller := newAdminEnv(t)

	adminEmail := "admin@example.com"
	admin := &entity.Seller{Name: "Admin", Email: &adminEmail, Role: entity.RoleAdmin}
	require.NoError(t, db.Create(admin).Error)

	require.Error(t, svc.DeleteSeller(t.Context(), admin.ID))
	require.NoError(t, svc.DeleteSeller(t.Context(), seller.ID))
}

func TestAdminUpdateSeller(t *testing.T) {
	svc, _, seller := newAdminEnv(t)

	name := "Renamed"
	phone := "1112223334"
	updated, err := svc.UpdateSeller(t.Context(), &UpdateSellerInput{
		ID:    seller.ID,
		Name:  &name,
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "1112223334", *updated.Phone)
}

func TestAdminCreateCustomerForSeller(t *testing.T) {
	svc, _, seller := newAdminEnv(t)

	customer, err := svc.CreateCustomerForSeller(t.Context(), seller.ID, &CreateCustomerInput{
		Code:          "C201",
		Name:          "Ravi",
		DefaultLitres: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, seller.ID, customer.SellerID)

	// duplicate code under the same seller is rejected
	_, err = svc.CreateCustomerForSeller(t.Context(), seller.ID, &CreateCustomerInput{
		Code: "C201",
		Name: "Other",
	})
	require.Error(t, err)

	result, err := svc.ListSellerCustomers(t.Context(), seller.ID, pagination.DefaultPagination(), "")
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestAdminDeleteSellerCustomer(t *testing.T) {
	svc, db, seller := newAdminEnv(t)

	customer, err := svc.CreateCustomerForSeller(t.Context(), seller.ID, &CreateCustomerInput{
		Code: "C201",
		Name: "Ravi",
	})
	require.NoError(t, err)

	otherEmail := "other@example.com"
	other := &entity.Seller{Name: "Other", Email: &otherEmail, Role: entity.RoleSeller}
	require.NoError(t, db.Create(other).Error)

	// a customer cannot be deleted through a seller that does not own it
	require.Error(t, svc.DeleteSellerCustomer(t.Context(), other.ID, customer.ID))
	require.NoError(t, svc.DeleteSellerCustomer(t.Context(), seller.ID, customer.ID))
}

func TestAdminUpdateAndDeleteEntry(t *testing.T) {
	svc, db, seller := newAdminEnv(t)

	customer, err := svc.CreateCustomerForSeller(t.Context(), seller.ID, &CreateCustomerInput{
		Code: "C201",
		Name: "Ravi",
	})
	require.NoError(t, err)

	entry := &entity.Entry{
		SellerID:   seller.ID,
		CustomerID: customer.ID,
		Date:       "2025-11-03",
		Litres:     2,
		Amount:     110,
	}
	require.NoError(t, db.Create(entry).Error)

	litres := 3.0
	amount := 165.0
	updated, err := svc.UpdateAnyEntry(t.Context(), &UpdateAnyEntryInput{
		ID:     entry.ID,
		Litres: &litres,
		Amount: &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, updated.Litres)
	assert.Equal(t, 165.0, updated.Amount)

	require.NoError(t, svc.DeleteAnyEntry(t.Context(), entry.ID))
	require.Error(t, svc.DeleteAnyEntry(t.Context(), entry.ID))
}
