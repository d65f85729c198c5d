package service

import (
	"testing"

	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/pkg/apperror"
	"github.com/milkmore/milkmore-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerDuplicateCode(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	_, err := env.customer.CreateCustomer(t.Context(), &CreateCustomerInput{
		SellerID: env.seller.ID,
		Code:     "C101",
		Name:     "Someone Else",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCustomerCodesScopedPerSeller(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	otherEmail := "other@example.com"
	other := &entity.Seller{Name: "Other", Email: &otherEmail, Role: entity.RoleSeller}
	require.NoError(t, env.db.Create(other).Error)

	// the same code under a different seller is not a conflict
	second, err := env.customer.CreateCustomer(t.Context(), &CreateCustomerInput{
		SellerID: other.ID,
		Code:     "C101",
		Name:     "Other's Customer",
	})
	require.NoError(t, err)
	assert.Equal(t, "C101", second.Code)

	// and neither seller can see the other's customer
	_, err = env.customer.GetCustomer(t.Context(), other.ID, "C102")
	require.Error(t, err)
}

func TestGetCustomerResolvesCodeBeforeInternalID(t *testing.T) {
	env := newTestEnv(t)
	created := env.mustCreateCustomer(t, "C101", 1)

	byCode, err := env.customer.GetCustomer(t.Context(), env.seller.ID, "C101")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	byID, err := env.customer.GetCustomer(t.Context(), env.seller.ID, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	_, err = env.customer.GetCustomer(t.Context(), env.seller.ID, "C999")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateCustomerCodeConflict(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)
	env.mustCreateCustomer(t, "C102", 1)

	taken := "C101"
	_, err := env.customer.UpdateCustomer(t.Context(), &UpdateCustomerInput{
		SellerID: env.seller.ID,
		Ref:      "C102",
		Code:     &taken,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateCustomerFields(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	name := "Renamed"
	litres := 2.5
	updated, err := env.customer.UpdateCustomer(t.Context(), &UpdateCustomerInput{
		SellerID:      env.seller.ID,
		Ref:           "C101",
		Name:          &name,
		DefaultLitres: &litres,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 2.5, updated.DefaultLitres)
	assert.Equal(t, "C101", updated.Code)
}

func TestDeleteCustomerKeepsEntries(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)
	entry := env.mustAddEntry(t, "C101", "2025-11-01", 1)

	require.NoError(t, env.customer.DeleteCustomer(t.Context(), env.seller.ID, "C101"))

	_, err := env.customer.GetCustomer(t.Context(), env.seller.ID, "C101")
	require.Error(t, err)

	// entries survive the customer
	entries, err := env.entry.DailyEntries(t.Context(), env.seller.ID, "2025-11-01")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestListCustomersPaginated(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)
	env.mustCreateCustomer(t, "C102", 1)
	env.mustCreateCustomer(t, "C103", 1)

	params := &pagination.PaginationParams{Page: 1, PerPage: 2}
	result, err := env.customer.ListCustomers(t.Context(), env.seller.ID, params, "")
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(3), result.Pagination.Total)
	assert.True(t, result.Pagination.HasNext)
}
