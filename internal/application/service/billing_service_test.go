package service

import (
	"testing"

	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerMonthlySummary(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	env.mustAddEntry(t, "C101", "2025-11-01", 1)
	env.mustAddEntry(t, "C101", "2025-11-15", 2)
	// outside the month
	env.mustAddEntry(t, "C101", "2025-10-31", 5)
	env.mustAddEntry(t, "C101", "2025-12-01", 5)

	summary, err := env.billing.CustomerMonthlySummary(t.Context(), env.seller.ID, "C101", 11, 2025)
	require.NoError(t, err)
	assert.Equal(t, 3.0, summary.TotalLitres)
	assert.Equal(t, 165.0, summary.TotalAmount)
	assert.Equal(t, 55.0, summary.Rate)
	assert.False(t, summary.Paid)

	_, _, err = env.billing.MarkPaid(t.Context(), &MarkPaidInput{
		SellerID:    env.seller.ID,
		CustomerRef: "C101",
		Month:       11,
		Year:        2025,
	})
	require.NoError(t, err)

	summary, err = env.billing.CustomerMonthlySummary(t.Context(), env.seller.ID, "C101", 11, 2025)
	require.NoError(t, err)
	assert.True(t, summary.Paid)
}

func TestMonthlySummaryRepricesAtCurrentRate(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)
	env.mustAddEntry(t, "C101", "2025-11-01", 2)

	_, err := env.settings.SetRate(t.Context(), env.seller.ID, 60)
	require.NoError(t, err)

	// the monthly summary prices litres at the new rate
	summary, err := env.billing.CustomerMonthlySummary(t.Context(), env.seller.ID, "C101", 11, 2025)
	require.NoError(t, err)
	assert.Equal(t, 60.0, summary.Rate)
	assert.Equal(t, 120.0, summary.TotalAmount)

	// the status partition keeps the amounts frozen on the entries
	status, err := env.billing.Status(t.Context(), env.seller.ID, 11, 2025)
	require.NoError(t, err)
	require.Len(t, status.Unpaid, 1)
	assert.Equal(t, 110.0, status.Unpaid[0].TotalAmount)
}

func TestCustomerAccountSummary(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)
	env.mustAddEntry(t, "C101", "2025-10-20", 1)
	env.mustAddEntry(t, "C101", "2025-11-01", 2)

	_, _, err := env.billing.MarkPaid(t.Context(), &MarkPaidInput{
		SellerID:    env.seller.ID,
		CustomerRef: "C101",
		Month:       10,
		Year:        2025,
	})
	require.NoError(t, err)

	summary, err := env.billing.CustomerAccountSummary(t.Context(), env.seller.ID, "C101")
	require.NoError(t, err)
	assert.Equal(t, 3.0, summary.TotalLitres)
	assert.Equal(t, 165.0, summary.TotalAmount)
	assert.Len(t, summary.Payments, 1)
}

func TestStatusPartitionsEveryCustomer(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)
	env.mustCreateCustomer(t, "C102", 1)
	// C103 has no entries at all
	env.mustCreateCustomer(t, "C103", 1)

	env.mustAddEntry(t, "C101", "2025-11-01", 1)
	env.mustAddEntry(t, "C101", "2025-11-02", 1)
	env.mustAddEntry(t, "C102", "2025-11-01", 2)

	_, _, err := env.billing.MarkPaid(t.Context(), &MarkPaidInput{
		SellerID:    env.seller.ID,
		CustomerRef: "C102",
		Month:       11,
		Year:        2025,
	})
	require.NoError(t, err)

	status, err := env.billing.Status(t.Context(), env.seller.ID, 11, 2025)
	require.NoError(t, err)

	// every customer appears exactly once
	assert.Len(t, status.Paid, 1)
	assert.Len(t, status.Unpaid, 2)
	assert.Equal(t, "C102", status.Paid[0].CustomerID)

	unpaidCodes := []string{status.Unpaid[0].CustomerID, status.Unpaid[1].CustomerID}
	assert.ElementsMatch(t, []string{"C101", "C103"}, unpaidCodes)

	// total due covers unpaid customers only
	assert.Equal(t, 110.0, status.TotalDue)

	// a customer without entries is unpaid with zero totals
	for _, s := range status.Unpaid {
		if s.CustomerID == "C103" {
			assert.Equal(t, 0.0, s.TotalLitres)
			assert.Equal(t, 0.0, s.TotalAmount)
		}
	}
}

func TestMarkPaidIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)
	env.mustAddEntry(t, "C101", "2025-11-01", 1)

	first, alreadyPaid, err := env.billing.MarkPaid(t.Context(), &MarkPaidInput{
		SellerID:    env.seller.ID,
		CustomerRef: "C101",
		Month:       11,
		Year:        2025,
		Method:      "UPI",
	})
	require.NoError(t, err)
	assert.False(t, alreadyPaid)
	assert.Equal(t, "UPI", first.Method)

	second, alreadyPaid, err := env.billing.MarkPaid(t.Context(), &MarkPaidInput{
		SellerID:    env.seller.ID,
		CustomerRef: "C101",
		Month:       11,
		Year:        2025,
	})
	require.NoError(t, err)
	assert.True(t, alreadyPaid)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	env.db.Model(&entity.Payment{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestMarkUnpaidIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	_, _, err := env.billing.MarkPaid(t.Context(), &MarkPaidInput{
		SellerID:    env.seller.ID,
		CustomerRef: "C101",
		Month:       11,
		Year:        2025,
	})
	require.NoError(t, err)

	require.NoError(t, env.billing.MarkUnpaid(t.Context(), env.seller.ID, "C101", 11, 2025))
	// unmarking an unpaid period still succeeds
	require.NoError(t, env.billing.MarkUnpaid(t.Context(), env.seller.ID, "C101", 11, 2025))

	var count int64
	env.db.Model(&entity.Payment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestMarkPaidMirrorsCustomerPayments(t *testing.T) {
	env := newTestEnv(t)
	created := env.mustCreateCustomer(t, "C101", 1)

	_, _, err := env.billing.MarkPaid(t.Context(), &MarkPaidInput{
		SellerID:    env.seller.ID,
		CustomerRef: "C101",
		Month:       11,
		Year:        2025,
	})
	require.NoError(t, err)

	var customer entity.Customer
	require.NoError(t, env.db.First(&customer, "id = ?", created.ID).Error)
	assert.True(t, customer.Payments["2025-11"])

	require.NoError(t, env.billing.MarkUnpaid(t.Context(), env.seller.ID, "C101", 11, 2025))

	require.NoError(t, env.db.First(&customer, "id = ?", created.ID).Error)
	_, exists := customer.Payments["2025-11"]
	assert.False(t, exists)
}

func TestMarkPaidUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.billing.MarkPaid(t.Context(), &MarkPaidInput{
		SellerID:    env.seller.ID,
		CustomerRef: "nobody",
		Month:       11,
		Year:        2025,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestPaymentsAreSellerScoped(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	otherEmail := "other@example.com"
	other := &entity.Seller{Name: "Other", Email: &otherEmail, Role: entity.RoleSeller}
	require.NoError(t, env.db.Create(other).Error)

	_, _, err := env.billing.MarkPaid(t.Context(), &MarkPaidInput{
		SellerID:    env.seller.ID,
		CustomerRef: "C101",
		Month:       11,
		Year:        2025,
	})
	require.NoError(t, err)

	// the other seller has no customer C101
	_, _, err = env.billing.MarkPaid(t.Context(), &MarkPaidInput{
		SellerID:    other.ID,
		CustomerRef: "C101",
		Month:       11,
		Year:        2025,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
