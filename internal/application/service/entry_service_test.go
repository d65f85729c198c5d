package service

import (
	"testing"
	"time"

	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAmount(t *testing.T) {
	assert.Equal(t, 55.0, computeAmount(1, 55))
	assert.Equal(t, 82.5, computeAmount(1.5, 55))
	// rounds half up to two decimals
	assert.Equal(t, 50.03, computeAmount(1.5, 33.35))
	assert.Equal(t, 0.17, computeAmount(0.005, 33.33))
}

func TestNormalizeEntryDate(t *testing.T) {
	date, err := normalizeEntryDate("2025-11-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-03", date)

	// full timestamps are truncated to their calendar day
	date, err = normalizeEntryDate("2025-11-03T18:45:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-03", date)

	// empty means today
	date, err = normalizeEntryDate("")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(entity.EntryDateLayout), date)

	_, err = normalizeEntryDate("03/11/2025")
	require.Error(t, err)
}

func TestAddEntryUsesConfiguredRate(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	_, err := env.settings.SetRate(t.Context(), env.seller.ID, 60)
	require.NoError(t, err)

	entry := env.mustAddEntry(t, "C101", "2025-11-03", 1.5)
	assert.Equal(t, 1.5, entry.Litres)
	assert.Equal(t, 90.0, entry.Amount)
	assert.Equal(t, "2025-11-03", entry.Date)
}

func TestAddEntryFallbackRate(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 2)

	// no rate configured
	entry := env.mustAddEntry(t, "C101", "2025-11-03", 2)
	assert.Equal(t, 2.0, entry.Litres)
	assert.Equal(t, 110.0, entry.Amount)
}

func TestAddEntryLitresRequired(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 2)

	_, err := env.entry.AddEntry(t.Context(), &AddEntryInput{
		SellerID:    env.seller.ID,
		CustomerRef: "C101",
		Date:        "2025-11-03",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	negative := -1.0
	_, err = env.entry.AddEntry(t.Context(), &AddEntryInput{
		SellerID:    env.seller.ID,
		CustomerRef: "C101",
		Date:        "2025-11-03",
		Litres:      &negative,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// zero litres is a valid no-delivery day
	zero := 0.0
	entry, err := env.entry.AddEntry(t.Context(), &AddEntryInput{
		SellerID:    env.seller.ID,
		CustomerRef: "C101",
		Date:        "2025-11-03",
		Litres:      &zero,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, entry.Amount)
}

func TestAddEntryAmountFrozenAfterRateChange(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	first := env.mustAddEntry(t, "C101", "2025-11-03", 1)
	assert.Equal(t, 55.0, first.Amount)

	_, err := env.settings.SetRate(t.Context(), env.seller.ID, 70)
	require.NoError(t, err)

	second := env.mustAddEntry(t, "C101", "2025-11-04", 1)
	assert.Equal(t, 70.0, second.Amount)

	// the earlier entry keeps its original amount
	var stored entity.Entry
	require.NoError(t, env.db.First(&stored, "id = ?", first.ID).Error)
	assert.Equal(t, 55.0, stored.Amount)
}

func TestAddEntryUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.entry.AddEntry(t.Context(), &AddEntryInput{
		SellerID:    env.seller.ID,
		CustomerRef: "missing",
		Date:        "2025-11-03",
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestAddEntryMaintainsDailySummary(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)
	env.mustCreateCustomer(t, "C102", 1)

	env.mustAddEntry(t, "C101", "2025-11-03", 1)
	env.mustAddEntry(t, "C102", "2025-11-03", 2.5)
	env.mustAddEntry(t, "C101", "2025-11-04", 1)

	summary, err := env.summary.ForDate(t.Context(), env.seller.ID, "2025-11-03")
	require.NoError(t, err)
	assert.Equal(t, 3.5, summary.TotalLitres)
	assert.Equal(t, 192.5, summary.TotalAmount)

	summary, err = env.summary.ForDate(t.Context(), env.seller.ID, "2025-11-04")
	require.NoError(t, err)
	assert.Equal(t, 1.0, summary.TotalLitres)
}

func TestDailyEntriesJoinsCustomerDetails(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	env.mustAddEntry(t, "C101", "2025-11-03", 1.5)

	entries, err := env.entry.DailyEntries(t.Context(), env.seller.ID, "2025-11-03")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "C101", entries[0].CustomerID)
	assert.Equal(t, "Customer C101", entries[0].CustomerName)
	assert.Equal(t, 1.5, entries[0].Litres)
}

func TestMonthlyEntriesBoundaries(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	env.mustAddEntry(t, "C101", "2025-10-31", 1)
	env.mustAddEntry(t, "C101", "2025-11-01", 1)
	env.mustAddEntry(t, "C101", "2025-11-30", 1)
	env.mustAddEntry(t, "C101", "2025-12-01", 1)

	entries, err := env.entry.MonthlyEntries(t.Context(), env.seller.ID, "C101", 11, 2025)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// oldest first
	assert.Equal(t, "2025-11-01", entries[0].Date)
	assert.Equal(t, "2025-11-30", entries[1].Date)
}

func TestMonthlyEntriesInvalidMonth(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	_, err := env.entry.MonthlyEntries(t.Context(), env.seller.ID, "C101", 13, 2025)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestDeleteEntryAdjustsSummary(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	keep := env.mustAddEntry(t, "C101", "2025-11-03", 1)
	remove := env.mustAddEntry(t, "C101", "2025-11-03", 2)

	require.NoError(t, env.entry.DeleteEntry(t.Context(), env.seller.ID, remove.ID))

	summary, err := env.summary.ForDate(t.Context(), env.seller.ID, "2025-11-03")
	require.NoError(t, err)
	assert.Equal(t, keep.Litres, summary.TotalLitres)
	assert.Equal(t, keep.Amount, summary.TotalAmount)
}

func TestSummaryRebuildRepairsDrift(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)

	env.mustAddEntry(t, "C101", "2025-11-03", 1)
	env.mustAddEntry(t, "C101", "2025-11-03", 2)

	// corrupt the cached rollup
	require.NoError(t, env.db.Model(&entity.DailySummary{}).
		Where("seller_id = ? AND date = ?", env.seller.ID, "2025-11-03").
		Updates(map[string]interface{}{"total_litres": 99, "total_amount": 9999}).Error)

	summary, err := env.summary.Rebuild(t.Context(), env.seller.ID, "2025-11-03")
	require.NoError(t, err)
	assert.Equal(t, 3.0, summary.TotalLitres)
	assert.Equal(t, 165.0, summary.TotalAmount)
}
