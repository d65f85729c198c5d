package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryForDateWithoutEntries(t *testing.T) {
	env := newTestEnv(t)

	summary, err := env.summary.ForDate(t.Context(), env.seller.ID, "2025-11-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-03", summary.Date)
	assert.Equal(t, 0.0, summary.TotalLitres)
	assert.Equal(t, 0.0, summary.TotalAmount)
}

func TestSummaryLatest(t *testing.T) {
	env := newTestEnv(t)

	latest, err := env.summary.Latest(t.Context(), env.seller.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	env.mustCreateCustomer(t, "C101", 1)
	env.mustAddEntry(t, "C101", "2025-11-03", 1)
	env.mustAddEntry(t, "C101", "2025-11-05", 2)

	latest, err = env.summary.Latest(t.Context(), env.seller.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "2025-11-05", latest.Date)
}

func TestSummaryExplicitCreate(t *testing.T) {
	env := newTestEnv(t)

	summary, err := env.summary.Create(t.Context(), &CreateSummaryInput{
		SellerID:    env.seller.ID,
		Date:        "2025-11-03",
		TotalLitres: 12,
		TotalAmount: 660,
	})
	require.NoError(t, err)
	assert.Equal(t, 12.0, summary.TotalLitres)

	// a day can only have one summary row
	_, err = env.summary.Create(t.Context(), &CreateSummaryInput{
		SellerID: env.seller.ID,
		Date:     "2025-11-03",
	})
	require.Error(t, err)
}

func TestSummaryListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1)
	env.mustAddEntry(t, "C101", "2025-11-03", 1)
	env.mustAddEntry(t, "C101", "2025-11-04", 1)
	env.mustAddEntry(t, "C101", "2025-11-05", 1)

	summaries, err := env.summary.List(t.Context(), env.seller.ID, 2)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "2025-11-05", summaries[0].Date)
	assert.Equal(t, "2025-11-04", summaries[1].Date)
}
