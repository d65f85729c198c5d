package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReceipt(t *testing.T) {
	env := newTestEnv(t)
	customer := env.mustCreateCustomer(t, "C101", 1.5)
	env.mustAddEntry(t, customer.Code, "2025-11-03", 1.5)
	env.mustAddEntry(t, customer.Code, "2025-11-04", 2.0)

	pdf, filename, err := env.receipt.Generate(t.Context(), env.seller.ID, "C101", 11, 2025)
	require.NoError(t, err)
	assert.Equal(t, "receipt-C101-2025-11.pdf", filename)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateReceiptNoEntries(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateCustomer(t, "C101", 1.0)

	_, _, err := env.receipt.Generate(t.Context(), env.seller.ID, "C101", 12, 2025)
	require.Error(t, err)
}

func TestGenerateReceiptUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.receipt.Generate(t.Context(), env.seller.ID, "C999", 11, 2025)
	require.Error(t, err)
}
