package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, target string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestGetMonthYear(t *testing.T) {
	month, year, err := GetMonthYear(queryContext(t, "/payments/status?month=11&year=2025"))
	require.NoError(t, err)
	assert.Equal(t, 11, month)
	assert.Equal(t, 2025, year)
}

func TestGetMonthYearRequiresBothParams(t *testing.T) {
	_, _, err := GetMonthYear(queryContext(t, "/payments/status"))
	require.Error(t, err)

	_, _, err = GetMonthYear(queryContext(t, "/payments/status?month=11"))
	require.Error(t, err)

	_, _, err = GetMonthYear(queryContext(t, "/payments/status?month=abc&year=2025"))
	require.Error(t, err)
}

func TestGetCustomerRef(t *testing.T) {
	c := queryContext(t, "/entries/monthly?customer_id=C101")
	assert.Equal(t, "C101", GetCustomerRef(c))

	c = queryContext(t, "/customers/C102/entries")
	c.Params = gin.Params{{Key: "id", Value: "C102"}}
	assert.Equal(t, "C102", GetCustomerRef(c))
}
