package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/pkg/pagination"
)

// GetSellerID extracts the seller ID from the Gin context
func GetSellerID(c *gin.Context) *uuid.UUID {
	sellerIDVal, exists := c.Get("seller_id")
	if !exists {
		return nil
	}
	sellerID, ok := sellerIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &sellerID
}

// GetSellerRole extracts the seller role from the Gin context
func GetSellerRole(c *gin.Context) string {
	role, exists := c.Get("seller_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the authenticated seller holds the admin role
func IsAdmin(c *gin.Context) bool {
	return GetSellerRole(c) == entity.RoleAdmin
}

// GetPaginationParams reads page/per_page query parameters
func GetPaginationParams(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		return pagination.DefaultPagination()
	}
	params.Validate()
	return params
}

// GetCustomerRef reads the customer reference (code or internal ID) from the
// path parameter, falling back to the customer_id query parameter.
func GetCustomerRef(c *gin.Context) string {
	if ref := c.Param("id"); ref != "" {
		return ref
	}
	return c.Query("customer_id")
}

// GetMonthYear reads the month/year query parameters. Both are required;
// a missing or non-numeric value is an error.
func GetMonthYear(c *gin.Context) (int, int, error) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return 0, 0, errors.New("Month and Year required")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, errors.New("Month and Year required")
	}
	return month, year, nil
}
