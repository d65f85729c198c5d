package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/milkmore/milkmore-api/internal/application/service"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/request"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing the seller's customers
func (h *CustomerHandler) List(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	// ?all=true returns the full unpaginated book, which the daily entry
	// screen needs
	if c.Query("all") == "true" {
		customers, err := h.customerService.ListAllCustomers(c.Request.Context(), *sellerID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Customers retrieved successfully", gin.H{"customers": customers})
		return
	}

	params := GetPaginationParams(c)
	search := c.Query("search")

	result, err := h.customerService.ListCustomers(c.Request.Context(), *sellerID, params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		SellerID:      *sellerID,
		Code:          req.ID,
		Name:          req.Name,
		DefaultLitres: req.DefaultLitres,
		Phone:         req.Phone,
		Photo:         req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", gin.H{"customer": customer})
}

// Get handles fetching one customer by code or internal ID
func (h *CustomerHandler) Get(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), *sellerID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", gin.H{"customer": customer})
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		SellerID:      *sellerID,
		Ref:           c.Param("id"),
		Code:          req.ID,
		Name:          req.Name,
		DefaultLitres: req.DefaultLitres,
		Phone:         req.Phone,
		Photo:         req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", gin.H{"customer": customer})
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), *sellerID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}
