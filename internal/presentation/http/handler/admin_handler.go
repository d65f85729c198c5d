package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/application/service"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/request"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/response"
)

// AdminHandler handles cross-seller admin HTTP requests
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListSellers handles listing all seller accounts
func (h *AdminHandler) ListSellers(c *gin.Context) {
	params := GetPaginationParams(c)
	search := c.Query("search")

	result, err := h.adminService.ListSellers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sellers retrieved successfully", result)
}

// GetSeller handles fetching one seller account
func (h *AdminHandler) GetSeller(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID")
		return
	}

	seller, err := h.adminService.GetSeller(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Seller retrieved successfully", gin.H{"seller": seller})
}

// UpdateSeller handles updating a seller account's profile
func (h *AdminHandler) UpdateSeller(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID")
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	seller, err := h.adminService.UpdateSeller(c.Request.Context(), &service.UpdateSellerInput{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Seller updated successfully", gin.H{"seller": seller})
}

// DeleteSeller handles removing a seller account
func (h *AdminHandler) DeleteSeller(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID")
		return
	}

	if err := h.adminService.DeleteSeller(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Seller deleted successfully", nil)
}

// ListCustomers handles listing customers across all sellers
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	params := GetPaginationParams(c)
	search := c.Query("search")

	result, err := h.adminService.ListAllCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// UpdateCustomer handles updating any customer by internal ID
func (h *AdminHandler) UpdateCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Name          *string  `json:"name"`
		DefaultLitres *float64 `json:"default_litres"`
		Phone         *string  `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.adminService.UpdateAnyCustomer(c.Request.Context(), &service.UpdateAnyCustomerInput{
		ID:            id,
		Name:          req.Name,
		DefaultLitres: req.DefaultLitres,
		Phone:         req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", gin.H{"customer": customer})
}

// DeleteCustomer handles removing any customer by internal ID
func (h *AdminHandler) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.adminService.DeleteAnyCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}

// SellerCustomers handles listing one seller's customers
func (h *AdminHandler) SellerCustomers(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID")
		return
	}

	params := GetPaginationParams(c)
	search := c.Query("search")

	result, err := h.adminService.ListSellerCustomers(c.Request.Context(), sellerID, params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// CreateSellerCustomer handles creating a customer on a seller's behalf
func (h *AdminHandler) CreateSellerCustomer(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID")
		return
	}

	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.adminService.CreateCustomerForSeller(c.Request.Context(), sellerID, &service.CreateCustomerInput{
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

// DeleteSellerCustomer handles removing a customer owned by a specific seller
func (h *AdminHandler) DeleteSellerCustomer(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID")
		return
	}
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.adminService.DeleteSellerCustomer(c.Request.Context(), sellerID, customerID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}

// UpdateEntry handles correcting any entry by internal ID
func (h *AdminHandler) UpdateEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	var req struct {
		Date   *string  `json:"date"`
		Litres *float64 `json:"litres"`
		Amount *float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.adminService.UpdateAnyEntry(c.Request.Context(), &service.UpdateAnyEntryInput{
		ID:     id,
		Date:   req.Date,
		Litres: req.Litres,
		Amount: req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Entry updated successfully", gin.H{"entry": entry})
}

// DeleteEntry handles removing any entry by internal ID
func (h *AdminHandler) DeleteEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.adminService.DeleteAnyEntry(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Entry deleted successfully", nil)
}

// ListEntries handles listing entries across all sellers
func (h *AdminHandler) ListEntries(c *gin.Context) {
	params := GetPaginationParams(c)

	result, err := h.adminService.ListAllEntries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Entries retrieved successfully", result)
}
