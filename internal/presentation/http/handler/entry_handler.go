package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/application/service"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/request"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/response"
)

// EntryHandler handles delivery entry HTTP requests
type EntryHandler struct {
	entryService *service.EntryService
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(entryService *service.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// Add handles recording a delivery entry
func (h *EntryHandler) Add(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	var req request.AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.entryService.AddEntry(c.Request.Context(), &service.AddEntryInput{
		SellerID:    *sellerID,
		CustomerRef: req.CustomerID,
		Date:        req.Date,
		Litres:      req.Litres,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Entry added successfully", gin.H{"entry": entry})
}

// Daily handles listing a day's entries with customer details
func (h *EntryHandler) Daily(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	entries, err := h.entryService.DailyEntries(c.Request.Context(), *sellerID, c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Entries retrieved successfully", gin.H{"entries": entries})
}

// Monthly handles listing a customer's entries for a calendar month
func (h *EntryHandler) Monthly(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	month, year, err := GetMonthYear(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entries, err := h.entryService.MonthlyEntries(c.Request.Context(), *sellerID, GetCustomerRef(c), month, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Entries retrieved successfully", gin.H{"entries": entries})
}

// Delete handles removing an entry
func (h *EntryHandler) Delete(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), *sellerID, entryID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Entry deleted successfully", nil)
}
