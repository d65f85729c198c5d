package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/milkmore/milkmore-api/internal/application/service"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/request"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetRate handles fetching the seller's per-litre rate
func (h *SettingsHandler) GetRate(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	rate, err := h.settingsService.GetRate(c.Request.Context(), *sellerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Rate retrieved successfully", gin.H{"rate": rate})
}

// UpdateRate handles updating the seller's per-litre rate
func (h *SettingsHandler) UpdateRate(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	var req request.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rate, err := h.settingsService.SetRate(c.Request.Context(), *sellerID, req.Rate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Rate updated successfully", gin.H{"rate": rate})
}
