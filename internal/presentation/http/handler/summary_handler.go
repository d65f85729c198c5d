package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/milkmore/milkmore-api/internal/application/service"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/request"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/response"
)

// SummaryHandler handles daily summary HTTP requests
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// ForDate handles fetching one day's rollup
func (h *SummaryHandler) ForDate(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	summary, err := h.summaryService.ForDate(c.Request.Context(), *sellerID, c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", gin.H{"summary": summary})
}

// List handles listing recent daily rollups, newest first
func (h *SummaryHandler) List(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	limit := 30
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	summaries, err := h.summaryService.List(c.Request.Context(), *sellerID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summaries retrieved successfully", gin.H{"summaries": summaries})
}

// Latest handles fetching the most recent daily rollup
func (h *SummaryHandler) Latest(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	summary, err := h.summaryService.Latest(c.Request.Context(), *sellerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if summary == nil {
		response.NotFound(c, "No entries found")
		return
	}

	response.OK(c, "Summary retrieved successfully", gin.H{"summary": summary})
}

// Create handles recording a summary for a day that has none
func (h *SummaryHandler) Create(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	var req request.CreateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	summary, err := h.summaryService.Create(c.Request.Context(), &service.CreateSummaryInput{
		SellerID:    *sellerID,
		Date:        req.Date,
		TotalLitres: req.TotalLitres,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Summary added successfully", gin.H{"summary": summary})
}

// Rebuild recomputes one day's rollup from its entries
func (h *SummaryHandler) Rebuild(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	summary, err := h.summaryService.Rebuild(c.Request.Context(), *sellerID, c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary rebuilt successfully", gin.H{"summary": summary})
}
