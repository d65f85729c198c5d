package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/milkmore/milkmore-api/internal/application/service"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt download HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Download renders a customer's monthly receipt and streams it as a PDF
// attachment.
func (h *ReceiptHandler) Download(c *gin.Context) {
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

	pdf, filename, err := h.receiptService.Generate(c.Request.Context(), *sellerID, GetCustomerRef(c), month, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "application/pdf", pdf)
}
