package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/milkmore/milkmore-api/internal/application/service"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/request"
	"github.com/milkmore/milkmore-api/internal/presentation/http/dto/response"
)

// BillingHandler handles monthly billing HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Status handles the paid/unpaid partition for a month
func (h *BillingHandler) Status(c *gin.Context) {
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

	status, err := h.billingService.Status(c.Request.Context(), *sellerID, month, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing status retrieved successfully", status)
}

// CustomerSummary handles one customer's monthly billing summary
func (h *BillingHandler) CustomerSummary(c *gin.Context) {
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

	summary, err := h.billingService.CustomerMonthlySummary(c.Request.Context(), *sellerID, GetCustomerRef(c), month, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}

// CustomerAccountSummary handles one customer's all-time totals and payments
func (h *BillingHandler) CustomerAccountSummary(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	summary, err := h.billingService.CustomerAccountSummary(c.Request.Context(), *sellerID, GetCustomerRef(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}

// MarkPaid handles marking a customer's billing period as paid
func (h *BillingHandler) MarkPaid(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	var req request.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, alreadyPaid, err := h.billingService.MarkPaid(c.Request.Context(), &service.MarkPaidInput{
		SellerID:    *sellerID,
		CustomerRef: req.CustomerID,
		Month:       req.Month,
		Year:        req.Year,
		Method:      req.Method,
		PaidBy:      req.PaidBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if alreadyPaid {
		response.OK(c, "Already marked as paid", gin.H{"payment": payment})
		return
	}

	response.Created(c, "Marked as paid", gin.H{"payment": payment})
}

// Collect handles recording a payment collection. Unlike MarkPaid the payment
// method is required and the created record is echoed back.
func (h *BillingHandler) Collect(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	var req request.CollectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, alreadyPaid, err := h.billingService.MarkPaid(c.Request.Context(), &service.MarkPaidInput{
		SellerID:    *sellerID,
		CustomerRef: req.CustomerID,
		Month:       req.Month,
		Year:        req.Year,
		Method:      req.Method,
		PaidBy:      req.PaidBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if alreadyPaid {
		response.OK(c, "Already paid", gin.H{"payment": payment})
		return
	}

	response.Created(c, "Payment recorded", gin.H{"payment": payment})
}

// MarkUnpaid handles reverting a customer's billing period to unpaid
func (h *BillingHandler) MarkUnpaid(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	var req request.MarkUnpaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.billingService.MarkUnpaid(c.Request.Context(), *sellerID, req.CustomerID, req.Month, req.Year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Marked as unpaid", nil)
}

// ListPayments handles listing payment records for a month
func (h *BillingHandler) ListPayments(c *gin.Context) {
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

	payments, err := h.billingService.ListPayments(c.Request.Context(), *sellerID, month, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", gin.H{"payments": payments})
}

// CustomerPayments handles listing every payment record for one customer
func (h *BillingHandler) CustomerPayments(c *gin.Context) {
	sellerID := GetSellerID(c)
	if sellerID == nil {
		response.Unauthorized(c, "Seller not authenticated")
		return
	}

	payments, err := h.billingService.CustomerPayments(c.Request.Context(), *sellerID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", gin.H{"payments": payments})
}
