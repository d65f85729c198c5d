package request

// AddEntryRequest represents an add entry request. CustomerID is the customer
// code (or internal ID); an omitted date means today. Litres is required and
// may be zero for a no-delivery day.
type AddEntryRequest struct {
	CustomerID string   `json:"customer_id" binding:"required"`
	Date       string   `json:"date"`
	Litres     *float64 `json:"litres" binding:"required,gte=0"`
}

// MarkPaidRequest represents a mark paid request
type MarkPaidRequest struct {
	CustomerID string  `json:"customer_id" binding:"required"`
	Month      int     `json:"month" binding:"required,min=1,max=12"`
	Year       int     `json:"year" binding:"required,min=2000"`
	Method     string  `json:"method"`
	PaidBy     *string `json:"paid_by"`
}

// CollectPaymentRequest represents a payment collection request. The payment
// method must be supplied.
type CollectPaymentRequest struct {
	CustomerID string  `json:"customer_id" binding:"required"`
	Month      int     `json:"month" binding:"required,min=1,max=12"`
	Year       int     `json:"year" binding:"required,min=2000"`
	Method     string  `json:"method" binding:"required"`
	PaidBy     *string `json:"paid_by"`
}

// MarkUnpaidRequest represents a mark unpaid request
type MarkUnpaidRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000"`
}

// CreateSummaryRequest represents an explicit daily summary create request
type CreateSummaryRequest struct {
	Date        string  `json:"date" binding:"required"`
	TotalLitres float64 `json:"total_litres" binding:"omitempty,gte=0"`
	TotalAmount float64 `json:"total_amount" binding:"omitempty,gte=0"`
}

// UpdateRateRequest represents a milk rate update request
type UpdateRateRequest struct {
	Rate float64 `json:"rate" binding:"required,gt=0"`
}
