package request

// CreateCustomerRequest represents a create customer request. ID is the
// seller-chosen customer code, unique within the seller's book.
type CreateCustomerRequest struct {
	ID            string  `json:"id" binding:"required,min=1,max=50"`
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	DefaultLitres float64 `json:"default_litres" binding:"omitempty,gt=0"`
	Phone         *string `json:"phone"`
	Photo         *string `json:"photo"`
}

// UpdateCustomerRequest represents an update customer request
type UpdateCustomerRequest struct {
	ID            *string  `json:"id" binding:"omitempty,min=1,max=50"`
	Name          *string  `json:"name" binding:"omitempty,min=1,max=255"`
	DefaultLitres *float64 `json:"default_litres" binding:"omitempty,gt=0"`
	Phone         *string  `json:"phone"`
	Photo         *string  `json:"photo"`
}
