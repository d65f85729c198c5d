package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/repository"
	"github.com/milkmore/milkmore-api/pkg/apperror"
	"github.com/milkmore/milkmore-api/pkg/receiptpdf"
)

// ReceiptService assembles and renders monthly delivery receipts
type ReceiptService struct {
	entryRepo    repository.EntryRepository
	customerRepo repository.CustomerRepository
	businessName string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(entryRepo repository.EntryRepository, customerRepo repository.CustomerRepository, businessName string) *ReceiptService {
	if businessName == "" {
		businessName = "Milk More"
	}
	return &ReceiptService{
		entryRepo:    entryRepo,
		customerRepo: customerRepo,
		businessName: businessName,
	}
}

// Generate renders the customer's monthly receipt as PDF bytes. A month with
// no entries has no receipt.
func (s *ReceiptService) Generate(ctx context.Context, sellerID uuid.UUID, customerRef string, month, year int) ([]byte, string, error) {
	if err := validateMonth(month); err != nil {
		return nil, "", err
	}

	customer, err := resolveCustomer(ctx, s.customerRepo, sellerID, customerRef)
	if err != nil {
		return nil, "", err
	}
	if customer == nil {
		return nil, "", apperror.NewNotFoundError("Customer")
	}

	from, to := monthDateRange(month, year)
	entries, err := s.entryRepo.ListByCustomerDateRange(ctx, sellerID, customer.ID, from, to)
	if err != nil {
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", apperror.NewNotFoundError("No entries found for this month, receipt")
	}

	receipt := &receiptpdf.Receipt{
		BusinessName: s.businessName,
		Tagline:      "Daily Milk Delivery",
		CustomerName: customer.Name,
		CustomerCode: customer.Code,
		Month:        time.Month(month),
		Year:         year,
	}
	if customer.Phone != nil {
		receipt.Phone = *customer.Phone
	}

	for _, e := range entries {
		day, err := e.Day()
		if err != nil {
			continue
		}
		rate := 0.0
		if e.Litres > 0 {
			rate = e.Amount / e.Litres
		}
		receipt.Lines = append(receipt.Lines, receiptpdf.Line{
			Date:   day,
			Litres: e.Litres,
			Rate:   rate,
			Amount: e.Amount,
		})
		receipt.TotalLitres += e.Litres
		receipt.TotalAmount += e.Amount
	}

	pdf, err := receiptpdf.Render(receipt)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("receipt-%s-%04d-%02d.pdf", customer.Code, year, month)
	return pdf, filename, nil
}
