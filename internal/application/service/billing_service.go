package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/internal/domain/repository"
	"github.com/milkmore/milkmore-api/pkg/apperror"
)

// BillingService handles monthly billing: per-customer month totals, the
// paid/unpaid partition and payment marking.
type BillingService struct {
	entryRepo       repository.EntryRepository
	paymentRepo     repository.PaymentRepository
	customerRepo    repository.CustomerRepository
	settingsService *SettingsService
}

// NewBillingService creates a new billing service
func NewBillingService(entryRepo repository.EntryRepository, paymentRepo repository.PaymentRepository, customerRepo repository.CustomerRepository, settingsService *SettingsService) *BillingService {
	return &BillingService{
		entryRepo:       entryRepo,
		paymentRepo:     paymentRepo,
		customerRepo:    customerRepo,
		settingsService: settingsService,
	}
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return apperror.NewBadRequestError(fmt.Sprintf("Invalid month: %d", month))
	}
	return nil
}

// MonthlySummary is one customer's billing summary for a calendar month. The
// amount is priced at the seller's current rate, not the rates frozen on the
// individual entries.
type MonthlySummary struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	TotalLitres  float64 `json:"total_litres"`
	TotalAmount  float64 `json:"total_amount"`
	Rate         float64 `json:"rate"`
	Paid         bool    `json:"paid"`
}

// CustomerMonthlySummary computes a customer's litres for a month, prices them
// at the current rate and reports whether the period is paid.
func (s *BillingService) CustomerMonthlySummary(ctx context.Context, sellerID uuid.UUID, customerRef string, month, year int) (*MonthlySummary, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	customer, err := resolveCustomer(ctx, s.customerRepo, sellerID, customerRef)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	entries, err := s.entryRepo.ListByCustomer(ctx, sellerID, customer.ID)
	if err != nil {
		return nil, err
	}

	rate, err := s.settingsService.GetRate(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	summary := &MonthlySummary{
		CustomerID:   customer.Code,
		CustomerName: customer.Name,
		Month:        month,
		Year:         year,
		Rate:         rate,
	}
	for _, e := range entries {
		if !e.InMonth(month, year) {
			continue
		}
		summary.TotalLitres += e.Litres
	}
	summary.TotalAmount = computeAmount(summary.TotalLitres, rate)

	payment, err := s.paymentRepo.Find(ctx, sellerID, customer.ID, month, year)
	if err != nil {
		return nil, err
	}
	summary.Paid = payment != nil

	return summary, nil
}

// AccountSummary is a customer's all-time delivery totals and payment history
type AccountSummary struct {
	CustomerID  string           `json:"customer_id"`
	TotalLitres float64          `json:"total_litres"`
	TotalAmount float64          `json:"total_amount"`
	Rate        float64          `json:"rate"`
	Payments    []entity.Payment `json:"payments"`
}

// CustomerAccountSummary totals every entry ever recorded for the customer at
// the current rate, with the full payment history attached.
func (s *BillingService) CustomerAccountSummary(ctx context.Context, sellerID uuid.UUID, customerRef string) (*AccountSummary, error) {
	customer, err := resolveCustomer(ctx, s.customerRepo, sellerID, customerRef)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	entries, err := s.entryRepo.ListByCustomer(ctx, sellerID, customer.ID)
	if err != nil {
		return nil, err
	}

	rate, err := s.settingsService.GetRate(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByCustomer(ctx, sellerID, customer.ID)
	if err != nil {
		return nil, err
	}

	summary := &AccountSummary{
		CustomerID: customer.Code,
		Rate:       rate,
		Payments:   payments,
	}
	for _, e := range entries {
		summary.TotalLitres += e.Litres
	}
	summary.TotalAmount = computeAmount(summary.TotalLitres, rate)

	return summary, nil
}

// CustomerStatus is one row of the monthly paid/unpaid partition. Totals sum
// the amounts frozen on the entries.
type CustomerStatus struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	TotalLitres  float64 `json:"total_litres"`
	TotalAmount  float64 `json:"total_amount"`
}

// BillingStatus partitions all customers of a seller for one month
type BillingStatus struct {
	Month    int              `json:"month"`
	Year     int              `json:"year"`
	Paid     []CustomerStatus `json:"paid"`
	Unpaid   []CustomerStatus `json:"unpaid"`
	TotalDue float64          `json:"total_due"`
}

// Status partitions every customer of the seller into paid and unpaid for the
// month. Customers without any entries in the month still appear, unpaid with
// zero totals unless a payment record exists. TotalDue sums unpaid amounts
// only.
func (s *BillingService) Status(ctx context.Context, sellerID uuid.UUID, month, year int) (*BillingStatus, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByPeriod(ctx, sellerID, month, year)
	if err != nil {
		return nil, err
	}
	paidSet := make(map[uuid.UUID]bool, len(payments))
	for _, p := range payments {
		paidSet[p.CustomerID] = true
	}

	status := &BillingStatus{
		Month:  month,
		Year:   year,
		Paid:   []CustomerStatus{},
		Unpaid: []CustomerStatus{},
	}

	for _, c := range customers {
		entries, err := s.entryRepo.ListByCustomer(ctx, sellerID, c.ID)
		if err != nil {
			return nil, err
		}

		row := CustomerStatus{
			CustomerID:   c.Code,
			CustomerName: c.Name,
		}
		for _, e := range entries {
			if !e.InMonth(month, year) {
				continue
			}
			row.TotalLitres += e.Litres
			row.TotalAmount += e.Amount
		}

		if paidSet[c.ID] {
			status.Paid = append(status.Paid, row)
		} else {
			status.Unpaid = append(status.Unpaid, row)
			status.TotalDue += row.TotalAmount
		}
	}

	return status, nil
}

// MarkPaidInput represents the mark paid input
type MarkPaidInput struct {
	SellerID    uuid.UUID
	CustomerRef string
	Month       int
	Year        int
	Method      string
	PaidBy      *string
}

// MarkPaid records a payment for the customer's billing period. Marking an
// already-paid period is a no-op that returns the existing record.
func (s *BillingService) MarkPaid(ctx context.Context, input *MarkPaidInput) (*entity.Payment, bool, error) {
	if err := validateMonth(input.Month); err != nil {
		return nil, false, err
	}

	customer, err := resolveCustomer(ctx, s.customerRepo, input.SellerID, input.CustomerRef)
	if err != nil {
		return nil, false, err
	}
	if customer == nil {
		return nil, false, apperror.NewNotFoundError("Customer")
	}

	existing, err := s.paymentRepo.Find(ctx, input.SellerID, customer.ID, input.Month, input.Year)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	method := input.Method
	if method == "" {
		method = "Cash"
	}

	payment := &entity.Payment{
		SellerID:   input.SellerID,
		CustomerID: customer.ID,
		Month:      input.Month,
		Year:       input.Year,
		Method:     method,
		PaidBy:     input.PaidBy,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, false, err
	}

	s.mirrorPayment(ctx, customer, input.Month, input.Year, true)

	return payment, false, nil
}

// MarkUnpaid removes the payment record for the customer's billing period.
// Unmarking a period that is not paid succeeds without effect.
func (s *BillingService) MarkUnpaid(ctx context.Context, sellerID uuid.UUID, customerRef string, month, year int) error {
	if err := validateMonth(month); err != nil {
		return err
	}

	customer, err := resolveCustomer(ctx, s.customerRepo, sellerID, customerRef)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	if err := s.paymentRepo.DeleteByPeriod(ctx, sellerID, customer.ID, month, year); err != nil {
		return err
	}

	s.mirrorPayment(ctx, customer, month, year, false)

	return nil
}

// mirrorPayment keeps the customer's denormalized month-code map in step with
// the payment records. The mirror is best effort; the Payment rows are
// authoritative, so a failed update is swallowed.
func (s *BillingService) mirrorPayment(ctx context.Context, customer *entity.Customer, month, year int, paid bool) {
	if customer.Payments == nil {
		customer.Payments = map[string]bool{}
	}
	code := entity.MonthCode(month, year)
	if paid {
		customer.Payments[code] = true
	} else {
		delete(customer.Payments, code)
	}
	_ = s.customerRepo.Update(ctx, customer)
}

// ListPayments returns the seller's payment records for one billing period
func (s *BillingService) ListPayments(ctx context.Context, sellerID uuid.UUID, month, year int) ([]entity.Payment, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByPeriod(ctx, sellerID, month, year)
}

// CustomerPayments returns every payment record for one customer
func (s *BillingService) CustomerPayments(ctx context.Context, sellerID uuid.UUID, customerRef string) ([]entity.Payment, error) {
	customer, err := resolveCustomer(ctx, s.customerRepo, sellerID, customerRef)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return s.paymentRepo.ListByCustomer(ctx, sellerID, customer.ID)
}
