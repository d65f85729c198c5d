package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/internal/domain/repository"
	"github.com/milkmore/milkmore-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// EntryService handles delivery entry recording and the daily summary cache
// that is maintained alongside it.
type EntryService struct {
	entryRepo    repository.EntryRepository
	customerRepo repository.CustomerRepository
	summaryRepo  repository.SummaryRepository
	settings     *SettingsService
}

// NewEntryService creates a new entry service
func NewEntryService(entryRepo repository.EntryRepository, customerRepo repository.CustomerRepository, summaryRepo repository.SummaryRepository, settings *SettingsService) *EntryService {
	return &EntryService{
		entryRepo:    entryRepo,
		customerRepo: customerRepo,
		summaryRepo:  summaryRepo,
		settings:     settings,
	}
}

// computeAmount derives the entry amount from litres and the per-litre rate,
// rounded half-up to two decimal places.
func computeAmount(litres, rate float64) float64 {
	return decimal.NewFromFloat(litres).
		Mul(decimal.NewFromFloat(rate)).
		Round(2).
		InexactFloat64()
}

// normalizeEntryDate canonicalizes a client-supplied date to YYYY-MM-DD.
// Full timestamps are accepted and truncated to their calendar day; an empty
// date means today.
func normalizeEntryDate(raw string) (string, error) {
	if raw == "" {
		return time.Now().Format(entity.EntryDateLayout), nil
	}
	if t, err := time.Parse(entity.EntryDateLayout, raw); err == nil {
		return t.Format(entity.EntryDateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(entity.EntryDateLayout), nil
	}
	return "", apperror.NewBadRequestError("Invalid date format, expected YYYY-MM-DD")
}

// AddEntryInput represents the add entry input. CustomerRef is the customer
// code or internal ID. Litres is required; zero records a no-delivery day.
type AddEntryInput struct {
	SellerID    uuid.UUID
	CustomerRef string
	Date        string
	Litres      *float64
}

// AddEntry records a delivery. The amount is computed from the rate in effect
// now and frozen on the entry; the day's summary row is updated in a second,
// non-transactional write.
func (s *EntryService) AddEntry(ctx context.Context, input *AddEntryInput) (*entity.Entry, error) {
	customer, err := resolveCustomer(ctx, s.customerRepo, input.SellerID, input.CustomerRef)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	date, err := normalizeEntryDate(input.Date)
	if err != nil {
		return nil, err
	}

	if input.Litres == nil {
		return nil, apperror.NewBadRequestError("Litres required")
	}
	if *input.Litres < 0 {
		return nil, apperror.NewBadRequestError("Litres cannot be negative")
	}
	litres := *input.Litres

	rate, err := s.settings.GetRate(ctx, input.SellerID)
	if err != nil {
		return nil, err
	}

	entry := &entity.Entry{
		SellerID:   input.SellerID,
		CustomerID: customer.ID,
		Date:       date,
		Litres:     litres,
		Amount:     computeAmount(litres, rate),
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.applySummaryDelta(ctx, input.SellerID, date, entry.Litres, entry.Amount); err != nil {
		// The entry is already committed; the summary cache can be rebuilt
		// from entries, so a failed second write is not fatal.
		return entry, nil
	}

	return entry, nil
}

// applySummaryDelta adds litres/amount onto the seller's summary row for the
// day, creating the row on first touch.
func (s *EntryService) applySummaryDelta(ctx context.Context, sellerID uuid.UUID, date string, litres, amount float64) error {
	summary, err := s.summaryRepo.GetByDate(ctx, sellerID, date)
	if err != nil {
		return err
	}

	if summary == nil {
		return s.summaryRepo.Create(ctx, &entity.DailySummary{
			SellerID:    sellerID,
			Date:        date,
			TotalLitres: litres,
			TotalAmount: amount,
		})
	}

	summary.TotalLitres += litres
	summary.TotalAmount += amount
	return s.summaryRepo.Update(ctx, summary)
}

// DailyEntry is one entry joined with its customer's display fields.
type DailyEntry struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Date         string    `json:"date"`
	Litres       float64   `json:"litres"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// DailyEntries returns the seller's entries for one delivery day in recording
// order, each joined with the customer's code and name.
func (s *EntryService) DailyEntries(ctx context.Context, sellerID uuid.UUID, rawDate string) ([]DailyEntry, error) {
	date, err := normalizeEntryDate(rawDate)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListByDate(ctx, sellerID, date)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	result := make([]DailyEntry, 0, len(entries))
	for _, e := range entries {
		row := DailyEntry{
			ID:        e.ID,
			Date:      e.Date,
			Litres:    e.Litres,
			Amount:    e.Amount,
			CreatedAt: e.CreatedAt,
		}
		if c, ok := byID[e.CustomerID]; ok {
			row.CustomerID = c.Code
			row.CustomerName = c.Name
		}
		result = append(result, row)
	}

	return result, nil
}

// monthDateRange returns the inclusive [first, last] day strings of a month
func monthDateRange(month, year int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(entity.EntryDateLayout), last.Format(entity.EntryDateLayout)
}

// MonthlyEntries returns a customer's entries for a calendar month, oldest
// first.
func (s *EntryService) MonthlyEntries(ctx context.Context, sellerID uuid.UUID, customerRef string, month, year int) ([]entity.Entry, error) {
	if month < 1 || month > 12 {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid month: %d", month))
	}

	customer, err := resolveCustomer(ctx, s.customerRepo, sellerID, customerRef)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	from, to := monthDateRange(month, year)
	return s.entryRepo.ListByCustomerDateRange(ctx, sellerID, customer.ID, from, to)
}

// DeleteEntry removes an entry and subtracts it from the day's summary
func (s *EntryService) DeleteEntry(ctx context.Context, sellerID, id uuid.UUID) error {
	entry, err := s.entryRepo.GetByID(ctx, sellerID, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperror.NewNotFoundError("Entry")
	}

	if err := s.entryRepo.Delete(ctx, sellerID, id); err != nil {
		return err
	}

	_ = s.applySummaryDelta(ctx, sellerID, entry.Date, -entry.Litres, -entry.Amount)
	return nil
}
