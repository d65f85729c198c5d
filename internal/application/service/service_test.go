package service

import (
	"fmt"
	"testing"

	"github.com/milkmore/milkmore-api/internal/domain/entity"
	infraRepo "github.com/milkmore/milkmore-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database and migrates the schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Seller{},
		&entity.PasswordResetOTP{},
		&entity.Customer{},
		&entity.Entry{},
		&entity.DailySummary{},
		&entity.Payment{},
		&entity.Setting{},
	)
	require.NoError(t, err)

	return db
}

type testEnv struct {
	db       *gorm.DB
	seller   *entity.Seller
	settings *SettingsService
	customer *CustomerService
	entry    *EntryService
	billing  *BillingService
	summary  *SummaryService
	receipt  *ReceiptService
}

// newTestEnv wires the billing services over a fresh database with one seller
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)

	email := "seller@example.com"
	seller := &entity.Seller{
		Name:  "Test Seller",
		Email: &email,
		Role:  entity.RoleSeller,
	}
	require.NoError(t, db.Create(seller).Error)

	customerRepo := infraRepo.NewCustomerRepository(db)
	entryRepo := infraRepo.NewEntryRepository(db)
	paymentRepo := infraRepo.NewPaymentRepository(db)
	summaryRepo := infraRepo.NewSummaryRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)

	settings := NewSettingsService(settingsRepo, 55)

	return &testEnv{
		db:       db,
		seller:   seller,
		settings: settings,
		customer: NewCustomerService(customerRepo),
		entry:    NewEntryService(entryRepo, customerRepo, summaryRepo, settings),
		billing:  NewBillingService(entryRepo, paymentRepo, customerRepo, settings),
		summary:  NewSummaryService(summaryRepo, entryRepo),
		receipt:  NewReceiptService(entryRepo, customerRepo, "Milk More"),
	}
}

// mustCreateCustomer creates a customer with the given code and default litres
func (e *testEnv) mustCreateCustomer(t *testing.T, code string, defaultLitres float64) *entity.Customer {
	t.Helper()

	customer, err := e.customer.CreateCustomer(t.Context(), &CreateCustomerInput{
		SellerID:      e.seller.ID,
		Code:          code,
		Name:          "Customer " + code,
		DefaultLitres: defaultLitres,
	})
	require.NoError(t, err)
	return customer
}

// mustAddEntry records an entry for the customer on the given day
func (e *testEnv) mustAddEntry(t *testing.T, customerRef, date string, litres float64) *entity.Entry {
	t.Helper()

	entry, err := e.entry.AddEntry(t.Context(), &AddEntryInput{
		SellerID:    e.seller.ID,
		CustomerRef: customerRef,
		Date:        date,
		Litres:      &litres,
	})
	require.NoError(t, err)
	return entry
}
