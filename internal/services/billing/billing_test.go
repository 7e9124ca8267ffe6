package billing

import (
	"fmt"
	"testing"
	"time"

	"invoice-manager-backend/internal/models"
	"invoice-manager-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testServices bundles the three services over one in-memory database.
type testServices struct {
	db        *gorm.DB
	customers *CustomerService
	invoices  *InvoiceService
	rows      *InvoiceRowService
}

func setupServices(t *testing.T) *testServices {
	t.Helper()

	// one named shared-cache DB per test, visible to every pooled connection
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.InvoiceRow{},
		&models.InvoiceStatusLog{},
	))

	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	rowRepo := repository.NewInvoiceRowRepository(db)

	return &testServices{
		db:        db,
		customers: NewCustomerService(customerRepo),
		invoices:  NewInvoiceService(invoiceRepo),
		rows:      NewInvoiceRowService(rowRepo),
	}
}

func (s *testServices) createCustomer(t *testing.T, name, email string) *CustomerResponse {
	t.Helper()
	customer, err := s.customers.Create(CreateCustomerInput{Name: name, Email: email})
	require.NoError(t, err)
	return customer
}

func (s *testServices) createInvoice(t *testing.T, customerID uint) *InvoiceResponse {
	t.Helper()
	invoice, err := s.invoices.Create(CreateInvoiceInput{
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CustomerID: customerID,
	})
	require.NoError(t, err)
	return invoice
}
