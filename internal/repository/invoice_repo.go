package repository

import (
	"invoice-manager-backend/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// withChildren loads rows plus the owning customer. The customer preload is
// unscoped: a soft-deleted customer must not hide its surviving invoices.
func (r *InvoiceRepository) withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Rows").
		Preload("Customer", func(db *gorm.DB) *gorm.DB { return db.Unscoped() })
}

// GetAll returns all active invoices with rows loaded for total computation.
func (r *InvoiceRepository) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.withChildren(r.db).Order("id ASC").Find(&invoices).Error
	return invoices, err
}

// GetByCustomerID returns the active invoices owned by one customer.
func (r *InvoiceRepository) GetByCustomerID(customerID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.withChildren(r.db).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&invoices).Error
	return invoices, err
}

// GetByID fetches a single active invoice with children loaded.
func (r *InvoiceRepository) GetByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.withChildren(r.db).First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

