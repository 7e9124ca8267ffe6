package repository

import (
	"invoice-manager-backend/internal/models"

	"gorm.io/gorm"
)

type InvoiceRowRepository struct {
	db *gorm.DB
}

func NewInvoiceRowRepository(db *gorm.DB) *InvoiceRowRepository {
	return &InvoiceRowRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRowRepository) DB() *gorm.DB {
	return r.db
}

// GetAll returns every invoice row.
func (r *InvoiceRowRepository) GetAll() ([]models.InvoiceRow, error) {
	var rows []models.InvoiceRow
	err := r.db.Order("id ASC").Find(&rows).Error
	return rows, err
}

// GetByID fetches a single row by ID.
func (r *InvoiceRowRepository) GetByID(id uint) (*models.InvoiceRow, error) {
	var row models.InvoiceRow
	err := r.db.First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
