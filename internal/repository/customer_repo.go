package repository

import (
	"invoice-manager-backend/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Expose DB if needed
func (r *CustomerRepository) DB() *gorm.DB {
	return r.db
}

// GetAll returns all active customers with their active invoices and rows
// eagerly loaded so aggregates can be computed on read.
func (r *CustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.
		Preload("Invoices").
		Preload("Invoices.Rows").
		Order("id ASC").
		Find(&customers).Error
	return customers, err
}

// GetByID fetches a single active customer with children loaded.
func (r *CustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.
		Preload("Invoices").
		Preload("Invoices.Rows").
		First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
