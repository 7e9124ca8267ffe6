package billing

import (
	"errors"

	"invoice-manager-backend/internal/domain"
	"invoice-manager-backend/internal/models"
	"invoice-manager-backend/internal/repository"

	"gorm.io/gorm"
)

// CustomerService implements the customer operations of the billing core.
type CustomerService struct {
	customerRepo *repository.CustomerRepository
	db           *gorm.DB
}

func NewCustomerService(customerRepo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		db:           customerRepo.DB(),
	}
}

type CreateCustomerInput struct {
	Name    string
	Email   string
	Address string
	Phone   string
}

type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Address *string
	Phone   *string
}

// Create inserts a new customer. Leaf-most create, no referential checks.
func (s *CustomerService) Create(input CreateCustomerInput) (*CustomerResponse, error) {
	customer := &models.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		Phone:   input.Phone,
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.Create(customer).Error; err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// GetAll returns active customers with their invoice aggregates.
func (s *CustomerService) GetAll() ([]CustomerResponse, error) {
	customers, err := s.customerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, toCustomerResponse(&customers[i]))
	}
	return responses, nil
}

func (s *CustomerService) GetByID(id uint) (*CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("customer", id)
		}
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Update applies a partial overwrite of the mutable fields. Identity,
// creation time and deletion state are never writable here.
func (s *CustomerService) Update(id uint, input UpdateCustomerInput) (*CustomerResponse, error) {
	var updated *models.Customer

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Preload("Invoices").Preload("Invoices.Rows").
			First(&customer, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("customer", id)
			}
			return err
		}

		if input.Name != nil {
			customer.Name = *input.Name
		}
		if input.Email != nil {
			customer.Email = *input.Email
		}
		if input.Address != nil {
			customer.Address = *input.Address
		}
		if input.Phone != nil {
			customer.Phone = *input.Phone
		}
		if err := customer.Validate(); err != nil {
			return err
		}

		if err := tx.Save(&customer).Error; err != nil {
			return err
		}
		updated = &customer
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toCustomerResponse(updated)
	return &resp, nil
}

// SoftDelete marks an active customer deleted. Not idempotent: once the
// customer is gone from the active set a second call reports NotFound.
func (s *CustomerService) SoftDelete(id uint) error {
	result := s.db.Delete(&models.Customer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("customer", id)
	}
	return nil
}

// HardDelete permanently removes a customer. The row is found even when it is
// soft-deleted, but any owned invoice, soft-deleted or not, blocks the delete.
func (s *CustomerService) HardDelete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Unscoped().First(&customer, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("customer", id)
			}
			return err
		}

		var invoiceCount int64
		if err := tx.Unscoped().Model(&models.Invoice{}).
			Where("customer_id = ?", id).
			Count(&invoiceCount).Error; err != nil {
			return err
		}
		if invoiceCount > 0 {
			return domain.NewConflictError("customer still owns invoices")
		}

		return tx.Unscoped().Delete(&customer).Error
	})
}
