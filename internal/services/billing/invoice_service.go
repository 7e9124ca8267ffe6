package billing

import (
	"encoding/json"
	"errors"
	"time"

	"invoice-manager-backend/internal/domain"
	"invoice-manager-backend/internal/models"
	"invoice-manager-backend/internal/repository"

	"gorm.io/gorm"
)

// InvoiceService implements the invoice operations of the billing core,
// including the status state machine.
type InvoiceService struct {
	invoiceRepo *repository.InvoiceRepository
	db          *gorm.DB
}

func NewInvoiceService(invoiceRepo *repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		db:          invoiceRepo.DB(),
	}
}

type CreateInvoiceInput struct {
	StartDate  time.Time
	EndDate    time.Time
	Comment    string
	CustomerID uint
}

type UpdateInvoiceInput struct {
	StartDate time.Time
	EndDate   time.Time
	Comment   string
}

// Create inserts a new invoice in the draft state. The owning customer must
// exist and be active, otherwise the caller gets ReferenceNotFound instead of
// a silently orphaned invoice.
func (s *InvoiceService) Create(input CreateInvoiceInput) (*InvoiceResponse, error) {
	var created *models.Invoice

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, "id = ?", input.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewReferenceNotFoundError("customer", input.CustomerID)
			}
			return err
		}

		invoice := &models.Invoice{
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
			Comment:    input.Comment,
			Status:     models.InvoiceStatusDraft,
			CustomerID: input.CustomerID,
			Customer:   &customer,
		}
		if err := invoice.Validate(); err != nil {
			return err
		}

		if err := tx.Omit("Customer", "Rows").Create(invoice).Error; err != nil {
			return err
		}
		created = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toInvoiceResponse(created)
	return &resp, nil
}

// GetAll returns active invoices with read-time totals.
func (s *InvoiceService) GetAll() ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(invoices), nil
}

// GetByCustomerID returns the active invoices owned by one customer.
func (s *InvoiceService) GetByCustomerID(customerID uint) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.GetByCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(invoices), nil
}

func (s *InvoiceService) GetByID(id uint) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("invoice", id)
		}
		return nil, err
	}
	resp := toInvoiceResponse(invoice)
	return &resp, nil
}

// Update overwrites the period and comment of an active invoice. Status is
// deliberately untouchable here; it only moves through ChangeStatus.
func (s *InvoiceService) Update(id uint, input UpdateInvoiceInput) (*InvoiceResponse, error) {
	var updated *models.Invoice

	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoice, err := s.findActive(tx, id)
		if err != nil {
			return err
		}

		invoice.StartDate = input.StartDate
		invoice.EndDate = input.EndDate
		invoice.Comment = input.Comment
		if err := invoice.Validate(); err != nil {
			return err
		}

		if err := tx.Omit("Customer", "Rows").Save(invoice).Error; err != nil {
			return err
		}
		updated = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toInvoiceResponse(updated)
	return &resp, nil
}

// ChangeStatus moves an active invoice to a new lifecycle state. Membership
// in the closed status set is the only rule; no transition ordering is
// imposed. The transition is recorded in invoice_status_logs within the same
// transaction.
func (s *InvoiceService) ChangeStatus(id uint, newStatus models.InvoiceStatus) (*InvoiceResponse, error) {
	if !newStatus.IsValid() {
		return nil, domain.NewValidationError(map[string]string{
			"status": "status must be one of: draft, sent, paid, cancelled",
		})
	}

	var updated *models.Invoice

	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoice, err := s.findActive(tx, id)
		if err != nil {
			return err
		}

		fromStatus := invoice.Status
		invoice.Status = newStatus
		if err := tx.Omit("Customer", "Rows").Save(invoice).Error; err != nil {
			return err
		}

		details, _ := json.Marshal(map[string]interface{}{
			"from": fromStatus,
			"to":   newStatus,
		})
		entry := &models.InvoiceStatusLog{
			InvoiceID:  invoice.ID,
			FromStatus: fromStatus,
			ToStatus:   newStatus,
			Details:    details,
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		updated = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toInvoiceResponse(updated)
	return &resp, nil
}

// SoftDelete marks an active invoice deleted. Its rows stay in storage but
// are no longer reachable through any active query path.
func (s *InvoiceService) SoftDelete(id uint) error {
	result := s.db.Delete(&models.Invoice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("invoice", id)
	}
	return nil
}

// HardDelete permanently removes an active invoice and all of its rows in one
// transaction. No child-count guard: rows always go with their invoice.
func (s *InvoiceService) HardDelete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		invoice, err := s.findActive(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceRow{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(invoice).Error
	})
}

// findActive loads a non-deleted invoice with children inside a transaction.
func (s *InvoiceService) findActive(tx *gorm.DB, id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := tx.
		Preload("Rows").
		Preload("Customer", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		First(&invoice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("invoice", id)
		}
		return nil, err
	}
	return &invoice, nil
}

func toInvoiceResponses(invoices []models.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, toInvoiceResponse(&invoices[i]))
	}
	return responses
}
