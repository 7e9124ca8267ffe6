package billing

import (
	"errors"

	"invoice-manager-backend/internal/domain"
	"invoice-manager-backend/internal/models"
	"invoice-manager-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceRowService implements the invoice-row operations of the billing core.
type InvoiceRowService struct {
	rowRepo *repository.InvoiceRowRepository
	db      *gorm.DB
}

func NewInvoiceRowService(rowRepo *repository.InvoiceRowRepository) *InvoiceRowService {
	return &InvoiceRowService{
		rowRepo: rowRepo,
		db:      rowRepo.DB(),
	}
}

type CreateInvoiceRowInput struct {
	Service   string
	Quantity  decimal.Decimal
	Rate      decimal.Decimal
	InvoiceID uint
}

type UpdateInvoiceRowInput struct {
	Service  string
	Quantity decimal.Decimal
	Rate     decimal.Decimal
}

// Create inserts a new row under an active invoice, computing its sum from
// quantity and rate in the same transaction. A missing or soft-deleted
// invoice yields ReferenceNotFound.
func (s *InvoiceRowService) Create(input CreateInvoiceRowInput) (*InvoiceRowResponse, error) {
	var created *models.InvoiceRow

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Invoice{}).
			Where("id = ?", input.InvoiceID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.NewReferenceNotFoundError("invoice", input.InvoiceID)
		}

		row := &models.InvoiceRow{
			Service:   input.Service,
			Quantity:  input.Quantity,
			Rate:      input.Rate,
			InvoiceID: input.InvoiceID,
		}
		row.Recompute()
		if err := row.Validate(); err != nil {
			return err
		}

		if err := tx.Create(row).Error; err != nil {
			return err
		}
		created = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toInvoiceRowResponse(created)
	return &resp, nil
}

// GetAll returns every row.
func (s *InvoiceRowService) GetAll() ([]InvoiceRowResponse, error) {
	rows, err := s.rowRepo.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]InvoiceRowResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, toInvoiceRowResponse(&rows[i]))
	}
	return responses, nil
}

func (s *InvoiceRowService) GetByID(id uint) (*InvoiceRowResponse, error) {
	row, err := s.rowRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("invoice row", id)
		}
		return nil, err
	}
	resp := toInvoiceRowResponse(row)
	return &resp, nil
}

// Update overwrites service, quantity and rate, recomputing the sum in the
// same transaction. The sum itself is never independently settable.
func (s *InvoiceRowService) Update(id uint, input UpdateInvoiceRowInput) (*InvoiceRowResponse, error) {
	var updated *models.InvoiceRow

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var row models.InvoiceRow
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("invoice row", id)
			}
			return err
		}

		row.Service = input.Service
		row.Quantity = input.Quantity
		row.Rate = input.Rate
		row.Recompute()
		if err := row.Validate(); err != nil {
			return err
		}

		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		updated = &row
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toInvoiceRowResponse(updated)
	return &resp, nil
}

// HardDelete permanently removes a row. Rows have no soft-delete state.
func (s *InvoiceRowService) HardDelete(id uint) error {
	result := s.db.Delete(&models.InvoiceRow{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("invoice row", id)
	}
	return nil
}
