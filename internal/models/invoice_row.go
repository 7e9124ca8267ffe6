package models

import (
	"time"

	"invoice-manager-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// InvoiceRow is a billable line on an invoice. Rows carry no delete flag:
// they are only ever hard-deleted, either directly or when their invoice is
// hard-deleted.
type InvoiceRow struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Service   string          `gorm:"type:varchar(100);not null" json:"service"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	Rate      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"rate"`
	Sum       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"sum"`
	InvoiceID uint            `gorm:"not null;index" json:"invoice_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (InvoiceRow) TableName() string {
	return "invoice_rows"
}

// Recompute derives Sum from Quantity and Rate. Every write path that touches
// quantity or rate must call it within the same transaction.
func (r *InvoiceRow) Recompute() {
	r.Sum = r.Quantity.Mul(r.Rate)
}

// Validate checks the row constraints enforced before any write.
func (r *InvoiceRow) Validate() error {
	fields := map[string]string{}
	if r.Service == "" {
		fields["service"] = "service is required"
	} else if len(r.Service) > 100 {
		fields["service"] = "service cannot exceed 100 characters"
	}
	if !r.Quantity.IsPositive() {
		fields["quantity"] = "quantity must be greater than zero"
	}
	if !r.Rate.IsPositive() {
		fields["rate"] = "rate must be greater than zero"
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}
	return nil
}
