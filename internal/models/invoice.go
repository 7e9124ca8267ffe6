package models

import (
	"time"

	"invoice-manager-backend/internal/domain"

	"gorm.io/gorm"
)

// InvoiceStatus is the closed set of invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// AllInvoiceStatuses lists every legal status value.
var AllInvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusSent,
	InvoiceStatusPaid,
	InvoiceStatusCancelled,
}

// IsValid reports membership in the closed status enumeration.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

type Invoice struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	StartDate  time.Time      `gorm:"not null" json:"start_date"`
	EndDate    time.Time      `gorm:"not null" json:"end_date"`
	Comment    string         `gorm:"type:text" json:"comment"`
	Status     InvoiceStatus  `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	CustomerID uint           `gorm:"index" json:"customer_id"`
	Customer   *Customer      `gorm:"foreignKey:CustomerID" json:"-"`
	Rows       []InvoiceRow   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// Validate enforces the billing-period invariant at write time.
func (i *Invoice) Validate() error {
	fields := map[string]string{}
	if !i.StartDate.Before(i.EndDate) {
		fields["start_date"] = "start date must precede end date"
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}
	return nil
}
