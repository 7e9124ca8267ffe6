package models

import (
	"time"

	"gorm.io/datatypes"
)

// InvoiceStatusLog records every successful status transition, written in the
// same transaction as the status change itself.
type InvoiceStatusLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	InvoiceID  uint           `gorm:"not null;index" json:"invoice_id"`
	FromStatus InvoiceStatus  `gorm:"type:varchar(20);not null" json:"from_status"`
	ToStatus   InvoiceStatus  `gorm:"type:varchar(20);not null" json:"to_status"`
	Details    datatypes.JSON `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (InvoiceStatusLog) TableName() string {
	return "invoice_status_logs"
}
