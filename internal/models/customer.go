package models

import (
	"time"

	"invoice-manager-backend/internal/domain"

	"gorm.io/gorm"
)

type Customer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(100);not null;index" json:"name"`
	Email     string         `gorm:"type:varchar(100);not null" json:"email"`
	Address   string         `gorm:"type:varchar(200)" json:"address"`
	Phone     string         `gorm:"type:varchar(50)" json:"phone"`
	Invoices  []Invoice      `gorm:"foreignKey:CustomerID" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}

// Validate checks the field-level constraints enforced before any write.
func (c *Customer) Validate() error {
	fields := map[string]string{}
	if c.Name == "" {
		fields["name"] = "name is required"
	} else if len(c.Name) > 100 {
		fields["name"] = "name cannot exceed 100 characters"
	}
	if c.Email == "" {
		fields["email"] = "email is required"
	} else if len(c.Email) > 100 {
		fields["email"] = "email cannot exceed 100 characters"
	}
	if len(c.Address) > 200 {
		fields["address"] = "address cannot exceed 200 characters"
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}
	return nil
}
