package billing

import (
	"time"

	"invoice-manager-backend/internal/models"

	"github.com/shopspring/decimal"
)

// CustomerResponse is a customer with its read-time invoice aggregates.
type CustomerResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	Phone        string          `json:"phone"`
	InvoiceCount int             `json:"invoice_count"`
	InvoicesSum  decimal.Decimal `json:"invoices_sum"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// InvoiceResponse is an invoice with its read-time totals and owner info.
type InvoiceResponse struct {
	ID            uint                 `json:"id"`
	StartDate     time.Time            `json:"start_date"`
	EndDate       time.Time            `json:"end_date"`
	Comment       string               `json:"comment"`
	Status        models.InvoiceStatus `json:"status"`
	TotalSum      decimal.Decimal      `json:"total_sum"`
	RowsCount     int                  `json:"rows_count"`
	CustomerID    uint                 `json:"customer_id"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type InvoiceRowResponse struct {
	ID        uint            `json:"id"`
	Service   string          `json:"service"`
	Quantity  decimal.Decimal `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`
	Sum       decimal.Decimal `json:"sum"`
	InvoiceID uint            `json:"invoice_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toCustomerResponse(c *models.Customer) CustomerResponse {
	count, sum := CustomerInvoiceStats(c.Invoices)
	return CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Address:      c.Address,
		Phone:        c.Phone,
		InvoiceCount: count,
		InvoicesSum:  sum,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toInvoiceResponse(i *models.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:         i.ID,
		StartDate:  i.StartDate,
		EndDate:    i.EndDate,
		Comment:    i.Comment,
		Status:     i.Status,
		TotalSum:   InvoiceTotal(i.Rows),
		RowsCount:  len(i.Rows),
		CustomerID: i.CustomerID,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
	if i.Customer != nil {
		resp.CustomerName = i.Customer.Name
		resp.CustomerEmail = i.Customer.Email
	}
	return resp
}

func toInvoiceRowResponse(r *models.InvoiceRow) InvoiceRowResponse {
	return InvoiceRowResponse{
		ID:        r.ID,
		Service:   r.Service,
		Quantity:  r.Quantity,
		Rate:      r.Rate,
		Sum:       r.Sum,
		InvoiceID: r.InvoiceID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
