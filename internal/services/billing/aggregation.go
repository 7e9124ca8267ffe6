package billing

import (
	"invoice-manager-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Derived values are computed here on every read and never persisted, so a
// stored total can never drift from the rows it was derived from.

// RowSum computes the sum of one row: quantity * rate, decimal-exact.
func RowSum(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// InvoiceTotal sums the row sums of one invoice.
func InvoiceTotal(rows []models.InvoiceRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Sum)
	}
	return total
}

// CustomerInvoiceStats aggregates a customer's invoices: how many there are
// and the sum of their totals. The caller passes active invoices only; rows
// of soft-deleted invoices never reach this computation.
func CustomerInvoiceStats(invoices []models.Invoice) (int, decimal.Decimal) {
	sum := decimal.Zero
	for _, invoice := range invoices {
		sum = sum.Add(InvoiceTotal(invoice.Rows))
	}
	return len(invoices), sum
}
