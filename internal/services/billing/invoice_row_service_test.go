package billing

import (
	"testing"

	"invoice-manager-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowCreateComputesSum(t *testing.T) {
	s := setupServices(t)
	customer := s.createCustomer(t, "Acme", "acme@x.com")
	invoice := s.createInvoice(t, customer.ID)

	row, err := s.rows.Create(CreateInvoiceRowInput{
		Service:   "Consulting",
		Quantity:  decimal.RequireFromString("2.5"),
		Rate:      decimal.RequireFromString("39.9"),
		InvoiceID: invoice.ID,
	})
	require.NoError(t, err)
	assert.True(t, row.Sum.Equal(decimal.RequireFromString("99.75")), "got %s", row.Sum)
}

func TestRowCreateRequiresInvoice(t *testing.T) {
	s := setupServices(t)

	input := CreateInvoiceRowInput{
		Service:   "Consulting",
		Quantity:  decimal.NewFromInt(1),
		Rate:      decimal.NewFromInt(1),
		InvoiceID: 42,
	}
	_, err := s.rows.Create(input)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeReferenceNotFound))

	// a soft-deleted invoice is not a valid parent either
	customer := s.createCustomer(t, "Acme", "acme@x.com")
	invoice := s.createInvoice(t, customer.ID)
	require.NoError(t, s.invoices.SoftDelete(invoice.ID))

	input.InvoiceID = invoice.ID
	_, err = s.rows.Create(input)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeReferenceNotFound))
}

func TestRowValidation(t *testing.T) {
	s := setupServices(t)
	customer := s.createCustomer(t, "Acme", "acme@x.com")
	invoice := s.createInvoice(t, customer.ID)

	cases := []struct {
		name  string
		input CreateInvoiceRowInput
		field string
	}{
		{
			"missing service",
			CreateInvoiceRowInput{Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(1), InvoiceID: invoice.ID},
			"service",
		},
		{
			"zero quantity",
			CreateInvoiceRowInput{Service: "x", Quantity: decimal.Zero, Rate: decimal.NewFromInt(1), InvoiceID: invoice.ID},
			"quantity",
		},
		{
			"negative quantity",
			CreateInvoiceRowInput{Service: "x", Quantity: decimal.NewFromInt(-1), Rate: decimal.NewFromInt(1), InvoiceID: invoice.ID},
			"quantity",
		},
		{
			"zero rate",
			CreateInvoiceRowInput{Service: "x", Quantity: decimal.NewFromInt(1), Rate: decimal.Zero, InvoiceID: invoice.ID},
			"rate",
		},
		{
			"negative rate",
			CreateInvoiceRowInput{Service: "x", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(-5), InvoiceID: invoice.ID},
			"rate",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.rows.Create(tc.input)
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, domain.CodeValidation))
			de := err.(*domain.DomainError)
			assert.Contains(t, de.Fields, tc.field)
		})
	}
}

func TestRowUpdateRecomputesSum(t *testing.T) {
	s := setupServices(t)
	customer := s.createCustomer(t, "Acme", "acme@x.com")
	invoice := s.createInvoice(t, customer.ID)

	row, err := s.rows.Create(CreateInvoiceRowInput{
		Service:   "Consulting",
		Quantity:  decimal.NewFromInt(10),
		Rate:      decimal.NewFromInt(50),
		InvoiceID: invoice.ID,
	})
	require.NoError(t, err)

	updated, err := s.rows.Update(row.ID, UpdateInvoiceRowInput{
		Service:  "Consulting",
		Quantity: decimal.NewFromInt(3),
		Rate:     decimal.RequireFromString("0.1"),
	})
	require.NoError(t, err)
	assert.True(t, updated.Sum.Equal(decimal.RequireFromString("0.3")), "got %s", updated.Sum)

	// invoice total follows
	got, err := s.invoices.GetByID(invoice.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalSum.Equal(decimal.RequireFromString("0.3")), "got %s", got.TotalSum)
}

func TestRowUpdateValidation(t *testing.T) {
	s := setupServices(t)
	customer := s.createCustomer(t, "Acme", "acme@x.com")
	invoice := s.createInvoice(t, customer.ID)

	row, err := s.rows.Create(CreateInvoiceRowInput{
		Service:   "Consulting",
		Quantity:  decimal.NewFromInt(1),
		Rate:      decimal.NewFromInt(1),
		InvoiceID: invoice.ID,
	})
	require.NoError(t, err)

	_, err = s.rows.Update(row.ID, UpdateInvoiceRowInput{
		Service:  "Consulting",
		Quantity: decimal.Zero,
		Rate:     decimal.NewFromInt(1),
	})
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeValidation))
}

func TestRowHardDelete(t *testing.T) {
	s := setupServices(t)
	customer := s.createCustomer(t, "Acme", "acme@x.com")
	invoice := s.createInvoice(t, customer.ID)

	row, err := s.rows.Create(CreateInvoiceRowInput{
		Service:   "Consulting",
		Quantity:  decimal.NewFromInt(1),
		Rate:      decimal.NewFromInt(1),
		InvoiceID: invoice.ID,
	})
	require.NoError(t, err)

	require.NoError(t, s.rows.HardDelete(row.ID))

	_, err = s.rows.GetByID(row.ID)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))

	err = s.rows.HardDelete(row.ID)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))
}

func TestRowGetAll(t *testing.T) {
	s := setupServices(t)
	customer := s.createCustomer(t, "Acme", "acme@x.com")
	invoice := s.createInvoice(t, customer.ID)

	for i := 0; i < 3; i++ {
		_, err := s.rows.Create(CreateInvoiceRowInput{
			Service:   "Consulting",
			Quantity:  decimal.NewFromInt(1),
			Rate:      decimal.NewFromInt(int64(i + 1)),
			InvoiceID: invoice.ID,
		})
		require.NoError(t, err)
	}

	rows, err := s.rows.GetAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
