package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoice-manager-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:routes_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.InvoiceRow{},
		&models.InvoiceStatusLog{},
	))

	r := gin.New()
	RegisterRoutes(r, db)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBillingFlow(t *testing.T) {
	r := setupRouter(t)

	// create customer
	w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"name":  "Acme",
		"email": "acme@x.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// create invoice for it
	w = doJSON(t, r, http.MethodPost, "/api/invoices", gin.H{
		"start_date":  "2024-01-01",
		"end_date":    "2024-02-01",
		"customer_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// add a row: 10 x 50 = 500
	w = doJSON(t, r, http.MethodPost, "/api/invoice-rows", gin.H{
		"service":    "Consulting",
		"quantity":   10,
		"rate":       50,
		"invoice_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// invoice total reflects the row
	w = doJSON(t, r, http.MethodGet, "/api/invoices/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var invoiceBody struct {
		Invoice struct {
			TotalSum  string `json:"total_sum"`
			RowsCount int    `json:"rows_count"`
			Status    string `json:"status"`
		} `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invoiceBody))
	assert.Equal(t, "500", invoiceBody.Invoice.TotalSum)
	assert.Equal(t, 1, invoiceBody.Invoice.RowsCount)
	assert.Equal(t, "draft", invoiceBody.Invoice.Status)

	// invalid status value
	w = doJSON(t, r, http.MethodPatch, "/api/invoices/1/status", gin.H{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// valid status change
	w = doJSON(t, r, http.MethodPatch, "/api/invoices/1/status", gin.H{"status": "sent"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// soft delete the invoice, then it is gone from reads
	w = doJSON(t, r, http.MethodDelete, "/api/invoices/soft/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/invoices/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/invoices/customer/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"id":1`)

	// the soft-deleted invoice still blocks the customer hard delete
	w = doJSON(t, r, http.MethodDelete, "/api/customers/hard/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReferenceErrors(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/invoices", gin.H{
		"start_date":  "2024-01-01",
		"end_date":    "2024-02-01",
		"customer_id": 99,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/invoice-rows", gin.H{
		"service":    "Consulting",
		"quantity":   1,
		"rate":       1,
		"invoice_id": 99,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotFoundMapping(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/customers/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/invoice-rows/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/customers/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
