package handler

import (
	"net/http"

	"invoice-manager-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InvoiceRowHandler struct {
	service *billing.InvoiceRowService
}

func NewInvoiceRowHandler(s *billing.InvoiceRowService) *InvoiceRowHandler {
	return &InvoiceRowHandler{service: s}
}

func (h *InvoiceRowHandler) GetAll(c *gin.Context) {
	rows, err := h.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *InvoiceRowHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	row, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"row": row})
}

func (h *InvoiceRowHandler) Create(c *gin.Context) {
	var payload struct {
		Service   string          `json:"service"`
		Quantity  decimal.Decimal `json:"quantity"`
		Rate      decimal.Decimal `json:"rate"`
		InvoiceID uint            `json:"invoice_id"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	row, err := h.service.Create(billing.CreateInvoiceRowInput{
		Service:   payload.Service,
		Quantity:  payload.Quantity,
		Rate:      payload.Rate,
		InvoiceID: payload.InvoiceID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"row": row})
}

func (h *InvoiceRowHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload struct {
		Service  string          `json:"service"`
		Quantity decimal.Decimal `json:"quantity"`
		Rate     decimal.Decimal `json:"rate"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	row, err := h.service.Update(id, billing.UpdateInvoiceRowInput{
		Service:  payload.Service,
		Quantity: payload.Quantity,
		Rate:     payload.Rate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"row": row})
}

func (h *InvoiceRowHandler) HardDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.HardDelete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice row deleted"})
}
