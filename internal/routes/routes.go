package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "invoice-manager-backend/internal/handlers"
	"invoice-manager-backend/internal/repository"
	"invoice-manager-backend/internal/services/billing"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	rowRepo := repository.NewInvoiceRowRepository(db)

	customerService := billing.NewCustomerService(customerRepo)
	invoiceService := billing.NewInvoiceService(invoiceRepo)
	rowService := billing.NewInvoiceRowService(rowRepo)

	customerHandler := handler.NewCustomerHandler(customerService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	rowHandler := handler.NewInvoiceRowHandler(rowService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	customers := api.Group("/customers")
	{
		customers.GET("", customerHandler.GetAll)
		customers.GET("/:id", customerHandler.GetByID)
		customers.POST("", customerHandler.Create)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/soft/:id", customerHandler.SoftDelete)
		customers.DELETE("/hard/:id", customerHandler.HardDelete)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.GetAll)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.GET("/customer/:customerId", invoiceHandler.GetByCustomerID)
		invoices.POST("", invoiceHandler.Create)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.PATCH("/:id/status", invoiceHandler.ChangeStatus)
		invoices.DELETE("/soft/:id", invoiceHandler.SoftDelete)
		invoices.DELETE("/hard/:id", invoiceHandler.HardDelete)
	}

	rows := api.Group("/invoice-rows")
	{
		rows.GET("", rowHandler.GetAll)
		rows.GET("/:id", rowHandler.GetByID)
		rows.POST("", rowHandler.Create)
		rows.PUT("/:id", rowHandler.Update)
		rows.DELETE("/:id", rowHandler.HardDelete)
	}
}
