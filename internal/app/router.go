// internal/app/router.go
package app

import (
	customerHandler "ltv-service/internal/handlers/customer"
	"ltv-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	CustomerHandler *customerHandler.CustomerHandler
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	r.Use(middleware.RecoveryMiddleware(logger))

	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Customers ====================
	customers := api.Group("/customers")
	{
		customers.POST("", h.CustomerHandler.AddCustomer)
		customers.GET("/ltv", h.CustomerHandler.GetLTVByPhone) // ?phone=xxx
		customers.GET("/:id/ltv", h.CustomerHandler.GetLTVByID)
	}
}
