package handlers

import (
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/middleware"
	"github.com/hlmsouza/home_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerPersonUserRoutes(v1, services.PersonUser)
	registerBillRoutes(v1, services.Bill, services.PersonUser)
	registerReceivableRoutes(v1, services.Receivable, services.PersonUser)
	registerReferenceRoutes(v1, services.Category, services.PaymentMethod, services.PaymentStatus, services.PersonUser)
	registerSummaryRoutes(v1, services.Summary, services.PersonUser)
}
