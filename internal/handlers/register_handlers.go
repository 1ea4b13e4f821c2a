package handlers

import (
	"github.com/SscSPs/bill_tracker/cmd/docs"
	portssvc "github.com/SscSPs/bill_tracker/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker/internal/dto"
	"github.com/SscSPs/bill_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", getHealth)

	setupAPIRoutes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes mounts the API root and the six resources under the configured base path.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group(cfg.APIBasePath)
	api.GET("/", getAPIRoot(cfg.APIBasePath))

	registerResourceRoutes(api, routeRecurrences, services.Recurrence, dto.NewRecurrenceRequest)
	registerResourceRoutes(api, routeBillStatuses, services.BillStatus, dto.NewBillStatusRequest)
	registerResourceRoutes(api, routeBankAccounts, services.BankAccount, dto.NewBankAccountRequest)
	registerResourceRoutes(api, routeBills, services.Bill, dto.NewBillRequest)
	registerResourceRoutes(api, routeDueBills, services.DueBill, dto.NewDueBillRequest)
	registerResourceRoutes(api, routeBankAccountInstances, services.BankAccountInstance, dto.NewBankAccountInstanceRequest)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = cfg.APIBasePath
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
