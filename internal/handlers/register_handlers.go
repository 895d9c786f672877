package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/gestorpme/gestor_backend/cmd/docs"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
	"github.com/gestorpme/gestor_backend/internal/middleware"
	"github.com/gestorpme/gestor_backend/internal/platform/config"
)

// RegisterRoutes wires every endpoint onto the engine: the public health
// probe and auth group, and the JWT-protected /api/v1 surface.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, sc *portssvc.ServiceContainer, authLimiter *limiter.Limiter) {
	healthHandler := NewHealthHandler(sc.Health)
	authHandler := NewAuthHandler(sc.Auth)
	employeeHandler := NewEmployeeHandler(sc.Employee)
	ledgerHandler := NewLedgerHandler(sc.Ledger)
	payableHandler := NewBillHandler(sc.Payable)
	receivableHandler := NewBillHandler(sc.Receivable)
	saleHandler := NewSaleHandler(sc.Sale)
	inventoryHandler := NewInventoryHandler(sc.Inventory)
	dashboardHandler := NewDashboardHandler(sc.Dashboard)
	reportHandler := NewReportHandler(sc.Report)

	r.GET("/health", healthHandler.Live)
	r.GET("/api/health", healthHandler.Status)

	auth := r.Group("/api/auth")
	auth.Use(middleware.RateLimit(authLimiter))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		employees := v1.Group("/employees")
		{
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("", employeeHandler.ListEmployees)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
		}

		ledger := v1.Group("/ledger")
		{
			ledger.POST("", ledgerHandler.CreateEntry)
			ledger.GET("", ledgerHandler.ListEntries)
			ledger.GET("/summary", ledgerHandler.Summary)
		}

		payables := v1.Group("/payables")
		{
			payables.POST("", payableHandler.CreateBill)
			payables.GET("", payableHandler.ListBills)
		}

		receivables := v1.Group("/receivables")
		{
			receivables.POST("", receivableHandler.CreateBill)
			receivables.GET("", receivableHandler.ListBills)
		}

		sales := v1.Group("/sales")
		{
			sales.POST("", saleHandler.CreateSale)
			sales.GET("", saleHandler.ListSales)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.POST("", inventoryHandler.CreateLot)
			inventory.GET("", inventoryHandler.ListLots)
		}

		v1.GET("/dashboard/stats", dashboardHandler.Stats)

		reports := v1.Group("/reports")
		{
			reports.GET("/ledger", reportHandler.LedgerReport)
			reports.GET("/payables", reportHandler.PayablesReport)
			reports.GET("/receivables", reportHandler.ReceivablesReport)
			reports.GET("/sales", reportHandler.SalesReport)
			reports.GET("/inventory", reportHandler.InventoryReport)
		}
	}

	setupSwaggerRoutes(r, cfg)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "route not found"})
	})
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
