package routes

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/erp-api/internal/config"
	domainRepo "github.com/sangkips/erp-api/internal/domain/repository"
	"github.com/sangkips/erp-api/internal/presentation/http/dto/response"
	"github.com/sangkips/erp-api/internal/presentation/http/handler"
	"github.com/sangkips/erp-api/internal/presentation/http/middleware"
	"github.com/sangkips/erp-api/pkg/apperror"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Customer    *handler.CustomerHandler
	Inventory   *handler.InventoryHandler
	Sales       *handler.SalesHandler
	Transaction *handler.TransactionHandler
	Employee    *handler.EmployeeHandler
	Dashboard   *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Logger          *slog.Logger
	Authenticator   middleware.Authenticator
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter
	Now             func() time.Time
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	if deps.RateLimiter != nil {
		router.Use(deps.RateLimiter.Middleware())
	}

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrRouteNotFound)
	})

	api := router.Group("/api")
	{
		api.GET("/test", h.Health.Check)
		api.POST("/auth/login", h.Auth.Login)

		protected := api.Group("")
		if deps.Cfg.Auth.Enabled {
			protected.Use(middleware.AuthMiddleware(deps.Authenticator))
			protected.GET("/auth/me", h.Auth.Me)
		}
		if deps.IdempotencyRepo != nil {
			protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
				Repo:   deps.IdempotencyRepo,
				TTL:    deps.Cfg.Idempotency.TTL,
				Now:    deps.Now,
				Logger: deps.Logger,
			}))
		}

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Customers
	registerCustomerRoutes(protected, h)

	// Inventory
	registerInventoryRoutes(protected, h)

	// Sales
	registerSalesRoutes(protected, h)

	// Financial
	registerFinancialRoutes(protected, h)

	// HR
	registerHRRoutes(protected, h)

	// Dashboard
	protected.GET("/dashboard/overview", h.Dashboard.Overview)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("", h.Inventory.Create)
		inventory.GET("/low-stock", h.Inventory.LowStock)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}
}

func registerSalesRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sales.List)
		sales.POST("", h.Sales.Create)
		sales.GET("/metrics", h.Dashboard.SalesMetrics)
		sales.GET("/:id", h.Sales.Get)
		sales.PUT("/:id", h.Sales.Update)
		sales.DELETE("/:id", h.Sales.Delete)
	}
}

func registerFinancialRoutes(protected *gin.RouterGroup, h *Handlers) {
	financial := protected.Group("/financial")
	{
		financial.GET("/metrics", h.Dashboard.FinancialMetrics)
		financial.GET("/transactions", h.Transaction.List)
		financial.POST("/transactions", h.Transaction.Create)
		financial.GET("/transactions/:id", h.Transaction.Get)
		financial.PUT("/transactions/:id", h.Transaction.Update)
		financial.DELETE("/transactions/:id", h.Transaction.Delete)
	}
}

func registerHRRoutes(protected *gin.RouterGroup, h *Handlers) {
	hr := protected.Group("/hr")
	{
		hr.GET("/employees", h.Employee.List)
		hr.POST("/employees", h.Employee.Create)
		hr.GET("/employees/:id", h.Employee.Get)
		hr.PUT("/employees/:id", h.Employee.Update)
		hr.DELETE("/employees/:id", h.Employee.Delete)
	}
}
