package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/erp-api/internal/application/service"
	"github.com/sangkips/erp-api/internal/config"
	domainRepo "github.com/sangkips/erp-api/internal/domain/repository"
	"github.com/sangkips/erp-api/internal/domain/schema"
	"github.com/sangkips/erp-api/internal/infrastructure/database"
	"github.com/sangkips/erp-api/internal/infrastructure/repository"
	"github.com/sangkips/erp-api/internal/presentation/http/handler"
	"github.com/sangkips/erp-api/internal/presentation/http/middleware"
	"github.com/sangkips/erp-api/internal/presentation/http/routes"
	"github.com/sangkips/erp-api/pkg/utils"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := config.NewLogger(cfg.App)
	slog.SetDefault(log)

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := database.NewPostgresDB(connectCtx, &cfg.Database, log)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("failed to close database", "error", err)
			return
		}
		log.Info("database connection closed")
	}()

	// Run auto-migrations
	if err := database.AutoMigrate(db, log); err != nil {
		return err
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	salesRepo := repository.NewSalesRepository(db)
	metricsRepo := repository.NewMetricsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	validator := schema.New()
	clock := service.Clock(time.Now)

	jwtManager := utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.App.Name, cfg.Auth.TokenExpiry)
	authService := service.NewAuthService(service.NewStaticVerifier(staticCredentials(cfg.Auth.Users)), jwtManager, validator)
	customerService := service.NewCustomerService(customerRepo, validator, clock)
	inventoryService := service.NewInventoryService(inventoryRepo, validator, clock)
	employeeService := service.NewEmployeeService(employeeRepo, validator, clock)
	transactionService := service.NewTransactionService(transactionRepo, validator, clock)
	salesService := service.NewSalesService(salesRepo, customerRepo, inventoryRepo, validator, clock)
	dashboardService := service.NewDashboardService(metricsRepo, clock)
	healthService := service.NewHealthService(func(ctx context.Context) error { return database.Ping(ctx, db) }, clock)

	// Initialize handlers
	handlers := &routes.Handlers{
		Health:      handler.NewHealthHandler(healthService),
		Auth:        handler.NewAuthHandler(authService),
		Customer:    handler.NewCustomerHandler(customerService),
		Inventory:   handler.NewInventoryHandler(inventoryService),
		Sales:       handler.NewSalesHandler(salesService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Employee:    handler.NewEmployeeHandler(employeeService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		Requests: cfg.RateLimit.Requests,
		Window:   cfg.RateLimit.Duration,
	})
	defer rateLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Logger:          log,
		Authenticator:   authService,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
		Now:             time.Now,
	})

	go purgeIdempotencyKeys(ctx, idempotencyRepo, log)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "app", cfg.App.Name, "port", cfg.App.Port, "env", cfg.App.Env, "auth_enabled", cfg.Auth.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

func staticCredentials(users []config.AuthUser) []service.StaticCredential {
	creds := make([]service.StaticCredential, 0, len(users))
	for _, u := range users {
		creds = append(creds, service.StaticCredential{Email: u.Email, PasswordHash: u.PasswordHash, Role: u.Role})
	}
	return creds
}

// purgeIdempotencyKeys drops expired keys every hour until ctx ends
func purgeIdempotencyKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, log *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx, time.Now())
			if err != nil {
				log.Warn("failed to purge idempotency keys", "error", err)
				continue
			}
			if n > 0 {
				log.Info("purged idempotency keys", "count", n)
			}
		}
	}
}
