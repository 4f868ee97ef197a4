package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-global-hub/internal/api"
	"smart-global-hub/internal/api/handlers"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/repository"
	"smart-global-hub/internal/service"
	"smart-global-hub/pkg/auth"
	"smart-global-hub/pkg/cache"
	"smart-global-hub/pkg/config"
	"smart-global-hub/pkg/logger"
	"smart-global-hub/pkg/metrics"
	"smart-global-hub/pkg/postgres"
	"smart-global-hub/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title Smart Global Hub API
// @version 1.0
// @description Multi-tenant FX brokerage backend: agents, suppliers, transactions, payments, balances, rates and dashboard aggregates.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Smart Global Hub service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Cache: redis when configured, otherwise in-process
	var appCache cache.Cache = cache.NewMemory()
	if cfg.Redis.URL != "" {
		redisCache, client, err := cache.NewRedis(ctx, cfg.Redis.URL, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, using in-memory cache", zap.Error(err))
		} else {
			defer client.Close()
			appCache = redisCache
		}
	}

	appMetrics := metrics.NewMetrics("smart_global_hub")
	v := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	agentRepo := repository.NewCounterpartyRepository(db, models.PartyAgent, appLogger)
	supplierRepo := repository.NewCounterpartyRepository(db, models.PartySupplier, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	paymentRepo := repository.NewPaymentRepository(db, appLogger)
	balanceRepo := repository.NewBalanceRepository(db, appLogger)
	rateRepo := repository.NewRateRepository(db, appLogger)
	dashboardRepo := repository.NewDashboardRepository(db, appLogger)
	transactor := postgres.NewTransactor(db)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	agentService := service.NewCounterpartyService(models.PartyAgent, agentRepo, appCache, appLogger)
	supplierService := service.NewCounterpartyService(models.PartySupplier, supplierRepo, appCache, appLogger)
	rateService := service.NewRateService(rateRepo, appCache, cfg.Redis.CacheTTL, appMetrics, appLogger)
	txService := service.NewTransactionService(txRepo, agentService, supplierService, rateService, appCache, appMetrics, appLogger)
	agentPaymentService := service.NewPaymentService(transactor, txRepo, paymentRepo, balanceRepo, agentService, appCache, appMetrics, appLogger)
	supplierPaymentService := service.NewPaymentService(transactor, txRepo, paymentRepo, balanceRepo, supplierService, appCache, appMetrics, appLogger)
	dashboardService := service.NewDashboardService(txRepo, dashboardRepo, appCache, cfg.Redis.CacheTTL, appMetrics, appLogger)

	// Initialize handlers
	h := &api.Handlers{
		Auth:             handlers.NewAuthHandler(authService, v, appLogger),
		Agents:           handlers.NewCounterpartyHandler(agentService, v, appLogger),
		Suppliers:        handlers.NewCounterpartyHandler(supplierService, v, appLogger),
		Transactions:     handlers.NewTransactionHandler(txService, v, appLogger),
		AgentPayments:    handlers.NewPaymentHandler(agentPaymentService, models.PartyAgent, v, appLogger),
		SupplierPayments: handlers.NewPaymentHandler(supplierPaymentService, models.PartySupplier, v, appLogger),
		Rates:            handlers.NewRateHandler(rateService, v, appLogger),
		Dashboard:        handlers.NewDashboardHandler(dashboardService, appLogger),
	}

	// Setup router
	app := api.SetupRouter(h, jwtManager, appMetrics, api.Options{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		HealthCheck: func(c *fiber.Ctx) error {
			return db.Ping(c.UserContext())
		},
	}, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
