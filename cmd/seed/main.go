package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/repository"
	"smart-global-hub/internal/service"
	"smart-global-hub/pkg/auth"
	"smart-global-hub/pkg/cache"
	"smart-global-hub/pkg/config"
	"smart-global-hub/pkg/logger"
	"smart-global-hub/pkg/postgres"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// starterRate is a pair published on first seed.
type starterRate struct {
	base, quote string
	buy, sell   string
}

var starterRates = []starterRate{
	{"CNY", "USD", "0.1449", "0.1451"},
	{"USD", "CNY", "7.18", "7.22"},
	{"USD", "AED", "3.672", "3.675"},
	{"EUR", "USD", "1.082", "1.086"},
}

const starterCommission = "0.5"

func main() {
	demo := flag.Bool("demo", false, "also create a demo agent, supplier and transaction")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)
	authService := service.NewAuthService(repository.NewUserRepository(db, appLogger), jwtManager, appLogger)
	rateService := service.NewRateService(repository.NewRateRepository(db, appLogger), cache.NewMemory(), time.Minute, nil, appLogger)

	appLogger.Info("Starting database seeding...")

	admin, err := authService.Bootstrap(ctx, cfg.Seed.TenantName, cfg.Seed.AdminName, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
	if err != nil {
		appLogger.Fatal("Failed to create tenant admin", zap.Error(err))
	}
	appLogger.Info("Tenant admin ready",
		zap.String("email", admin.Email),
		zap.String("tenant_id", admin.TenantID.String()),
	)

	if err := seedRates(ctx, rateService, admin, appLogger); err != nil {
		appLogger.Fatal("Failed to seed rates", zap.Error(err))
	}

	if *demo {
		agents := service.NewCounterpartyService(models.PartyAgent, repository.NewCounterpartyRepository(db, models.PartyAgent, appLogger), cache.NewMemory(), appLogger)
		suppliers := service.NewCounterpartyService(models.PartySupplier, repository.NewCounterpartyRepository(db, models.PartySupplier, appLogger), cache.NewMemory(), appLogger)
		txService := service.NewTransactionService(repository.NewTransactionRepository(db, appLogger), agents, suppliers, rateService, cache.NewMemory(), nil, appLogger)

		if err := seedDemo(ctx, agents, suppliers, txService, admin, appLogger); err != nil {
			appLogger.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	appLogger.Info("Database seeding completed successfully!")
}

// seedRates publishes the starter pairs and commission unless the tenant
// already has them.
func seedRates(ctx context.Context, rates *service.RateService, admin *models.User, logger *zap.Logger) error {
	for _, r := range starterRates {
		_, err := rates.LatestExchangeRate(ctx, admin.TenantID, r.base, r.quote)
		if err == nil {
			logger.Info("Exchange rate exists, skipping", zap.String("pair", r.base+"/"+r.quote))
			continue
		}
		if !errors.Is(err, service.ErrRateNotFound) {
			return err
		}

		if _, err := rates.CreateExchangeRate(ctx, admin.TenantID, admin.ID, &dto.ExchangeRateRequest{
			BaseCurrency:  r.base,
			QuoteCurrency: r.quote,
			BuyRate:       decimal.RequireFromString(r.buy),
			SellRate:      decimal.RequireFromString(r.sell),
		}); err != nil {
			return err
		}
	}

	_, err := rates.LatestCommissionRate(ctx, admin.TenantID)
	if errors.Is(err, service.ErrRateNotFound) {
		_, err = rates.CreateCommissionRate(ctx, admin.TenantID, admin.ID, &dto.CommissionRateRequest{
			Rate: decimal.RequireFromString(starterCommission),
		})
	}
	return err
}

func seedDemo(
	ctx context.Context,
	agents *service.CounterpartyService,
	suppliers *service.CounterpartyService,
	txService *service.TransactionService,
	admin *models.User,
	logger *zap.Logger,
) error {
	agent, err := agents.Create(ctx, admin.TenantID, &dto.CounterpartyRequest{Name: "Demo Travel Agency", Email: "agent@example.com"})
	if errors.Is(err, service.ErrAlreadyExists) {
		logger.Info("Demo data already present, skipping")
		return nil
	}
	if err != nil {
		return err
	}

	supplier, err := suppliers.Create(ctx, admin.TenantID, &dto.CounterpartyRequest{Name: "Demo Liquidity Desk", Email: "desk@example.com"})
	if err != nil {
		return err
	}

	// rates and commission come from the starter set
	tx, err := txService.Create(ctx, admin.TenantID, admin.ID, &dto.TransactionRequest{
		AgentID:       agent.ID,
		SupplierID:    supplier.ID,
		BaseCurrency:  "CNY",
		QuoteCurrency: "USD",
		BaseAmount:    decimal.NewFromInt(10000),
		Note:          "seed " + uuid.NewString()[:8],
	})
	if err != nil {
		return err
	}

	logger.Info("Demo transaction created",
		zap.String("id", tx.ID),
		zap.String("total_earnings", tx.TotalEarnings.String()),
	)
	return nil
}
