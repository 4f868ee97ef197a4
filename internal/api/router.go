package api

import (
	"errors"
	"time"

	"smart-global-hub/docs"
	"smart-global-hub/internal/api/handlers"
	"smart-global-hub/internal/dto"
	"smart-global-hub/pkg/auth"
	"smart-global-hub/pkg/metrics"
	"smart-global-hub/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Handlers groups every route handler the router mounts.
type Handlers struct {
	Auth             *handlers.AuthHandler
	Agents           *handlers.CounterpartyHandler
	Suppliers        *handlers.CounterpartyHandler
	Transactions     *handlers.TransactionHandler
	AgentPayments    *handlers.PaymentHandler
	SupplierPayments *handlers.PaymentHandler
	Rates            *handlers.RateHandler
	Dashboard        *handlers.DashboardHandler
}

type Options struct {
	AllowOrigins string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// HealthCheck reports whether the database is reachable. Nil means always healthy.
	HealthCheck func(c *fiber.Ctx) error
}

func SetupRouter(
	h *Handlers,
	jwtManager *auth.JWTManager,
	m *metrics.Metrics,
	opts Options,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code == fiber.StatusInternalServerError {
				appLogger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(dto.Response{
				StatusCode: code,
				Success:    false,
				Message:    err.Error(),
			})
		},
	})

	if opts.AllowOrigins == "" {
		opts.AllowOrigins = "*"
	}

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())
	if m != nil {
		app.Use(middleware.Metrics(m))
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	// importing docs registers the swagger spec
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if opts.HealthCheck != nil {
			if err := opts.HealthCheck(c); err != nil {
				appLogger.Warn("Health check failed", zap.Error(err))
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Response{
					StatusCode: fiber.StatusServiceUnavailable,
					Message:    "unhealthy",
				})
			}
		}
		return c.JSON(dto.Response{StatusCode: fiber.StatusOK, Success: true, Message: "ok"})
	})

	requireAuth := middleware.AuthMiddleware(jwtManager, appLogger)

	// Auth routes (login and refresh are public)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Get("/me", requireAuth, h.Auth.Me)

	// Protected routes, each under its own prefix so unknown paths fall through to 404
	app.Post("/users", requireAuth, middleware.RequireRole("admin"), h.Auth.CreateUser)

	mountCounterparties(app.Group("/agents", requireAuth), h.Agents)
	mountCounterparties(app.Group("/suppliers", requireAuth), h.Suppliers)

	transactions := app.Group("/transactions", requireAuth)
	transactions.Get("", h.Transactions.List)
	transactions.Post("", h.Transactions.Create)
	transactions.Post("/quote", h.Transactions.Quote)
	transactions.Get("/:id", h.Transactions.Get)
	transactions.Put("/:id", h.Transactions.Update)
	transactions.Delete("/:id", h.Transactions.Delete)

	mountPayments(app, requireAuth, "agent", h.AgentPayments)
	mountPayments(app, requireAuth, "supplier", h.SupplierPayments)

	exchangeRates := app.Group("/exchange-rates", requireAuth)
	exchangeRates.Get("", h.Rates.ListExchangeRates)
	exchangeRates.Post("", h.Rates.CreateExchangeRate)
	exchangeRates.Get("/latest", h.Rates.LatestExchangeRate)

	commissionRates := app.Group("/commission-rates", requireAuth)
	commissionRates.Get("", h.Rates.ListCommissionRates)
	commissionRates.Post("", h.Rates.CreateCommissionRate)
	commissionRates.Get("/latest", h.Rates.LatestCommissionRate)

	dashboard := app.Group("/dashboard", requireAuth)
	dashboard.Get("/transaction-statistics", h.Dashboard.TransactionStatistics)
	dashboard.Get("/agent-statistics", h.Dashboard.AgentStatistics)
	dashboard.Get("/supplier-statistics", h.Dashboard.SupplierStatistics)
	dashboard.Get("/earnings-statistics", h.Dashboard.EarningsStatistics)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	return app
}

func mountCounterparties(r fiber.Router, h *handlers.CounterpartyHandler) {
	r.Get("", h.List)
	r.Post("", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

// mountPayments registers /{prefix}-payments and /{prefix}-balance.
func mountPayments(r fiber.Router, requireAuth fiber.Handler, prefix string, h *handlers.PaymentHandler) {
	payments := r.Group("/"+prefix+"-payments", requireAuth)
	payments.Get("", h.List)
	payments.Post("", h.Create)
	payments.Post("/directPayment", h.DirectPayment)
	payments.Get("/:id", h.Get)

	balance := r.Group("/"+prefix+"-balance", requireAuth)
	balance.Get("", h.Balances)
	balance.Get("/:"+h.IDParam, h.CounterpartyBalances)
}
