package api

import (
	"log/slog"

	"github.com/nolann7/bank/internal/config"
	"github.com/nolann7/bank/internal/handlers"
	"github.com/nolann7/bank/internal/middleware"
	"github.com/nolann7/bank/internal/repositories"
	"github.com/nolann7/bank/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the HTTP surface: auth and dashboard routes, session
// gating, tracing, rate limiting and the metrics endpoint.
func NewRouter(
	cfg *config.Config,
	accountRepo repositories.AccountRepositoryInterface,
	sessions services.SessionServiceInterface,
	transactions services.TransactionServiceInterface,
	logger *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst))

	authHandler := handlers.NewAuthHandler(sessions, logger)
	accountHandler := handlers.NewAccountHandler()
	transactionHandler := handlers.NewTransactionHandler(transactions)
	healthHandler := handlers.NewHealthHandler(accountRepo)

	e.GET("/healthz", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/session", authHandler.Session)

	requireSession := middleware.RequireSession(sessions)
	auth.POST("/logout", authHandler.Logout, requireSession)
	auth.POST("/renew", authHandler.Renew, requireSession)

	account := v1.Group("/account", requireSession)
	account.GET("", accountHandler.GetAccount)
	account.GET("/movements", accountHandler.GetMovements)
	account.POST("/transfer", transactionHandler.Transfer)
	account.POST("/loan", transactionHandler.RequestLoan)
	account.POST("/close", transactionHandler.CloseAccount)

	return e
}
