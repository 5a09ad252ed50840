package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nolann7/bank/internal/api"
	"github.com/nolann7/bank/internal/config"
	"github.com/nolann7/bank/internal/models"
	"github.com/nolann7/bank/internal/repositories"
	"github.com/nolann7/bank/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	accounts, err := loadRoster(cfg)
	if err != nil {
		logger.Error("failed to load account roster", "error", err)
		os.Exit(1)
	}

	accountRepo := repositories.NewAccountRepository(accounts)
	metrics := services.NewPrometheusMetrics()
	sessions := services.NewSessionService(accountRepo, metrics, logger, cfg.Session.DurationSeconds, cfg.Session.Tick)
	transactions := services.NewTransactionService(accountRepo, sessions, metrics, logger, cfg.Session.LoanDelay)

	e := api.NewRouter(cfg, accountRepo, sessions, transactions, logger)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting HTTP server",
			slog.String("addr", server.Addr),
			slog.Int("accounts", accountRepo.Count()),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	sessions.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("stopped")
}

// loadRoster assembles the startup roster: the configured seed file or the
// built-in demo accounts, optionally padded with generated ones.
func loadRoster(cfg *config.Config) ([]*models.Account, error) {
	if cfg.Seed.File != "" {
		return repositories.LoadSeedFile(cfg.Seed.File)
	}

	entries := repositories.DefaultSeed()
	if cfg.Seed.DemoAccounts > 0 {
		entries = append(entries, services.GenerateDemoAccounts(cfg.Seed.DemoAccounts)...)
	}
	return repositories.BuildAccounts(entries)
}
