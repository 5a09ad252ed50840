package services

import (
	"io"
	"log/slog"
	"time"

	"github.com/nolann7/bank/internal/models"
	"github.com/nolann7/bank/internal/repositories"

	"github.com/shopspring/decimal"
)

// noopMetrics satisfies MetricsRecorderInterface without touching the
// process-global prometheus registry, which only allows one registration.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func demoRoster() repositories.AccountRepositoryInterface {
	accounts, err := repositories.BuildAccounts(repositories.DefaultSeed())
	if err != nil {
		panic(err)
	}
	return repositories.NewAccountRepository(accounts)
}

func mustFind(repo repositories.AccountRepositoryInterface, username string) *models.Account {
	account, err := repo.FindByUsername(username)
	if err != nil {
		panic(err)
	}
	return account
}

func d(value string) decimal.Decimal {
	dec, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return dec
}
