package services

import (
	"time"

	"github.com/nolann7/bank/internal/models"

	"github.com/shopspring/decimal"
)

// SessionState is a read-only view of the current session for rendering.
type SessionState struct {
	LoggedIn         bool
	Username         string
	Owner            string
	RemainingSeconds int
}

// SessionServiceInterface is the single-session controller: it authenticates
// against the roster, owns the inactivity countdown and gates every ledger
// mutation behind a live session.
type SessionServiceInterface interface {
	Login(username string, pin int) (*models.Account, string, error)
	Logout()
	Renew()
	Authorize(token string) (*models.Account, error)
	ActiveAccount() (*models.Account, error)
	Current() SessionState
	Close()
}

// TransactionServiceInterface validates and executes the mutating operations
// against one or two ledgers on behalf of the active session.
type TransactionServiceInterface interface {
	Transfer(toUsername string, amount decimal.Decimal) error
	RequestLoan(amount decimal.Decimal) error
	CloseAccount(usernameConfirm string, pinConfirm int) error
}

// MetricsRecorderInterface abstracts the metrics backend.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
