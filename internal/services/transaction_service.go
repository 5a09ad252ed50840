package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/nolann7/bank/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrUnknownRecipient     = errors.New("recipient account not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrSelfTransfer         = errors.New("cannot transfer to own account")
	ErrLoanNotEligible      = errors.New("no movement qualifies for the requested loan")
	ErrAccountCloseMismatch = errors.New("confirmation does not match the active account")
)

var ten = decimal.NewFromInt(10)

// transactionService implements TransactionServiceInterface. It holds no
// state of its own; every operation resolves the active account through the
// session controller and mutates ledgers directly.
type transactionService struct {
	accountRepo repositories.AccountRepositoryInterface
	sessions    SessionServiceInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
	loanDelay   time.Duration
}

// NewTransactionService creates the transaction engine. loanDelay is the
// artificial approval delay before a granted loan is credited.
func NewTransactionService(
	accountRepo repositories.AccountRepositoryInterface,
	sessions SessionServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	loanDelay time.Duration,
) TransactionServiceInterface {
	return &transactionService{
		accountRepo: accountRepo,
		sessions:    sessions,
		metrics:     metrics,
		logger:      logger,
		loanDelay:   loanDelay,
	}
}

// Transfer moves amount from the active account to the named recipient. On
// success the sender is debited and the recipient credited, each movement
// stamped with its own timestamp, and the session timer restarts. The
// recipient's ledger is written without the recipient holding a session;
// Ledger.Append supports that explicitly.
func (s *transactionService) Transfer(toUsername string, amount decimal.Decimal) error {
	sender, err := s.sessions.ActiveAccount()
	if err != nil {
		return err
	}

	start := time.Now()

	if amount.LessThanOrEqual(decimal.Zero) {
		s.rejectTransfer("invalid_amount")
		return ErrInvalidAmount
	}

	recipient, err := s.accountRepo.FindByUsername(toUsername)
	if err != nil {
		s.rejectTransfer("unknown_recipient")
		return ErrUnknownRecipient
	}

	if sender.Ledger.Balance().LessThan(amount) {
		s.rejectTransfer("insufficient_funds")
		return ErrInsufficientFunds
	}

	if recipient.Username == sender.Username {
		s.rejectTransfer("self_transfer")
		return ErrSelfTransfer
	}

	sender.Ledger.Append(amount.Neg(), time.Now())
	recipient.Ledger.Append(amount, time.Now())

	s.sessions.Renew()

	s.metrics.IncrementCounter("transfers_total", map[string]string{"status": "completed"})
	s.metrics.RecordGauge("transfer_amount", amount.InexactFloat64(), nil)
	s.metrics.RecordProcessingTime("transfer_duration", time.Since(start))
	s.logger.Info("transfer completed",
		slog.String("from", sender.Username),
		slog.String("to", recipient.Username),
		slog.String("amount", amount.String()),
	)

	return nil
}

// RequestLoan grants a loan when some existing movement is at least a tenth
// of the requested amount. The credit is deferred by the approval delay and
// stamped at the moment it lands, not at request time. The timer renews
// immediately; the deferred credit itself never touches the timer, so an
// expired session is not resurrected, and the credit still lands on the
// account even if the session ends or the account is closed mid-delay.
func (s *transactionService) RequestLoan(amount decimal.Decimal) error {
	account, err := s.sessions.ActiveAccount()
	if err != nil {
		return err
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		s.metrics.IncrementCounter("loans_total", map[string]string{"status": "rejected"})
		return ErrInvalidAmount
	}

	if !account.Ledger.HasMovementAtLeast(amount.Div(ten)) {
		s.metrics.IncrementCounter("loans_total", map[string]string{"status": "rejected"})
		return ErrLoanNotEligible
	}

	s.sessions.Renew()

	s.metrics.IncrementCounter("loans_total", map[string]string{"status": "granted"})
	s.logger.Info("loan granted",
		slog.String("username", account.Username),
		slog.String("amount", amount.String()),
		slog.Duration("approval_delay", s.loanDelay),
	)

	time.AfterFunc(s.loanDelay, func() {
		account.Ledger.Append(amount, time.Now())
		s.metrics.IncrementCounter("loans_total", map[string]string{"status": "credited"})
		s.logger.Info("loan credited",
			slog.String("username", account.Username),
			slog.String("amount", amount.String()),
		)
	})

	return nil
}

// CloseAccount removes the active account from the roster after the owner
// re-confirms username and PIN, then ends the session. Removal is terminal.
func (s *transactionService) CloseAccount(usernameConfirm string, pinConfirm int) error {
	account, err := s.sessions.ActiveAccount()
	if err != nil {
		return err
	}

	if usernameConfirm != account.Username || !account.CheckPIN(pinConfirm) {
		s.metrics.IncrementCounter("accounts_closed_total", map[string]string{"status": "mismatch"})
		return ErrAccountCloseMismatch
	}

	s.accountRepo.Remove(account.Username)
	s.sessions.Logout()

	s.metrics.IncrementCounter("accounts_closed_total", map[string]string{"status": "closed"})
	s.logger.Info("account closed", slog.String("username", account.Username))

	return nil
}

func (s *transactionService) rejectTransfer(reason string) {
	s.metrics.IncrementCounter("transfers_total", map[string]string{"status": reason})
}
