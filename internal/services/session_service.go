package services

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/nolann7/bank/internal/models"
	"github.com/nolann7/bank/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationFailed = errors.New("invalid username or pin")
	ErrNoActiveSession      = errors.New("no active session")
)

// sessionService implements SessionServiceInterface. One account may be
// logged in at a time; the inactivity countdown runs from login and is reset
// by every mutating action. Expiry clears the session exactly once.
type sessionService struct {
	accountRepo     repositories.AccountRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	durationSeconds int

	mu     sync.Mutex
	active *models.Account
	token  string
	timer  *logoutTimer
}

// NewSessionService creates the session controller. durationSeconds is the
// full countdown (600 in production); tick is the wall-clock length of one
// countdown second, shortened in tests.
func NewSessionService(
	accountRepo repositories.AccountRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	durationSeconds int,
	tick time.Duration,
) SessionServiceInterface {
	s := &sessionService{
		accountRepo:     accountRepo,
		metrics:         metrics,
		logger:          logger,
		durationSeconds: durationSeconds,
	}
	s.timer = newLogoutTimer(tick, s.expire)
	return s
}

// Login authenticates against the roster. On success any previous session is
// discarded, a fresh countdown starts and an opaque session token is issued.
func (s *sessionService) Login(username string, pin int) (*models.Account, string, error) {
	account, err := s.accountRepo.FindByUsername(username)
	if err != nil {
		s.metrics.IncrementCounter("session.login", map[string]string{"status": "failed"})
		return nil, "", ErrAuthenticationFailed
	}

	if !account.CheckPIN(pin) {
		s.metrics.IncrementCounter("session.login", map[string]string{"status": "failed"})
		return nil, "", ErrAuthenticationFailed
	}

	s.mu.Lock()
	s.active = account
	s.token = uuid.New().String()
	token := s.token
	s.mu.Unlock()

	s.timer.Start(s.durationSeconds)

	s.metrics.IncrementCounter("session.login", map[string]string{"status": "success"})
	s.metrics.RecordGauge("session.active", 1, nil)
	s.logger.Info("session started",
		slog.String("username", account.Username),
		slog.Int("duration_seconds", s.durationSeconds),
	)

	return account, token, nil
}

// Logout ends the session explicitly and cancels the countdown.
func (s *sessionService) Logout() {
	s.mu.Lock()
	account := s.active
	s.active = nil
	s.token = ""
	s.mu.Unlock()

	s.timer.Stop()

	if account != nil {
		s.metrics.RecordGauge("session.active", 0, nil)
		s.logger.Info("session ended", slog.String("username", account.Username))
	}
}

// Renew restarts the countdown at its full duration. A renew without a live
// session is a no-op.
func (s *sessionService) Renew() {
	s.mu.Lock()
	active := s.active != nil
	s.mu.Unlock()

	if active {
		s.timer.Start(s.durationSeconds)
	}
}

// Authorize resolves a session token to the active account.
func (s *sessionService) Authorize(token string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil || token == "" || token != s.token {
		return nil, ErrNoActiveSession
	}
	return s.active, nil
}

// ActiveAccount returns the logged-in account, if any.
func (s *sessionService) ActiveAccount() (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	return s.active, nil
}

// Current reports the session state for rendering.
func (s *sessionService) Current() SessionState {
	s.mu.Lock()
	account := s.active
	s.mu.Unlock()

	if account == nil {
		return SessionState{}
	}
	return SessionState{
		LoggedIn:         true,
		Username:         account.Username,
		Owner:            account.Owner,
		RemainingSeconds: s.timer.Remaining(),
	}
}

// Close shuts the controller down, cancelling any countdown.
func (s *sessionService) Close() {
	s.timer.Stop()
}

// expire is the countdown callback. Firing after an explicit logout is a
// no-op, never an error.
func (s *sessionService) expire() {
	s.mu.Lock()
	account := s.active
	s.active = nil
	s.token = ""
	s.mu.Unlock()

	if account == nil {
		return
	}

	s.metrics.IncrementCounter("session.expired", nil)
	s.metrics.RecordGauge("session.active", 0, nil)
	s.logger.Info("session expired", slog.String("username", account.Username))
}
