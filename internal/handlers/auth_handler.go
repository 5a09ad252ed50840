package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nolann7/bank/internal/dto"
	"github.com/nolann7/bank/internal/errors"
	"github.com/nolann7/bank/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles login, logout and session state requests
type AuthHandler struct {
	sessions services.SessionServiceInterface
	logger   *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions services.SessionServiceInterface, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, logger: logger}
}

// Login authenticates a username/PIN pair and starts the session countdown
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, token, err := h.sessions.Login(req.Username, req.PIN)
	if err != nil {
		return SendError(c, errors.AuthInvalidCredentials)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		Username: account.Username,
		Owner:    account.Owner,
		Message:  fmt.Sprintf("Welcome back, %s", account.FirstName()),
	})
}

// Logout ends the active session
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout()
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Session reports the current session state, logged in or not
func (h *AuthHandler) Session(c echo.Context) error {
	state := h.sessions.Current()
	return c.JSON(http.StatusOK, dto.SessionResponse{
		LoggedIn:         state.LoggedIn,
		Username:         state.Username,
		Owner:            state.Owner,
		RemainingSeconds: state.RemainingSeconds,
	})
}

// Renew restarts the inactivity countdown as an explicit activity ping
func (h *AuthHandler) Renew(c echo.Context) error {
	h.sessions.Renew()
	state := h.sessions.Current()
	return c.JSON(http.StatusOK, dto.SessionResponse{
		LoggedIn:         state.LoggedIn,
		Username:         state.Username,
		Owner:            state.Owner,
		RemainingSeconds: state.RemainingSeconds,
	})
}
