package handlers

import (
	"net/http"

	"github.com/nolann7/bank/internal/dto"
	"github.com/nolann7/bank/internal/errors"
	"github.com/nolann7/bank/internal/models"

	"github.com/labstack/echo/v4"
)

// accountFromContext reads the account stored by the session middleware
func accountFromContext(c echo.Context) (*models.Account, bool) {
	account, ok := c.Get("account").(*models.Account)
	return account, ok
}

// AccountHandler serves the dashboard views of the active account
type AccountHandler struct{}

// NewAccountHandler creates a new account handler
func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// GetAccount returns the balance and summary totals of the active account.
// Everything is derived from the movement history on each request.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	account, ok := accountFromContext(c)
	if !ok {
		return SendError(c, errors.SessionMissing)
	}

	return c.JSON(http.StatusOK, dto.AccountResponse{
		Owner:            account.Owner,
		Username:         account.Username,
		Balance:          account.Ledger.Balance(),
		TotalDeposits:    account.Ledger.TotalDeposits(),
		TotalWithdrawals: account.Ledger.TotalWithdrawals(),
		Interest:         account.QualifyingInterest(),
		Currency:         account.Currency,
		Locale:           account.Locale,
		MovementCount:    account.Ledger.Len(),
	})
}

// GetMovements returns the movement history; ?sort=asc or ?sort=desc orders
// the view by amount without touching the stored chronological order.
func (h *AccountHandler) GetMovements(c echo.Context) error {
	account, ok := accountFromContext(c)
	if !ok {
		return SendError(c, errors.SessionMissing)
	}

	var movements []models.Movement
	sorted := false
	switch c.QueryParam("sort") {
	case "asc":
		movements = account.Ledger.MovementsSorted(true)
		sorted = true
	case "desc":
		movements = account.Ledger.MovementsSorted(false)
		sorted = true
	case "":
		movements = account.Ledger.Movements()
	default:
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("sort must be asc or desc"))
	}

	return c.JSON(http.StatusOK, dto.MovementsResponse{
		Movements: movements,
		Sorted:    sorted,
	})
}
