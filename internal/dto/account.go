package dto

import (
	"github.com/nolann7/bank/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// TransferRequest represents the request payload for transferring funds
type TransferRequest struct {
	To     string `json:"to" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

// LoanRequest represents the request payload for requesting a loan
type LoanRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// CloseAccountRequest carries the closure confirmation
type CloseAccountRequest struct {
	Username string `json:"username" validate:"required"`
	PIN      int    `json:"pin" validate:"required,min=0"`
}

// Account Response DTOs

// AccountResponse is the dashboard view of the active account: identity,
// derived balance and summary totals, plus presentation hints the core
// treats as opaque.
type AccountResponse struct {
	Owner            string          `json:"owner"`
	Username         string          `json:"username"`
	Balance          decimal.Decimal `json:"balance"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	Interest         decimal.Decimal `json:"interest"`
	Currency         string          `json:"currency"`
	Locale           string          `json:"locale"`
	MovementCount    int             `json:"movement_count"`
}

// MovementsResponse lists movements in the requested order
type MovementsResponse struct {
	Movements []models.Movement `json:"movements"`
	Sorted    bool              `json:"sorted"`
}

// TransferResponse confirms a completed transfer
type TransferResponse struct {
	Message string `json:"message"`
	To      string `json:"to"`
	Amount  string `json:"amount"`
}

// LoanResponse confirms a granted loan whose credit is still pending
type LoanResponse struct {
	Message string `json:"message"`
	Amount  string `json:"amount"`
}
