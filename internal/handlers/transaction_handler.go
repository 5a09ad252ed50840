package handlers

import (
	"errors"
	"net/http"

	"github.com/nolann7/bank/internal/dto"
	apierrors "github.com/nolann7/bank/internal/errors"
	"github.com/nolann7/bank/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler exposes the mutating ledger operations
type TransactionHandler struct {
	transactions services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactions services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// Transfer moves funds from the active account to another account
func (h *TransactionHandler) Transfer(c echo.Context) error {
	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transfer amount"))
	}

	if err := h.transactions.Transfer(req.To, amount); err != nil {
		switch {
		case errors.Is(err, services.ErrNoActiveSession):
			return SendError(c, apierrors.SessionMissing)
		case errors.Is(err, services.ErrInvalidAmount):
			return SendError(c, apierrors.TransferInvalidAmount)
		case errors.Is(err, services.ErrUnknownRecipient):
			return SendError(c, apierrors.TransferUnknownRecipient)
		case errors.Is(err, services.ErrInsufficientFunds):
			return SendError(c, apierrors.TransferInsufficientFunds)
		case errors.Is(err, services.ErrSelfTransfer):
			return SendError(c, apierrors.TransferSameAccount)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.TransferResponse{
		Message: "Transfer completed",
		To:      req.To,
		Amount:  amount.String(),
	})
}

// RequestLoan requests a loan; the credit lands after the approval delay, so
// a granted request is acknowledged with 202 Accepted
func (h *TransactionHandler) RequestLoan(c echo.Context) error {
	var req dto.LoanRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid loan amount"))
	}

	if err := h.transactions.RequestLoan(amount); err != nil {
		switch {
		case errors.Is(err, services.ErrNoActiveSession):
			return SendError(c, apierrors.SessionMissing)
		case errors.Is(err, services.ErrInvalidAmount):
			return SendError(c, apierrors.LoanInvalidAmount)
		case errors.Is(err, services.ErrLoanNotEligible):
			return SendError(c, apierrors.LoanNotEligible)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusAccepted, dto.LoanResponse{
		Message: "Loan approved, credit pending",
		Amount:  amount.String(),
	})
}

// CloseAccount removes the active account after re-confirmation
func (h *TransactionHandler) CloseAccount(c echo.Context) error {
	var req dto.CloseAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	if err := h.transactions.CloseAccount(req.Username, req.PIN); err != nil {
		switch {
		case errors.Is(err, services.ErrNoActiveSession):
			return SendError(c, apierrors.SessionMissing)
		case errors.Is(err, services.ErrAccountCloseMismatch):
			return SendError(c, apierrors.AccountCloseMismatch)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account closed"})
}
