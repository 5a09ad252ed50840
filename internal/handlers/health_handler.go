package handlers

import (
	"net/http"

	"github.com/nolann7/bank/internal/repositories"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves liveness information
type HealthHandler struct {
	accountRepo repositories.AccountRepositoryInterface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(accountRepo repositories.AccountRepositoryInterface) *HealthHandler {
	return &HealthHandler{accountRepo: accountRepo}
}

// Health reports process liveness and roster size
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"accounts": h.accountRepo.Count(),
	})
}
