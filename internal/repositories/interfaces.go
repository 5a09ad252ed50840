package repositories

import (
	"errors"

	"github.com/nolann7/bank/internal/models"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountRepositoryInterface defines roster access for the fixed set of
// accounts established at startup. Usernames act as unique lookup keys;
// uniqueness itself is guaranteed by the seeding step.
type AccountRepositoryInterface interface {
	FindByUsername(username string) (*models.Account, error)
	Remove(username string) bool
	All() []*models.Account
	Count() int
}
