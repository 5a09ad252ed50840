package repositories

import (
	"strconv"
	"sync"

	"github.com/nolann7/bank/internal/models"
)

// accountRepository keeps the roster in memory for the process lifetime.
// Removal is terminal: a closed account never comes back.
type accountRepository struct {
	mu       sync.RWMutex
	accounts []*models.Account
}

// NewAccountRepository builds the roster. Derived usernames that collide are
// disambiguated with a numeric suffix in roster order: js, js2, js3.
func NewAccountRepository(accounts []*models.Account) AccountRepositoryInterface {
	repo := &accountRepository{}
	taken := make(map[string]bool, len(accounts))

	for _, account := range accounts {
		username := account.Username
		for n := 2; taken[username]; n++ {
			username = account.Username + strconv.Itoa(n)
		}
		account.Username = username
		taken[username] = true
		repo.accounts = append(repo.accounts, account)
	}

	return repo
}

// FindByUsername performs a linear lookup over the roster.
func (r *accountRepository) FindByUsername(username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return nil, ErrAccountNotFound
}

// Remove deletes the matching account and reports whether a removal
// occurred. A miss is an ordinary false, not an error.
func (r *accountRepository) Remove(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, account := range r.accounts {
		if account.Username == username {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// All returns the current roster in order.
func (r *accountRepository) All() []*models.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// Count reports the roster size.
func (r *accountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
