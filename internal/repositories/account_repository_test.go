package repositories

import (
	"testing"

	"github.com/nolann7/bank/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(t *testing.T, owner string, pin int) *models.Account {
	t.Helper()

	account, err := models.NewAccount(owner, pin, decimal.NewFromFloat(1.2), "EUR", "pt-PT", nil, nil)
	require.NoError(t, err)
	return account
}

func TestAccountRepository_FindByUsername(t *testing.T) {
	repo := NewAccountRepository([]*models.Account{
		testAccount(t, "Jonas Schmedtmann", 1111),
		testAccount(t, "Jessica Davis", 2222),
	})

	account, err := repo.FindByUsername("jd")
	require.NoError(t, err)
	assert.Equal(t, "Jessica Davis", account.Owner)

	_, err = repo.FindByUsername("zz")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRepository_Remove(t *testing.T) {
	repo := NewAccountRepository([]*models.Account{
		testAccount(t, "Jonas Schmedtmann", 1111),
		testAccount(t, "Jessica Davis", 2222),
	})

	assert.True(t, repo.Remove("js"))
	assert.Equal(t, 1, repo.Count())

	_, err := repo.FindByUsername("js")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	// removing an absent account is a no-op reported as false
	assert.False(t, repo.Remove("js"))
	assert.Equal(t, 1, repo.Count())
}

func TestAccountRepository_UsernameCollisions(t *testing.T) {
	repo := NewAccountRepository([]*models.Account{
		testAccount(t, "Jonas Schmedtmann", 1111),
		testAccount(t, "Jane Smith", 2222),
		testAccount(t, "John Silver", 3333),
	})

	first, err := repo.FindByUsername("js")
	require.NoError(t, err)
	assert.Equal(t, "Jonas Schmedtmann", first.Owner)

	second, err := repo.FindByUsername("js2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", second.Owner)

	third, err := repo.FindByUsername("js3")
	require.NoError(t, err)
	assert.Equal(t, "John Silver", third.Owner)
}

func TestAccountRepository_AllReturnsCopy(t *testing.T) {
	repo := NewAccountRepository([]*models.Account{
		testAccount(t, "Jonas Schmedtmann", 1111),
	})

	accounts := repo.All()
	require.Len(t, accounts, 1)

	accounts[0] = nil
	assert.NotNil(t, repo.All()[0])
}
