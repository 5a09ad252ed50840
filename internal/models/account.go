package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOwner     = errors.New("account owner is required")
	ErrMisalignedSeed = errors.New("movement amounts and dates must have equal length")
	ErrNegativeRate   = errors.New("interest rate cannot be negative")
)

// Account represents one customer of the bank. The username is derived from
// the owner name when the roster is seeded, never supplied directly.
type Account struct {
	Owner        string          `json:"owner"`
	Username     string          `json:"username"`
	PIN          int             `json:"-"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Currency     string          `json:"currency"`
	Locale       string          `json:"locale"`
	Ledger       *Ledger         `json:"-"`
}

// NewAccount builds an account with its movement history. Amounts and dates
// are index-aligned; a mismatch is rejected up front so the ledger invariant
// holds from the first observation.
func NewAccount(owner string, pin int, interestRate decimal.Decimal, currency, locale string, amounts []decimal.Decimal, dates []time.Time) (*Account, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrEmptyOwner
	}

	if interestRate.LessThan(decimal.Zero) {
		return nil, ErrNegativeRate
	}

	ledger, err := NewLedger(amounts, dates)
	if err != nil {
		return nil, err
	}

	return &Account{
		Owner:        owner,
		Username:     DeriveUsername(owner),
		PIN:          pin,
		InterestRate: interestRate,
		Currency:     currency,
		Locale:       locale,
		Ledger:       ledger,
	}, nil
}

// CheckPIN compares the supplied pin by exact equality.
func (a *Account) CheckPIN(pin int) bool {
	return a.PIN == pin
}

// FirstName returns the leading token of the owner name, used in greetings.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// QualifyingInterest computes the interest the account has earned across its
// deposit history at the account's rate.
func (a *Account) QualifyingInterest() decimal.Decimal {
	return a.Ledger.QualifyingInterest(a.InterestRate)
}

// DeriveUsername lowercases the owner name and concatenates the first letter
// of every token: "Jonas Schmedtmann" -> "js". An empty owner yields an empty
// username.
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, token := range strings.Fields(strings.ToLower(owner)) {
		b.WriteRune([]rune(token)[0])
	}
	return b.String()
}
