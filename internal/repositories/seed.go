package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nolann7/bank/internal/models"

	"github.com/shopspring/decimal"
)

// SeedMovement is one movement entry in the seed file.
type SeedMovement struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// SeedAccount is one account entry in the seed file.
type SeedAccount struct {
	Owner        string          `json:"owner"`
	PIN          int             `json:"pin"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Currency     string          `json:"currency"`
	Locale       string          `json:"locale"`
	Movements    []SeedMovement  `json:"movements"`
}

// LoadSeedFile reads the account roster from a JSON file. This is the only
// state the process ever loads.
func LoadSeedFile(path string) ([]*models.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var entries []SeedAccount
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return BuildAccounts(entries)
}

// BuildAccounts converts seed entries into accounts, validating each one.
func BuildAccounts(entries []SeedAccount) ([]*models.Account, error) {
	accounts := make([]*models.Account, 0, len(entries))
	for _, entry := range entries {
		amounts := make([]decimal.Decimal, len(entry.Movements))
		dates := make([]time.Time, len(entry.Movements))
		for i, m := range entry.Movements {
			amounts[i] = m.Amount
			dates[i] = m.Date
		}

		account, err := models.NewAccount(entry.Owner, entry.PIN, entry.InterestRate, entry.Currency, entry.Locale, amounts, dates)
		if err != nil {
			return nil, fmt.Errorf("invalid seed entry for %q: %w", entry.Owner, err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// DefaultSeed returns the built-in demo roster used when no seed file is
// configured.
func DefaultSeed() []SeedAccount {
	return []SeedAccount{
		{
			Owner:        "Jonas Schmedtmann",
			PIN:          1111,
			InterestRate: decimal.NewFromFloat(1.2),
			Currency:     "EUR",
			Locale:       "pt-PT",
			Movements: []SeedMovement{
				{Amount: decimal.NewFromInt(200), Date: mustParseTime("2019-11-18T21:31:17.178Z")},
				{Amount: decimal.NewFromFloat(455.23), Date: mustParseTime("2019-12-23T07:42:02.383Z")},
				{Amount: decimal.NewFromFloat(-306.5), Date: mustParseTime("2020-01-28T09:15:04.904Z")},
				{Amount: decimal.NewFromInt(25000), Date: mustParseTime("2020-04-01T10:17:24.185Z")},
				{Amount: decimal.NewFromFloat(-642.21), Date: mustParseTime("2022-07-02T14:11:59.604Z")},
				{Amount: decimal.NewFromFloat(-133.9), Date: mustParseTime("2022-07-03T17:01:17.194Z")},
				{Amount: decimal.NewFromFloat(79.97), Date: mustParseTime("2022-07-06T23:36:17.929Z")},
				{Amount: decimal.NewFromInt(1300), Date: mustParseTime("2022-07-07T10:51:36.790Z")},
			},
		},
		{
			Owner:        "Jessica Davis",
			PIN:          2222,
			InterestRate: decimal.NewFromFloat(1.5),
			Currency:     "USD",
			Locale:       "en-US",
			Movements: []SeedMovement{
				{Amount: decimal.NewFromInt(5000), Date: mustParseTime("2019-11-01T13:15:33.035Z")},
				{Amount: decimal.NewFromInt(3400), Date: mustParseTime("2019-11-30T09:48:16.867Z")},
				{Amount: decimal.NewFromInt(-150), Date: mustParseTime("2019-12-25T06:04:23.907Z")},
				{Amount: decimal.NewFromInt(-790), Date: mustParseTime("2020-01-25T14:18:46.235Z")},
				{Amount: decimal.NewFromInt(-3210), Date: mustParseTime("2020-02-05T16:33:06.386Z")},
				{Amount: decimal.NewFromInt(-1000), Date: mustParseTime("2020-04-10T14:43:26.374Z")},
				{Amount: decimal.NewFromInt(8500), Date: mustParseTime("2020-06-25T18:49:59.371Z")},
				{Amount: decimal.NewFromInt(-30), Date: mustParseTime("2020-07-26T12:01:20.894Z")},
			},
		},
	}
}

func mustParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
