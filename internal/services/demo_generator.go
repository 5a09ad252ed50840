package services

import (
	"time"

	"github.com/nolann7/bank/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// GenerateDemoAccounts produces extra seed entries with plausible movement
// histories, so the demo roster can be padded beyond the built-in accounts.
// 5-10 movements simulates a realistic account history.
func GenerateDemoAccounts(count int) []repositories.SeedAccount {
	entries := make([]repositories.SeedAccount, 0, count)

	for i := 0; i < count; i++ {
		numMovements := gofakeit.Number(5, 10)
		movements := make([]repositories.SeedMovement, 0, numMovements)

		// Opening deposit keeps the running balance positive.
		current := decimal.NewFromInt(int64(gofakeit.Number(2000, 5000)))
		date := time.Now().AddDate(0, -numMovements, 0)
		movements = append(movements, repositories.SeedMovement{Amount: current, Date: date})

		for j := 1; j < numMovements; j++ {
			date = date.AddDate(0, 1, gofakeit.Number(-10, 10))
			amount := decimal.NewFromFloat(gofakeit.Price(50, 800))

			// 60% chance of a deposit, withdrawals capped by the balance
			if gofakeit.Float32() > 0.6 {
				if amount.GreaterThan(current) {
					amount = current.Mul(decimal.NewFromFloat(0.3)).Round(2)
				}
				amount = amount.Neg()
			}
			current = current.Add(amount)
			movements = append(movements, repositories.SeedMovement{Amount: amount, Date: date})
		}

		entries = append(entries, repositories.SeedAccount{
			Owner:        gofakeit.Name(),
			PIN:          gofakeit.Number(1000, 9999),
			InterestRate: decimal.NewFromFloat(float64(gofakeit.Number(5, 20)) / 10),
			Currency:     gofakeit.RandomString([]string{"EUR", "USD", "GBP"}),
			Locale:       gofakeit.RandomString([]string{"en-US", "de-DE", "pt-PT", "en-GB"}),
			Movements:    movements,
		})
	}

	return entries
}
