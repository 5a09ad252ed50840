package models

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T, amounts ...float64) *Ledger {
	t.Helper()

	decimals := make([]decimal.Decimal, len(amounts))
	dates := make([]time.Time, len(amounts))
	base := time.Date(2022, 7, 1, 12, 0, 0, 0, time.UTC)
	for i, a := range amounts {
		decimals[i] = decimal.NewFromFloat(a)
		dates[i] = base.Add(time.Duration(i) * 24 * time.Hour)
	}

	ledger, err := NewLedger(decimals, dates)
	require.NoError(t, err)
	return ledger
}

func TestNewLedger_Misaligned(t *testing.T) {
	_, err := NewLedger([]decimal.Decimal{decimal.NewFromInt(1)}, nil)
	assert.ErrorIs(t, err, ErrMisalignedSeed)
}

func TestLedger_Balance(t *testing.T) {
	tests := []struct {
		name     string
		amounts  []float64
		expected float64
	}{
		{
			name:     "empty ledger",
			amounts:  nil,
			expected: 0,
		},
		{
			name:     "demo history",
			amounts:  []float64{200, 455.23, -306.5, 25000, -642.21, -133.9, 79.97, 1300},
			expected: 25952.59,
		},
		{
			name:     "negative sum",
			amounts:  []float64{100, -250},
			expected: -150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := newTestLedger(t, tt.amounts...)
			assert.True(t, ledger.Balance().Equal(decimal.NewFromFloat(tt.expected)),
				"got %s", ledger.Balance())
		})
	}
}

func TestLedger_BalanceRecomputedAfterAppend(t *testing.T) {
	ledger := newTestLedger(t, 100)
	require.True(t, ledger.Balance().Equal(decimal.NewFromInt(100)))

	ledger.Append(decimal.NewFromInt(-30), time.Now())
	assert.True(t, ledger.Balance().Equal(decimal.NewFromInt(70)))
}

func TestLedger_Totals(t *testing.T) {
	ledger := newTestLedger(t, 200, -50, 300, -150)

	assert.True(t, ledger.TotalDeposits().Equal(decimal.NewFromInt(500)))
	// withdrawals are reported as a non-negative magnitude
	assert.True(t, ledger.TotalWithdrawals().Equal(decimal.NewFromInt(200)))
}

func TestLedger_QualifyingInterest(t *testing.T) {
	rate := decimal.NewFromFloat(1.2)

	tests := []struct {
		name     string
		amounts  []float64
		expected float64
	}{
		{
			name:     "deposit below threshold excluded",
			amounts:  []float64{80}, // 80 * 1.2% = 0.96
			expected: 0,
		},
		{
			name:     "deposit at threshold included",
			amounts:  []float64{100}, // 100 * 1.2% = 1.2
			expected: 1.2,
		},
		{
			name:     "withdrawals never accrue interest",
			amounts:  []float64{-5000},
			expected: 0,
		},
		{
			name:     "mixed history counts only qualifying deposits",
			amounts:  []float64{80, 100, -200, 1000}, // 1.2 + 12
			expected: 13.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := newTestLedger(t, tt.amounts...)
			got := ledger.QualifyingInterest(rate)
			assert.True(t, got.Equal(decimal.NewFromFloat(tt.expected)), "got %s", got)
		})
	}
}

func TestLedger_AppendKeepsAlignment(t *testing.T) {
	ledger := newTestLedger(t)

	for i := 0; i < 25; i++ {
		ledger.Append(decimal.NewFromInt(int64(i-10)), time.Now())
		movements := ledger.Movements()
		require.Len(t, movements, i+1)
		for _, m := range movements {
			require.False(t, m.Date.IsZero())
		}
	}
}

func TestLedger_ConcurrentAppends(t *testing.T) {
	// The sending side of a transfer appends to a ledger it does not own;
	// appends from multiple goroutines must preserve the alignment invariant.
	ledger := newTestLedger(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ledger.Append(decimal.NewFromInt(10), time.Now())
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, ledger.Len())
	assert.True(t, ledger.Balance().Equal(decimal.NewFromInt(500)))
}

func TestLedger_MovementsSorted(t *testing.T) {
	ledger := newTestLedger(t, 200, -306.5, 455.23, 25000)

	ascending := ledger.MovementsSorted(true)
	require.Len(t, ascending, 4)
	assert.True(t, ascending[0].Amount.Equal(decimal.NewFromFloat(-306.5)))
	assert.True(t, ascending[3].Amount.Equal(decimal.NewFromInt(25000)))

	descending := ledger.MovementsSorted(false)
	assert.True(t, descending[0].Amount.Equal(decimal.NewFromInt(25000)))

	// stored order stays chronological after sort-view requests
	chronological := ledger.Movements()
	assert.True(t, chronological[0].Amount.Equal(decimal.NewFromInt(200)))
	assert.True(t, chronological[1].Amount.Equal(decimal.NewFromFloat(-306.5)))
}

func TestLedger_HasMovementAtLeast(t *testing.T) {
	ledger := newTestLedger(t, 200, 455.23, -306.5, 25000)

	assert.True(t, ledger.HasMovementAtLeast(decimal.NewFromInt(200)))   // loan of 2000
	assert.True(t, ledger.HasMovementAtLeast(decimal.NewFromInt(25000))) // exact match qualifies
	assert.False(t, ledger.HasMovementAtLeast(decimal.NewFromInt(30000))) // loan of 300000
}

func TestLedger_MovementsReturnsCopy(t *testing.T) {
	ledger := newTestLedger(t, 100, 200)

	movements := ledger.Movements()
	movements[0].Amount = decimal.NewFromInt(-999)

	assert.True(t, ledger.Movements()[0].Amount.Equal(decimal.NewFromInt(100)))
}
