package models

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Deposits below this computed interest are excluded from the interest
// summary. Business rule inherited from the product, not a rounding artifact.
var minimumInterest = decimal.NewFromInt(1)

// Movement is a single signed monetary transaction: positive amounts are
// deposits, negative amounts are withdrawals.
type Movement struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// Ledger holds the ordered movement history of one account as two
// index-aligned sequences. Appends are guarded by a mutex because the sending
// side of a transfer writes to the recipient's ledger directly; the recipient
// never holds a session of its own.
type Ledger struct {
	mu      sync.Mutex
	amounts []decimal.Decimal
	dates   []time.Time
}

// NewLedger seeds a ledger from aligned amount and date slices. The slices
// are copied so the caller cannot break the alignment afterwards.
func NewLedger(amounts []decimal.Decimal, dates []time.Time) (*Ledger, error) {
	if len(amounts) != len(dates) {
		return nil, ErrMisalignedSeed
	}

	l := &Ledger{
		amounts: make([]decimal.Decimal, len(amounts)),
		dates:   make([]time.Time, len(dates)),
	}
	copy(l.amounts, amounts)
	copy(l.dates, dates)
	return l, nil
}

// Append records a movement with its timestamp. Both sequences grow together
// or not at all; a partial append is never observable.
func (l *Ledger) Append(amount decimal.Decimal, ts time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.amounts = append(l.amounts, amount)
	l.dates = append(l.dates, ts)
}

// Len reports the number of recorded movements.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.amounts)
}

// Balance recomputes the running sum of all movements on every call. The
// balance is never stored, so it cannot drift from the history.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	sum := decimal.Zero
	for _, m := range l.amounts {
		sum = sum.Add(m)
	}
	return sum
}

// TotalDeposits sums the positive movements.
func (l *Ledger) TotalDeposits() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	sum := decimal.Zero
	for _, m := range l.amounts {
		if m.GreaterThan(decimal.Zero) {
			sum = sum.Add(m)
		}
	}
	return sum
}

// TotalWithdrawals sums the negative movements and reports the result as a
// non-negative magnitude.
func (l *Ledger) TotalWithdrawals() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	sum := decimal.Zero
	for _, m := range l.amounts {
		if m.LessThan(decimal.Zero) {
			sum = sum.Add(m)
		}
	}
	return sum.Abs()
}

// QualifyingInterest computes per-deposit interest at the given percentage
// rate and sums only the entries whose computed interest is at least 1.
func (l *Ledger) QualifyingInterest(rate decimal.Decimal) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	hundred := decimal.NewFromInt(100)
	sum := decimal.Zero
	for _, m := range l.amounts {
		if !m.GreaterThan(decimal.Zero) {
			continue
		}
		interest := m.Mul(rate).Div(hundred)
		if interest.GreaterThanOrEqual(minimumInterest) {
			sum = sum.Add(interest)
		}
	}
	return sum
}

// HasMovementAtLeast reports whether any recorded movement is greater than or
// equal to the given amount. Loan eligibility is decided on this.
func (l *Ledger) HasMovementAtLeast(amount decimal.Decimal) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, m := range l.amounts {
		if m.GreaterThanOrEqual(amount) {
			return true
		}
	}
	return false
}

// Movements returns a chronological copy of the history.
func (l *Ledger) Movements() []Movement {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// MovementsSorted returns a copy of the history ordered by amount. The stored
// order stays chronological; sorting is a view, never a mutation.
func (l *Ledger) MovementsSorted(ascending bool) []Movement {
	l.mu.Lock()
	movements := l.snapshotLocked()
	l.mu.Unlock()

	sort.SliceStable(movements, func(i, j int) bool {
		if ascending {
			return movements[i].Amount.LessThan(movements[j].Amount)
		}
		return movements[i].Amount.GreaterThan(movements[j].Amount)
	})
	return movements
}

func (l *Ledger) snapshotLocked() []Movement {
	movements := make([]Movement, len(l.amounts))
	for i, m := range l.amounts {
		movements[i] = Movement{Amount: m, Date: l.dates[i]}
	}
	return movements
}
