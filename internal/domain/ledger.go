package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Ledger is the running total of every order total ever recomputed.
// One Ledger is created at process start and handed to whoever
// recomputes orders; it has no reset.
type Ledger struct {
	mu    sync.Mutex
	total decimal.Decimal
	count int
}

func NewLedger() *Ledger {
	return &Ledger{total: decimal.Zero}
}

// Add increments the running total. It never replaces it.
func (l *Ledger) Add(amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.total = l.total.Add(amount)
	l.count++
}

func (l *Ledger) Total() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// Contributions is the number of Add calls, including zero amounts.
func (l *Ledger) Contributions() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
