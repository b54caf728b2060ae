package ledger

import (
	"sync"

	"github.com/rechargehub/rechargehub-backend/pkg/models"
)

// Ledger is the append-only, in-memory sequence of completed transactions.
// Appends are serialized so insertion order is preserved under concurrent
// settlements; reads copy a consistent snapshot.
type Ledger struct {
	mu      sync.RWMutex
	entries []models.Transaction
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Append adds a transaction to the end of the sequence.
func (l *Ledger) Append(txn models.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, txn)
}

// Recent returns the last n transactions in insertion order, oldest of the
// window first. Fewer are returned if the ledger holds fewer.
func (l *Ledger) Recent(n int) []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n <= 0 {
		return nil
	}
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]models.Transaction, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out
}

// Len reports how many transactions have been recorded.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
