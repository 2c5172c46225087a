package executor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// OperationType tags what a ledger entry created, which selects the inverse
// store operation on rollback
type OperationType string

const (
	OpTransaction       OperationType = "TRANSACTION"
	OpInstallmentSeries OperationType = "INSTALLMENT_SERIES"
	OpGoal              OperationType = "GOAL"
	OpBudget            OperationType = "BUDGET"
)

// LedgerEntry records one successful mutation, kept in memory solely to
// support later rollback
type LedgerEntry struct {
	OperationID string
	Type        OperationType
	UserID      uuid.UUID
	Payload     any // the created record
	CreatedAt   time.Time
}

// ledger is the mutex-guarded in-memory operation history. The original
// design never expired entries; evictBefore bounds the growth and is driven
// by the janitor.
type ledger struct {
	mu      sync.Mutex
	entries map[string]*LedgerEntry
}

func newLedger() *ledger {
	return &ledger{entries: make(map[string]*LedgerEntry)}
}

func (l *ledger) add(entry *LedgerEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[entry.OperationID] = entry
}

func (l *ledger) get(operationID string) (*LedgerEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.entries[operationID]
	return entry, ok
}

func (l *ledger) remove(operationID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, operationID)
}

func (l *ledger) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// evictBefore drops entries created before the cutoff and reports how many
// were dropped
func (l *ledger) evictBefore(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for operationID, entry := range l.entries {
		if entry.CreatedAt.Before(cutoff) {
			delete(l.entries, operationID)
			evicted++
		}
	}
	return evicted
}
