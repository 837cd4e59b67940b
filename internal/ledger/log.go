package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking-ledger/internal/domain"
	"github.com/api-sage/core-banking-ledger/internal/logger"
)

// Archiver receives every transaction appended to the log. It is the seam
// where a durable backend attaches; the engine itself ships none and keeps
// working when archiving fails.
type Archiver interface {
	Archive(tx domain.Transaction) error
}

// TransactionLog is the append-only global record of every transaction ever
// created, independent of which accounts still exist. The log is the sole
// writer of its slice; every reader gets a fresh copy.
type TransactionLog struct {
	mu       sync.RWMutex
	entries  []domain.Transaction
	archiver Archiver
}

func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Attach registers an archiver for all future appends.
func (l *TransactionLog) Attach(archiver Archiver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.archiver = archiver
}

// Append records a transaction. The archiver runs outside the lock so a slow
// backend never blocks concurrent appends or queries.
func (l *TransactionLog) Append(tx domain.Transaction) {
	l.mu.Lock()
	l.entries = append(l.entries, tx)
	archiver := l.archiver
	l.mu.Unlock()

	if archiver == nil {
		return
	}
	if err := archiver.Archive(tx); err != nil {
		logger.Error("transaction log archive failed", err, logger.Fields{
			"transactionId": tx.ID,
		})
	}
}

func (l *TransactionLog) All() []domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *TransactionLog) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// ByAccount matches transactions the account appears in on either side.
func (l *TransactionLog) ByAccount(number string) []domain.Transaction {
	return l.collect(func(tx domain.Transaction) bool {
		return tx.SourceAccount == number || tx.TargetAccount == number
	})
}

func (l *TransactionLog) ByKind(kind domain.TransactionKind) []domain.Transaction {
	return l.collect(func(tx domain.Transaction) bool {
		return tx.Kind == kind
	})
}

// ByDateRange is inclusive on both ends.
func (l *TransactionLog) ByDateRange(start, end time.Time) []domain.Transaction {
	return l.collect(func(tx domain.Transaction) bool {
		return withinRange(tx.Timestamp, start, end)
	})
}

func (l *TransactionLog) ByAccountAndDateRange(number string, start, end time.Time) []domain.Transaction {
	return l.collect(func(tx domain.Transaction) bool {
		involved := tx.SourceAccount == number || tx.TargetAccount == number
		return involved && withinRange(tx.Timestamp, start, end)
	})
}

// Recent returns up to n of the account's transactions, newest first.
func (l *TransactionLog) Recent(number string, n int) []domain.Transaction {
	matches := l.ByAccount(number)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[j].Timestamp.Before(matches[i].Timestamp)
	})
	if n >= 0 && n < len(matches) {
		matches = matches[:n]
	}
	return matches
}

func (l *TransactionLog) ByID(id string) (domain.Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, tx := range l.entries {
		if tx.ID == id {
			return tx, true
		}
	}
	return domain.Transaction{}, false
}

// Stats aggregates the whole log: total count, count per kind and the sum of
// all amounts.
func (l *TransactionLog) Stats() domain.TransactionStats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := domain.TransactionStats{
		Total:       len(l.entries),
		ByKind:      make(map[domain.TransactionKind]int),
		TotalAmount: decimal.Zero,
	}
	for _, tx := range l.entries {
		stats.ByKind[tx.Kind]++
		stats.TotalAmount = stats.TotalAmount.Add(tx.Amount)
	}
	return stats
}

// Filter starts a query pipeline over a snapshot of the log.
func (l *TransactionLog) Filter() *TransactionFilter {
	return NewTransactionFilter(l.All())
}

func (l *TransactionLog) collect(match func(domain.Transaction) bool) []domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	for _, tx := range l.entries {
		if match(tx) {
			out = append(out, tx)
		}
	}
	return out
}

func withinRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
