package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking-ledger/internal/domain"
)

// TransactionFilter is a chainable query pipeline. Every step returns a
// fresh view over its own slice; no step mutates its input, so filters can
// be branched and reused safely.
type TransactionFilter struct {
	transactions []domain.Transaction
}

func NewTransactionFilter(transactions []domain.Transaction) *TransactionFilter {
	owned := make([]domain.Transaction, len(transactions))
	copy(owned, transactions)
	return &TransactionFilter{transactions: owned}
}

// Criteria drives the one-shot Apply used by reports. Zero-valued fields are
// skipped; dates apply only when both ends are set.
type Criteria struct {
	Kind          domain.TransactionKind
	StartDate     time.Time
	EndDate       time.Time
	AccountNumber string
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	Description   string
}

func (f *TransactionFilter) ByKind(kind domain.TransactionKind) *TransactionFilter {
	return f.keep(func(tx domain.Transaction) bool {
		return tx.Kind == kind
	})
}

func (f *TransactionFilter) ByDateRange(start, end time.Time) *TransactionFilter {
	return f.keep(func(tx domain.Transaction) bool {
		return withinRange(tx.Timestamp, start, end)
	})
}

func (f *TransactionFilter) ByAccount(number string) *TransactionFilter {
	return f.keep(func(tx domain.Transaction) bool {
		return tx.SourceAccount == number || tx.TargetAccount == number
	})
}

func (f *TransactionFilter) ByAmountRange(min, max decimal.Decimal) *TransactionFilter {
	return f.keep(func(tx domain.Transaction) bool {
		return tx.Amount.GreaterThanOrEqual(min) && tx.Amount.LessThanOrEqual(max)
	})
}

// ByDescription keeps transactions whose description contains the keyword,
// case-insensitively.
func (f *TransactionFilter) ByDescription(keyword string) *TransactionFilter {
	needle := strings.ToLower(keyword)
	return f.keep(func(tx domain.Transaction) bool {
		return strings.Contains(strings.ToLower(tx.Description), needle)
	})
}

func (f *TransactionFilter) SortByDate(ascending bool) *TransactionFilter {
	out := f.clone()
	sort.SliceStable(out.transactions, func(i, j int) bool {
		if ascending {
			return out.transactions[i].Timestamp.Before(out.transactions[j].Timestamp)
		}
		return out.transactions[j].Timestamp.Before(out.transactions[i].Timestamp)
	})
	return out
}

func (f *TransactionFilter) SortByAmount(ascending bool) *TransactionFilter {
	out := f.clone()
	sort.SliceStable(out.transactions, func(i, j int) bool {
		if ascending {
			return out.transactions[i].Amount.LessThan(out.transactions[j].Amount)
		}
		return out.transactions[j].Amount.LessThan(out.transactions[i].Amount)
	})
	return out
}

func (f *TransactionFilter) Limit(n int) *TransactionFilter {
	out := f.clone()
	if n >= 0 && n < len(out.transactions) {
		out.transactions = out.transactions[:n]
	}
	return out
}

// Apply narrows by every set criteria field, then sorts by date descending.
func (f *TransactionFilter) Apply(criteria Criteria) *TransactionFilter {
	out := f
	if criteria.Kind != "" {
		out = out.ByKind(criteria.Kind)
	}
	if !criteria.StartDate.IsZero() && !criteria.EndDate.IsZero() {
		out = out.ByDateRange(criteria.StartDate, criteria.EndDate)
	}
	if criteria.AccountNumber != "" {
		out = out.ByAccount(criteria.AccountNumber)
	}
	if criteria.MinAmount != nil {
		min := *criteria.MinAmount
		out = out.keep(func(tx domain.Transaction) bool {
			return tx.Amount.GreaterThanOrEqual(min)
		})
	}
	if criteria.MaxAmount != nil {
		max := *criteria.MaxAmount
		out = out.keep(func(tx domain.Transaction) bool {
			return tx.Amount.LessThanOrEqual(max)
		})
	}
	if criteria.Description != "" {
		out = out.ByDescription(criteria.Description)
	}
	return out.SortByDate(false)
}

func (f *TransactionFilter) Results() []domain.Transaction {
	out := make([]domain.Transaction, len(f.transactions))
	copy(out, f.transactions)
	return out
}

func (f *TransactionFilter) Count() int {
	return len(f.transactions)
}

func (f *TransactionFilter) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range f.transactions {
		total = total.Add(tx.Amount)
	}
	return total
}

func (f *TransactionFilter) keep(match func(domain.Transaction) bool) *TransactionFilter {
	out := make([]domain.Transaction, 0, len(f.transactions))
	for _, tx := range f.transactions {
		if match(tx) {
			out = append(out, tx)
		}
	}
	return &TransactionFilter{transactions: out}
}

func (f *TransactionFilter) clone() *TransactionFilter {
	out := make([]domain.Transaction, len(f.transactions))
	copy(out, f.transactions)
	return &TransactionFilter{transactions: out}
}
