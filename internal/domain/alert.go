package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AlertKind string

const (
	AlertLargeTransaction        AlertKind = "Large Transaction"
	AlertConsecutiveTransactions AlertKind = "Consecutive Transactions"
)

// Alert is raised by the fraud scanner when a transaction trips one of its
// heuristics. TransactionID references the transaction that completed the
// pattern.
type Alert struct {
	ID            string
	Kind          AlertKind
	AccountNumber string
	TransactionID string
	Amount        decimal.Decimal
	Message       string
	Timestamp     time.Time
}
