package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "deposit"
	TransactionWithdrawal TransactionKind = "withdrawal"
	TransactionTransfer   TransactionKind = "transfer"
	TransactionInterest   TransactionKind = "interest"
)

// Transaction is a single ledger event. It is created once by the account or
// registry that performed the mutation and is never modified afterwards; the
// account history and the global transaction log share the same record.
type Transaction struct {
	ID            string
	Kind          TransactionKind
	Amount        decimal.Decimal
	SourceAccount string
	TargetAccount string
	Description   string
	Timestamp     time.Time
}

type TransactionStats struct {
	Total       int
	ByKind      map[TransactionKind]int
	TotalAmount decimal.Decimal
}
