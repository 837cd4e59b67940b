package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	AccountChecking AccountKind = "checking"
	AccountSavings  AccountKind = "savings"
)

// AccountSnapshot is a point-in-time projection of an account's public
// fields. Savings-only fields are nil for checking accounts.
type AccountSnapshot struct {
	AccountNumber string
	HolderName    string
	Balance       decimal.Decimal
	Kind          AccountKind
	Frozen        bool
	CreatedAt     time.Time

	InterestRate          *decimal.Decimal
	LastInterestAppliedAt *time.Time
	EligibleForInterest   bool
}
