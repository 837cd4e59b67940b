package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking-ledger/internal/domain"
)

// Savings operations are gated on the account kind instead of a subtype:
// checking and savings accounts share one contract and the interest surface
// rejects anything that is not a savings account.

// CalculateMonthlyInterest returns what one interest application would
// credit. Balances at or below the minimum earn nothing; the boundary is
// inclusive.
func (a *Account) CalculateMonthlyInterest() (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.kind != domain.AccountSavings {
		return decimal.Zero, domain.ErrNotSavingsAccount
	}
	return a.monthlyInterestLocked(), nil
}

// ApplyMonthlyInterest credits the computed interest and records an interest
// transaction. When the computed interest is zero the call is a no-op: no
// transaction is recorded and the zero Transaction value is returned.
func (a *Account) ApplyMonthlyInterest() (domain.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.kind != domain.AccountSavings {
		return domain.Transaction{}, domain.ErrNotSavingsAccount
	}
	if a.frozen {
		return domain.Transaction{}, domain.ErrAccountFrozen
	}

	interest := a.monthlyInterestLocked()
	if !interest.IsPositive() {
		return domain.Transaction{}, nil
	}

	a.balance = a.balance.Add(interest)
	tx := a.recordLocked(domain.TransactionInterest, interest, "monthly interest", "")
	a.lastInterestAppliedAt = a.clock.Now()
	return tx, nil
}

func (a *Account) InterestRate() (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.kind != domain.AccountSavings {
		return decimal.Zero, domain.ErrNotSavingsAccount
	}
	return a.interestRate, nil
}

func (a *Account) SetInterestRate(rate decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.kind != domain.AccountSavings {
		return domain.ErrNotSavingsAccount
	}
	if rate.IsNegative() {
		return domain.ErrInvalidRate
	}
	a.interestRate = rate
	return nil
}

func (a *Account) monthlyInterestLocked() decimal.Decimal {
	if a.balance.LessThanOrEqual(a.limits.MinBalanceForInterest) {
		return decimal.Zero
	}
	return a.balance.Mul(a.interestRate)
}
