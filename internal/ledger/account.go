package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking-ledger/internal/domain"
)

const dateKeyLayout = "2006-01-02"

// Account owns a balance, its frozen flag, the per-day withdrawal counters
// and its own transaction history. The mutex guards all of them as one unit:
// no caller ever observes a balance change without the matching history
// entry. Accounts are created by a Registry and never exist outside one.
type Account struct {
	mu sync.Mutex

	number    string
	holder    string
	kind      domain.AccountKind
	balance   decimal.Decimal
	frozen    bool
	createdAt time.Time

	// date key ("2006-01-02") -> cumulative amount withdrawn that day.
	// Entries accumulate and are never removed.
	dailyWithdrawals map[string]decimal.Decimal
	history          []domain.Transaction

	// savings only
	interestRate          decimal.Decimal
	lastInterestAppliedAt time.Time

	limits Limits
	clock  Clock
}

func newAccount(number, holder string, kind domain.AccountKind, limits Limits, clock Clock) *Account {
	now := clock.Now()
	a := &Account{
		number:           number,
		holder:           holder,
		kind:             kind,
		balance:          decimal.Zero,
		createdAt:        now,
		dailyWithdrawals: make(map[string]decimal.Decimal),
		limits:           limits,
		clock:            clock,
	}
	if kind == domain.AccountSavings {
		a.interestRate = limits.DefaultSavingsRate
		a.lastInterestAppliedAt = now
	}
	return a
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) HolderName() string {
	return a.holder
}

func (a *Account) Kind() domain.AccountKind {
	return a.kind
}

// Deposit credits the account and returns the recorded transaction.
func (a *Account) Deposit(amount decimal.Decimal) (domain.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.frozen {
		return domain.Transaction{}, domain.ErrAccountFrozen
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return a.recordLocked(domain.TransactionDeposit, amount, "deposit", ""), nil
}

// Withdraw debits the account. The daily cap is checked before the balance,
// so a limit violation never costs the fee. An insufficient balance deducts
// the flat fee and records it as a committed withdrawal even though the call
// fails: the fee transaction is returned alongside ErrInsufficientFunds, and
// callers must not assume a failed withdrawal left the balance untouched.
func (a *Account) Withdraw(amount decimal.Decimal) (domain.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.frozen {
		return domain.Transaction{}, domain.ErrAccountFrozen
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	today := a.clock.Now().Format(dateKeyLayout)
	withdrawnToday := a.dailyWithdrawals[today]
	if withdrawnToday.Add(amount).GreaterThan(a.limits.DailyWithdrawalLimit) {
		return domain.Transaction{}, domain.ErrDailyLimitExceeded
	}

	if a.balance.LessThan(amount) {
		a.balance = a.balance.Sub(a.limits.InsufficientFundsFee)
		fee := a.recordLocked(domain.TransactionWithdrawal, a.limits.InsufficientFundsFee, "insufficient funds fee", "")
		return fee, domain.ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	a.dailyWithdrawals[today] = withdrawnToday.Add(amount)
	return a.recordLocked(domain.TransactionWithdrawal, amount, "withdrawal", ""), nil
}

// Freeze blocks every mutating operation until Unfreeze. Both are
// unconditional flag flips with no further validation.
func (a *Account) Freeze() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frozen = true
}

func (a *Account) Unfreeze() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frozen = false
}

func (a *Account) Frozen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frozen
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns a copy of the account's own transaction sequence.
func (a *Account) History() []domain.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]domain.Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// Snapshot projects the account's public fields at a single point in time.
func (a *Account) Snapshot() domain.AccountSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *Account) snapshotLocked() domain.AccountSnapshot {
	snap := domain.AccountSnapshot{
		AccountNumber: a.number,
		HolderName:    a.holder,
		Balance:       a.balance,
		Kind:          a.kind,
		Frozen:        a.frozen,
		CreatedAt:     a.createdAt,
	}
	if a.kind == domain.AccountSavings {
		rate := a.interestRate
		last := a.lastInterestAppliedAt
		snap.InterestRate = &rate
		snap.LastInterestAppliedAt = &last
		snap.EligibleForInterest = a.balance.GreaterThan(a.limits.MinBalanceForInterest)
	}
	return snap
}

// recordLocked appends a new immutable transaction to the account history.
// Callers must hold a.mu.
func (a *Account) recordLocked(kind domain.TransactionKind, amount decimal.Decimal, description, target string) domain.Transaction {
	tx := domain.Transaction{
		ID:            newTransactionID(),
		Kind:          kind,
		Amount:        amount,
		SourceAccount: a.number,
		TargetAccount: target,
		Description:   description,
		Timestamp:     a.clock.Now(),
	}
	a.history = append(a.history, tx)
	return tx
}

// creditLocked seeds or credits the balance without validation. Used by the
// registry while it holds the account lock.
func (a *Account) creditLocked(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

func (a *Account) debitLocked(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
}
