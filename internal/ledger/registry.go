package ledger

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking-ledger/internal/domain"
)

// Registry exclusively owns every account keyed by account number. The
// registry lock is always taken before any account lock; within a transfer
// the two account locks are taken in ascending account-number order so two
// transfers racing over the same pair in opposite directions cannot
// deadlock.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	limits   Limits
	clock    Clock
}

func NewRegistry(limits Limits, clock Clock) *Registry {
	return &Registry{
		accounts: make(map[string]*Account),
		limits:   limits,
		clock:    clock,
	}
}

// Create instantiates an account of the given kind, seeds it with one
// deposit transaction for the initial amount and stores it under a freshly
// generated account number. The seed transaction is returned so the caller
// can append it to the global log.
func (r *Registry) Create(holder string, initialDeposit decimal.Decimal, kind domain.AccountKind) (*Account, domain.Transaction, error) {
	if strings.TrimSpace(holder) == "" {
		return nil, domain.Transaction{}, domain.ErrInvalidHolder
	}
	if initialDeposit.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Transaction{}, domain.ErrInvalidAmount
	}
	if kind == "" {
		kind = domain.AccountChecking
	}
	if kind != domain.AccountChecking && kind != domain.AccountSavings {
		return nil, domain.Transaction{}, domain.ErrInvalidAccountKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	number := r.nextAccountNumberLocked()
	acct := newAccount(number, strings.TrimSpace(holder), kind, r.limits, r.clock)

	acct.mu.Lock()
	acct.creditLocked(initialDeposit)
	seed := acct.recordLocked(domain.TransactionDeposit, initialDeposit, "initial deposit", "")
	acct.mu.Unlock()

	r.accounts[number] = acct
	return acct, seed, nil
}

func (r *Registry) Get(number string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acct, ok := r.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return acct, nil
}

// Transfer atomically moves amount between two accounts and returns the
// linked pair of transactions (debit leg first). Unlike Withdraw, an
// insufficient balance fails cleanly with no fee. No reader can observe one
// side updated without the other: both balances and both history appends
// commit before either account lock is released.
func (r *Registry) Transfer(fromNumber, toNumber string, amount decimal.Decimal) (domain.Transaction, domain.Transaction, error) {
	var none domain.Transaction

	if amount.LessThanOrEqual(decimal.Zero) {
		return none, none, domain.ErrInvalidAmount
	}
	if fromNumber == toNumber {
		return none, none, domain.ErrSameAccount
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	from, ok := r.accounts[fromNumber]
	if !ok {
		return none, none, domain.ErrAccountNotFound
	}
	to, ok := r.accounts[toNumber]
	if !ok {
		return none, none, domain.ErrAccountNotFound
	}

	first, second := from, to
	if second.number < first.number {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if from.frozen || to.frozen {
		return none, none, domain.ErrAccountFrozen
	}
	if from.balance.LessThan(amount) {
		return none, none, domain.ErrInsufficientFunds
	}

	from.debitLocked(amount)
	out := from.recordLocked(domain.TransactionTransfer, amount, fmt.Sprintf("transfer to %s", toNumber), toNumber)

	to.creditLocked(amount)
	in := to.recordLocked(domain.TransactionTransfer, amount, fmt.Sprintf("transfer from %s", fromNumber), fromNumber)

	return out, in, nil
}

// Freeze requires explicit admin approval from the caller; deciding who is
// an admin is the auth collaborator's job, not the registry's.
func (r *Registry) Freeze(number string, adminApproved bool) error {
	if !adminApproved {
		return domain.ErrNotAuthorized
	}

	acct, err := r.Get(number)
	if err != nil {
		return err
	}
	acct.Freeze()
	return nil
}

func (r *Registry) Unfreeze(number string, adminApproved bool) error {
	if !adminApproved {
		return domain.ErrNotAuthorized
	}

	acct, err := r.Get(number)
	if err != nil {
		return err
	}
	acct.Unfreeze()
	return nil
}

// Delete removes an account. Only empty accounts can be deleted; the
// account's transactions stay in the global log.
func (r *Registry) Delete(number string, adminApproved bool) error {
	if !adminApproved {
		return domain.ErrNotAuthorized
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[number]
	if !ok {
		return domain.ErrAccountNotFound
	}

	acct.mu.Lock()
	empty := acct.balance.IsZero()
	acct.mu.Unlock()
	if !empty {
		return domain.ErrNonZeroBalance
	}

	delete(r.accounts, number)
	return nil
}

// All returns a snapshot of every account.
func (r *Registry) All() []domain.AccountSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.AccountSnapshot, 0, len(r.accounts))
	for _, acct := range r.accounts {
		out = append(out, acct.Snapshot())
	}
	return out
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// nextAccountNumberLocked draws random ten-digit numbers until one is free.
func (r *Registry) nextAccountNumberLocked() string {
	for {
		candidate := fmt.Sprintf("%d", 1000000000+rand.Int63n(9000000000))
		if _, taken := r.accounts[candidate]; !taken {
			return candidate
		}
	}
}
