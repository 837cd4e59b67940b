package ledger_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/core-banking-ledger/internal/domain"
	"github.com/api-sage/core-banking-ledger/internal/ledger"
)

func newTestRegistry() *ledger.Registry {
	return ledger.NewRegistry(ledger.DefaultLimits(), ledger.NewClock())
}

func createFunded(t *testing.T, r *ledger.Registry, amount int64, kind domain.AccountKind) *ledger.Account {
	t.Helper()
	acct, seed, err := r.Create(gofakeit.Name(), decimal.NewFromInt(amount), kind)
	require.NoError(t, err)
	require.Equal(t, domain.TransactionDeposit, seed.Kind)
	return acct
}

func TestDepositIncreasesBalanceAndRecordsTransaction(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 1000, domain.AccountChecking)

	tx, err := acct.Deposit(decimal.NewFromInt(250))
	require.NoError(t, err)
	require.Equal(t, "1250.00", acct.Balance().StringFixed(2))
	require.Equal(t, domain.TransactionDeposit, tx.Kind)
	require.Equal(t, acct.Number(), tx.SourceAccount)

	history := acct.History()
	require.Len(t, history, 2)
	require.Equal(t, tx.ID, history[1].ID)
}

func TestDepositRejectsNonPositiveAmounts(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 100, domain.AccountChecking)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := acct.Deposit(amount)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
	require.Equal(t, "100.00", acct.Balance().StringFixed(2))
	require.Len(t, acct.History(), 1)
}

func TestFrozenAccountRejectsMutations(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 1000, domain.AccountChecking)

	acct.Freeze()
	require.True(t, acct.Frozen())

	_, err := acct.Deposit(decimal.NewFromInt(10))
	require.ErrorIs(t, err, domain.ErrAccountFrozen)
	_, err = acct.Withdraw(decimal.NewFromInt(10))
	require.ErrorIs(t, err, domain.ErrAccountFrozen)
	require.Equal(t, "1000.00", acct.Balance().StringFixed(2))

	acct.Unfreeze()
	_, err = acct.Deposit(decimal.NewFromInt(10))
	require.NoError(t, err)
}

func TestWithdrawDebitsAndTracksDailyTotal(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 1000, domain.AccountChecking)

	tx, err := acct.Withdraw(decimal.NewFromInt(300))
	require.NoError(t, err)
	require.Equal(t, "700.00", acct.Balance().StringFixed(2))
	require.Equal(t, domain.TransactionWithdrawal, tx.Kind)
	require.Equal(t, "300.00", tx.Amount.StringFixed(2))
}

func TestWithdrawInsufficientFundsChargesFlatFee(t *testing.T) {
	// Raise the daily cap so the $1500 attempt reaches the balance check
	// instead of failing on the limit first.
	limits := ledger.DefaultLimits()
	limits.DailyWithdrawalLimit = decimal.NewFromInt(2000)
	r := ledger.NewRegistry(limits, ledger.NewClock())
	acct := createFunded(t, r, 1000, domain.AccountChecking)

	fee, err := acct.Withdraw(decimal.NewFromInt(1500))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// The fee transaction is a committed side effect of the failed call.
	require.Equal(t, "995.00", acct.Balance().StringFixed(2))
	require.Equal(t, domain.TransactionWithdrawal, fee.Kind)
	require.Equal(t, "5.00", fee.Amount.StringFixed(2))
	require.Len(t, acct.History(), 2)
}

func TestRepeatedInsufficientWithdrawalsDriveBalanceNegative(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 3, domain.AccountChecking)

	_, err := acct.Withdraw(decimal.NewFromInt(10))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	_, err = acct.Withdraw(decimal.NewFromInt(10))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	require.Equal(t, "-7.00", acct.Balance().StringFixed(2))
}

func TestWithdrawDailyLimitBoundary(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 10000, domain.AccountChecking)

	_, err := acct.Withdraw(decimal.NewFromInt(200))
	require.NoError(t, err)
	_, err = acct.Withdraw(decimal.NewFromInt(300))
	require.NoError(t, err)

	// Withdrawals summing to exactly the cap succeed; any further positive
	// amount fails without touching the balance.
	_, err = acct.Withdraw(decimal.NewFromInt(1))
	require.ErrorIs(t, err, domain.ErrDailyLimitExceeded)
	require.Equal(t, "9500.00", acct.Balance().StringFixed(2))
	require.Len(t, acct.History(), 3)
}

func TestDailyLimitCheckedBeforeInsufficientFundsFee(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 100, domain.AccountChecking)

	// 600 exceeds both the daily cap and the balance; the cap wins and no
	// fee is charged.
	_, err := acct.Withdraw(decimal.NewFromInt(600))
	require.ErrorIs(t, err, domain.ErrDailyLimitExceeded)
	require.Equal(t, "100.00", acct.Balance().StringFixed(2))
	require.Len(t, acct.History(), 1)
}

func TestHistoryReturnsDefensiveCopy(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 1000, domain.AccountChecking)

	history := acct.History()
	history[0].Description = "tampered"

	require.Equal(t, "initial deposit", acct.History()[0].Description)
}

func TestSnapshotProjectsPublicFields(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 1000, domain.AccountChecking)

	snap := acct.Snapshot()
	require.Equal(t, acct.Number(), snap.AccountNumber)
	require.Equal(t, domain.AccountChecking, snap.Kind)
	require.Equal(t, "1000.00", snap.Balance.StringFixed(2))
	require.False(t, snap.Frozen)
	require.Nil(t, snap.InterestRate)
	require.Nil(t, snap.LastInterestAppliedAt)
}
