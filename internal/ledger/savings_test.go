package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/core-banking-ledger/internal/domain"
)

func TestCalculateMonthlyInterestAboveMinimum(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 1000, domain.AccountSavings)

	interest, err := acct.CalculateMonthlyInterest()
	require.NoError(t, err)
	require.Equal(t, "20.00", interest.StringFixed(2))
}

func TestCalculateMonthlyInterestAtMinimumIsZero(t *testing.T) {
	r := newTestRegistry()
	acct, _, err := r.Create("Casey Holder", decimal.NewFromInt(500), domain.AccountSavings)
	require.NoError(t, err)

	interest, err := acct.CalculateMonthlyInterest()
	require.NoError(t, err)
	require.True(t, interest.IsZero())
}

func TestCalculateMonthlyInterestJustAboveMinimum(t *testing.T) {
	r := newTestRegistry()
	acct, _, err := r.Create("Casey Holder", decimal.RequireFromString("500.01"), domain.AccountSavings)
	require.NoError(t, err)

	interest, err := acct.CalculateMonthlyInterest()
	require.NoError(t, err)
	require.True(t, interest.IsPositive())
	require.Equal(t, "10.0002", interest.String())
}

func TestApplyMonthlyInterestCreditsAndRecords(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 1000, domain.AccountSavings)

	tx, err := acct.ApplyMonthlyInterest()
	require.NoError(t, err)
	require.Equal(t, domain.TransactionInterest, tx.Kind)
	require.Equal(t, "20.00", tx.Amount.StringFixed(2))
	require.Equal(t, "1020.00", acct.Balance().StringFixed(2))

	snap := acct.Snapshot()
	require.NotNil(t, snap.LastInterestAppliedAt)
	require.NotNil(t, snap.InterestRate)
	require.Equal(t, "0.02", snap.InterestRate.String())
}

func TestApplyMonthlyInterestNoOpBelowMinimum(t *testing.T) {
	r := newTestRegistry()
	acct, _, err := r.Create("Casey Holder", decimal.NewFromInt(500), domain.AccountSavings)
	require.NoError(t, err)
	before := acct.Snapshot()

	tx, err := acct.ApplyMonthlyInterest()
	require.NoError(t, err)
	require.Empty(t, tx.ID)
	require.Equal(t, "500.00", acct.Balance().StringFixed(2))
	require.Len(t, acct.History(), 1)

	// The creation-time stamp is untouched by a no-op application.
	after := acct.Snapshot()
	require.NotNil(t, after.LastInterestAppliedAt)
	require.True(t, after.LastInterestAppliedAt.Equal(*before.LastInterestAppliedAt))
}

func TestApplyMonthlyInterestRejectsFrozenAccount(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 1000, domain.AccountSavings)

	acct.Freeze()
	_, err := acct.ApplyMonthlyInterest()
	require.ErrorIs(t, err, domain.ErrAccountFrozen)
	require.Equal(t, "1000.00", acct.Balance().StringFixed(2))
}

func TestSetInterestRate(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 1000, domain.AccountSavings)

	require.NoError(t, acct.SetInterestRate(decimal.RequireFromString("0.05")))
	interest, err := acct.CalculateMonthlyInterest()
	require.NoError(t, err)
	require.Equal(t, "50.00", interest.StringFixed(2))

	err = acct.SetInterestRate(decimal.RequireFromString("-0.01"))
	require.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestInterestOperationsRejectCheckingAccounts(t *testing.T) {
	r := newTestRegistry()
	acct := createFunded(t, r, 1000, domain.AccountChecking)

	_, err := acct.CalculateMonthlyInterest()
	require.ErrorIs(t, err, domain.ErrNotSavingsAccount)
	_, err = acct.ApplyMonthlyInterest()
	require.ErrorIs(t, err, domain.ErrNotSavingsAccount)
	_, err = acct.InterestRate()
	require.ErrorIs(t, err, domain.ErrNotSavingsAccount)
	err = acct.SetInterestRate(decimal.RequireFromString("0.03"))
	require.ErrorIs(t, err, domain.ErrNotSavingsAccount)
}
