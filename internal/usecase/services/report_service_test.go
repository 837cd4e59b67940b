package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/core-banking-ledger/internal/domain"
	"github.com/api-sage/core-banking-ledger/internal/usecase/models"
)

func TestAccountSummaryAggregatesHistory(t *testing.T) {
	env := newTestEnv(t)
	number := env.createAccount(t, env.session, 1000, "")

	for _, amount := range []int64{100, 200, 300} {
		_, err := env.bank.Deposit(context.Background(), models.DepositRequest{
			SessionID:     env.session,
			AccountNumber: number,
			Amount:        decimal.NewFromInt(amount),
		})
		require.NoError(t, err)
	}
	_, err := env.bank.Withdraw(context.Background(), models.WithdrawRequest{
		SessionID:     env.session,
		AccountNumber: number,
		Amount:        decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	resp, err := env.reports.AccountSummary(context.Background(), number)
	require.NoError(t, err)

	summary := resp.Data
	require.Equal(t, 5, summary.TransactionCount)
	require.Equal(t, "1600.00", summary.TotalDeposits)
	require.Equal(t, "150.00", summary.TotalWithdrawals)
	require.Equal(t, "1450.00", summary.Account.Balance)

	// Latest first; the withdrawal is the most recent entry.
	require.Len(t, summary.LatestTransactions, 5)
	require.Equal(t, string(domain.TransactionWithdrawal), summary.LatestTransactions[0].Kind)
}

func TestAccountSummaryUnknownAccount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reports.AccountSummary(context.Background(), "0000000000")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestOverviewCountsAccountsByKindAndState(t *testing.T) {
	env := newTestEnv(t)
	checking := env.createAccount(t, env.session, 1000, "checking")
	env.createAccount(t, env.session, 500, "savings")
	env.createAccount(t, env.admin, 250, "savings")

	_, err := env.bank.FreezeAccount(context.Background(), models.AdminActionRequest{
		SessionID:     env.admin,
		AccountNumber: checking,
	})
	require.NoError(t, err)

	resp, err := env.reports.Overview(context.Background())
	require.NoError(t, err)

	overview := resp.Data
	require.Equal(t, 3, overview.TotalAccounts)
	require.Equal(t, 1, overview.CheckingAccounts)
	require.Equal(t, 2, overview.SavingsAccounts)
	require.Equal(t, 1, overview.FrozenAccounts)
	require.Equal(t, "1750.00", overview.TotalBalance)
	require.Len(t, overview.Accounts, 3)
}

func TestTransactionReportAppliesCriteria(t *testing.T) {
	env := newTestEnv(t)
	number := env.createAccount(t, env.session, 1000, "")

	for _, amount := range []int64{50, 400} {
		_, err := env.bank.Deposit(context.Background(), models.DepositRequest{
			SessionID:     env.session,
			AccountNumber: number,
			Amount:        decimal.NewFromInt(amount),
		})
		require.NoError(t, err)
	}

	resp, err := env.reports.TransactionReport(context.Background(), models.ReportCriteria{
		Kind:      "deposit",
		MinAmount: "100",
	})
	require.NoError(t, err)

	report := resp.Data
	require.Equal(t, 2, report.TotalTransactions)
	require.Equal(t, "1400.00", report.TotalAmount)
}

func TestTransactionReportRejectsMalformedAmounts(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.reports.TransactionReport(context.Background(), models.ReportCriteria{
		MinAmount: "not-a-number",
	})
	require.Error(t, err)
	require.False(t, resp.Success)
}
