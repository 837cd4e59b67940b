package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking-ledger/internal/auth"
	"github.com/api-sage/core-banking-ledger/internal/config"
	"github.com/api-sage/core-banking-ledger/internal/ledger"
	"github.com/api-sage/core-banking-ledger/internal/logger"
	"github.com/api-sage/core-banking-ledger/internal/usecase/models"
	"github.com/api-sage/core-banking-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Configure(cfg.LogLevel)

	clock := ledger.NewClock()
	registry := ledger.NewRegistry(cfg.Limits(), clock)
	txlog := ledger.NewTransactionLog()
	scanner := ledger.NewScanner(cfg.ScannerConfig(), clock)
	authManager := auth.NewManager()

	bank := services.NewBankService(registry, txlog, scanner, authManager)
	reports := services.NewReportService(registry, txlog, scanner)

	if _, err := authManager.CreateUser(cfg.AdminUsername, cfg.AdminPassword, auth.RoleAdmin); err != nil {
		log.Fatalf("seed admin user: %v", err)
	}

	logger.Info("ledger engine ready", logger.Fields{
		"dailyWithdrawalLimit":  cfg.DailyWithdrawalLimit.String(),
		"largeTransactionLimit": cfg.LargeTransactionLimit.String(),
	})

	if err := runSmokeScenario(bank, reports, authManager); err != nil {
		log.Fatalf("smoke scenario: %v", err)
	}
}

// runSmokeScenario exercises the full deposit/withdraw/transfer/interest
// path against a fresh engine so a misconfigured build fails at startup
// instead of at the first teller request.
func runSmokeScenario(bank *services.BankService, reports *services.ReportService, authManager *auth.Manager) error {
	ctx := context.Background()

	if _, err := authManager.CreateUser("teller01", "T3ller!pass", auth.RoleUser); err != nil {
		return err
	}
	session, err := authManager.Login("teller01", "T3ller!pass")
	if err != nil {
		return err
	}

	checking, err := bank.CreateAccount(ctx, models.CreateAccountRequest{
		SessionID:      session,
		HolderName:     "Smoke Test Checking",
		InitialDeposit: decimal.NewFromInt(1000),
	})
	if err != nil {
		return err
	}
	savings, err := bank.CreateAccount(ctx, models.CreateAccountRequest{
		SessionID:      session,
		HolderName:     "Smoke Test Savings",
		InitialDeposit: decimal.NewFromInt(750),
		Kind:           "savings",
	})
	if err != nil {
		return err
	}

	if _, err := bank.Deposit(ctx, models.DepositRequest{
		SessionID:     session,
		AccountNumber: checking.Data.AccountNumber,
		Amount:        decimal.NewFromInt(250),
	}); err != nil {
		return err
	}
	if _, err := bank.Withdraw(ctx, models.WithdrawRequest{
		SessionID:     session,
		AccountNumber: checking.Data.AccountNumber,
		Amount:        decimal.NewFromInt(100),
	}); err != nil {
		return err
	}
	if _, err := bank.Transfer(ctx, models.TransferRequest{
		SessionID:   session,
		FromAccount: checking.Data.AccountNumber,
		ToAccount:   savings.Data.AccountNumber,
		Amount:      decimal.NewFromInt(200),
	}); err != nil {
		return err
	}
	if _, err := bank.ApplyMonthlyInterest(ctx, models.InterestRequest{
		AccountNumber: savings.Data.AccountNumber,
	}); err != nil {
		return err
	}

	overview, err := reports.Overview(ctx)
	if err != nil {
		return err
	}
	logger.Info("smoke scenario complete", logger.Fields{
		"totalAccounts": overview.Data.TotalAccounts,
		"totalBalance":  overview.Data.TotalBalance,
	})
	return nil
}
