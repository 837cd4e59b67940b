package service_interfaces

import (
	"context"

	"github.com/api-sage/core-banking-ledger/internal/commons"
	"github.com/api-sage/core-banking-ledger/internal/usecase/models"
)

type BankService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.TransactionResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error)
	Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	ApplyMonthlyInterest(ctx context.Context, req models.InterestRequest) (commons.Response[models.TransactionResponse], error)
	FreezeAccount(ctx context.Context, req models.AdminActionRequest) (commons.Response[models.AdminActionResponse], error)
	UnfreezeAccount(ctx context.Context, req models.AdminActionRequest) (commons.Response[models.AdminActionResponse], error)
	DeleteAccount(ctx context.Context, req models.AdminActionRequest) (commons.Response[models.AdminActionResponse], error)
}
