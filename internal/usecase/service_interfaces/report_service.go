package service_interfaces

import (
	"context"

	"github.com/api-sage/core-banking-ledger/internal/commons"
	"github.com/api-sage/core-banking-ledger/internal/usecase/models"
)

type ReportService interface {
	AccountSummary(ctx context.Context, accountNumber string) (commons.Response[models.AccountSummary], error)
	Overview(ctx context.Context) (commons.Response[models.Overview], error)
	TransactionReport(ctx context.Context, criteria models.ReportCriteria) (commons.Response[models.TransactionReport], error)
	FraudAlerts(ctx context.Context) (commons.Response[[]models.AlertResponse], error)
}
