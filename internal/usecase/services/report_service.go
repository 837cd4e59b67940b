package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking-ledger/internal/commons"
	"github.com/api-sage/core-banking-ledger/internal/domain"
	"github.com/api-sage/core-banking-ledger/internal/ledger"
	"github.com/api-sage/core-banking-ledger/internal/logger"
	"github.com/api-sage/core-banking-ledger/internal/usecase/models"
	"github.com/api-sage/core-banking-ledger/internal/usecase/service_interfaces"
)

const summaryLatestCount = 5

// ReportService exposes the read-only query surfaces consumed by the report
// and UI collaborators. Nothing here mutates the ledger.
type ReportService struct {
	registry *ledger.Registry
	log      *ledger.TransactionLog
	scanner  *ledger.Scanner
}

var _ service_interfaces.ReportService = (*ReportService)(nil)

func NewReportService(registry *ledger.Registry, log *ledger.TransactionLog, scanner *ledger.Scanner) *ReportService {
	return &ReportService{
		registry: registry,
		log:      log,
		scanner:  scanner,
	}
}

func (s *ReportService) AccountSummary(_ context.Context, accountNumber string) (commons.Response[models.AccountSummary], error) {
	acct, err := s.registry.Get(accountNumber)
	if err != nil {
		return commons.FailureResponse[models.AccountSummary]("account not found", err), err
	}

	history := ledger.NewTransactionFilter(s.log.ByAccount(accountNumber))
	summary := models.AccountSummary{
		Account:            mapSnapshot(acct.Snapshot()),
		TransactionCount:   history.Count(),
		TotalDeposits:      history.ByKind(domain.TransactionDeposit).TotalAmount().StringFixed(2),
		TotalWithdrawals:   history.ByKind(domain.TransactionWithdrawal).TotalAmount().StringFixed(2),
		LatestTransactions: mapTransactions(history.SortByDate(false).Limit(summaryLatestCount).Results()),
	}
	return commons.SuccessResponse("account summary", summary), nil
}

func (s *ReportService) Overview(_ context.Context) (commons.Response[models.Overview], error) {
	snapshots := s.registry.All()

	overview := models.Overview{
		TotalAccounts: len(snapshots),
		Accounts:      make([]models.AccountResponse, 0, len(snapshots)),
	}
	total := decimal.Zero
	for _, snap := range snapshots {
		total = total.Add(snap.Balance)
		switch snap.Kind {
		case domain.AccountChecking:
			overview.CheckingAccounts++
		case domain.AccountSavings:
			overview.SavingsAccounts++
		}
		if snap.Frozen {
			overview.FrozenAccounts++
		}
		overview.Accounts = append(overview.Accounts, mapSnapshot(snap))
	}
	overview.TotalBalance = total.StringFixed(2)

	return commons.SuccessResponse("accounts overview", overview), nil
}

func (s *ReportService) TransactionReport(_ context.Context, criteria models.ReportCriteria) (commons.Response[models.TransactionReport], error) {
	parsed, err := parseCriteria(criteria)
	if err != nil {
		logger.Error("report service invalid criteria", err, nil)
		return commons.FailureResponse[models.TransactionReport]("validation failed", err), err
	}

	matched := s.log.Filter().Apply(parsed)
	report := models.TransactionReport{
		TotalTransactions: matched.Count(),
		TotalAmount:       matched.TotalAmount().StringFixed(2),
		Transactions:      mapTransactions(matched.Results()),
	}
	return commons.SuccessResponse("transaction report", report), nil
}

func (s *ReportService) FraudAlerts(_ context.Context) (commons.Response[[]models.AlertResponse], error) {
	alerts := s.scanner.Alerts()
	out := make([]models.AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		out = append(out, mapAlert(alert))
	}
	return commons.SuccessResponse("fraud alerts", out), nil
}

func parseCriteria(criteria models.ReportCriteria) (ledger.Criteria, error) {
	parsed := ledger.Criteria{
		Kind:          domain.TransactionKind(strings.ToLower(strings.TrimSpace(criteria.Kind))),
		StartDate:     criteria.StartDate,
		EndDate:       criteria.EndDate,
		AccountNumber: strings.TrimSpace(criteria.AccountNumber),
		Description:   strings.TrimSpace(criteria.Description),
	}

	if trimmed := strings.TrimSpace(criteria.MinAmount); trimmed != "" {
		min, err := decimal.NewFromString(trimmed)
		if err != nil {
			return ledger.Criteria{}, err
		}
		parsed.MinAmount = &min
	}
	if trimmed := strings.TrimSpace(criteria.MaxAmount); trimmed != "" {
		max, err := decimal.NewFromString(trimmed)
		if err != nil {
			return ledger.Criteria{}, err
		}
		parsed.MaxAmount = &max
	}
	return parsed, nil
}
