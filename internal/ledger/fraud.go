package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking-ledger/internal/domain"
)

// consecutiveWindowSize is the number of transactions the per-account
// pattern window holds.
const consecutiveWindowSize = 3

type ScannerConfig struct {
	// LargeAmountThreshold: any single transaction strictly above this
	// amount raises a large-transaction alert.
	LargeAmountThreshold decimal.Decimal
	// ConsecutiveMaxGap is the largest gap (inclusive) allowed between
	// adjacent transactions for the consecutive-pattern alert.
	ConsecutiveMaxGap time.Duration
}

func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		LargeAmountThreshold: decimal.NewFromInt(10000),
		ConsecutiveMaxGap:    5 * time.Minute,
	}
}

// Scanner consumes the transaction stream and raises alerts. It keeps a
// bounded window of the last three transactions per account and an unbounded
// list of every alert raised. The window update and check run under one
// mutex so two concurrent transactions on the same account cannot complete
// the same window twice.
type Scanner struct {
	mu      sync.Mutex
	cfg     ScannerConfig
	windows map[string][]domain.Transaction
	alerts  []domain.Alert
	clock   Clock
}

func NewScanner(cfg ScannerConfig, clock Clock) *Scanner {
	return &Scanner{
		cfg:     cfg,
		windows: make(map[string][]domain.Transaction),
		clock:   clock,
	}
}

// Scan runs both checks in order, large first, and returns the alerts raised
// for this one transaction (zero, one or two).
func (s *Scanner) Scan(tx domain.Transaction) []domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raised []domain.Alert
	if alert := s.checkLargeLocked(tx); alert != nil {
		raised = append(raised, *alert)
	}
	if alert := s.checkConsecutiveLocked(tx); alert != nil {
		raised = append(raised, *alert)
	}
	return raised
}

// CheckLargeTransaction runs only the large-amount heuristic.
func (s *Scanner) CheckLargeTransaction(tx domain.Transaction) *domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkLargeLocked(tx)
}

// CheckConsecutivePattern runs only the sliding-window heuristic.
func (s *Scanner) CheckConsecutivePattern(tx domain.Transaction) *domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkConsecutiveLocked(tx)
}

func (s *Scanner) Alerts() []domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

func (s *Scanner) ClearAlerts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = nil
}

func (s *Scanner) checkLargeLocked(tx domain.Transaction) *domain.Alert {
	if !tx.Amount.GreaterThan(s.cfg.LargeAmountThreshold) {
		return nil
	}

	alert := domain.Alert{
		ID:            newAlertID(),
		Kind:          domain.AlertLargeTransaction,
		AccountNumber: tx.SourceAccount,
		TransactionID: tx.ID,
		Amount:        tx.Amount,
		Message:       fmt.Sprintf("transaction above %s on account %s", s.cfg.LargeAmountThreshold.String(), tx.SourceAccount),
		Timestamp:     tx.Timestamp,
	}
	s.alerts = append(s.alerts, alert)
	return &alert
}

// checkConsecutiveLocked slides tx into the account's window, evicting the
// oldest entry past three. When the window holds exactly three transactions
// and both adjacent gaps are within the configured maximum, it raises an
// alert and resets the window to empty, so a tight burst alerts once per
// three-transaction group rather than once per overlapping window.
func (s *Scanner) checkConsecutiveLocked(tx domain.Transaction) *domain.Alert {
	window := append(s.windows[tx.SourceAccount], tx)
	if len(window) > consecutiveWindowSize {
		window = window[1:]
	}
	s.windows[tx.SourceAccount] = window

	if len(window) != consecutiveWindowSize {
		return nil
	}
	if !s.withinGap(window[0], window[1]) || !s.withinGap(window[1], window[2]) {
		return nil
	}

	alert := domain.Alert{
		ID:            newAlertID(),
		Kind:          domain.AlertConsecutiveTransactions,
		AccountNumber: tx.SourceAccount,
		TransactionID: tx.ID,
		Amount:        tx.Amount,
		Message:       fmt.Sprintf("%d transactions within %s on account %s", consecutiveWindowSize, s.cfg.ConsecutiveMaxGap, tx.SourceAccount),
		Timestamp:     s.clock.Now(),
	}
	s.alerts = append(s.alerts, alert)
	s.windows[tx.SourceAccount] = nil
	return &alert
}

func (s *Scanner) withinGap(earlier, later domain.Transaction) bool {
	gap := later.Timestamp.Sub(earlier.Timestamp)
	if gap < 0 {
		gap = -gap
	}
	return gap <= s.cfg.ConsecutiveMaxGap
}
