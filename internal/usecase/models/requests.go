package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking-ledger/internal/domain"
)

type CreateAccountRequest struct {
	SessionID      string          `json:"sessionId"`
	HolderName     string          `json:"holderName"`
	InitialDeposit decimal.Decimal `json:"initialDeposit"`
	Kind           string          `json:"kind,omitempty"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.SessionID) == "" {
		errs = append(errs, "sessionId is required")
	}
	if strings.TrimSpace(r.HolderName) == "" {
		errs = append(errs, "holderName is required")
	}
	if r.InitialDeposit.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "initialDeposit must be greater than zero")
	}

	kind := strings.ToLower(strings.TrimSpace(r.Kind))
	if kind != "" && kind != string(domain.AccountChecking) && kind != string(domain.AccountSavings) {
		errs = append(errs, "kind must be one of checking, savings")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// AccountKind maps the request field to the domain kind, defaulting to
// checking.
func (r CreateAccountRequest) AccountKind() domain.AccountKind {
	kind := strings.ToLower(strings.TrimSpace(r.Kind))
	if kind == string(domain.AccountSavings) {
		return domain.AccountSavings
	}
	return domain.AccountChecking
}

type DepositRequest struct {
	SessionID     string          `json:"sessionId"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r DepositRequest) Validate() error {
	return validateMovement(r.SessionID, r.AccountNumber, r.Amount)
}

type WithdrawRequest struct {
	SessionID     string          `json:"sessionId"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	return validateMovement(r.SessionID, r.AccountNumber, r.Amount)
}

type TransferRequest struct {
	SessionID   string          `json:"sessionId"`
	FromAccount string          `json:"fromAccount"`
	ToAccount   string          `json:"toAccount"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.SessionID) == "" {
		errs = append(errs, "sessionId is required")
	}
	if !isTenDigits(r.FromAccount) {
		errs = append(errs, "fromAccount must be exactly 10 digits")
	}
	if !isTenDigits(r.ToAccount) {
		errs = append(errs, "toAccount must be exactly 10 digits")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type InterestRequest struct {
	AccountNumber string `json:"accountNumber"`
}

func (r InterestRequest) Validate() error {
	if !isTenDigits(r.AccountNumber) {
		return errors.New("accountNumber must be exactly 10 digits")
	}
	return nil
}

// AdminActionRequest gates freeze, unfreeze and delete.
type AdminActionRequest struct {
	SessionID     string `json:"sessionId"`
	AccountNumber string `json:"accountNumber"`
}

func (r AdminActionRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.SessionID) == "" {
		errs = append(errs, "sessionId is required")
	}
	if !isTenDigits(r.AccountNumber) {
		errs = append(errs, "accountNumber must be exactly 10 digits")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateMovement(sessionID, accountNumber string, amount decimal.Decimal) error {
	var errs []string

	if strings.TrimSpace(sessionID) == "" {
		errs = append(errs, "sessionId is required")
	}
	if !isTenDigits(accountNumber) {
		errs = append(errs, "accountNumber must be exactly 10 digits")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func isTenDigits(value string) bool {
	trimmed := strings.TrimSpace(value)
	return len(trimmed) == 10 && digitsOnly(trimmed)
}

func digitsOnly(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
