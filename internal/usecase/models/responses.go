package models

import "time"

type AccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
	Balance       string `json:"balance"`
	Kind          string `json:"kind"`
	Frozen        bool   `json:"frozen"`
	CreatedAt     string `json:"createdAt"`

	InterestRate          string `json:"interestRate,omitempty"`
	LastInterestAppliedAt string `json:"lastInterestAppliedAt,omitempty"`
	EligibleForInterest   bool   `json:"eligibleForInterest,omitempty"`
}

type TransactionResponse struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Amount        string `json:"amount"`
	SourceAccount string `json:"sourceAccount"`
	TargetAccount string `json:"targetAccount,omitempty"`
	Description   string `json:"description"`
	Timestamp     string `json:"timestamp"`
}

// TransferResponse carries both legs of a completed transfer, debit side
// first.
type TransferResponse struct {
	FromTransaction TransactionResponse `json:"fromTransaction"`
	ToTransaction   TransactionResponse `json:"toTransaction"`
}

type AdminActionResponse struct {
	AccountNumber string `json:"accountNumber"`
	Status        string `json:"status"`
}

type AccountSummary struct {
	Account            AccountResponse       `json:"account"`
	TransactionCount   int                   `json:"transactionCount"`
	TotalDeposits      string                `json:"totalDeposits"`
	TotalWithdrawals   string                `json:"totalWithdrawals"`
	LatestTransactions []TransactionResponse `json:"latestTransactions"`
}

type Overview struct {
	TotalAccounts    int               `json:"totalAccounts"`
	TotalBalance     string            `json:"totalBalance"`
	CheckingAccounts int               `json:"checkingAccounts"`
	SavingsAccounts  int               `json:"savingsAccounts"`
	FrozenAccounts   int               `json:"frozenAccounts"`
	Accounts         []AccountResponse `json:"accounts"`
}

// ReportCriteria narrows a transaction report. Zero-valued fields are
// ignored; dates apply only when both are set.
type ReportCriteria struct {
	Kind          string    `json:"kind,omitempty"`
	StartDate     time.Time `json:"startDate,omitempty"`
	EndDate       time.Time `json:"endDate,omitempty"`
	AccountNumber string    `json:"accountNumber,omitempty"`
	MinAmount     string    `json:"minAmount,omitempty"`
	MaxAmount     string    `json:"maxAmount,omitempty"`
	Description   string    `json:"description,omitempty"`
}

type TransactionReport struct {
	TotalTransactions int                   `json:"totalTransactions"`
	TotalAmount       string                `json:"totalAmount"`
	Transactions      []TransactionResponse `json:"transactions"`
}

type AlertResponse struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	AccountNumber string `json:"accountNumber"`
	TransactionID string `json:"transactionId,omitempty"`
	Amount        string `json:"amount"`
	Message       string `json:"message"`
	Timestamp     string `json:"timestamp"`
}
