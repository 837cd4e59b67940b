package ledger

import "github.com/shopspring/decimal"

// Limits carries the policy amounts every account operation checks against.
// A registry and all accounts it creates share one Limits value.
type Limits struct {
	DailyWithdrawalLimit  decimal.Decimal
	InsufficientFundsFee  decimal.Decimal
	MinBalanceForInterest decimal.Decimal
	DefaultSavingsRate    decimal.Decimal
}

func DefaultLimits() Limits {
	return Limits{
		DailyWithdrawalLimit:  decimal.NewFromInt(500),
		InsufficientFundsFee:  decimal.NewFromInt(5),
		MinBalanceForInterest: decimal.NewFromInt(500),
		DefaultSavingsRate:    decimal.NewFromFloat(0.02),
	}
}
