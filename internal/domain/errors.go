package domain

import "errors"

var ErrInvalidAmount = errors.New("amount must be greater than zero")
var ErrInvalidHolder = errors.New("account holder name is required")
var ErrInvalidAccountKind = errors.New("unknown account kind")
var ErrAccountFrozen = errors.New("account is frozen")
var ErrAccountNotFound = errors.New("account not found")
var ErrDailyLimitExceeded = errors.New("daily withdrawal limit exceeded")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrInvalidRate = errors.New("interest rate cannot be negative")
var ErrNonZeroBalance = errors.New("account balance must be zero before deletion")
var ErrNotSavingsAccount = errors.New("operation applies only to savings accounts")
var ErrSameAccount = errors.New("source and target accounts are the same")
var ErrNotAuthorized = errors.New("admin approval required")
var ErrInvalidSession = errors.New("invalid session")
var ErrNotAccountOwner = errors.New("caller does not own this account")
