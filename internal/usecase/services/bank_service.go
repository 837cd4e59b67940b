package services

import (
	"context"
	"errors"

	"github.com/api-sage/core-banking-ledger/internal/commons"
	"github.com/api-sage/core-banking-ledger/internal/domain"
	"github.com/api-sage/core-banking-ledger/internal/ledger"
	"github.com/api-sage/core-banking-ledger/internal/logger"
	"github.com/api-sage/core-banking-ledger/internal/usecase/models"
	"github.com/api-sage/core-banking-ledger/internal/usecase/service_interfaces"
)

// BankService wires the account registry, the global transaction log and the
// fraud scanner behind the auth collaborator's capability checks. Every
// committed transaction is appended to the global log; deposits, withdrawals
// and the outgoing leg of a transfer are additionally fed to the fraud
// scanner.
type BankService struct {
	registry *ledger.Registry
	log      *ledger.TransactionLog
	scanner  *ledger.Scanner
	authz    service_interfaces.Authorizer
}

var _ service_interfaces.BankService = (*BankService)(nil)

func NewBankService(
	registry *ledger.Registry,
	log *ledger.TransactionLog,
	scanner *ledger.Scanner,
	authz service_interfaces.Authorizer,
) *BankService {
	return &BankService{
		registry: registry,
		log:      log,
		scanner:  scanner,
		authz:    authz,
	}
}

func (s *BankService) CreateAccount(_ context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("bank service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	userID, ok := s.authz.ValidateSession(req.SessionID)
	if !ok {
		return commons.FailureResponse[models.AccountResponse]("invalid session", domain.ErrInvalidSession), domain.ErrInvalidSession
	}

	acct, seed, err := s.registry.Create(req.HolderName, req.InitialDeposit, req.AccountKind())
	if err != nil {
		logger.Error("bank service create account failed", err, nil)
		return commons.FailureResponse[models.AccountResponse]("failed to create account", err), err
	}

	s.commit(seed, true)

	if err := s.authz.LinkAccount(userID, acct.Number()); err != nil {
		logger.Error("bank service link account failed", err, logger.Fields{
			"accountNumber": acct.Number(),
			"userId":        userID,
		})
	}

	logger.Info("bank service account created", logger.Fields{
		"accountNumber": acct.Number(),
		"kind":          string(acct.Kind()),
	})
	return commons.SuccessResponse("account created", mapSnapshot(acct.Snapshot())), nil
}

func (s *BankService) Deposit(_ context.Context, req models.DepositRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("bank service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}
	if resp, err := s.requireOwnership(req.SessionID, req.AccountNumber); err != nil {
		return resp, err
	}

	acct, err := s.registry.Get(req.AccountNumber)
	if err != nil {
		return commons.FailureResponse[models.TransactionResponse]("account not found", err), err
	}

	tx, err := acct.Deposit(req.Amount)
	if err != nil {
		logger.Error("bank service deposit failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.FailureResponse[models.TransactionResponse]("deposit failed", err), err
	}

	s.commit(tx, true)
	return commons.SuccessResponse("deposit successful", mapTransaction(tx)), nil
}

// Withdraw surfaces the one partial-effect failure in the system: an
// insufficient balance still commits the flat fee transaction, so on
// ErrInsufficientFunds the fee is appended to the log and scanned before the
// error is returned. Failure does not imply no state change.
func (s *BankService) Withdraw(_ context.Context, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("bank service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}
	if resp, err := s.requireOwnership(req.SessionID, req.AccountNumber); err != nil {
		return resp, err
	}

	acct, err := s.registry.Get(req.AccountNumber)
	if err != nil {
		return commons.FailureResponse[models.TransactionResponse]("account not found", err), err
	}

	tx, err := acct.Withdraw(req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) && tx.ID != "" {
			s.commit(tx, true)
			logger.Warn("bank service withdraw fee applied", logger.Fields{
				"accountNumber": req.AccountNumber,
				"feeAmount":     tx.Amount.StringFixed(2),
			})
			return commons.ErrorResponse[models.TransactionResponse]("insufficient funds, fee applied", err.Error()), err
		}
		logger.Error("bank service withdraw failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.FailureResponse[models.TransactionResponse]("withdrawal failed", err), err
	}

	s.commit(tx, true)
	return commons.SuccessResponse("withdrawal successful", mapTransaction(tx)), nil
}

func (s *BankService) Transfer(_ context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("bank service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	// Only the debit side needs to be owned by the caller; the credit side
	// is a destination.
	if _, ok := s.authz.ValidateSession(req.SessionID); !ok {
		return commons.FailureResponse[models.TransferResponse]("invalid session", domain.ErrInvalidSession), domain.ErrInvalidSession
	}
	if !s.authz.OwnsAccount(req.SessionID, req.FromAccount) {
		return commons.FailureResponse[models.TransferResponse]("not account owner", domain.ErrNotAccountOwner), domain.ErrNotAccountOwner
	}

	out, in, err := s.registry.Transfer(req.FromAccount, req.ToAccount, req.Amount)
	if err != nil {
		logger.Error("bank service transfer failed", err, logger.Fields{
			"fromAccount": req.FromAccount,
			"toAccount":   req.ToAccount,
		})
		return commons.FailureResponse[models.TransferResponse]("transfer failed", err), err
	}

	s.commit(out, true)
	s.commit(in, false)

	return commons.SuccessResponse("transfer successful", models.TransferResponse{
		FromTransaction: mapTransaction(out),
		ToTransaction:   mapTransaction(in),
	}), nil
}

func (s *BankService) ApplyMonthlyInterest(_ context.Context, req models.InterestRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("bank service apply interest request", logger.Fields{
		"accountNumber": req.AccountNumber,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	acct, err := s.registry.Get(req.AccountNumber)
	if err != nil {
		return commons.FailureResponse[models.TransactionResponse]("account not found", err), err
	}

	tx, err := acct.ApplyMonthlyInterest()
	if err != nil {
		logger.Error("bank service apply interest failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.FailureResponse[models.TransactionResponse]("interest application failed", err), err
	}
	if tx.ID == "" {
		return commons.SuccessResponse("no interest due", models.TransactionResponse{}), nil
	}

	s.commit(tx, false)
	return commons.SuccessResponse("interest applied", mapTransaction(tx)), nil
}

func (s *BankService) FreezeAccount(_ context.Context, req models.AdminActionRequest) (commons.Response[models.AdminActionResponse], error) {
	return s.adminAction(req, "freeze", "frozen", func(number string, approved bool) error {
		return s.registry.Freeze(number, approved)
	})
}

func (s *BankService) UnfreezeAccount(_ context.Context, req models.AdminActionRequest) (commons.Response[models.AdminActionResponse], error) {
	return s.adminAction(req, "unfreeze", "active", func(number string, approved bool) error {
		return s.registry.Unfreeze(number, approved)
	})
}

func (s *BankService) DeleteAccount(_ context.Context, req models.AdminActionRequest) (commons.Response[models.AdminActionResponse], error) {
	return s.adminAction(req, "delete", "deleted", func(number string, approved bool) error {
		return s.registry.Delete(number, approved)
	})
}

func (s *BankService) adminAction(req models.AdminActionRequest, action, status string, apply func(string, bool) error) (commons.Response[models.AdminActionResponse], error) {
	logger.Info("bank service admin action request", logger.Fields{
		"action":        action,
		"accountNumber": req.AccountNumber,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AdminActionResponse]("validation failed", err.Error()), err
	}
	if !s.authz.IsAdmin(req.SessionID) {
		return commons.FailureResponse[models.AdminActionResponse]("admin approval required", domain.ErrNotAuthorized), domain.ErrNotAuthorized
	}

	if err := apply(req.AccountNumber, true); err != nil {
		logger.Error("bank service admin action failed", err, logger.Fields{
			"action":        action,
			"accountNumber": req.AccountNumber,
		})
		return commons.FailureResponse[models.AdminActionResponse](action+" failed", err), err
	}

	return commons.SuccessResponse(action+" successful", models.AdminActionResponse{
		AccountNumber: req.AccountNumber,
		Status:        status,
	}), nil
}

// commit appends a transaction to the global log and optionally runs it
// through the fraud scanner.
func (s *BankService) commit(tx domain.Transaction, scan bool) {
	s.log.Append(tx)
	if !scan {
		return
	}
	for _, alert := range s.scanner.Scan(tx) {
		logger.Warn("bank service fraud alert raised", logger.Fields{
			"alertId":       alert.ID,
			"alertKind":     string(alert.Kind),
			"accountNumber": alert.AccountNumber,
			"transactionId": alert.TransactionID,
		})
	}
}

func (s *BankService) requireOwnership(sessionID, accountNumber string) (commons.Response[models.TransactionResponse], error) {
	if _, ok := s.authz.ValidateSession(sessionID); !ok {
		return commons.FailureResponse[models.TransactionResponse]("invalid session", domain.ErrInvalidSession), domain.ErrInvalidSession
	}
	if !s.authz.OwnsAccount(sessionID, accountNumber) {
		return commons.FailureResponse[models.TransactionResponse]("not account owner", domain.ErrNotAccountOwner), domain.ErrNotAccountOwner
	}
	return commons.Response[models.TransactionResponse]{}, nil
}
