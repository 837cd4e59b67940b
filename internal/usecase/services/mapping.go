package services

import (
	"time"

	"github.com/api-sage/core-banking-ledger/internal/domain"
	"github.com/api-sage/core-banking-ledger/internal/usecase/models"
)

func mapTransaction(tx domain.Transaction) models.TransactionResponse {
	return models.TransactionResponse{
		ID:            tx.ID,
		Kind:          string(tx.Kind),
		Amount:        tx.Amount.StringFixed(2),
		SourceAccount: tx.SourceAccount,
		TargetAccount: tx.TargetAccount,
		Description:   tx.Description,
		Timestamp:     tx.Timestamp.Format(time.RFC3339Nano),
	}
}

func mapTransactions(txs []domain.Transaction) []models.TransactionResponse {
	out := make([]models.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, mapTransaction(tx))
	}
	return out
}

func mapSnapshot(snap domain.AccountSnapshot) models.AccountResponse {
	resp := models.AccountResponse{
		AccountNumber: snap.AccountNumber,
		HolderName:    snap.HolderName,
		Balance:       snap.Balance.StringFixed(2),
		Kind:          string(snap.Kind),
		Frozen:        snap.Frozen,
		CreatedAt:     snap.CreatedAt.Format(time.RFC3339Nano),
	}
	if snap.InterestRate != nil {
		resp.InterestRate = snap.InterestRate.String()
	}
	if snap.LastInterestAppliedAt != nil {
		resp.LastInterestAppliedAt = snap.LastInterestAppliedAt.Format(time.RFC3339Nano)
	}
	resp.EligibleForInterest = snap.EligibleForInterest
	return resp
}

func mapAlert(alert domain.Alert) models.AlertResponse {
	return models.AlertResponse{
		ID:            alert.ID,
		Kind:          string(alert.Kind),
		AccountNumber: alert.AccountNumber,
		TransactionID: alert.TransactionID,
		Amount:        alert.Amount.StringFixed(2),
		Message:       alert.Message,
		Timestamp:     alert.Timestamp.Format(time.RFC3339Nano),
	}
}
