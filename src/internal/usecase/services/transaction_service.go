package services

import (
	"context"
	"sort"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/adapter/repository/repo_interfaces"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/commons"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/logger"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/security"
	"github.com/shopspring/decimal"
)

// TransactionService owns the append-only money-movement log. Records are
// immutable once written; history reads always reload from the store.
type TransactionService struct {
	transactionStore repo_interfaces.TransactionStore
}

func NewTransactionService(transactionStore repo_interfaces.TransactionStore) *TransactionService {
	return &TransactionService{transactionStore: transactionStore}
}

func (s *TransactionService) Record(ctx context.Context, accountNumber string, transactionType domain.TransactionType, amount decimal.Decimal, description string) (commons.Response[domain.Transaction], error) {
	transaction := domain.Transaction{
		TransactionID: security.GenerateTransactionID(),
		AccountNumber: accountNumber,
		Type:          transactionType,
		Amount:        amount,
		Timestamp:     now(),
		Description:   description,
	}

	if err := s.transactionStore.Append(ctx, transaction); err != nil {
		logger.Error("transaction service record append failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"type":          string(transactionType),
		})
		return commons.ErrorResponse[domain.Transaction]("failed to record transaction", "Unable to record transaction right now"), err
	}

	logger.Info("transaction service record success", logger.Fields{
		"transactionId": transaction.TransactionID,
		"accountNumber": transaction.AccountNumber,
		"type":          string(transaction.Type),
		"amount":        transaction.Amount.StringFixed(2),
	})

	return commons.SuccessResponse("transaction recorded successfully", transaction), nil
}

// RecordTransfer appends both legs of a transfer: the sender leg typed
// TRANSFER referencing the counterparty, and the receiver leg typed DEPOSIT
// with no target. The legs share one timestamp but have distinct
// identifiers; no correlation key ties them together. Returns the sender
// leg.
func (s *TransactionService) RecordTransfer(ctx context.Context, fromAccountNumber string, toAccountNumber string, amount decimal.Decimal) (commons.Response[domain.Transaction], error) {
	timestamp := now()

	senderLeg := domain.Transaction{
		TransactionID:       security.GenerateTransactionID(),
		AccountNumber:       fromAccountNumber,
		TargetAccountNumber: toAccountNumber,
		Type:                domain.TransactionTypeTransfer,
		Amount:              amount,
		Timestamp:           timestamp,
		Description:         "Transfer to " + toAccountNumber,
	}
	receiverLeg := domain.Transaction{
		TransactionID: security.GenerateTransactionID(),
		AccountNumber: toAccountNumber,
		Type:          domain.TransactionTypeDeposit,
		Amount:        amount,
		Timestamp:     timestamp,
		Description:   "Transfer from " + fromAccountNumber,
	}

	if err := s.transactionStore.Append(ctx, senderLeg); err != nil {
		logger.Error("transaction service record transfer sender leg failed", err, logger.Fields{
			"fromAccountNumber": fromAccountNumber,
			"toAccountNumber":   toAccountNumber,
		})
		return commons.ErrorResponse[domain.Transaction]("failed to record transfer", "Unable to record transfer right now"), err
	}
	if err := s.transactionStore.Append(ctx, receiverLeg); err != nil {
		logger.Error("transaction service record transfer receiver leg failed", err, logger.Fields{
			"fromAccountNumber": fromAccountNumber,
			"toAccountNumber":   toAccountNumber,
		})
		return commons.ErrorResponse[domain.Transaction]("failed to record transfer", "Unable to record transfer right now"), err
	}

	logger.Info("transaction service record transfer success", logger.Fields{
		"senderTransactionId":   senderLeg.TransactionID,
		"receiverTransactionId": receiverLeg.TransactionID,
		"amount":                amount.StringFixed(2),
	})

	return commons.SuccessResponse("transfer recorded successfully", senderLeg), nil
}

// HistoryFor returns every record owned by the account or naming it as the
// transfer target, most recent first.
func (s *TransactionService) HistoryFor(ctx context.Context, accountNumber string) (commons.Response[[]domain.Transaction], error) {
	transactions, err := s.transactionStore.ReadTransactions(ctx)
	if err != nil {
		logger.Error("transaction service history load failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[[]domain.Transaction]("failed to load history", "Unable to load history right now"), err
	}

	// Walk the log newest-append-first so records sharing a second still
	// come back latest first after the stable sort.
	history := []domain.Transaction{}
	for i := len(transactions) - 1; i >= 0; i-- {
		transaction := transactions[i]
		if transaction.AccountNumber == accountNumber || transaction.TargetAccountNumber == accountNumber {
			history = append(history, transaction)
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.After(history[j].Timestamp)
	})

	return commons.SuccessResponse("history fetched successfully", history), nil
}

// MiniStatement is HistoryFor truncated to the limit most recent entries.
func (s *TransactionService) MiniStatement(ctx context.Context, accountNumber string, limit int) (commons.Response[[]domain.Transaction], error) {
	resp, err := s.HistoryFor(ctx, accountNumber)
	if err != nil {
		return resp, err
	}

	history := *resp.Data
	if limit >= 0 && len(history) > limit {
		history = history[:limit]
	}

	return commons.SuccessResponse("mini statement fetched successfully", history), nil
}
