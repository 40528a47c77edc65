package service_interfaces

import (
	"context"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/commons"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionService interface {
	Record(ctx context.Context, accountNumber string, transactionType domain.TransactionType, amount decimal.Decimal, description string) (commons.Response[domain.Transaction], error)
	RecordTransfer(ctx context.Context, fromAccountNumber string, toAccountNumber string, amount decimal.Decimal) (commons.Response[domain.Transaction], error)
	HistoryFor(ctx context.Context, accountNumber string) (commons.Response[[]domain.Transaction], error)
	MiniStatement(ctx context.Context, accountNumber string, limit int) (commons.Response[[]domain.Transaction], error)
}
