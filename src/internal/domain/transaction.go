package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// ParseTransactionType maps the stored literal back to a TransactionType.
func ParseTransactionType(raw string) (TransactionType, bool) {
	switch TransactionType(raw) {
	case TransactionTypeDeposit, TransactionTypeWithdraw, TransactionTypeTransfer:
		return TransactionType(raw), true
	}
	return "", false
}

// Transaction is one append-only row in the money-movement log. Amounts
// never carry sign; direction is implied by Type and which account field
// is "self". A transfer produces two rows: the sender leg (TRANSFER,
// TargetAccountNumber set) and the receiver leg (DEPOSIT, no target).
type Transaction struct {
	TransactionID       string
	AccountNumber       string
	TargetAccountNumber string
	Type                TransactionType
	Amount              decimal.Decimal
	Timestamp           time.Time
	Description         string
}
