package file

import (
	"fmt"
	"strings"
	"time"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/shopspring/decimal"
)

// TimeLayout is the persisted timestamp format: local date-time, second
// precision, no zone. It round-trips exactly through Parse/Format.
const TimeLayout = "2006-01-02T15:04:05"

const (
	accountsFileName     = "accounts.txt"
	transactionsFileName = "transactions.txt"
	settingsFileName     = "settings.txt"
)

// encodeAccount renders one accounts-file line:
// accountNumber|name|hashedPin|balance|creationDate
func encodeAccount(account domain.Account) string {
	return strings.Join([]string{
		account.AccountNumber,
		account.Name,
		account.HashedPin,
		account.Balance.StringFixed(2),
		account.CreatedAt.Format(TimeLayout),
	}, "|")
}

func parseAccount(line string) (domain.Account, error) {
	parts := strings.Split(line, "|")
	if len(parts) < 5 {
		return domain.Account{}, fmt.Errorf("expected 5 fields, got %d", len(parts))
	}

	balance, err := decimal.NewFromString(parts[3])
	if err != nil {
		return domain.Account{}, fmt.Errorf("parse balance %q: %w", parts[3], err)
	}

	createdAt, err := time.ParseInLocation(TimeLayout, parts[4], time.Local)
	if err != nil {
		return domain.Account{}, fmt.Errorf("parse creation date %q: %w", parts[4], err)
	}

	return domain.Account{
		AccountNumber: parts[0],
		Name:          parts[1],
		HashedPin:     parts[2],
		Balance:       balance,
		CreatedAt:     createdAt,
	}, nil
}

// encodeTransaction renders one transactions-file line:
// transactionId|accountNumber|targetAccountNumber|type|amount|timestamp|description
// targetAccountNumber and description may be empty.
func encodeTransaction(transaction domain.Transaction) string {
	return strings.Join([]string{
		transaction.TransactionID,
		transaction.AccountNumber,
		transaction.TargetAccountNumber,
		string(transaction.Type),
		transaction.Amount.StringFixed(2),
		transaction.Timestamp.Format(TimeLayout),
		transaction.Description,
	}, "|")
}

func parseTransaction(line string) (domain.Transaction, error) {
	// SplitN keeps any pipes inside the trailing description intact.
	parts := strings.SplitN(line, "|", 7)
	if len(parts) < 6 {
		return domain.Transaction{}, fmt.Errorf("expected at least 6 fields, got %d", len(parts))
	}

	transactionType, ok := domain.ParseTransactionType(parts[3])
	if !ok {
		return domain.Transaction{}, fmt.Errorf("unknown transaction type %q", parts[3])
	}

	amount, err := decimal.NewFromString(parts[4])
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("parse amount %q: %w", parts[4], err)
	}

	timestamp, err := time.ParseInLocation(TimeLayout, parts[5], time.Local)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("parse timestamp %q: %w", parts[5], err)
	}

	transaction := domain.Transaction{
		TransactionID:       parts[0],
		AccountNumber:       parts[1],
		TargetAccountNumber: parts[2],
		Type:                transactionType,
		Amount:              amount,
		Timestamp:           timestamp,
	}
	if len(parts) > 6 {
		transaction.Description = parts[6]
	}

	return transaction, nil
}
