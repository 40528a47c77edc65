package repo_interfaces

import (
	"context"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
)

// TransactionStore owns the durable transaction log. Append adds a single
// record; the log is never rewritten or edited.
type TransactionStore interface {
	ReadTransactions(ctx context.Context) ([]domain.Transaction, error)
	Append(ctx context.Context, transaction domain.Transaction) error
}
