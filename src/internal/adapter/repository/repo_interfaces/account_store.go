package repo_interfaces

import (
	"context"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
)

// AccountStore owns the durable account collection. Mutate runs the whole
// reload-mutate-rewrite sequence as one critical section: the callback
// receives the freshly loaded collection and returns the collection to
// rewrite, or an error to abandon the rewrite.
type AccountStore interface {
	ReadAccounts(ctx context.Context) ([]domain.Account, error)
	Mutate(ctx context.Context, fn func(accounts []domain.Account) ([]domain.Account, error)) error
}
