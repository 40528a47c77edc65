package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/shopspring/decimal"
)

func testAccount(number string, balance string) domain.Account {
	amount, _ := decimal.NewFromString(balance)
	return domain.Account{
		AccountNumber: number,
		Name:          "Ada Lovelace",
		HashedPin:     "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		Balance:       amount,
		CreatedAt:     time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local),
	}
}

func TestAccountStoreReadMissingFile(t *testing.T) {
	store := NewAccountStore(t.TempDir())

	accounts, err := store.ReadAccounts(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("expected empty collection, got %d accounts", len(accounts))
	}
}

func TestAccountStoreRoundTrip(t *testing.T) {
	store := NewAccountStore(t.TempDir())
	first := testAccount("1000000001", "100.50")
	second := testAccount("1000000002", "0.00")

	err := store.Mutate(context.Background(), func(accounts []domain.Account) ([]domain.Account, error) {
		return append(accounts, first, second), nil
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	accounts, err := store.ReadAccounts(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	got := accounts[0]
	if got.AccountNumber != first.AccountNumber || got.Name != first.Name || got.HashedPin != first.HashedPin {
		t.Fatalf("account did not round-trip: %+v", got)
	}
	if !got.Balance.Equal(first.Balance) {
		t.Fatalf("expected balance %s, got %s", first.Balance, got.Balance)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected creation date %v, got %v", first.CreatedAt, got.CreatedAt)
	}
}

func TestAccountStoreSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	content := "1000000001|Ada Lovelace|abc123|100.00|2024-03-01T09:30:00\n" +
		"not a record\n" +
		"1000000002|Grace Hopper|def456|not-a-number|2024-03-01T09:30:00\n" +
		"1000000003|Alan Turing|ghi789|25.00|2024-03-01T09:30:00\n"
	if err := os.WriteFile(filepath.Join(dir, "accounts.txt"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewAccountStore(dir)
	accounts, err := store.ReadAccounts(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 parsable accounts, got %d", len(accounts))
	}
	if accounts[0].AccountNumber != "1000000001" || accounts[1].AccountNumber != "1000000003" {
		t.Fatalf("unexpected accounts survived: %+v", accounts)
	}
}

func TestAccountStoreMutateAbandonsRewriteOnError(t *testing.T) {
	store := NewAccountStore(t.TempDir())
	seedErr := store.Mutate(context.Background(), func(accounts []domain.Account) ([]domain.Account, error) {
		return append(accounts, testAccount("1000000001", "50.00")), nil
	})
	if seedErr != nil {
		t.Fatal(seedErr)
	}

	wantErr := errors.New("abandon")
	err := store.Mutate(context.Background(), func(accounts []domain.Account) ([]domain.Account, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected callback error back, got %v", err)
	}

	accounts, err := store.ReadAccounts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected collection untouched, got %d accounts", len(accounts))
	}
}
