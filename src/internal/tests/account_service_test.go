package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/commons"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/security"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/usecase/models"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

// accountStoreStub keeps the collection in memory and honors the same
// mutate-or-abandon contract as the file-backed store.
type accountStoreStub struct {
	accounts  []domain.Account
	readErr   error
	mutateErr error
}

func (s *accountStoreStub) ReadAccounts(_ context.Context) ([]domain.Account, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	out := make([]domain.Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

func (s *accountStoreStub) Mutate(_ context.Context, fn func(accounts []domain.Account) ([]domain.Account, error)) error {
	if s.mutateErr != nil {
		return s.mutateErr
	}

	working := make([]domain.Account, len(s.accounts))
	copy(working, s.accounts)

	updated, err := fn(working)
	if err != nil {
		return err
	}

	s.accounts = updated
	return nil
}

func seedAccount(number string, pin string, balance int64) domain.Account {
	return domain.Account{
		AccountNumber: number,
		Name:          "Ada Lovelace",
		HashedPin:     security.HashPin(pin),
		Balance:       decimal.NewFromInt(balance),
	}
}

func TestAccountServiceOpenAccountSuccess(t *testing.T) {
	store := &accountStoreStub{}
	svc := services.NewAccountService(store)

	resp, err := svc.OpenAccount(context.Background(), models.OpenAccountRequest{Name: "Alice", Pin: "1234"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatal("expected successful response with data")
	}

	account := *resp.Data
	if !security.IsAccountNumber(account.AccountNumber) {
		t.Fatalf("expected 10 digit account number, got %q", account.AccountNumber)
	}
	if !account.Balance.IsZero() {
		t.Fatalf("expected zero opening balance, got %s", account.Balance)
	}
	if account.HashedPin == "" || account.HashedPin == "1234" {
		t.Fatal("expected hashed pin before persistence")
	}
	if account.CreatedAt.IsZero() {
		t.Fatal("expected creation date to be set")
	}
	if len(store.accounts) != 1 {
		t.Fatalf("expected account persisted, store has %d", len(store.accounts))
	}
}

func TestAccountServiceOpenAccountValidation(t *testing.T) {
	svc := services.NewAccountService(&accountStoreStub{})

	_, err := svc.OpenAccount(context.Background(), models.OpenAccountRequest{Name: "", Pin: "1234"})
	if !errors.Is(err, commons.ErrValidation) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}

	_, err = svc.OpenAccount(context.Background(), models.OpenAccountRequest{Name: "Alice", Pin: "123"})
	if !errors.Is(err, commons.ErrValidation) {
		t.Fatalf("expected validation error for short pin, got %v", err)
	}
}

func TestAccountServiceOpenAccountDistinctNumbers(t *testing.T) {
	store := &accountStoreStub{}
	svc := services.NewAccountService(store)

	first, err := svc.OpenAccount(context.Background(), models.OpenAccountRequest{Name: "Alice", Pin: "1234"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.OpenAccount(context.Background(), models.OpenAccountRequest{Name: "Bob", Pin: "5678"})
	if err != nil {
		t.Fatal(err)
	}

	if first.Data.AccountNumber == second.Data.AccountNumber {
		t.Fatal("expected distinct account numbers")
	}
}

func TestAccountServiceDepositWithdrawRoundTrip(t *testing.T) {
	store := &accountStoreStub{accounts: []domain.Account{seedAccount("1000000001", "1234", 100)}}
	svc := services.NewAccountService(store)
	amount := decimal.RequireFromString("25.50")

	depositResp, err := svc.Deposit(context.Background(), models.AmountRequest{AccountNumber: "1000000001", Amount: amount})
	if err != nil {
		t.Fatal(err)
	}
	if !depositResp.Data.Balance.Equal(decimal.RequireFromString("125.50")) {
		t.Fatalf("expected 125.50 after deposit, got %s", depositResp.Data.Balance)
	}

	withdrawResp, err := svc.Withdraw(context.Background(), models.AmountRequest{AccountNumber: "1000000001", Amount: amount})
	if err != nil {
		t.Fatal(err)
	}
	if !withdrawResp.Data.Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected original balance restored, got %s", withdrawResp.Data.Balance)
	}
}

func TestAccountServiceWithdrawInsufficientFunds(t *testing.T) {
	store := &accountStoreStub{accounts: []domain.Account{seedAccount("1000000001", "1234", 70)}}
	svc := services.NewAccountService(store)

	resp, err := svc.Withdraw(context.Background(), models.AmountRequest{
		AccountNumber: "1000000001",
		Amount:        decimal.NewFromInt(1000),
	})
	if !errors.Is(err, commons.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance error, got %v", err)
	}
	if resp.Success {
		t.Fatal("expected failure response")
	}
	if !store.accounts[0].Balance.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("expected balance unchanged, got %s", store.accounts[0].Balance)
	}
}

func TestAccountServiceDepositUnknownAccount(t *testing.T) {
	svc := services.NewAccountService(&accountStoreStub{})

	_, err := svc.Deposit(context.Background(), models.AmountRequest{
		AccountNumber: "9999999999",
		Amount:        decimal.NewFromInt(10),
	})
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestAccountServiceDepositRejectsNonPositiveAmount(t *testing.T) {
	store := &accountStoreStub{accounts: []domain.Account{seedAccount("1000000001", "1234", 100)}}
	svc := services.NewAccountService(store)

	_, err := svc.Deposit(context.Background(), models.AmountRequest{
		AccountNumber: "1000000001",
		Amount:        decimal.Zero,
	})
	if !errors.Is(err, commons.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !store.accounts[0].Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatal("expected balance unchanged")
	}
}

func TestAccountServiceTransferMovesFunds(t *testing.T) {
	store := &accountStoreStub{accounts: []domain.Account{
		seedAccount("1000000001", "1234", 100),
		seedAccount("1000000002", "5678", 5),
	}}
	svc := services.NewAccountService(store)

	resp, err := svc.Transfer(context.Background(), models.TransferRequest{
		FromAccountNumber: "1000000001",
		ToAccountNumber:   "1000000002",
		Amount:            decimal.NewFromInt(40),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Data.FromAccount.Balance.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected sender balance 60, got %s", resp.Data.FromAccount.Balance)
	}
	if !resp.Data.ToAccount.Balance.Equal(decimal.NewFromInt(45)) {
		t.Fatalf("expected receiver balance 45, got %s", resp.Data.ToAccount.Balance)
	}
	if !store.accounts[0].Balance.Equal(decimal.NewFromInt(60)) || !store.accounts[1].Balance.Equal(decimal.NewFromInt(45)) {
		t.Fatal("expected both balances persisted in one pass")
	}
}

func TestAccountServiceTransferInsufficientFunds(t *testing.T) {
	store := &accountStoreStub{accounts: []domain.Account{
		seedAccount("1000000001", "1234", 10),
		seedAccount("1000000002", "5678", 0),
	}}
	svc := services.NewAccountService(store)

	_, err := svc.Transfer(context.Background(), models.TransferRequest{
		FromAccountNumber: "1000000001",
		ToAccountNumber:   "1000000002",
		Amount:            decimal.NewFromInt(40),
	})
	if !errors.Is(err, commons.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance error, got %v", err)
	}
	if !store.accounts[0].Balance.Equal(decimal.NewFromInt(10)) || !store.accounts[1].Balance.IsZero() {
		t.Fatal("expected both balances untouched")
	}
}

func TestAccountServiceTransferUnknownCounterparty(t *testing.T) {
	store := &accountStoreStub{accounts: []domain.Account{seedAccount("1000000001", "1234", 100)}}
	svc := services.NewAccountService(store)

	_, err := svc.Transfer(context.Background(), models.TransferRequest{
		FromAccountNumber: "1000000001",
		ToAccountNumber:   "9999999999",
		Amount:            decimal.NewFromInt(10),
	})
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestAccountServiceChangePin(t *testing.T) {
	store := &accountStoreStub{accounts: []domain.Account{seedAccount("1000000001", "1234", 0)}}
	svc := services.NewAccountService(store)

	resp, err := svc.ChangePin(context.Background(), models.ChangePinRequest{
		AccountNumber: "1000000001",
		NewPin:        "9876",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Fatal("expected success")
	}
	if store.accounts[0].HashedPin != security.HashPin("9876") {
		t.Fatal("expected stored digest of the new pin")
	}

	_, err = svc.ChangePin(context.Background(), models.ChangePinRequest{
		AccountNumber: "1000000001",
		NewPin:        "12",
	})
	if !errors.Is(err, commons.ErrValidation) {
		t.Fatalf("expected validation error for short pin, got %v", err)
	}

	_, err = svc.ChangePin(context.Background(), models.ChangePinRequest{
		AccountNumber: "9999999999",
		NewPin:        "9876",
	})
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestAccountServiceSetBalanceOverride(t *testing.T) {
	store := &accountStoreStub{accounts: []domain.Account{seedAccount("1000000001", "1234", 10)}}
	svc := services.NewAccountService(store)

	resp, err := svc.SetBalance(context.Background(), "1000000001", decimal.NewFromInt(500))
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Data.Balance.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected balance 500, got %s", resp.Data.Balance)
	}
}

func TestAccountServiceGetAccountNotFound(t *testing.T) {
	svc := services.NewAccountService(&accountStoreStub{})

	resp, err := svc.GetAccount(context.Background(), "1000000001")
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
	if resp.Success {
		t.Fatal("expected failure response")
	}
}
