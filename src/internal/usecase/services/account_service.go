package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/adapter/repository/repo_interfaces"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/commons"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/logger"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/security"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/usecase/models"
	"github.com/shopspring/decimal"
)

// AccountService is the ledger: the authoritative balance-bearing record
// set for all accounts. Every operation reloads the durable collection
// before acting and persists through a single full rewrite, so callers
// always see read-your-writes behavior against the file.
type AccountService struct {
	accountStore repo_interfaces.AccountStore
}

func NewAccountService(accountStore repo_interfaces.AccountStore) *AccountService {
	return &AccountService{accountStore: accountStore}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[domain.Account], error) {
	logger.Info("account service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return commons.ErrorResponse[domain.Account]("validation failed", err.Error()), err
	}

	var created domain.Account
	err := s.accountStore.Mutate(ctx, func(accounts []domain.Account) ([]domain.Account, error) {
		accountNumber := security.GenerateAccountNumber()
		for hasAccountNumber(accounts, accountNumber) {
			accountNumber = security.GenerateAccountNumber()
		}

		created = domain.Account{
			AccountNumber: accountNumber,
			Name:          strings.TrimSpace(req.Name),
			HashedPin:     security.HashPin(req.Pin),
			Balance:       decimal.Zero,
			CreatedAt:     now(),
		}

		return append(accounts, created), nil
	})
	if err != nil {
		logger.Error("account service open account store failed", err, nil)
		return commons.ErrorResponse[domain.Account]("failed to open account", "Unable to open account right now"), err
	}

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": created.AccountNumber,
		"name":          created.Name,
	})

	return commons.SuccessResponse("account opened successfully", created), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (commons.Response[domain.Account], error) {
	accounts, err := s.accountStore.ReadAccounts(ctx)
	if err != nil {
		logger.Error("account service get account store failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[domain.Account]("failed to get account", "Unable to fetch account right now"), err
	}

	account, ok := findAccount(accounts, accountNumber)
	if !ok {
		return commons.ErrorResponse[domain.Account]("Account not found"), commons.ErrRecordNotFound
	}

	return commons.SuccessResponse("account fetched successfully", account), nil
}

func (s *AccountService) ChangePin(ctx context.Context, req models.ChangePinRequest) (commons.Response[domain.Account], error) {
	logger.Info("account service change pin request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service change pin validation failed", err, nil)
		return commons.ErrorResponse[domain.Account]("validation failed", err.Error()), err
	}

	var updated domain.Account
	err := s.accountStore.Mutate(ctx, func(accounts []domain.Account) ([]domain.Account, error) {
		i, ok := indexOfAccount(accounts, req.AccountNumber)
		if !ok {
			return nil, commons.ErrRecordNotFound
		}

		accounts[i].HashedPin = security.HashPin(req.NewPin)
		updated = accounts[i]
		return accounts, nil
	})
	if err != nil {
		logger.Error("account service change pin failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[domain.Account]("Account not found"), err
		}
		return commons.ErrorResponse[domain.Account]("failed to change pin", "Unable to change pin right now"), err
	}

	logger.Info("account service change pin success", logger.Fields{
		"accountNumber": updated.AccountNumber,
	})

	return commons.SuccessResponse("pin changed successfully", updated), nil
}

func (s *AccountService) Deposit(ctx context.Context, req models.AmountRequest) (commons.Response[domain.Account], error) {
	logger.Info("account service deposit request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service deposit validation failed", err, nil)
		return commons.ErrorResponse[domain.Account]("validation failed", err.Error()), err
	}

	var updated domain.Account
	err := s.accountStore.Mutate(ctx, func(accounts []domain.Account) ([]domain.Account, error) {
		i, ok := indexOfAccount(accounts, req.AccountNumber)
		if !ok {
			return nil, commons.ErrRecordNotFound
		}

		accounts[i].Balance = accounts[i].Balance.Add(req.Amount)
		updated = accounts[i]
		return accounts, nil
	})
	if err != nil {
		logger.Error("account service deposit failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[domain.Account]("Account not found"), err
		}
		return commons.ErrorResponse[domain.Account]("failed to deposit", "Unable to deposit right now"), err
	}

	logger.Info("account service deposit success", logger.Fields{
		"accountNumber": updated.AccountNumber,
		"balance":       updated.Balance.StringFixed(2),
	})

	return commons.SuccessResponse("deposit successful", updated), nil
}

func (s *AccountService) Withdraw(ctx context.Context, req models.AmountRequest) (commons.Response[domain.Account], error) {
	logger.Info("account service withdraw request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service withdraw validation failed", err, nil)
		return commons.ErrorResponse[domain.Account]("validation failed", err.Error()), err
	}

	var updated domain.Account
	err := s.accountStore.Mutate(ctx, func(accounts []domain.Account) ([]domain.Account, error) {
		i, ok := indexOfAccount(accounts, req.AccountNumber)
		if !ok {
			return nil, commons.ErrRecordNotFound
		}
		if accounts[i].Balance.LessThan(req.Amount) {
			return nil, commons.ErrInsufficientBalance
		}

		accounts[i].Balance = accounts[i].Balance.Sub(req.Amount)
		updated = accounts[i]
		return accounts, nil
	})
	if err != nil {
		logger.Error("account service withdraw failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[domain.Account]("Account not found"), err
		}
		if errors.Is(err, commons.ErrInsufficientBalance) {
			return commons.ErrorResponse[domain.Account]("Insufficient balance", err.Error()), err
		}
		return commons.ErrorResponse[domain.Account]("failed to withdraw", "Unable to withdraw right now"), err
	}

	logger.Info("account service withdraw success", logger.Fields{
		"accountNumber": updated.AccountNumber,
		"balance":       updated.Balance.StringFixed(2),
	})

	return commons.SuccessResponse("withdrawal successful", updated), nil
}

// Transfer moves amount between two accounts in one in-memory pass and one
// rewrite; the rewrite is the operation's atomicity boundary. Transferring
// an account to itself is not rejected here; that guard belongs to the
// boundary layer.
func (s *AccountService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResult], error) {
	logger.Info("account service transfer request", logger.Fields{
		"fromAccountNumber": req.FromAccountNumber,
		"toAccountNumber":   req.ToAccountNumber,
		"amount":            req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service transfer validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResult]("validation failed", err.Error()), err
	}

	var result models.TransferResult
	err := s.accountStore.Mutate(ctx, func(accounts []domain.Account) ([]domain.Account, error) {
		from, okFrom := indexOfAccount(accounts, req.FromAccountNumber)
		to, okTo := indexOfAccount(accounts, req.ToAccountNumber)
		if !okFrom || !okTo {
			return nil, commons.ErrRecordNotFound
		}
		if accounts[from].Balance.LessThan(req.Amount) {
			return nil, commons.ErrInsufficientBalance
		}

		accounts[from].Balance = accounts[from].Balance.Sub(req.Amount)
		accounts[to].Balance = accounts[to].Balance.Add(req.Amount)
		result = models.TransferResult{
			FromAccount: accounts[from],
			ToAccount:   accounts[to],
		}
		return accounts, nil
	})
	if err != nil {
		logger.Error("account service transfer failed", err, logger.Fields{
			"fromAccountNumber": req.FromAccountNumber,
			"toAccountNumber":   req.ToAccountNumber,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResult]("Account not found"), err
		}
		if errors.Is(err, commons.ErrInsufficientBalance) {
			return commons.ErrorResponse[models.TransferResult]("Insufficient balance", err.Error()), err
		}
		return commons.ErrorResponse[models.TransferResult]("failed to transfer", "Unable to transfer right now"), err
	}

	logger.Info("account service transfer success", logger.Fields{
		"fromAccountNumber": result.FromAccount.AccountNumber,
		"toAccountNumber":   result.ToAccount.AccountNumber,
		"fromBalance":       result.FromAccount.Balance.StringFixed(2),
		"toBalance":         result.ToAccount.Balance.StringFixed(2),
	})

	return commons.SuccessResponse("transfer successful", result), nil
}

// SetBalance is a direct administrative override with no validation beyond
// account existence. Recovery and testing use only.
func (s *AccountService) SetBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) (commons.Response[domain.Account], error) {
	var updated domain.Account
	err := s.accountStore.Mutate(ctx, func(accounts []domain.Account) ([]domain.Account, error) {
		i, ok := indexOfAccount(accounts, accountNumber)
		if !ok {
			return nil, commons.ErrRecordNotFound
		}

		accounts[i].Balance = balance
		updated = accounts[i]
		return accounts, nil
	})
	if err != nil {
		logger.Error("account service set balance failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[domain.Account]("Account not found"), err
		}
		return commons.ErrorResponse[domain.Account]("failed to set balance", "Unable to set balance right now"), err
	}

	return commons.SuccessResponse("balance updated successfully", updated), nil
}

func now() time.Time {
	// Second precision so in-memory values round-trip the stored layout.
	return time.Now().Truncate(time.Second)
}

func findAccount(accounts []domain.Account, accountNumber string) (domain.Account, bool) {
	i, ok := indexOfAccount(accounts, accountNumber)
	if !ok {
		return domain.Account{}, false
	}
	return accounts[i], true
}

func indexOfAccount(accounts []domain.Account, accountNumber string) (int, bool) {
	for i := range accounts {
		if accounts[i].AccountNumber == accountNumber {
			return i, true
		}
	}
	return 0, false
}

func hasAccountNumber(accounts []domain.Account, accountNumber string) bool {
	_, ok := indexOfAccount(accounts, accountNumber)
	return ok
}
