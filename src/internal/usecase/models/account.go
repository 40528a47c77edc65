package models

import (
	"fmt"
	"strings"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/commons"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/shopspring/decimal"
)

// MinPinLength is the shortest PIN accepted when opening an account or
// changing an existing PIN.
const MinPinLength = 4

type OpenAccountRequest struct {
	Name string `json:"name"`
	Pin  string `json:"pin"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if len(r.Pin) < MinPinLength {
		errs = append(errs, fmt.Sprintf("pin must be at least %d characters", MinPinLength))
	}

	return validationError(errs)
}

type ChangePinRequest struct {
	AccountNumber string `json:"accountNumber"`
	NewPin        string `json:"newPin"`
}

func (r ChangePinRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}
	if len(r.NewPin) < MinPinLength {
		errs = append(errs, fmt.Sprintf("newPin must be at least %d characters", MinPinLength))
	}

	return validationError(errs)
}

// AmountRequest covers deposits and withdrawals.
type AmountRequest struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r AmountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	return validationError(errs)
}

type TransferRequest struct {
	FromAccountNumber string          `json:"fromAccountNumber"`
	ToAccountNumber   string          `json:"toAccountNumber"`
	Amount            decimal.Decimal `json:"amount"`
}

// Validate deliberately does not reject FromAccountNumber equal to
// ToAccountNumber; that guard belongs to the boundary layer.
func (r TransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FromAccountNumber) == "" {
		errs = append(errs, "fromAccountNumber is required")
	}
	if strings.TrimSpace(r.ToAccountNumber) == "" {
		errs = append(errs, "toAccountNumber is required")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	return validationError(errs)
}

// TransferResult carries both post-transfer account states back to the caller.
type TransferResult struct {
	FromAccount domain.Account
	ToAccount   domain.Account
}

func validationError(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", commons.ErrValidation, strings.Join(errs, "; "))
}
