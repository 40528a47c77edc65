package service_interfaces

import (
	"context"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/commons"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/usecase/models"
	"github.com/shopspring/decimal"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[domain.Account], error)
	GetAccount(ctx context.Context, accountNumber string) (commons.Response[domain.Account], error)
	ChangePin(ctx context.Context, req models.ChangePinRequest) (commons.Response[domain.Account], error)
	Deposit(ctx context.Context, req models.AmountRequest) (commons.Response[domain.Account], error)
	Withdraw(ctx context.Context, req models.AmountRequest) (commons.Response[domain.Account], error)
	Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResult], error)
	SetBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) (commons.Response[domain.Account], error)
}
