package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a single bank account. AccountNumber is the primary key
// everywhere and never changes after creation.
type Account struct {
	AccountNumber string
	Name          string
	HashedPin     string
	Balance       decimal.Decimal
	CreatedAt     time.Time
}
