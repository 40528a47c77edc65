package services

import (
	"context"
	"sync"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/logger"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/security"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/usecase/service_interfaces"
)

// AuthService tracks the active session. Construct exactly one per process
// and pass it to whatever needs it; it holds only the authenticated account
// number, never a cached account, so reads always re-resolve against the
// ledger and never serve stale balances.
type AuthService struct {
	accountService service_interfaces.AccountService

	mu                  sync.Mutex
	activeAccountNumber string
}

func NewAuthService(accountService service_interfaces.AccountService) *AuthService {
	return &AuthService{accountService: accountService}
}

// Login verifies the PIN against the ledger and, on success, records the
// account number as the active session. Any failure leaves a prior session
// untouched.
func (s *AuthService) Login(ctx context.Context, accountNumber string, pin string) bool {
	resp, err := s.accountService.GetAccount(ctx, accountNumber)
	if err != nil || resp.Data == nil {
		logger.Info("auth service login account lookup failed", logger.Fields{
			"accountNumber": accountNumber,
		})
		return false
	}

	if !security.VerifyPin(pin, resp.Data.HashedPin) {
		logger.Info("auth service login pin mismatch", logger.Fields{
			"accountNumber": accountNumber,
		})
		return false
	}

	s.mu.Lock()
	s.activeAccountNumber = accountNumber
	s.mu.Unlock()

	logger.Info("auth service login success", logger.Fields{
		"accountNumber": accountNumber,
	})

	return true
}

func (s *AuthService) Logout() {
	s.mu.Lock()
	s.activeAccountNumber = ""
	s.mu.Unlock()
}

// CurrentAccount re-resolves the active account number against the ledger
// on every call. Reports false when no session is active or the account has
// since vanished.
func (s *AuthService) CurrentAccount(ctx context.Context) (domain.Account, bool) {
	s.mu.Lock()
	accountNumber := s.activeAccountNumber
	s.mu.Unlock()

	if accountNumber == "" {
		return domain.Account{}, false
	}

	resp, err := s.accountService.GetAccount(ctx, accountNumber)
	if err != nil || resp.Data == nil {
		return domain.Account{}, false
	}

	return *resp.Data, true
}

// IsActive reports whether a session identifier is set. It does not confirm
// the account still exists.
func (s *AuthService) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeAccountNumber != ""
}
