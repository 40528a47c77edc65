package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/logger"
)

// AccountStore persists the whole account collection as one pipe-delimited
// text file. Every mutation rewrites the file in full; the mutex makes the
// reload-mutate-rewrite sequence a single critical section so interleaved
// writers cannot silently drop each other's changes.
type AccountStore struct {
	mu   sync.Mutex
	dir  string
	path string
}

func NewAccountStore(storageDir string) *AccountStore {
	return &AccountStore{
		dir:  storageDir,
		path: filepath.Join(storageDir, accountsFileName),
	}
}

func (s *AccountStore) ReadAccounts(_ context.Context) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readAll()
}

func (s *AccountStore) Mutate(_ context.Context, fn func(accounts []domain.Account) ([]domain.Account, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.readAll()
	if err != nil {
		return err
	}

	updated, err := fn(accounts)
	if err != nil {
		return err
	}

	return s.writeAll(updated)
}

func (s *AccountStore) readAll() ([]domain.Account, error) {
	if err := ensureStorageDir(s.dir); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open accounts file: %w", err)
	}
	defer f.Close()

	accounts := []domain.Account{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		account, err := parseAccount(line)
		if err != nil {
			logger.Warn("account store skipping malformed line", logger.Fields{
				"file": s.path,
				"line": lineNo,
				"why":  err.Error(),
			})
			continue
		}
		accounts = append(accounts, account)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}

	return accounts, nil
}

// writeAll rewrites the accounts file through a temp file and rename so a
// crash mid-write cannot leave a truncated collection behind.
func (s *AccountStore) writeAll(accounts []domain.Account) error {
	if err := ensureStorageDir(s.dir); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create accounts temp file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, account := range accounts {
		if _, err := fmt.Fprintln(w, encodeAccount(account)); err != nil {
			f.Close()
			return fmt.Errorf("write accounts temp file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush accounts temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close accounts temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace accounts file: %w", err)
	}

	return nil
}

func ensureStorageDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}
	return nil
}
