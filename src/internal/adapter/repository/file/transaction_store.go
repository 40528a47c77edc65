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

// TransactionStore persists the money-movement log as an append-only text
// file. Records are appended one line at a time and never rewritten.
type TransactionStore struct {
	mu   sync.Mutex
	dir  string
	path string
}

func NewTransactionStore(storageDir string) *TransactionStore {
	return &TransactionStore{
		dir:  storageDir,
		path: filepath.Join(storageDir, transactionsFileName),
	}
}

func (s *TransactionStore) ReadTransactions(_ context.Context) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStorageDir(s.dir); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open transactions file: %w", err)
	}
	defer f.Close()

	transactions := []domain.Transaction{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		transaction, err := parseTransaction(line)
		if err != nil {
			logger.Warn("transaction store skipping malformed line", logger.Fields{
				"file": s.path,
				"line": lineNo,
				"why":  err.Error(),
			})
			continue
		}
		transactions = append(transactions, transaction)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transactions file: %w", err)
	}

	return transactions, nil
}

func (s *TransactionStore) Append(_ context.Context, transaction domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStorageDir(s.dir); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open transactions file: %w", err)
	}

	if _, err := fmt.Fprintln(f, encodeTransaction(transaction)); err != nil {
		f.Close()
		return fmt.Errorf("append transaction: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close transactions file: %w", err)
	}

	return nil
}
