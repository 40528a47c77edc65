package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/logger"
)

// SettingsStore persists the single-line settings file. A missing or
// garbled file yields the defaults rather than an error.
type SettingsStore struct {
	mu   sync.Mutex
	dir  string
	path string
}

func NewSettingsStore(storageDir string) *SettingsStore {
	return &SettingsStore{
		dir:  storageDir,
		path: filepath.Join(storageDir, settingsFileName),
	}
}

func (s *SettingsStore) ReadSettings(_ context.Context) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStorageDir(s.dir); err != nil {
		return domain.DefaultSettings(), err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.DefaultSettings(), fmt.Errorf("open settings file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return domain.DefaultSettings(), fmt.Errorf("read settings file: %w", err)
		}
		return domain.DefaultSettings(), nil
	}

	raw := strings.TrimSpace(scanner.Text())
	darkMode, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("settings store falling back to defaults", logger.Fields{
			"file": s.path,
			"why":  err.Error(),
		})
		return domain.DefaultSettings(), nil
	}

	return domain.Settings{DarkMode: darkMode}, nil
}

func (s *SettingsStore) WriteSettings(_ context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureStorageDir(s.dir); err != nil {
		return err
	}

	line := strconv.FormatBool(settings.DarkMode) + "\n"
	if err := os.WriteFile(s.path, []byte(line), 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}
