package services

import (
	"context"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/adapter/repository/repo_interfaces"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
	"github.com/Haseebx162006/ATM-Management-System/src/internal/logger"
)

// SettingsService reads and writes the persisted user preferences.
type SettingsService struct {
	settingsStore repo_interfaces.SettingsStore
}

func NewSettingsService(settingsStore repo_interfaces.SettingsStore) *SettingsService {
	return &SettingsService{settingsStore: settingsStore}
}

// Settings returns the persisted preferences, falling back to defaults when
// the store cannot be read.
func (s *SettingsService) Settings(ctx context.Context) domain.Settings {
	settings, err := s.settingsStore.ReadSettings(ctx)
	if err != nil {
		logger.Error("settings service read failed", err, nil)
		return domain.DefaultSettings()
	}

	return settings
}

func (s *SettingsService) SetDarkMode(ctx context.Context, enabled bool) error {
	settings, err := s.settingsStore.ReadSettings(ctx)
	if err != nil {
		logger.Error("settings service read before write failed", err, nil)
		settings = domain.DefaultSettings()
	}

	settings.DarkMode = enabled
	if err := s.settingsStore.WriteSettings(ctx, settings); err != nil {
		logger.Error("settings service write failed", err, logger.Fields{
			"darkMode": enabled,
		})
		return err
	}

	return nil
}
