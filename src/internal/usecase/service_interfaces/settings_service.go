package service_interfaces

import (
	"context"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
)

type SettingsService interface {
	Settings(ctx context.Context) domain.Settings
	SetDarkMode(ctx context.Context, enabled bool) error
}
