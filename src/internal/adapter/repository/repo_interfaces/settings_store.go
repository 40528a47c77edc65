package repo_interfaces

import (
	"context"

	"github.com/Haseebx162006/ATM-Management-System/src/internal/domain"
)

type SettingsStore interface {
	ReadSettings(ctx context.Context) (domain.Settings, error)
	WriteSettings(ctx context.Context, settings domain.Settings) error
}
