package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/munchbox/munchbox/internal/models"
	"github.com/munchbox/munchbox/internal/storage"
)

// SettingsService owns the singleton settings object.
type SettingsService struct {
	store storage.Store
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(store storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Settings returns the stored configuration, zero-valued when none
// has been saved yet.
func (s *SettingsService) Settings(ctx context.Context) (models.Settings, error) {
	return s.store.Settings(ctx)
}

// Save replaces the settings object wholesale, mirroring how the
// admin settings form submits the entire document.
func (s *SettingsService) Save(ctx context.Context, settings models.Settings) (models.Settings, error) {
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return models.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	slog.Info("Settings saved", "store_name", settings.StoreName)
	return settings, nil
}
