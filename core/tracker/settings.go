// ABOUTME: Settings operations with defaults-merged reads and partial writes
// ABOUTME: Missing stored keys never surface as absent values

package tracker

import (
	"context"
	"encoding/json"
	"errors"

	"mangawatch/core/domain"
	coreerrors "mangawatch/core/errors"
	"mangawatch/core/interfaces"
)

// SettingsPatch is a partial settings update; nil fields are untouched
type SettingsPatch struct {
	CheckIntervalMinutes *int
	NotificationsEnabled *bool
}

// GetSettings returns the stored settings merged over the defaults
func (s *Service) GetSettings(ctx context.Context) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSettings(ctx)
}

// SaveSettings applies a partial update on top of the current settings
func (s *Service) SaveSettings(ctx context.Context, patch SettingsPatch) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return settings, err
	}

	if patch.CheckIntervalMinutes != nil {
		settings.CheckIntervalMinutes = *patch.CheckIntervalMinutes
	}
	if patch.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *patch.NotificationsEnabled
	}
	settings.Normalize()

	if err := s.saveSettings(ctx, settings); err != nil {
		return settings, err
	}
	return settings, nil
}

// loadSettings unmarshals over a defaults-initialized struct so keys the
// stored document never had keep their default values
func (s *Service) loadSettings(ctx context.Context) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := s.deps.Storage.Get(ctx, keySettings)
	if errors.Is(err, interfaces.ErrKeyNotFound) {
		return settings, nil
	}
	if err != nil {
		return settings, coreerrors.WrapError(err, "load settings")
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return domain.DefaultSettings(), coreerrors.WrapError(err, "decode settings")
	}
	settings.Normalize()
	return settings, nil
}

func (s *Service) saveSettings(ctx context.Context, settings domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return coreerrors.WrapError(err, "encode settings")
	}
	return coreerrors.WrapError(s.deps.Storage.Set(ctx, keySettings, data), "save settings")
}
