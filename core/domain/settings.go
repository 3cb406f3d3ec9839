// ABOUTME: Settings domain model holds process-wide watcher configuration
// ABOUTME: Reads are always merged against defaults so missing keys never surface

package domain

// Default settings values used whenever a field is absent from storage
const (
	DefaultCheckIntervalMinutes = 60
)

// Settings is the singleton process-wide configuration of the watcher
type Settings struct {
	// CheckIntervalMinutes is how often the scheduler runs a check cycle
	CheckIntervalMinutes int `json:"check_interval_minutes"`

	// NotificationsEnabled is the global notification toggle; per-item
	// toggles are ANDed with it
	NotificationsEnabled bool `json:"notifications_enabled"`
}

// DefaultSettings returns the settings used when nothing is stored yet
func DefaultSettings() Settings {
	return Settings{
		CheckIntervalMinutes: DefaultCheckIntervalMinutes,
		NotificationsEnabled: true,
	}
}

// Normalize fills invalid fields with their defaults
func (s *Settings) Normalize() {
	if s.CheckIntervalMinutes < 1 {
		s.CheckIntervalMinutes = DefaultCheckIntervalMinutes
	}
}
