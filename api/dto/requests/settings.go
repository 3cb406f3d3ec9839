// ABOUTME: Request DTOs for settings API endpoints
// ABOUTME: Partial updates leave omitted fields untouched

package requests

// SaveSettingsRequest is a partial settings update; nil fields keep their
// current values
type SaveSettingsRequest struct {
	// CheckIntervalMinutes is how often the scheduler runs a check cycle
	CheckIntervalMinutes *int `json:"check_interval_minutes,omitempty" minimum:"1" doc:"Check interval in minutes"`

	// NotificationsEnabled is the global notification toggle
	NotificationsEnabled *bool `json:"notifications_enabled,omitempty" doc:"Global notification toggle"`
}
