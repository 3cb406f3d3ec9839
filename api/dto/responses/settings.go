// ABOUTME: Response DTOs for settings and check cycle endpoints
// ABOUTME: Settings responses always carry the defaults-merged values

package responses

// SettingsResponse represents the process-wide settings
type SettingsResponse struct {
	CheckIntervalMinutes int  `json:"check_interval_minutes" doc:"Check interval in minutes"`
	NotificationsEnabled bool `json:"notifications_enabled" doc:"Global notification toggle"`
}

// CheckCycleResponse summarizes one completed check cycle
type CheckCycleResponse struct {
	Checked  int `json:"checked" doc:"Items processed"`
	Updates  int `json:"updates" doc:"Chapter updates detected"`
	Failures int `json:"failures" doc:"Items whose extraction failed"`
	Unread   int `json:"unread" doc:"Badge count after the cycle"`
}
