package api

import "net/http"

// Notification timing values accepted by the API.
const (
	TimingThreeDaysBefore = "three_days_before"
	TimingOneDayBefore    = "one_day_before"
	TimingOnExpiryDate    = "on_expiry_date"
)

// NotificationSettings is the per-user notification configuration.
type NotificationSettings struct {
	Enabled      bool   `json:"enabled"`
	Timing       string `json:"timing"`
	VoiceEnabled bool   `json:"voice_enabled"`
	UserID       string `json:"user_id,omitempty"`
}

// DefaultNotificationSettings returns the settings used before the user
// has saved any: notifications off, firing on the expiry date itself.
func DefaultNotificationSettings(userID string) NotificationSettings {
	return NotificationSettings{
		Enabled:      false,
		Timing:       TimingOnExpiryDate,
		VoiceEnabled: false,
		UserID:       userID,
	}
}

// MergeNotificationSettings overlays stored settings onto base. Every
// field of stored wins except UserID, which keeps the base value when
// stored carries none. Used to fold a fetched record into the defaults.
func MergeNotificationSettings(base NotificationSettings, stored *NotificationSettings) NotificationSettings {
	if stored == nil {
		return base
	}
	merged := *stored
	if merged.UserID == "" {
		merged.UserID = base.UserID
	}
	if merged.Timing == "" {
		merged.Timing = base.Timing
	}
	return merged
}

// GetNotificationSettings fetches the stored settings. A 404 means the
// user has never saved any and is returned as (nil, nil).
func (c *Client) GetNotificationSettings() (*NotificationSettings, error) {
	var settings NotificationSettings
	if err := c.do(http.MethodGet, "/api/notifications", nil, &settings); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// UpdateNotificationSettings persists the settings.
func (c *Client) UpdateNotificationSettings(settings NotificationSettings) (*NotificationSettings, error) {
	var saved NotificationSettings
	if err := c.do(http.MethodPut, "/api/notifications/", settings, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
