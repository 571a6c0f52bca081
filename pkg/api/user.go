package api

import "net/http"

// Profile is the user profile record.
type Profile struct {
	ID          string `json:"id,omitempty"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// MergeProfile overlays fetched onto base field by field: a non-empty
// fetched value wins, an empty one keeps the base value. This replaces
// the loose record spread the settings page used to do.
func MergeProfile(base, fetched Profile) Profile {
	merged := base
	if fetched.ID != "" {
		merged.ID = fetched.ID
	}
	if fetched.Email != "" {
		merged.Email = fetched.Email
	}
	if fetched.DisplayName != "" {
		merged.DisplayName = fetched.DisplayName
	}
	if fetched.AvatarURL != "" {
		merged.AvatarURL = fetched.AvatarURL
	}
	return merged
}

// GetUserProfile fetches the profile for the given user id.
func (c *Client) GetUserProfile(userID string) (*Profile, error) {
	var profile Profile
	if err := c.do(http.MethodGet, "/api/user/"+userID, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateUserProfile persists the profile.
func (c *Client) UpdateUserProfile(userID string, profile Profile) (*Profile, error) {
	var saved Profile
	if err := c.do(http.MethodPut, "/api/user/"+userID, profile, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
