package commands

import (
	"fmt"
	"os"

	"expirywatch/pkg/api"
	"expirywatch/pkg/auth"
)

// HandleProfileCommand shows the signed-in user's profile, or updates
// the display name when newName is non-empty.
func HandleProfileCommand(client *api.Client, session *auth.Session, newName string) {
	userID := session.UserID()
	if userID == "" {
		fmt.Println("Cannot determine the user id from the stored token.")
		os.Exit(1)
	}

	fetched, err := client.GetUserProfile(userID)
	if err != nil {
		fmt.Printf("Error loading profile: %v\n", err)
		os.Exit(1)
	}

	profile := api.MergeProfile(api.Profile{ID: userID}, *fetched)

	if newName != "" {
		profile.DisplayName = newName
		updated, err := client.UpdateUserProfile(userID, profile)
		if err != nil {
			fmt.Printf("Error updating profile: %v\n", err)
			os.Exit(1)
		}
		profile = api.MergeProfile(profile, *updated)
		fmt.Println("Profile updated.")
	}

	fmt.Printf("User:  %s\n", profile.ID)
	if profile.DisplayName != "" {
		fmt.Printf("Name:  %s\n", profile.DisplayName)
	}
	if profile.Email != "" {
		fmt.Printf("Email: %s\n", profile.Email)
	}
}
