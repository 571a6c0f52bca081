package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"expirywatch/pkg/api"
	"expirywatch/pkg/expiry"
)

// HandlePurgeCommand processes -purge commands. It deletes expired
// items, optionally narrowed to a single category, asking for
// confirmation unless -yes is given.
func HandlePurgeCommand(client *api.Client, categoryStr string, skipConfirm bool) {
	foods, err := client.ListFoods()
	if err != nil {
		fmt.Printf("Error loading food list: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	var expired []api.Food
	for _, food := range foods {
		if categoryStr != "" && food.Category != categoryStr {
			continue
		}
		if days, ok := expiry.FoodDaysUntil(food, now); ok && expiry.Classify(days) == expiry.TierExpired {
			expired = append(expired, food)
		}
	}

	if len(expired) == 0 {
		fmt.Println("No expired items to delete.")
		return
	}

	// Show confirmation unless -yes flag is used
	if !skipConfirm {
		for _, food := range expired {
			fmt.Printf("  %s (expired %s)\n", food.Name, food.ExpirationDate)
		}
		fmt.Printf("Are you sure you want to delete these %d item(s)? (y/N): ", len(expired))
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	var deleted int
	for _, food := range expired {
		if err := client.DeleteFood(food.ID); err != nil {
			fmt.Printf("Error deleting '%s': %v\n", food.Name, err)
			continue
		}
		deleted++
	}

	fmt.Printf("Successfully deleted %d item(s)\n", deleted)
}
