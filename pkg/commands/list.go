package commands

import (
	"fmt"
	"os"
	"sort"
	"time"

	"expirywatch/pkg/api"
	"expirywatch/pkg/expiry"
)

// HandleListCommand prints the food list sorted by expiration date with
// an urgency marker per line.
func HandleListCommand(client *api.Client) {
	foods, err := client.ListFoods()
	if err != nil {
		fmt.Printf("Error loading food list: %v\n", err)
		os.Exit(1)
	}

	if len(foods) == 0 {
		fmt.Println("No food items registered.")
		return
	}

	now := time.Now()
	for _, food := range sortByExpiration(foods) {
		marker := "?"
		remaining := ""
		if days, ok := expiry.FoodDaysUntil(food, now); ok {
			switch expiry.Classify(days) {
			case expiry.TierExpired:
				marker, remaining = "!!", "expired"
			case expiry.TierDanger:
				marker, remaining = "!", fmt.Sprintf("%dd left", days)
			case expiry.TierWarning:
				marker, remaining = "*", fmt.Sprintf("%dd left", days)
			default:
				marker, remaining = " ", fmt.Sprintf("%dd left", days)
			}
		}

		category := food.Category
		if category == "" {
			category = "-"
		}
		fmt.Printf("%-2s %-30s %s  %-10s %s\n", marker, food.Name, food.ExpirationDate, category, remaining)
	}
}

func sortByExpiration(foods []api.Food) []api.Food {
	sorted := make([]api.Food, len(foods))
	copy(sorted, foods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpirationDate < sorted[j].ExpirationDate
	})
	return sorted
}
