package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"expirywatch/pkg/api"
)

// HandleAddFood processes the -add command. The argument is the item
// name; -date and -category fill in the rest, with -analyze optionally
// pre-filling all three from an image.
func HandleAddFood(client *api.Client, name, dateStr, category, analyzeFile string) {
	req := api.FoodRequest{
		Name:           strings.TrimSpace(name),
		ExpirationDate: dateStr,
		Category:       category,
	}

	if analyzeFile != "" {
		result, err := client.AnalyzeImage(analyzeFile)
		if err != nil {
			fmt.Printf("Error analyzing image: %v\n", err)
			os.Exit(1)
		}
		req.ImageURL = result.ImageURL
		if req.Name == "" {
			req.Name = result.Name
		}
		if req.Category == "" {
			req.Category = api.NormalizeCategory(result.Category)
		}
		if req.ExpirationDate == "" {
			req.ExpirationDate = result.ExpirationDate
		}
	}

	if req.ExpirationDate == "" {
		// Default to today
		req.ExpirationDate = time.Now().Format(api.DateLayout)
	}

	food, err := client.CreateFood(req)
	if err != nil {
		fmt.Printf("Error adding food item: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Registered %q, expires %s\n", food.Name, food.ExpirationDate)
}
