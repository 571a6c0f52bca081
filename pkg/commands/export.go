package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"expirywatch/pkg/api"
	"expirywatch/pkg/expiry"
)

// HandleExportCommand processes -export commands
func HandleExportCommand(client *api.Client, filename, exportType string) {
	foods, err := client.ListFoods()
	if err != nil {
		fmt.Printf("Error loading food list: %v\n", err)
		os.Exit(1)
	}

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte

	switch exportType {
	case "json":
		content, err = json.MarshalIndent(foods, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling food list to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		now := time.Now()
		var lines []string
		for _, food := range sortByExpiration(foods) {
			status := " "
			if days, ok := expiry.FoodDaysUntil(food, now); ok && days < 0 {
				status = "x"
			}
			lines = append(lines, fmt.Sprintf("- [%s] %s (expires %s)", status, food.Name, food.ExpirationDate))
		}
		content = []byte(strings.TrimSpace(strings.Join(lines, "\n")))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d item(s) to %s\n", len(foods), filename)
}
