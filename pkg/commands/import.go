package commands

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"expirywatch/pkg/api"
)

// HandleImportCommand processes -import commands. The file is a plain
// text list: a date line (DD.MM.YYYY: or YYYY-MM-DD:) sets the
// expiration date for the "- name @category" lines that follow it.
func HandleImportCommand(client *api.Client, filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	lines := strings.Split(string(content), "\n")
	currentDate := time.Now().Format(api.DateLayout)
	var itemsAdded int

	dateRegex := regexp.MustCompile(`^(?:(\d{2})\.(\d{2})\.(\d{4})|(\d{4})-(\d{2})-(\d{2})):?$`)
	categoryRegex := regexp.MustCompile(`@(\S+)`)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Check if line contains a date (DD.MM.YYYY: or YYYY-MM-DD: format)
		if dateMatch := dateRegex.FindStringSubmatch(line); dateMatch != nil {
			var day, month, year int
			if dateMatch[1] != "" {
				day, _ = strconv.Atoi(dateMatch[1])
				month, _ = strconv.Atoi(dateMatch[2])
				year, _ = strconv.Atoi(dateMatch[3])
			} else {
				year, _ = strconv.Atoi(dateMatch[4])
				month, _ = strconv.Atoi(dateMatch[5])
				day, _ = strconv.Atoi(dateMatch[6])
			}
			currentDate = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(api.DateLayout)
			continue
		}

		// Check if line is an item (starts with -)
		if strings.HasPrefix(line, "- ") {
			itemText := strings.TrimSpace(strings.TrimPrefix(line, "- "))
			if itemText == "" {
				continue
			}

			category := ""
			if catMatch := categoryRegex.FindStringSubmatch(itemText); catMatch != nil {
				category = api.NormalizeCategory(catMatch[1])
				itemText = strings.TrimSpace(categoryRegex.ReplaceAllString(itemText, ""))
			}

			req := api.FoodRequest{
				Name:           itemText,
				ExpirationDate: currentDate,
				Category:       category,
			}
			if _, err := client.CreateFood(req); err != nil {
				fmt.Printf("Error adding item '%s': %v\n", itemText, err)
				continue
			}
			itemsAdded++
		}
	}

	fmt.Printf("Successfully imported %d item(s) from %s\n", itemsAdded, filename)
}
