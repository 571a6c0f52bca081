package commands

import (
	"fmt"
	"os"

	"expirywatch/pkg/api"
)

// HandleRecipesCommand fetches recipe suggestions for the count most
// urgent items.
func HandleRecipesCommand(client *api.Client, count int) {
	if count < 1 || count > api.MaxRecipeIngredients {
		fmt.Printf("Ingredient count must be between 1 and %d\n", api.MaxRecipeIngredients)
		os.Exit(1)
	}

	foods, err := client.ListFoods()
	if err != nil {
		fmt.Printf("Error loading food list: %v\n", err)
		os.Exit(1)
	}
	if len(foods) == 0 {
		fmt.Println("No food items registered.")
		return
	}

	sorted := sortByExpiration(foods)
	if len(sorted) > count {
		sorted = sorted[:count]
	}
	var ingredients []string
	for _, food := range sorted {
		ingredients = append(ingredients, food.Name)
	}

	recipes, err := client.GetRecipes(ingredients)
	if err != nil {
		fmt.Printf("Error fetching recipes: %v\n", err)
		os.Exit(1)
	}

	for i, recipe := range recipes {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s, %s)\n", recipe.Name, recipe.CookingTime, recipe.Difficulty)
		fmt.Println("  Ingredients:")
		for _, ingredient := range recipe.Ingredients {
			fmt.Printf("    - %s\n", ingredient)
		}
		fmt.Println("  Steps:")
		for j, step := range recipe.Steps {
			fmt.Printf("    %d. %s\n", j+1, step)
		}
		if recipe.Tips != "" {
			fmt.Printf("  Tips: %s\n", recipe.Tips)
		}
	}
}
