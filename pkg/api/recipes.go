package api

import (
	"fmt"
	"net/http"
)

// Recipe is a suggestion generated by the API from a set of ingredients.
type Recipe struct {
	Name        string   `json:"name"`
	CookingTime string   `json:"cooking_time"`
	Difficulty  string   `json:"difficulty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tips        string   `json:"tips,omitempty"`
}

// MaxRecipeIngredients caps how many ingredients one suggestion request
// may carry.
const MaxRecipeIngredients = 4

// GetRecipes requests recipe suggestions for 1 to 4 ingredient names.
func (c *Client) GetRecipes(ingredients []string) ([]Recipe, error) {
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("no ingredients selected")
	}
	if len(ingredients) > MaxRecipeIngredients {
		return nil, fmt.Errorf("at most %d ingredients allowed", MaxRecipeIngredients)
	}

	body := struct {
		Ingredients []string `json:"ingredients"`
	}{Ingredients: ingredients}

	var out struct {
		Recipes []Recipe `json:"recipes"`
	}
	if err := c.do(http.MethodPost, "/api/foods/recipes", body, &out); err != nil {
		return nil, err
	}
	return out.Recipes, nil
}
