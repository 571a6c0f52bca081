package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Food represents a single tracked food item as returned by the API.
type Food struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id,omitempty"`
	Name           string `json:"name"`
	ExpirationDate string `json:"expiration_date"`
	Category       string `json:"category,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// DateLayout is the wire format for expiration dates.
const DateLayout = "2006-01-02"

// Expiration parses the item's expiration date as midnight local time.
func (f Food) Expiration() (time.Time, error) {
	return time.ParseInLocation(DateLayout, f.ExpirationDate, time.Local)
}

// Categories is the closed set of food categories the API accepts.
var Categories = []string{
	"vegetable", "egg", "fruit", "dairy", "meat", "seafood",
	"grain", "seasoning", "beverage", "frozen", "other",
}

// NormalizeCategory maps a free-form category (e.g. from image analysis)
// onto the closed set, falling back to "other".
func NormalizeCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	for _, c := range Categories {
		if trimmed == c {
			return c
		}
	}
	return "other"
}

// FoodRequest is the body for creating or updating a food item.
type FoodRequest struct {
	Name           string `json:"name" validate:"required"`
	ExpirationDate string `json:"expiration_date" validate:"required,datetime=2006-01-02"`
	Category       string `json:"category,omitempty" validate:"omitempty,oneof=vegetable egg fruit dairy meat seafood grain seasoning beverage frozen other"`
	ImageURL       string `json:"image_url,omitempty" validate:"omitempty,url"`
}

var validate = validator.New()

// Validate checks the request before it is sent to the API.
func (r FoodRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			f := errs[0]
			switch f.Tag() {
			case "required":
				return fmt.Errorf("%s is required", f.Field())
			case "datetime":
				return fmt.Errorf("expiration date must be YYYY-MM-DD")
			case "oneof":
				return fmt.Errorf("unknown category %q", f.Value())
			}
		}
		return err
	}
	return nil
}

// ListFoods fetches all food items for the current user.
func (c *Client) ListFoods() ([]Food, error) {
	var foods []Food
	if err := c.do(http.MethodGet, "/api/foods", nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// GetFood fetches a single food item by id.
func (c *Client) GetFood(id string) (*Food, error) {
	var food Food
	if err := c.do(http.MethodGet, "/api/foods/"+id, nil, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

// CreateFood registers a new food item.
func (c *Client) CreateFood(req FoodRequest) (*Food, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var food Food
	if err := c.do(http.MethodPost, "/api/foods/", req, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

// UpdateFood replaces an existing food item.
func (c *Client) UpdateFood(id string, req FoodRequest) (*Food, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var food Food
	if err := c.do(http.MethodPut, "/api/foods/"+id, req, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

// DeleteFood removes a food item.
func (c *Client) DeleteFood(id string) error {
	return c.do(http.MethodDelete, "/api/foods/"+id, nil, nil)
}
