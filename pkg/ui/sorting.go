package ui

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"expirywatch/pkg/api"
)

// SortKey selects the food field the list is ordered by.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByExpiration SortKey = "expiration_date"
	SortByCategory   SortKey = "category"
)

// SortDirection is the order applied to the active key.
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

// SortConfig is the single active key/direction pair.
type SortConfig struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultSortConfig matches the list's initial order: soonest expiration
// first.
func DefaultSortConfig() SortConfig {
	return SortConfig{Key: SortByExpiration, Direction: SortAsc}
}

// Toggle applies the header-click semantics: the same key flips the
// direction, a new key resets to ascending.
func (c SortConfig) Toggle(key SortKey) SortConfig {
	if c.Key == key && c.Direction == SortAsc {
		return SortConfig{Key: key, Direction: SortDesc}
	}
	return SortConfig{Key: key, Direction: SortAsc}
}

var nameCollator = collate.New(language.Und, collate.IgnoreCase)

// SortFoods returns a new slice ordered by the given config. The input
// is never mutated and ties keep their relative order. Items with an
// absent value for the active key sort last in both directions.
func SortFoods(foods []api.Food, cfg SortConfig) []api.Food {
	sorted := make([]api.Food, len(foods))
	copy(sorted, foods)

	sort.SliceStable(sorted, func(i, j int) bool {
		aValue := sortValue(sorted[i], cfg.Key)
		bValue := sortValue(sorted[j], cfg.Key)

		// Unset data sorts last no matter the direction.
		if aValue == "" {
			return false
		}
		if bValue == "" {
			return true
		}

		var cmp int
		if cfg.Key == SortByName {
			cmp = nameCollator.CompareString(aValue, bValue)
		} else {
			// Date strings (YYYY-MM-DD) and categories order naturally.
			cmp = strings.Compare(aValue, bValue)
		}

		if cfg.Direction == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted
}

func sortValue(food api.Food, key SortKey) string {
	switch key {
	case SortByName:
		return food.Name
	case SortByCategory:
		return food.Category
	default:
		return food.ExpirationDate
	}
}

// MostUrgent returns up to limit items ordered by day-distance, soonest
// first. Used to pick recipe candidates.
func MostUrgent(foods []api.Food, limit int) []api.Food {
	sorted := SortFoods(foods, SortConfig{Key: SortByExpiration, Direction: SortAsc})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
