package ui

import (
	"reflect"
	"testing"

	"expirywatch/pkg/api"
)

func namesOf(foods []api.Food) []string {
	names := make([]string, len(foods))
	for i, f := range foods {
		names[i] = f.Name
	}
	return names
}

func sampleFoods() []api.Food {
	return []api.Food{
		{ID: "1", Name: "yogurt", ExpirationDate: "2026-09-10", Category: "dairy"},
		{ID: "2", Name: "apple", ExpirationDate: "2026-09-03", Category: "fruit"},
		{ID: "3", Name: "mystery jar", ExpirationDate: "2026-09-05", Category: ""},
		{ID: "4", Name: "bread", ExpirationDate: "2026-09-03", Category: "grain"},
	}
}

func TestSortFoodsByNameAscending(t *testing.T) {
	got := SortFoods(sampleFoods(), SortConfig{Key: SortByName, Direction: SortAsc})
	want := []string{"apple", "bread", "mystery jar", "yogurt"}
	if !reflect.DeepEqual(namesOf(got), want) {
		t.Errorf("order = %v, want %v", namesOf(got), want)
	}
}

func TestSortFoodsDoesNotMutateInput(t *testing.T) {
	foods := sampleFoods()
	before := namesOf(foods)
	SortFoods(foods, SortConfig{Key: SortByName, Direction: SortDesc})
	if !reflect.DeepEqual(namesOf(foods), before) {
		t.Errorf("input mutated: %v, want %v", namesOf(foods), before)
	}
}

func TestSortFoodsAbsentCategorySortsLastBothDirections(t *testing.T) {
	for _, dir := range []SortDirection{SortAsc, SortDesc} {
		got := SortFoods(sampleFoods(), SortConfig{Key: SortByCategory, Direction: dir})
		if got[len(got)-1].Name != "mystery jar" {
			t.Errorf("direction %v: last = %q, want the uncategorized item", dir, got[len(got)-1].Name)
		}
	}
}

func TestSortFoodsStableOnTies(t *testing.T) {
	// Two items share an expiration date; input order must survive.
	got := SortFoods(sampleFoods(), SortConfig{Key: SortByExpiration, Direction: SortAsc})
	want := []string{"apple", "bread", "mystery jar", "yogurt"}
	if !reflect.DeepEqual(namesOf(got), want) {
		t.Errorf("order = %v, want %v", namesOf(got), want)
	}
}

func TestSortFoodsIdempotent(t *testing.T) {
	cfg := SortConfig{Key: SortByExpiration, Direction: SortDesc}
	once := SortFoods(sampleFoods(), cfg)
	twice := SortFoods(once, cfg)
	if !reflect.DeepEqual(namesOf(once), namesOf(twice)) {
		t.Errorf("resorting changed order: %v -> %v", namesOf(once), namesOf(twice))
	}
}

func TestSortConfigToggle(t *testing.T) {
	cfg := DefaultSortConfig()

	cfg = cfg.Toggle(SortByExpiration)
	if cfg.Key != SortByExpiration || cfg.Direction != SortDesc {
		t.Errorf("same-key toggle = %+v, want descending", cfg)
	}

	cfg = cfg.Toggle(SortByExpiration)
	if cfg.Direction != SortAsc {
		t.Errorf("second toggle = %+v, want ascending again", cfg)
	}

	cfg = cfg.Toggle(SortByName)
	if cfg.Key != SortByName || cfg.Direction != SortAsc {
		t.Errorf("new-key toggle = %+v, want name ascending", cfg)
	}
}

func TestMostUrgentCapsAndOrders(t *testing.T) {
	got := MostUrgent(sampleFoods(), 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "apple" || got[1].Name != "bread" {
		t.Errorf("order = %v, want [apple bread]", namesOf(got))
	}
}
