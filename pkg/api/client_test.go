package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticToken string

func (t staticToken) AccessToken() string { return string(t) }

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, staticToken("test-token")), server
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]Food{})
	})

	if _, err := client.ListFoods(); err != nil {
		t.Fatalf("ListFoods: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("expected an X-Request-ID header")
	}
}

func TestUnauthenticatedRequestOmitsBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Food{})
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken(""))
	if _, err := client.ListFoods(); err != nil {
		t.Fatalf("ListFoods: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestErrorDecoding(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "token lapsed"})
	})

	_, err := client.ListFoods()
	if err == nil {
		t.Fatal("expected an error")
	}
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if apiErr.Message != "token lapsed" {
		t.Errorf("Message = %q, want detail field", apiErr.Message)
	}
}

func TestCreateFoodRejectsInvalidRequest(t *testing.T) {
	var called bool
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	cases := []FoodRequest{
		{Name: "", ExpirationDate: "2026-09-10"},
		{Name: "milk", ExpirationDate: "10.09.2026"},
		{Name: "milk", ExpirationDate: "2026-09-10", Category: "candy"},
		{Name: "milk", ExpirationDate: "2026-09-10", ImageURL: "not a url"},
	}
	for _, req := range cases {
		if _, err := client.CreateFood(req); err == nil {
			t.Errorf("CreateFood(%+v) succeeded, want validation error", req)
		}
	}
	if called {
		t.Error("invalid requests must not reach the server")
	}
}

func TestCreateFood(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/foods/" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		var req FoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(Food{ID: "f1", Name: req.Name, ExpirationDate: req.ExpirationDate})
	})

	food, err := client.CreateFood(FoodRequest{Name: "milk", ExpirationDate: "2026-09-10", Category: "dairy"})
	if err != nil {
		t.Fatalf("CreateFood: %v", err)
	}
	if food.ID != "f1" || food.Name != "milk" {
		t.Errorf("unexpected food: %+v", food)
	}
}

func TestDeleteFood(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/foods/f1" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeleteFood("f1"); err != nil {
		t.Fatalf("DeleteFood: %v", err)
	}
}

func TestGetNotificationSettingsNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	settings, err := client.GetNotificationSettings()
	if err != nil {
		t.Fatalf("GetNotificationSettings: %v", err)
	}
	if settings != nil {
		t.Errorf("settings = %+v, want nil for a user without stored settings", settings)
	}
}

func TestGetNotificationSettings(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/notifications" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(NotificationSettings{Enabled: true, Timing: TimingOneDayBefore})
	})

	settings, err := client.GetNotificationSettings()
	if err != nil {
		t.Fatalf("GetNotificationSettings: %v", err)
	}
	if settings == nil || !settings.Enabled || settings.Timing != TimingOneDayBefore {
		t.Errorf("unexpected settings: %+v", settings)
	}
}

func TestGetRecipesLimits(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("out-of-range requests must not reach the server")
	})

	if _, err := client.GetRecipes(nil); err == nil {
		t.Error("expected error for zero ingredients")
	}
	if _, err := client.GetRecipes([]string{"a", "b", "c", "d", "e"}); err == nil {
		t.Error("expected error for five ingredients")
	}
}

func TestGetRecipes(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/foods/recipes" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Ingredients []string `json:"ingredients"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if len(body.Ingredients) != 2 {
			t.Errorf("ingredients = %v", body.Ingredients)
		}
		json.NewEncoder(w).Encode(map[string][]Recipe{
			"recipes": {{Name: "Omelette", CookingTime: "10 min", Difficulty: "easy"}},
		})
	})

	recipes, err := client.GetRecipes([]string{"egg", "cheese"})
	if err != nil {
		t.Fatalf("GetRecipes: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Name != "Omelette" {
		t.Errorf("unexpected recipes: %+v", recipes)
	}
}

func TestMergeNotificationSettings(t *testing.T) {
	base := DefaultNotificationSettings("u1")

	if got := MergeNotificationSettings(base, nil); got != base {
		t.Errorf("nil stored should keep defaults, got %+v", got)
	}

	stored := &NotificationSettings{Enabled: true, Timing: TimingThreeDaysBefore}
	got := MergeNotificationSettings(base, stored)
	if !got.Enabled || got.Timing != TimingThreeDaysBefore {
		t.Errorf("stored fields should win, got %+v", got)
	}
	if got.UserID != "u1" {
		t.Errorf("UserID = %q, want base value when stored carries none", got.UserID)
	}
}

func TestMergeProfile(t *testing.T) {
	base := Profile{ID: "u1", DisplayName: "Old Name", Email: "old@example.com"}
	fetched := Profile{DisplayName: "New Name"}

	got := MergeProfile(base, fetched)
	if got.DisplayName != "New Name" {
		t.Errorf("DisplayName = %q, want fetched value", got.DisplayName)
	}
	if got.ID != "u1" || got.Email != "old@example.com" {
		t.Errorf("empty fetched fields should keep base values, got %+v", got)
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory(" dairy "); got != "dairy" {
		t.Errorf("NormalizeCategory(\" dairy \") = %q", got)
	}
	if got := NormalizeCategory("candy"); got != "other" {
		t.Errorf("NormalizeCategory(\"candy\") = %q, want other", got)
	}
	if got := NormalizeCategory(""); got != "other" {
		t.Errorf("NormalizeCategory(\"\") = %q, want other", got)
	}
}
