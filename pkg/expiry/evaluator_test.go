package expiry

import (
	"strings"
	"testing"

	"expirywatch/pkg/api"
)

func enabledSettings(timing string) *api.NotificationSettings {
	return &api.NotificationSettings{Enabled: true, Timing: timing}
}

func testFoods() []api.Food {
	return []api.Food{
		{ID: "1", Name: "milk", ExpirationDate: dateOffset(-1)},
		{ID: "2", Name: "eggs", ExpirationDate: dateOffset(2)},
		{ID: "3", Name: "rice", ExpirationDate: dateOffset(5)},
	}
}

func TestEvaluateExpiredTakesPriority(t *testing.T) {
	e := NewEvaluator()
	e.SetSettings(enabledSettings(api.TimingThreeDaysBefore))
	e.SetPermission(PermissionGranted)

	alert := e.Evaluate(testFoods(), noon)
	if alert == nil {
		t.Fatal("Evaluate() returned nil, want an alert")
	}
	if alert.Counts.Expired != 1 || alert.Counts.Expiring != 2 {
		t.Errorf("Counts = %+v, want {1 2}", alert.Counts)
	}
	if !strings.Contains(alert.Title, "expired") {
		t.Errorf("Title = %q, want expired-priority message", alert.Title)
	}
	if !strings.Contains(alert.Body, "1 item") {
		t.Errorf("Body = %q, want the expired count of 1", alert.Body)
	}
	if !e.Shown() {
		t.Error("latch not set after emission")
	}
}

func TestEvaluateAtMostOncePerMount(t *testing.T) {
	e := NewEvaluator()
	e.SetSettings(enabledSettings(api.TimingThreeDaysBefore))
	e.SetPermission(PermissionGranted)

	emitted := 0
	for i := 0; i < 5; i++ {
		if e.Evaluate(testFoods(), noon) != nil {
			emitted++
		}
	}
	if emitted != 1 {
		t.Errorf("emitted %d notifications across 5 updates, want 1", emitted)
	}
}

func TestEvaluateDeniedPermissionKeepsLatchClear(t *testing.T) {
	e := NewEvaluator()
	e.SetSettings(enabledSettings(api.TimingThreeDaysBefore))
	e.SetPermission(PermissionDenied)

	if alert := e.Evaluate(testFoods(), noon); alert != nil {
		t.Fatalf("Evaluate() = %+v, want nil with permission denied", alert)
	}
	if e.Shown() {
		t.Fatal("latch set without an emission")
	}

	// Granting later must still allow the one emission.
	e.SetPermission(PermissionGranted)
	if e.Evaluate(testFoods(), noon) == nil {
		t.Error("Evaluate() after grant returned nil, want an alert")
	}
}

func TestEvaluateDisabledSettingsIsNoop(t *testing.T) {
	e := NewEvaluator()
	e.SetSettings(&api.NotificationSettings{Enabled: false, Timing: api.TimingOneDayBefore})
	e.SetPermission(PermissionGranted)

	if alert := e.Evaluate(testFoods(), noon); alert != nil {
		t.Errorf("Evaluate() = %+v, want nil with settings disabled", alert)
	}
}

func TestEvaluateEmptyListIsNoop(t *testing.T) {
	e := NewEvaluator()
	e.SetSettings(enabledSettings(api.TimingOnExpiryDate))
	e.SetPermission(PermissionGranted)

	if alert := e.Evaluate(nil, noon); alert != nil {
		t.Errorf("Evaluate() = %+v, want nil for an empty list", alert)
	}
}

func TestEvaluateNoSettingsLoadedIsNoop(t *testing.T) {
	e := NewEvaluator()
	e.SetPermission(PermissionGranted)

	if alert := e.Evaluate(testFoods(), noon); alert != nil {
		t.Errorf("Evaluate() = %+v, want nil before settings arrive", alert)
	}
}

func TestEvaluateExpiringMessagePerTiming(t *testing.T) {
	foods := []api.Food{
		{ID: "1", Name: "eggs", ExpirationDate: dateOffset(0)},
	}

	cases := []struct {
		timing string
		want   string
	}{
		{api.TimingThreeDaysBefore, "within 3 days"},
		{api.TimingOneDayBefore, "within 1 day"},
		{api.TimingOnExpiryDate, "today"},
	}

	for _, tc := range cases {
		e := NewEvaluator()
		e.SetSettings(enabledSettings(tc.timing))
		e.SetPermission(PermissionGranted)

		alert := e.Evaluate(foods, noon)
		if alert == nil {
			t.Fatalf("timing %s: Evaluate() returned nil", tc.timing)
		}
		if !strings.Contains(alert.Body, tc.want) {
			t.Errorf("timing %s: Body = %q, want substring %q", tc.timing, alert.Body, tc.want)
		}
	}
}

func TestParsePermissionRoundTrip(t *testing.T) {
	for _, p := range []Permission{PermissionDefault, PermissionGranted, PermissionDenied} {
		if got := ParsePermission(p.String()); got != p {
			t.Errorf("ParsePermission(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if got := ParsePermission("weird"); got != PermissionDefault {
		t.Errorf("ParsePermission(weird) = %v, want default", got)
	}
}
