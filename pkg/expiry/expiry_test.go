package expiry

import (
	"testing"
	"time"

	"expirywatch/pkg/api"
)

// noon gives a reference instant away from the midnight boundary so the
// ceiling arithmetic is unambiguous.
var noon = time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

func dateOffset(days int) string {
	return noon.AddDate(0, 0, days).Format(api.DateLayout)
}

func TestDaysUntil(t *testing.T) {
	cases := []struct {
		name       string
		expiration time.Time
		want       int
	}{
		{"yesterday", time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local), -1},
		{"today", time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), 0},
		{"tomorrow", time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local), 1},
		{"next week", time.Date(2026, 9, 8, 0, 0, 0, 0, time.Local), 7},
		{"long past", time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), -31},
	}

	for _, tc := range cases {
		if got := DaysUntil(tc.expiration, noon); got != tc.want {
			t.Errorf("%s: DaysUntil() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestDaysUntilNegativeOnlyForPastDays(t *testing.T) {
	for offset := -5; offset <= 5; offset++ {
		exp := time.Date(2026, 9, 1+offset, 0, 0, 0, 0, time.Local)
		got := DaysUntil(exp, noon)
		if (got < 0) != (offset < 0) {
			t.Errorf("offset %d: DaysUntil() = %d, sign mismatch", offset, got)
		}
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		days int
		want Tier
	}{
		{-10, TierExpired},
		{-1, TierExpired},
		{0, TierDanger},
		{3, TierDanger},
		{4, TierWarning},
		{7, TierWarning},
		{8, TierNormal},
		{100, TierNormal},
	}

	for _, tc := range cases {
		if got := Classify(tc.days); got != tc.want {
			t.Errorf("Classify(%d) = %v, want %v", tc.days, got, tc.want)
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	for days := -400; days <= 400; days++ {
		tier := Classify(days)
		if tier < TierExpired || tier > TierNormal {
			t.Fatalf("Classify(%d) = %v, out of range", days, tier)
		}
	}
}

func TestThreshold(t *testing.T) {
	cases := []struct {
		timing string
		want   int
	}{
		{api.TimingThreeDaysBefore, 3},
		{api.TimingOneDayBefore, 1},
		{api.TimingOnExpiryDate, 0},
		{"garbage", 0},
	}

	for _, tc := range cases {
		if got := Threshold(tc.timing); got != tc.want {
			t.Errorf("Threshold(%q) = %d, want %d", tc.timing, got, tc.want)
		}
	}
}

func TestCountOverlap(t *testing.T) {
	foods := []api.Food{
		{ID: "1", Name: "milk", ExpirationDate: dateOffset(-1)},
		{ID: "2", Name: "eggs", ExpirationDate: dateOffset(2)},
		{ID: "3", Name: "rice", ExpirationDate: dateOffset(5)},
	}

	counts := Count(foods, 3, noon)
	if counts.Expired != 1 {
		t.Errorf("Expired = %d, want 1", counts.Expired)
	}
	// The expired item also satisfies the threshold, so it counts twice.
	if counts.Expiring != 2 {
		t.Errorf("Expiring = %d, want 2", counts.Expiring)
	}
}

func TestCountSkipsUnparseableDates(t *testing.T) {
	foods := []api.Food{
		{ID: "1", Name: "mystery", ExpirationDate: "not-a-date"},
		{ID: "2", Name: "milk", ExpirationDate: dateOffset(-2)},
	}

	counts := Count(foods, 0, noon)
	if counts.Expired != 1 || counts.Expiring != 1 {
		t.Errorf("Count() = %+v, want {1 1}", counts)
	}
}
