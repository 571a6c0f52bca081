package expiry

import (
	"fmt"
	"time"

	"expirywatch/pkg/api"
)

// Permission mirrors the tri-state desktop notification permission.
type Permission int

const (
	PermissionDefault Permission = iota
	PermissionGranted
	PermissionDenied
)

// ParsePermission reads a stored permission value. Anything unknown is
// treated as the initial "not yet asked" state.
func ParsePermission(s string) Permission {
	switch s {
	case "granted":
		return PermissionGranted
	case "denied":
		return PermissionDenied
	default:
		return PermissionDefault
	}
}

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "default"
	}
}

// Counts holds how many items qualify for each notification condition.
// The two sets overlap: an expired item also satisfies any non-negative
// expiring threshold.
type Counts struct {
	Expired  int
	Expiring int
}

// Count computes the expired and expiring-within-threshold counts for a
// food list. Items with unparseable dates are skipped.
func Count(foods []api.Food, threshold int, now time.Time) Counts {
	var counts Counts
	for _, food := range foods {
		days, ok := FoodDaysUntil(food, now)
		if !ok {
			continue
		}
		if days < 0 {
			counts.Expired++
		}
		if days <= threshold {
			counts.Expiring++
		}
	}
	return counts
}

// Alert is the single notification an evaluator may produce per mount.
type Alert struct {
	Title  string
	Body   string
	Counts Counts
}

// Evaluator decides once per mount whether a notification should fire.
// Construct a fresh one when the list view mounts; the shown latch never
// resets within an evaluator's lifetime.
type Evaluator struct {
	settings   *api.NotificationSettings
	permission Permission
	shown      bool
}

// NewEvaluator creates an evaluator with the latch clear and no settings
// loaded yet.
func NewEvaluator() *Evaluator {
	return &Evaluator{permission: PermissionDefault}
}

// SetSettings installs the user's notification settings, typically after
// they arrive from the API.
func (e *Evaluator) SetSettings(settings *api.NotificationSettings) {
	e.settings = settings
}

// SetPermission updates the current permission state.
func (e *Evaluator) SetPermission(p Permission) {
	e.permission = p
}

// Shown reports whether the notification for this mount has fired.
func (e *Evaluator) Shown() bool {
	return e.shown
}

// Evaluate runs whenever the food list or settings change. It returns a
// non-nil Alert at most once per evaluator: only when permission is
// granted and some item is expired or expiring. Until that condition is
// met the evaluator keeps re-evaluating on every call.
func (e *Evaluator) Evaluate(foods []api.Food, now time.Time) *Alert {
	if e.shown || e.settings == nil || !e.settings.Enabled || len(foods) == 0 {
		return nil
	}

	threshold := Threshold(e.settings.Timing)
	counts := Count(foods, threshold, now)

	if e.permission != PermissionGranted {
		return nil
	}
	if counts.Expired == 0 && counts.Expiring == 0 {
		return nil
	}

	// Latch only once a notification actually fires.
	e.shown = true

	if counts.Expired > 0 {
		return &Alert{
			Title:  "You have expired food!",
			Body:   fmt.Sprintf("%d item(s) in your list have passed their expiration date.", counts.Expired),
			Counts: counts,
		}
	}
	return &Alert{
		Title:  "Food is expiring soon!",
		Body:   expiringBody(e.settings.Timing, counts.Expiring),
		Counts: counts,
	}
}

func expiringBody(timing string, count int) string {
	switch timing {
	case api.TimingThreeDaysBefore:
		return fmt.Sprintf("%d item(s) expire within 3 days.", count)
	case api.TimingOneDayBefore:
		return fmt.Sprintf("%d item(s) expire within 1 day.", count)
	default:
		return fmt.Sprintf("%d item(s) expire today.", count)
	}
}
