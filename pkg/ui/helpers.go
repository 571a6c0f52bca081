package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"expirywatch/pkg/api"
	"expirywatch/pkg/config"
	"expirywatch/pkg/expiry"
	"expirywatch/pkg/utils"
)

// tierColor is the single place the urgency tiers map to colors. Both
// the list alarm cell and the detail badge go through it.
func tierColor(tier expiry.Tier, styles config.Styles) lipgloss.Color {
	switch tier {
	case expiry.TierExpired, expiry.TierDanger:
		return lipgloss.Color(styles.DangerColor)
	case expiry.TierWarning:
		return lipgloss.Color(styles.WarningColor)
	default:
		return lipgloss.Color(styles.OkColor)
	}
}

func buildColumns(cfg SortConfig, width int) []table.Column {
	arrow := func(key SortKey) string {
		if cfg.Key != key {
			return ""
		}
		if cfg.Direction == SortDesc {
			return " ↓"
		}
		return " ↑"
	}

	nameWidth := width - 38
	if nameWidth < 12 {
		nameWidth = 12
	}

	return []table.Column{
		{Title: "", Width: 2},
		{Title: "Name" + arrow(SortByName), Width: nameWidth},
		{Title: "Expires" + arrow(SortByExpiration), Width: 14},
		{Title: "Category" + arrow(SortByCategory), Width: 14},
	}
}

// refreshTable re-sorts the food list and rebuilds the table rows with
// urgency coloring.
func (m *Model) refreshTable() {
	m.visible = SortFoods(m.foods, m.sortConfig)
	m.table.SetColumns(buildColumns(m.sortConfig, m.table.Width()))

	now := time.Now()
	rows := make([]table.Row, 0, len(m.visible))
	for _, food := range m.visible {
		tier := expiry.TierNormal
		if days, ok := expiry.FoodDaysUntil(food, now); ok {
			tier = expiry.Classify(days)
		}
		alarm := lipgloss.NewStyle().
			Foreground(tierColor(tier, m.styles)).
			Render("■")

		expires := food.ExpirationDate
		if tier == expiry.TierExpired {
			expires += " !"
		}

		category := food.Category
		if category == "" {
			category = "-"
		}

		rows = append(rows, table.Row{alarm, food.Name, expires, category})
	}
	m.table.SetRows(rows)
}

// selectedFood returns the item under the cursor in display order.
func (m *Model) selectedFood() *api.Food {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return nil
	}
	food := m.visible[idx]
	return &food
}

// requestSort applies a header-toggle to the active sort and redraws.
func (m *Model) requestSort(key SortKey) {
	m.sortConfig = m.sortConfig.Toggle(key)
	m.refreshTable()
}

// evaluateNotifications runs the once-per-mount notification decision.
// Called whenever the food list or the settings change.
func (m *Model) evaluateNotifications() {
	// Banner counts track the current data regardless of the latch.
	if m.settings != nil && m.settings.Enabled {
		threshold := expiry.Threshold(m.settings.Timing)
		m.counts = expiry.Count(m.foods, threshold, time.Now())
	} else {
		m.counts = expiry.Counts{}
	}

	alert := m.evaluator.Evaluate(m.foods, time.Now())
	if alert == nil {
		return
	}
	if err := m.notifier.Send(alert.Title, alert.Body); err != nil {
		utils.Log("Notification delivery failed: %v", err)
	}
}

// grantNotifications records the user's permission decision and lets the
// evaluator act on it.
func (m *Model) grantNotifications() {
	m.permission = expiry.PermissionGranted
	m.evaluator.SetPermission(m.permission)
	if err := config.SavePermission(m.permission.String()); err != nil {
		utils.Log("Could not persist notification permission: %v", err)
	}
	m.evaluateNotifications()
}

// hasExpiringWithinWeek gates the recipe entry point: suggestions are
// offered only when something expires within 7 days.
func (m *Model) hasExpiringWithinWeek() bool {
	now := time.Now()
	for _, food := range m.foods {
		if days, ok := expiry.FoodDaysUntil(food, now); ok && days <= 7 {
			return true
		}
	}
	return false
}

// openRecipeSelect resets and enters the ingredient picking view.
func (m *Model) openRecipeSelect() {
	m.recipeCandidates = MostUrgent(m.foods, 10)
	m.recipeSelected = make(map[string]bool)
	m.recipeCursor = 0
	m.recipes = nil
	m.mode = RecipeSelectMode
}

func (m *Model) selectedIngredients() []string {
	var names []string
	for _, food := range m.recipeCandidates {
		if m.recipeSelected[food.ID] {
			names = append(names, food.Name)
		}
	}
	return names
}

// focusNextInput cycles through the form inputs
func (m *Model) focusNextInput() {
	m.setActiveInput((m.activeInput + 1) % 4)
}

// focusPreviousInput cycles through the form inputs
func (m *Model) focusPreviousInput() {
	m.setActiveInput((m.activeInput + 3) % 4)
}

func (m *Model) setActiveInput(idx int) {
	m.activeInput = idx

	m.nameInput.Blur()
	m.dateInput.Blur()
	m.categoryInput.Blur()
	m.imageInput.Blur()

	switch idx {
	case 0:
		m.nameInput.Focus()
	case 1:
		m.dateInput.Focus()
	case 2:
		m.categoryInput.Focus()
	case 3:
		m.imageInput.Focus()
	}
}

// submitForm builds and sends the create/update request for the food
// form. Validation failures surface inline without leaving the form.
func (m *Model) submitForm() tea.Cmd {
	req := api.FoodRequest{
		Name:           strings.TrimSpace(m.nameInput.Value()),
		ExpirationDate: strings.TrimSpace(m.dateInput.Value()),
		Category:       strings.TrimSpace(m.categoryInput.Value()),
		ImageURL:       m.pendingImage,
	}

	if err := req.Validate(); err != nil {
		m.errText = err.Error()
		return nil
	}

	id := ""
	if m.mode == EditMode && m.editingItem != nil {
		id = m.editingItem.ID
	}

	m.mode = NormalMode
	m.resetInputs()
	m.editingItem = nil
	m.errText = ""
	return m.saveFood(id, req)
}

// applyAnalysis pre-fills the form from an image analysis result.
func (m *Model) applyAnalysis(result *api.AnalysisResult) {
	m.analyzing = false
	m.pendingImage = result.ImageURL
	if result.Name != "" {
		m.nameInput.SetValue(result.Name)
	}
	m.categoryInput.SetValue(api.NormalizeCategory(result.Category))
	if result.ExpirationDate != "" {
		m.dateInput.SetValue(result.ExpirationDate)
	}
}

// settingsTimings is the cycle order for the timing field.
var settingsTimings = []string{
	api.TimingOnExpiryDate,
	api.TimingOneDayBefore,
	api.TimingThreeDaysBefore,
}

func timingLabel(timing string) string {
	switch timing {
	case api.TimingThreeDaysBefore:
		return "three days before"
	case api.TimingOneDayBefore:
		return "one day before"
	default:
		return "on the expiry date"
	}
}

// cycleTiming advances the draft timing to the next option.
func (m *Model) cycleTiming() {
	for i, t := range settingsTimings {
		if t == m.settingsDraft.Timing {
			m.settingsDraft.Timing = settingsTimings[(i+1)%len(settingsTimings)]
			return
		}
	}
	m.settingsDraft.Timing = settingsTimings[0]
}

// openSettings enters the settings form seeded from the loaded settings
// merged over the defaults.
func (m *Model) openSettings() {
	base := api.DefaultNotificationSettings(m.session.UserID())
	m.settingsDraft = api.MergeNotificationSettings(base, m.settings)
	m.settingsCursor = 0
	m.mode = SettingsMode
}

func formatError(context string, err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error %s (status %d).", context, apiErr.StatusCode)
	}
	return fmt.Sprintf("Error %s: could not reach the server.", context)
}
