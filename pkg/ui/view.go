package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"expirywatch/pkg/api"
	"expirywatch/pkg/expiry"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	if m.quitting {
		return "Not signed in. Run with -login <token> or set EXPIRYWATCH_TOKEN.\n"
	}
	// Nothing renders until the session check and first fetch resolve.
	if m.gatePending {
		return ""
	}

	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		sb.WriteString(m.titleBar(" expirywatch - Food List "))
		sb.WriteString("\n\n")

		if banner := m.renderBanner(); banner != "" {
			sb.WriteString(banner)
			sb.WriteString("\n\n")
		}

		if m.permission == expiry.PermissionDefault {
			hint := fmt.Sprintf("Press %s to enable desktop notifications",
				m.keyMap.GrantNotifications.Help().Key)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.NormalTextColor)).
				Render(hint))
			sb.WriteString("\n\n")
		}

		sb.WriteString(m.renderLegend())
		sb.WriteString("\n")

		sb.WriteString(m.table.View())
		sb.WriteString("\n")

		count := fmt.Sprintf("%d item(s)", len(m.foods))
		if m.hasExpiringWithinWeek() {
			count += fmt.Sprintf("  |  %s: recipe ideas for expiring food",
				m.keyMap.SuggestRecipes.Help().Key)
		}
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render(count))
		sb.WriteString("\n")

	case AddMode:
		sb.WriteString(m.titleBar(" Register Food Item "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(m.titleBar(" Edit Food Item "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.ErrorColor)).
			Padding(0, 1).
			Render(" Delete Food Item "))
		sb.WriteString("\n\n")

		if m.editingItem != nil {
			sb.WriteString("Really delete this item?\n\n")
			sb.WriteString(fmt.Sprintf("Name: %s\n", m.editingItem.Name))
			sb.WriteString(fmt.Sprintf("Expires: %s\n", m.editingItem.ExpirationDate))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case DetailMode:
		sb.WriteString(m.titleBar(" Food Item Details "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderDetail())

	case RecipeSelectMode:
		sb.WriteString(m.titleBar(" Cook With Expiring Food "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderRecipeSelect())

	case RecipeViewMode:
		sb.WriteString(m.titleBar(" Recipe Suggestions "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderRecipes())

	case SettingsMode:
		sb.WriteString(m.titleBar(" Notification Settings "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderSettings())

	case HelpViewMode:
		sb.WriteString(m.titleBar(" Commands "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderHelp())
	}

	if m.errText != "" {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(m.errText))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) titleBar(title string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(title)
}

// renderBanner shows the in-view expiring/expired summary when
// notifications are enabled and something qualifies.
func (m Model) renderBanner() string {
	if m.settings == nil || !m.settings.Enabled {
		return ""
	}
	if m.counts.Expired == 0 && m.counts.Expiring == 0 {
		return ""
	}

	color := m.styles.WarningColor
	headline := "Food is expiring soon!"
	if m.counts.Expired > 0 {
		color = m.styles.DangerColor
		headline = "You have expired food!"
	}

	var lines []string
	lines = append(lines, headline)
	if m.counts.Expired > 0 {
		lines = append(lines, fmt.Sprintf("%d item(s) have passed their expiration date.", m.counts.Expired))
	}
	if m.counts.Expiring > 0 {
		switch m.settings.Timing {
		case api.TimingThreeDaysBefore:
			lines = append(lines, fmt.Sprintf("%d item(s) expire within 3 days.", m.counts.Expiring))
		case api.TimingOneDayBefore:
			lines = append(lines, fmt.Sprintf("%d item(s) expire within 1 day.", m.counts.Expiring))
		default:
			lines = append(lines, fmt.Sprintf("%d item(s) expire today.", m.counts.Expiring))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(color)).
		Foreground(lipgloss.Color(color)).
		PaddingLeft(1).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderLegend() string {
	entry := func(color, label string) string {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
		return fmt.Sprintf("%s %s", swatch, label)
	}
	return strings.Join([]string{
		entry(m.styles.OkColor, "more than a week"),
		entry(m.styles.WarningColor, "within a week"),
		entry(m.styles.DangerColor, "within 3 days or expired"),
	}, "   ")
}

// renderForm renders the input form for adding/editing food items
func (m Model) renderForm() string {
	var sb strings.Builder

	formStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.styles.BorderColor)).
		Padding(1, 2)

	sb.WriteString("Name:\n")
	sb.WriteString(m.nameInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Expiration date (YYYY-MM-DD):\n")
	sb.WriteString(m.dateInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Category (optional):\n")
	sb.WriteString(m.categoryInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Image file (optional):\n")
	sb.WriteString(m.imageInput.View())

	if m.analyzing {
		sb.WriteString("\n\n")
		sb.WriteString(m.spinner.View())
		sb.WriteString(" analyzing image...")
	} else if m.pendingImage != "" {
		sb.WriteString("\n\nImage attached: ")
		sb.WriteString(m.pendingImage)
	}

	var footer string
	if m.mode == AddMode {
		footer = "Tab: next field • Ctrl+A: analyze image • Enter: submit • Esc: cancel"
	} else {
		footer = "Tab: next field • Enter: submit • Esc: cancel"
	}

	return formStyle.Render(sb.String()) + "\n\n" +
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render(footer)
}

func (m Model) renderDetail() string {
	if m.detailItem == nil {
		return "Loading..."
	}
	food := *m.detailItem

	tier := expiry.TierNormal
	daysText := "unknown"
	if days, ok := expiry.FoodDaysUntil(food, time.Now()); ok {
		tier = expiry.Classify(days)
		if days < 0 {
			daysText = "expired"
		} else {
			daysText = fmt.Sprintf("%d day(s) left", days)
		}
	}
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(tierColor(tier, m.styles)).
		Padding(0, 1).
		Render(daysText)

	category := food.Category
	if category == "" {
		category = "not set"
	}
	image := food.ImageURL
	if image == "" {
		image = "no image"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", food.Name))
	sb.WriteString(fmt.Sprintf("Expires:  %s  %s\n", food.ExpirationDate, badge))
	sb.WriteString(fmt.Sprintf("Category: %s\n", category))
	sb.WriteString(fmt.Sprintf("Image:    %s\n", image))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render("e: edit • Esc: back"))
	return sb.String()
}

func (m Model) renderRecipeSelect() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Pick up to %d ingredients (most urgent first):\n\n", api.MaxRecipeIngredients))
	now := time.Now()

	for i, food := range m.recipeCandidates {
		cursor := "  "
		if i == m.recipeCursor {
			cursor = "> "
		}
		checked := "[ ]"
		if m.recipeSelected[food.ID] {
			checked = "[x]"
		}

		remaining := ""
		if days, ok := expiry.FoodDaysUntil(food, now); ok {
			if days < 0 {
				remaining = lipgloss.NewStyle().
					Foreground(lipgloss.Color(m.styles.DangerColor)).
					Render("(expired)")
			} else {
				remaining = fmt.Sprintf("(%d day(s) left)", days)
			}
		}

		line := fmt.Sprintf("%s%s %s %s", cursor, checked, food.Name, remaining)
		if i == m.recipeCursor {
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.recipesLoading {
		sb.WriteString(m.spinner.View())
		sb.WriteString(" fetching recipes...")
	} else {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render("Space: select • Enter: get recipes • Esc: back"))
	}
	return sb.String()
}

func (m Model) renderRecipes() string {
	if len(m.recipes) == 0 {
		return "No recipes came back for that combination.\n\nEsc: back"
	}

	var sb strings.Builder
	for i, recipe := range m.recipes {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(recipe.Name))
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render(fmt.Sprintf("Cooking time: %s  |  Difficulty: %s", recipe.CookingTime, recipe.Difficulty)))
		sb.WriteString("\n\nIngredients:\n")
		for _, ingredient := range recipe.Ingredients {
			sb.WriteString(fmt.Sprintf("  - %s\n", ingredient))
		}
		sb.WriteString("\nSteps:\n")
		for j, step := range recipe.Steps {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", j+1, step))
		}
		if recipe.Tips != "" {
			sb.WriteString(fmt.Sprintf("\nTips: %s\n", recipe.Tips))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render("Esc: back"))
	return sb.String()
}

func (m Model) renderSettings() string {
	enabled := "off"
	if m.settingsDraft.Enabled {
		enabled = "on"
	}
	voice := "off"
	if m.settingsDraft.VoiceEnabled {
		voice = "on"
	}

	rows := []string{
		fmt.Sprintf("Notifications:  %s", enabled),
		fmt.Sprintf("Timing:         %s", timingLabel(m.settingsDraft.Timing)),
		fmt.Sprintf("Voice alerts:   %s", voice),
	}

	var sb strings.Builder
	for i, row := range rows {
		cursor := "  "
		if i == m.settingsCursor {
			cursor = "> "
			row = lipgloss.NewStyle().Bold(true).Render(row)
		}
		sb.WriteString(cursor)
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render("Space: change • Enter: save • Esc: cancel"))
	return sb.String()
}

func (m Model) renderHelp() string {
	bindings := []struct {
		key  string
		help string
	}{
		{m.keyMap.QuitApp.Help().Key, m.keyMap.QuitApp.Help().Desc},
		{m.keyMap.Refresh.Help().Key, m.keyMap.Refresh.Help().Desc},
		{m.keyMap.AddFood.Help().Key, m.keyMap.AddFood.Help().Desc},
		{m.keyMap.EditFood.Help().Key, m.keyMap.EditFood.Help().Desc},
		{m.keyMap.DeleteFood.Help().Key, m.keyMap.DeleteFood.Help().Desc},
		{m.keyMap.ShowDetail.Help().Key, m.keyMap.ShowDetail.Help().Desc},
		{m.keyMap.SortByName.Help().Key, m.keyMap.SortByName.Help().Desc},
		{m.keyMap.SortByExpiration.Help().Key, m.keyMap.SortByExpiration.Help().Desc},
		{m.keyMap.SortByCategory.Help().Key, m.keyMap.SortByCategory.Help().Desc},
		{m.keyMap.SuggestRecipes.Help().Key, m.keyMap.SuggestRecipes.Help().Desc},
		{m.keyMap.OpenSettings.Help().Key, m.keyMap.OpenSettings.Help().Desc},
		{m.keyMap.GrantNotifications.Help().Key, m.keyMap.GrantNotifications.Help().Desc},
	}

	var sb strings.Builder
	for _, b := range bindings {
		sb.WriteString(fmt.Sprintf("  %-8s %s\n", b.key, b.help))
	}
	sb.WriteString("\n  Esc: back\n")
	return sb.String()
}
