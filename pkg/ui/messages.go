package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"expirywatch/pkg/api"
)

// Messages delivered back into Update when an API call finishes. Each
// fetch runs as a tea.Cmd so the event loop never blocks on the network.

type sessionCheckedMsg struct {
	authenticated bool
}

type foodsLoadedMsg struct {
	foods []api.Food
}

type settingsLoadedMsg struct {
	settings *api.NotificationSettings
}

type foodDeletedMsg struct {
	id string
}

type foodSavedMsg struct{}

type detailLoadedMsg struct {
	food *api.Food
}

type recipesLoadedMsg struct {
	recipes []api.Recipe
}

type analysisDoneMsg struct {
	result *api.AnalysisResult
}

type settingsSavedMsg struct {
	settings api.NotificationSettings
}

// errMsg carries a failed operation's error plus a short label for the
// inline message.
type errMsg struct {
	context string
	err     error
}

func (m Model) checkSession() tea.Cmd {
	return func() tea.Msg {
		return sessionCheckedMsg{authenticated: m.session.Authenticated()}
	}
}

func (m Model) fetchFoods() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		foods, err := client.ListFoods()
		if err != nil {
			return errMsg{context: "loading the food list", err: err}
		}
		return foodsLoadedMsg{foods: foods}
	}
}

func (m Model) fetchSettings() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		settings, err := client.GetNotificationSettings()
		if err != nil {
			return errMsg{context: "loading notification settings", err: err}
		}
		return settingsLoadedMsg{settings: settings}
	}
}

func (m Model) deleteFood(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.DeleteFood(id); err != nil {
			return errMsg{context: "deleting the item", err: err}
		}
		return foodDeletedMsg{id: id}
	}
}

func (m Model) saveFood(id string, req api.FoodRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = client.CreateFood(req)
		} else {
			_, err = client.UpdateFood(id, req)
		}
		if err != nil {
			return errMsg{context: "saving the item", err: err}
		}
		return foodSavedMsg{}
	}
}

func (m Model) fetchDetail(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		food, err := client.GetFood(id)
		if err != nil {
			return errMsg{context: "loading the item", err: err}
		}
		return detailLoadedMsg{food: food}
	}
}

func (m Model) fetchRecipes(ingredients []string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		recipes, err := client.GetRecipes(ingredients)
		if err != nil {
			return errMsg{context: "fetching recipes", err: err}
		}
		return recipesLoadedMsg{recipes: recipes}
	}
}

func (m Model) analyzeImage(path string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.AnalyzeImage(path)
		if err != nil {
			return errMsg{context: "analyzing the image", err: err}
		}
		return analysisDoneMsg{result: result}
	}
}

func (m Model) saveSettings(settings api.NotificationSettings) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		saved, err := client.UpdateNotificationSettings(settings)
		if err != nil {
			return errMsg{context: "saving notification settings", err: err}
		}
		return settingsSavedMsg{settings: *saved}
	}
}
