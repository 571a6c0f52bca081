package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"expirywatch/pkg/api"
	"expirywatch/pkg/expiry"
	"expirywatch/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case sessionCheckedMsg:
		if !msg.authenticated {
			// The redirect-away analog: leave immediately.
			m.quitting = true
			return m, tea.Quit
		}
		return m, tea.Batch(m.fetchFoods(), m.fetchSettings())

	case foodsLoadedMsg:
		m.gatePending = false
		m.foods = msg.foods
		m.refreshTable()
		m.evaluateNotifications()

	case settingsLoadedMsg:
		m.settings = msg.settings
		m.evaluator.SetSettings(msg.settings)
		m.evaluateNotifications()

	case foodDeletedMsg:
		kept := make([]api.Food, 0, len(m.foods))
		for _, food := range m.foods {
			if food.ID != msg.id {
				kept = append(kept, food)
			}
		}
		m.foods = kept
		m.refreshTable()
		m.evaluateNotifications()

	case foodSavedMsg:
		// Full list replacement after a create/update round-trip.
		return m, m.fetchFoods()

	case detailLoadedMsg:
		m.detailItem = msg.food
		m.mode = DetailMode

	case recipesLoadedMsg:
		m.recipesLoading = false
		m.recipes = msg.recipes
		m.mode = RecipeViewMode

	case analysisDoneMsg:
		m.applyAnalysis(msg.result)

	case settingsSavedMsg:
		saved := msg.settings
		m.settings = &saved
		m.evaluator.SetSettings(&saved)
		m.mode = NormalMode
		m.evaluateNotifications()

	case errMsg:
		utils.Log("UI error while %s: %v", msg.context, msg.err)
		m.errText = formatError(msg.context, msg.err)
		m.analyzing = false
		m.recipesLoading = false
		// A failed initial fetch still opens the view, list left empty.
		m.gatePending = false

	case spinner.TickMsg:
		if m.recipesLoading || m.analyzing {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.Refresh):
				m.errText = ""
				return m, tea.Batch(m.fetchFoods(), m.fetchSettings())

			case key.Matches(msg, m.keyMap.AddFood):
				m.mode = AddMode
				m.resetInputs()

			case key.Matches(msg, m.keyMap.EditFood):
				if food := m.selectedFood(); food != nil {
					m.mode = EditMode
					m.editingItem = food
					m.resetInputs()

					m.nameInput.SetValue(food.Name)
					m.dateInput.SetValue(food.ExpirationDate)
					m.categoryInput.SetValue(food.Category)
					m.pendingImage = food.ImageURL
				}

			case key.Matches(msg, m.keyMap.DeleteFood):
				if food := m.selectedFood(); food != nil {
					m.mode = DeleteConfirmMode
					m.editingItem = food
				}

			case key.Matches(msg, m.keyMap.ShowDetail):
				if food := m.selectedFood(); food != nil {
					return m, m.fetchDetail(food.ID)
				}

			case key.Matches(msg, m.keyMap.SortByName):
				m.requestSort(SortByName)

			case key.Matches(msg, m.keyMap.SortByExpiration):
				m.requestSort(SortByExpiration)

			case key.Matches(msg, m.keyMap.SortByCategory):
				m.requestSort(SortByCategory)

			case key.Matches(msg, m.keyMap.SuggestRecipes):
				if m.hasExpiringWithinWeek() {
					m.openRecipeSelect()
				}

			case key.Matches(msg, m.keyMap.OpenSettings):
				m.openSettings()

			case key.Matches(msg, m.keyMap.GrantNotifications):
				if m.permission == expiry.PermissionDefault {
					m.grantNotifications()
				}
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.resetInputs()
				m.editingItem = nil
				m.errText = ""

			case "tab":
				m.focusNextInput()

			case "shift+tab":
				m.focusPreviousInput()

			case "enter":
				if m.activeInput == 3 { // Submit on enter from the last field
					if cmd := m.submitForm(); cmd != nil {
						return m, cmd
					}
				} else {
					m.focusNextInput()
				}

			case "ctrl+a":
				path := m.imageInput.Value()
				if m.mode == AddMode && path != "" && !m.analyzing {
					m.analyzing = true
					return m, tea.Batch(m.spinner.Tick, m.analyzeImage(path))
				}
			}

			switch m.activeInput {
			case 0:
				m.nameInput, cmd = m.nameInput.Update(msg)
				cmds = append(cmds, cmd)
			case 1:
				m.dateInput, cmd = m.dateInput.Update(msg)
				cmds = append(cmds, cmd)
			case 2:
				m.categoryInput, cmd = m.categoryInput.Update(msg)
				cmds = append(cmds, cmd)
			case 3:
				m.imageInput, cmd = m.imageInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.editingItem != nil {
					utils.Log("Deleting food ID: %s", m.editingItem.ID)
					id := m.editingItem.ID
					m.mode = NormalMode
					m.editingItem = nil
					return m, m.deleteFood(id)
				}
				m.mode = NormalMode

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingItem = nil
			}

		case DetailMode:
			switch {
			case msg.String() == "esc" || key.Matches(msg, m.keyMap.QuitApp):
				m.mode = NormalMode
				m.detailItem = nil

			case key.Matches(msg, m.keyMap.EditFood):
				if m.detailItem != nil {
					food := *m.detailItem
					m.mode = EditMode
					m.editingItem = &food
					m.detailItem = nil
					m.resetInputs()
					m.nameInput.SetValue(food.Name)
					m.dateInput.SetValue(food.ExpirationDate)
					m.categoryInput.SetValue(food.Category)
					m.pendingImage = food.ImageURL
				}
			}

		case RecipeSelectMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode

			case "up", "k":
				if m.recipeCursor > 0 {
					m.recipeCursor--
				}

			case "down", "j":
				if m.recipeCursor < len(m.recipeCandidates)-1 {
					m.recipeCursor++
				}

			case " ":
				if m.recipeCursor < len(m.recipeCandidates) {
					id := m.recipeCandidates[m.recipeCursor].ID
					if m.recipeSelected[id] {
						delete(m.recipeSelected, id)
					} else if len(m.recipeSelected) < api.MaxRecipeIngredients {
						m.recipeSelected[id] = true
					}
				}

			case "enter":
				ingredients := m.selectedIngredients()
				if len(ingredients) > 0 && !m.recipesLoading {
					m.recipesLoading = true
					return m, tea.Batch(m.spinner.Tick, m.fetchRecipes(ingredients))
				}
			}

		case RecipeViewMode:
			switch msg.String() {
			case "esc", "enter":
				m.mode = NormalMode
				m.recipes = nil
				m.recipeSelected = nil
			}

		case SettingsMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode

			case "up", "k":
				if m.settingsCursor > 0 {
					m.settingsCursor--
				}

			case "down", "j":
				if m.settingsCursor < 2 {
					m.settingsCursor++
				}

			case " ", "left", "right":
				switch m.settingsCursor {
				case 0:
					m.settingsDraft.Enabled = !m.settingsDraft.Enabled
				case 1:
					m.cycleTiming()
				case 2:
					m.settingsDraft.VoiceEnabled = !m.settingsDraft.VoiceEnabled
				}

			case "enter":
				return m, m.saveSettings(m.settingsDraft)
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b":
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 10)
		m.refreshTable()
	}

	// Only update table in normal mode
	if m.mode == NormalMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
