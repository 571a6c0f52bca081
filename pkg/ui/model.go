package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"expirywatch/pkg/api"
	"expirywatch/pkg/auth"
	"expirywatch/pkg/config"
	"expirywatch/pkg/expiry"
	"expirywatch/pkg/keymaps"
	"expirywatch/pkg/notify"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	DetailMode
	RecipeSelectMode // picking ingredients for a suggestion request
	RecipeViewMode   // reading the returned recipes
	SettingsMode     // editing notification settings
	HelpViewMode
)

// Model represents the application state
type Model struct {
	table    table.Model
	foods    []api.Food
	visible  []api.Food // foods in current table order
	client   *api.Client
	session  *auth.Session
	notifier notify.Notifier

	width, height int
	errText       string

	// Session gate: nothing renders until the session check and the
	// first fetch resolve; an unauthenticated session quits immediately.
	gatePending bool
	quitting    bool

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// Sorting state
	sortConfig SortConfig

	// Notification state
	evaluator  *expiry.Evaluator
	permission expiry.Permission
	settings   *api.NotificationSettings
	counts     expiry.Counts

	// Form state
	mode          InputMode
	nameInput     textinput.Model
	dateInput     textinput.Model
	categoryInput textinput.Model
	imageInput    textinput.Model
	activeInput   int
	analyzing     bool
	pendingImage  string // image_url returned by analysis, sent on submit

	// Edit/delete/detail state
	editingItem *api.Food
	detailItem  *api.Food

	// Recipe state
	recipeCandidates []api.Food
	recipeSelected   map[string]bool
	recipeCursor     int
	recipes          []api.Recipe
	recipesLoading   bool
	spinner          spinner.Model

	// Settings form state
	settingsDraft  api.NotificationSettings
	settingsCursor int
}

// NewModel creates a new UI model with the provided configuration
func NewModel(client *api.Client, session *auth.Session, notifier notify.Notifier, cfg config.Config, styles config.Styles) Model {
	columns := buildColumns(DefaultSortConfig(), 60)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	nameInput := textinput.New()
	nameInput.Placeholder = "Name"
	nameInput.Focus()
	nameInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "Expiration date (YYYY-MM-DD)"
	dateInput.Width = 40

	categoryInput := textinput.New()
	categoryInput.Placeholder = "Category (vegetable, egg, fruit, ...; optional)"
	categoryInput.Width = 40

	imageInput := textinput.New()
	imageInput.Placeholder = "Image file to analyze (optional)"
	imageInput.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.AccentColor))

	return Model{
		table:         t,
		client:        client,
		session:       session,
		notifier:      notifier,
		config:        cfg,
		styles:        styles,
		keyMap:        keymaps.BuildKeyMap(cfg.KeyMap),
		gatePending:   true,
		mode:          NormalMode,
		sortConfig:    DefaultSortConfig(),
		evaluator:     newEvaluator(cfg),
		permission:    expiry.ParsePermission(cfg.NotificationPermission),
		nameInput:     nameInput,
		dateInput:     dateInput,
		categoryInput: categoryInput,
		imageInput:    imageInput,
		spinner:       sp,
	}
}

func newEvaluator(cfg config.Config) *expiry.Evaluator {
	e := expiry.NewEvaluator()
	e.SetPermission(expiry.ParsePermission(cfg.NotificationPermission))
	return e
}

// Init kicks off the session check; fetches follow once it passes.
func (m Model) Init() tea.Cmd {
	return m.checkSession()
}

// resetInputs clears all form inputs
func (m *Model) resetInputs() {
	m.nameInput.Reset()
	m.dateInput.Reset()
	m.categoryInput.Reset()
	m.imageInput.Reset()
	m.pendingImage = ""
	m.analyzing = false

	m.activeInput = 0
	m.nameInput.Focus()
	m.dateInput.Blur()
	m.categoryInput.Blur()
	m.imageInput.Blur()
}
