package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":           {"ctrl+b", "show/hide commands"},
	"QuitApp":            {"q", "quit"},
	"Refresh":            {"f", "refetch the food list"},
	"AddFood":            {"a", "register a food item"},
	"EditFood":           {"e", "edit selected item"},
	"DeleteFood":         {"d", "delete selected item"},
	"ShowDetail":         {"enter", "show item details"},
	"SortByName":         {"1", "sort by name"},
	"SortByExpiration":   {"2", "sort by expiration date"},
	"SortByCategory":     {"3", "sort by category"},
	"SuggestRecipes":     {"r", "suggest recipes for expiring items"},
	"OpenSettings":       {"o", "notification settings"},
	"GrantNotifications": {"N", "enable desktop notifications"},
}

type KeyMap struct {
	ShowHelp           key.Binding
	QuitApp            key.Binding
	Refresh            key.Binding
	AddFood            key.Binding
	EditFood           key.Binding
	DeleteFood         key.Binding
	ShowDetail         key.Binding
	SortByName         key.Binding
	SortByExpiration   key.Binding
	SortByCategory     key.Binding
	SuggestRecipes     key.Binding
	OpenSettings       key.Binding
	GrantNotifications key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Refresh":
			km.Refresh = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddFood":
			km.AddFood = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "EditFood":
			km.EditFood = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteFood":
			km.DeleteFood = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowDetail":
			km.ShowDetail = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SortByName":
			km.SortByName = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SortByExpiration":
			km.SortByExpiration = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SortByCategory":
			km.SortByCategory = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SuggestRecipes":
			km.SuggestRecipes = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "OpenSettings":
			km.OpenSettings = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "GrantNotifications":
			km.GrantNotifications = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
