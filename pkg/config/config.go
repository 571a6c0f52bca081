package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"expirywatch/pkg/keymaps"
)

// Config holds the application configuration.
type Config struct {
	APIBaseURL string            `mapstructure:"api_base_url"`
	TokenFile  string            `mapstructure:"token_file"`
	StylesFile string            `mapstructure:"styles_file"`
	KeyMap     map[string]string `mapstructure:"keymap"`

	// NotificationPermission mirrors the desktop-notification permission:
	// "default" until the user decides, then "granted" or "denied".
	NotificationPermission string `mapstructure:"notification_permission"`
}

// Styles holds the application colors and styling information.
type Styles struct {
	BorderColor       string `json:"border_color"`
	AccentColor       string `json:"accent_color"`
	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`

	// Urgency tier colors. Expired and Danger deliberately share one color.
	DangerColor  string `json:"danger_color"`
	WarningColor string `json:"warning_color"`
	OkColor      string `json:"ok_color"`
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "expirywatch"), nil
}

// Load reads the configuration, creating a default config file on first
// run. A .env file and EXPIRYWATCH_* variables override file values.
func Load(configPath string) (Config, Styles, error) {
	// Optional .env in the working directory; absence is fine.
	_ = godotenv.Load()

	configDir, err := Dir()
	if err != nil {
		return Config{}, Styles{}, err
	}

	config := Config{
		APIBaseURL:             "http://localhost:8000",
		TokenFile:              filepath.Join(configDir, "token"),
		StylesFile:             filepath.Join(configDir, "styles.json"),
		KeyMap:                 keymaps.GetDefaultKeyMappings(),
		NotificationPermission: "default",
	}

	viper.SetConfigName("config")
	viper.SetConfigType("json")
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(configDir)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return config, Styles{}, err
		}
		// Config file not found, create default config
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return config, Styles{}, err
		}
		viper.Set("api_base_url", config.APIBaseURL)
		viper.Set("token_file", config.TokenFile)
		viper.Set("styles_file", config.StylesFile)
		viper.Set("keymap", config.KeyMap)
		viper.Set("notification_permission", config.NotificationPermission)
		if err := viper.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
			return config, Styles{}, err
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		return config, Styles{}, err
	}

	// Environment wins over the file.
	if url := os.Getenv("EXPIRYWATCH_API_URL"); url != "" {
		config.APIBaseURL = url
	}

	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

// SavePermission persists a changed notification permission.
func SavePermission(permission string) error {
	viper.Set("notification_permission", permission)
	if err := viper.WriteConfig(); err == nil {
		return nil
	}
	configDir, err := Dir()
	if err != nil {
		return err
	}
	return viper.WriteConfigAs(filepath.Join(configDir, "config.json"))
}

// loadStyles loads the application styles from the specified path,
// writing the defaults on first run.
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		DangerColor:       "9",
		WarningColor:      "11",
		OkColor:           "10",
	}

	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		if os.IsNotExist(err) {
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaultStyles, err
			}

			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}

			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}

			return defaultStyles, nil
		}
		return defaultStyles, err
	}

	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}
