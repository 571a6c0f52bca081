package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"expirywatch/pkg/api"
	"expirywatch/pkg/auth"
	"expirywatch/pkg/cli"
	"expirywatch/pkg/config"
	"expirywatch/pkg/notify"
	"expirywatch/pkg/ui"
	"expirywatch/pkg/utils"
)

func main() {
	// Parse command line arguments
	args := cli.ParseArgs()

	// Initialize logging
	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	// Load configuration
	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cli.HandleLogin(cfg, args) {
		return
	}

	// Build the session and the API client
	session, err := auth.Load(cfg.TokenFile)
	if err != nil {
		fmt.Printf("Error loading session: %v\n", err)
		os.Exit(1)
	}
	client := api.NewClient(cfg.APIBaseURL, session)

	// Handle one-shot CLI commands
	if cli.HandleCommands(client, session, args) {
		return
	}

	// Create and run the Bubble Tea program
	p := tea.NewProgram(ui.NewModel(client, session, notify.NewDesktop(), cfg, styles), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
