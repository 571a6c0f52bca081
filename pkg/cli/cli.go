package cli

import (
	"flag"
	"fmt"

	"expirywatch/pkg/api"
	"expirywatch/pkg/auth"
	"expirywatch/pkg/commands"
	"expirywatch/pkg/config"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// Session operations
	Login string

	// Food operations
	AddFood      string
	DateFlag     string
	CategoryFlag string
	AnalyzeFile  string
	ListCmd      bool

	// Recipe operations
	RecipesCount int

	// Profile operations
	ProfileCmd bool
	NameFlag   string

	// Purge operations
	PurgeCmd bool
	YesFlag  bool

	// Import/Export operations
	ImportFile string
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	// Define command line flags
	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Session operations
	flag.StringVar(&args.Login, "login", "", "Store an access token for the API")

	// Food operations
	flag.StringVar(&args.AddFood, "add", "", "Add a new food item")
	flag.StringVar(&args.DateFlag, "date", "", "Expiration date (YYYY-MM-DD format)")
	flag.StringVar(&args.CategoryFlag, "category", "", "Food category")
	flag.StringVar(&args.AnalyzeFile, "analyze", "", "Image file to analyze for pre-filling the item")
	flag.BoolVar(&args.ListCmd, "list", false, "Print the food list sorted by expiration date")

	// Recipe operations
	flag.IntVar(&args.RecipesCount, "recipes", 0, "Suggest recipes for the N most urgent items (1-4)")

	// Profile operations
	flag.BoolVar(&args.ProfileCmd, "profile", false, "Show the signed-in user's profile")
	flag.StringVar(&args.NameFlag, "name", "", "New display name for -profile")

	// Purge operations
	flag.BoolVar(&args.PurgeCmd, "purge", false, "Delete expired items")
	flag.BoolVar(&args.YesFlag, "yes", false, "Skip confirmation")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import food items from file")
	flag.StringVar(&args.ExportFile, "export", "", "Export the food list to file")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, txt)")

	flag.Parse()
	return args
}

// HandleLogin stores the given token and returns true when -login was used.
func HandleLogin(cfg config.Config, args *Args) bool {
	if args.Login == "" {
		return false
	}
	if _, err := auth.Save(cfg.TokenFile, args.Login); err != nil {
		fmt.Printf("Error storing token: %v\n", err)
		return true
	}
	fmt.Println("Token stored.")
	return true
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(client *api.Client, session *auth.Session, args *Args) bool {
	// Check for CLI commands
	if args.AddFood != "" || args.AnalyzeFile != "" {
		commands.HandleAddFood(client, args.AddFood, args.DateFlag, args.CategoryFlag, args.AnalyzeFile)
		return true
	}

	if args.ListCmd {
		commands.HandleListCommand(client)
		return true
	}

	if args.RecipesCount != 0 {
		commands.HandleRecipesCommand(client, args.RecipesCount)
		return true
	}

	if args.ProfileCmd {
		commands.HandleProfileCommand(client, session, args.NameFlag)
		return true
	}

	if args.PurgeCmd {
		commands.HandlePurgeCommand(client, args.CategoryFlag, args.YesFlag)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(client, args.ImportFile)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(client, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}
