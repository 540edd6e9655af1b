// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/teachmate/internal/config"
	"github.com/aidanlsb/teachmate/internal/ui"
)

var (
	// Global flags
	rosterName     string // Named roster from config
	rosterPathFlag string // Explicit path (rare)
	configPath     string

	// Resolved values
	resolvedRosterPath string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tm",
	Short: "TeachMate - a student record manager for teaching assistants",
	Long: `TeachMate keeps a class roster of students and contacts from the terminal:
records, module codes, tags, grades, attendance and consultation slots.

Commands address records by their position in the currently displayed list,
so 'find' followed by 'edit 1' edits the first match.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip roster resolution for commands that don't need it
		switch cmd.Name() {
		case "completion", "help", "version", "docs":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		// Load config
		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)

		// Resolve roster path: explicit path > named roster > default
		if rosterPathFlag != "" {
			resolvedRosterPath = rosterPathFlag
			return nil
		}
		resolvedRosterPath, err = cfg.GetRosterPath(rosterName)
		if err != nil {
			return fmt.Errorf("roster '%s' not found\n\nAdd it under [rosters] in %s", rosterName, config.DefaultPath())
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rosterName, "roster", "r", "", "Named roster from config")
	rootCmd.PersistentFlags().StringVar(&rosterPathFlag, "roster-path", "", "Explicit path to roster directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getRosterPath returns the resolved roster directory.
func getRosterPath() string {
	return resolvedRosterPath
}

func loadGlobalConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}
