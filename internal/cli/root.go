// Package cli implements the ruta command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput   bool
	pathOverride string
)

// rootCmd is the root command for ruta.
var rootCmd = &cobra.Command{
	Use:     "ruta",
	Version: "dev",
	Short:   "Learning-path progress tracker",
	Long: `ruta tracks your progress through learning paths from the terminal.

Mark modules complete as you work through a path; progress persists across
sessions and survives machine restarts. Paths are defined by YAML manifests
in ~/.ruta/paths/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version reported by `ruta version`.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&pathOverride, "path", "", "Learning path to operate on (default: the active path)")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "progress",
		Title: "Progress Tracking:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "path-management",
		Title: "Path Management:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(pathsCmd)

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the ruta CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)
}
