package main

import (
	"log/slog"
	"os"

	"github.com/ludo-technologies/archscan/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "archscan",
	Short: "An architecture compliance linter for TypeScript projects",
	Long: `archscan checks that a TypeScript project follows its declared architecture.

It extracts the imports of every source file, builds the file dependency
graph and validates it against the rules of an architectural style.

Features:
  • Layer-order rules for Feature-Sliced Design, Clean and Hexagonal architecture
  • Naming and placement conventions
  • Circular dependency detection
  • Architecture detection from the project layout`,
	Version:      version.Short(),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogging(verbose)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	// Add main subcommands
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewDepsCmd())
	rootCmd.AddCommand(NewDetectCmd())
	rootCmd.AddCommand(NewRulesCmd())
	rootCmd.AddCommand(NewReportCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

// setupLogging installs the default logger; stdout is reserved for reports
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
