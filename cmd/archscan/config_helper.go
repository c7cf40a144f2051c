package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/archscan/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GetExplicitFlags extracts which flags were explicitly set from a cobra command
func GetExplicitFlags(cmd *cobra.Command) map[string]bool {
	explicitFlags := make(map[string]bool)
	if cmd != nil {
		cmd.Flags().Visit(func(f *pflag.Flag) {
			explicitFlags[f.Name] = true
		})
	}
	return explicitFlags
}

// resolveProjectRoot returns the absolute project directory named by args (default ".")
func resolveProjectRoot(args []string) (string, error) {
	target := getTargetPathFromArgs(args)
	if target == "" {
		target = "."
	}
	root, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", target, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("path does not exist: %s", target)
		}
		return "", fmt.Errorf("cannot access path %s: %w", target, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", target)
	}
	return root, nil
}

// loadProjectConfig loads the configuration for root and applies the
// explicitly set command line overrides
func loadProjectConfig(cmd *cobra.Command, configFile, root string, o config.Overrides) (*config.Config, error) {
	cfg, err := config.LoadConfigWithTarget(configFile, root)
	if err != nil {
		return nil, err
	}
	return cfg.ApplyOverrides(o, GetExplicitFlags(cmd))
}
