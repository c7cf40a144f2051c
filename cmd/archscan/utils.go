package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ludo-technologies/archscan/internal/config"
)

// generateTimestampedFileName generates a filename with timestamp suffix
func generateTimestampedFileName(command, extension string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s.%s", command, timestamp, extension)
}

// resolveOutputDirectory determines the report directory from configuration.
// A relative directory is taken from the current working directory so that
// reports are not written into the analyzed sources.
func resolveOutputDirectory(configFile, targetPath string) (string, error) {
	cfg, err := config.LoadConfigWithTarget(configFile, targetPath)
	if err != nil {
		// Don't hide configuration errors - they should be visible to users
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return cfg.ReportsDir, nil
	}
	return config.ResolveDir(cwd, cfg.ReportsDir), nil
}

// generateOutputFilePath combines filename generation and directory resolution
// and makes sure the directory exists
func generateOutputFilePath(command, extension, configFile, targetPath string) (string, error) {
	filename := generateTimestampedFileName(command, extension)
	outputDir, err := resolveOutputDirectory(configFile, targetPath)
	if err != nil {
		return "", err
	}

	if mkErr := os.MkdirAll(outputDir, 0o755); mkErr != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, mkErr)
	}
	return filepath.Join(outputDir, filename), nil
}

// getTargetPathFromArgs extracts the first argument as target path, or returns empty string
func getTargetPathFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
