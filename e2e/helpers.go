package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildArchscanBinary builds the CLI into a temporary directory
func buildArchscanBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "archscan")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/archscan")

	// Build from the project root (one level up from e2e directory)
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("Failed to get project root: %v", err)
	}
	cmd.Dir = projectRoot

	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build archscan binary: %v\n%s", err, out)
	}
	return binaryPath
}

// createTestSourceFile writes content to dir/rel, creating parent directories
func createTestSourceFile(t *testing.T, dir, rel, content string) {
	t.Helper()

	filePath := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", rel, err)
	}
}

// createTestConfigFile creates a temporary .archscan.toml config file for testing
// that directs reports to the specified output directory
func createTestConfigFile(t *testing.T, testDir, outputDir, architecture string) {
	t.Helper()
	configFile := filepath.Join(testDir, ".archscan.toml")
	configContent := fmt.Sprintf("[architecture]\ntype = %q\n\n[output]\nreports_dir = %q\n",
		architecture, filepath.ToSlash(outputDir))
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
}

// createFSDProject lays out a small Feature-Sliced project; with violation set
// the feature slice imports a page
func createFSDProject(t *testing.T, dir string, violation bool) {
	t.Helper()
	auth := "import { api } from '@/shared/api'\n"
	if violation {
		auth += "import Login from '@/pages/login'\n"
	}
	createTestSourceFile(t, dir, "src/shared/api/index.ts", "export const api = {}\n")
	createTestSourceFile(t, dir, "src/features/auth/index.ts", auth)
	createTestSourceFile(t, dir, "src/pages/login/index.tsx", "import { auth } from '@/features/auth'\n")
}
