package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ludo-technologies/archscan/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.ArchitectureType != domain.ArchitectureAuto {
		t.Errorf("Expected architecture auto, got %s", config.ArchitectureType)
	}
	if config.StrictnessLevel != domain.StrictnessModerate {
		t.Errorf("Expected strictness moderate, got %s", config.StrictnessLevel)
	}
	if config.CacheDir != domain.DefaultCacheDir {
		t.Errorf("Expected cache dir %s, got %s", domain.DefaultCacheDir, config.CacheDir)
	}
	if len(config.Aliases) != 5 {
		t.Errorf("Expected 5 default aliases, got %d", len(config.Aliases))
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoadConfig_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "archscan.toml",
			content: `[architecture]
type = "fsd"
strictness = "strict"

[input]
max_files = 50
`,
		},
		{
			name: "yaml",
			file: "archscan.yaml",
			content: `architecture:
  type: fsd
  strictness: strict
input:
  max_files: 50
`,
		},
		{
			name:    "json",
			file:    "archscan.json",
			content: `{"architecture": {"type": "fsd", "strictness": "strict"}, "input": {"max_files": 50}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("Failed to load config: %v", err)
			}
			if config.ArchitectureType != domain.ArchitectureFSD {
				t.Errorf("Expected fsd, got %s", config.ArchitectureType)
			}
			if config.StrictnessLevel != domain.StrictnessStrict {
				t.Errorf("Expected strict, got %s", config.StrictnessLevel)
			}
			if config.MaxFiles != 50 {
				t.Errorf("Expected max_files 50, got %d", config.MaxFiles)
			}
			if config.Source != path {
				t.Errorf("Expected source %s, got %s", path, config.Source)
			}
			// untouched keys keep defaults
			if !reflect.DeepEqual(config.IncludePatterns, domain.DefaultIncludePatterns()) {
				t.Errorf("Expected default include patterns, got %v", config.IncludePatterns)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
	if domain.ErrorCode(err) != domain.ErrCodeConfigError {
		t.Errorf("Expected config error, got %v", err)
	}
}

func TestLoadConfigWithTarget_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".archscan.toml"), `[architecture]
type = "clean"
detect = true

[rules]
disabled = ["clean-usecase-isolation"]

[[aliases]]
prefix = "~/"
rewrite = "src/"
`)
	target := filepath.Join(root, "packages", "web", "src")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfigWithTarget("", target)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if config.ArchitectureType != domain.ArchitectureClean {
		t.Errorf("Expected clean, got %s", config.ArchitectureType)
	}
	if !config.Detect {
		t.Error("Expected detect to be true")
	}
	if !reflect.DeepEqual(config.DisabledRules, []string{"clean-usecase-isolation"}) {
		t.Errorf("Unexpected disabled rules: %v", config.DisabledRules)
	}
	if !reflect.DeepEqual(config.Aliases, []domain.AliasRule{{Prefix: "~/", Rewrite: "src/"}}) {
		t.Errorf("Unexpected aliases: %v", config.Aliases)
	}
	if config.StrictnessLevel != domain.StrictnessModerate {
		t.Errorf("Expected default strictness, got %s", config.StrictnessLevel)
	}
	if filepath.Base(config.Source) != ".archscan.toml" {
		t.Errorf("Unexpected source %s", config.Source)
	}
}

func TestLoadConfigWithTarget_FileTarget(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".archscan.toml"), "[performance]\nconcurrency = 3\n")
	file := filepath.Join(root, "src", "index.ts")
	writeFile(t, file, "export {}")

	config, err := LoadConfigWithTarget("", file)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if config.Concurrency != 3 {
		t.Errorf("Expected concurrency 3, got %d", config.Concurrency)
	}
}

func TestLoadConfigWithTarget_ExplicitPathWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".archscan.toml"), "[architecture]\ntype = \"clean\"\n")
	explicit := filepath.Join(root, "ci", "archscan.yaml")
	writeFile(t, explicit, "architecture:\n  type: hexagonal\n")

	config, err := LoadConfigWithTarget(explicit, root)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if config.ArchitectureType != domain.ArchitectureHexagonal {
		t.Errorf("Expected hexagonal, got %s", config.ArchitectureType)
	}
}

func TestTomlLoader_ZeroValuesOverrideDefaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".archscan.toml"), `[input]
ignore_patterns = []
max_files = 0
`)

	config, err := NewTomlConfigLoader().LoadConfig(root)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if len(config.IgnorePatterns) != 0 {
		t.Errorf("Expected explicit empty ignore list, got %v", config.IgnorePatterns)
	}
}

func TestTomlLoader_InvalidFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".archscan.toml"), "[architecture\ntype = ")

	_, err := NewTomlConfigLoader().LoadConfig(root)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown architecture", func(c *Config) { c.ArchitectureType = "mvc" }, "architecture.type"},
		{"unknown strictness", func(c *Config) { c.StrictnessLevel = "paranoid" }, "architecture.strictness"},
		{"negative max files", func(c *Config) { c.MaxFiles = -1 }, "input.max_files"},
		{"negative concurrency", func(c *Config) { c.Concurrency = -2 }, "performance.concurrency"},
		{"no include patterns", func(c *Config) { c.IncludePatterns = nil }, "include_patterns"},
		{"bad glob", func(c *Config) { c.IgnorePatterns = []string{"src/[a-"} }, "invalid glob pattern"},
		{"empty alias prefix", func(c *Config) { c.Aliases = []domain.AliasRule{{Rewrite: "src/"}} }, "aliases[0].prefix"},
		{"alias slash mismatch", func(c *Config) { c.Aliases = []domain.AliasRule{{Prefix: "@/", Rewrite: "src"}} }, "must both end with /"},
		{"empty cache dir", func(c *Config) { c.CacheDir = "" }, "cache_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateDefaultConfigTOML_RoundTrip(t *testing.T) {
	content, err := GenerateDefaultConfigTOML()
	if err != nil {
		t.Fatalf("Failed to render template: %v", err)
	}
	if !strings.Contains(content, `type = "auto"`) {
		t.Errorf("Rendered config is missing the architecture type:\n%s", content)
	}

	loaded, err := LoadDefaultConfigFromTOML()
	if err != nil {
		t.Fatalf("Failed to parse rendered template: %v", err)
	}
	want := DefaultConfig()
	if !reflect.DeepEqual(loaded.IgnorePatterns, want.IgnorePatterns) {
		t.Errorf("IgnorePatterns = %v, want %v", loaded.IgnorePatterns, want.IgnorePatterns)
	}
	if !reflect.DeepEqual(loaded.IncludePatterns, want.IncludePatterns) {
		t.Errorf("IncludePatterns = %v, want %v", loaded.IncludePatterns, want.IncludePatterns)
	}
	if !reflect.DeepEqual(loaded.Aliases, want.Aliases) {
		t.Errorf("Aliases = %v, want %v", loaded.Aliases, want.Aliases)
	}
	if loaded.CacheDir != want.CacheDir || loaded.ReportsDir != want.ReportsDir {
		t.Errorf("Output dirs = %s, %s", loaded.CacheDir, loaded.ReportsDir)
	}
}

func TestResolveDir(t *testing.T) {
	if got := ResolveDir("/repo", ".archscan/cache"); got != filepath.Join("/repo", ".archscan/cache") {
		t.Errorf("ResolveDir() = %s", got)
	}
	abs := filepath.Join(t.TempDir(), "cache")
	if got := ResolveDir("/repo", abs); got != abs {
		t.Errorf("ResolveDir() = %s, want %s", got, abs)
	}
}
