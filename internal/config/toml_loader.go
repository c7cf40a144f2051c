package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ludo-technologies/archscan/domain"
)

// TomlConfigLoader discovers and parses .archscan.toml files
type TomlConfigLoader struct {
	fileName string
}

// NewTomlConfigLoader creates a new TOML configuration loader
func NewTomlConfigLoader() *TomlConfigLoader {
	return &TomlConfigLoader{fileName: domain.DefaultConfigFileName}
}

// FindConfigFile walks up the directory tree from start to find the config file.
// start may be a file, in which case the search begins at its directory.
func (l *TomlConfigLoader) FindConfigFile(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		configPath := filepath.Join(dir, l.fileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// Load parses configPath and merges it onto the defaults
func (l *TomlConfigLoader) Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, domain.NewConfigError("failed to read "+configPath, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, domain.NewConfigError("failed to parse "+configPath, err)
	}

	config := DefaultConfig()
	fc.applyTo(config)
	config.Source = configPath

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig finds the config file above startDir and loads it, falling back to defaults
func (l *TomlConfigLoader) LoadConfig(startDir string) (*Config, error) {
	configPath, err := l.FindConfigFile(startDir)
	if err != nil {
		return DefaultConfig(), nil
	}
	return l.Load(configPath)
}
