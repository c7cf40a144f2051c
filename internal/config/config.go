package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"

	"github.com/ludo-technologies/archscan/domain"
)

// Config holds the resolved settings of a validation run
type Config struct {
	ArchitectureType domain.ArchitectureType
	StrictnessLevel  domain.StrictnessLevel

	// Detect resolves ArchitectureAuto to a single detected style
	Detect bool

	EnabledRules    []string
	DisabledRules   []string
	IncludePatterns []string
	IgnorePatterns  []string

	// MaxFiles caps the collected file set; 0 means unlimited
	MaxFiles int

	// CacheDir and ReportsDir are relative to the scanned root unless absolute
	CacheDir   string
	ReportsDir string

	Aliases []domain.AliasRule

	// Concurrency bounds concurrent file reads; 0 means GOMAXPROCS
	Concurrency int

	// Path of the file the settings were loaded from, empty for defaults
	Source string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ArchitectureType: domain.DefaultArchitectureType,
		StrictnessLevel:  domain.DefaultStrictnessLevel,
		EnabledRules:     []string{},
		DisabledRules:    []string{},
		IncludePatterns:  domain.DefaultIncludePatterns(),
		IgnorePatterns:   domain.DefaultIgnorePatterns(),
		CacheDir:         domain.DefaultCacheDir,
		ReportsDir:       domain.DefaultReportsDir,
		Aliases:          domain.DefaultAliases(),
		Concurrency:      domain.DefaultConcurrency,
	}
}

// fileConfig is the on-disk layout shared by every supported format.
// Pointer fields distinguish "unset" from zero values.
type fileConfig struct {
	Architecture struct {
		Type       *string `mapstructure:"type" toml:"type"`
		Strictness *string `mapstructure:"strictness" toml:"strictness"`
		Detect     *bool   `mapstructure:"detect" toml:"detect"`
	} `mapstructure:"architecture" toml:"architecture"`

	Rules struct {
		Enabled  []string `mapstructure:"enabled" toml:"enabled"`
		Disabled []string `mapstructure:"disabled" toml:"disabled"`
	} `mapstructure:"rules" toml:"rules"`

	Input struct {
		IncludePatterns []string `mapstructure:"include_patterns" toml:"include_patterns"`
		IgnorePatterns  []string `mapstructure:"ignore_patterns" toml:"ignore_patterns"`
		MaxFiles        *int     `mapstructure:"max_files" toml:"max_files"`
	} `mapstructure:"input" toml:"input"`

	Output struct {
		CacheDir   *string `mapstructure:"cache_dir" toml:"cache_dir"`
		ReportsDir *string `mapstructure:"reports_dir" toml:"reports_dir"`
	} `mapstructure:"output" toml:"output"`

	Performance struct {
		Concurrency *int `mapstructure:"concurrency" toml:"concurrency"`
	} `mapstructure:"performance" toml:"performance"`

	Aliases []domain.AliasRule `mapstructure:"aliases" toml:"aliases"`
}

// applyTo overlays the values present in fc onto cfg
func (fc *fileConfig) applyTo(cfg *Config) {
	if fc.Architecture.Type != nil {
		cfg.ArchitectureType = domain.ArchitectureType(*fc.Architecture.Type)
	}
	if fc.Architecture.Strictness != nil {
		cfg.StrictnessLevel = domain.StrictnessLevel(*fc.Architecture.Strictness)
	}
	if fc.Architecture.Detect != nil {
		cfg.Detect = *fc.Architecture.Detect
	}
	if fc.Rules.Enabled != nil {
		cfg.EnabledRules = fc.Rules.Enabled
	}
	if fc.Rules.Disabled != nil {
		cfg.DisabledRules = fc.Rules.Disabled
	}
	if len(fc.Input.IncludePatterns) > 0 {
		cfg.IncludePatterns = fc.Input.IncludePatterns
	}
	if fc.Input.IgnorePatterns != nil {
		cfg.IgnorePatterns = fc.Input.IgnorePatterns
	}
	if fc.Input.MaxFiles != nil {
		cfg.MaxFiles = *fc.Input.MaxFiles
	}
	if fc.Output.CacheDir != nil {
		cfg.CacheDir = *fc.Output.CacheDir
	}
	if fc.Output.ReportsDir != nil {
		cfg.ReportsDir = *fc.Output.ReportsDir
	}
	if fc.Performance.Concurrency != nil {
		cfg.Concurrency = *fc.Performance.Concurrency
	}
	if len(fc.Aliases) > 0 {
		cfg.Aliases = fc.Aliases
	}
}

// LoadConfig loads configuration from an explicit file. The format follows
// the extension (.toml, .yaml, .yml or .json).
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if configPath == "" {
		return config, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("failed to read config file %s", configPath), err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, domain.NewConfigError("failed to unmarshal config", err)
	}
	fc.applyTo(config)
	config.Source = configPath

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigWithTarget loads configuration for a scan of target. An explicit
// configPath wins; otherwise .archscan.toml is searched from target upwards;
// otherwise defaults are returned.
func LoadConfigWithTarget(configPath, target string) (*Config, error) {
	if configPath != "" {
		return LoadConfig(configPath)
	}

	loader := NewTomlConfigLoader()
	found, err := loader.FindConfigFile(target)
	if err != nil {
		return DefaultConfig(), nil
	}
	return loader.Load(found)
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	switch c.ArchitectureType {
	case domain.ArchitectureFSD, domain.ArchitectureClean, domain.ArchitectureHexagonal, domain.ArchitectureAuto:
	default:
		return domain.NewConfigError(fmt.Sprintf("architecture.type must be one of fsd, clean, hexagonal, auto, got %q", c.ArchitectureType), nil)
	}

	switch c.StrictnessLevel {
	case domain.StrictnessStrict, domain.StrictnessModerate, domain.StrictnessLenient:
	default:
		return domain.NewConfigError(fmt.Sprintf("architecture.strictness must be one of strict, moderate, lenient, got %q", c.StrictnessLevel), nil)
	}

	if c.MaxFiles < 0 {
		return domain.NewConfigError(fmt.Sprintf("input.max_files must be >= 0, got %d", c.MaxFiles), nil)
	}
	if c.Concurrency < 0 {
		return domain.NewConfigError(fmt.Sprintf("performance.concurrency must be >= 0, got %d", c.Concurrency), nil)
	}
	if len(c.IncludePatterns) == 0 {
		return domain.NewConfigError("input.include_patterns must not be empty", nil)
	}

	for _, p := range slices.Concat(c.IncludePatterns, c.IgnorePatterns) {
		if !doublestar.ValidatePattern(p) {
			return domain.NewConfigError(fmt.Sprintf("invalid glob pattern %q", p), nil)
		}
	}

	for i, a := range c.Aliases {
		if a.Prefix == "" {
			return domain.NewConfigError(fmt.Sprintf("aliases[%d].prefix must not be empty", i), nil)
		}
		if strings.HasSuffix(a.Prefix, "/") != strings.HasSuffix(a.Rewrite, "/") {
			return domain.NewConfigError(fmt.Sprintf("aliases[%d]: prefix %q and rewrite %q must both end with / or neither", i, a.Prefix, a.Rewrite), nil)
		}
	}

	if c.CacheDir == "" {
		return domain.NewConfigError("output.cache_dir must not be empty", nil)
	}
	return nil
}

// ResolveDir returns dir relative to root unless it is absolute
func ResolveDir(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
