package config

import "github.com/ludo-technologies/archscan/domain"

// WasExplicitlySet checks if a flag was explicitly set by the user
func WasExplicitlySet(flags map[string]bool, flagName string) bool {
	if flags == nil {
		return false
	}
	return flags[flagName]
}

// Merge returns override when flagName was set on the command line, base otherwise
func Merge[T any](base, override T, flagName string, flags map[string]bool) T {
	if WasExplicitlySet(flags, flagName) {
		return override
	}
	return base
}

// MergeString merges a string value, using override only if explicitly set
func MergeString(base, override, flagName string, flags map[string]bool) string {
	return Merge(base, override, flagName, flags)
}

// MergeInt merges an int value, using override only if explicitly set
func MergeInt(base, override int, flagName string, flags map[string]bool) int {
	return Merge(base, override, flagName, flags)
}

// MergeBool merges a bool value, using override only if explicitly set
func MergeBool(base, override bool, flagName string, flags map[string]bool) bool {
	return Merge(base, override, flagName, flags)
}

// MergeStringSlice merges a string slice, using override only if explicitly set and non-empty
func MergeStringSlice(base, override []string, flagName string, flags map[string]bool) []string {
	if WasExplicitlySet(flags, flagName) && len(override) > 0 {
		return override
	}
	return base
}

// Overrides are command-line values that take precedence over the loaded file
type Overrides struct {
	ArchitectureType string
	StrictnessLevel  string
	EnabledRules     []string
	DisabledRules    []string
	IgnorePatterns   []string
	MaxFiles         int
	Detect           bool
}

// ApplyOverrides merges the explicitly set flags of o onto a copy of c and validates it.
// Ignore patterns from flags are appended to the configured ones.
func (c *Config) ApplyOverrides(o Overrides, flags map[string]bool) (*Config, error) {
	merged := *c
	merged.ArchitectureType = Merge(c.ArchitectureType, domain.ArchitectureType(o.ArchitectureType), "architecture", flags)
	merged.StrictnessLevel = Merge(c.StrictnessLevel, domain.StrictnessLevel(o.StrictnessLevel), "strictness", flags)
	merged.EnabledRules = MergeStringSlice(c.EnabledRules, o.EnabledRules, "enable-rule", flags)
	merged.DisabledRules = MergeStringSlice(c.DisabledRules, o.DisabledRules, "disable-rule", flags)
	merged.MaxFiles = MergeInt(c.MaxFiles, o.MaxFiles, "max-files", flags)
	merged.Detect = MergeBool(c.Detect, o.Detect, "detect", flags)
	if WasExplicitlySet(flags, "ignore") {
		merged.IgnorePatterns = append(append([]string{}, c.IgnorePatterns...), o.IgnorePatterns...)
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}
