package domain

// Default architecture validation settings
const (
	DefaultArchitectureType = ArchitectureAuto
	DefaultStrictnessLevel  = StrictnessModerate

	// DefaultCacheDir is relative to the scanned root
	DefaultCacheDir = ".archscan/cache/validation-reports"

	// DefaultReportsDir holds ad-hoc reports written by the deps command
	DefaultReportsDir = ".archscan/reports"

	// DefaultConfigFileName is discovered by walking up from the target directory
	DefaultConfigFileName = ".archscan.toml"

	// DefaultConcurrency bounds concurrent file reads; 0 means GOMAXPROCS
	DefaultConcurrency = 0

	// CircularDependencyRuleID identifies issues created from detected cycles
	CircularDependencyRuleID = "circular-dependency"
)

// DefaultIncludePatterns selects TypeScript sources
func DefaultIncludePatterns() []string {
	return []string{"**/*.ts", "**/*.tsx"}
}

// DefaultIgnorePatterns excludes dependencies, tests and tool output
func DefaultIgnorePatterns() []string {
	return []string{
		"**/node_modules/**",
		"**/*.test.ts",
		"**/*.test.tsx",
		"**/*.spec.ts",
		"**/*.spec.tsx",
		"**/__tests__/**",
		"**/.git/**",
		"**/.archscan/**",
	}
}

// DefaultAliases is the alias table applied when the configuration declares none
func DefaultAliases() []AliasRule {
	return []AliasRule{
		{Prefix: "@/", Rewrite: "src/"},
		{Prefix: "@shared/", Rewrite: "src/shared/"},
		{Prefix: "@features/", Rewrite: "src/features/"},
		{Prefix: "@entities/", Rewrite: "src/entities/"},
		{Prefix: "@pages/", Rewrite: "src/pages/"},
	}
}
