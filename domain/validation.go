package domain

import (
	"context"
	"fmt"
	"io"
	"time"
)

// ImportRecord is one import statement found in a source file
type ImportRecord struct {
	// Source is the module specifier as written, e.g. "@/features/auth" or "react"
	Source string `json:"source" yaml:"source"`
	// Line is the 1-indexed line on which the statement starts
	Line int    `json:"line" yaml:"line"`
	Raw  string `json:"raw" yaml:"raw"`
}

// FileRecord is a collected source file together with its parsed imports.
// Path is unique within one validation run.
type FileRecord struct {
	Path    string         `json:"path" yaml:"path"`
	Content string         `json:"-" yaml:"-"`
	Imports []ImportRecord `json:"imports" yaml:"imports"`
}

// Severity classifies a validation issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IsValid reports whether s is a known severity
func (s Severity) IsValid() bool {
	return s == SeverityError || s == SeverityWarning
}

// ValidationIssue is a single finding produced by a rule or by cycle detection
type ValidationIssue struct {
	File       string   `json:"file" yaml:"file"`
	Line       int      `json:"line,omitempty" yaml:"line,omitempty"`
	Rule       string   `json:"rule" yaml:"rule"`
	Severity   Severity `json:"severity" yaml:"severity"`
	Message    string   `json:"message" yaml:"message"`
	Suggestion string   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Location returns "file" or "file:line"
func (i ValidationIssue) Location() string {
	if i.Line > 0 {
		return fmt.Sprintf("%s:%d", i.File, i.Line)
	}
	return i.File
}

// Cycle is a closed chain of file paths; the last element equals the first.
type Cycle []string

// Members returns the distinct files of the cycle (the closing node is dropped)
func (c Cycle) Members() []string {
	if len(c) < 2 {
		return append([]string(nil), c...)
	}
	return append([]string(nil), c[:len(c)-1]...)
}

// ArchitectureType names the architectural style a project is validated against
type ArchitectureType string

const (
	ArchitectureFSD       ArchitectureType = "fsd"
	ArchitectureClean     ArchitectureType = "clean"
	ArchitectureHexagonal ArchitectureType = "hexagonal"
	ArchitectureAuto      ArchitectureType = "auto"
)

// StrictnessLevel adjusts the severity of reported issues
type StrictnessLevel string

const (
	StrictnessStrict   StrictnessLevel = "strict"
	StrictnessModerate StrictnessLevel = "moderate"
	StrictnessLenient  StrictnessLevel = "lenient"
)

// Duration renders as seconds with one decimal, e.g. "0.4s"
type Duration time.Duration

func (d Duration) String() string {
	return fmt.Sprintf("%.1fs", time.Duration(d).Seconds())
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// ValidationResult is the persisted architecture validation report
type ValidationResult struct {
	Valid            bool              `json:"valid" yaml:"valid"`
	Errors           []ValidationIssue `json:"errors" yaml:"errors"`
	Warnings         []ValidationIssue `json:"warnings" yaml:"warnings"`
	Suggestions      []string          `json:"suggestions" yaml:"suggestions"`
	CheckedFiles     []string          `json:"checkedFiles" yaml:"checkedFiles"`
	Timestamp        time.Time         `json:"timestamp" yaml:"timestamp"`
	Duration         Duration          `json:"duration" yaml:"duration"`
	ArchitectureType string            `json:"architectureType" yaml:"architectureType"`
}

// ExitCode returns 0 for a valid result and 1 otherwise
func (r *ValidationResult) ExitCode() int {
	if r.Valid {
		return 0
	}
	return 1
}

// ValidationRequest describes one validation run
type ValidationRequest struct {
	// Root directory that is scanned; reported paths are relative to it
	Root string

	ArchitectureType ArchitectureType
	StrictnessLevel  StrictnessLevel
	EnabledRules     []string
	DisabledRules    []string
	IncludePatterns  []string
	IgnorePatterns   []string
	MaxFiles         int
	Aliases          []AliasRule
	Concurrency      int

	// Output configuration (used by use case formatting)
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string

	// Report persistence; empty CacheDir disables saving
	CacheDir string

	ShowProgress bool
}

// AliasRule rewrites a module specifier prefix to a path prefix before resolution
type AliasRule struct {
	Prefix  string `json:"prefix" yaml:"prefix" mapstructure:"prefix" toml:"prefix"`
	Rewrite string `json:"rewrite" yaml:"rewrite" mapstructure:"rewrite" toml:"rewrite"`
}

// RuleFailure records a rule whose check could not complete
type RuleFailure struct {
	RuleID string `json:"rule" yaml:"rule"`
	Error  string `json:"error" yaml:"error"`
}

// ValidationOutcome bundles the report with run details that are not persisted
type ValidationOutcome struct {
	Result       *ValidationResult
	Cycles       []Cycle
	RuleFailures []RuleFailure
	// Files holds the records the run was performed on
	Files []FileRecord
	// ReportPath is the saved report file, empty when saving is disabled
	ReportPath string
	// FromCache marks an outcome rebuilt from a saved report; it carries no
	// cycles, rule failures or file records
	FromCache bool
}

// FileCollector finds the source files of a project
type FileCollector interface {
	Collect(root string, include, ignore []string, maxFiles int) ([]string, error)
}

// SourceLoader reads collected files and extracts their imports
type SourceLoader interface {
	Load(ctx context.Context, root string, paths []string) ([]FileRecord, error)
}

// ValidationService runs rules and cycle detection over loaded files
type ValidationService interface {
	Validate(ctx context.Context, req ValidationRequest, files []FileRecord) (*ValidationOutcome, error)
}

// ValidationFormatter renders a validation outcome
type ValidationFormatter interface {
	Write(outcome *ValidationOutcome, format OutputFormat, writer io.Writer) error
}

// ReportStore persists validation reports
type ReportStore interface {
	Save(dir string, result *ValidationResult) (string, error)
	LoadLatest(dir string) (*ValidationResult, error)
}
