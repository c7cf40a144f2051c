package domain

import (
	"context"
	"io"
)

// DependencyRequest represents input for dependency graph analysis
type DependencyRequest struct {
	// Root directory to analyze
	Root string

	IncludePatterns []string
	IgnorePatterns  []string
	MaxFiles        int
	Aliases         []AliasRule
	Concurrency     int

	// Output configuration (used by use case formatting)
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string
}

// DependencyEdge represents a directed dependency between files
type DependencyEdge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// CycleSeverity grades a cycle by its size
type CycleSeverity string

const (
	CycleSeverityLow      CycleSeverity = "low"
	CycleSeverityMedium   CycleSeverity = "medium"
	CycleSeverityHigh     CycleSeverity = "high"
	CycleSeverityCritical CycleSeverity = "critical"
)

// DependencyCycle is a detected cycle with its grading
type DependencyCycle struct {
	Files    []string      `json:"files" yaml:"files"`
	Severity CycleSeverity `json:"severity" yaml:"severity"`
}

// DependencySummary contains aggregate stats
type DependencySummary struct {
	Files         int `json:"files" yaml:"files"`
	Edges         int `json:"edges" yaml:"edges"`
	Cycles        int `json:"cycles" yaml:"cycles"`
	ExternalCount int `json:"external_imports" yaml:"external_imports"`
}

// DependencyResponse is the result of dependency analysis
type DependencyResponse struct {
	Graph  map[string][]string `json:"graph" yaml:"graph"`
	Edges  []DependencyEdge    `json:"edges" yaml:"edges"`
	Cycles []DependencyCycle   `json:"cycles" yaml:"cycles"`

	Summary     DependencySummary `json:"summary" yaml:"summary"`
	Suggestions []string          `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	// SharedFiles lists files that take part in more than one cycle
	SharedFiles []string `json:"shared_files,omitempty" yaml:"shared_files,omitempty"`
	GeneratedAt string   `json:"generated_at" yaml:"generated_at"`
	Version     string   `json:"version" yaml:"version"`

	DOT string `json:"-" yaml:"-"`
}

// DependencyService defines the core business logic for dependency analysis
type DependencyService interface {
	Analyze(ctx context.Context, req DependencyRequest, files []FileRecord) (*DependencyResponse, error)
}

// DepsOutputFormatter defines the interface for formatting dependency analysis results
type DepsOutputFormatter interface {
	Write(response *DependencyResponse, format OutputFormat, writer io.Writer) error
}
