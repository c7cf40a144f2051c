package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/analyzer"
	"github.com/ludo-technologies/archscan/internal/rules"
)

// CycleSuggestion is attached to every circular-dependency issue
const CycleSuggestion = "Refactor to remove circular dependency by extracting shared code or using dependency injection"

// lenientRuleIDs are demoted to warnings under the lenient strictness level
var lenientRuleIDs = []string{
	rules.FSDNamingRuleID,
	rules.CleanUseCaseRuleID,
	rules.HexagonalPortInterfaceID,
}

// ValidationServiceImpl runs the rule engine and cycle detection and aggregates the result
type ValidationServiceImpl struct {
	registry *rules.Registry
	engine   *rules.Engine
	logger   *slog.Logger
	now      func() time.Time
}

// NewValidationService creates a validation service (nil registry uses the
// built-in styles, nil logger uses slog.Default())
func NewValidationService(registry *rules.Registry, logger *slog.Logger) *ValidationServiceImpl {
	if registry == nil {
		registry = rules.DefaultRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ValidationServiceImpl{
		registry: registry,
		engine:   rules.NewEngine(logger),
		logger:   logger,
		now:      time.Now,
	}
}

// Validate evaluates the rules of req.ArchitectureType and the dependency
// cycles of files and returns the aggregated outcome
func (s *ValidationServiceImpl) Validate(ctx context.Context, req domain.ValidationRequest, files []domain.FileRecord) (*domain.ValidationOutcome, error) {
	start := s.now()

	style := req.ArchitectureType
	if style == "" {
		style = domain.DefaultArchitectureType
	}
	selected, err := s.registry.Lookup(style)
	if err != nil {
		return nil, err
	}
	selected = rules.FilterRules(selected, req.EnabledRules, req.DisabledRules)

	run := s.engine.Run(files, selected)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	aliases := req.Aliases
	if len(aliases) == 0 {
		aliases = domain.DefaultAliases()
	}
	graph, stats := analyzer.NewGraphBuilder(analyzer.NewPathResolver(aliases)).Build(files)
	cycles := analyzer.DetectCycles(graph)
	s.logger.Debug("dependency graph built",
		"files", graph.NodeCount(),
		"edges", graph.EdgeCount(),
		"external", stats.External,
		"unresolved", stats.Unresolved,
		"cycles", len(cycles),
	)

	issues := run.Issues
	if cycleRuleActive(req.EnabledRules, req.DisabledRules) {
		issues = append(issues, CycleIssues(cycles)...)
	}
	issues = ApplyStrictness(issues, req.StrictnessLevel)

	checked := make([]string, 0, len(files))
	for _, f := range files {
		checked = append(checked, f.Path)
	}

	result := &domain.ValidationResult{
		Errors:           []domain.ValidationIssue{},
		Warnings:         []domain.ValidationIssue{},
		Suggestions:      append([]string{}, analyzer.CycleBreakingSuggestions(analyzer.AnalyzeCycles(cycles))...),
		CheckedFiles:     checked,
		Timestamp:        s.now().UTC(),
		ArchitectureType: string(style),
	}
	for _, issue := range issues {
		if issue.Severity == domain.SeverityError {
			result.Errors = append(result.Errors, issue)
		} else {
			result.Warnings = append(result.Warnings, issue)
		}
	}
	result.Valid = len(result.Errors) == 0
	result.Duration = domain.Duration(s.now().Sub(start))

	return &domain.ValidationOutcome{
		Result:       result,
		Cycles:       cycles,
		RuleFailures: run.Failures,
		Files:        files,
	}, nil
}

// cycleRuleActive applies the enable and disable lists to the circular-dependency check
func cycleRuleActive(enabled, disabled []string) bool {
	if len(enabled) > 0 {
		return slices.Contains(enabled, domain.CircularDependencyRuleID)
	}
	return !slices.Contains(disabled, domain.CircularDependencyRuleID)
}

// CycleIssues converts each cycle into one circular-dependency error, attributed to the first member
func CycleIssues(cycles []domain.Cycle) []domain.ValidationIssue {
	issues := make([]domain.ValidationIssue, 0, len(cycles))
	for _, c := range cycles {
		if len(c) == 0 {
			continue
		}
		issues = append(issues, domain.ValidationIssue{
			File:       c[0],
			Rule:       domain.CircularDependencyRuleID,
			Severity:   domain.SeverityError,
			Message:    "Circular dependency detected: " + strings.Join(c, " → "),
			Suggestion: CycleSuggestion,
		})
	}
	return issues
}

// ApplyStrictness adjusts issue severities for level and returns a new slice
func ApplyStrictness(issues []domain.ValidationIssue, level domain.StrictnessLevel) []domain.ValidationIssue {
	out := make([]domain.ValidationIssue, len(issues))
	for i, issue := range issues {
		switch level {
		case domain.StrictnessStrict:
			issue.Severity = domain.SeverityError
		case domain.StrictnessLenient:
			if slices.Contains(lenientRuleIDs, issue.Rule) {
				issue.Severity = domain.SeverityWarning
			}
		}
		out[i] = issue
	}
	return out
}
