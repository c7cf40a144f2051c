package rules

import (
	"fmt"
	"log/slog"

	"github.com/ludo-technologies/archscan/domain"
)

// RunResult holds the issues of all rules that completed and the rules that did not
type RunResult struct {
	Issues   []domain.ValidationIssue
	Failures []domain.RuleFailure
}

// Engine runs rules over a file set
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an engine that reports rule failures to logger (nil uses slog.Default())
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Run invokes Check on every enabled rule in order and concatenates the issues.
// A rule that returns an error or panics contributes no issues; it is logged,
// recorded in Failures and the remaining rules still run.
func (e *Engine) Run(files []domain.FileRecord, rules []Rule) RunResult {
	result := RunResult{Issues: []domain.ValidationIssue{}}

	for _, r := range rules {
		if !r.Enabled() {
			e.logger.Debug("rule disabled", "rule", r.ID())
			continue
		}

		issues, err := e.check(r, files)
		if err != nil {
			e.logger.Error("rule check failed", "rule", r.ID(), "error", err)
			result.Failures = append(result.Failures, domain.RuleFailure{RuleID: r.ID(), Error: err.Error()})
			continue
		}

		e.logger.Debug("rule checked", "rule", r.ID(), "issues", len(issues))
		result.Issues = append(result.Issues, issues...)
	}
	return result
}

func (e *Engine) check(r Rule, files []domain.FileRecord) (issues []domain.ValidationIssue, err error) {
	defer func() {
		if p := recover(); p != nil {
			issues = nil
			err = domain.NewRuleError(r.ID(), fmt.Errorf("panic: %v", p))
		}
	}()

	issues, err = r.Check(files)
	if err != nil {
		return nil, domain.NewRuleError(r.ID(), err)
	}
	return issues, nil
}

// RunRules runs rules with the default logger and returns only the issues
func RunRules(files []domain.FileRecord, rules []Rule) []domain.ValidationIssue {
	return NewEngine(nil).Run(files, rules).Issues
}
