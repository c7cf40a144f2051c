package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/analyzer"
)

// ReportRuleWidth is the width of the rules framing a text validation report
const ReportRuleWidth = 80

// ValidationFormatterImpl renders validation outcomes
type ValidationFormatterImpl struct {
	styles *Styles
}

// NewValidationFormatter creates a formatter whose text styles follow the destination writer
func NewValidationFormatter() *ValidationFormatterImpl {
	return &ValidationFormatterImpl{}
}

// NewValidationFormatterWithStyles creates a formatter with fixed text styles
func NewValidationFormatterWithStyles(styles Styles) *ValidationFormatterImpl {
	return &ValidationFormatterImpl{styles: &styles}
}

// Write renders outcome in format. JSON and YAML carry only the persisted result.
func (f *ValidationFormatterImpl) Write(outcome *domain.ValidationOutcome, format domain.OutputFormat, writer io.Writer) error {
	if outcome == nil || outcome.Result == nil {
		return domain.NewOutputError("nothing to format", nil)
	}

	switch format {
	case domain.OutputFormatText, "":
		styles := StylesFor(writer)
		if f.styles != nil {
			styles = *f.styles
		}
		_, err := io.WriteString(writer, FormatValidationText(outcome, styles))
		if err != nil {
			return domain.NewOutputError("failed to write output", err)
		}
		return nil
	case domain.OutputFormatJSON:
		return WriteJSON(writer, outcome.Result)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, outcome.Result)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// FormatValidationText renders the console report of a validation run.
// The cycle report is omitted for outcomes loaded from a saved report.
func FormatValidationText(outcome *domain.ValidationOutcome, s Styles) string {
	r := outcome.Result
	var b strings.Builder

	if !outcome.FromCache {
		b.WriteString(analyzer.FormatCycleReport(outcome.Cycles) + "\n")
	}

	rule := strings.Repeat("=", ReportRuleWidth)
	b.WriteString("\n" + rule + "\n")

	if r.Valid {
		b.WriteString(s.Success.Render(fmt.Sprintf("✅ All checks passed! (%s)", r.Duration)) + "\n")
	} else {
		b.WriteString(s.Failure.Render(fmt.Sprintf("❌ Validation failed! (%s)", r.Duration)) + "\n")
	}
	fmt.Fprintf(&b, "📊 %d files checked\n", len(r.CheckedFiles))

	if len(r.Errors) > 0 {
		b.WriteString("\n" + s.Error.Render(fmt.Sprintf("🔴 Errors (%d):", len(r.Errors))) + "\n")
		writeIssues(&b, r.Errors, s.Error, s)
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n" + s.Warning.Render(fmt.Sprintf("⚠️  Warnings (%d):", len(r.Warnings))) + "\n")
		writeIssues(&b, r.Warnings, s.Warning, s)
	}

	if len(r.Suggestions) > 0 {
		b.WriteString("\n" + s.Header.Render("Suggestions:") + "\n")
		for _, sug := range r.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", sug)
		}
	}

	if len(outcome.RuleFailures) > 0 {
		b.WriteString("\n" + s.Failure.Render(fmt.Sprintf("Rules that could not run (%d):", len(outcome.RuleFailures))) + "\n")
		for _, rf := range outcome.RuleFailures {
			fmt.Fprintf(&b, "  - [%s] %s\n", rf.RuleID, rf.Error)
		}
	}

	b.WriteString(rule + "\n")
	return b.String()
}

func writeIssues(b *strings.Builder, issues []domain.ValidationIssue, location interface{ Render(...string) string }, s Styles) {
	for i, issue := range issues {
		fmt.Fprintf(b, "\n%d. %s\n", i+1, location.Render(issue.Location()))
		fmt.Fprintf(b, "   %s %s\n", s.Muted.Render("["+issue.Rule+"]"), issue.Message)
		if issue.Suggestion != "" {
			fmt.Fprintf(b, "   %s\n", s.Suggestion.Render("💡 "+issue.Suggestion))
		}
	}
}
