// Package rules evaluates architecture rules over collected source files.
//
// A Rule inspects file paths and imports and reports ValidationIssues.
// Concrete rules are configured by data tables (layer lists, naming
// patterns) and grouped per architectural style in a Registry.
package rules

import (
	"path"
	"slices"
	"strings"

	"github.com/ludo-technologies/archscan/domain"
)

// UnknownLayer is reported for files outside every layer of a style
const UnknownLayer = "unknown"

// Rule is a single architecture check
type Rule interface {
	ID() string
	Name() string
	Description() string
	Severity() domain.Severity
	Enabled() bool

	// Check inspects files and returns the issues found, in file order.
	// It must not modify files.
	Check(files []domain.FileRecord) ([]domain.ValidationIssue, error)
}

// Meta carries the descriptive part of a rule and implements everything
// in Rule except Check
type Meta struct {
	RuleID          string
	RuleName        string
	RuleDescription string
	RuleSeverity    domain.Severity
}

func (m Meta) ID() string                { return m.RuleID }
func (m Meta) Name() string              { return m.RuleName }
func (m Meta) Description() string       { return m.RuleDescription }
func (m Meta) Severity() domain.Severity { return m.RuleSeverity }
func (m Meta) Enabled() bool             { return true }

func (m Meta) issue(file string, line int, message, suggestion string) domain.ValidationIssue {
	return domain.ValidationIssue{
		File:       file,
		Line:       line,
		Rule:       m.RuleID,
		Severity:   m.RuleSeverity,
		Message:    message,
		Suggestion: suggestion,
	}
}

// toggled overrides the enabled flag of a rule
type toggled struct {
	Rule
	enabled bool
}

func (t toggled) Enabled() bool { return t.enabled }

// WithEnabled returns a view of r whose Enabled reports enabled
func WithEnabled(r Rule, enabled bool) Rule {
	if t, ok := r.(toggled); ok {
		r = t.Rule
	}
	return toggled{Rule: r, enabled: enabled}
}

// FilterRules applies enable and disable lists to rules.
// A non-empty enabled list enables exactly the listed rules and ignores
// disabled; otherwise every rule except the disabled ones is enabled.
// The returned slice has the same order and length as rules.
func FilterRules(rules []Rule, enabled, disabled []string) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		var on bool
		if len(enabled) > 0 {
			on = slices.Contains(enabled, r.ID())
		} else {
			on = !slices.Contains(disabled, r.ID())
		}
		out = append(out, WithEnabled(r, on))
	}
	return out
}

// innerSegments returns the elements of p that have a separator on both
// sides. A leading element and the final element never count, so a name
// matches only as an enclosing directory ("/features/").
func innerSegments(p string) []string {
	p = strings.ReplaceAll(p, `\`, "/")
	parts := strings.Split(p, "/")
	if len(parts) < 3 {
		return nil
	}
	return parts[1 : len(parts)-1]
}

// fileName returns the final element of p
func fileName(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	return path.Base(p)
}

// inAnyDirectory reports whether p is nested in a directory named in names.
// File paths and import sources share this test.
func inAnyDirectory(p string, names ...string) bool {
	for _, seg := range innerSegments(p) {
		if slices.Contains(names, seg) {
			return true
		}
	}
	return false
}

// LayerOfImport returns the first layer of layers that an import source
// points inside, or UnknownLayer. A bare barrel such as "@/shared" has no
// enclosing layer directory and is unknown.
func LayerOfImport(source string, layers []string) string {
	return LayerOf(source, layers)
}

// LayerOf returns the first layer of layers, in list order, that appears as
// an inner directory segment of p, or UnknownLayer
func LayerOf(p string, layers []string) string {
	return firstLayer(innerSegments(p), layers)
}

func firstLayer(segments, layers []string) string {
	for _, layer := range layers {
		if slices.Contains(segments, layer) {
			return layer
		}
	}
	return UnknownLayer
}
