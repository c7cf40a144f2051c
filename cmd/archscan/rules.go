package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/rules"
	"github.com/ludo-technologies/archscan/service"
	"github.com/spf13/cobra"
)

// RulesCommand lists the registered architecture rules
type RulesCommand struct {
	json         bool
	architecture string
}

// ruleInfo is the listed form of a rule
type ruleInfo struct {
	Style       string          `json:"style" yaml:"style"`
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Severity    domain.Severity `json:"severity" yaml:"severity"`
	Description string          `json:"description" yaml:"description"`
}

// NewRulesCommand creates a new rules command
func NewRulesCommand() *RulesCommand {
	return &RulesCommand{}
}

// CreateCobraCommand creates the cobra command for listing rules
func (r *RulesCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the architecture rules of every style",
		Long: `List the rules registered for each architectural style.

Rule IDs can be passed to validate --enable-rule and --disable-rule or set
in the [rules] section of .archscan.toml. The circular-dependency check
applies to every style.

Examples:
  archscan rules
  archscan rules --architecture fsd
  archscan rules --json`,
		Args: cobra.NoArgs,
		RunE: r.runRules,
	}

	cmd.Flags().BoolVar(&r.json, "json", false, "Print the rules as JSON")
	cmd.Flags().StringVarP(&r.architecture, "architecture", "a", "", "Only list the rules of this style")
	return cmd
}

func (r *RulesCommand) runRules(cmd *cobra.Command, args []string) error {
	infos, err := listRules(rules.DefaultRegistry(), domain.ArchitectureType(r.architecture))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if r.json {
		return service.WriteJSON(out, infos)
	}
	_, err = io.WriteString(out, formatRules(infos, service.StylesFor(out)))
	return err
}

// listRules returns the rules of style, or of every style when style is empty
func listRules(reg *rules.Registry, style domain.ArchitectureType) ([]ruleInfo, error) {
	styles := reg.Styles()
	if style != "" && style != domain.ArchitectureAuto {
		styles = []domain.ArchitectureType{style}
	}

	var infos []ruleInfo
	for _, st := range styles {
		selected, err := reg.Lookup(st)
		if err != nil {
			return nil, err
		}
		for _, rule := range selected {
			infos = append(infos, ruleInfo{
				Style:       string(st),
				ID:          rule.ID(),
				Name:        rule.Name(),
				Severity:    rule.Severity(),
				Description: rule.Description(),
			})
		}
	}
	infos = append(infos, ruleInfo{
		Style:       "all",
		ID:          domain.CircularDependencyRuleID,
		Name:        "Circular dependency",
		Severity:    domain.SeverityError,
		Description: "Files must not depend on themselves through their imports",
	})
	return infos, nil
}

func formatRules(infos []ruleInfo, s service.Styles) string {
	var b strings.Builder
	b.WriteString(s.FormatMainHeader("Architecture Rules"))

	current := ""
	for _, info := range infos {
		if info.Style != current {
			if current != "" {
				b.WriteString("\n")
			}
			current = info.Style
			b.WriteString(s.FormatSectionHeader(info.Style))
		}
		sev := s.Error.Render(string(info.Severity))
		if info.Severity == domain.SeverityWarning {
			sev = s.Warning.Render(string(info.Severity))
		}
		fmt.Fprintf(&b, "  %-30s %s\n", info.ID, sev)
		if info.Description != "" {
			fmt.Fprintf(&b, "  %s\n", s.Muted.Render(info.Description))
		}
	}
	return b.String()
}

// NewRulesCmd creates and returns the rules cobra command
func NewRulesCmd() *cobra.Command {
	return NewRulesCommand().CreateCobraCommand()
}
