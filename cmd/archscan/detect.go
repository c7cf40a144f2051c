package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/detector"
	"github.com/ludo-technologies/archscan/service"
	"github.com/spf13/cobra"
)

// DetectCommand represents the architecture detection command
type DetectCommand struct {
	json bool
	yaml bool
}

// NewDetectCommand creates a new detect command
func NewDetectCommand() *DetectCommand {
	return &DetectCommand{}
}

// CreateCobraCommand creates the cobra command for architecture detection
func (d *DetectCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [path]",
		Short: "Detect the architectural style of a project",
		Long: `Detect the architectural style of a project from its directory layout,
its package.json dependencies and its project type.

Examples:
  archscan detect
  archscan detect --json ../web`,
		Args: cobra.MaximumNArgs(1),
		RunE: d.runDetect,
	}

	cmd.Flags().BoolVar(&d.json, "json", false, "Print the detection as JSON")
	cmd.Flags().BoolVar(&d.yaml, "yaml", false, "Print the detection as YAML")
	return cmd
}

func (d *DetectCommand) runDetect(cmd *cobra.Command, args []string) error {
	root, err := resolveProjectRoot(args)
	if err != nil {
		return err
	}
	format, _, err := service.NewOutputFormatResolver().Determine(d.json, d.yaml, false)
	if err != nil {
		return err
	}

	result := detector.New(root, slog.Default()).FullDetection()

	out := cmd.OutOrStdout()
	switch format {
	case domain.OutputFormatJSON:
		return service.WriteJSON(out, result)
	case domain.OutputFormatYAML:
		return service.WriteYAML(out, result)
	default:
		_, err := io.WriteString(out, formatDetection(result, detector.ResolveStyle(result), service.StylesFor(out)))
		return err
	}
}

func formatDetection(r detector.FullResult, style domain.ArchitectureType, s service.Styles) string {
	var b strings.Builder
	b.WriteString(s.FormatMainHeader("Architecture Detection"))
	fmt.Fprintf(&b, "Project type:  %s\n", r.ProjectType)

	arch := r.Architecture
	if arch.Detected != "" {
		fmt.Fprintf(&b, "Architecture:  %s (%.0f%% confidence)\n", arch.Detected, arch.Confidence*100)
	} else {
		b.WriteString("Architecture:  " + s.Muted.Render("none") + "\n")
	}
	if r.FromDependencies != "" {
		fmt.Fprintf(&b, "Dependencies:  %s\n", r.FromDependencies)
	}
	fmt.Fprintf(&b, "Lint style:    %s\n", style)

	if len(arch.Matches) > 0 {
		b.WriteString("\n" + s.FormatSectionHeader("Matched"))
		for _, m := range arch.Matches {
			fmt.Fprintf(&b, "  ✓ %s\n", m)
		}
	}
	if len(arch.Suggestions) > 0 {
		b.WriteString("\n" + s.FormatSectionHeader("Suggestions"))
		for _, sug := range arch.Suggestions {
			fmt.Fprintf(&b, "  %s\n", s.Suggestion.Render("💡 "+sug))
		}
	}

	b.WriteString("\n" + r.Recommendation + "\n")
	return b.String()
}

// NewDetectCmd creates and returns the detect cobra command
func NewDetectCmd() *cobra.Command {
	return NewDetectCommand().CreateCobraCommand()
}
