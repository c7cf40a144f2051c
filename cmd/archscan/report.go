package main

import (
	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/config"
	"github.com/ludo-technologies/archscan/service"
	"github.com/spf13/cobra"
)

// ReportCommand prints the latest saved validation report
type ReportCommand struct {
	configFile string
	json       bool
	yaml       bool
}

// NewReportCommand creates a new report command
func NewReportCommand() *ReportCommand {
	return &ReportCommand{}
}

// CreateCobraCommand creates the cobra command for showing saved reports
func (r *ReportCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Show the latest saved validation report",
		Long: `Show the report saved by the last validate run of a project.

The report is read from latest.json in the cache directory and checked
against the report schema before it is printed.

Examples:
  archscan report
  archscan report --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: r.runReport,
	}

	cmd.Flags().StringVarP(&r.configFile, "config", "c", "", "Configuration file path")
	cmd.Flags().BoolVar(&r.json, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&r.yaml, "yaml", false, "Print the report as YAML")
	return cmd
}

func (r *ReportCommand) runReport(cmd *cobra.Command, args []string) error {
	root, err := resolveProjectRoot(args)
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfigWithTarget(r.configFile, root)
	if err != nil {
		return err
	}
	format, _, err := service.NewOutputFormatResolver().Determine(r.json, r.yaml, false)
	if err != nil {
		return err
	}

	result, err := service.NewReportStore().LoadLatest(config.ResolveDir(root, cfg.CacheDir))
	if err != nil {
		return err
	}

	outcome := &domain.ValidationOutcome{Result: result, FromCache: true}
	return service.NewValidationFormatter().Write(outcome, format, cmd.OutOrStdout())
}

// NewReportCmd creates and returns the report cobra command
func NewReportCmd() *cobra.Command {
	return NewReportCommand().CreateCobraCommand()
}
