package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ludo-technologies/archscan/app"
	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/config"
	"github.com/ludo-technologies/archscan/internal/detector"
	"github.com/ludo-technologies/archscan/service"
	"github.com/spf13/cobra"
)

// ValidateCommand represents the architecture validation command
type ValidateCommand struct {
	configFile   string
	architecture string
	strictness   string
	enableRules  []string
	disableRules []string
	ignore       []string
	maxFiles     int

	// Output format flags (only one should be true)
	json bool
	yaml bool

	noSave     bool
	detect     bool
	noProgress bool
}

// NewValidateCommand creates a new validate command
func NewValidateCommand() *ValidateCommand {
	return &ValidateCommand{}
}

// CreateCobraCommand creates the cobra command for architecture validation
func (c *ValidateCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate the project against its architecture rules",
		Long: `Validate a TypeScript project against the rules of an architectural style.

The rules of the configured style run over every collected source file, then
the file dependency graph is checked for cycles. The report is saved to the
cache directory (.archscan/cache/validation-reports by default).

Exit codes:
  • 0: No errors found
  • 1: Architecture errors found or validation failed

Examples:
  # Validate the current directory with the configured style
  archscan validate

  # Validate a Feature-Sliced Design project strictly
  archscan validate --architecture fsd --strictness strict src/..

  # Detect the style from the project layout
  archscan validate --detect

  # Machine readable output
  archscan validate --json | jq .errors`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.runValidate,
	}

	cmd.Flags().StringVarP(&c.configFile, "config", "c", "", "Configuration file path (.archscan.toml, .yaml or .json)")
	cmd.Flags().StringVarP(&c.architecture, "architecture", "a", "", "Architecture type: fsd, clean, hexagonal or auto")
	cmd.Flags().StringVar(&c.strictness, "strictness", "", "Strictness level: strict, moderate or lenient")
	cmd.Flags().StringSliceVar(&c.enableRules, "enable-rule", nil, "Only run these rule IDs (repeatable)")
	cmd.Flags().StringSliceVar(&c.disableRules, "disable-rule", nil, "Skip these rule IDs (repeatable)")
	cmd.Flags().StringSliceVar(&c.ignore, "ignore", nil, "Additional glob patterns to ignore")
	cmd.Flags().IntVar(&c.maxFiles, "max-files", 0, "Maximum number of files to validate (0 = unlimited)")
	cmd.Flags().BoolVar(&c.json, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Print the report as YAML")
	cmd.Flags().BoolVar(&c.noSave, "no-save", false, "Don't save the report to the cache directory")
	cmd.Flags().BoolVar(&c.detect, "detect", false, "Detect the architecture when the type is auto")
	cmd.Flags().BoolVar(&c.noProgress, "no-progress", false, "Disable the progress bar")

	return cmd
}

// runValidate executes the validation and fails when the architecture has errors
func (c *ValidateCommand) runValidate(cmd *cobra.Command, args []string) error {
	root, err := resolveProjectRoot(args)
	if err != nil {
		return err
	}

	cfg, err := loadProjectConfig(cmd, c.configFile, root, config.Overrides{
		ArchitectureType: c.architecture,
		StrictnessLevel:  c.strictness,
		EnabledRules:     c.enableRules,
		DisabledRules:    c.disableRules,
		IgnorePatterns:   c.ignore,
		MaxFiles:         c.maxFiles,
		Detect:           c.detect,
	})
	if err != nil {
		return err
	}

	format, _, err := service.NewOutputFormatResolver().Determine(c.json, c.yaml, false)
	if err != nil {
		return err
	}

	logger := slog.Default()
	style := cfg.ArchitectureType
	if style == domain.ArchitectureAuto && cfg.Detect {
		detected := detector.New(root, logger).FullDetection()
		style = detector.ResolveStyle(detected)
		logger.Info("architecture detected",
			"detected", detected.Architecture.Detected,
			"confidence", detected.Architecture.Confidence,
			"style", style)
	}

	req := domain.ValidationRequest{
		Root:             root,
		ArchitectureType: style,
		StrictnessLevel:  cfg.StrictnessLevel,
		EnabledRules:     cfg.EnabledRules,
		DisabledRules:    cfg.DisabledRules,
		IncludePatterns:  cfg.IncludePatterns,
		IgnorePatterns:   cfg.IgnorePatterns,
		MaxFiles:         cfg.MaxFiles,
		Aliases:          cfg.Aliases,
		Concurrency:      cfg.Concurrency,
		OutputFormat:     format,
		OutputWriter:     cmd.OutOrStdout(),
		ShowProgress:     !c.noProgress && format == domain.OutputFormatText && service.IsInteractiveEnvironment(),
	}
	if !c.noSave {
		req.CacheDir = config.ResolveDir(root, cfg.CacheDir)
	}

	useCase, err := c.createUseCase(cmd, cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	outcome, err := useCase.Execute(ctx, req)
	if err != nil {
		return err
	}

	if outcome.ReportPath != "" && format == domain.OutputFormatText {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n📁 Report saved to: %s\n", outcome.ReportPath)
	}
	if !outcome.Result.Valid {
		return fmt.Errorf("architecture validation failed with %d error(s)", len(outcome.Result.Errors))
	}
	return nil
}

func (c *ValidateCommand) createUseCase(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*app.ValidateUseCase, error) {
	return app.NewValidateUseCaseBuilder().
		WithCollector(service.NewFileCollector(logger)).
		WithLoader(service.NewSourceLoader(cfg.Concurrency, nil, logger)).
		WithService(service.NewValidationService(nil, logger)).
		WithFormatter(service.NewValidationFormatter()).
		WithOutputWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		WithReportStore(service.NewReportStore()).
		WithProgress(service.NewProgressManager("Loading sources")).
		WithLogger(logger).
		Build()
}

// NewValidateCmd creates and returns the validate cobra command
func NewValidateCmd() *cobra.Command {
	return NewValidateCommand().CreateCobraCommand()
}
