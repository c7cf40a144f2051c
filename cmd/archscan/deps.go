package main

import (
	"context"
	"log/slog"

	"github.com/ludo-technologies/archscan/app"
	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/config"
	"github.com/ludo-technologies/archscan/service"
	"github.com/spf13/cobra"
)

// DepsCommand represents the dependency analysis command
type DepsCommand struct {
	// Output format flags (only one should be true)
	json       bool
	yaml       bool
	dot        bool
	configFile string
	ignore     []string
	maxFiles   int
}

func NewDepsCommand() *DepsCommand { return &DepsCommand{} }

func NewDepsCmd() *cobra.Command {
	c := NewDepsCommand()

	cmd := &cobra.Command{
		Use:   "deps [path]",
		Short: "Analyze file dependencies and detect cycles",
		Long: `Build the file dependency graph from TypeScript imports and detect circular dependencies.

Text output goes to stdout; --json, --yaml and --dot write a timestamped
report to the reports directory (.archscan/reports by default).

Examples:
  archscan deps
  archscan deps --dot src/..
  archscan deps --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.run,
	}

	cmd.Flags().BoolVar(&c.json, "json", false, "Generate JSON report file")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Generate YAML report file")
	cmd.Flags().BoolVar(&c.dot, "dot", false, "Generate DOT graph file")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", "", "Configuration file path")
	cmd.Flags().StringSliceVar(&c.ignore, "ignore", nil, "Additional glob patterns to ignore")
	cmd.Flags().IntVar(&c.maxFiles, "max-files", 0, "Maximum number of files to analyze (0 = unlimited)")
	return cmd
}

func (c *DepsCommand) run(cmd *cobra.Command, args []string) error {
	root, err := resolveProjectRoot(args)
	if err != nil {
		return err
	}

	cfg, err := loadProjectConfig(cmd, c.configFile, root, config.Overrides{
		IgnorePatterns: c.ignore,
		MaxFiles:       c.maxFiles,
	})
	if err != nil {
		return err
	}

	format, ext, err := service.NewOutputFormatResolver().Determine(c.json, c.yaml, c.dot)
	if err != nil {
		return err
	}

	req := domain.DependencyRequest{
		Root:            root,
		IncludePatterns: cfg.IncludePatterns,
		IgnorePatterns:  cfg.IgnorePatterns,
		MaxFiles:        cfg.MaxFiles,
		Aliases:         cfg.Aliases,
		Concurrency:     cfg.Concurrency,
		OutputWriter:    cmd.OutOrStdout(),
		OutputFormat:    format,
	}
	// Non-text outputs are written to the reports directory
	if format != domain.OutputFormatText {
		req.OutputPath, err = generateOutputFilePath("deps", ext, c.configFile, root)
		if err != nil {
			return err
		}
	}

	useCase, err := c.createUseCase(cmd, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	_, err = useCase.Execute(ctx, req)
	return err
}

func (c *DepsCommand) createUseCase(cmd *cobra.Command, cfg *config.Config) (*app.DepsUseCase, error) {
	logger := slog.Default()
	return app.NewDepsUseCaseBuilder().
		WithService(service.NewDependencyService(logger)).
		WithCollector(service.NewFileCollector(logger)).
		WithLoader(service.NewSourceLoader(cfg.Concurrency, nil, logger)).
		WithFormatter(service.NewDepsFormatter()).
		WithOutputWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		Build()
}
