package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ludo-technologies/archscan/domain"
	svc "github.com/ludo-technologies/archscan/service"
)

// ValidateUseCase orchestrates the architecture validation workflow
type ValidateUseCase struct {
	collector domain.FileCollector
	loader    domain.SourceLoader
	service   domain.ValidationService
	formatter domain.ValidationFormatter
	output    domain.ReportWriter
	store     domain.ReportStore
	progress  domain.ProgressManager
	logger    *slog.Logger
}

// Execute collects and loads the sources of req.Root, validates them, saves
// the report under req.CacheDir and writes the formatted outcome.
// An invalid architecture is not an error; callers use Result.ExitCode().
func (uc *ValidateUseCase) Execute(ctx context.Context, req domain.ValidationRequest) (*domain.ValidationOutcome, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	var progress domain.ProgressManager
	if req.ShowProgress {
		progress = uc.progress
	}
	files, err := CollectSources(ctx, uc.collector, uc.loader, progress,
		req.Root, req.IncludePatterns, req.IgnorePatterns, req.MaxFiles)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		uc.logger.Warn("no source files found", "root", req.Root)
	}

	outcome, err := uc.service.Validate(ctx, req, files)
	if err != nil {
		return nil, err
	}

	if req.CacheDir != "" && uc.store != nil {
		path, err := uc.store.Save(req.CacheDir, outcome.Result)
		if err != nil {
			// A failed save does not change the validation result
			uc.logger.Warn("failed to save validation report", "dir", req.CacheDir, "error", err)
		} else {
			outcome.ReportPath = path
			uc.logger.Debug("validation report saved", "path", path)
		}
	}

	var out io.Writer
	if req.OutputPath == "" {
		out = req.OutputWriter
	}
	if err := uc.output.Write(out, req.OutputPath, req.OutputFormat, func(w io.Writer) error {
		return uc.formatter.Write(outcome, req.OutputFormat, w)
	}); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (uc *ValidateUseCase) validateRequest(req domain.ValidationRequest) error {
	if req.Root == "" {
		return fmt.Errorf("no project root specified")
	}
	if req.OutputWriter == nil && req.OutputPath == "" {
		return fmt.Errorf("output writer or output path is required")
	}
	return nil
}

// ValidateUseCaseBuilder provides a fluent builder for ValidateUseCase
type ValidateUseCaseBuilder struct {
	uc ValidateUseCase
}

func NewValidateUseCaseBuilder() *ValidateUseCaseBuilder { return &ValidateUseCaseBuilder{} }

func (b *ValidateUseCaseBuilder) WithCollector(c domain.FileCollector) *ValidateUseCaseBuilder {
	b.uc.collector = c
	return b
}
func (b *ValidateUseCaseBuilder) WithLoader(l domain.SourceLoader) *ValidateUseCaseBuilder {
	b.uc.loader = l
	return b
}
func (b *ValidateUseCaseBuilder) WithService(s domain.ValidationService) *ValidateUseCaseBuilder {
	b.uc.service = s
	return b
}
func (b *ValidateUseCaseBuilder) WithFormatter(f domain.ValidationFormatter) *ValidateUseCaseBuilder {
	b.uc.formatter = f
	return b
}
func (b *ValidateUseCaseBuilder) WithOutputWriter(w domain.ReportWriter) *ValidateUseCaseBuilder {
	b.uc.output = w
	return b
}

// WithReportStore enables saving reports; without a store nothing is saved
func (b *ValidateUseCaseBuilder) WithReportStore(s domain.ReportStore) *ValidateUseCaseBuilder {
	b.uc.store = s
	return b
}
func (b *ValidateUseCaseBuilder) WithProgress(p domain.ProgressManager) *ValidateUseCaseBuilder {
	b.uc.progress = p
	return b
}
func (b *ValidateUseCaseBuilder) WithLogger(l *slog.Logger) *ValidateUseCaseBuilder {
	b.uc.logger = l
	return b
}

func (b *ValidateUseCaseBuilder) Build() (*ValidateUseCase, error) {
	if b.uc.collector == nil || b.uc.loader == nil || b.uc.service == nil || b.uc.formatter == nil {
		return nil, fmt.Errorf("missing required dependencies")
	}
	uc := b.uc
	if uc.output == nil {
		uc.output = svc.NewFileOutputWriter(nil)
	}
	if uc.logger == nil {
		uc.logger = slog.Default()
	}
	return &uc, nil
}
