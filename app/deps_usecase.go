package app

import (
	"context"
	"fmt"
	"io"

	"github.com/ludo-technologies/archscan/domain"
	svc "github.com/ludo-technologies/archscan/service"
)

// DepsUseCase orchestrates the dependency analysis workflow
type DepsUseCase struct {
	service   domain.DependencyService
	collector domain.FileCollector
	loader    domain.SourceLoader
	formatter domain.DepsOutputFormatter
	output    domain.ReportWriter
}

// NewDepsUseCase creates a new dependency analysis use case
func NewDepsUseCase(service domain.DependencyService, collector domain.FileCollector, loader domain.SourceLoader, formatter domain.DepsOutputFormatter) *DepsUseCase {
	return &DepsUseCase{
		service:   service,
		collector: collector,
		loader:    loader,
		formatter: formatter,
		output:    svc.NewFileOutputWriter(nil),
	}
}

// Execute performs dependency analysis and writes formatted output
func (uc *DepsUseCase) Execute(ctx context.Context, req domain.DependencyRequest) (*domain.DependencyResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	files, err := CollectSources(ctx, uc.collector, uc.loader, nil,
		req.Root, req.IncludePatterns, req.IgnorePatterns, req.MaxFiles)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("no source files found in %s", req.Root), nil)
	}

	response, err := uc.service.Analyze(ctx, req, files)
	if err != nil {
		return nil, err
	}

	// Output via ReportWriter
	var out io.Writer
	if req.OutputPath == "" {
		out = req.OutputWriter
	}
	if err := uc.output.Write(out, req.OutputPath, req.OutputFormat, func(w io.Writer) error {
		return uc.formatter.Write(response, req.OutputFormat, w)
	}); err != nil {
		return nil, err
	}
	return response, nil
}

func (uc *DepsUseCase) validateRequest(req domain.DependencyRequest) error {
	if req.Root == "" {
		return fmt.Errorf("no project root specified")
	}
	if req.OutputWriter == nil && req.OutputPath == "" {
		return fmt.Errorf("output writer or output path is required")
	}
	return nil
}

// DepsUseCaseBuilder provides a fluent builder for DepsUseCase
type DepsUseCaseBuilder struct {
	service   domain.DependencyService
	collector domain.FileCollector
	loader    domain.SourceLoader
	formatter domain.DepsOutputFormatter
	output    domain.ReportWriter
}

func NewDepsUseCaseBuilder() *DepsUseCaseBuilder { return &DepsUseCaseBuilder{} }

func (b *DepsUseCaseBuilder) WithService(s domain.DependencyService) *DepsUseCaseBuilder {
	b.service = s
	return b
}
func (b *DepsUseCaseBuilder) WithCollector(c domain.FileCollector) *DepsUseCaseBuilder {
	b.collector = c
	return b
}
func (b *DepsUseCaseBuilder) WithLoader(l domain.SourceLoader) *DepsUseCaseBuilder {
	b.loader = l
	return b
}
func (b *DepsUseCaseBuilder) WithFormatter(f domain.DepsOutputFormatter) *DepsUseCaseBuilder {
	b.formatter = f
	return b
}
func (b *DepsUseCaseBuilder) WithOutputWriter(w domain.ReportWriter) *DepsUseCaseBuilder {
	b.output = w
	return b
}

func (b *DepsUseCaseBuilder) Build() (*DepsUseCase, error) {
	if b.service == nil || b.collector == nil || b.loader == nil || b.formatter == nil {
		return nil, fmt.Errorf("missing required dependencies")
	}
	uc := &DepsUseCase{
		service:   b.service,
		collector: b.collector,
		loader:    b.loader,
		formatter: b.formatter,
		output:    b.output,
	}
	if uc.output == nil {
		uc.output = svc.NewFileOutputWriter(nil)
	}
	return uc, nil
}
