package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/analyzer"
	"github.com/ludo-technologies/archscan/internal/version"
)

// DependencyServiceImpl builds the file dependency graph of a project
type DependencyServiceImpl struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewDependencyService creates a new dependency analysis service
func NewDependencyService(logger *slog.Logger) *DependencyServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &DependencyServiceImpl{logger: logger, now: time.Now}
}

// Analyze computes the dependency graph, its cycles and a DOT rendering for files
func (s *DependencyServiceImpl) Analyze(ctx context.Context, req domain.DependencyRequest, files []domain.FileRecord) (*domain.DependencyResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dependency analysis cancelled: %w", err)
	}

	aliases := req.Aliases
	if len(aliases) == 0 {
		aliases = domain.DefaultAliases()
	}
	g, stats := analyzer.NewGraphBuilder(analyzer.NewPathResolver(aliases)).Build(files)
	cycles := analyzer.DetectCycles(g)
	analysis := analyzer.AnalyzeCycles(cycles)

	dot, err := g.ToDOT(cycles)
	if err != nil {
		return nil, domain.NewAnalysisError("failed to render dependency graph", err)
	}

	s.logger.Debug("dependency analysis complete", "files", g.NodeCount(), "edges", g.EdgeCount(), "cycles", len(cycles))

	return &domain.DependencyResponse{
		Graph:  g.AsMap(),
		Edges:  g.Edges(),
		Cycles: analysis.Cycles,
		Summary: domain.DependencySummary{
			Files:         g.NodeCount(),
			Edges:         g.EdgeCount(),
			Cycles:        len(cycles),
			ExternalCount: stats.External,
		},
		Suggestions: analyzer.CycleBreakingSuggestions(analysis),
		SharedFiles: analysis.SharedFiles,
		GeneratedAt: s.now().Format(time.RFC3339),
		Version:     version.Short(),
		DOT:         dot,
	}, nil
}
