package mcp

import (
	"io"
	"log/slog"

	"github.com/ludo-technologies/archscan/internal/config"
	"github.com/ludo-technologies/archscan/service"
)

// NewTestDependencies builds a dependency set with a quiet logger and its own cache
func NewTestDependencies(cfg *config.Config, path string) *Dependencies {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache, _ := service.NewImportCache(64)
	return &Dependencies{
		collector:  service.NewFileCollector(logger),
		cache:      cache,
		config:     cfg,
		configPath: path,
		logger:     logger,
	}
}
