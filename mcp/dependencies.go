package mcp

import (
	"io"
	"log/slog"

	"github.com/ludo-technologies/archscan/app"
	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/config"
	"github.com/ludo-technologies/archscan/service"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	collector  domain.FileCollector
	cache      *service.ImportCache
	config     *config.Config
	configPath string
	logger     *slog.Logger
}

// NewDependencies constructs the dependency set with sane defaults.
// A nil cfg means the configuration is discovered from each tool's target.
func NewDependencies(cfg *config.Config, configPath string) *Dependencies {
	logger := slog.Default()
	cache, err := service.NewImportCache(service.DefaultImportCacheSize)
	if err != nil {
		logger.Warn("import cache disabled", "error", err)
	}

	return &Dependencies{
		collector:  service.NewFileCollector(logger),
		cache:      cache,
		config:     cfg,
		configPath: configPath,
		logger:     logger,
	}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config {
	return d.config
}

// ConfigPath returns the configured config file path (may be empty to trigger discovery).
func (d *Dependencies) ConfigPath() string {
	return d.configPath
}

// Cache returns the import cache shared between tool calls.
func (d *Dependencies) Cache() *service.ImportCache {
	return d.cache
}

// ConfigFor returns the configuration for a scan of root. An explicit config
// path wins over the snapshot, and discovery runs when neither is set.
func (d *Dependencies) ConfigFor(root string) (*config.Config, error) {
	if d.config != nil && d.configPath == "" {
		return d.config, nil
	}
	return config.LoadConfigWithTarget(d.configPath, root)
}

// BuildValidateUseCase assembles a ValidateUseCase sharing the import cache.
func (d *Dependencies) BuildValidateUseCase(cfg *config.Config) (*app.ValidateUseCase, error) {
	return app.NewValidateUseCaseBuilder().
		WithCollector(d.collector).
		WithLoader(service.NewSourceLoader(cfg.Concurrency, d.cache, d.logger)).
		WithService(service.NewValidationService(nil, d.logger)).
		WithFormatter(service.NewValidationFormatter()).
		WithOutputWriter(service.NewFileOutputWriter(io.Discard)).
		WithReportStore(service.NewReportStore()).
		WithLogger(d.logger).
		Build()
}

// BuildDepsUseCase assembles a DepsUseCase sharing the import cache.
func (d *Dependencies) BuildDepsUseCase(cfg *config.Config) (*app.DepsUseCase, error) {
	return app.NewDepsUseCaseBuilder().
		WithService(service.NewDependencyService(d.logger)).
		WithCollector(d.collector).
		WithLoader(service.NewSourceLoader(cfg.Concurrency, d.cache, d.logger)).
		WithFormatter(service.NewDepsFormatter()).
		WithOutputWriter(service.NewFileOutputWriter(io.Discard)).
		Build()
}
