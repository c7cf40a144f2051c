package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/parser"
)

// SourceLoaderImpl reads files concurrently and extracts their imports
type SourceLoaderImpl struct {
	concurrency int
	cache       *ImportCache
	progress    domain.ProgressManager
	logger      *slog.Logger
}

// NewSourceLoader creates a loader reading at most concurrency files at once
// (0 means GOMAXPROCS). cache may be nil.
func NewSourceLoader(concurrency int, cache *ImportCache, logger *slog.Logger) *SourceLoaderImpl {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SourceLoaderImpl{concurrency: concurrency, cache: cache, logger: logger}
}

// SetProgressManager reports loading progress to pm
func (l *SourceLoaderImpl) SetProgressManager(pm domain.ProgressManager) {
	l.progress = pm
}

// Load reads paths (relative to root) and returns one record per path in input order.
// A file that cannot be read yields a record with empty content and no imports.
// Only context cancellation produces an error.
func (l *SourceLoaderImpl) Load(ctx context.Context, root string, paths []string) ([]domain.FileRecord, error) {
	records := make([]domain.FileRecord, len(paths))

	if l.progress != nil {
		l.progress.Initialize(len(paths))
		l.progress.Start()
	}
	// Updates run under mu so the reported count never goes backwards
	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, rel := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			records[i] = l.loadOne(root, rel)

			if l.progress != nil {
				mu.Lock()
				done++
				l.progress.Update(done, len(paths))
				mu.Unlock()
			}
			return nil
		})
	}

	err := g.Wait()
	if l.progress != nil {
		l.progress.Complete(err == nil)
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (l *SourceLoaderImpl) loadOne(root, rel string) domain.FileRecord {
	record := domain.FileRecord{Path: rel, Imports: []domain.ImportRecord{}}

	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		l.logger.Warn("failed to read file", "path", rel, "error", err)
		return record
	}

	record.Content = string(content)
	if l.cache != nil {
		record.Imports = l.cache.Imports(rel, content)
	} else {
		record.Imports = parser.ExtractImports(record.Content)
	}
	return record
}
