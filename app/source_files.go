package app

import (
	"context"

	"github.com/ludo-technologies/archscan/domain"
)

// progressAware is implemented by loaders that can report progress
type progressAware interface {
	SetProgressManager(pm domain.ProgressManager)
}

// CollectSources finds the project files under root and loads their imports.
// Collector errors are returned unchanged so their domain error code is kept.
//
// When progress is non-nil and the loader supports it, loading progress is
// reported through it.
func CollectSources(
	ctx context.Context,
	collector domain.FileCollector,
	loader domain.SourceLoader,
	progress domain.ProgressManager,
	root string,
	include, ignore []string,
	maxFiles int,
) ([]domain.FileRecord, error) {
	paths, err := collector.Collect(root, include, ignore, maxFiles)
	if err != nil {
		return nil, err
	}

	if pa, ok := loader.(progressAware); ok && progress != nil {
		pa.SetProgressManager(progress)
		defer progress.Close()
	}

	files, err := loader.Load(ctx, root, paths)
	if err != nil {
		return nil, domain.NewAnalysisError("failed to load source files", err)
	}
	return files, nil
}
