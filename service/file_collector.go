package service

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ludo-technologies/archscan/domain"
)

// FileCollectorImpl implements domain.FileCollector on the local file system
type FileCollectorImpl struct {
	logger *slog.Logger
}

// NewFileCollector creates a new file collector (nil logger uses slog.Default())
func NewFileCollector(logger *slog.Logger) *FileCollectorImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileCollectorImpl{logger: logger}
}

// Collect walks root and returns the slash-separated paths, relative to root,
// of files that match an include pattern and no ignore pattern. Paths are
// sorted; maxFiles > 0 keeps only the first maxFiles of them.
func (c *FileCollectorImpl) Collect(root string, include, ignore []string, maxFiles int) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, domain.NewFileNotFoundError(root, err)
	}
	if !info.IsDir() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("not a directory: %s", root), nil)
	}

	var files []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped
			c.logger.Warn("skipping path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if matchesAny(ignore, rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		if matchesAny(include, rel) {
			files = append(files, rel)
		}
		return nil
	})
	if walkErr != nil {
		return nil, domain.NewAnalysisError(fmt.Sprintf("failed to walk directory %s", root), walkErr)
	}

	sort.Strings(files)
	if maxFiles > 0 && len(files) > maxFiles {
		c.logger.Warn("file limit reached", "limit", maxFiles, "found", len(files))
		files = files[:maxFiles]
	}

	c.logger.Debug("collected files", "root", root, "count", len(files))
	return files, nil
}

// matchesAny reports whether rel matches one of the doublestar patterns
func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}
