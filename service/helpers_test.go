package service

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/archscan/domain"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTree creates files under a temporary root; a key ending in "/" creates a directory
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func record(path string, sources ...string) domain.FileRecord {
	f := domain.FileRecord{Path: path, Imports: []domain.ImportRecord{}}
	for i, s := range sources {
		f.Imports = append(f.Imports, domain.ImportRecord{Source: s, Line: i + 1})
	}
	return f
}
